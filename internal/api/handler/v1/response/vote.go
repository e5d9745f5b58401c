package response

type VerifyResponse struct {
	Verified    bool   `json:"verified"`
	ExtractedID string `json:"extracted_id"`
}

type VoteStatusResponse struct {
	Verified       bool     `json:"verified"`
	VotedPositions []string `json:"voted_positions"`
	TotalPositions int      `json:"total_positions"`
}

type CastVoteResponse struct {
	Message string `json:"message"`
}
