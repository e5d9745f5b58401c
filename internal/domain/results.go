package domain

// CandidateResult is one row of a position's ranking. Percentage is rounded
// to the nearest whole percent; it is 0 when the position has no votes.
type CandidateResult struct {
	Candidate
	Rank       int  `json:"rank"`
	Percentage int  `json:"percentage"`
	IsLeading  bool `json:"is_leading"`
}

type PositionResult struct {
	Position   Position          `json:"position"`
	TotalVotes int               `json:"total_votes"`
	Candidates []CandidateResult `json:"candidates"`
}
