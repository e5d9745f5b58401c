package domain

// ElectionState is the singleton election record. VotedCount tracks distinct
// voters who have cast at least one vote, not the number of ballots.
type ElectionState struct {
	IsActive    bool `json:"is_active"`
	VotedCount  int  `json:"voted_count"`
	TotalVoters int  `json:"total_voters"`
}
