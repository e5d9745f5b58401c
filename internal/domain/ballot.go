package domain

// BallotRecord holds the positions a voter has already voted for. Positions
// are appended, never removed, except when the whole store is cleared.
type BallotRecord struct {
	StudentID      string   `json:"student_id"`
	VotedPositions []string `json:"voted_positions"`
}

func (b BallotRecord) HasVoted(positionID string) bool {
	for _, p := range b.VotedPositions {
		if p == positionID {
			return true
		}
	}
	return false
}
