package response

import "github.com/campuselect/election-api/internal/domain"

// CandidateRow is one ranking row. Votes and Percentage are only present for
// admins; voters see ordering and the leader flag, not absolute counts, until
// the commission publishes final results.
type CandidateRow struct {
	Rank       int    `json:"rank"`
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Symbol     string `json:"symbol"`
	IsLeading  bool   `json:"is_leading"`
	Votes      *int   `json:"votes,omitempty"`
	Percentage *int   `json:"percentage,omitempty"`
}

type PositionResultView struct {
	Position   domain.Position `json:"position"`
	TotalVotes *int            `json:"total_votes,omitempty"`
	Candidates []CandidateRow  `json:"candidates"`
}

type ResultsResponse struct {
	VotedCount  int                  `json:"voted_count"`
	TotalVoters int                  `json:"total_voters"`
	Positions   []PositionResultView `json:"positions"`
}

func NewPositionResultView(result domain.PositionResult, includeCounts bool) PositionResultView {
	view := PositionResultView{
		Position:   result.Position,
		Candidates: make([]CandidateRow, 0, len(result.Candidates)),
	}
	if includeCounts {
		total := result.TotalVotes
		view.TotalVotes = &total
	}

	for _, c := range result.Candidates {
		row := CandidateRow{
			Rank:       c.Rank,
			ID:         c.ID,
			Name:       c.Name,
			Department: c.Department,
			Symbol:     c.Symbol,
			IsLeading:  c.IsLeading,
		}
		if includeCounts {
			votes := c.Votes
			percentage := c.Percentage
			row.Votes = &votes
			row.Percentage = &percentage
		}
		view.Candidates = append(view.Candidates, row)
	}

	return view
}
