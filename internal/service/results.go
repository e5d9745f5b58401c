package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/campuselect/election-api/internal/domain"
	"github.com/campuselect/election-api/internal/repository/dao"
)

type ResultsCandidateRepository interface {
	FindAll(ctx context.Context) ([]domain.Candidate, error)
}

// ResultsService computes rankings on demand from the live candidate
// collection; it stores nothing itself.
type ResultsService struct {
	candidateRepo ResultsCandidateRepository
	electionRepo  ElectionRepository
}

func NewResultsService(candidateRepo ResultsCandidateRepository, electionRepo ElectionRepository) *ResultsService {
	return &ResultsService{
		candidateRepo: candidateRepo,
		electionRepo:  electionRepo,
	}
}

func (s *ResultsService) PositionResult(ctx context.Context, positionID string) (domain.PositionResult, error) {
	position, ok := dao.FindPosition(positionID)
	if ok {
		candidates, err := s.candidateRepo.FindAll(ctx)
		if err != nil {
			return domain.PositionResult{}, fmt.Errorf("s.candidateRepo.FindAll -> %w", err)
		}

		return rankPosition(positionToDomain(position), candidates), nil
	}

	return domain.PositionResult{}, ErrPositionNotFound
}

func (s *ResultsService) AllResults(ctx context.Context) ([]domain.PositionResult, error) {
	candidates, err := s.candidateRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.candidateRepo.FindAll -> %w", err)
	}

	results := make([]domain.PositionResult, 0, len(dao.Positions))
	for _, p := range dao.Positions {
		results = append(results, rankPosition(positionToDomain(p), candidates))
	}

	return results, nil
}

// Turnout returns the current election state for the stats header:
// votedCount over totalVoters.
func (s *ResultsService) Turnout(ctx context.Context) (domain.ElectionState, error) {
	state, err := s.electionRepo.Get(ctx)
	if err != nil {
		return domain.ElectionState{}, fmt.Errorf("s.electionRepo.Get -> %w", err)
	}

	return state, nil
}

// rankPosition orders a position's slate by votes descending. The sort is
// stable so candidates tied on votes keep their insertion order, which keeps
// the leader deterministic.
func rankPosition(position domain.Position, candidates []domain.Candidate) domain.PositionResult {
	var slate []domain.Candidate
	total := 0
	for _, c := range candidates {
		if c.Position == position.ID {
			slate = append(slate, c)
			total += c.Votes
		}
	}

	sort.SliceStable(slate, func(i, j int) bool {
		return slate[i].Votes > slate[j].Votes
	})

	ranked := make([]domain.CandidateResult, 0, len(slate))
	for i, c := range slate {
		percentage := 0
		if total > 0 {
			percentage = int(math.Round(float64(c.Votes) / float64(total) * 100))
		}
		ranked = append(ranked, domain.CandidateResult{
			Candidate:  c,
			Rank:       i + 1,
			Percentage: percentage,
			IsLeading:  i == 0,
		})
	}

	return domain.PositionResult{
		Position:   position,
		TotalVotes: total,
		Candidates: ranked,
	}
}

func positionToDomain(p dao.Position) domain.Position {
	return domain.Position{
		ID:          p.ID,
		TitleBn:     p.TitleBn,
		Title:       p.Title,
		Description: p.Description,
	}
}
