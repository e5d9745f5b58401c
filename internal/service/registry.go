package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/campuselect/election-api/internal/domain"
	"github.com/campuselect/election-api/internal/repository"
	"github.com/campuselect/election-api/internal/repository/dao"
)

var (
	ErrPositionNotFound = repository.ErrPositionNotFound
	ErrMissingFields    = errors.New("name, student id, department and symbol are required")
)

type CandidateRepository interface {
	FindAll(ctx context.Context) ([]domain.Candidate, error)
	FindByID(ctx context.Context, id string) (domain.Candidate, error)
	Create(ctx context.Context, candidate domain.Candidate) (domain.Candidate, error)
	Update(ctx context.Context, candidate domain.Candidate) (domain.Candidate, error)
	Delete(ctx context.Context, id string) error
	ResetVotes(ctx context.Context) error
}

type WipeableElectionRepository interface {
	ElectionRepository
	Wipe(ctx context.Context) error
}

// RegistryService is the admin surface: candidate CRUD, the election toggle
// and the destructive reset operations. The position catalog is read-only
// from here; it is seeded in code.
type RegistryService struct {
	candidateRepo CandidateRepository
	electionRepo  WipeableElectionRepository
}

func NewRegistryService(candidateRepo CandidateRepository, electionRepo WipeableElectionRepository) *RegistryService {
	return &RegistryService{
		candidateRepo: candidateRepo,
		electionRepo:  electionRepo,
	}
}

func (s *RegistryService) Positions() []domain.Position {
	positions := make([]domain.Position, 0, len(dao.Positions))
	for _, p := range dao.Positions {
		positions = append(positions, positionToDomain(p))
	}
	return positions
}

func (s *RegistryService) Candidates(ctx context.Context) ([]domain.Candidate, error) {
	candidates, err := s.candidateRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.candidateRepo.FindAll -> %w", err)
	}

	return candidates, nil
}

func (s *RegistryService) AddCandidate(ctx context.Context, candidate domain.Candidate) (domain.Candidate, error) {
	if err := validateCandidate(candidate); err != nil {
		return domain.Candidate{}, err
	}

	created, err := s.candidateRepo.Create(ctx, candidate)
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("s.candidateRepo.Create -> %w", err)
	}

	return created, nil
}

func (s *RegistryService) UpdateCandidate(ctx context.Context, candidate domain.Candidate) (domain.Candidate, error) {
	if err := validateCandidate(candidate); err != nil {
		return domain.Candidate{}, err
	}

	updated, err := s.candidateRepo.Update(ctx, candidate)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return domain.Candidate{}, ErrCandidateNotFound
		}
		return domain.Candidate{}, fmt.Errorf("s.candidateRepo.Update -> %w", err)
	}

	return updated, nil
}

func (s *RegistryService) DeleteCandidate(ctx context.Context, id string) error {
	err := s.candidateRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return ErrCandidateNotFound
		}
		return fmt.Errorf("s.candidateRepo.Delete -> %w", err)
	}

	return nil
}

// ToggleElection flips the active flag, preserving counters.
func (s *RegistryService) ToggleElection(ctx context.Context, active bool) (domain.ElectionState, error) {
	state, err := s.electionRepo.Get(ctx)
	if err != nil {
		return domain.ElectionState{}, fmt.Errorf("s.electionRepo.Get -> %w", err)
	}

	state.IsActive = active
	if err = s.electionRepo.Save(ctx, state); err != nil {
		return domain.ElectionState{}, fmt.Errorf("s.electionRepo.Save -> %w", err)
	}

	zap.L().Info("election toggled", zap.Bool("active", active))

	return state, nil
}

// ResetAllVotes zeroes every candidate tally and the voter counter. It does
// NOT clear voter ballot records: a student who already voted for a position
// stays locked out of it until ClearAllData is run.
func (s *RegistryService) ResetAllVotes(ctx context.Context) error {
	if err := s.candidateRepo.ResetVotes(ctx); err != nil {
		return fmt.Errorf("s.candidateRepo.ResetVotes -> %w", err)
	}

	state, err := s.electionRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("s.electionRepo.Get -> %w", err)
	}
	state.VotedCount = 0
	if err = s.electionRepo.Save(ctx, state); err != nil {
		return fmt.Errorf("s.electionRepo.Save -> %w", err)
	}

	zap.L().Warn("all vote tallies reset; ballot records kept")

	return nil
}

// ClearAllData wipes the entire store: candidates, election state, ballot
// records and identity overrides.
func (s *RegistryService) ClearAllData(ctx context.Context) error {
	if err := s.electionRepo.Wipe(ctx); err != nil {
		return fmt.Errorf("s.electionRepo.Wipe -> %w", err)
	}

	zap.L().Warn("store cleared")

	return nil
}

func validateCandidate(candidate domain.Candidate) error {
	if strings.TrimSpace(candidate.Name) == "" ||
		strings.TrimSpace(candidate.StudentID) == "" ||
		strings.TrimSpace(candidate.Department) == "" ||
		strings.TrimSpace(candidate.Symbol) == "" {
		return ErrMissingFields
	}

	if _, ok := dao.FindPosition(candidate.Position); !ok {
		return ErrPositionNotFound
	}

	return nil
}
