package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/campuselect/election-api/internal/domain"
	"github.com/campuselect/election-api/internal/repository"
)

var (
	ErrElectionInactive  = errors.New("election is not active")
	ErrAlreadyVoted      = errors.New("already voted for this position")
	ErrCandidateNotFound = repository.ErrCandidateNotFound
)

type ElectionRepository interface {
	Get(ctx context.Context) (domain.ElectionState, error)
	Save(ctx context.Context, state domain.ElectionState) error
}

type VoteCandidateRepository interface {
	FindByID(ctx context.Context, id string) (domain.Candidate, error)
	IncrementVotes(ctx context.Context, id string) (domain.Candidate, error)
}

type BallotRepository interface {
	Find(ctx context.Context, studentID string) (domain.BallotRecord, error)
	AppendPosition(ctx context.Context, studentID, positionID string) error
}

// SessionVerifier is the session-scoped verification cache consulted before a
// vote is accepted.
type SessionVerifier interface {
	IsVerified(studentID string) bool
}

type VoteService struct {
	// mu serializes casts. The store commits each key in its own
	// transaction, so without it two concurrent requests for the same
	// (voter, position) both pass the ballot re-check and both count.
	mu sync.Mutex

	electionRepo  ElectionRepository
	candidateRepo VoteCandidateRepository
	ballotRepo    BallotRepository
	verifier      SessionVerifier
}

func NewVoteService(electionRepo ElectionRepository, candidateRepo VoteCandidateRepository, ballotRepo BallotRepository, verifier SessionVerifier) *VoteService {
	return &VoteService{
		electionRepo:  electionRepo,
		candidateRepo: candidateRepo,
		ballotRepo:    ballotRepo,
		verifier:      verifier,
	}
}

// CastVote accepts at most one vote per (voter, position).
//
// The ballot record is re-checked here, not just in the UI, because the
// caller may be racing a reload or a retry. The candidate tally is persisted
// before the ballot record on purpose: a crash between the two writes leaves
// an over-count, which is easier to audit than a silently dropped vote.
func (s *VoteService) CastVote(ctx context.Context, candidateID, positionID, studentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.electionRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("s.electionRepo.Get -> %w", err)
	}
	if !state.IsActive {
		return ErrElectionInactive
	}

	if !s.verifier.IsVerified(studentID) {
		return ErrNotVerified
	}

	record, err := s.ballotRepo.Find(ctx, studentID)
	if err != nil {
		return fmt.Errorf("s.ballotRepo.Find -> %w", err)
	}
	if record.HasVoted(positionID) {
		return ErrAlreadyVoted
	}

	candidate, err := s.candidateRepo.FindByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return ErrCandidateNotFound
		}
		return fmt.Errorf("s.candidateRepo.FindByID -> %w", err)
	}
	// A stale UI can submit a candidate under the wrong position tab.
	if candidate.Position != positionID {
		return ErrCandidateNotFound
	}

	if _, err = s.candidateRepo.IncrementVotes(ctx, candidateID); err != nil {
		return fmt.Errorf("s.candidateRepo.IncrementVotes -> %w", err)
	}

	if err = s.ballotRepo.AppendPosition(ctx, studentID, positionID); err != nil {
		return fmt.Errorf("s.ballotRepo.AppendPosition -> %w", err)
	}

	// VotedCount counts distinct participating voters: bump it only when this
	// ballot record just went from empty to non-empty.
	if len(record.VotedPositions) == 0 {
		state, err = s.electionRepo.Get(ctx)
		if err != nil {
			return fmt.Errorf("s.electionRepo.Get -> %w", err)
		}
		state.VotedCount++
		if err = s.electionRepo.Save(ctx, state); err != nil {
			return fmt.Errorf("s.electionRepo.Save -> %w", err)
		}
	}

	return nil
}

// VotedPositions returns the positions the voter has already voted for.
func (s *VoteService) VotedPositions(ctx context.Context, studentID string) ([]string, error) {
	record, err := s.ballotRepo.Find(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("s.ballotRepo.Find -> %w", err)
	}

	return record.VotedPositions, nil
}
