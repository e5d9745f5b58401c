package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/campuselect/election-api/internal/domain"
	"github.com/campuselect/election-api/internal/repository/dao"
)

var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrPositionNotFound  = errors.New("position not found")
)

type CandidateDAO interface {
	GetAll() ([]dao.Candidate, error)
	PutAll(candidates []dao.Candidate) error
}

type CandidateRepository struct {
	dao CandidateDAO
}

func NewCandidateRepository(d CandidateDAO) *CandidateRepository {
	return &CandidateRepository{
		dao: d,
	}
}

func (r *CandidateRepository) FindAll(ctx context.Context) ([]domain.Candidate, error) {
	found, err := r.dao.GetAll()
	if err != nil {
		return nil, fmt.Errorf("r.dao.GetAll -> %w", err)
	}

	candidates := make([]domain.Candidate, 0, len(found))
	for _, c := range found {
		candidates = append(candidates, r.daoToDomain(c))
	}

	return candidates, nil
}

func (r *CandidateRepository) FindByID(ctx context.Context, id string) (domain.Candidate, error) {
	found, err := r.dao.GetAll()
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("r.dao.GetAll -> %w", err)
	}

	for _, c := range found {
		if c.ID == id {
			return r.daoToDomain(c), nil
		}
	}

	return domain.Candidate{}, ErrCandidateNotFound
}

// Create appends the candidate to the collection, assigning a fresh id and a
// zero vote counter.
func (r *CandidateRepository) Create(ctx context.Context, candidate domain.Candidate) (domain.Candidate, error) {
	found, err := r.dao.GetAll()
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("r.dao.GetAll -> %w", err)
	}

	candidate.ID = uuid.NewString()
	candidate.Votes = 0
	found = append(found, r.domainToDAO(candidate))

	if err = r.dao.PutAll(found); err != nil {
		return domain.Candidate{}, fmt.Errorf("r.dao.PutAll -> %w", err)
	}

	return candidate, nil
}

// Update replaces every field except the vote counter, which survives edits.
func (r *CandidateRepository) Update(ctx context.Context, candidate domain.Candidate) (domain.Candidate, error) {
	found, err := r.dao.GetAll()
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("r.dao.GetAll -> %w", err)
	}

	for i, c := range found {
		if c.ID != candidate.ID {
			continue
		}

		candidate.Votes = c.Votes
		found[i] = r.domainToDAO(candidate)
		if err = r.dao.PutAll(found); err != nil {
			return domain.Candidate{}, fmt.Errorf("r.dao.PutAll -> %w", err)
		}

		return candidate, nil
	}

	return domain.Candidate{}, ErrCandidateNotFound
}

func (r *CandidateRepository) Delete(ctx context.Context, id string) error {
	found, err := r.dao.GetAll()
	if err != nil {
		return fmt.Errorf("r.dao.GetAll -> %w", err)
	}

	for i, c := range found {
		if c.ID != id {
			continue
		}

		found = append(found[:i], found[i+1:]...)
		if err = r.dao.PutAll(found); err != nil {
			return fmt.Errorf("r.dao.PutAll -> %w", err)
		}

		return nil
	}

	return ErrCandidateNotFound
}

// IncrementVotes bumps one candidate's tally by one and persists the whole
// collection.
func (r *CandidateRepository) IncrementVotes(ctx context.Context, id string) (domain.Candidate, error) {
	found, err := r.dao.GetAll()
	if err != nil {
		return domain.Candidate{}, fmt.Errorf("r.dao.GetAll -> %w", err)
	}

	for i := range found {
		if found[i].ID != id {
			continue
		}

		found[i].Votes++
		if err = r.dao.PutAll(found); err != nil {
			return domain.Candidate{}, fmt.Errorf("r.dao.PutAll -> %w", err)
		}

		return r.daoToDomain(found[i]), nil
	}

	return domain.Candidate{}, ErrCandidateNotFound
}

// ResetVotes zeroes every candidate's tally. Ballot records are untouched.
func (r *CandidateRepository) ResetVotes(ctx context.Context) error {
	found, err := r.dao.GetAll()
	if err != nil {
		return fmt.Errorf("r.dao.GetAll -> %w", err)
	}

	for i := range found {
		found[i].Votes = 0
	}

	if err = r.dao.PutAll(found); err != nil {
		return fmt.Errorf("r.dao.PutAll -> %w", err)
	}

	return nil
}

func (r *CandidateRepository) daoToDomain(c dao.Candidate) domain.Candidate {
	return domain.Candidate{
		ID:         c.ID,
		Name:       c.Name,
		StudentID:  c.StudentID,
		Position:   c.Position,
		Department: c.Department,
		Session:    c.Session,
		Manifesto:  c.Manifesto,
		Symbol:     c.Symbol,
		Votes:      c.Votes,
	}
}

func (r *CandidateRepository) domainToDAO(c domain.Candidate) dao.Candidate {
	return dao.Candidate{
		ID:         c.ID,
		Name:       c.Name,
		StudentID:  c.StudentID,
		Position:   c.Position,
		Department: c.Department,
		Session:    c.Session,
		Manifesto:  c.Manifesto,
		Symbol:     c.Symbol,
		Votes:      c.Votes,
	}
}
