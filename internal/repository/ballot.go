package repository

import (
	"context"
	"fmt"

	"github.com/campuselect/election-api/internal/domain"
	"github.com/campuselect/election-api/internal/repository/dao"
)

type BallotDAO interface {
	Get(studentID string) (dao.BallotRecord, error)
	Put(studentID string, record dao.BallotRecord) error
}

type BallotRepository struct {
	dao BallotDAO
}

func NewBallotRepository(d BallotDAO) *BallotRepository {
	return &BallotRepository{
		dao: d,
	}
}

func (r *BallotRepository) Find(ctx context.Context, studentID string) (domain.BallotRecord, error) {
	found, err := r.dao.Get(studentID)
	if err != nil {
		return domain.BallotRecord{}, fmt.Errorf("r.dao.Get -> %w", err)
	}

	return domain.BallotRecord{
		StudentID:      studentID,
		VotedPositions: found.VotedPositions,
	}, nil
}

// AppendPosition records positionID on the voter's ballot. Positions are only
// ever appended here.
func (r *BallotRepository) AppendPosition(ctx context.Context, studentID, positionID string) error {
	found, err := r.dao.Get(studentID)
	if err != nil {
		return fmt.Errorf("r.dao.Get -> %w", err)
	}

	found.VotedPositions = append(found.VotedPositions, positionID)
	if err = r.dao.Put(studentID, found); err != nil {
		return fmt.Errorf("r.dao.Put -> %w", err)
	}

	return nil
}
