package repository

import (
	"context"
	"fmt"

	"github.com/campuselect/election-api/internal/domain"
	"github.com/campuselect/election-api/internal/repository/dao"
	"github.com/campuselect/election-api/internal/store"
)

type ElectionDAO interface {
	Get() (dao.ElectionState, error)
	Put(state dao.ElectionState) error
}

type ElectionRepository struct {
	dao ElectionDAO
	kv  *store.Store
}

func NewElectionRepository(d ElectionDAO, kv *store.Store) *ElectionRepository {
	return &ElectionRepository{
		dao: d,
		kv:  kv,
	}
}

func (r *ElectionRepository) Get(ctx context.Context) (domain.ElectionState, error) {
	found, err := r.dao.Get()
	if err != nil {
		return domain.ElectionState{}, fmt.Errorf("r.dao.Get -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ElectionRepository) Save(ctx context.Context, state domain.ElectionState) error {
	err := r.dao.Put(dao.ElectionState{
		IsActive:    state.IsActive,
		VotedCount:  state.VotedCount,
		TotalVoters: state.TotalVoters,
	})
	if err != nil {
		return fmt.Errorf("r.dao.Put -> %w", err)
	}

	return nil
}

// Wipe erases every key in the backing store, ballot records included.
func (r *ElectionRepository) Wipe(ctx context.Context) error {
	if err := r.kv.Clear(); err != nil {
		return fmt.Errorf("r.kv.Clear -> %w", err)
	}

	return nil
}

func (r *ElectionRepository) daoToDomain(s dao.ElectionState) domain.ElectionState {
	return domain.ElectionState{
		IsActive:    s.IsActive,
		VotedCount:  s.VotedCount,
		TotalVoters: s.TotalVoters,
	}
}
