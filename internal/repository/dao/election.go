package dao

import (
	"encoding/json"
	"fmt"

	"github.com/campuselect/election-api/internal/store"
)

type ElectionState struct {
	IsActive    bool `json:"isActive"`
	VotedCount  int  `json:"votedCount"`
	TotalVoters int  `json:"totalVoters"`
}

type ElectionDAO struct {
	kv *store.Store
}

func NewElectionDAO(kv *store.Store) *ElectionDAO {
	return &ElectionDAO{
		kv: kv,
	}
}

// Get returns the persisted election state, or defaults when the key has
// never been written.
func (d *ElectionDAO) Get() (ElectionState, error) {
	raw, found, err := d.kv.Get(KeyElectionState)
	if err != nil {
		return ElectionState{}, fmt.Errorf("kv.Get -> %w", err)
	}
	if !found {
		return ElectionState{}, nil
	}

	var state ElectionState
	if err = json.Unmarshal(raw, &state); err != nil {
		return ElectionState{}, fmt.Errorf("json.Unmarshal -> %w", err)
	}

	return state, nil
}

func (d *ElectionDAO) Put(state ElectionState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	if err = d.kv.Put(KeyElectionState, raw); err != nil {
		return fmt.Errorf("kv.Put -> %w", err)
	}

	return nil
}
