package dao

import (
	"encoding/json"
	"fmt"

	"github.com/campuselect/election-api/internal/store"
)

type Candidate struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	StudentID  string `json:"studentId"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Session    string `json:"session"`
	Manifesto  string `json:"manifesto"`
	Symbol     string `json:"symbol"`
	Votes      int    `json:"votes"`
}

// CandidateDAO persists the candidate collection as a single ordered list
// under one key. The whole list is rewritten on every mutation; ordering is
// insertion order and is what makes result ties deterministic.
type CandidateDAO struct {
	kv *store.Store
}

func NewCandidateDAO(kv *store.Store) *CandidateDAO {
	return &CandidateDAO{
		kv: kv,
	}
}

func (d *CandidateDAO) GetAll() ([]Candidate, error) {
	raw, found, err := d.kv.Get(KeyCandidates)
	if err != nil {
		return nil, fmt.Errorf("kv.Get -> %w", err)
	}
	if !found {
		return []Candidate{}, nil
	}

	var candidates []Candidate
	if err = json.Unmarshal(raw, &candidates); err != nil {
		return nil, fmt.Errorf("json.Unmarshal -> %w", err)
	}

	return candidates, nil
}

func (d *CandidateDAO) PutAll(candidates []Candidate) error {
	raw, err := json.Marshal(candidates)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	if err = d.kv.Put(KeyCandidates, raw); err != nil {
		return fmt.Errorf("kv.Put -> %w", err)
	}

	return nil
}
