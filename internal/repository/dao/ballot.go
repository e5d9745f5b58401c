package dao

import (
	"encoding/json"
	"fmt"

	"github.com/campuselect/election-api/internal/store"
)

type BallotRecord struct {
	VotedPositions []string `json:"votedPositions"`
}

type BallotDAO struct {
	kv *store.Store
}

func NewBallotDAO(kv *store.Store) *BallotDAO {
	return &BallotDAO{
		kv: kv,
	}
}

// Get returns the voter's ballot record. A voter who has never voted has no
// record; that reads back as an empty one.
func (d *BallotDAO) Get(studentID string) (BallotRecord, error) {
	raw, found, err := d.kv.Get(VoterKey(studentID))
	if err != nil {
		return BallotRecord{}, fmt.Errorf("kv.Get -> %w", err)
	}
	if !found {
		return BallotRecord{VotedPositions: []string{}}, nil
	}

	var record BallotRecord
	if err = json.Unmarshal(raw, &record); err != nil {
		return BallotRecord{}, fmt.Errorf("json.Unmarshal -> %w", err)
	}
	if record.VotedPositions == nil {
		record.VotedPositions = []string{}
	}

	return record, nil
}

func (d *BallotDAO) Put(studentID string, record BallotRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	if err = d.kv.Put(VoterKey(studentID), raw); err != nil {
		return fmt.Errorf("kv.Put -> %w", err)
	}

	return nil
}
