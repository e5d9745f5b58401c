// Package store wraps a local bbolt file as a flat key-value store.
//
// Every entry is an independent record: each Get/Put/Delete runs in its own
// bolt transaction, and callers get no cross-key transactionality. Sequencing
// across keys is the responsibility of the service layer.
package store

import (
	"fmt"

	bolt "go.etcd.io/bbolt"
)

var bucketName = []byte("election")

type Store struct {
	db *bolt.DB
}

func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("bolt.Open -> %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("tx.CreateBucketIfNotExists -> %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the raw value for key. The second return reports whether the
// key exists; a missing key is not an error.
func (s *Store) Get(key string) ([]byte, bool, error) {
	var (
		val   []byte
		found bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketName).Get([]byte(key))
		if v != nil {
			found = true
			val = make([]byte, len(v))
			copy(val, v)
		}
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("db.View -> %w", err)
	}

	return val, found, nil
}

func (s *Store) Put(key string, val []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), val)
	})
	if err != nil {
		return fmt.Errorf("db.Update -> %w", err)
	}

	return nil
}

func (s *Store) Delete(key string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("db.Update -> %w", err)
	}

	return nil
}

// Clear drops every key in the store.
func (s *Store) Clear() error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketName); err != nil {
			return err
		}
		_, err := tx.CreateBucket(bucketName)
		return err
	})
	if err != nil {
		return fmt.Errorf("db.Update -> %w", err)
	}

	return nil
}
