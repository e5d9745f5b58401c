package dao

import (
	"encoding/json"
	"fmt"

	"github.com/campuselect/election-api/internal/store"
)

type User struct {
	StudentID  string `json:"studentId"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Session    string `json:"session"`
	IsAdmin    bool   `json:"isAdmin"`
}

// UserDAO reads and writes the identity override maps. The seeded roster is
// the base identity source; customUsers and customPasswords hold per-student
// overrides written by profile updates.
type UserDAO struct {
	kv *store.Store
}

func NewUserDAO(kv *store.Store) *UserDAO {
	return &UserDAO{
		kv: kv,
	}
}

func (d *UserDAO) GetCustomUsers() (map[string]User, error) {
	users := map[string]User{}
	if err := d.getMap(KeyCustomUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (d *UserDAO) PutCustomUsers(users map[string]User) error {
	return d.putMap(KeyCustomUsers, users)
}

// GetCustomPasswords returns studentID -> bcrypt hash for every student who
// has changed their password.
func (d *UserDAO) GetCustomPasswords() (map[string]string, error) {
	passwords := map[string]string{}
	if err := d.getMap(KeyCustomPasswords, &passwords); err != nil {
		return nil, err
	}
	return passwords, nil
}

func (d *UserDAO) PutCustomPasswords(passwords map[string]string) error {
	return d.putMap(KeyCustomPasswords, passwords)
}

func (d *UserDAO) getMap(key string, out any) error {
	raw, found, err := d.kv.Get(key)
	if err != nil {
		return fmt.Errorf("kv.Get -> %w", err)
	}
	if !found {
		return nil
	}

	if err = json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("json.Unmarshal -> %w", err)
	}

	return nil
}

func (d *UserDAO) putMap(key string, val any) error {
	raw, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	if err = d.kv.Put(key, raw); err != nil {
		return fmt.Errorf("kv.Put -> %w", err)
	}

	return nil
}
