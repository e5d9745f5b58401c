package service

import (
	"errors"
	"sync"
)

var ErrNotVerified = errors.New("student id not verified for this session")

// suffixLen is how many trailing characters of a student id are considered
// authoritative. Printed and digital ids carry inconsistent institution
// prefixes, so only the suffix is compared.
const suffixLen = 9

// VerifyService reconciles scanned credentials against the logged-in voter
// and remembers who has passed verification for the lifetime of the process.
// The verified set is deliberately never persisted; a restart clears it.
type VerifyService struct {
	mu       sync.Mutex
	verified map[string]struct{}
}

func NewVerifyService() *VerifyService {
	return &VerifyService{
		verified: make(map[string]struct{}),
	}
}

// Verify extracts a student id from the raw scan and compares its trailing
// characters with the voter's id. On a match the voter is marked verified for
// the rest of the session.
func (s *VerifyService) Verify(scannedRaw, studentID string) bool {
	extracted := ExtractStudentID(scannedRaw)

	if suffix(extracted) != suffix(studentID) {
		return false
	}

	s.mu.Lock()
	s.verified[studentID] = struct{}{}
	s.mu.Unlock()

	return true
}

// IsVerified reports whether the voter has completed a successful scan during
// this app session.
func (s *VerifyService) IsVerified(studentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.verified[studentID]

	return ok
}

// suffix returns the trailing suffixLen characters, or the whole string when
// it is shorter. Short test ids degrade to whole-string comparison.
func suffix(id string) string {
	if len(id) <= suffixLen {
		return id
	}
	return id[len(id)-suffixLen:]
}
