package dao

// Store keys. Each is an independent record; there is no schema versioning.
const (
	KeyElectionState   = "electionState"
	KeyCandidates      = "candidates"
	KeyCustomUsers     = "customUsers"
	KeyCustomPasswords = "customPasswords"

	voterKeyPrefix = "voter_"
)

// VoterKey builds the ballot-record key for a student id.
func VoterKey(studentID string) string {
	return voterKeyPrefix + studentID
}
