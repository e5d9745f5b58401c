package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// VerifyScanRequest carries the raw decoded text from the credential
// scanner. Extraction happens server-side; clients send what they read.
type VerifyScanRequest struct {
	ScannedData string `json:"scanned_data"`
}

func (req *VerifyScanRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ScannedData, validation.Required),
	)
}

type CastVoteRequest struct {
	CandidateID string `json:"candidate_id"`
	Position    string `json:"position"`
}

func (req *CastVoteRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CandidateID, validation.Required),
		validation.Field(&req.Position, validation.Required),
	)
}

type ToggleElectionRequest struct {
	IsActive *bool `json:"is_active"`
}

func (req *ToggleElectionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.IsActive, validation.NotNil),
	)
}
