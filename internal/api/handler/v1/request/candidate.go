package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type SaveCandidateRequest struct {
	Name       string `json:"name"`
	StudentID  string `json:"student_id"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Session    string `json:"session,omitempty"`
	Manifesto  string `json:"manifesto,omitempty"`
	Symbol     string `json:"symbol"`
}

func (req *SaveCandidateRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.StudentID, validation.Required, is.Digit),
		validation.Field(&req.Position, validation.Required),
		validation.Field(&req.Department, validation.Required),
		validation.Field(&req.Symbol, validation.Required),
		validation.Field(&req.Manifesto, validation.Length(0, 2000)),
	)
}
