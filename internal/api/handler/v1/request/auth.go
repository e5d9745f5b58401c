package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type LoginRequest struct {
	StudentID string `json:"student_id"`
	Password  string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StudentID, validation.Required, is.Digit),
		validation.Field(&req.Password, validation.Required),
	)
}
