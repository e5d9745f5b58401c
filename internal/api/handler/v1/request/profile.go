package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
)

// The policy needs lookaheads, which the stdlib regexp engine rejects, hence
// regexp2.
const passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`

var (
	passwordExp = regexp2.MustCompile(passwordRegexPattern, regexp2.None)

	errInvalidPassword         = errors.New("the password must be at least 8 characters and contain 1 letter and 1 number")
	errConfirmPasswordMismatch = errors.New("confirm password doesn't match the password")
	errMissingCurrentPassword  = errors.New("current password is required to change the password")
)

type UpdateProfileRequest struct {
	Name            string `json:"name"`
	CurrentPassword string `json:"current_password,omitempty"`
	NewPassword     string `json:"new_password,omitempty"`
	ConfirmPassword string `json:"confirm_password,omitempty"`
}

func (req *UpdateProfileRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
	if err != nil {
		return err
	}

	if req.NewPassword == "" && req.ConfirmPassword == "" {
		return nil
	}

	if req.CurrentPassword == "" {
		return errMissingCurrentPassword
	}
	if req.NewPassword != req.ConfirmPassword {
		return errConfirmPasswordMismatch
	}

	ok, err := passwordExp.MatchString(req.NewPassword)
	if err != nil || !ok {
		return errInvalidPassword
	}

	return nil
}
