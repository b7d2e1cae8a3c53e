package dto

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RegisterRequest is the /v1/register payload.
type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// Validate checks field constraints and returns a map from field name to
// violation messages. An empty map means the request is valid.
func (r RegisterRequest) Validate() map[string][]string {
	errs := map[string][]string{}

	if r.Name == "" {
		addError(errs, "name", "name is required")
	} else if len(r.Name) > 255 {
		addError(errs, "name", "name must not exceed 255 characters")
	}

	validateEmailField(errs, "email", r.Email)

	if r.Password == "" {
		addError(errs, "password", "password is required")
	} else if len(r.Password) < 8 {
		addError(errs, "password", "password must be at least 8 characters")
	}

	if r.PasswordConfirmation == "" {
		addError(errs, "password_confirmation", "password_confirmation is required")
	} else if len(r.PasswordConfirmation) < 8 {
		addError(errs, "password_confirmation", "password_confirmation must be at least 8 characters")
	}

	return errs
}

// LoginRequest is the /v1/login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks field constraints, same contract as RegisterRequest.Validate.
func (r LoginRequest) Validate() map[string][]string {
	errs := map[string][]string{}

	validateEmailField(errs, "email", r.Email)

	if r.Password == "" {
		addError(errs, "password", "password is required")
	}

	return errs
}

func validateEmailField(errs map[string][]string, field, value string) {
	if value == "" {
		addError(errs, field, fmt.Sprintf("%s is required", field))
		return
	}
	if len(value) > 255 {
		addError(errs, field, fmt.Sprintf("%s must not exceed 255 characters", field))
	}
	if err := validate.Var(value, "email"); err != nil {
		addError(errs, field, fmt.Sprintf("%s must be a valid email address", field))
	}
}

func addError(errs map[string][]string, field, message string) {
	errs[field] = append(errs[field], message)
}
