package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps go-playground/validator to implement Echo's
// Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// SignInRequest is the login form payload. The required rules mirror the
// HTML-level required marking; there is no further client-side validation.
type SignInRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// RegisterRequest is the registration form payload. Shop slots are optional;
// empty strings are valid and submitted as-is.
type RegisterRequest struct {
	Username string   `form:"username" validate:"required"`
	Password string   `form:"password" validate:"required"`
	Shops    []string `form:"shops"`
	Remember bool     `form:"remember"`
}

// shopSlots folds the submitted shop values into the fixed three-slot list.
// The list length is invariant: missing values stay empty, extras are dropped.
func (r *RegisterRequest) shopSlots() [3]string {
	var slots [3]string
	copy(slots[:], r.Shops)
	return slots
}
