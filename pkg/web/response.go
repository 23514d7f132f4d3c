// Package web defines common components for a web application.
package web

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// JSONError provides type for explicit json encoded error response.
type JSONError struct {
	Error string `json:"error"`
}

// Error wraps a given err into json friendly struct.
func Error(err error) JSONError {
	return JSONError{Error: err.Error()}
}

// Response holds the common response type for all APIs.
type Response struct {
	AccessToken           string    `json:"access_token,omitempty"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at,omitempty"`
	RefreshToken          string    `json:"refresh_token,omitempty"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at,omitempty"`
	Data                  any       `json:"data,omitempty"`
	Error                 JSONError `json:"error,omitempty"`
}

// GetErrorMsg maps field validation errors to readable messages.
func GetErrorMsg(ve validator.ValidationErrors) JSONError {
	fe := ve[0]

	var msg string

	switch fe.Tag() {
	case "required":
		msg = "this field is required"
	case "min":
		msg = fmt.Sprintf("should be at least %s characters long", fe.Param())
	case "alphanum":
		msg = "only alphanumeric characters allowed"
	case "email":
		msg = "invalid email"
	case "genre":
		msg = "unsupported genre"
	case "gt":
		msg = fmt.Sprintf("should be greater than %s", fe.Param())
	default:
		msg = "unknown error"
	}

	return JSONError{Error: fmt.Sprintf("field %s: %s", fe.Field(), msg)}
}
