// Package response holds the wire-level JSON shapes of the API. The shapes
// are flat and part of the external contract: errors are always
// {"error": "..."} and confirmations are {"message": "..."}.
package response

import (
	"github.com/labstack/echo/v4"
)

// ErrorBody is the body of every non-2xx response.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody is the body of confirmation-only responses.
type MessageBody struct {
	Message string `json:"message"`
}

// LoginBody is the body of a successful login.
type LoginBody struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Error writes an error response.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorBody{Error: message})
}

// Message writes a confirmation response.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}
