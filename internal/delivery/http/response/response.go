// Package response defines the JSON envelopes of the public API: successful
// responses wrap their payload in "data", error responses carry a stable
// "message" and optional machine-readable "details".
package response

import (
	"github.com/labstack/echo/v4"
)

// DataEnvelope wraps every successful payload. Data has no omitempty on
// purpose: an absent record serializes as {"data": null}.
type DataEnvelope struct {
	Data any `json:"data"`
}

// ErrorEnvelope is the body of every error response.
type ErrorEnvelope struct {
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Data writes a successful response.
func Data(c echo.Context, statusCode int, payload any) error {
	return c.JSON(statusCode, DataEnvelope{Data: payload})
}

// Fail writes an error response.
func Fail(c echo.Context, statusCode int, message string, details any) error {
	return c.JSON(statusCode, ErrorEnvelope{
		Message: message,
		Details: details,
	})
}
