package apperrors

import "net/http"

// =========================================================================
// Auth
// =========================================================================

// ErrEmailAlreadyExists is returned by signup when the email is taken.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

// ErrInvalidCredentials is deliberately the same for an unknown email and a
// wrong password.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

// ErrUnauthorized covers a missing or wrong product key, a guard denial and a
// failed ownership check.
var ErrUnauthorized = New(
	CodeUnauthorized,
	"auth",
	"Unauthorized",
	http.StatusUnauthorized,
)

// =========================================================================
// Homes
// =========================================================================

var ErrHomeNotFound = New(
	CodeNotFound,
	"home",
	"Home not found",
	http.StatusNotFound,
)

// ErrNoHomesFound is returned when a search matches nothing.
var ErrNoHomesFound = New(
	CodeNotFound,
	"home",
	"No homes found",
	http.StatusNotFound,
)
