package apperrors

import (
	"fmt"
	"net/http"
)

// ErrInvalidInput wraps a boundary validation failure (bad category,
// dimension, range, sort mode or page size).
func ErrInvalidInput(err error) *AppError {
	return Wrap(err, CodeInvalidInput, "query", err.Error(), http.StatusBadRequest)
}

// ErrInvalidTransition reports a lifecycle operation that the listing's
// current status does not allow.
func ErrInvalidTransition(from, op string) *AppError {
	return New(
		CodeInvalidTransition,
		"listing",
		fmt.Sprintf("Operation %q is not allowed from status %q", op, from),
		http.StatusConflict,
	).WithDetails(map[string]string{"from": from, "operation": op})
}

// --- Listings ---

var ErrListingNotFound = New(
	CodeNotFound,
	"listing",
	"Listing not found",
	http.StatusNotFound,
)

var ErrDraftNotFound = New(
	CodeNotFound,
	"draft",
	"Draft not found",
	http.StatusNotFound,
)

var ErrNotListingOwner = New(
	CodeForbidden,
	"listing",
	"You do not own this listing",
	http.StatusForbidden,
)

var ErrAttributesMismatch = New(
	CodeInvalidInput,
	"listing",
	"Attributes do not match the listing category",
	http.StatusBadRequest,
)

// --- Payments ---

var ErrUnknownPlan = New(
	CodeInvalidInput,
	"payment",
	"No plan matches the requested tier and duration",
	http.StatusBadRequest,
)

// --- Auth ---

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrRateLimited = New(
	CodeRateLimited,
	"http",
	"Too many requests",
	http.StatusTooManyRequests,
)
