package errors

import "errors"

// Validation failures surface inline and leave local state untouched. The
// messages are the exact strings shown to staff.
var (
	ErrInvalidWeight   = errors.New("invalid weight")
	ErrNoItemsSelected = errors.New("no items selected")
	ErrMissingWaiter   = errors.New("missing waiter")
)

var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyFinished  = errors.New("order already finished")
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrInvalidRole      = errors.New("invalid role")
	ErrLoginRejected    = errors.New("login rejected")
	ErrNoCredential     = errors.New("no credential")
	ErrBadCredential    = errors.New("malformed credential")
	ErrRoleNotAllowed   = errors.New("role not allowed")
	ErrStaleResponse    = errors.New("stale response discarded")
	ErrUnknownSalesType = errors.New("unknown sales type")
)

// IsValidation reports whether err belongs to the user-input taxonomy, i.e.
// it should be rendered inline rather than as a network or auth failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidWeight) ||
		errors.Is(err, ErrNoItemsSelected) ||
		errors.Is(err, ErrMissingWaiter) ||
		errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrInvalidRole) ||
		errors.Is(err, ErrUnknownSalesType)
}
