package service

import "errors"

// Domain errors. Handlers map these onto HTTP statuses with errors.Is,
// so services wrap them (fmt.Errorf("%w: ...")) rather than replacing them.
var (
	// ErrInvalidInput covers malformed or missing request fields.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateUsername is returned on registration conflicts.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrInvalidCredentials is returned for both an unknown username and
	// a wrong password, so callers cannot tell which case occurred.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotFound means the list id does not resolve to a record.
	ErrNotFound = errors.New("list not found")

	// ErrForbidden means the requester is authenticated but not the owner.
	ErrForbidden = errors.New("must be the owner")
)
