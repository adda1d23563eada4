package service

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the service layer. Handlers map these onto
// HTTP status codes; anything else is treated as an internal error.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// that login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers malformed, unsigned and tampered tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired wraps ErrInvalidToken: an expired token is still an
	// invalid one for callers that do not care about the distinction.
	ErrTokenExpired = fmt.Errorf("%w: token expired", ErrInvalidToken)

	// ErrUserNotFound means a syntactically valid token referenced an
	// account that no longer exists.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail is a registration conflict on the unique email index.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrPasswordMismatch is a registration confirmation mismatch.
	ErrPasswordMismatch = errors.New("password confirmation does not match")

	// ErrInvalidRole rejects registration of roles outside athlete/coach.
	ErrInvalidRole = errors.New("role must be athlete or coach")

	// ErrAthleteNotFound is returned for operations on a missing athlete row.
	ErrAthleteNotFound = errors.New("athlete not found")

	// ErrPerformanceNotFound is returned for operations on a missing
	// performance row.
	ErrPerformanceNotFound = errors.New("performance not found")

	// ErrUserMissing rejects athlete profiles referencing a nonexistent user.
	ErrUserMissing = errors.New("user does not exist")

	// ErrAthleteMissing rejects performances referencing a nonexistent
	// athlete.
	ErrAthleteMissing = errors.New("athlete does not exist")
)
