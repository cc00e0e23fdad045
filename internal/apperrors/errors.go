// Package apperrors defines the sentinel errors shared across services and
// handlers. Services wrap these with context via fmt.Errorf("%w"); handlers
// match them with errors.Is to pick a status code.
package apperrors

import "errors"

// ErrDuplicateUser is returned when a signup targets an existing username.
var ErrDuplicateUser = errors.New("username already taken")

// ErrInvalidCredentials is returned on signin when the user does not exist
// or the password does not match. Callers must not distinguish the two.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrNotFound is returned when a record (content, share link, user) is
// absent or not owned by the requesting user.
var ErrNotFound = errors.New("record not found")

// ErrUnauthenticated is returned when a session token is missing, has an
// invalid signature, is expired, or its payload lacks a user identifier.
var ErrUnauthenticated = errors.New("unauthenticated")
