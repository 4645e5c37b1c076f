// Package common defines the sentinel errors shared by every layer of the
// blog service. Stores and services wrap these with detail via fmt.Errorf
// ("%w: …"); callers match them with errors.Is. The outermost surface
// (HTTP or gRPC) translates them into protocol codes exactly once.
package common

import "errors"

// The error texts double as the client-visible message prefixes, so they
// keep their sentence casing.
var (
	ErrAlreadyExists = errors.New("User already exists")
	ErrUnauthorized  = errors.New("User unauthorized")
	ErrUserNotFound  = errors.New("User not found")
	ErrPostNotFound  = errors.New("Post not found")
	ErrInternal      = errors.New("Internal server error")
)
