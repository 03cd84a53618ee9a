// Package services defines the business logic for generations, history, and
// accounts. This file centralizes service-level error values so that they can
// be consistently returned by service methods and checked by callers.
//
// Translation into user-facing messages or HTTP status codes is performed at
// the handler layer.
package services

import "errors"

// Generation errors.
var (
	// ErrBadRequest marks caller input that fails validation. Wrapped errors
	// carry a field-specific message.
	ErrBadRequest = errors.New("bad request")

	// ErrMisconfigured is returned when the completion endpoint has no
	// credentials (or Google sign-in is not set up).
	ErrMisconfigured = errors.New("service misconfigured")

	// ErrUpstreamRateLimited is returned when the provider answered 429.
	ErrUpstreamRateLimited = errors.New("upstream rate limited")

	// ErrUpstreamQuotaExhausted is returned when the provider answered 402.
	ErrUpstreamQuotaExhausted = errors.New("upstream credits exhausted")

	// ErrUpstream covers every other provider failure.
	ErrUpstream = errors.New("upstream error")

	// ErrDecodeInvalid is returned when the model output is not the JSON
	// object the prompt asked for.
	ErrDecodeInvalid = errors.New("model output could not be decoded")
)

// History errors.
var (
	// ErrRecordNotFound indicates that the record does not exist or belongs
	// to another owner.
	ErrRecordNotFound = errors.New("record not found")
)

// Account errors.
var (
	// ErrEmailTaken is returned by signup when the email already has an account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned by login for an unknown email or a
	// wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is returned when a token refers to a user that no
	// longer exists.
	ErrUserNotFound = errors.New("user not found")
)
