package service

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")

	// ErrNotFound covers both unknown rows and rows the acting user does not
	// own; ownership mismatches are reported identically to avoid leaking
	// other users' ids.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks rejected input. Handlers map it to 400.
	ErrValidation = errors.New("validation failed")

	ErrWrongPassword = errors.New("wrong password")

	// ErrPaymentVerification covers unknown trade numbers and ownership
	// mismatches on payment confirmation. State stays untouched.
	ErrPaymentVerification = errors.New("payment verification failed")
)
