package domain

import "errors"

// Auth errors
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPendingApproval    = errors.New("account is pending admin approval")
	ErrMissingToken       = errors.New("access token required")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("forbidden")
)

// Signup side-effect errors
var (
	ErrUploadFailed    = errors.New("image upload failed")
	ErrProfileCreation = errors.New("profile creation failed")
)

// Input errors
var ErrInvalidInput = errors.New("invalid input")
