package domain

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("user already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("incorrect password")
	ErrUnauthenticated    = errors.New("invalid or expired token")
	ErrRateLimited        = errors.New("please wait before requesting another OTP")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrAuthProvider       = errors.New("auth provider error")
	ErrForbidden          = errors.New("forbidden")
	ErrInternal           = errors.New("internal error")
)
