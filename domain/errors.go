package domain

import "errors"

// User store errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Confirmation errors
var (
	ErrConfirmationNotFound    = errors.New("confirmation code not found")
	ErrConfirmationInvalid     = errors.New("invalid confirmation code")
	ErrConfirmationMaxAttempts = errors.New("maximum confirmation attempts exceeded")
	ErrConfirmationThrottled   = errors.New("confirmation resend limit exceeded")
)

// User-facing failure messages. InvalidCredentials covers both "account
// not found" and "wrong password" so callers cannot enumerate accounts.
const (
	MsgInvalidCredentials = "invalid email or password"
	MsgAccountDisabled    = "account is disabled"
	MsgEmailNotConfirmed  = "email address has not been confirmed"
	MsgDuplicateEmail     = "an account with this email already exists"
)
