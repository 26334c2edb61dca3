package domain

import "time"

// FailureCode tags the business-rule outcome of a flow. Infrastructure
// failures are never represented here; they travel as Go errors.
type FailureCode string

const (
	FailureNone               FailureCode = ""
	FailureValidation         FailureCode = "validation_failed"
	FailureDuplicateEmail     FailureCode = "duplicate_email"
	FailureInvalidCredentials FailureCode = "invalid_credentials"
	FailureAccountDisabled    FailureCode = "account_disabled"
	FailureEmailNotConfirmed  FailureCode = "email_not_confirmed"
)

// RegisterResult is the outcome of the registration flow. Callers branch
// on Success; Errors lists every violated rule when Code is
// FailureValidation.
type RegisterResult struct {
	Success bool
	Code    FailureCode
	Errors  []string
	UserID  uint
	Email   string
	Token   string
	Message string
}

// LoginResult is the outcome of the authentication flow.
type LoginResult struct {
	Success     bool
	Code        FailureCode
	Errors      []string
	UserID      uint
	Email       string
	DisplayName string
	Token       string
	ExpiresAt   time.Time
}

// RegisterFailure builds a failed registration result.
func RegisterFailure(code FailureCode, errs ...string) *RegisterResult {
	return &RegisterResult{Code: code, Errors: errs}
}

// LoginFailure builds a failed login result.
func LoginFailure(code FailureCode, errs ...string) *LoginResult {
	return &LoginResult{Code: code, Errors: errs}
}
