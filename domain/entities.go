package domain

import "time"

// User represents a credential record: one account's login identity and secret.
type User struct {
	ID             uint
	FullName       string
	Email          string // always stored lowercase
	PasswordHash   string // never logged, never returned to callers
	EmailConfirmed bool
	IsActive       bool
	LastLoginAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginInput carries the login form fields. RememberMe selects the
// extended token lifetime tier.
type LoginInput struct {
	Email      string
	Password   string
	RememberMe bool
}

// TokenClaims represents the decoded claim set of a validated token.
type TokenClaims struct {
	UserID    uint
	Email     string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Extra     map[string]string
}

// ConfirmationRequest represents a pending email confirmation code.
type ConfirmationRequest struct {
	Email     string
	Code      string
	UserID    uint
	ExpiresAt time.Time
	Attempts  int
}
