package domain

import (
	"context"
	"time"
)

// UserRepository defines credential data access operations. Lookups never
// return soft-deleted records; email comparisons are case-insensitive
// against the stored lowercase form. The store enforces email uniqueness
// with a constraint, closing the check-then-insert race.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error
	ConfirmEmail(ctx context.Context, id uint) error
}

// PasswordService defines one-way credential hashing operations.
type PasswordService interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches hash. Malformed hashes
	// degrade to false, never an error.
	Verify(hashedPassword, password string) bool
	// NeedsRehash reports whether hash was produced with a cost below the
	// currently configured target.
	NeedsRehash(hashedPassword string) bool
}

// TokenService defines stateless token issuance and validation. Expiry is
// the only invalidation mechanism; there is no revocation list.
type TokenService interface {
	// Issue signs a token for the subject. A zero ttl selects the
	// configured default. Extra claims are string key-value pairs fixed
	// at issuance.
	Issue(userID uint, email string, extra map[string]string, ttl time.Duration) (token string, expiresAt time.Time, err error)
	Validate(token string) (*TokenClaims, error)
	ExtractSubjectID(token string) (uint, error)
}

// AuthService defines the registration and authentication flows. Business
// outcomes come back in the result value; a non-nil error always means
// infrastructure malfunction.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*RegisterResult, error)
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
}

// ConfirmationService manages email confirmation codes.
type ConfirmationService interface {
	Send(ctx context.Context, userID uint, email string) (*ConfirmationRequest, error)
	Confirm(ctx context.Context, email, code string) error
	CanResend(ctx context.Context, email string) (bool, int64, error)
}

// NotificationService defines outbound notification operations.
type NotificationService interface {
	SendEmail(to, subject, body string) error
	SendSMS(to, message string) error
}

// PolicyService defines authorization policy operations.
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// CasbinEnforcer is the subset of the Casbin enforcer the policy service
// needs, kept narrow for testing.
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
