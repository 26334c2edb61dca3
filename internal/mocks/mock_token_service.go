package mocks

import (
	"fmt"
	"time"

	"github.com/you/authsvc/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	IssueFunc            func(userID uint, email string, extra map[string]string, ttl time.Duration) (string, time.Time, error)
	ValidateFunc         func(token string) (*domain.TokenClaims, error)
	ExtractSubjectIDFunc func(token string) (uint, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Issue issues a fake token
func (m *MockTokenService) Issue(userID uint, email string, extra map[string]string, ttl time.Duration) (string, time.Time, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID, email, extra, ttl)
	}
	// Default behavior: deterministic fake token
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return fmt.Sprintf("token_%d", userID), time.Now().Add(ttl), nil
}

// Validate validates a token
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	// Default behavior: invalid
	return nil, domain.ErrTokenInvalid
}

// ExtractSubjectID pulls the subject id out of a token
func (m *MockTokenService) ExtractSubjectID(token string) (uint, error) {
	if m.ExtractSubjectIDFunc != nil {
		return m.ExtractSubjectIDFunc(token)
	}
	return 0, domain.ErrTokenInvalid
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
