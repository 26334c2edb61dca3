package mocks

import (
	"context"

	"github.com/you/authsvc/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, input domain.RegisterInput) (*domain.RegisterResult, error)
	LoginFunc    func(ctx context.Context, input domain.LoginInput) (*domain.LoginResult, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register runs the registration flow
func (m *MockAuthService) Register(ctx context.Context, input domain.RegisterInput) (*domain.RegisterResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, input)
	}
	// Default behavior: success
	return &domain.RegisterResult{Success: true, UserID: 1, Email: domain.NormalizeEmail(input.Email), Token: "token_1"}, nil
}

// Login runs the authentication flow
func (m *MockAuthService) Login(ctx context.Context, input domain.LoginInput) (*domain.LoginResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, input)
	}
	// Default behavior: success
	return &domain.LoginResult{Success: true, UserID: 1, Email: domain.NormalizeEmail(input.Email), Token: "token_1"}, nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
