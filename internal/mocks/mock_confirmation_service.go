package mocks

import (
	"context"

	"github.com/you/authsvc/domain"
)

// MockConfirmationService implements domain.ConfirmationService for testing
type MockConfirmationService struct {
	SendFunc      func(ctx context.Context, userID uint, email string) (*domain.ConfirmationRequest, error)
	ConfirmFunc   func(ctx context.Context, email, code string) error
	CanResendFunc func(ctx context.Context, email string) (bool, int64, error)
}

// NewMockConfirmationService creates a new MockConfirmationService with default behaviors
func NewMockConfirmationService() *MockConfirmationService {
	return &MockConfirmationService{}
}

// Send dispatches a confirmation code
func (m *MockConfirmationService) Send(ctx context.Context, userID uint, email string) (*domain.ConfirmationRequest, error) {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, userID, email)
	}
	// Default behavior: success
	return &domain.ConfirmationRequest{Email: email, UserID: userID}, nil
}

// Confirm verifies a confirmation code
func (m *MockConfirmationService) Confirm(ctx context.Context, email, code string) error {
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(ctx, email, code)
	}
	// Default behavior: success
	return nil
}

// CanResend reports whether a resend is allowed
func (m *MockConfirmationService) CanResend(ctx context.Context, email string) (bool, int64, error) {
	if m.CanResendFunc != nil {
		return m.CanResendFunc(ctx, email)
	}
	return true, 0, nil
}

// Compile-time interface compliance verification
var _ domain.ConfirmationService = (*MockConfirmationService)(nil)
