package mocks

import "github.com/you/authsvc/domain"

// MockPasswordService implements domain.PasswordService for testing
type MockPasswordService struct {
	HashFunc        func(password string) (string, error)
	VerifyFunc      func(hashedPassword, password string) bool
	NeedsRehashFunc func(hashedPassword string) bool
}

// NewMockPasswordService creates a new MockPasswordService with default behaviors
func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

// Hash hashes a password
func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	// Default behavior: deterministic fake hash
	return "hashed_" + password, nil
}

// Verify verifies a password against a hash
func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	// Default behavior: match against the fake hash format
	return hashedPassword == "hashed_"+password
}

// NeedsRehash reports whether a hash needs upgrading
func (m *MockPasswordService) NeedsRehash(hashedPassword string) bool {
	if m.NeedsRehashFunc != nil {
		return m.NeedsRehashFunc(hashedPassword)
	}
	return false
}

// Compile-time interface compliance verification
var _ domain.PasswordService = (*MockPasswordService)(nil)
