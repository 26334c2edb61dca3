package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegisterFailure(t *testing.T) {
	result := RegisterFailure(FailureValidation, "email is required", "password is required")

	assert.False(t, result.Success)
	assert.Equal(t, FailureValidation, result.Code)
	assert.Equal(t, []string{"email is required", "password is required"}, result.Errors)
	assert.Empty(t, result.Token)
}

func TestLoginFailure(t *testing.T) {
	result := LoginFailure(FailureInvalidCredentials, MsgInvalidCredentials)

	assert.False(t, result.Success)
	assert.Equal(t, FailureInvalidCredentials, result.Code)
	assert.Equal(t, []string{MsgInvalidCredentials}, result.Errors)
}

func TestFailureCodes_AreDistinct(t *testing.T) {
	codes := []FailureCode{
		FailureValidation,
		FailureDuplicateEmail,
		FailureInvalidCredentials,
		FailureAccountDisabled,
		FailureEmailNotConfirmed,
	}

	seen := map[FailureCode]bool{}
	for _, code := range codes {
		assert.NotEqual(t, FailureNone, code)
		assert.False(t, seen[code], "duplicate code %q", code)
		seen[code] = true
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"jane@ex.com", "jane@ex.com"},
		{"JANE@EX.COM", "jane@ex.com"},
		{"  Jane@Ex.Com\t", "jane@ex.com"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeEmail(tt.in))
	}
}

func TestAuditEvent_Builders(t *testing.T) {
	before := time.Now().UTC()
	event := NewAuditEvent(UserLoginFailureEvent).
		WithUser(7, "jane@ex.com").
		WithError(MsgInvalidCredentials)

	assert.Equal(t, UserLoginFailureEvent, event.EventType)
	assert.Equal(t, uint(7), event.UserID)
	assert.Equal(t, "jane@ex.com", event.Email)
	assert.False(t, event.Success)
	assert.Equal(t, MsgInvalidCredentials, event.ErrorMsg)
	assert.False(t, event.Timestamp.Before(before))
}
