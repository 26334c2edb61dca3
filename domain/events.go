package domain

import "time"

// AuditEventType defines the type of audit event
type AuditEventType string

const (
	UserRegistrationEvent    AuditEventType = "USER_REGISTERED"
	UserLoginEvent           AuditEventType = "USER_LOGIN"
	UserLoginFailureEvent    AuditEventType = "USER_LOGIN_FAILED"
	EmailConfirmedEvent      AuditEventType = "EMAIL_CONFIRMED"
	EmailConfirmFailureEvent AuditEventType = "EMAIL_CONFIRMATION_FAILED"
)

// AuditEvent represents a business event that occurred in the system
type AuditEvent struct {
	EventType AuditEventType `json:"event_type"`
	UserID    uint           `json:"user_id,omitempty"`
	Email     string         `json:"email,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	ErrorMsg  string         `json:"error_msg,omitempty"`
	Success   bool           `json:"success"`
}

// NewAuditEvent creates a new audit event with common fields populated
func NewAuditEvent(eventType AuditEventType) *AuditEvent {
	return &AuditEvent{
		EventType: eventType,
		Timestamp: time.Now().UTC(),
		Success:   true,
	}
}

// WithUser sets the subject fields
func (e *AuditEvent) WithUser(id uint, email string) *AuditEvent {
	e.UserID = id
	e.Email = email
	return e
}

// WithEmail sets the email field
func (e *AuditEvent) WithEmail(email string) *AuditEvent {
	e.Email = email
	return e
}

// WithError marks the event failed and records the reason
func (e *AuditEvent) WithError(msg string) *AuditEvent {
	e.Success = false
	e.ErrorMsg = msg
	return e
}
