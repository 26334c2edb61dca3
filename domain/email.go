package domain

import "strings"

// NormalizeEmail lowercases and trims an email address. Every write and
// every comparison in the system goes through this, so uniqueness and
// lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
