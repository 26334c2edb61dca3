package services

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/you/authsvc/domain"
)

var (
	hasUpper  = regexp.MustCompile(`[A-Z]`)
	hasLower  = regexp.MustCompile(`[a-z]`)
	hasDigit  = regexp.MustCompile(`[0-9]`)
	hasSymbol = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// fieldCheck pairs a single validation rule with the message reported when
// it fails. Rules are evaluated one by one so a caller sees every violated
// rule, not just the first per field.
type fieldCheck struct {
	value string
	rule  validation.Rule
	msg   string
}

func collectViolations(checks []fieldCheck) []string {
	var errs []string
	for _, c := range checks {
		if err := validation.Validate(c.value, c.rule); err != nil {
			errs = append(errs, c.msg)
		}
	}
	return errs
}

// validateRegister returns all structural violations of a registration
// input. Non-required rules skip empty values, so an empty field reports
// only its "required" message.
func validateRegister(in domain.RegisterInput) []string {
	checks := []fieldCheck{
		{in.FullName, validation.Required, "full name is required"},
		{in.FullName, validation.RuneLength(3, 100), "full name must be between 3 and 100 characters"},
		{in.Email, validation.Required, "email is required"},
		{in.Email, is.Email, "email must be a valid email address"},
		{in.Password, validation.Required, "password is required"},
		{in.Password, validation.RuneLength(8, 0), "password must be at least 8 characters"},
		{in.Password, validation.Match(hasUpper), "password must contain an uppercase letter"},
		{in.Password, validation.Match(hasLower), "password must contain a lowercase letter"},
		{in.Password, validation.Match(hasDigit), "password must contain a digit"},
		{in.Password, validation.Match(hasSymbol), "password must contain a symbol"},
	}
	errs := collectViolations(checks)
	if in.ConfirmPassword != in.Password {
		errs = append(errs, "password confirmation does not match")
	}
	return errs
}

// validateLogin returns all structural violations of a login input.
func validateLogin(in domain.LoginInput) []string {
	return collectViolations([]fieldCheck{
		{in.Email, validation.Required, "email is required"},
		{in.Email, is.Email, "email must be a valid email address"},
		{in.Password, validation.Required, "password is required"},
	})
}
