package validation

import (
	"regexp"
	"strings"

	errs "pocket-wallet/internal/domain/error"
)

// Predicate is one named validation rule over a field value. Names are
// user-facing: they double as the requirement text shown next to a form field.
type Predicate struct {
	Name string
	Test func(string) bool
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Required reports whether the value contains any non-whitespace characters
func Required(v string) bool {
	return strings.TrimSpace(v) != ""
}

// Email reports whether the value looks like an email address
func Email(v string) bool {
	return emailPattern.MatchString(v)
}

// MinLength builds a predicate requiring at least n characters
func MinLength(n int) func(string) bool {
	return func(v string) bool {
		return len([]rune(v)) >= n
	}
}

// PasswordRules is the enumerated list of requirements a new password must
// meet, in the order they are reported to the user.
var PasswordRules = []Predicate{
	{Name: "at least 8 characters", Test: MinLength(8)},
	{Name: "an uppercase letter", Test: regexp.MustCompile(`[A-Z]`).MatchString},
	{Name: "a lowercase letter", Test: regexp.MustCompile(`[a-z]`).MatchString},
	{Name: "a number", Test: regexp.MustCompile(`\d`).MatchString},
	{Name: "a special character", Test: regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`).MatchString},
}

// CheckRequired returns a field error when the value is empty
func CheckRequired(field, value string) error {
	if !Required(value) {
		return errs.NewFieldError(field, "is required")
	}
	return nil
}

// CheckEmail returns a field error when the value is not a plausible email
// address. An empty value fails the required check, not the format check.
func CheckEmail(field, value string) error {
	if err := CheckRequired(field, value); err != nil {
		return err
	}
	if !Email(value) {
		return errs.NewFieldError(field, "must be a valid email address")
	}
	return nil
}

// CheckPassword applies every password rule and reports the first one the
// value fails.
func CheckPassword(field, value string) error {
	if err := CheckRequired(field, value); err != nil {
		return err
	}
	for _, rule := range PasswordRules {
		if !rule.Test(value) {
			return errs.NewFieldError(field, "must contain "+rule.Name)
		}
	}
	return nil
}
