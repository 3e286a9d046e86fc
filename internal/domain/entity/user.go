package entity

import (
	"strings"
	"unicode"
)

// User is the account record held by the session while someone is signed in.
// No credential is stored alongside it; the demo backend accepts any
// non-empty email/password pair.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// sessionUserID is the fixed identifier assigned to the session user. The
// wallet keeps a single account per device, so there is nothing to allocate.
const sessionUserID = "1"

// NewUserFromLogin derives a user from a login email: the local part of the
// address, capitalized, becomes the display name.
func NewUserFromLogin(email string) *User {
	local := email
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}
	return &User{
		ID:    sessionUserID,
		Name:  capitalize(local),
		Email: email,
	}
}

// NewUserFromSignup builds a user from the signup form fields.
func NewUserFromSignup(name, email string) *User {
	return &User{
		ID:    sessionUserID,
		Name:  name,
		Email: email,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
