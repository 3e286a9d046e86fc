package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUserFromLogin(t *testing.T) {
	t.Run("Derives capitalized name from email local part", func(t *testing.T) {
		user := NewUserFromLogin("john.doe@example.com")

		assert.Equal(t, "1", user.ID)
		assert.Equal(t, "John.doe", user.Name)
		assert.Equal(t, "john.doe@example.com", user.Email)
	})

	t.Run("Already capitalized local part is unchanged", func(t *testing.T) {
		user := NewUserFromLogin("Alice@example.com")

		assert.Equal(t, "Alice", user.Name)
	})

	t.Run("Email without at sign uses the whole value", func(t *testing.T) {
		user := NewUserFromLogin("plainvalue")

		assert.Equal(t, "Plainvalue", user.Name)
		assert.Equal(t, "plainvalue", user.Email)
	})

	t.Run("Empty email yields empty name", func(t *testing.T) {
		user := NewUserFromLogin("")

		assert.Equal(t, "", user.Name)
	})

	t.Run("Unicode local part is capitalized by rune", func(t *testing.T) {
		user := NewUserFromLogin("élodie@example.fr")

		assert.Equal(t, "Élodie", user.Name)
	})
}

func TestNewUserFromSignup(t *testing.T) {
	user := NewUserFromSignup("Jane Doe", "jane@example.com")

	assert.Equal(t, "1", user.ID)
	assert.Equal(t, "Jane Doe", user.Name)
	assert.Equal(t, "jane@example.com", user.Email)
}
