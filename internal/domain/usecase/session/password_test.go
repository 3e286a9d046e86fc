package session

import (
	"context"
	"testing"

	errs "pocket-wallet/internal/domain/error"
	coreport "pocket-wallet/internal/domain/port/core"
	"pocket-wallet/internal/infrastructure/adapter/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestPasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid email reports the reset as sent", func(t *testing.T) {
		store, recorder := newTestSessionStore(storage.NewMemoryStore())

		err := store.RequestPasswordReset(ctx, "user@example.com")

		require.NoError(t, err)
		n, ok := recorder.last()
		require.True(t, ok)
		assert.Equal(t, "Password Reset Email Sent", n.Title)
		assert.Equal(t, "Check your inbox for reset instructions.", n.Description)
		assert.Equal(t, coreport.SeverityNormal, n.Severity)
	})

	t.Run("Malformed email is rejected", func(t *testing.T) {
		store, recorder := newTestSessionStore(storage.NewMemoryStore())

		err := store.RequestPasswordReset(ctx, "not-an-email")

		require.Error(t, err)
		assert.True(t, errs.IsValidationError(err))

		n, ok := recorder.last()
		require.True(t, ok)
		assert.Equal(t, "Password Reset Failed", n.Title)
		assert.Equal(t, coreport.SeverityDestructive, n.Severity)
	})

	t.Run("Empty email fails the required check", func(t *testing.T) {
		store, _ := newTestSessionStore(storage.NewMemoryStore())

		err := store.RequestPasswordReset(ctx, "")

		require.Error(t, err)
		assert.EqualError(t, err, "email: is required")
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("Matching passwords that meet every rule succeed", func(t *testing.T) {
		store, recorder := newTestSessionStore(storage.NewMemoryStore())

		err := store.ChangePassword(ctx, "Str0ng!pass", "Str0ng!pass")

		require.NoError(t, err)
		n, ok := recorder.last()
		require.True(t, ok)
		assert.Equal(t, "Password Changed", n.Title)
		assert.Equal(t, "Your password has been updated successfully.", n.Description)
	})

	t.Run("Weak password names the failed rule", func(t *testing.T) {
		store, recorder := newTestSessionStore(storage.NewMemoryStore())

		err := store.ChangePassword(ctx, "weakpass", "weakpass")

		require.Error(t, err)
		assert.EqualError(t, err, "password: must contain an uppercase letter")

		n, ok := recorder.last()
		require.True(t, ok)
		assert.Equal(t, "Password Change Failed", n.Title)
	})

	t.Run("Mismatched confirmation is rejected", func(t *testing.T) {
		store, _ := newTestSessionStore(storage.NewMemoryStore())

		err := store.ChangePassword(ctx, "Str0ng!pass", "Different1!")

		require.Error(t, err)
		var fieldErr *errs.FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "confirmPassword", fieldErr.Field)
		assert.Equal(t, "passwords do not match", fieldErr.Message)
	})

	t.Run("Empty confirmation fails the required check", func(t *testing.T) {
		store, _ := newTestSessionStore(storage.NewMemoryStore())

		err := store.ChangePassword(ctx, "Str0ng!pass", "")

		require.Error(t, err)
		assert.EqualError(t, err, "confirmPassword: is required")
	})
}
