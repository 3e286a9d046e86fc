package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	errs "pocket-wallet/internal/domain/error"
	coreport "pocket-wallet/internal/domain/port/core"
	"pocket-wallet/internal/infrastructure/adapter/logger"
	"pocket-wallet/internal/infrastructure/adapter/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a TimeProvider whose After fires immediately, so simulated
// latency does not slow tests down. blockAfter makes After never fire, which
// lets cancellation win the race deterministically.
type fakeClock struct {
	now        time.Time
	blockAfter bool
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Since(t time.Time) coreport.Duration {
	return coreport.Duration(c.now.Sub(t))
}

func (c *fakeClock) Sleep(coreport.Duration) {}

func (c *fakeClock) After(coreport.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	if !c.blockAfter {
		ch <- c.now
	}
	return ch
}

func (c *fakeClock) WithTimeout(ctx context.Context, d coreport.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d.Std())
}

// notificationRecorder captures every notification for assertions
type notificationRecorder struct {
	mu   sync.Mutex
	sent []coreport.Notification
}

func (r *notificationRecorder) Notify(n coreport.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

func (r *notificationRecorder) last() (coreport.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		return coreport.Notification{}, false
	}
	return r.sent[len(r.sent)-1], true
}

// failingSetStore wraps a store and fails every Set
type failingSetStore struct {
	*storage.MemoryStore
}

func (s *failingSetStore) Set(context.Context, string, []byte) error {
	return errors.New("disk full")
}

func newTestSessionStore(kv *storage.MemoryStore) (*Store, *notificationRecorder) {
	recorder := &notificationRecorder{}
	store := NewStore(kv, &fakeClock{now: time.Now()}, logger.NewNoopLogger(), recorder, coreport.Millisecond)
	return store, recorder
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid credentials sign the user in and persist the session", func(t *testing.T) {
		kv := storage.NewMemoryStore()
		store, recorder := newTestSessionStore(kv)

		user, err := store.Login(ctx, "john.doe@example.com", "anything")

		require.NoError(t, err)
		assert.Equal(t, "1", user.ID)
		assert.Equal(t, "John.doe", user.Name)
		assert.Equal(t, "john.doe@example.com", user.Email)

		current, ok := store.CurrentUser()
		require.True(t, ok)
		assert.Equal(t, user.Email, current.Email)

		raw, err := kv.Get(ctx, "user")
		require.NoError(t, err)
		assert.Contains(t, string(raw), "john.doe@example.com")

		n, ok := recorder.last()
		require.True(t, ok)
		assert.Equal(t, "Login Successful", n.Title)
		assert.Equal(t, "Welcome, John.doe!", n.Description)
		assert.Equal(t, coreport.SeverityNormal, n.Severity)
	})

	t.Run("Empty email fails without changing state", func(t *testing.T) {
		kv := storage.NewMemoryStore()
		store, recorder := newTestSessionStore(kv)

		_, err := store.Login(ctx, "", "password")

		require.Error(t, err)
		assert.True(t, errs.IsValidationError(err))

		_, ok := store.CurrentUser()
		assert.False(t, ok)

		_, err = kv.Get(ctx, "user")
		assert.ErrorIs(t, err, errs.ErrKeyNotFound)

		n, ok := recorder.last()
		require.True(t, ok)
		assert.Equal(t, "Login Failed", n.Title)
		assert.Equal(t, coreport.SeverityDestructive, n.Severity)
	})

	t.Run("Empty password fails without changing state", func(t *testing.T) {
		store, _ := newTestSessionStore(storage.NewMemoryStore())

		_, err := store.Login(ctx, "user@example.com", "")

		require.Error(t, err)
		_, ok := store.CurrentUser()
		assert.False(t, ok)
	})

	t.Run("Persist failure leaves the session anonymous", func(t *testing.T) {
		kv := &failingSetStore{MemoryStore: storage.NewMemoryStore()}
		recorder := &notificationRecorder{}
		store := NewStore(kv, &fakeClock{now: time.Now()}, logger.NewNoopLogger(), recorder, 0)

		_, err := store.Login(ctx, "user@example.com", "password")

		assert.ErrorIs(t, err, errs.ErrInternalServer)
		_, ok := store.CurrentUser()
		assert.False(t, ok)
	})

	t.Run("Cancelled context aborts before any effect", func(t *testing.T) {
		kv := storage.NewMemoryStore()
		recorder := &notificationRecorder{}
		clock := &fakeClock{now: time.Now(), blockAfter: true}
		store := NewStore(kv, clock, logger.NewNoopLogger(), recorder, coreport.Second)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := store.Login(cancelled, "user@example.com", "password")

		assert.ErrorIs(t, err, context.Canceled)
		_, ok := store.CurrentUser()
		assert.False(t, ok)

		_, err = kv.Get(ctx, "user")
		assert.ErrorIs(t, err, errs.ErrKeyNotFound)
	})
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid form creates the account and signs it in", func(t *testing.T) {
		kv := storage.NewMemoryStore()
		store, recorder := newTestSessionStore(kv)

		user, err := store.Signup(ctx, "Jane Doe", "jane@example.com", "Secret1!")

		require.NoError(t, err)
		assert.Equal(t, "1", user.ID)
		assert.Equal(t, "Jane Doe", user.Name)

		current, ok := store.CurrentUser()
		require.True(t, ok)
		assert.Equal(t, "jane@example.com", current.Email)

		n, ok := recorder.last()
		require.True(t, ok)
		assert.Equal(t, "Signup Successful", n.Title)
		assert.Equal(t, "Welcome, Jane Doe!", n.Description)
	})

	t.Run("Missing field fails with the field named", func(t *testing.T) {
		store, recorder := newTestSessionStore(storage.NewMemoryStore())

		_, err := store.Signup(ctx, "Jane Doe", "", "Secret1!")

		require.Error(t, err)
		var fieldErr *errs.FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "email", fieldErr.Field)

		n, ok := recorder.last()
		require.True(t, ok)
		assert.Equal(t, "Signup Failed", n.Title)
		assert.Equal(t, "Failed to create account", n.Description)

		_, ok = store.CurrentUser()
		assert.False(t, ok)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the session to anonymous and clears the record", func(t *testing.T) {
		kv := storage.NewMemoryStore()
		store, recorder := newTestSessionStore(kv)

		_, err := store.Login(ctx, "user@example.com", "password")
		require.NoError(t, err)

		require.NoError(t, store.Logout(ctx))

		_, ok := store.CurrentUser()
		assert.False(t, ok)

		_, err = kv.Get(ctx, "user")
		assert.ErrorIs(t, err, errs.ErrKeyNotFound)

		n, ok := recorder.last()
		require.True(t, ok)
		assert.Equal(t, "Logged Out", n.Title)
		assert.Equal(t, "You have been logged out.", n.Description)
	})

	t.Run("Logging out an anonymous session still succeeds", func(t *testing.T) {
		store, _ := newTestSessionStore(storage.NewMemoryStore())
		assert.NoError(t, store.Logout(ctx))
	})
}

func TestHydration(t *testing.T) {
	ctx := context.Background()

	t.Run("Stored record restores the session", func(t *testing.T) {
		kv := storage.NewMemoryStore()
		raw := []byte(`{"id":"1","name":"John","email":"john@example.com"}`)
		require.NoError(t, kv.Set(ctx, "user", raw))

		store, _ := newTestSessionStore(kv)

		current, ok := store.CurrentUser()
		require.True(t, ok)
		assert.Equal(t, "John", current.Name)
		assert.Equal(t, "john@example.com", current.Email)
	})

	t.Run("Corrupt record is dropped and the session starts anonymous", func(t *testing.T) {
		kv := storage.NewMemoryStore()
		require.NoError(t, kv.Set(ctx, "user", []byte("{not json")))

		store, _ := newTestSessionStore(kv)

		_, ok := store.CurrentUser()
		assert.False(t, ok)

		_, err := kv.Get(ctx, "user")
		assert.ErrorIs(t, err, errs.ErrKeyNotFound)
	})

	t.Run("Empty store starts anonymous", func(t *testing.T) {
		store, _ := newTestSessionStore(storage.NewMemoryStore())

		_, ok := store.CurrentUser()
		assert.False(t, ok)
	})
}

func TestCurrentUserReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestSessionStore(storage.NewMemoryStore())

	_, err := store.Login(ctx, "user@example.com", "password")
	require.NoError(t, err)

	first, ok := store.CurrentUser()
	require.True(t, ok)
	first.Name = "mutated"

	second, ok := store.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "User", second.Name)
}
