package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"pocket-wallet/internal/domain/entity"
	errs "pocket-wallet/internal/domain/error"
	coreport "pocket-wallet/internal/domain/port/core"
	"pocket-wallet/internal/domain/port/persistence"
	"pocket-wallet/internal/domain/validation"
)

// userKey is the fixed key the session record lives under in the persistence
// adapter. Absent key means Anonymous.
const userKey = "user"

// Store tracks the current user of the device: Anonymous when no one is
// signed in, Authenticated with exactly one user otherwise. Every successful
// transition is written through to the persistence adapter before the
// notification fires.
type Store struct {
	mu       sync.RWMutex
	user     *entity.User
	kv       persistence.KeyValueStore
	tp       coreport.TimeProvider
	logger   coreport.Logger
	notifier coreport.Notifier
	latency  coreport.Duration
}

// NewStore creates a session store and hydrates it from the persistence
// adapter: a stored user record means the device starts Authenticated.
// latency is the simulated backend round-trip applied to each mutating call;
// zero disables the delay.
func NewStore(
	kv persistence.KeyValueStore,
	tp coreport.TimeProvider,
	logger coreport.Logger,
	notifier coreport.Notifier,
	latency coreport.Duration,
) *Store {
	s := &Store{
		kv:       kv,
		tp:       tp,
		logger:   logger,
		notifier: notifier,
		latency:  latency,
	}
	s.hydrate()
	return s
}

func (s *Store) hydrate() {
	ctx := context.Background()

	raw, err := s.kv.Get(ctx, userKey)
	if err != nil {
		if !errors.Is(err, errs.ErrKeyNotFound) {
			s.logger.Warn("Could not read stored session, starting anonymous", map[string]any{
				"error": err.Error(),
			})
		}
		return
	}

	var u entity.User
	if err := json.Unmarshal(raw, &u); err != nil {
		// Corrupt record: drop it and start anonymous instead of propagating.
		s.logger.Warn("Dropping corrupt session record", map[string]any{
			"error": errs.ErrCorruptRecord.Error(),
			"cause": err.Error(),
		})
		if delErr := s.kv.Delete(ctx, userKey); delErr != nil {
			s.logger.Warn("Could not remove corrupt session record", map[string]any{
				"error": delErr.Error(),
			})
		}
		return
	}

	s.user = &u
	s.logger.Info("Session restored", map[string]any{"email": u.Email})
}

// CurrentUser returns the signed-in user, or false when the session is
// anonymous.
func (s *Store) CurrentUser() (*entity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, false
	}
	u := *s.user
	return &u, true
}

// Login signs the user in. Any non-empty email/password pair is accepted and
// the display name is derived from the email; this is a stand-in for a real
// credential check, not a security control. An empty field fails without
// changing state.
func (s *Store) Login(ctx context.Context, email, password string) (*entity.User, error) {
	if !validation.Required(email) || !validation.Required(password) {
		s.notifier.Notify(coreport.Notification{
			Title:       "Login Failed",
			Description: "Invalid email or password",
			Severity:    coreport.SeverityDestructive,
		})
		return nil, errs.NewFieldError("credentials", "email and password are required")
	}

	if err := s.simulateCall(ctx); err != nil {
		return nil, err
	}

	u := entity.NewUserFromLogin(email)
	if err := s.persist(ctx, u); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = u
	s.mu.Unlock()

	s.logger.Info("User logged in", map[string]any{"email": u.Email})
	s.notifier.Notify(coreport.Notification{
		Title:       "Login Successful",
		Description: fmt.Sprintf("Welcome, %s!", u.Name),
		Severity:    coreport.SeverityNormal,
	})
	return u, nil
}

// Signup creates an account from the given name and email and signs it in.
// All three fields must be non-empty; nothing else is checked or stored.
func (s *Store) Signup(ctx context.Context, name, email, password string) (*entity.User, error) {
	for _, f := range []struct{ field, value string }{
		{"name", name},
		{"email", email},
		{"password", password},
	} {
		if err := validation.CheckRequired(f.field, f.value); err != nil {
			s.notifier.Notify(coreport.Notification{
				Title:       "Signup Failed",
				Description: "Failed to create account",
				Severity:    coreport.SeverityDestructive,
			})
			return nil, err
		}
	}

	if err := s.simulateCall(ctx); err != nil {
		return nil, err
	}

	u := entity.NewUserFromSignup(name, email)
	if err := s.persist(ctx, u); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = u
	s.mu.Unlock()

	s.logger.Info("User signed up", map[string]any{"email": u.Email})
	s.notifier.Notify(coreport.Notification{
		Title:       "Signup Successful",
		Description: fmt.Sprintf("Welcome, %s!", u.Name),
		Severity:    coreport.SeverityNormal,
	})
	return u, nil
}

// Logout unconditionally returns the session to Anonymous and clears the
// persisted record.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.kv.Delete(ctx, userKey); err != nil {
		s.logger.Warn("Could not clear persisted session", map[string]any{
			"error": err.Error(),
		})
	}

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	s.logger.Info("User logged out", nil)
	s.notifier.Notify(coreport.Notification{
		Title:       "Logged Out",
		Description: "You have been logged out.",
		Severity:    coreport.SeverityNormal,
	})
	return nil
}

// persist writes the user record through to the adapter. Called before the
// in-memory transition so a write failure leaves the prior state intact.
func (s *Store) persist(ctx context.Context, u *entity.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, userKey, raw); err != nil {
		s.logger.Error("Could not persist session", map[string]any{
			"email": u.Email,
			"error": err.Error(),
		})
		return errs.ErrInternalServer
	}
	return nil
}

// simulateCall stands in for the network round-trip of a real backend. It
// honors cancellation: a caller that goes away before the delay elapses sees
// ctx.Err() and no effect is applied.
func (s *Store) simulateCall(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.tp.After(s.latency):
		return nil
	}
}
