package session

import (
	"context"

	errs "pocket-wallet/internal/domain/error"
	coreport "pocket-wallet/internal/domain/port/core"
	"pocket-wallet/internal/domain/validation"
)

// RequestPasswordReset pretends to send a reset email to the given address.
// Nothing is actually dispatched; the call exists so the forgot-password
// screen has a backend to talk to.
func (s *Store) RequestPasswordReset(ctx context.Context, email string) error {
	if err := validation.CheckEmail("email", email); err != nil {
		s.notifier.Notify(coreport.Notification{
			Title:       "Password Reset Failed",
			Description: err.Error(),
			Severity:    coreport.SeverityDestructive,
		})
		return err
	}

	if err := s.simulateCall(ctx); err != nil {
		return err
	}

	s.logger.Info("Password reset email simulated", map[string]any{"email": email})
	s.notifier.Notify(coreport.Notification{
		Title:       "Password Reset Email Sent",
		Description: "Check your inbox for reset instructions.",
		Severity:    coreport.SeverityNormal,
	})
	return nil
}

// ChangePassword validates a new password against the named password rules
// and simulates the update. No credential is stored, so success only means
// the input was acceptable.
func (s *Store) ChangePassword(ctx context.Context, password, confirm string) error {
	if err := validation.CheckPassword("password", password); err != nil {
		s.notifyPasswordChangeFailed(err.Error())
		return err
	}
	if err := validation.CheckRequired("confirmPassword", confirm); err != nil {
		s.notifyPasswordChangeFailed("please confirm your password")
		return err
	}
	if password != confirm {
		err := errs.NewFieldError("confirmPassword", "passwords do not match")
		s.notifyPasswordChangeFailed("passwords do not match")
		return err
	}

	if err := s.simulateCall(ctx); err != nil {
		return err
	}

	s.logger.Info("Password change simulated", nil)
	s.notifier.Notify(coreport.Notification{
		Title:       "Password Changed",
		Description: "Your password has been updated successfully.",
		Severity:    coreport.SeverityNormal,
	})
	return nil
}

func (s *Store) notifyPasswordChangeFailed(reason string) {
	s.notifier.Notify(coreport.Notification{
		Title:       "Password Change Failed",
		Description: reason,
		Severity:    coreport.SeverityDestructive,
	})
}
