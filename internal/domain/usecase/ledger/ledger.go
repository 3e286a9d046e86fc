package ledger

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"pocket-wallet/internal/domain/entity"
	errs "pocket-wallet/internal/domain/error"
	coreport "pocket-wallet/internal/domain/port/core"
	"pocket-wallet/internal/domain/validation"
)

// CardDirectory resolves card references on incoming payments. The card
// collection satisfies it.
type CardDirectory interface {
	Get(id string) (entity.BankCard, error)
}

// PaymentInput is the add-payment form payload.
type PaymentInput struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	CardID      string  `json:"cardId"`
}

// Ledger is the in-memory, append-only transaction list shown on the wallet
// overview. It is seeded from the sample data on every process start and is
// never persisted; durability is explicitly out of scope.
type Ledger struct {
	mu       sync.RWMutex
	entries  []entity.Transaction
	nextID   int
	cards    CardDirectory
	tp       coreport.TimeProvider
	logger   coreport.Logger
	notifier coreport.Notifier
}

// NewLedger creates a ledger seeded with the sample transactions.
func NewLedger(
	cards CardDirectory,
	tp coreport.TimeProvider,
	logger coreport.Logger,
	notifier coreport.Notifier,
) *Ledger {
	seed := entity.SeedTransactions()
	return &Ledger{
		entries:  seed,
		nextID:   len(seed) + 1,
		cards:    cards,
		tp:       tp,
		logger:   logger,
		notifier: notifier,
	}
}

// List returns every entry, most recent first.
func (l *Ledger) List() []entity.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]entity.Transaction, len(l.entries))
	copy(out, l.entries)
	return out
}

// ListByCard returns the entries made with the given card, most recent first.
func (l *Ledger) ListByCard(cardID string) []entity.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []entity.Transaction
	for _, e := range l.entries {
		if e.CardID == cardID {
			out = append(out, e)
		}
	}
	return out
}

// AddPayment validates the input, resolves the card reference, and prepends a
// debit entry with a sequential ID and today's date.
//
// Possible errors:
// - validation errors for a non-positive amount or missing fields
// - ErrCardNotFound when the referenced card is not in the collection
func (l *Ledger) AddPayment(ctx context.Context, in PaymentInput) (*entity.Transaction, error) {
	if in.Amount <= 0 {
		err := errs.NewFieldError("amount", "must be greater than zero")
		l.notifyFailure(err.Error())
		return nil, err
	}
	if err := validation.CheckRequired("description", in.Description); err != nil {
		l.notifyFailure(err.Error())
		return nil, err
	}
	if err := validation.CheckRequired("cardId", in.CardID); err != nil {
		l.notifyFailure(err.Error())
		return nil, err
	}

	card, err := l.cards.Get(in.CardID)
	if err != nil {
		l.notifyFailure("selected card no longer exists")
		return nil, err
	}

	l.mu.Lock()
	entry := entity.Transaction{
		ID:          strconv.Itoa(l.nextID),
		Type:        entity.TransactionDebit,
		Amount:      in.Amount,
		Description: in.Description,
		Date:        l.tp.Now().Format("2006-01-02"),
		Category:    "Payment",
		CardID:      card.ID,
	}
	l.nextID++
	l.entries = append([]entity.Transaction{entry}, l.entries...)
	l.mu.Unlock()

	l.logger.Info("Payment added", map[string]any{
		"transactionId": entry.ID,
		"cardId":        entry.CardID,
		"amount":        entry.Amount,
	})
	l.notifier.Notify(coreport.Notification{
		Title:       "Payment Added",
		Description: fmt.Sprintf("Payment of $%.2f for '%s' was added!", entry.Amount, entry.Description),
		Severity:    coreport.SeverityNormal,
	})
	return &entry, nil
}

func (l *Ledger) notifyFailure(reason string) {
	l.notifier.Notify(coreport.Notification{
		Title:       "Payment Failed",
		Description: reason,
		Severity:    coreport.SeverityDestructive,
	})
}
