package ledger

import (
	"context"
	"sync"
	"testing"
	"time"

	"pocket-wallet/internal/domain/entity"
	errs "pocket-wallet/internal/domain/error"
	coreport "pocket-wallet/internal/domain/port/core"
	"pocket-wallet/internal/infrastructure/adapter/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Since(t time.Time) coreport.Duration {
	return coreport.Duration(c.now.Sub(t))
}

func (c *fakeClock) Sleep(coreport.Duration) {}

func (c *fakeClock) After(coreport.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- c.now
	return ch
}

func (c *fakeClock) WithTimeout(ctx context.Context, d coreport.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d.Std())
}

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

// stubDirectory resolves card IDs from a fixed set
type stubDirectory struct {
	cards map[string]entity.BankCard
}

func (d *stubDirectory) Get(id string) (entity.BankCard, error) {
	card, ok := d.cards[id]
	if !ok {
		return entity.BankCard{}, errs.ErrCardNotFound
	}
	return card, nil
}

func newTestLedger(clock *fakeClock) (*Ledger, *notificationRecorder) {
	dir := &stubDirectory{cards: map[string]entity.BankCard{
		"1": {ID: "1", BankName: "Chase Bank"},
		"2": {ID: "2", BankName: "Bank of America"},
	}}
	recorder := &notificationRecorder{}
	l := NewLedger(dir, clock, logger.NewNoopLogger(), recorder)
	return l, recorder
}

func TestLedgerSeed(t *testing.T) {
	l, _ := newTestLedger(&fakeClock{now: time.Now()})

	entries := l.List()
	require.Len(t, entries, 5)
	assert.Equal(t, "1", entries[0].ID)
	assert.Equal(t, "Cashback Reward", entries[0].Description)
	assert.Equal(t, entity.TransactionCredit, entries[0].Type)
}

func TestListByCard(t *testing.T) {
	l, _ := newTestLedger(&fakeClock{now: time.Now()})

	entries := l.ListByCard("1")
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, "1", e.CardID)
	}

	assert.Empty(t, l.ListByCard("999"))
}

func TestAddPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid payment is prepended with a sequential ID", func(t *testing.T) {
		clock := &fakeClock{now: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)}
		l, recorder := newTestLedger(clock)

		entry, err := l.AddPayment(ctx, PaymentInput{
			Amount:      42.50,
			Description: "Dinner",
			CardID:      "1",
		})

		require.NoError(t, err)
		assert.Equal(t, "6", entry.ID)
		assert.Equal(t, entity.TransactionDebit, entry.Type)
		assert.Equal(t, 42.50, entry.Amount)
		assert.Equal(t, "2024-03-15", entry.Date)
		assert.Equal(t, "Payment", entry.Category)
		assert.Equal(t, "1", entry.CardID)

		entries := l.List()
		require.Len(t, entries, 6)
		assert.Equal(t, entry.ID, entries[0].ID)

		n, ok := recorder.last()
		require.True(t, ok)
		assert.Equal(t, "Payment Added", n.Title)
		assert.Equal(t, "Payment of $42.50 for 'Dinner' was added!", n.Description)
	})

	t.Run("IDs keep counting across payments", func(t *testing.T) {
		l, _ := newTestLedger(&fakeClock{now: time.Now()})

		first, err := l.AddPayment(ctx, PaymentInput{Amount: 1, Description: "a", CardID: "1"})
		require.NoError(t, err)
		second, err := l.AddPayment(ctx, PaymentInput{Amount: 2, Description: "b", CardID: "2"})
		require.NoError(t, err)

		assert.Equal(t, "6", first.ID)
		assert.Equal(t, "7", second.ID)
	})

	t.Run("Non-positive amount is rejected", func(t *testing.T) {
		l, recorder := newTestLedger(&fakeClock{now: time.Now()})

		for _, amount := range []float64{0, -10} {
			_, err := l.AddPayment(ctx, PaymentInput{Amount: amount, Description: "x", CardID: "1"})
			require.Error(t, err)
			assert.True(t, errs.IsValidationError(err))
		}

		assert.Len(t, l.List(), 5)

		n, ok := recorder.last()
		require.True(t, ok)
		assert.Equal(t, "Payment Failed", n.Title)
		assert.Equal(t, coreport.SeverityDestructive, n.Severity)
	})

	t.Run("Missing description or card is rejected", func(t *testing.T) {
		l, _ := newTestLedger(&fakeClock{now: time.Now()})

		_, err := l.AddPayment(ctx, PaymentInput{Amount: 5, Description: "", CardID: "1"})
		require.Error(t, err)
		assert.EqualError(t, err, "description: is required")

		_, err = l.AddPayment(ctx, PaymentInput{Amount: 5, Description: "x", CardID: ""})
		require.Error(t, err)
		assert.EqualError(t, err, "cardId: is required")
	})

	t.Run("Unknown card is rejected", func(t *testing.T) {
		l, recorder := newTestLedger(&fakeClock{now: time.Now()})

		_, err := l.AddPayment(ctx, PaymentInput{Amount: 5, Description: "x", CardID: "999"})

		assert.ErrorIs(t, err, errs.ErrCardNotFound)
		assert.Len(t, l.List(), 5)

		n, ok := recorder.last()
		require.True(t, ok)
		assert.Equal(t, "selected card no longer exists", n.Description)
	})
}

func TestListReturnsCopy(t *testing.T) {
	l, _ := newTestLedger(&fakeClock{now: time.Now()})

	entries := l.List()
	entries[0].Description = "mutated"

	assert.Equal(t, "Cashback Reward", l.List()[0].Description)
}
