package card

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"pocket-wallet/internal/domain/entity"
	errs "pocket-wallet/internal/domain/error"
	coreport "pocket-wallet/internal/domain/port/core"
	"pocket-wallet/internal/domain/port/persistence"
	"pocket-wallet/internal/domain/validation"
)

// cardsKey is the fixed key the card collection lives under in the
// persistence adapter.
const cardsKey = "cards"

// Input is the add-card form payload. The ID is assigned by the collection;
// an empty CardType defaults to visa, matching the form's preselected option.
type Input struct {
	CardNumber string `json:"cardNumber"`
	CardHolder string `json:"cardHolder"`
	ExpiryDate string `json:"expiryDate"`
	BankName   string `json:"bankName"`
	CardType   string `json:"cardType"`
}

// Collection holds the device's bank cards, most recently added first. Every
// mutation is written through to the persistence adapter before it becomes
// visible, so the stored and in-memory collections are always equal between
// operations.
type Collection struct {
	mu       sync.RWMutex
	cards    []entity.BankCard
	kv       persistence.KeyValueStore
	tp       coreport.TimeProvider
	logger   coreport.Logger
	notifier coreport.Notifier
}

// NewCollection creates a card collection hydrated from the persistence
// adapter. A device with no stored collection starts from the seed cards;
// the seed is not persisted until the first mutation.
func NewCollection(
	kv persistence.KeyValueStore,
	tp coreport.TimeProvider,
	logger coreport.Logger,
	notifier coreport.Notifier,
) *Collection {
	c := &Collection{
		kv:       kv,
		tp:       tp,
		logger:   logger,
		notifier: notifier,
	}
	c.hydrate()
	return c
}

func (c *Collection) hydrate() {
	ctx := context.Background()

	raw, err := c.kv.Get(ctx, cardsKey)
	if err != nil {
		if !errors.Is(err, errs.ErrKeyNotFound) {
			c.logger.Warn("Could not read stored cards, using seed collection", map[string]any{
				"error": err.Error(),
			})
		}
		c.cards = entity.SeedCards()
		return
	}

	var cards []entity.BankCard
	if err := json.Unmarshal(raw, &cards); err != nil {
		c.logger.Warn("Dropping corrupt card collection", map[string]any{
			"error": errs.ErrCorruptRecord.Error(),
			"cause": err.Error(),
		})
		if delErr := c.kv.Delete(ctx, cardsKey); delErr != nil {
			c.logger.Warn("Could not remove corrupt card collection", map[string]any{
				"error": delErr.Error(),
			})
		}
		c.cards = entity.SeedCards()
		return
	}

	c.cards = cards
	c.logger.Info("Card collection restored", map[string]any{"count": len(cards)})
}

// List returns the collection in order, most recently added first.
func (c *Collection) List() []entity.BankCard {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.BankCard, len(c.cards))
	copy(out, c.cards)
	return out
}

// Get returns the card with the given ID.
//
// Possible errors:
// - ErrCardNotFound: no card in the collection has that ID
func (c *Collection) Get(id string) (entity.BankCard, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, card := range c.cards {
		if card.ID == id {
			return card, nil
		}
	}
	return entity.BankCard{}, errs.ErrCardNotFound
}

// Add validates the input, assigns a time-based ID unique within the
// collection, prepends the new card, and persists the full collection.
func (c *Collection) Add(ctx context.Context, in Input) (*entity.BankCard, error) {
	for _, f := range []struct{ field, value string }{
		{"cardNumber", in.CardNumber},
		{"cardHolder", in.CardHolder},
		{"expiryDate", in.ExpiryDate},
		{"bankName", in.BankName},
	} {
		if err := validation.CheckRequired(f.field, f.value); err != nil {
			c.notifyFailure("Card Not Added", err.Error())
			return nil, err
		}
	}

	cardType := in.CardType
	if cardType == "" {
		cardType = string(entity.CardTypeVisa)
	}
	if !entity.IsValidCardType(cardType) {
		err := fmt.Errorf("%w: %s", errs.ErrInvalidCardType, cardType)
		c.notifyFailure("Card Not Added", err.Error())
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	card := entity.BankCard{
		ID:         c.nextIDLocked(),
		CardNumber: in.CardNumber,
		CardHolder: in.CardHolder,
		ExpiryDate: in.ExpiryDate,
		BankName:   in.BankName,
		CardType:   entity.CardType(cardType),
	}

	next := make([]entity.BankCard, 0, len(c.cards)+1)
	next = append(next, card)
	next = append(next, c.cards...)

	if err := c.persist(ctx, next); err != nil {
		return nil, err
	}
	c.cards = next

	c.logger.Info("Card added", map[string]any{
		"cardId": card.ID,
		"bank":   card.BankName,
	})
	c.notifier.Notify(coreport.Notification{
		Title:       "Card Added",
		Description: fmt.Sprintf("Card for '%s' was added successfully!", card.CardHolder),
		Severity:    coreport.SeverityNormal,
	})
	return &card, nil
}

// Remove filters out the card with the given ID and persists the remainder.
// Removing an absent ID is a no-op, not an error.
func (c *Collection) Remove(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]entity.BankCard, 0, len(c.cards))
	for _, card := range c.cards {
		if card.ID != id {
			next = append(next, card)
		}
	}

	if err := c.persist(ctx, next); err != nil {
		return err
	}
	c.cards = next

	c.logger.Info("Card removed", map[string]any{"cardId": id})
	c.notifier.Notify(coreport.Notification{
		Title:       "Card Removed",
		Description: "Card was removed successfully!",
		Severity:    coreport.SeverityNormal,
	})
	return nil
}

// nextIDLocked generates a millisecond-timestamp ID, bumped until it does not
// collide with any card already in the collection. Caller holds the lock.
func (c *Collection) nextIDLocked() string {
	n := c.tp.Now().UnixMilli()
	for {
		id := strconv.FormatInt(n, 10)
		if !c.containsLocked(id) {
			return id
		}
		n++
	}
}

func (c *Collection) containsLocked(id string) bool {
	for _, card := range c.cards {
		if card.ID == id {
			return true
		}
	}
	return false
}

func (c *Collection) persist(ctx context.Context, cards []entity.BankCard) error {
	raw, err := json.Marshal(cards)
	if err != nil {
		return err
	}
	if err := c.kv.Set(ctx, cardsKey, raw); err != nil {
		c.logger.Error("Could not persist card collection", map[string]any{
			"count": len(cards),
			"error": err.Error(),
		})
		return errs.ErrInternalServer
	}
	return nil
}

func (c *Collection) notifyFailure(title, reason string) {
	c.notifier.Notify(coreport.Notification{
		Title:       title,
		Description: reason,
		Severity:    coreport.SeverityDestructive,
	})
}
