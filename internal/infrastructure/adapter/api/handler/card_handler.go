package handler

import (
	"net/http"

	coreport "pocket-wallet/internal/domain/port/core"
	"pocket-wallet/internal/domain/usecase/card"
	"pocket-wallet/internal/domain/usecase/ledger"
	"pocket-wallet/internal/infrastructure/adapter/api/dto"

	"github.com/gin-gonic/gin"
)

// CardHandler handles card-collection HTTP requests
type CardHandler struct {
	cards  *card.Collection
	ledger *ledger.Ledger
	logger coreport.Logger
}

// NewCardHandler creates a new card handler instance
func NewCardHandler(cards *card.Collection, l *ledger.Ledger, logger coreport.Logger) *CardHandler {
	return &CardHandler{
		cards:  cards,
		ledger: l,
		logger: logger,
	}
}

// List handles GET /wallet/cards
func (h *CardHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewCardResponses(h.cards.List()))
}

// Add handles POST /wallet/cards
func (h *CardHandler) Add(c *gin.Context) {
	var req card.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	added, err := h.cards.Add(c.Request.Context(), req)
	if err != nil {
		writeDomainError(c, h.logger, "add-card", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCardResponse(*added))
}

// Get handles GET /wallet/cards/:cardId, returning the card together with
// the ledger entries made with it.
func (h *CardHandler) Get(c *gin.Context) {
	found, err := h.cards.Get(c.Param("cardId"))
	if err != nil {
		writeDomainError(c, h.logger, "get-card", err)
		return
	}
	c.JSON(http.StatusOK, dto.CardDetailResponse{
		Card:         dto.NewCardResponse(found),
		Transactions: h.ledger.ListByCard(found.ID),
	})
}

// Remove handles DELETE /wallet/cards/:cardId. Removal is idempotent: an
// unknown ID still returns success.
func (h *CardHandler) Remove(c *gin.Context) {
	if err := h.cards.Remove(c.Request.Context(), c.Param("cardId")); err != nil {
		writeDomainError(c, h.logger, "remove-card", err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "card removed"})
}
