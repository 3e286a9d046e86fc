package handler

import (
	"net/http"

	"pocket-wallet/internal/domain/entity"
	coreport "pocket-wallet/internal/domain/port/core"
	"pocket-wallet/internal/domain/usecase/ledger"
	"pocket-wallet/internal/infrastructure/adapter/api/dto"

	"github.com/gin-gonic/gin"
)

// recentTransactionLimit caps the overview's transaction list; the full
// ledger stays behind /wallet/transactions.
const recentTransactionLimit = 10

// WalletHandler handles wallet-overview HTTP requests
type WalletHandler struct {
	ledger *ledger.Ledger
	logger coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(l *ledger.Ledger, logger coreport.Logger) *WalletHandler {
	return &WalletHandler{
		ledger: l,
		logger: logger,
	}
}

// Overview handles GET /wallet
func (h *WalletHandler) Overview(c *gin.Context) {
	recent := h.ledger.List()
	if len(recent) > recentTransactionLimit {
		recent = recent[:recentTransactionLimit]
	}
	c.JSON(http.StatusOK, dto.OverviewResponse{
		Wallet:       entity.SeedWallet(),
		Transactions: recent,
	})
}

// Transactions handles GET /wallet/transactions
func (h *WalletHandler) Transactions(c *gin.Context) {
	c.JSON(http.StatusOK, dto.TransactionsResponse{Transactions: h.ledger.List()})
}

// AddPayment handles POST /wallet/payments
func (h *WalletHandler) AddPayment(c *gin.Context) {
	var req ledger.PaymentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	entry, err := h.ledger.AddPayment(c.Request.Context(), req)
	if err != nil {
		writeDomainError(c, h.logger, "add-payment", err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}
