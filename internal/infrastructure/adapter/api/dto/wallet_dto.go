package dto

import "pocket-wallet/internal/domain/entity"

// OverviewResponse is the wallet overview payload
type OverviewResponse struct {
	Wallet       entity.WalletSummary `json:"wallet"`
	Transactions []entity.Transaction `json:"transactions"`
}

// TransactionsResponse wraps the full ledger listing
type TransactionsResponse struct {
	Transactions []entity.Transaction `json:"transactions"`
}
