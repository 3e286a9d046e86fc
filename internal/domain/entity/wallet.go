package entity

// WalletSummary is the headline figure shown on the wallet overview screen.
// The demo carries a single static wallet; balances are not derived from the
// ledger.
type WalletSummary struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
	Rewards float64 `json:"rewards"`
}
