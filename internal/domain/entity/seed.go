package entity

// SeedCards returns the sample cards used when the device has no stored
// collection yet. Callers get a fresh slice on every call.
func SeedCards() []BankCard {
	return []BankCard{
		{
			ID:         "1",
			CardNumber: "4532123456789012",
			CardHolder: "John Doe",
			ExpiryDate: "12/26",
			BankName:   "Chase Bank",
			CardType:   CardTypeVisa,
		},
		{
			ID:         "2",
			CardNumber: "5555123456789012",
			CardHolder: "John Doe",
			ExpiryDate: "08/25",
			BankName:   "Bank of America",
			CardType:   CardTypeMastercard,
		},
		{
			ID:         "3",
			CardNumber: "378282246310005",
			CardHolder: "John Doe",
			ExpiryDate: "03/27",
			BankName:   "American Express",
			CardType:   CardTypeAmex,
		},
	}
}

// SeedTransactions returns the sample ledger entries, newest first. Entries
// are spread round-robin across the seed cards, matching how the overview
// screen links a transaction to a card.
func SeedTransactions() []Transaction {
	return []Transaction{
		{ID: "1", Type: TransactionCredit, Amount: 250.00, Description: "Cashback Reward", Date: "2024-01-10", Category: "Rewards", CardID: "1"},
		{ID: "2", Type: TransactionDebit, Amount: 45.99, Description: "Grocery Store", Date: "2024-01-09", Category: "Shopping", CardID: "2"},
		{ID: "3", Type: TransactionDebit, Amount: 12.50, Description: "Coffee Shop", Date: "2024-01-08", Category: "Food", CardID: "3"},
		{ID: "4", Type: TransactionCredit, Amount: 1200.00, Description: "Salary Deposit", Date: "2024-01-05", Category: "Income", CardID: "1"},
		{ID: "5", Type: TransactionDebit, Amount: 89.99, Description: "Gas Station", Date: "2024-01-04", Category: "Transportation", CardID: "2"},
	}
}

// SeedWallet returns the static wallet shown on the overview screen.
func SeedWallet() WalletSummary {
	return WalletSummary{
		ID:      1,
		Name:    "Main Wallet",
		Balance: 2847.50,
		Rewards: 125.75,
	}
}
