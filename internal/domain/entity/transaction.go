package entity

// TransactionType marks whether an entry increases or decreases the balance
type TransactionType string

// Transaction types
const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

// Transaction is one entry in the in-memory ledger. Amount is a non-negative
// display amount and Date uses the YYYY-MM-DD form shown in the overview.
// CardID links the entry to the card it was made with.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	CardID      string          `json:"cardId,omitempty"`
}
