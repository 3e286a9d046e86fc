package entity

// CardType represents the card network a bank card belongs to
type CardType string

// Supported card networks
const (
	CardTypeVisa       CardType = "visa"
	CardTypeMastercard CardType = "mastercard"
	CardTypeAmex       CardType = "amex"
)

// IsValidCardType validates if the card type is one of the supported networks
func IsValidCardType(v string) bool {
	return v == string(CardTypeVisa) ||
		v == string(CardTypeMastercard) ||
		v == string(CardTypeAmex)
}

// BankCard is one card in the device's collection. Identity is ID, unique
// within the stored collection only; there is no cross-device uniqueness.
type BankCard struct {
	ID         string   `json:"id"`
	CardNumber string   `json:"cardNumber"`
	CardHolder string   `json:"cardHolder"`
	ExpiryDate string   `json:"expiryDate"` // MM/YY
	BankName   string   `json:"bankName"`
	CardType   CardType `json:"cardType"`
}

// MaskedNumber returns the card number with everything but the last four
// digits hidden, for display on list screens.
func (c BankCard) MaskedNumber() string {
	if len(c.CardNumber) <= 4 {
		return c.CardNumber
	}
	return "**** **** **** " + c.CardNumber[len(c.CardNumber)-4:]
}
