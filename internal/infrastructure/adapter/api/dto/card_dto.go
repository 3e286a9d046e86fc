package dto

import "pocket-wallet/internal/domain/entity"

// CardResponse is one card as presented to list and detail screens. The
// masked number is precomputed so no screen renders the full number by
// accident.
type CardResponse struct {
	ID           string `json:"id"`
	CardNumber   string `json:"cardNumber"`
	MaskedNumber string `json:"maskedNumber"`
	CardHolder   string `json:"cardHolder"`
	ExpiryDate   string `json:"expiryDate"`
	BankName     string `json:"bankName"`
	CardType     string `json:"cardType"`
}

// NewCardResponse maps a card entity to its API shape
func NewCardResponse(c entity.BankCard) CardResponse {
	return CardResponse{
		ID:           c.ID,
		CardNumber:   c.CardNumber,
		MaskedNumber: c.MaskedNumber(),
		CardHolder:   c.CardHolder,
		ExpiryDate:   c.ExpiryDate,
		BankName:     c.BankName,
		CardType:     string(c.CardType),
	}
}

// NewCardResponses maps a card slice, preserving order
func NewCardResponses(cards []entity.BankCard) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, NewCardResponse(c))
	}
	return out
}

// CardDetailResponse is the card detail screen payload: the card plus the
// ledger entries made with it.
type CardDetailResponse struct {
	Card         CardResponse         `json:"card"`
	Transactions []entity.Transaction `json:"transactions"`
}
