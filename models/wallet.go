package models

// Wallet is one futures wallet balance as reported by the exchange.
type Wallet struct {
	Currency string  `json:"currency"`
	Balance  float64 `json:"balance"`
}
