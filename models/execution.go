package models

// ExecutionResult is what the exchange returns for an accepted order.
type ExecutionResult struct {
	ExchangeOrderID string  `json:"exchangeOrderId"`
	FilledPrice     float64 `json:"filledPrice"`
	FilledQty       float64 `json:"filledQty"`
	Fees            float64 `json:"fees"`
}
