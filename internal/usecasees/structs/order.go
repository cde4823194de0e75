package structs

import "saarthi/models"

// OrderRequest is the client payload for a single queued order.
type OrderRequest struct {
	Symbol        string  `json:"symbol"`
	Side          string  `json:"side"`
	Type          string  `json:"type"`
	Leverage      int     `json:"leverage"`
	RiskPercent   float64 `json:"riskPercent"`
	StopLossPrice float64 `json:"stopLossPrice"`
	LimitPrice    float64 `json:"limitPrice,omitempty"`
}

type BulkOrderRequest struct {
	Orders []OrderRequest `json:"orders"`
}

// PositionSizing is the ephemeral output of the risk calculator. It is
// embedded into the order at admission time and never stored on its own.
type PositionSizing struct {
	Quantity       float64 `json:"quantity"`
	MarginRequired float64 `json:"marginRequired"`
}

// BulkOrderResult is the per-item outcome of a bulk enqueue. Exactly
// one of Order or Error is set.
type BulkOrderResult struct {
	Order *models.Order `json:"order,omitempty"`
	Error string        `json:"error,omitempty"`
}

type OrderFilter struct {
	Status string
	Limit  int
}
