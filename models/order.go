package models

import "time"

const (
	SideBuy  = "BUY"
	SideSell = "SELL"

	OrderTypeMarket = "MARKET"
	OrderTypeLimit  = "LIMIT"

	OrderStatusQueued    = "QUEUED"
	OrderStatusExecuting = "EXECUTING"
	OrderStatusFilled    = "FILLED"
	OrderStatusFailed    = "FAILED"
	OrderStatusCanceled  = "CANCELED"
)

type Order struct {
	ID            string     `db:"id" json:"id"`
	UserID        string     `db:"user_id" json:"userId"`
	Symbol        string     `db:"symbol" json:"symbol"`
	Side          string     `db:"side" json:"side"`
	Type          string     `db:"type" json:"type"`
	Quantity      float64    `db:"quantity" json:"quantity"`
	Price         float64    `db:"price" json:"price"`
	Leverage      int        `db:"leverage" json:"leverage"`
	RiskPercent   float64    `db:"risk_percent" json:"riskPercent"`
	StopLossPrice float64    `db:"stop_loss_price" json:"stopLossPrice"`
	Margin        float64    `db:"margin" json:"margin"`
	Status        string     `db:"status" json:"status"`
	ExecutedPrice float64    `db:"executed_price" json:"executedPrice"`
	ExecutedQty   float64    `db:"executed_qty" json:"executedQty"`
	Fees          float64    `db:"fees" json:"fees"`
	Reason        string     `db:"reason" json:"reason,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"createdAt"`
	ExecutedAt    *time.Time `db:"executed_at" json:"executedAt,omitempty"`
}

// Terminal reports whether the order can no longer change state.
func (o *Order) Terminal() bool {
	switch o.Status {
	case OrderStatusFilled, OrderStatusFailed, OrderStatusCanceled:
		return true
	}

	return false
}

// Notional is the position value implied by the order at its sizing price.
func (o *Order) Notional() float64 {
	return o.Quantity * o.Price
}
