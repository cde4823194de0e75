package models

import "time"

// Price is a single ticker observation. Ticks are transient: the
// broadcaster keeps only the latest one per symbol in memory.
type Price struct {
	Symbol string    `json:"symbol"`
	Price  float64   `json:"price"`
	Ts     time.Time `json:"ts"`
}
