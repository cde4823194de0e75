package structs

import "github.com/pkg/errors"

var (
	ErrInvalidRiskInput   = errors.New("invalid risk input")
	ErrRiskLimitExceeded  = errors.New("risk limit exceeded")
	ErrInsufficientMargin = errors.New("insufficient margin")
	ErrNotFound           = errors.New("order not found")
	ErrSymbolNotFound     = errors.New("symbol not found")
)
