package usecasees

import (
	"saarthi/internal/usecasees/structs"
)

const (
	minLeverage = 1
	maxLeverage = 100
)

// CalcPositionSize converts a risk budget into a position size.
//
// The stop-loss distance is an absolute price distance, not a percent:
// riskAmount = capital * riskPercent / 100, quantity = riskAmount / distance,
// margin = quantity * price / leverage. Pure and safe for concurrent use.
func CalcPositionSize(capital, riskPercent, stopLossDistance float64, leverage int, currentPrice float64) (structs.PositionSizing, error) {
	if capital <= 0 || currentPrice <= 0 || stopLossDistance <= 0 {
		return structs.PositionSizing{}, structs.ErrInvalidRiskInput
	}

	if riskPercent <= 0 || riskPercent > 100 {
		return structs.PositionSizing{}, structs.ErrInvalidRiskInput
	}

	if leverage < minLeverage || leverage > maxLeverage {
		return structs.PositionSizing{}, structs.ErrInvalidRiskInput
	}

	riskAmount := capital * riskPercent / 100
	quantity := riskAmount / stopLossDistance

	return structs.PositionSizing{
		Quantity:       quantity,
		MarginRequired: quantity * currentPrice / float64(leverage),
	}, nil
}
