package game

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// ToDisplay converts base units to display units for the given exponent.
func ToDisplay(base *big.Int, decimals uint8) decimal.Decimal {
	if base == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(base, -int32(decimals))
}

// ToBase converts a display amount to base units. The amount must be
// representable exactly with the given exponent.
func ToBase(display decimal.Decimal, decimals uint8) (*big.Int, error) {
	shifted := display.Shift(int32(decimals))
	if !shifted.Equal(shifted.Truncate(0)) {
		return nil, fmt.Errorf("%w: %s has more than %d decimal places", ErrInvalidAmount, display.String(), decimals)
	}
	return shifted.BigInt(), nil
}

// ParseAmount parses a display amount string into base units.
func ParseAmount(s string, decimals uint8) (*big.Int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	base, err := ToBase(d, decimals)
	if err != nil {
		return nil, err
	}
	if base.Sign() <= 0 {
		return nil, fmt.Errorf("%w: must be positive", ErrInvalidAmount)
	}
	return base, nil
}
