package game

import (
	"fmt"
	"math/big"
)

var (
	// DefaultTokenUnit is one whole game token in base units (6 decimals).
	DefaultTokenUnit = big.NewInt(1_000_000)
	// DefaultPriceDenominator scales curve prices down to native base units.
	DefaultPriceDenominator = big.NewInt(1_000_000)
)

// Curve is a linear bonding curve priced by cumulative purchased volume:
//
//	unitPrice(bought) = InitialPrice + floor(bought / Unit) * PriceIncrease
//
// All arithmetic is integer-exact so results match the contract.
type Curve struct {
	InitialPrice  *big.Int
	PriceIncrease *big.Int
	Unit          *big.Int
	Denominator   *big.Int
}

func (c Curve) validate() error {
	if c.InitialPrice == nil || c.InitialPrice.Sign() < 0 {
		return fmt.Errorf("curve: invalid initial price")
	}
	if c.PriceIncrease == nil || c.PriceIncrease.Sign() < 0 {
		return fmt.Errorf("curve: invalid price increase")
	}
	if c.Unit == nil || c.Unit.Sign() <= 0 {
		return fmt.Errorf("curve: unit must be positive")
	}
	if c.Denominator == nil || c.Denominator.Sign() <= 0 {
		return fmt.Errorf("curve: denominator must be positive")
	}
	return nil
}

// UnitPrice returns the curve price after bought units have been sold.
func (c Curve) UnitPrice(bought *big.Int) *big.Int {
	steps := new(big.Int).Quo(bought, c.Unit)
	price := steps.Mul(steps, c.PriceIncrease)
	return price.Add(price, c.InitialPrice)
}

// BuyCost returns the trapezoid-rule cost of buying amount more units
// starting at totalBought, together with the start and end unit prices:
//
//	cost = (unitPrice(totalBought) + unitPrice(totalBought+amount)) * amount / (2 * Denominator)
func (c Curve) BuyCost(totalBought, amount *big.Int) (cost, startPrice, endPrice *big.Int, err error) {
	if err := c.validate(); err != nil {
		return nil, nil, nil, err
	}
	if amount == nil || amount.Sign() <= 0 {
		return nil, nil, nil, fmt.Errorf("%w: must be positive", ErrInvalidAmount)
	}
	if totalBought == nil || totalBought.Sign() < 0 {
		return nil, nil, nil, fmt.Errorf("curve: invalid total bought")
	}

	startPrice = c.UnitPrice(totalBought)
	endPrice = c.UnitPrice(new(big.Int).Add(totalBought, amount))

	cost = new(big.Int).Add(startPrice, endPrice)
	cost.Mul(cost, amount)
	den := new(big.Int).Lsh(c.Denominator, 1)
	cost.Quo(cost, den)

	return cost, startPrice, endPrice, nil
}
