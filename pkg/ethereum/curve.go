package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/chainsafe/jackpot-middleware/pkg/ethereum/contracts"
	"github.com/chainsafe/jackpot-middleware/pkg/game"
)

// PricingCurve is the bonding curve selling game tokens for native currency.
type PricingCurve struct {
	client  *Client
	address common.Address
	curve   *contracts.BondingCurve
	errABIs []*abi.ABI
}

// NewPricingCurve binds the bonding curve at address.
func NewPricingCurve(c *Client, address common.Address) (*PricingCurve, error) {
	curve, err := contracts.NewBondingCurve(address, c.backend)
	if err != nil {
		return nil, fmt.Errorf("failed to load bonding curve contract: %w", err)
	}
	parsed, err := contracts.BondingCurveMetaData.GetAbi()
	if err != nil {
		return nil, fmt.Errorf("failed to parse bonding curve abi: %w", err)
	}
	tokenABI, err := contracts.GameTokenMetaData.GetAbi()
	if err != nil {
		return nil, fmt.Errorf("failed to parse game token abi: %w", err)
	}
	return &PricingCurve{
		client:  c,
		address: address,
		curve:   curve,
		errABIs: []*abi.ABI{parsed, tokenABI},
	}, nil
}

// Address returns the curve contract address.
func (p *PricingCurve) Address() common.Address { return p.address }

// InitialPrice returns the unit price before any purchase.
func (p *PricingCurve) InitialPrice(ctx context.Context) (*big.Int, error) {
	opts, cancel := p.client.callOpts(ctx)
	defer cancel()
	return p.curve.InitialPrice(opts)
}

// PriceIncrease returns the price step added per whole token bought.
func (p *PricingCurve) PriceIncrease(ctx context.Context) (*big.Int, error) {
	opts, cancel := p.client.callOpts(ctx)
	defer cancel()
	return p.curve.PriceIncrease(opts)
}

// TotalBought returns the cumulative volume bought from the curve.
func (p *PricingCurve) TotalBought(ctx context.Context) (*big.Int, error) {
	opts, cancel := p.client.callOpts(ctx)
	defer cancel()
	return p.curve.TotalBought(opts)
}

// Buy purchases amount base units paying value in native currency.
func (p *PricingCurve) Buy(ctx context.Context, amount, value *big.Int) (*game.Receipt, error) {
	receipt, err := p.client.transact(ctx, "buy", p.errABIs,
		func(opts *bind.TransactOpts) (*types.Transaction, error) {
			opts.Value = value
			return p.curve.Buy(opts, amount)
		})
	if err != nil {
		return nil, err
	}
	r := toReceipt(receipt)
	return &r, nil
}

// Sell returns amount base units to the curve.
func (p *PricingCurve) Sell(ctx context.Context, amount *big.Int) (*game.Receipt, error) {
	receipt, err := p.client.transact(ctx, "sell", p.errABIs,
		func(opts *bind.TransactOpts) (*types.Transaction, error) {
			return p.curve.Sell(opts, amount)
		})
	if err != nil {
		return nil, err
	}
	r := toReceipt(receipt)
	return &r, nil
}
