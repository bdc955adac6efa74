package service

import (
	"context"
	"fmt"
	"math/big"

	"golang.org/x/sync/errgroup"

	"github.com/chainsafe/jackpot-middleware/pkg/game"
)

// QuoteBuy returns the exact native cost of buying amount base units at the
// current curve position.
func (c *Controller) QuoteBuy(ctx context.Context, amount *big.Int) (q *game.Quote, err error) {
	c.flowMu.Lock()
	defer c.flowMu.Unlock()
	defer c.track("quote", c.now(), &err)

	return c.quote(ctx, amount)
}

func (c *Controller) quote(ctx context.Context, amount *big.Int) (*game.Quote, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: must be positive", game.ErrInvalidAmount)
	}

	var initial, increase, bought *big.Int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if initial, err = c.curve.InitialPrice(gctx); err != nil {
			return &game.RemoteReadError{Field: "initial_price", Err: err}
		}
		return nil
	})
	g.Go(func() (err error) {
		if increase, err = c.curve.PriceIncrease(gctx); err != nil {
			return &game.RemoteReadError{Field: "price_increase", Err: err}
		}
		return nil
	})
	g.Go(func() (err error) {
		if bought, err = c.curve.TotalBought(gctx); err != nil {
			return &game.RemoteReadError{Field: "total_bought", Err: err}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	curve := c.pricing
	curve.InitialPrice = initial
	curve.PriceIncrease = increase

	cost, start, end, err := curve.BuyCost(bought, amount)
	if err != nil {
		return nil, err
	}

	return &game.Quote{
		Amount:      game.NewAmount(amount, c.gameDecimals()),
		TotalBought: bought,
		StartPrice:  start,
		EndPrice:    end,
		Cost:        game.NewAmount(cost, c.nativeDecimals()),
	}, nil
}

// Buy purchases amount base units from the curve paying the quoted cost.
// The native balance and the curve's token supply are checked before sending.
func (c *Controller) Buy(ctx context.Context, amount *big.Int) (res *game.TradeResult, err error) {
	c.flowMu.Lock()
	defer c.flowMu.Unlock()
	defer c.track("buy", c.now(), &err)

	sess, err := c.requireSession()
	if err != nil {
		return nil, err
	}

	q, err := c.quote(ctx, amount)
	if err != nil {
		return nil, err
	}

	native, err := c.wallet.Balance(ctx, sess.Address)
	if err != nil {
		return nil, &game.RemoteReadError{Field: "native_balance", Err: err}
	}
	if native.Cmp(q.Cost.Base) < 0 {
		return nil, fmt.Errorf("%w: have %s, need %s", game.ErrInsufficientBalance, native, q.Cost.Base)
	}

	supply, err := c.ledger.BalanceOf(ctx, c.curve.Address())
	if err != nil {
		return nil, &game.RemoteReadError{Field: "curve_supply", Err: err}
	}
	if supply.Cmp(amount) < 0 {
		return nil, fmt.Errorf("%w: curve holds %s, need %s", game.ErrInsufficientSupply, supply, amount)
	}

	receipt, err := c.curve.Buy(ctx, amount, q.Cost.Base)
	if err != nil {
		return nil, fmt.Errorf("buy: %w", err)
	}

	c.refreshAfter(ctx, "buy")

	cost := q.Cost
	return &game.TradeResult{
		Receipt: *receipt,
		Amount:  q.Amount,
		Cost:    &cost,
	}, nil
}

// Sell approves the curve for amount and sells it back.
func (c *Controller) Sell(ctx context.Context, amount *big.Int) (res *game.TradeResult, err error) {
	c.flowMu.Lock()
	defer c.flowMu.Unlock()
	defer c.track("sell", c.now(), &err)

	sess, err := c.requireSession()
	if err != nil {
		return nil, err
	}
	if amount == nil || amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: must be positive", game.ErrInvalidAmount)
	}

	if err := c.ensureAllowance(ctx, sess.Address, c.curve.Address(), amount); err != nil {
		return nil, err
	}

	receipt, err := c.curve.Sell(ctx, amount)
	if err != nil {
		return nil, fmt.Errorf("sell: %w", err)
	}

	c.refreshAfter(ctx, "sell")

	return &game.TradeResult{
		Receipt: *receipt,
		Amount:  game.NewAmount(amount, c.gameDecimals()),
	}, nil
}
