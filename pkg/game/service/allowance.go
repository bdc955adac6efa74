package service

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/jackpot-middleware/pkg/game"
)

// EnsureAllowance makes the allowance of spender over the player's tokens
// exactly amount. The balance is checked first so no gas is spent on an
// unaffordable action. A nonzero allowance that differs from amount is reset
// to zero before being set. Every approval is mined before returning.
func (c *Controller) EnsureAllowance(ctx context.Context, spender common.Address, amount *big.Int) (err error) {
	c.flowMu.Lock()
	defer c.flowMu.Unlock()
	defer c.track("ensure_allowance", c.now(), &err)

	sess, err := c.requireSession()
	if err != nil {
		return err
	}
	return c.ensureAllowance(ctx, sess.Address, spender, amount)
}

func (c *Controller) ensureAllowance(ctx context.Context, owner, spender common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return fmt.Errorf("%w: allowance must not be negative", game.ErrInvalidAmount)
	}

	balance, err := c.ledger.BalanceOf(ctx, owner)
	if err != nil {
		return &game.RemoteReadError{Field: "token_balance", Err: err}
	}
	if balance.Cmp(amount) < 0 {
		return fmt.Errorf("%w: have %s, need %s", game.ErrInsufficientBalance, balance, amount)
	}

	// never cached: the allowance may have moved since the last flow
	current, err := c.ledger.Allowance(ctx, owner, spender)
	if err != nil {
		return &game.RemoteReadError{Field: "allowance", Err: err}
	}
	if current.Cmp(amount) == 0 {
		return nil
	}

	if current.Sign() > 0 {
		c.logger.Info("Resetting allowance before approval",
			zap.String("spender", spender.Hex()),
			zap.String("current", current.String()))

		if _, err := c.ledger.Approve(ctx, spender, new(big.Int)); err != nil {
			return fmt.Errorf("reset allowance: %w", err)
		}
		if amount.Sign() == 0 {
			return nil
		}
	}

	if _, err := c.ledger.Approve(ctx, spender, amount); err != nil {
		return fmt.Errorf("approve: %w", err)
	}
	return nil
}
