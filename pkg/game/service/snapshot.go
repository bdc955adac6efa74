package service

import (
	"context"
	"errors"
	"math/big"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/chainsafe/jackpot-middleware/internal/metrics"
	"github.com/chainsafe/jackpot-middleware/pkg/game"
)

// RefreshSnapshot reads every snapshot field concurrently and publishes the
// result only if all reads succeed. On failure the previous snapshot is kept
// and the error names the field that failed.
func (c *Controller) RefreshSnapshot(ctx context.Context) (snap *game.Snapshot, err error) {
	c.flowMu.Lock()
	defer c.flowMu.Unlock()
	defer c.track("refresh", c.now(), &err)

	return c.refresh(ctx)
}

func (c *Controller) refresh(ctx context.Context) (*game.Snapshot, error) {
	sess, err := c.requireSession()
	if err != nil {
		return nil, err
	}
	player := sess.Address

	var (
		totalGuesses, jackpot, nextJackpot *big.Int
		playerGuesses, guessCost, hintCost *big.Int
		balance                            *big.Int
		split                              game.Split
		paused                             bool
	)

	g, gctx := errgroup.WithContext(ctx)
	read := func(field string, fn func(context.Context) (*big.Int, error), dst **big.Int) {
		g.Go(func() error {
			v, err := fn(gctx)
			if err != nil {
				return &game.RemoteReadError{Field: field, Err: err}
			}
			*dst = v
			return nil
		})
	}

	read("total_guesses", c.game.TotalGuesses, &totalGuesses)
	read("jackpot_amount", c.game.JackpotAmount, &jackpot)
	read("next_jackpot_amount", c.game.NextJackpotAmount, &nextJackpot)
	read("guess_cost", c.game.GuessCost, &guessCost)
	read("hint_cost", c.game.HintCost, &hintCost)
	read("player_guesses", func(ctx context.Context) (*big.Int, error) {
		return c.game.PlayerGuesses(ctx, player)
	}, &playerGuesses)
	read("token_balance", func(ctx context.Context) (*big.Int, error) {
		return c.ledger.BalanceOf(ctx, player)
	}, &balance)

	g.Go(func() error {
		v, err := c.game.GetSplit(gctx)
		if err != nil {
			return &game.RemoteReadError{Field: "split", Err: err}
		}
		split = v
		return nil
	})
	g.Go(func() error {
		v, err := c.game.Paused(gctx)
		if err != nil {
			return &game.RemoteReadError{Field: "paused", Err: err}
		}
		paused = v
		return nil
	})

	if err := g.Wait(); err != nil {
		field := "unknown"
		var rre *game.RemoteReadError
		if errors.As(err, &rre) {
			field = rre.Field
		}
		metrics.SnapshotRefreshFailures.WithLabelValues(field).Inc()
		return nil, err
	}

	if total := split.Total(); total != 100 {
		c.logger.Warn("Guess payment split does not sum to 100",
			zap.Uint64("total", total),
			zap.Any("split", split))
	}

	// jackpots are paid in native currency, costs and balance in the game token
	snap := &game.Snapshot{
		TotalGuesses:      totalGuesses,
		PlayerGuessCount:  playerGuesses,
		JackpotAmount:     game.NewAmount(jackpot, c.nativeDecimals()),
		NextJackpotAmount: game.NewAmount(nextJackpot, c.nativeDecimals()),
		GuessCost:         game.NewAmount(guessCost, c.gameDecimals()),
		HintCost:          game.NewAmount(hintCost, c.gameDecimals()),
		TokenBalance:      game.NewAmount(balance, c.gameDecimals()),
		Split:             split,
		Paused:            paused,
		RefreshedAt:       c.now(),
	}

	c.stateMu.Lock()
	if c.session == nil || c.session.Address != player {
		// the account changed while reading
		c.stateMu.Unlock()
		return nil, game.ErrNotConnected
	}
	c.snapshot = snap
	c.stateMu.Unlock()

	metrics.JackpotAmount.WithLabelValues("current").Set(snap.JackpotAmount.Display.InexactFloat64())
	metrics.JackpotAmount.WithLabelValues("next").Set(snap.NextJackpotAmount.Display.InexactFloat64())
	metrics.TotalGuesses.Set(float64(totalGuesses.Int64()))

	return snap, nil
}

// refreshAfter refreshes the snapshot after a successful transaction. The
// transaction already succeeded, so a failed refresh is only logged.
func (c *Controller) refreshAfter(ctx context.Context, flow string) *game.Snapshot {
	snap, err := c.refresh(ctx)
	if err != nil {
		c.logger.Warn("Snapshot refresh failed",
			zap.String("flow", flow),
			zap.Error(err))
		return nil
	}
	return snap
}

// AutoRefresh refreshes the snapshot every interval while a session exists.
// It takes the flow lock like any user flow and returns when ctx is done.
func (c *Controller) AutoRefresh(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if c.Session() == nil {
				continue
			}
			if _, err := c.RefreshSnapshot(ctx); err != nil {
				c.logger.Warn("Periodic snapshot refresh failed", zap.Error(err))
			}
		}
	}
}
