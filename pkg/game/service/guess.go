package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/chainsafe/jackpot-middleware/pkg/game"
)

const (
	msgCommitted = "Guess submitted. Wait for the reveal window, then reveal your guess."
	msgWon       = "Congratulations, you won the jackpot!"
	msgLost      = "Not this time."
	msgUnknown   = "Guess revealed, but the result could not be read from the transaction. Check the jackpot and your balance."
)

// CommitGuess commits a hash of plaintext and a fresh random nonce. The pause
// flag and guess cost are read fresh, not from the snapshot. Nothing is sent
// while the game is paused or when secure randomness is unavailable. The
// plaintext and nonce stay in memory until reveal; losing them forfeits
// the guess.
func (c *Controller) CommitGuess(ctx context.Context, plaintext string) (res *game.CommitResult, err error) {
	c.flowMu.Lock()
	defer c.flowMu.Unlock()
	defer c.track("commit", c.now(), &err)

	sess, err := c.requireSession()
	if err != nil {
		return nil, err
	}
	if c.PendingCommitment() != nil {
		return nil, game.ErrCommitmentPending
	}

	paused, err := c.game.Paused(ctx)
	if err != nil {
		return nil, &game.RemoteReadError{Field: "paused", Err: err}
	}
	if paused {
		return nil, game.ErrGamePaused
	}

	commitment, err := game.NewCommitment(sess.Address, plaintext, c.random)
	if err != nil {
		return nil, err
	}

	cost, err := c.game.GuessCost(ctx)
	if err != nil {
		return nil, &game.RemoteReadError{Field: "guess_cost", Err: err}
	}
	if err := c.ensureAllowance(ctx, sess.Address, c.game.Address(), cost); err != nil {
		return nil, err
	}

	receipt, err := c.game.CommitGuess(ctx, commitment.Hash)
	if err != nil {
		return nil, fmt.Errorf("commit guess: %w", err)
	}

	commitment.TxHash = receipt.TxHash
	commitment.BlockNumber = receipt.BlockNumber
	commitment.SubmittedAt = c.now()

	c.stateMu.Lock()
	c.commitment = commitment
	c.stateMu.Unlock()

	c.refreshAfter(ctx, "commit")

	return &game.CommitResult{
		Receipt:        *receipt,
		CommitmentHash: commitment.Hash,
		Message:        msgCommitted,
	}, nil
}

// RevealGuess reveals the pending commitment. A failed reveal keeps the
// commitment so it can be retried; any mined reveal clears it. A win
// refreshes the snapshot, a loss reports hint availability. A mined reveal
// without an outcome event is reported as undetermined, never as a loss.
func (c *Controller) RevealGuess(ctx context.Context) (res *game.RevealResult, err error) {
	c.flowMu.Lock()
	defer c.flowMu.Unlock()
	defer c.track("reveal", c.now(), &err)

	sess, err := c.requireSession()
	if err != nil {
		return nil, err
	}

	c.stateMu.RLock()
	commitment := c.commitment
	c.stateMu.RUnlock()
	if commitment == nil || commitment.Player != sess.Address {
		return nil, game.ErrNoActiveCommitment
	}

	outcome, err := c.game.RevealGuess(ctx, commitment.Plaintext, commitment.Nonce)
	if err != nil {
		return nil, fmt.Errorf("reveal guess: %w", err)
	}

	c.stateMu.Lock()
	if c.commitment == commitment {
		c.commitment = nil
	}
	c.stateMu.Unlock()

	res = &game.RevealResult{
		Receipt: outcome.Receipt,
		Won:     outcome.Won,
		Amount:  outcome.Amount,
	}

	if !outcome.Decoded {
		c.logger.Warn("Reveal outcome unknown, receipt has no outcome event",
			zap.String("tx_hash", outcome.TxHash.Hex()))
		res.Won = false
		res.Amount = nil
		res.Undetermined = true
		res.Message = msgUnknown
		res.Snapshot = c.refreshAfter(ctx, "reveal")
		return res, nil
	}

	if outcome.Won {
		res.Message = msgWon
		res.Snapshot = c.refreshAfter(ctx, "reveal")
		return res, nil
	}

	res.Message = msgLost
	counter, err := c.game.HintCount(ctx, sess.Address)
	if err != nil {
		// the reveal is final; hint availability is advisory
		c.logger.Warn("Failed to read hint counter", zap.Error(err))
		return res, nil
	}
	res.HintAvailable = counter.Sign() > 0
	res.HintMessage = game.HintMessage(counter)
	return res, nil
}

// RequestHint pays the hint cost and requests a hint. When the receipt
// carries a hint index and a hint service is configured the hint text is
// fetched; that fetch is best-effort.
func (c *Controller) RequestHint(ctx context.Context) (res *game.HintResult, err error) {
	c.flowMu.Lock()
	defer c.flowMu.Unlock()
	defer c.track("hint", c.now(), &err)

	sess, err := c.requireSession()
	if err != nil {
		return nil, err
	}

	paused, err := c.game.Paused(ctx)
	if err != nil {
		return nil, &game.RemoteReadError{Field: "paused", Err: err}
	}
	if paused {
		return nil, game.ErrGamePaused
	}

	cost, err := c.game.HintCost(ctx)
	if err != nil {
		return nil, &game.RemoteReadError{Field: "hint_cost", Err: err}
	}
	if err := c.ensureAllowance(ctx, sess.Address, c.game.Address(), cost); err != nil {
		return nil, err
	}

	receipt, err := c.game.RequestHint(ctx)
	if err != nil {
		return nil, fmt.Errorf("request hint: %w", err)
	}

	res = &game.HintResult{Receipt: receipt.Receipt, Index: receipt.Index}
	if receipt.Index != nil && c.hints != nil {
		text, err := c.hints.FetchHint(ctx, receipt.Index, sess.Address)
		if err != nil {
			c.logger.Warn("Failed to fetch hint text",
				zap.String("index", receipt.Index.String()),
				zap.Error(err))
		} else {
			res.Hint = text
		}
	}

	c.refreshAfter(ctx, "hint")
	return res, nil
}
