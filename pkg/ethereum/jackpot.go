package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/chainsafe/jackpot-middleware/pkg/ethereum/contracts"
	"github.com/chainsafe/jackpot-middleware/pkg/game"
)

// Earlier game deployments report the reveal outcome as GuessSubmitted.
const guessSubmittedABI = `[{"anonymous":false,"inputs":[{"indexed":true,"internalType":"address","name":"player","type":"address"},{"indexed":false,"internalType":"uint256","name":"amount","type":"uint256"},{"indexed":false,"internalType":"bool","name":"won","type":"bool"}],"name":"GuessSubmitted","type":"event"}]`

type guessSubmitted struct {
	Player common.Address
	Amount *big.Int
	Won    bool
}

// JackpotGame is the commit-reveal game contract.
type JackpotGame struct {
	client  *Client
	address common.Address
	game    *contracts.JackpotGame
	abi     *abi.ABI
	// token errors surface through guess and hint payments
	errABIs []*abi.ABI

	submittedABI abi.ABI
	submitted    *bind.BoundContract
}

// NewJackpotGame binds the game contract at address.
func NewJackpotGame(c *Client, address common.Address) (*JackpotGame, error) {
	g, err := contracts.NewJackpotGame(address, c.backend)
	if err != nil {
		return nil, fmt.Errorf("failed to load jackpot game contract: %w", err)
	}
	parsed, err := contracts.JackpotGameMetaData.GetAbi()
	if err != nil {
		return nil, fmt.Errorf("failed to parse jackpot game abi: %w", err)
	}
	tokenABI, err := contracts.GameTokenMetaData.GetAbi()
	if err != nil {
		return nil, fmt.Errorf("failed to parse game token abi: %w", err)
	}
	submittedABI, err := abi.JSON(strings.NewReader(guessSubmittedABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse GuessSubmitted abi: %w", err)
	}
	return &JackpotGame{
		client:       c,
		address:      address,
		game:         g,
		abi:          parsed,
		errABIs:      []*abi.ABI{parsed, tokenABI},
		submittedABI: submittedABI,
		submitted:    bind.NewBoundContract(address, submittedABI, nil, nil, nil),
	}, nil
}

// Address returns the game contract address.
func (g *JackpotGame) Address() common.Address { return g.address }

// TotalGuesses returns the number of guesses committed by all players.
func (g *JackpotGame) TotalGuesses(ctx context.Context) (*big.Int, error) {
	opts, cancel := g.client.callOpts(ctx)
	defer cancel()
	return g.game.TotalGuesses(opts)
}

// JackpotAmount returns the current jackpot in native base units.
func (g *JackpotGame) JackpotAmount(ctx context.Context) (*big.Int, error) {
	opts, cancel := g.client.callOpts(ctx)
	defer cancel()
	return g.game.JackpotAmount(opts)
}

// NextJackpotAmount returns the amount seeding the next jackpot.
func (g *JackpotGame) NextJackpotAmount(ctx context.Context) (*big.Int, error) {
	opts, cancel := g.client.callOpts(ctx)
	defer cancel()
	return g.game.NextJackpotAmount(opts)
}

// PlayerGuesses returns how many guesses player has committed.
func (g *JackpotGame) PlayerGuesses(ctx context.Context, player common.Address) (*big.Int, error) {
	opts, cancel := g.client.callOpts(ctx)
	defer cancel()
	return g.game.PlayerGuesses(opts, player)
}

// GuessCost returns the game-token price of one guess.
func (g *JackpotGame) GuessCost(ctx context.Context) (*big.Int, error) {
	opts, cancel := g.client.callOpts(ctx)
	defer cancel()
	return g.game.GuessCost(opts)
}

// HintCost returns the game-token price of one hint.
func (g *JackpotGame) HintCost(ctx context.Context) (*big.Int, error) {
	opts, cancel := g.client.callOpts(ctx)
	defer cancel()
	return g.game.HintCost(opts)
}

// HintCount returns the hint counter for player.
func (g *JackpotGame) HintCount(ctx context.Context, player common.Address) (*big.Int, error) {
	opts, cancel := g.client.callOpts(ctx)
	defer cancel()
	return g.game.HintCount(opts, player)
}

// Paused reports whether the game currently rejects guesses and hints.
func (g *JackpotGame) Paused(ctx context.Context) (bool, error) {
	opts, cancel := g.client.callOpts(ctx)
	defer cancel()
	return g.game.Paused(opts)
}

// GetSplit returns the percentage split of each guess payment.
func (g *JackpotGame) GetSplit(ctx context.Context) (game.Split, error) {
	opts, cancel := g.client.callOpts(ctx)
	defer cancel()

	out, err := g.game.GetSplit(opts)
	if err != nil {
		return game.Split{}, err
	}
	return game.Split{
		Burn:      out.Burn.Uint64(),
		Jackpot:   out.Jackpot.Uint64(),
		Next:      out.Next.Uint64(),
		Marketing: out.Marketing.Uint64(),
	}, nil
}

// CommitGuess submits a commitment hash and waits for it to be mined.
func (g *JackpotGame) CommitGuess(ctx context.Context, hash common.Hash) (*game.Receipt, error) {
	receipt, err := g.client.transact(ctx, "commit_guess", g.errABIs,
		func(opts *bind.TransactOpts) (*types.Transaction, error) {
			return g.game.CommitGuess(opts, hash)
		})
	if err != nil {
		return nil, err
	}
	r := toReceipt(receipt)
	return &r, nil
}

// RevealGuess reveals the committed plaintext and nonce. The outcome is read
// from the GuessRevealed event, or GuessSubmitted on older deployments. When
// the receipt carries neither, Decoded stays unset and Won means nothing.
func (g *JackpotGame) RevealGuess(ctx context.Context, plaintext string, nonce [game.NonceSize]byte) (*game.RevealOutcome, error) {
	receipt, err := g.client.transact(ctx, "reveal_guess", g.errABIs,
		func(opts *bind.TransactOpts) (*types.Transaction, error) {
			return g.game.RevealGuess(opts, plaintext, nonce)
		})
	if err != nil {
		return nil, err
	}

	outcome := &game.RevealOutcome{Receipt: toReceipt(receipt)}
	revealedID := g.abi.Events["GuessRevealed"].ID
	submittedID := g.submittedABI.Events["GuessSubmitted"].ID
	for _, l := range receipt.Logs {
		if l == nil || l.Address != g.address || len(l.Topics) == 0 {
			continue
		}

		var (
			name   string
			won    bool
			amount *big.Int
			err    error
		)
		switch l.Topics[0] {
		case revealedID:
			name = "GuessRevealed"
			var ev *contracts.JackpotGameGuessRevealed
			if ev, err = g.game.ParseGuessRevealed(*l); err == nil {
				won, amount = ev.Won, ev.Amount
			}
		case submittedID:
			name = "GuessSubmitted"
			var ev guessSubmitted
			if err = g.submitted.UnpackLog(&ev, name, *l); err == nil {
				won, amount = ev.Won, ev.Amount
			}
		default:
			continue
		}
		if err != nil {
			g.client.logger.Warn("Failed to decode reveal outcome event",
				zap.String("event", name),
				zap.String("tx_hash", receipt.TxHash.Hex()),
				zap.Error(err))
			continue
		}

		outcome.Won = won
		outcome.Amount = amount
		outcome.Decoded = true
		break
	}
	if !outcome.Decoded {
		g.client.logger.Warn("Reveal receipt carries no outcome event",
			zap.String("tx_hash", receipt.TxHash.Hex()))
	}
	return outcome, nil
}

// RequestHint pays for a hint and returns the hint index from the
// HintRequested event when present.
func (g *JackpotGame) RequestHint(ctx context.Context) (*game.HintReceipt, error) {
	receipt, err := g.client.transact(ctx, "request_hint", g.errABIs,
		func(opts *bind.TransactOpts) (*types.Transaction, error) {
			return g.game.RequestHint(opts)
		})
	if err != nil {
		return nil, err
	}

	out := &game.HintReceipt{Receipt: toReceipt(receipt)}
	event := g.abi.Events["HintRequested"]
	for _, l := range receipt.Logs {
		if l == nil || l.Address != g.address || len(l.Topics) == 0 || l.Topics[0] != event.ID {
			continue
		}
		requested, err := g.game.ParseHintRequested(*l)
		if err != nil {
			g.client.logger.Warn("Failed to decode HintRequested event",
				zap.String("tx_hash", receipt.TxHash.Hex()),
				zap.Error(err))
			continue
		}
		out.Index = requested.Index
		break
	}
	return out, nil
}
