package game

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/jackpot-middleware/pkg/wallet"
)

// Wallet-boundary failures are owned by the wallet package.
var (
	ErrWalletUnavailable = wallet.ErrUnavailable
	ErrUserRejected      = wallet.ErrUserRejected
	ErrWrongNetwork      = wallet.ErrWrongNetwork
)

var (
	ErrNotConnected          = errors.New("wallet not connected")
	ErrGamePaused            = errors.New("game is paused")
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrInsufficientSupply    = errors.New("insufficient curve supply")
	ErrNoActiveCommitment    = errors.New("no active guess commitment")
	ErrCommitmentPending     = errors.New("a guess commitment is already pending reveal")
	ErrTransactionReverted   = errors.New("transaction reverted")
	ErrRandomnessUnavailable = errors.New("secure randomness unavailable")
	ErrRemoteReadFailed      = errors.New("remote read failed")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInvalidGuess          = errors.New("invalid guess")
)

// RevertError describes a transaction the chain rejected. It matches
// ErrTransactionReverted with errors.Is.
type RevertError struct {
	Op     string
	TxHash common.Hash
	Reason string
	Err    error
}

func (e *RevertError) Error() string {
	msg := "transaction reverted"
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *RevertError) Is(target error) bool {
	return target == ErrTransactionReverted
}

func (e *RevertError) Unwrap() error {
	return e.Err
}

// RemoteReadError names the view call that failed. It matches
// ErrRemoteReadFailed with errors.Is.
type RemoteReadError struct {
	Field string
	Err   error
}

func (e *RemoteReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Field, e.Err)
}

func (e *RemoteReadError) Is(target error) bool {
	return target == ErrRemoteReadFailed
}

func (e *RemoteReadError) Unwrap() error {
	return e.Err
}

// ErrorKind returns a short stable label for err, used for metrics.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrWalletUnavailable):
		return "wallet_unavailable"
	case errors.Is(err, ErrUserRejected):
		return "user_rejected"
	case errors.Is(err, ErrWrongNetwork):
		return "wrong_network"
	case errors.Is(err, ErrNotConnected):
		return "not_connected"
	case errors.Is(err, ErrGamePaused):
		return "game_paused"
	case errors.Is(err, ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, ErrInsufficientSupply):
		return "insufficient_supply"
	case errors.Is(err, ErrNoActiveCommitment):
		return "no_active_commitment"
	case errors.Is(err, ErrCommitmentPending):
		return "commitment_pending"
	case errors.Is(err, ErrTransactionReverted):
		return "transaction_reverted"
	case errors.Is(err, ErrRandomnessUnavailable):
		return "randomness_unavailable"
	case errors.Is(err, ErrRemoteReadFailed):
		return "remote_read_failed"
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrInvalidGuess):
		return "invalid_input"
	default:
		return "unknown"
	}
}

// UserMessage converts err into the message shown to the player.
func UserMessage(err error) string {
	var revert *RevertError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrWalletUnavailable):
		return "No wallet available. Install or unlock a wallet and try again."
	case errors.Is(err, ErrUserRejected):
		return "Request rejected in the wallet."
	case errors.Is(err, ErrWrongNetwork):
		return "Wallet is connected to the wrong network."
	case errors.Is(err, ErrNotConnected):
		return "Connect your wallet first."
	case errors.Is(err, ErrGamePaused):
		return "The game is paused. Try again later."
	case errors.Is(err, ErrInsufficientBalance):
		return "Insufficient balance for this action."
	case errors.Is(err, ErrInsufficientSupply):
		return "The curve does not hold enough tokens for this purchase."
	case errors.Is(err, ErrNoActiveCommitment):
		return "No committed guess to reveal."
	case errors.Is(err, ErrCommitmentPending):
		return "Reveal your pending guess before committing a new one."
	case errors.As(err, &revert) && revert.Reason != "":
		return "Transaction reverted: " + revert.Reason
	case errors.Is(err, ErrTransactionReverted):
		return "Transaction reverted."
	case errors.Is(err, ErrRandomnessUnavailable):
		return "Secure randomness is unavailable; the guess was not submitted."
	case errors.Is(err, ErrRemoteReadFailed):
		return "Could not read game state from the chain."
	case errors.Is(err, ErrInvalidAmount):
		return "Invalid amount."
	case errors.Is(err, ErrInvalidGuess):
		return "Invalid guess."
	default:
		return "Unexpected error."
	}
}
