package errors

import (
	"context"
	"errors"

	"github.com/chainsafe/jackpot-middleware/pkg/game"
)

// FromGame converts a flow error into a ServiceError whose message is the
// player-facing text for err. ServiceErrors pass through unchanged.
func FromGame(err error) error {
	if err == nil {
		return nil
	}
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return err
	}

	return &ServiceError{
		Category: gameCategory(err),
		Message:  game.UserMessage(err),
		Err:      err,
	}
}

func gameCategory(err error) Category {
	switch {
	case errors.Is(err, game.ErrInvalidAmount),
		errors.Is(err, game.ErrInvalidGuess),
		errors.Is(err, game.ErrInsufficientBalance),
		errors.Is(err, game.ErrInsufficientSupply):
		return CategoryDataError
	case errors.Is(err, game.ErrUserRejected):
		return CategoryForbidden
	case errors.Is(err, game.ErrNotConnected),
		errors.Is(err, game.ErrWrongNetwork),
		errors.Is(err, game.ErrNoActiveCommitment),
		errors.Is(err, game.ErrCommitmentPending),
		errors.Is(err, game.ErrTransactionReverted):
		return CategoryDataConflict
	case errors.Is(err, game.ErrGamePaused):
		return CategoryLocked
	case errors.Is(err, context.DeadlineExceeded):
		return CategoryConnectionTimeout
	case errors.Is(err, game.ErrWalletUnavailable),
		errors.Is(err, game.ErrRemoteReadFailed):
		return CategoryDependencyFailure
	default:
		return CategoryGeneralError
	}
}
