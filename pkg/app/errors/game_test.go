package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/jackpot-middleware/pkg/game"
)

func TestFromGame(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"paused", game.ErrGamePaused, http.StatusLocked, "The game is paused. Try again later."},
		{"wrapped balance", fmt.Errorf("approve: %w", game.ErrInsufficientBalance), http.StatusBadRequest,
			"Insufficient balance for this action."},
		{"no commitment", game.ErrNoActiveCommitment, http.StatusConflict, "No committed guess to reveal."},
		{"revert", &game.RevertError{Op: "reveal_guess", Reason: "RevealTooEarly()"}, http.StatusConflict,
			"Transaction reverted: RevealTooEarly()"},
		{"rejected", game.ErrUserRejected, http.StatusForbidden, "Request rejected in the wallet."},
		{"read", &game.RemoteReadError{Field: "split", Err: errors.New("eof")}, http.StatusBadGateway,
			"Could not read game state from the chain."},
		{"timeout", fmt.Errorf("wait: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, "Unexpected error."},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Unexpected error."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromGame(tt.err)

			var svcErr *ServiceError
			require.ErrorAs(t, err, &svcErr)
			assert.Equal(t, tt.status, svcErr.StatusCode())
			assert.Equal(t, tt.message, svcErr.Message)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestFromGame_PassThrough(t *testing.T) {
	assert.NoError(t, FromGame(nil))

	bad := BadRequestError(nil, "invalid JSON")
	assert.Same(t, bad, FromGame(bad))
	assert.True(t, Is(bad, CategoryDataError))
}
