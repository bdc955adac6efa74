package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/chainsafe/jackpot-middleware/pkg/game"
)

func TestLogService_NeverLogsSecrets(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	h := newHarness(t, WithRandom(nonceSource(0x5a, 1)), WithLogger(logger))
	svc := NewLog(h.ctrl, logger)

	_, err := svc.Connect(ctx)
	require.NoError(t, err)
	_, err = svc.CommitGuess(ctx, "pineapple")
	require.NoError(t, err)
	// an empty account list disconnects and discards the commitment
	h.ctrl.handleAccountsChanged(nil)
	_, err = svc.RevealGuess(ctx)
	require.ErrorIs(t, err, game.ErrNotConnected)

	nonce := fixedNonce(0x5a)
	secrets := []string{"pineapple", hex.EncodeToString(nonce[:])}

	require.NotZero(t, logs.Len())
	for _, entry := range logs.All() {
		line := entry.Message + " " + fmt.Sprint(entry.ContextMap())
		for _, secret := range secrets {
			assert.NotContains(t, line, secret)
		}
	}
}

func TestLogService_FlowIDs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := newHarness(t)
	svc := NewLog(h.ctrl, zap.New(core))

	_, err := svc.Connect(context.Background())
	require.NoError(t, err)

	started := logs.FilterMessage("Connect started").All()
	completed := logs.FilterMessage("Connect completed").All()
	require.Len(t, started, 1)
	require.Len(t, completed, 1)

	id := started[0].ContextMap()["flow_id"]
	assert.NotEmpty(t, id)
	assert.Equal(t, id, completed[0].ContextMap()["flow_id"])
	assert.Equal(t, playerAddr.Hex(), completed[0].ContextMap()["address"])
}

func TestLogService_Failure(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := newHarness(t)
	svc := NewLog(h.ctrl, zap.New(core))

	_, err := svc.RevealGuess(context.Background())
	require.ErrorIs(t, err, game.ErrNotConnected)

	failed := logs.FilterMessage("RevealGuess failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "not_connected", failed[0].ContextMap()["error_kind"])
}
