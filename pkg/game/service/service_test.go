package service

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/chainsafe/jackpot-middleware/pkg/game"
	"github.com/chainsafe/jackpot-middleware/pkg/game/service/mocks"
)

type harness struct {
	chain  *fakeChain
	wallet *fakeWallet
	ctrl   *Controller
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()

	chain := newFakeChain()
	w := newFakeWallet(chain)
	ctrl := NewController(w, &fakeLedger{chain}, &fakeGame{chain}, &fakeCurve{chain}, testNetwork, opts...)
	t.Cleanup(ctrl.Close)

	return &harness{chain: chain, wallet: w, ctrl: ctrl}
}

func (h *harness) connect(t *testing.T) {
	t.Helper()
	_, err := h.ctrl.Connect(context.Background())
	require.NoError(t, err)
}

func fixedNonce(b byte) [game.NonceSize]byte {
	var n [game.NonceSize]byte
	for i := range n {
		n[i] = b
	}
	return n
}

func nonceSource(b byte, count int) *bytes.Reader {
	return bytes.NewReader(bytes.Repeat([]byte{b}, game.NonceSize*count))
}

func TestGuessFlow_EndToEnd(t *testing.T) {
	ctx := context.Background()
	submitted := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	h := newHarness(t,
		WithRandom(nonceSource(0x42, 1)),
		WithClock(func() time.Time { return submitted }))

	sess, err := h.ctrl.Connect(ctx)
	require.NoError(t, err)
	assert.Equal(t, playerAddr, sess.Address)
	assert.Equal(t, uint64(146), sess.ChainID)

	snap, err := h.ctrl.RefreshSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "5000", snap.GuessCost.Base.String())
	assert.Equal(t, "0.005", snap.GuessCost.Display.String())
	assert.Equal(t, "12", snap.JackpotAmount.Display.String())

	committed, err := h.ctrl.CommitGuess(ctx, "banana")
	require.NoError(t, err)

	assert.Equal(t, []string{"approve", "commitGuess"}, h.chain.sentMethods())
	approve := h.chain.sentAt(0)
	assert.Equal(t, gameAddr, approve.Args[0])
	assert.Equal(t, "5000", approve.Args[1].(*big.Int).String())

	nonce := fixedNonce(0x42)
	assert.Equal(t, game.CommitmentHash("banana", nonce), committed.CommitmentHash)
	assert.Equal(t, committed.CommitmentHash, h.chain.sentAt(1).Args[0])

	pending := h.ctrl.PendingCommitment()
	require.NotNil(t, pending)
	assert.Equal(t, committed.CommitmentHash, pending.Hash)
	assert.Equal(t, committed.TxHash, pending.TxHash)
	assert.Equal(t, submitted, pending.SubmittedAt)

	revealed, err := h.ctrl.RevealGuess(ctx)
	require.NoError(t, err)
	assert.False(t, revealed.Won)
	assert.True(t, revealed.HintAvailable)
	assert.Equal(t, "Hint #2 available.", revealed.HintMessage)

	reveal := h.chain.lastSent()
	assert.Equal(t, "revealGuess", reveal.Method)
	assert.Equal(t, "banana", reveal.Args[0])
	assert.Equal(t, nonce, reveal.Args[1])

	assert.Nil(t, h.ctrl.PendingCommitment())
	assert.Len(t, h.chain.sentMethods(), 3)
}

func TestCommitGuess_RefreshesSnapshot(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.connect(t)

	_, err := h.ctrl.CommitGuess(ctx, "banana")
	require.NoError(t, err)

	snap := h.ctrl.Snapshot()
	require.NotNil(t, snap)
	assert.Equal(t, "42", snap.TotalGuesses.String())
	assert.Equal(t, "1", snap.PlayerGuessCount.String())
	assert.Equal(t, "95000", snap.TokenBalance.Base.String())
}

func TestCommitGuess_Paused(t *testing.T) {
	h := newHarness(t)
	h.connect(t)
	h.chain.paused = true

	_, err := h.ctrl.CommitGuess(context.Background(), "banana")
	require.ErrorIs(t, err, game.ErrGamePaused)
	assert.Empty(t, h.chain.sentMethods())
	assert.Nil(t, h.ctrl.PendingCommitment())
}

func TestCommitGuess_RandomnessUnavailable(t *testing.T) {
	h := newHarness(t, WithRandom(failingReader{}))
	h.connect(t)

	_, err := h.ctrl.CommitGuess(context.Background(), "banana")
	require.ErrorIs(t, err, game.ErrRandomnessUnavailable)
	assert.Empty(t, h.chain.sentMethods())
}

func TestCommitGuess_EmptyGuess(t *testing.T) {
	h := newHarness(t)
	h.connect(t)

	_, err := h.ctrl.CommitGuess(context.Background(), "")
	require.ErrorIs(t, err, game.ErrInvalidGuess)
	assert.Empty(t, h.chain.sentMethods())
}

func TestCommitGuess_InsufficientBalance(t *testing.T) {
	h := newHarness(t)
	h.connect(t)
	h.chain.balances[playerAddr] = big.NewInt(4999)

	_, err := h.ctrl.CommitGuess(context.Background(), "banana")
	require.ErrorIs(t, err, game.ErrInsufficientBalance)
	assert.Empty(t, h.chain.sentMethods())
}

func TestCommitGuess_RejectsSecondCommit(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.connect(t)

	first, err := h.ctrl.CommitGuess(ctx, "banana")
	require.NoError(t, err)

	_, err = h.ctrl.CommitGuess(ctx, "cherry")
	require.ErrorIs(t, err, game.ErrCommitmentPending)

	assert.Equal(t, first.CommitmentHash, h.ctrl.PendingCommitment().Hash)
	assert.Len(t, h.chain.sentMethods(), 2)
}

func TestCommitGuess_NotConnected(t *testing.T) {
	h := newHarness(t)

	_, err := h.ctrl.CommitGuess(context.Background(), "banana")
	require.ErrorIs(t, err, game.ErrNotConnected)
	assert.Empty(t, h.chain.sentMethods())
}

func TestCommitGuess_DistinctNonces(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.connect(t)

	first, err := h.ctrl.CommitGuess(ctx, "banana")
	require.NoError(t, err)
	_, err = h.ctrl.RevealGuess(ctx)
	require.NoError(t, err)

	second, err := h.ctrl.CommitGuess(ctx, "banana")
	require.NoError(t, err)

	assert.NotEqual(t, first.CommitmentHash, second.CommitmentHash)
}

func TestRevealGuess_NoCommitment(t *testing.T) {
	h := newHarness(t)
	h.connect(t)

	_, err := h.ctrl.RevealGuess(context.Background())
	require.ErrorIs(t, err, game.ErrNoActiveCommitment)
	assert.Empty(t, h.chain.sentMethods())
}

func TestRevealGuess_RevertKeepsCommitment(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.connect(t)

	committed, err := h.ctrl.CommitGuess(ctx, "banana")
	require.NoError(t, err)

	h.chain.sendErrs["revealGuess"] = &game.RevertError{Op: "reveal_guess", Reason: "RevealTooEarly()"}

	_, err = h.ctrl.RevealGuess(ctx)
	require.ErrorIs(t, err, game.ErrTransactionReverted)
	assert.Contains(t, err.Error(), "RevealTooEarly()")

	pending := h.ctrl.PendingCommitment()
	require.NotNil(t, pending)
	assert.Equal(t, committed.CommitmentHash, pending.Hash)

	delete(h.chain.sendErrs, "revealGuess")

	res, err := h.ctrl.RevealGuess(ctx)
	require.NoError(t, err)
	assert.False(t, res.Won)
	assert.Nil(t, h.ctrl.PendingCommitment())
}

func TestRevealGuess_Win(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.connect(t)

	_, err := h.ctrl.CommitGuess(ctx, "mango")
	require.NoError(t, err)

	res, err := h.ctrl.RevealGuess(ctx)
	require.NoError(t, err)
	assert.True(t, res.Won)
	assert.Equal(t, "12000000000000000000", res.Amount.String())
	assert.Empty(t, res.HintMessage)

	require.NotNil(t, res.Snapshot)
	assert.Equal(t, "3", res.Snapshot.JackpotAmount.Display.String())
	assert.Same(t, res.Snapshot, h.ctrl.Snapshot())
}

func TestRevealGuess_NoHintsYet(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.connect(t)
	h.chain.hintCounter = big.NewInt(0)

	_, err := h.ctrl.CommitGuess(ctx, "banana")
	require.NoError(t, err)

	res, err := h.ctrl.RevealGuess(ctx)
	require.NoError(t, err)
	assert.False(t, res.HintAvailable)
	assert.Equal(t, "No hints available yet.", res.HintMessage)
}

func TestRevealGuess_HintCounterReadFailure(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.connect(t)

	_, err := h.ctrl.CommitGuess(ctx, "banana")
	require.NoError(t, err)
	h.chain.readErrs["hint_count"] = errors.New("rpc timeout")

	res, err := h.ctrl.RevealGuess(ctx)
	require.NoError(t, err)
	assert.False(t, res.Won)
	assert.False(t, res.HintAvailable)
	assert.Nil(t, h.ctrl.PendingCommitment())
}

func TestRevealGuess_UndeterminedOutcome(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.connect(t)
	h.chain.winningGuess = "banana"
	h.chain.hideOutcome = true

	_, err := h.ctrl.CommitGuess(ctx, "banana")
	require.NoError(t, err)

	res, err := h.ctrl.RevealGuess(ctx)
	require.NoError(t, err)
	assert.True(t, res.Undetermined)
	assert.False(t, res.Won)
	assert.NotEqual(t, "Not this time.", res.Message)
	assert.False(t, res.HintAvailable)
	assert.Empty(t, res.HintMessage)

	// the reveal was mined, so the commitment is spent
	assert.Nil(t, h.ctrl.PendingCommitment())

	// the refreshed snapshot shows the paid-out jackpot
	require.NotNil(t, res.Snapshot)
	assert.Equal(t, "3", res.Snapshot.JackpotAmount.Display.String())
	assert.Same(t, res.Snapshot, h.ctrl.Snapshot())
}

func TestEnsureAllowance(t *testing.T) {
	tests := []struct {
		name     string
		current  int64
		amount   int64
		balance  int64
		expected []string
		amounts  []string
		err      error
	}{
		{name: "equal sends nothing", current: 5000, amount: 5000, balance: 10000},
		{name: "zero approves once", current: 0, amount: 5000, balance: 10000,
			expected: []string{"approve"}, amounts: []string{"5000"}},
		{name: "lower resets first", current: 1000, amount: 5000, balance: 10000,
			expected: []string{"approve", "approve"}, amounts: []string{"0", "5000"}},
		{name: "higher resets first", current: 9000, amount: 5000, balance: 10000,
			expected: []string{"approve", "approve"}, amounts: []string{"0", "5000"}},
		{name: "insufficient balance sends nothing", current: 0, amount: 5000, balance: 4000,
			err: game.ErrInsufficientBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.connect(t)
			h.chain.balances[playerAddr] = big.NewInt(tt.balance)
			h.chain.setAllowance(playerAddr, gameAddr, big.NewInt(tt.current))

			err := h.ctrl.EnsureAllowance(context.Background(), gameAddr, big.NewInt(tt.amount))
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				assert.Empty(t, h.chain.sentMethods())
				return
			}
			require.NoError(t, err)

			if len(tt.expected) == 0 {
				assert.Empty(t, h.chain.sentMethods())
			} else {
				assert.Equal(t, tt.expected, h.chain.sentMethods())
			}
			for i, amount := range tt.amounts {
				assert.Equal(t, amount, h.chain.sentAt(i).Args[1].(*big.Int).String())
			}
			assert.Equal(t, big.NewInt(tt.amount).String(), h.chain.allowance(playerAddr, gameAddr).String())
		})
	}
}

func TestEnsureAllowance_RereadsEveryTime(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.connect(t)

	require.NoError(t, h.ctrl.EnsureAllowance(ctx, gameAddr, big.NewInt(5000)))
	// spent elsewhere
	h.chain.setAllowance(playerAddr, gameAddr, big.NewInt(0))
	require.NoError(t, h.ctrl.EnsureAllowance(ctx, gameAddr, big.NewInt(5000)))

	assert.Equal(t, []string{"approve", "approve"}, h.chain.sentMethods())
}

func TestEnsureAllowance_Idempotent(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.connect(t)
	h.chain.setAllowance(playerAddr, gameAddr, big.NewInt(1234))

	require.NoError(t, h.ctrl.EnsureAllowance(ctx, gameAddr, big.NewInt(5000)))
	require.NoError(t, h.ctrl.EnsureAllowance(ctx, gameAddr, big.NewInt(5000)))

	require.Equal(t, []string{"approve", "approve"}, h.chain.sentMethods())
	assert.Equal(t, "0", h.chain.sentAt(0).Args[1].(*big.Int).String())
	assert.Equal(t, "5000", h.chain.sentAt(1).Args[1].(*big.Int).String())
	assert.Equal(t, "5000", h.chain.allowance(playerAddr, gameAddr).String())
}

func TestEnsureAllowance_ApproveRevert(t *testing.T) {
	h := newHarness(t)
	h.connect(t)
	h.chain.sendErrs["approve"] = &game.RevertError{Op: "approve", Reason: "blocked"}

	err := h.ctrl.EnsureAllowance(context.Background(), gameAddr, big.NewInt(5000))
	require.ErrorIs(t, err, game.ErrTransactionReverted)
}

func TestRefreshSnapshot_AllOrNothing(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.connect(t)

	first, err := h.ctrl.RefreshSnapshot(ctx)
	require.NoError(t, err)

	h.chain.guessCost = big.NewInt(7000)
	h.chain.readErrs["hint_cost"] = errors.New("rpc unavailable")

	_, err = h.ctrl.RefreshSnapshot(ctx)
	require.ErrorIs(t, err, game.ErrRemoteReadFailed)

	var rre *game.RemoteReadError
	require.ErrorAs(t, err, &rre)
	assert.Equal(t, "hint_cost", rre.Field)

	assert.Same(t, first, h.ctrl.Snapshot())
	assert.Equal(t, "5000", h.ctrl.Snapshot().GuessCost.Base.String())
}

func TestRefreshSnapshot_TokenBalanceFailureKeepsJackpot(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.connect(t)

	first, err := h.ctrl.RefreshSnapshot(ctx)
	require.NoError(t, err)

	h.chain.jackpot = big.NewInt(99)
	h.chain.readErrs["balance"] = errors.New("rpc unavailable")

	_, err = h.ctrl.RefreshSnapshot(ctx)
	var rre *game.RemoteReadError
	require.ErrorAs(t, err, &rre)
	assert.Equal(t, "token_balance", rre.Field)

	assert.Same(t, first, h.ctrl.Snapshot())
	assert.Equal(t, "12", h.ctrl.Snapshot().JackpotAmount.Display.String())
}

func TestRefreshSnapshot_WarnsOnUnbalancedSplit(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	h := newHarness(t, WithLogger(zap.New(core)))
	h.connect(t)
	h.chain.split = game.Split{Burn: 10, Jackpot: 60, Next: 20, Marketing: 5}

	_, err := h.ctrl.RefreshSnapshot(context.Background())
	require.NoError(t, err)

	entries := logs.FilterMessage("Guess payment split does not sum to 100").All()
	require.Len(t, entries, 1)
	assert.Equal(t, uint64(95), entries[0].ContextMap()["total"])
}

func TestRefreshSnapshot_SeparateExponents(t *testing.T) {
	h := newHarness(t)
	h.connect(t)
	h.chain.jackpot = big.NewInt(1_500_000)
	h.chain.guessCost = big.NewInt(1_500_000)

	snap, err := h.ctrl.RefreshSnapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "1.5", snap.GuessCost.Display.String())
	assert.Equal(t, "0.0000000000015", snap.JackpotAmount.Display.String())
	assert.Equal(t, uint8(6), snap.GuessCost.Decimals)
	assert.Equal(t, uint8(18), snap.JackpotAmount.Decimals)
	assert.Equal(t, game.Split{Burn: 10, Jackpot: 60, Next: 20, Marketing: 10}, snap.Split)
}

func TestRefreshSnapshot_NotConnected(t *testing.T) {
	h := newHarness(t)

	_, err := h.ctrl.RefreshSnapshot(context.Background())
	require.ErrorIs(t, err, game.ErrNotConnected)
	assert.Nil(t, h.ctrl.Snapshot())
}

func TestConnect_SwitchesNetwork(t *testing.T) {
	h := newHarness(t)
	h.wallet.chainID = 1

	sess, err := h.ctrl.Connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(146), sess.ChainID)
	assert.Equal(t, 1, h.wallet.switches)
}

func TestConnect_Failures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(w *fakeWallet)
		err   error
	}{
		{
			name:  "no wallet",
			setup: func(w *fakeWallet) { w.requestErr = game.ErrWalletUnavailable },
			err:   game.ErrWalletUnavailable,
		},
		{
			name:  "no accounts",
			setup: func(w *fakeWallet) { w.accounts = nil },
			err:   game.ErrWalletUnavailable,
		},
		{
			name: "switch rejected",
			setup: func(w *fakeWallet) {
				w.chainID = 1
				w.switchErr = game.ErrUserRejected
			},
			err: game.ErrUserRejected,
		},
		{
			name: "still on wrong chain",
			setup: func(w *fakeWallet) {
				w.chainID = 1
				w.switchTo = 5
			},
			err: game.ErrWrongNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			tt.setup(h.wallet)

			_, err := h.ctrl.Connect(context.Background())
			require.ErrorIs(t, err, tt.err)
			assert.Nil(t, h.ctrl.Session())
		})
	}
}

func TestAccountsChanged_ClearsCommitment(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.connect(t)

	_, err := h.ctrl.CommitGuess(ctx, "banana")
	require.NoError(t, err)
	require.NotNil(t, h.ctrl.Snapshot())

	h.wallet.switchAccount(otherAddr)
	h.ctrl.handleAccountsChanged([]common.Address{otherAddr})

	sess := h.ctrl.Session()
	require.NotNil(t, sess)
	assert.Equal(t, otherAddr, sess.Address)
	assert.Nil(t, h.ctrl.PendingCommitment())
	assert.Nil(t, h.ctrl.Snapshot())

	_, err = h.ctrl.RevealGuess(ctx)
	require.ErrorIs(t, err, game.ErrNoActiveCommitment)
}

func TestAccountsChanged_EmptyDisconnects(t *testing.T) {
	h := newHarness(t)
	h.connect(t)

	h.ctrl.handleAccountsChanged(nil)
	assert.Nil(t, h.ctrl.Session())
}

func TestChainChanged_ReloadsSession(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.connect(t)

	_, err := h.ctrl.CommitGuess(ctx, "banana")
	require.NoError(t, err)

	// the wallet reports a hop to another chain and is moved back on reconnect
	h.wallet.chainID = 1
	h.ctrl.handleChainChanged(1)

	sess := h.ctrl.Session()
	require.NotNil(t, sess)
	assert.Equal(t, uint64(146), sess.ChainID)
	assert.Equal(t, 1, h.wallet.switches)
	assert.Nil(t, h.ctrl.PendingCommitment())
	assert.NotNil(t, h.ctrl.Snapshot())
}

func TestChainChanged_SameChainIgnored(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.connect(t)

	_, err := h.ctrl.CommitGuess(ctx, "banana")
	require.NoError(t, err)

	h.ctrl.handleChainChanged(146)
	assert.NotNil(t, h.ctrl.PendingCommitment())
}

func TestDisconnect(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.connect(t)

	_, err := h.ctrl.CommitGuess(ctx, "banana")
	require.NoError(t, err)

	h.ctrl.Disconnect()
	assert.Nil(t, h.ctrl.Session())
	assert.Nil(t, h.ctrl.Snapshot())
	assert.Nil(t, h.ctrl.PendingCommitment())
}

func TestRequestHint(t *testing.T) {
	ctx := context.Background()
	hints := mocks.NewHintFetcher(t)
	h := newHarness(t, WithHintFetcher(hints))
	h.connect(t)

	hints.EXPECT().
		FetchHint(mock.Anything, mock.MatchedBy(func(i *big.Int) bool { return i.String() == "2" }), playerAddr).
		Return("it is yellow", nil).
		Once()

	res, err := h.ctrl.RequestHint(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2", res.Index.String())
	assert.Equal(t, "it is yellow", res.Hint)
	assert.Equal(t, []string{"approve", "requestHint"}, h.chain.sentMethods())
	assert.Equal(t, "2000", h.chain.sentAt(0).Args[1].(*big.Int).String())
}

func TestRequestHint_FetchFailureIsNotFatal(t *testing.T) {
	hints := mocks.NewHintFetcher(t)
	hints.EXPECT().
		FetchHint(mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("hint service down")).
		Once()
	h := newHarness(t, WithHintFetcher(hints))
	h.connect(t)

	res, err := h.ctrl.RequestHint(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Hint)
}

func TestRequestHint_Paused(t *testing.T) {
	h := newHarness(t)
	h.connect(t)
	h.chain.paused = true

	_, err := h.ctrl.RequestHint(context.Background())
	require.ErrorIs(t, err, game.ErrGamePaused)
	assert.Empty(t, h.chain.sentMethods())
}

func TestQuoteBuy(t *testing.T) {
	h := newHarness(t)

	q, err := h.ctrl.QuoteBuy(context.Background(), big.NewInt(2_000_000))
	require.NoError(t, err)
	assert.Equal(t, "1000", q.StartPrice.String())
	assert.Equal(t, "1020", q.EndPrice.String())
	assert.Equal(t, "2020", q.Cost.Base.String())
	assert.Equal(t, "2", q.Amount.Display.String())
	assert.Equal(t, uint8(18), q.Cost.Decimals)
}

func TestQuoteBuy_InvalidAmount(t *testing.T) {
	h := newHarness(t)

	_, err := h.ctrl.QuoteBuy(context.Background(), big.NewInt(0))
	require.ErrorIs(t, err, game.ErrInvalidAmount)
}

func TestBuy(t *testing.T) {
	h := newHarness(t)
	h.connect(t)

	res, err := h.ctrl.Buy(context.Background(), big.NewInt(2_000_000))
	require.NoError(t, err)
	require.NotNil(t, res.Cost)
	assert.Equal(t, "2020", res.Cost.Base.String())

	tx := h.chain.lastSent()
	assert.Equal(t, "buy", tx.Method)
	assert.Equal(t, "2020", tx.Value.String())
	assert.Equal(t, "2000000", tx.Args[0].(*big.Int).String())

	assert.Equal(t, "2100000", h.ctrl.Snapshot().TokenBalance.Base.String())
}

func TestBuy_Preflight(t *testing.T) {
	t.Run("native balance", func(t *testing.T) {
		h := newHarness(t)
		h.connect(t)
		h.wallet.native = big.NewInt(2019)

		_, err := h.ctrl.Buy(context.Background(), big.NewInt(2_000_000))
		require.ErrorIs(t, err, game.ErrInsufficientBalance)
		assert.Empty(t, h.chain.sentMethods())
	})

	t.Run("curve supply", func(t *testing.T) {
		h := newHarness(t)
		h.connect(t)
		h.chain.balances[curveAddr] = big.NewInt(1_999_999)

		_, err := h.ctrl.Buy(context.Background(), big.NewInt(2_000_000))
		require.ErrorIs(t, err, game.ErrInsufficientSupply)
		assert.Empty(t, h.chain.sentMethods())
	})
}

func TestSell(t *testing.T) {
	h := newHarness(t)
	h.connect(t)

	res, err := h.ctrl.Sell(context.Background(), big.NewInt(40_000))
	require.NoError(t, err)
	assert.Nil(t, res.Cost)
	assert.Equal(t, []string{"approve", "sell"}, h.chain.sentMethods())
	assert.Equal(t, curveAddr, h.chain.sentAt(0).Args[0])
	assert.Equal(t, "60000", h.ctrl.Snapshot().TokenBalance.Base.String())
}

func TestSell_InsufficientBalance(t *testing.T) {
	h := newHarness(t)
	h.connect(t)

	_, err := h.ctrl.Sell(context.Background(), big.NewInt(100_001))
	require.ErrorIs(t, err, game.ErrInsufficientBalance)
	assert.Empty(t, h.chain.sentMethods())
}
