package service

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/jackpot-middleware/pkg/game"
)

const serviceName = "GuessFlowController"

// logService wraps Service with automatic logging of all flows.
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the guess flow Service.
// It logs flow entry/exit, duration and errors under a per-call flow id.
// Guess plaintexts and nonces are never logged.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// begin logs the start of a flow and returns a logger carrying its id.
func (ls *logService) begin(method string, fields ...zap.Field) (*zap.Logger, time.Time) {
	l := ls.logger.With(
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.String("flow_id", uuid.NewString()),
	)
	l.Info(method+" started", fields...)
	return l, time.Now()
}

func (ls *logService) end(l *zap.Logger, method string, start time.Time, err error, fields ...zap.Field) {
	duration := time.Since(start)
	if err != nil {
		l.Error(method+" failed",
			zap.Duration("duration", duration),
			zap.String("error_kind", game.ErrorKind(err)),
			zap.Error(err),
		)
		return
	}
	l.Info(method+" completed", append(fields, zap.Duration("duration", duration))...)
}

func (ls *logService) Connect(ctx context.Context) (sess *game.Session, err error) {
	l, start := ls.begin("Connect")
	defer func() {
		if err != nil {
			ls.end(l, "Connect", start, err)
			return
		}
		ls.end(l, "Connect", start, nil,
			zap.String("address", sess.Address.Hex()),
			zap.Uint64("chain_id", sess.ChainID))
	}()

	return ls.svc.Connect(ctx)
}

func (ls *logService) Disconnect() {
	l, start := ls.begin("Disconnect")
	ls.svc.Disconnect()
	ls.end(l, "Disconnect", start, nil)
}

// Session is a cached read and is not logged.
func (ls *logService) Session() *game.Session {
	return ls.svc.Session()
}

func (ls *logService) RefreshSnapshot(ctx context.Context) (snap *game.Snapshot, err error) {
	l, start := ls.begin("RefreshSnapshot")
	defer func() {
		if err != nil {
			ls.end(l, "RefreshSnapshot", start, err)
			return
		}
		ls.end(l, "RefreshSnapshot", start, nil,
			zap.String("jackpot", snap.JackpotAmount.Display.String()),
			zap.String("total_guesses", snap.TotalGuesses.String()),
			zap.Bool("paused", snap.Paused))
	}()

	return ls.svc.RefreshSnapshot(ctx)
}

func (ls *logService) Snapshot() *game.Snapshot {
	return ls.svc.Snapshot()
}

func (ls *logService) EnsureAllowance(ctx context.Context, spender common.Address, amount *big.Int) (err error) {
	l, start := ls.begin("EnsureAllowance",
		zap.String("spender", spender.Hex()),
		zap.Stringer("amount", amount))
	defer func() { ls.end(l, "EnsureAllowance", start, err) }()

	return ls.svc.EnsureAllowance(ctx, spender, amount)
}

func (ls *logService) CommitGuess(ctx context.Context, plaintext string) (res *game.CommitResult, err error) {
	l, start := ls.begin("CommitGuess", zap.Int("guess_length", len(plaintext)))
	defer func() {
		if err != nil {
			ls.end(l, "CommitGuess", start, err)
			return
		}
		ls.end(l, "CommitGuess", start, nil,
			zap.String("commitment_hash", res.CommitmentHash.Hex()),
			zap.String("tx_hash", res.TxHash.Hex()),
			zap.Uint64("block_number", res.BlockNumber))
	}()

	return ls.svc.CommitGuess(ctx, plaintext)
}

func (ls *logService) PendingCommitment() *game.PendingCommitment {
	return ls.svc.PendingCommitment()
}

func (ls *logService) RevealGuess(ctx context.Context) (res *game.RevealResult, err error) {
	l, start := ls.begin("RevealGuess")
	defer func() {
		if err != nil {
			ls.end(l, "RevealGuess", start, err)
			return
		}
		ls.end(l, "RevealGuess", start, nil,
			zap.String("tx_hash", res.TxHash.Hex()),
			zap.Bool("won", res.Won),
			zap.Bool("undetermined", res.Undetermined),
			zap.Bool("hint_available", res.HintAvailable))
	}()

	return ls.svc.RevealGuess(ctx)
}

func (ls *logService) RequestHint(ctx context.Context) (res *game.HintResult, err error) {
	l, start := ls.begin("RequestHint")
	defer func() {
		if err != nil {
			ls.end(l, "RequestHint", start, err)
			return
		}
		fields := []zap.Field{zap.String("tx_hash", res.TxHash.Hex())}
		if res.Index != nil {
			fields = append(fields, zap.Stringer("hint_index", res.Index))
		}
		ls.end(l, "RequestHint", start, nil, fields...)
	}()

	return ls.svc.RequestHint(ctx)
}

func (ls *logService) QuoteBuy(ctx context.Context, amount *big.Int) (q *game.Quote, err error) {
	l, start := ls.begin("QuoteBuy", zap.Stringer("amount", amount))
	defer func() {
		if err != nil {
			ls.end(l, "QuoteBuy", start, err)
			return
		}
		ls.end(l, "QuoteBuy", start, nil, zap.String("cost", q.Cost.Display.String()))
	}()

	return ls.svc.QuoteBuy(ctx, amount)
}

func (ls *logService) Buy(ctx context.Context, amount *big.Int) (res *game.TradeResult, err error) {
	l, start := ls.begin("Buy", zap.Stringer("amount", amount))
	defer func() {
		if err != nil {
			ls.end(l, "Buy", start, err)
			return
		}
		ls.end(l, "Buy", start, nil, zap.String("tx_hash", res.TxHash.Hex()))
	}()

	return ls.svc.Buy(ctx, amount)
}

func (ls *logService) Sell(ctx context.Context, amount *big.Int) (res *game.TradeResult, err error) {
	l, start := ls.begin("Sell", zap.Stringer("amount", amount))
	defer func() {
		if err != nil {
			ls.end(l, "Sell", start, err)
			return
		}
		ls.end(l, "Sell", start, nil, zap.String("tx_hash", res.TxHash.Hex()))
	}()

	return ls.svc.Sell(ctx, amount)
}
