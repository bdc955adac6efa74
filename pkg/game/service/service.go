// Package service implements the guess flow controller: the commit-reveal
// guessing protocol, approval sequencing, bonding curve trades and the
// all-or-nothing game snapshot.
package service

import (
	"context"
	"crypto/rand"
	"io"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/jackpot-middleware/pkg/game"
	"github.com/chainsafe/jackpot-middleware/pkg/wallet"
)

// TokenLedger is the ERC-20 game token.
type TokenLedger interface {
	Address() common.Address
	Decimals() uint8
	BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error)
	Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error)
	// Approve returns once the approval has been mined.
	Approve(ctx context.Context, spender common.Address, amount *big.Int) (*game.Receipt, error)
}

// JackpotGame is the commit-reveal game contract.
type JackpotGame interface {
	Address() common.Address
	TotalGuesses(ctx context.Context) (*big.Int, error)
	JackpotAmount(ctx context.Context) (*big.Int, error)
	NextJackpotAmount(ctx context.Context) (*big.Int, error)
	PlayerGuesses(ctx context.Context, player common.Address) (*big.Int, error)
	GuessCost(ctx context.Context) (*big.Int, error)
	HintCost(ctx context.Context) (*big.Int, error)
	HintCount(ctx context.Context, player common.Address) (*big.Int, error)
	GetSplit(ctx context.Context) (game.Split, error)
	Paused(ctx context.Context) (bool, error)

	CommitGuess(ctx context.Context, hash common.Hash) (*game.Receipt, error)
	RevealGuess(ctx context.Context, plaintext string, nonce [game.NonceSize]byte) (*game.RevealOutcome, error)
	RequestHint(ctx context.Context) (*game.HintReceipt, error)
}

// PricingCurve is the bonding curve selling game tokens.
type PricingCurve interface {
	Address() common.Address
	InitialPrice(ctx context.Context) (*big.Int, error)
	PriceIncrease(ctx context.Context) (*big.Int, error)
	TotalBought(ctx context.Context) (*big.Int, error)
	Buy(ctx context.Context, amount, value *big.Int) (*game.Receipt, error)
	Sell(ctx context.Context, amount *big.Int) (*game.Receipt, error)
}

// HintFetcher retrieves hint text from the optional hint service.
//
//go:generate mockery --name HintFetcher --output mocks --outpkg mocks --filename mock_hint_fetcher.go --with-expecter
type HintFetcher interface {
	FetchHint(ctx context.Context, index *big.Int, player common.Address) (string, error)
}

// Service defines the guess flow operations. Every state-changing flow is
// serialized; reads of the cached session, snapshot and commitment never block
// on a running flow.
type Service interface {
	Connect(ctx context.Context) (*game.Session, error)
	Disconnect()
	Session() *game.Session

	RefreshSnapshot(ctx context.Context) (*game.Snapshot, error)
	Snapshot() *game.Snapshot

	EnsureAllowance(ctx context.Context, spender common.Address, amount *big.Int) error

	CommitGuess(ctx context.Context, plaintext string) (*game.CommitResult, error)
	PendingCommitment() *game.PendingCommitment
	RevealGuess(ctx context.Context) (*game.RevealResult, error)
	RequestHint(ctx context.Context) (*game.HintResult, error)

	QuoteBuy(ctx context.Context, amount *big.Int) (*game.Quote, error)
	Buy(ctx context.Context, amount *big.Int) (*game.TradeResult, error)
	Sell(ctx context.Context, amount *big.Int) (*game.TradeResult, error)
}

const defaultReloadTimeout = 2 * time.Minute

type settings struct {
	logger        *zap.Logger
	hints         HintFetcher
	random        io.Reader
	now           func() time.Time
	tokenUnit     *big.Int
	denominator   *big.Int
	reloadTimeout time.Duration
}

// Option configures a Controller.
type Option func(*settings)

// WithLogger sets the controller logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithHintFetcher enables hint text retrieval after a hint purchase.
func WithHintFetcher(h HintFetcher) Option {
	return func(s *settings) { s.hints = h }
}

// WithRandom replaces the nonce source. It must be cryptographically secure.
func WithRandom(r io.Reader) Option {
	return func(s *settings) { s.random = r }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

// WithCurveConstants sets the bonding curve unit and price denominator.
func WithCurveConstants(unit, denominator *big.Int) Option {
	return func(s *settings) {
		s.tokenUnit = unit
		s.denominator = denominator
	}
}

// WithReloadTimeout bounds the reconnect triggered by a chain change.
func WithReloadTimeout(d time.Duration) Option {
	return func(s *settings) { s.reloadTimeout = d }
}

func applyOptions(opts []Option) settings {
	s := settings{
		logger:        zap.NewNop(),
		random:        rand.Reader,
		now:           time.Now,
		tokenUnit:     game.DefaultTokenUnit,
		denominator:   game.DefaultPriceDenominator,
		reloadTimeout: defaultReloadTimeout,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// Controller is the guess flow controller.
type Controller struct {
	wallet  wallet.Provider
	ledger  TokenLedger
	game    JackpotGame
	curve   PricingCurve
	network wallet.Network

	logger        *zap.Logger
	hints         HintFetcher
	random        io.Reader
	now           func() time.Time
	pricing       game.Curve
	reloadTimeout time.Duration

	// lifetime of listener-driven reloads
	baseCtx context.Context
	cancel  context.CancelFunc

	// flowMu serializes every user flow
	flowMu sync.Mutex

	stateMu     sync.RWMutex
	session     *game.Session
	snapshot    *game.Snapshot
	commitment  *game.Commitment
	unsubscribe []func()
}

var _ Service = (*Controller)(nil)

// NewController creates a controller for network over the given collaborators.
func NewController(
	provider wallet.Provider,
	ledger TokenLedger,
	jackpot JackpotGame,
	curve PricingCurve,
	network wallet.Network,
	opts ...Option,
) *Controller {
	s := applyOptions(opts)
	ctx, cancel := context.WithCancel(context.Background())

	return &Controller{
		wallet:  provider,
		ledger:  ledger,
		game:    jackpot,
		curve:   curve,
		network: network,
		logger:  s.logger,
		hints:   s.hints,
		random:  s.random,
		now:     s.now,
		pricing: game.Curve{
			Unit:        s.tokenUnit,
			Denominator: s.denominator,
		},
		reloadTimeout: s.reloadTimeout,
		baseCtx:       ctx,
		cancel:        cancel,
	}
}

// Session returns a copy of the current session, or nil when disconnected.
func (c *Controller) Session() *game.Session {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	if c.session == nil {
		return nil
	}
	s := *c.session
	return &s
}

// Snapshot returns the last published snapshot, or nil.
func (c *Controller) Snapshot() *game.Snapshot {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return c.snapshot
}

// PendingCommitment returns the redacted commitment awaiting reveal, or nil.
func (c *Controller) PendingCommitment() *game.PendingCommitment {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	if c.commitment == nil {
		return nil
	}
	return c.commitment.Public()
}

// Close stops listener-driven reloads and unsubscribes from the wallet.
func (c *Controller) Close() {
	c.cancel()

	c.stateMu.Lock()
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.stateMu.Unlock()

	for _, fn := range unsubscribe {
		fn()
	}
}

// requireSession returns a copy of the session or ErrNotConnected.
func (c *Controller) requireSession() (game.Session, error) {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	if c.session == nil || !c.session.IsConnected {
		return game.Session{}, game.ErrNotConnected
	}
	return *c.session, nil
}

func (c *Controller) gameDecimals() uint8 {
	return c.ledger.Decimals()
}

func (c *Controller) nativeDecimals() uint8 {
	return c.network.NativeCurrency.Decimals
}
