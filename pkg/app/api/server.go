// Package api implements app.Runner for the jackpot client process.
package api

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	apphttp "github.com/chainsafe/jackpot-middleware/pkg/app/http"
	"github.com/chainsafe/jackpot-middleware/pkg/auth"
	"github.com/chainsafe/jackpot-middleware/pkg/config"
	"github.com/chainsafe/jackpot-middleware/pkg/ethereum"
	"github.com/chainsafe/jackpot-middleware/pkg/game/service"
	"github.com/chainsafe/jackpot-middleware/pkg/hint"
	"github.com/chainsafe/jackpot-middleware/pkg/wallet"
)

const autoConnectTimeout = time.Minute

// watcher is implemented by providers that poll for wallet events.
type watcher interface {
	Watch(ctx context.Context, interval time.Duration) error
}

// Server holds cfg to init the jackpot client.
type Server struct {
	cfg *config.Config
}

// NewServer initializes a new jackpot client server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// Run wires the wallet, chain adapters and guess flow controller, then serves
// the local API until an OS shutdown signal arrives or a component fails.
func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("nil config")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting jackpot client",
		zap.String("network", cfg.Network.Name),
		zap.Uint64("chain_id", cfg.Network.ChainID),
		zap.String("wallet_mode", cfg.Wallet.Mode),
	)

	provider, closeWallet, err := s.openWallet(ctx, logger)
	if err != nil {
		return err
	}
	defer closeWallet()

	ethClient, err := ethereum.Dial(ctx, cfg.Network.RPCURL, provider, &cfg.Ethereum, ethereum.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("connect ethereum: %w", err)
	}
	defer ethClient.Close()

	ctrl, err := s.newController(ethClient, provider, logger)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	svc := service.NewLog(ctrl, logger)

	var validator *auth.JWTValidator
	if cfg.Auth.Enabled {
		validator = auth.NewJWTValidator(cfg.Auth.JWKSURL, cfg.Auth.Issuer, auth.WithLogger(logger))
		logger.Info("Bearer token validation enabled", zap.String("jwks_url", cfg.Auth.JWKSURL))
	}

	router := NewRouter(cfg, svc, validator, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return apphttp.ServeAndWait(gctx, router, logger, &cfg.Server)
	})
	g.Go(func() error {
		return ignoreCanceled(ctrl.AutoRefresh(gctx, cfg.Refresh.Interval))
	})
	if w, ok := provider.(watcher); ok && cfg.Wallet.WatchInterval > 0 {
		g.Go(func() error {
			return ignoreCanceled(w.Watch(gctx, cfg.Wallet.WatchInterval))
		})
	}
	if cfg.Wallet.AutoConnect {
		g.Go(func() error {
			s.autoConnect(gctx, svc, logger)
			return nil
		})
	}

	return g.Wait()
}

func (s *Server) openWallet(ctx context.Context, logger *zap.Logger) (wallet.Provider, func(), error) {
	cfg := s.cfg
	opts := []wallet.Option{wallet.WithLogger(logger.Named("wallet"))}

	switch cfg.Wallet.Mode {
	case config.WalletModeEIP1193:
		p, err := wallet.DialEIP1193(ctx, cfg.Wallet.Endpoint, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("connect wallet: %w", err)
		}
		return p, func() {}, nil
	default:
		p, err := wallet.NewKeyedProvider(cfg.Wallet.PrivateKey, cfg.Network.RPCURL, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("load wallet key: %w", err)
		}
		logger.Info("Using local key", zap.String("address", p.Address().Hex()))
		return p, p.Close, nil
	}
}

func (s *Server) newController(c *ethereum.Client, provider wallet.Provider, logger *zap.Logger) (*service.Controller, error) {
	cfg := s.cfg

	ledger, err := ethereum.NewTokenLedger(c, common.HexToAddress(cfg.Contracts.GameToken), cfg.Tokens.GameDecimals)
	if err != nil {
		return nil, fmt.Errorf("bind game token: %w", err)
	}
	jackpot, err := ethereum.NewJackpotGame(c, common.HexToAddress(cfg.Contracts.JackpotGame))
	if err != nil {
		return nil, fmt.Errorf("bind jackpot game: %w", err)
	}
	curve, err := ethereum.NewPricingCurve(c, common.HexToAddress(cfg.Contracts.BondingCurve))
	if err != nil {
		return nil, fmt.Errorf("bind bonding curve: %w", err)
	}

	opts := []service.Option{
		service.WithLogger(logger.Named("controller")),
		service.WithCurveConstants(cfg.Pricing.UnitInt(), cfg.Pricing.DenominatorInt()),
		service.WithReloadTimeout(autoConnectTimeout),
	}
	if cfg.Hint.Endpoint != "" {
		hints, err := hint.NewClient(cfg.Hint.Endpoint,
			hint.WithTimeout(cfg.Hint.Timeout),
			hint.WithLogger(logger.Named("hint")))
		if err != nil {
			return nil, err
		}
		opts = append(opts, service.WithHintFetcher(hints))
	}

	return service.NewController(provider, ledger, jackpot, curve, cfg.Network.Descriptor(), opts...), nil
}

// autoConnect connects once at startup and loads the first snapshot. A
// failure leaves the client disconnected; POST /api/v1/connect retries.
func (s *Server) autoConnect(ctx context.Context, svc service.Service, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(ctx, autoConnectTimeout)
	defer cancel()

	if _, err := svc.Connect(ctx); err != nil {
		logger.Warn("Auto-connect failed", zap.Error(err))
		return
	}
	if _, err := svc.RefreshSnapshot(ctx); err != nil {
		logger.Warn("Initial snapshot refresh failed", zap.Error(err))
	}
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
