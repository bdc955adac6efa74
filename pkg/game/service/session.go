package service

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/jackpot-middleware/pkg/game"
)

// Connect requests account access and moves the wallet to the configured
// network, switching or adding it when needed. It never retries; on failure
// the session stays unset.
func (c *Controller) Connect(ctx context.Context) (sess *game.Session, err error) {
	c.flowMu.Lock()
	defer c.flowMu.Unlock()
	defer c.track("connect", c.now(), &err)

	return c.connect(ctx)
}

func (c *Controller) connect(ctx context.Context) (*game.Session, error) {
	accounts, err := c.wallet.RequestAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("request accounts: %w", err)
	}
	if len(accounts) == 0 {
		return nil, fmt.Errorf("%w: no accounts exposed", game.ErrWalletUnavailable)
	}

	chainID, err := c.wallet.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get chain id: %w", err)
	}

	if chainID != c.network.ChainID {
		c.logger.Info("Wallet on different network, requesting switch",
			zap.Uint64("current_chain_id", chainID),
			zap.Uint64("target_chain_id", c.network.ChainID),
			zap.String("network", c.network.Name))

		if err := c.wallet.SwitchOrAddChain(ctx, c.network); err != nil {
			return nil, fmt.Errorf("switch network: %w", err)
		}
		if chainID, err = c.wallet.ChainID(ctx); err != nil {
			return nil, fmt.Errorf("get chain id: %w", err)
		}
		if chainID != c.network.ChainID {
			return nil, fmt.Errorf("%w: on chain %d, expected %d", game.ErrWrongNetwork, chainID, c.network.ChainID)
		}
	}

	sess := &game.Session{
		Address:     accounts[0],
		ChainID:     chainID,
		IsConnected: true,
		ConnectedAt: c.now(),
	}

	c.stateMu.Lock()
	if c.session == nil || c.session.Address != sess.Address {
		c.snapshot = nil
		c.commitment = nil
	}
	c.session = sess
	subscribe := c.unsubscribe == nil
	c.stateMu.Unlock()

	if subscribe {
		c.subscribe()
	}

	out := *sess
	return &out, nil
}

// Disconnect drops the session, snapshot and any pending commitment.
func (c *Controller) Disconnect() {
	c.flowMu.Lock()
	defer c.flowMu.Unlock()

	c.reset()
}

func (c *Controller) reset() {
	c.stateMu.Lock()
	if c.commitment != nil {
		c.logger.Warn("Discarding unrevealed guess commitment",
			zap.String("commitment_hash", c.commitment.Hash.Hex()))
	}
	c.session = nil
	c.snapshot = nil
	c.commitment = nil
	c.stateMu.Unlock()
}

func (c *Controller) subscribe() {
	offAccounts := c.wallet.OnAccountsChanged(c.handleAccountsChanged)
	offChain := c.wallet.OnChainChanged(c.handleChainChanged)

	c.stateMu.Lock()
	c.unsubscribe = append(c.unsubscribe, offAccounts, offChain)
	c.stateMu.Unlock()
}

// handleAccountsChanged moves the session to the wallet's new primary
// account. A commitment belongs to the account that made it, so it is dropped.
func (c *Controller) handleAccountsChanged(accounts []common.Address) {
	c.flowMu.Lock()
	defer c.flowMu.Unlock()

	if c.Session() == nil {
		return
	}
	if len(accounts) == 0 {
		c.logger.Info("Wallet exposed no accounts, disconnecting")
		c.reset()
		return
	}

	c.stateMu.Lock()
	if c.session == nil || c.session.Address == accounts[0] {
		c.stateMu.Unlock()
		return
	}
	c.logger.Info("Wallet account changed",
		zap.String("from", c.session.Address.Hex()),
		zap.String("to", accounts[0].Hex()))

	sess := *c.session
	sess.Address = accounts[0]
	c.session = &sess
	c.snapshot = nil
	c.commitment = nil
	c.stateMu.Unlock()
}

// handleChainChanged performs a full reload: session, snapshot and
// commitment are dropped, then the controller reconnects and refreshes.
func (c *Controller) handleChainChanged(chainID uint64) {
	c.flowMu.Lock()
	defer c.flowMu.Unlock()

	current := c.Session()
	if current == nil || current.ChainID == chainID {
		return
	}

	c.logger.Info("Wallet chain changed, reloading session",
		zap.Uint64("from_chain_id", current.ChainID),
		zap.Uint64("to_chain_id", chainID))
	c.reset()

	ctx, cancel := context.WithTimeout(c.baseCtx, c.reloadTimeout)
	defer cancel()

	if _, err := c.connect(ctx); err != nil {
		c.logger.Warn("Reconnect after chain change failed", zap.Error(err))
		return
	}
	if _, err := c.refresh(ctx); err != nil {
		c.logger.Warn("Snapshot refresh after chain change failed", zap.Error(err))
	}
}
