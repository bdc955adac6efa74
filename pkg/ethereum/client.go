package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/chainsafe/jackpot-middleware/internal/metrics"
	"github.com/chainsafe/jackpot-middleware/pkg/config"
	"github.com/chainsafe/jackpot-middleware/pkg/game"
)

const defaultReceiptPollInterval = time.Second

// Backend is the chain access the contract adapters need. *ethclient.Client
// satisfies it.
type Backend interface {
	bind.ContractBackend
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	ChainID(ctx context.Context) (*big.Int, error)
	Close()
}

// Signer supplies transaction options for the connected account.
// wallet.Provider satisfies it.
type Signer interface {
	Transactor(ctx context.Context) (*bind.TransactOpts, error)
}

// Client represents an Ethereum client shared by the contract adapters
type Client struct {
	config       *config.EthereumConfig
	backend      Backend
	signer       Signer
	logger       *zap.Logger
	pollInterval time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the client logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithReceiptPollInterval sets how often pending receipts are polled.
func WithReceiptPollInterval(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.pollInterval = d
		}
	}
}

// NewClient wraps an existing backend. signer provides the sending account.
func NewClient(backend Backend, signer Signer, cfg *config.EthereumConfig, opts ...Option) *Client {
	if cfg == nil {
		cfg = &config.EthereumConfig{}
	}
	c := &Client{
		config:       cfg,
		backend:      backend,
		signer:       signer,
		logger:       zap.NewNop(),
		pollInterval: defaultReceiptPollInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dial connects to the Ethereum RPC at rpcURL.
func Dial(ctx context.Context, rpcURL string, signer Signer, cfg *config.EthereumConfig, opts ...Option) (*Client, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Ethereum RPC: %w", err)
	}
	c := NewClient(client, signer, cfg, opts...)

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}
	c.logger.Info("Connected to Ethereum",
		zap.String("chain_id", chainID.String()),
		zap.String("rpc_url", rpcURL))

	return c, nil
}

// Close closes the Ethereum client
func (c *Client) Close() {
	if c.backend != nil {
		c.backend.Close()
	}
}

// GetLatestBlockNumber gets the latest block number
func (c *Client) GetLatestBlockNumber(ctx context.Context) (uint64, error) {
	header, err := c.backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return header.Number.Uint64(), nil
}

// callOpts bounds a view call with the configured call timeout.
func (c *Client) callOpts(ctx context.Context) (*bind.CallOpts, context.CancelFunc) {
	if c.config.CallTimeout <= 0 {
		return &bind.CallOpts{Context: ctx}, func() {}
	}
	callCtx, cancel := context.WithTimeout(ctx, c.config.CallTimeout)
	return &bind.CallOpts{Context: callCtx}, cancel
}

// GetTransactor returns transaction options from the signer with the
// configured gas limit and gas price cap applied.
func (c *Client) GetTransactor(ctx context.Context) (*bind.TransactOpts, error) {
	auth, err := c.signer.Transactor(ctx)
	if err != nil {
		return nil, err
	}
	auth.Context = ctx
	auth.GasLimit = c.config.GasLimit

	// Set gas price if configured
	if maxGasPrice := c.config.MaxGasPriceWei(); maxGasPrice != nil {
		gasPrice, err := c.backend.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to suggest gas price: %w", err)
		}

		if gasPrice.Cmp(maxGasPrice) > 0 {
			c.logger.Warn("Suggested gas price exceeds maximum",
				zap.String("suggested", gasPrice.String()),
				zap.String("max", maxGasPrice.String()))
			auth.GasPrice = maxGasPrice
		} else {
			auth.GasPrice = gasPrice
		}
	}

	return auth, nil
}

// transact signs and sends a transaction built by fn, waits for it to be
// mined and converts reverts into *game.RevertError. abis are consulted to
// name custom revert errors.
func (c *Client) transact(
	ctx context.Context,
	op string,
	abis []*abi.ABI,
	fn func(*bind.TransactOpts) (*types.Transaction, error),
) (*types.Receipt, error) {
	auth, err := c.GetTransactor(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := fn(auth)
	if err != nil {
		metrics.TransactionsSent.WithLabelValues(op, "rejected").Inc()
		if reason, ok := revertReason(err, abis); ok {
			return nil, &game.RevertError{Op: op, Reason: reason, Err: err}
		}
		return nil, fmt.Errorf("failed to submit %s transaction: %w", op, err)
	}

	c.logger.Info("Transaction submitted",
		zap.String("operation", op),
		zap.String("tx_hash", tx.Hash().Hex()),
		zap.Uint64("nonce", tx.Nonce()))

	receipt, err := c.waitMined(ctx, tx.Hash())
	if err != nil {
		metrics.TransactionsSent.WithLabelValues(op, "unconfirmed").Inc()
		return nil, fmt.Errorf("failed waiting for %s transaction %s: %w", op, tx.Hash().Hex(), err)
	}
	metrics.GasUsed.WithLabelValues(op).Observe(float64(receipt.GasUsed))

	if receipt.Status != types.ReceiptStatusSuccessful {
		metrics.TransactionsSent.WithLabelValues(op, "reverted").Inc()
		reason := c.replayRevert(ctx, auth.From, tx, receipt.BlockNumber, abis)
		c.logger.Warn("Transaction reverted",
			zap.String("operation", op),
			zap.String("tx_hash", tx.Hash().Hex()),
			zap.String("reason", reason))
		return nil, &game.RevertError{Op: op, TxHash: tx.Hash(), Reason: reason}
	}

	metrics.TransactionsSent.WithLabelValues(op, "success").Inc()
	c.logger.Info("Transaction mined",
		zap.String("operation", op),
		zap.String("tx_hash", tx.Hash().Hex()),
		zap.Uint64("block", receipt.BlockNumber.Uint64()),
		zap.Uint64("gas_used", receipt.GasUsed))

	return receipt, nil
}

// waitMined polls for the receipt of txHash until it is available, ctx is
// done or the configured receipt timeout elapses.
func (c *Client) waitMined(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	if c.config.ReceiptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.ReceiptTimeout)
		defer cancel()
	}

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.backend.TransactionReceipt(ctx, txHash)
		if err == nil && receipt != nil {
			return receipt, nil
		}
		if err != nil && !errors.Is(err, ethereum.NotFound) {
			c.logger.Debug("Receipt not yet available",
				zap.String("tx_hash", txHash.Hex()),
				zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// replayRevert re-executes a failed transaction against the parent block to
// recover its revert reason. An empty string means none could be recovered.
func (c *Client) replayRevert(ctx context.Context, from common.Address, tx *types.Transaction, block *big.Int, abis []*abi.ABI) string {
	msg := ethereum.CallMsg{
		From:  from,
		To:    tx.To(),
		Gas:   tx.Gas(),
		Value: tx.Value(),
		Data:  tx.Data(),
	}
	var at *big.Int
	if block != nil && block.Sign() > 0 {
		at = new(big.Int).Sub(block, big.NewInt(1))
	}

	_, err := c.backend.CallContract(ctx, msg, at)
	if err == nil {
		return ""
	}
	reason, _ := revertReason(err, abis)
	return reason
}

func toReceipt(r *types.Receipt) game.Receipt {
	out := game.Receipt{
		TxHash:  r.TxHash,
		GasUsed: r.GasUsed,
	}
	if r.BlockNumber != nil {
		out.BlockNumber = r.BlockNumber.Uint64()
	}
	return out
}
