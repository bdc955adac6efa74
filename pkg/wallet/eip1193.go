package wallet

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
)

// EIP-1193 / EIP-3085 provider error codes.
const (
	CodeUserRejected      = 4001
	CodeUnauthorized      = 4100
	CodeUnsupported       = 4200
	CodeDisconnected      = 4900
	CodeChainDisconnected = 4901
	CodeUnrecognizedChain = 4902
)

// Caller issues JSON-RPC requests. *rpc.Client satisfies it.
type Caller interface {
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
}

// EIP1193Provider talks to a remote wallet that exposes the EIP-1193 request
// methods over JSON-RPC. Events are observed by polling, see Watch.
type EIP1193Provider struct {
	rpc    Caller
	logger *zap.Logger

	mu       sync.Mutex
	account  common.Address
	known    []common.Address
	chainID  uint64
	accounts listeners[[]common.Address]
	chains   listeners[uint64]
}

var _ Provider = (*EIP1193Provider)(nil)

// NewEIP1193Provider wraps an existing JSON-RPC caller.
func NewEIP1193Provider(c Caller, opts ...Option) *EIP1193Provider {
	s := applyOptions(opts)
	return &EIP1193Provider{rpc: c, logger: s.logger}
}

// DialEIP1193 connects to a wallet endpoint.
func DialEIP1193(ctx context.Context, rawURL string, opts ...Option) (*EIP1193Provider, error) {
	c, err := rpc.DialContext(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return NewEIP1193Provider(c, opts...), nil
}

func (p *EIP1193Provider) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	var accounts []common.Address
	if err := p.rpc.CallContext(ctx, &accounts, "eth_requestAccounts"); err != nil {
		return nil, mapError("eth_requestAccounts", err)
	}
	if len(accounts) == 0 {
		return nil, fmt.Errorf("%w: wallet exposed no accounts", ErrUnavailable)
	}

	p.mu.Lock()
	p.account = accounts[0]
	p.known = accounts
	p.mu.Unlock()

	return accounts, nil
}

func (p *EIP1193Provider) ChainID(ctx context.Context) (uint64, error) {
	var id hexutil.Uint64
	if err := p.rpc.CallContext(ctx, &id, "eth_chainId"); err != nil {
		return 0, mapError("eth_chainId", err)
	}

	p.mu.Lock()
	p.chainID = uint64(id)
	p.mu.Unlock()

	return uint64(id), nil
}

type switchChainParams struct {
	ChainID hexutil.Uint64 `json:"chainId"`
}

type addChainParams struct {
	ChainID           hexutil.Uint64    `json:"chainId"`
	ChainName         string            `json:"chainName"`
	NativeCurrency    nativeCurrencyArg `json:"nativeCurrency"`
	RPCURLs           []string          `json:"rpcUrls"`
	BlockExplorerURLs []string          `json:"blockExplorerUrls,omitempty"`
}

type nativeCurrencyArg struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

// SwitchOrAddChain asks the wallet to switch to n. If the wallet does not know
// the chain it is added and the switch retried once.
func (p *EIP1193Provider) SwitchOrAddChain(ctx context.Context, n Network) error {
	err := p.switchChain(ctx, n.ChainID)
	if errorCode(err) == CodeUnrecognizedChain {
		p.logger.Info("Adding network to wallet",
			zap.Uint64("chain_id", n.ChainID),
			zap.String("network", n.Name))

		params := addChainParams{
			ChainID:   hexutil.Uint64(n.ChainID),
			ChainName: n.Name,
			NativeCurrency: nativeCurrencyArg{
				Name:     n.NativeCurrency.Name,
				Symbol:   n.NativeCurrency.Symbol,
				Decimals: n.NativeCurrency.Decimals,
			},
			RPCURLs: []string{n.RPCURL},
		}
		if n.ExplorerURL != "" {
			params.BlockExplorerURLs = []string{n.ExplorerURL}
		}
		if addErr := p.rpc.CallContext(ctx, nil, "wallet_addEthereumChain", params); addErr != nil {
			return mapError("wallet_addEthereumChain", addErr)
		}
		err = p.switchChain(ctx, n.ChainID)
	}
	if err != nil {
		if errorCode(err) == CodeUnrecognizedChain {
			return fmt.Errorf("%w: wallet does not recognise chain %d", ErrWrongNetwork, n.ChainID)
		}
		return mapError("wallet_switchEthereumChain", err)
	}

	current, err := p.ChainID(ctx)
	if err != nil {
		return err
	}
	if current != n.ChainID {
		return fmt.Errorf("%w: wallet on chain %d, expected %d", ErrWrongNetwork, current, n.ChainID)
	}
	return nil
}

func (p *EIP1193Provider) switchChain(ctx context.Context, chainID uint64) error {
	return p.rpc.CallContext(ctx, nil, "wallet_switchEthereumChain", switchChainParams{ChainID: hexutil.Uint64(chainID)})
}

func (p *EIP1193Provider) OnAccountsChanged(fn func([]common.Address)) func() {
	return p.accounts.add(fn)
}

func (p *EIP1193Provider) OnChainChanged(fn func(uint64)) func() {
	return p.chains.add(fn)
}

func (p *EIP1193Provider) Balance(ctx context.Context, addr common.Address) (*big.Int, error) {
	var bal hexutil.Big
	if err := p.rpc.CallContext(ctx, &bal, "eth_getBalance", addr, "latest"); err != nil {
		return nil, mapError("eth_getBalance", err)
	}
	return bal.ToInt(), nil
}

type signTxArgs struct {
	From                 common.Address  `json:"from"`
	To                   *common.Address `json:"to,omitempty"`
	Gas                  hexutil.Uint64  `json:"gas"`
	GasPrice             *hexutil.Big    `json:"gasPrice,omitempty"`
	MaxFeePerGas         *hexutil.Big    `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas *hexutil.Big    `json:"maxPriorityFeePerGas,omitempty"`
	Value                *hexutil.Big    `json:"value"`
	Nonce                hexutil.Uint64  `json:"nonce"`
	Data                 hexutil.Bytes   `json:"data"`
	ChainID              *hexutil.Big    `json:"chainId,omitempty"`
}

type signTxResult struct {
	Raw hexutil.Bytes `json:"raw"`
}

// Transactor returns options whose signer delegates to eth_signTransaction.
// RequestAccounts must have succeeded first.
func (p *EIP1193Provider) Transactor(ctx context.Context) (*bind.TransactOpts, error) {
	p.mu.Lock()
	from := p.account
	p.mu.Unlock()

	if from == (common.Address{}) {
		return nil, fmt.Errorf("%w: no account requested", ErrUnavailable)
	}

	return &bind.TransactOpts{
		From:    from,
		Context: ctx,
		Signer: func(addr common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if addr != from {
				return nil, bind.ErrNotAuthorized
			}
			return p.signTransaction(ctx, from, tx)
		},
	}, nil
}

func (p *EIP1193Provider) signTransaction(ctx context.Context, from common.Address, tx *types.Transaction) (*types.Transaction, error) {
	args := signTxArgs{
		From:  from,
		To:    tx.To(),
		Gas:   hexutil.Uint64(tx.Gas()),
		Value: (*hexutil.Big)(tx.Value()),
		Nonce: hexutil.Uint64(tx.Nonce()),
		Data:  tx.Data(),
	}
	if tx.Type() == types.DynamicFeeTxType {
		args.MaxFeePerGas = (*hexutil.Big)(tx.GasFeeCap())
		args.MaxPriorityFeePerGas = (*hexutil.Big)(tx.GasTipCap())
	} else {
		args.GasPrice = (*hexutil.Big)(tx.GasPrice())
	}
	if tx.Type() != types.LegacyTxType {
		args.ChainID = (*hexutil.Big)(tx.ChainId())
	}

	var res signTxResult
	if err := p.rpc.CallContext(ctx, &res, "eth_signTransaction", args); err != nil {
		return nil, mapError("eth_signTransaction", err)
	}

	signed := new(types.Transaction)
	if err := signed.UnmarshalBinary(res.Raw); err != nil {
		return nil, fmt.Errorf("failed to decode signed transaction: %w", err)
	}
	return signed, nil
}

// Watch polls eth_accounts and eth_chainId every interval and notifies
// listeners of changes. It returns when ctx is done.
func (p *EIP1193Provider) Watch(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.pollAccounts(ctx)
			p.pollChain(ctx)
		}
	}
}

func (p *EIP1193Provider) pollAccounts(ctx context.Context) {
	var accounts []common.Address
	if err := p.rpc.CallContext(ctx, &accounts, "eth_accounts"); err != nil {
		p.logger.Warn("Failed to poll accounts", zap.Error(err))
		return
	}

	p.mu.Lock()
	changed := p.known != nil && !sameAccounts(p.known, accounts)
	p.known = accounts
	if len(accounts) > 0 {
		p.account = accounts[0]
	} else {
		p.account = common.Address{}
	}
	p.mu.Unlock()

	if changed {
		p.accounts.emit(accounts)
	}
}

func (p *EIP1193Provider) pollChain(ctx context.Context) {
	p.mu.Lock()
	last := p.chainID
	p.mu.Unlock()

	id, err := p.ChainID(ctx)
	if err != nil {
		p.logger.Warn("Failed to poll chain id", zap.Error(err))
		return
	}
	if last != 0 && id != last {
		p.chains.emit(id)
	}
}

func errorCode(err error) int {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return rpcErr.ErrorCode()
	}
	return 0
}

func mapError(method string, err error) error {
	var rpcErr rpc.Error
	if !errors.As(err, &rpcErr) {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%s: %w", method, err)
		}
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, method, err)
	}

	switch rpcErr.ErrorCode() {
	case CodeUserRejected:
		return fmt.Errorf("%w: %s", ErrUserRejected, rpcErr.Error())
	case CodeUnauthorized, CodeDisconnected, CodeChainDisconnected:
		return fmt.Errorf("%w: %s", ErrUnavailable, rpcErr.Error())
	default:
		return fmt.Errorf("%s: %w", method, err)
	}
}
