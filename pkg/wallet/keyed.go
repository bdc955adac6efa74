package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// ChainBackend is the subset of an RPC connection the keyed provider needs.
type ChainBackend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	Close()
}

// Dialer opens a ChainBackend for an RPC URL.
type Dialer func(ctx context.Context, rawURL string) (ChainBackend, error)

// DialEthClient dials rawURL with ethclient.
func DialEthClient(ctx context.Context, rawURL string) (ChainBackend, error) {
	return ethclient.DialContext(ctx, rawURL)
}

// KeyedProvider is a wallet backed by a local secp256k1 key. Switching
// networks re-dials the RPC endpoint named by the descriptor.
type KeyedProvider struct {
	key     *ecdsa.PrivateKey
	address common.Address
	dial    Dialer
	logger  *zap.Logger

	mu      sync.Mutex
	rpcURL  string
	backend ChainBackend
	chainID uint64

	accounts listeners[[]common.Address]
	chains   listeners[uint64]
}

var _ Provider = (*KeyedProvider)(nil)

// NewKeyedProvider loads hexKey and targets rpcURL. The connection is opened
// on first use.
func NewKeyedProvider(hexKey, rpcURL string, opts ...Option) (*KeyedProvider, error) {
	s := applyOptions(opts)

	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to load private key: %w", err)
	}
	if rpcURL == "" {
		return nil, fmt.Errorf("rpc url is required")
	}

	return &KeyedProvider{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		dial:    s.dialer,
		logger:  s.logger,
		rpcURL:  rpcURL,
	}, nil
}

// Address returns the account controlled by the key.
func (p *KeyedProvider) Address() common.Address {
	return p.address
}

func (p *KeyedProvider) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	if _, err := p.connection(ctx); err != nil {
		return nil, err
	}
	return []common.Address{p.address}, nil
}

func (p *KeyedProvider) ChainID(ctx context.Context) (uint64, error) {
	backend, err := p.connection(ctx)
	if err != nil {
		return 0, err
	}
	id, err := backend.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: chain id: %v", ErrUnavailable, err)
	}

	p.mu.Lock()
	p.chainID = id.Uint64()
	p.mu.Unlock()

	return id.Uint64(), nil
}

func (p *KeyedProvider) SwitchOrAddChain(ctx context.Context, n Network) error {
	current, err := p.ChainID(ctx)
	if err == nil && current == n.ChainID {
		return nil
	}

	p.logger.Info("Switching network",
		zap.Uint64("from_chain_id", current),
		zap.Uint64("to_chain_id", n.ChainID),
		zap.String("network", n.Name))

	backend, err := p.dial(ctx, n.RPCURL)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %v", ErrUnavailable, n.Name, err)
	}
	id, err := backend.ChainID(ctx)
	if err != nil {
		backend.Close()
		return fmt.Errorf("%w: chain id: %v", ErrUnavailable, err)
	}
	if id.Uint64() != n.ChainID {
		backend.Close()
		return fmt.Errorf("%w: endpoint for %s reports chain %d, expected %d",
			ErrWrongNetwork, n.Name, id.Uint64(), n.ChainID)
	}

	p.mu.Lock()
	old := p.backend
	p.backend = backend
	p.rpcURL = n.RPCURL
	p.chainID = n.ChainID
	p.mu.Unlock()

	if old != nil {
		old.Close()
	}
	p.chains.emit(n.ChainID)
	return nil
}

func (p *KeyedProvider) OnAccountsChanged(fn func([]common.Address)) func() {
	return p.accounts.add(fn)
}

func (p *KeyedProvider) OnChainChanged(fn func(uint64)) func() {
	return p.chains.add(fn)
}

func (p *KeyedProvider) Balance(ctx context.Context, addr common.Address) (*big.Int, error) {
	backend, err := p.connection(ctx)
	if err != nil {
		return nil, err
	}
	bal, err := backend.BalanceAt(ctx, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return bal, nil
}

func (p *KeyedProvider) Transactor(ctx context.Context) (*bind.TransactOpts, error) {
	chainID, err := p.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	auth, err := bind.NewKeyedTransactorWithChainID(p.key, new(big.Int).SetUint64(chainID))
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	auth.Context = ctx
	return auth, nil
}

// Watch polls the endpoint's chain id every interval and notifies chain
// listeners when it changes. It returns when ctx is done.
func (p *KeyedProvider) Watch(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.mu.Lock()
			last := p.chainID
			p.mu.Unlock()

			id, err := p.ChainID(ctx)
			if err != nil {
				p.logger.Warn("Failed to poll chain id", zap.Error(err))
				continue
			}
			if last != 0 && id != last {
				p.logger.Info("Chain changed", zap.Uint64("from", last), zap.Uint64("to", id))
				p.chains.emit(id)
			}
		}
	}
}

// Close releases the RPC connection.
func (p *KeyedProvider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.backend != nil {
		p.backend.Close()
		p.backend = nil
	}
}

func (p *KeyedProvider) connection(ctx context.Context) (ChainBackend, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.backend != nil {
		return p.backend, nil
	}
	backend, err := p.dial(ctx, p.rpcURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	p.backend = backend
	return backend, nil
}
