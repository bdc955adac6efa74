// Package wallet is the boundary to whatever holds the player's key: a local
// keyed signer or a remote EIP-1193 wallet reachable over JSON-RPC.
package wallet

import (
	"context"
	"errors"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var (
	// ErrUnavailable indicates no wallet could be reached.
	ErrUnavailable = errors.New("wallet unavailable")
	// ErrUserRejected indicates the wallet holder declined the request.
	ErrUserRejected = errors.New("request rejected by user")
	// ErrWrongNetwork indicates the wallet is not on the configured chain.
	ErrWrongNetwork = errors.New("wallet connected to wrong network")
)

// NativeCurrency describes the chain's gas token.
type NativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

// Network is the descriptor handed to the wallet when switching or adding a chain.
type Network struct {
	ChainID        uint64         `json:"chain_id"`
	Name           string         `json:"name"`
	RPCURL         string         `json:"rpc_url"`
	NativeCurrency NativeCurrency `json:"native_currency"`
	ExplorerURL    string         `json:"explorer_url,omitempty"`
}

// Provider is the wallet surface used by the game flows.
type Provider interface {
	// RequestAccounts asks the wallet for access and returns the exposed accounts.
	RequestAccounts(ctx context.Context) ([]common.Address, error)

	// ChainID returns the chain the wallet is currently on.
	ChainID(ctx context.Context) (uint64, error)

	// SwitchOrAddChain moves the wallet to n, adding it first if unknown.
	SwitchOrAddChain(ctx context.Context, n Network) error

	// OnAccountsChanged registers fn and returns a function removing it.
	OnAccountsChanged(fn func([]common.Address)) func()

	// OnChainChanged registers fn and returns a function removing it.
	OnChainChanged(fn func(uint64)) func()

	// Balance returns the native balance of addr in base units.
	Balance(ctx context.Context, addr common.Address) (*big.Int, error)

	// Transactor returns signing options bound to the active account.
	Transactor(ctx context.Context) (*bind.TransactOpts, error)
}

type settings struct {
	logger *zap.Logger
	dialer Dialer
}

// Option configures a provider.
type Option func(*settings)

// WithLogger sets a custom logger for the provider.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithDialer replaces the RPC dialer used by KeyedProvider.
func WithDialer(d Dialer) Option {
	return func(s *settings) { s.dialer = d }
}

func applyOptions(opts []Option) settings {
	s := settings{logger: zap.NewNop(), dialer: DialEthClient}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// listeners fans events out to registered callbacks. Callbacks run on their
// own goroutine so a handler may call back into the provider.
type listeners[T any] struct {
	mu   sync.Mutex
	next int
	fns  map[int]func(T)
}

func (l *listeners[T]) add(fn func(T)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fns == nil {
		l.fns = make(map[int]func(T))
	}
	id := l.next
	l.next++
	l.fns[id] = fn

	return func() {
		l.mu.Lock()
		delete(l.fns, id)
		l.mu.Unlock()
	}
}

func (l *listeners[T]) emit(v T) {
	l.mu.Lock()
	fns := make([]func(T), 0, len(l.fns))
	for _, fn := range l.fns {
		fns = append(fns, fn)
	}
	l.mu.Unlock()

	for _, fn := range fns {
		go fn(v)
	}
}

func sameAccounts(a, b []common.Address) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
