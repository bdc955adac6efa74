package wallet

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	mu      sync.Mutex
	chainID uint64
	balance *big.Int
	closed  bool
}

func (b *fakeBackend) ChainID(context.Context) (*big.Int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return new(big.Int).SetUint64(b.chainID), nil
}

func (b *fakeBackend) BalanceAt(context.Context, common.Address, *big.Int) (*big.Int, error) {
	return b.balance, nil
}

func (b *fakeBackend) Close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
}

func (b *fakeBackend) setChain(id uint64) {
	b.mu.Lock()
	b.chainID = id
	b.mu.Unlock()
}

func fakeDialer(backends map[string]*fakeBackend) Dialer {
	return func(_ context.Context, rawURL string) (ChainBackend, error) {
		b, ok := backends[rawURL]
		if !ok {
			return nil, fmt.Errorf("dial %s: connection refused", rawURL)
		}
		return b, nil
	}
}

func newTestKey(t *testing.T) (string, common.Address) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return hexutil.Encode(crypto.FromECDSA(key)), crypto.PubkeyToAddress(key.PublicKey)
}

func TestNewKeyedProvider_InvalidKey(t *testing.T) {
	_, err := NewKeyedProvider("not-a-key", "http://localhost:8545")
	assert.Error(t, err)
}

func TestKeyedProvider_RequestAccounts(t *testing.T) {
	hexKey, addr := newTestKey(t)
	local := &fakeBackend{chainID: 1, balance: big.NewInt(42)}

	p, err := NewKeyedProvider(hexKey, "local", WithDialer(fakeDialer(map[string]*fakeBackend{"local": local})))
	require.NoError(t, err)

	accounts, err := p.RequestAccounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []common.Address{addr}, accounts)

	bal, err := p.Balance(context.Background(), addr)
	require.NoError(t, err)
	assert.Equal(t, "42", bal.String())
}

func TestKeyedProvider_Unreachable(t *testing.T) {
	hexKey, _ := newTestKey(t)

	p, err := NewKeyedProvider(hexKey, "down", WithDialer(fakeDialer(nil)))
	require.NoError(t, err)

	_, err = p.RequestAccounts(context.Background())
	assert.True(t, errors.Is(err, ErrUnavailable), "got %v", err)
}

func TestKeyedProvider_SwitchOrAddChain(t *testing.T) {
	hexKey, _ := newTestKey(t)
	local := &fakeBackend{chainID: 1}
	sonicRPC := &fakeBackend{chainID: 146}

	p, err := NewKeyedProvider(hexKey, "local", WithDialer(fakeDialer(map[string]*fakeBackend{
		"local":      local,
		sonic.RPCURL: sonicRPC,
	})))
	require.NoError(t, err)

	changed := make(chan uint64, 1)
	p.OnChainChanged(func(id uint64) { changed <- id })

	require.NoError(t, p.SwitchOrAddChain(context.Background(), sonic))

	select {
	case id := <-changed:
		assert.Equal(t, uint64(146), id)
	case <-time.After(time.Second):
		t.Fatal("chain change not emitted")
	}
	assert.True(t, local.closed)

	id, err := p.ChainID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(146), id)

	opts, err := p.Transactor(context.Background())
	require.NoError(t, err)
	assert.Equal(t, p.Address(), opts.From)
}

func TestKeyedProvider_SwitchOrAddChain_AlreadyOnChain(t *testing.T) {
	hexKey, _ := newTestKey(t)
	local := &fakeBackend{chainID: 146}

	p, err := NewKeyedProvider(hexKey, "local", WithDialer(fakeDialer(map[string]*fakeBackend{"local": local})))
	require.NoError(t, err)

	require.NoError(t, p.SwitchOrAddChain(context.Background(), sonic))
	assert.False(t, local.closed)
}

func TestKeyedProvider_SwitchOrAddChain_WrongEndpoint(t *testing.T) {
	hexKey, _ := newTestKey(t)
	local := &fakeBackend{chainID: 1}
	mislabelled := &fakeBackend{chainID: 5}

	p, err := NewKeyedProvider(hexKey, "local", WithDialer(fakeDialer(map[string]*fakeBackend{
		"local":      local,
		sonic.RPCURL: mislabelled,
	})))
	require.NoError(t, err)

	err = p.SwitchOrAddChain(context.Background(), sonic)
	assert.True(t, errors.Is(err, ErrWrongNetwork), "got %v", err)
	assert.True(t, mislabelled.closed)
	assert.False(t, local.closed)
}

func TestKeyedProvider_WatchDetectsChainChange(t *testing.T) {
	hexKey, _ := newTestKey(t)
	local := &fakeBackend{chainID: 146}

	p, err := NewKeyedProvider(hexKey, "local", WithDialer(fakeDialer(map[string]*fakeBackend{"local": local})))
	require.NoError(t, err)
	_, err = p.ChainID(context.Background())
	require.NoError(t, err)

	changed := make(chan uint64, 1)
	unsubscribe := p.OnChainChanged(func(id uint64) { changed <- id })
	defer unsubscribe()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Watch(ctx, 10*time.Millisecond) }()

	local.setChain(250)

	select {
	case id := <-changed:
		assert.Equal(t, uint64(250), id)
	case <-time.After(2 * time.Second):
		t.Fatal("chain change not observed")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
