package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/jackpot-middleware/pkg/config"
	"github.com/chainsafe/jackpot-middleware/pkg/ethereum/contracts"
)

// rpcRevertError mimics the JSON-RPC error returned for a reverted call.
type rpcRevertError struct {
	data string
}

func (e *rpcRevertError) Error() string          { return "execution reverted" }
func (e *rpcRevertError) ErrorCode() int         { return 3 }
func (e *rpcRevertError) ErrorData() interface{} { return e.data }

// fakeBackend is an in-memory bind.ContractBackend. View calls are answered
// by selector, sent transactions are mined through mine.
type fakeBackend struct {
	mu sync.Mutex

	calls       map[[4]byte]func(data []byte) ([]byte, error)
	estimateErr error
	sendErr     error
	gasPrice    *big.Int
	mine        func(tx *types.Transaction) *types.Receipt

	nonce    uint64
	sent     []*types.Transaction
	receipts map[common.Hash]*types.Receipt
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		calls:    make(map[[4]byte]func([]byte) ([]byte, error)),
		gasPrice: big.NewInt(1_000_000_000),
		receipts: make(map[common.Hash]*types.Receipt),
	}
}

func (b *fakeBackend) onCall(method abi.Method, fn func(data []byte) ([]byte, error)) {
	var id [4]byte
	copy(id[:], method.ID)
	b.calls[id] = fn
}

func (b *fakeBackend) returns(t *testing.T, method abi.Method, values ...interface{}) {
	t.Helper()
	out, err := method.Outputs.Pack(values...)
	require.NoError(t, err)
	b.onCall(method, func([]byte) ([]byte, error) { return out, nil })
}

func (b *fakeBackend) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return []byte{0x60}, nil
}

func (b *fakeBackend) CallContract(_ context.Context, call ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(call.Data) < 4 {
		return nil, fmt.Errorf("short call data")
	}
	var id [4]byte
	copy(id[:], call.Data[:4])
	fn, ok := b.calls[id]
	if !ok {
		return nil, fmt.Errorf("unexpected call %x", id)
	}
	return fn(call.Data)
}

func (b *fakeBackend) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	return &types.Header{Number: big.NewInt(100)}, nil
}

func (b *fakeBackend) PendingCodeAt(context.Context, common.Address) ([]byte, error) {
	return []byte{0x60}, nil
}

func (b *fakeBackend) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.nonce, nil
}

func (b *fakeBackend) SuggestGasPrice(context.Context) (*big.Int, error) {
	return new(big.Int).Set(b.gasPrice), nil
}

func (b *fakeBackend) SuggestGasTipCap(context.Context) (*big.Int, error) {
	return big.NewInt(1), nil
}

func (b *fakeBackend) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	if b.estimateErr != nil {
		return 0, b.estimateErr
	}
	return 100_000, nil
}

func (b *fakeBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.sendErr != nil {
		return b.sendErr
	}
	b.nonce++
	b.sent = append(b.sent, tx)

	receipt := &types.Receipt{Status: types.ReceiptStatusSuccessful}
	if b.mine != nil {
		receipt = b.mine(tx)
	}
	receipt.TxHash = tx.Hash()
	receipt.BlockNumber = big.NewInt(101)
	if receipt.GasUsed == 0 {
		receipt.GasUsed = 50_000
	}
	b.receipts[tx.Hash()] = receipt
	return nil
}

func (b *fakeBackend) FilterLogs(context.Context, ethereum.FilterQuery) ([]types.Log, error) {
	return nil, nil
}

func (b *fakeBackend) SubscribeFilterLogs(context.Context, ethereum.FilterQuery, chan<- types.Log) (ethereum.Subscription, error) {
	return nil, fmt.Errorf("subscriptions not supported")
}

func (b *fakeBackend) TransactionReceipt(_ context.Context, hash common.Hash) (*types.Receipt, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	r, ok := b.receipts[hash]
	if !ok {
		return nil, ethereum.NotFound
	}
	return r, nil
}

func (b *fakeBackend) ChainID(context.Context) (*big.Int, error) {
	return big.NewInt(146), nil
}

func (b *fakeBackend) Close() {}

func (b *fakeBackend) lastSent(t *testing.T) *types.Transaction {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	require.NotEmpty(t, b.sent)
	return b.sent[len(b.sent)-1]
}

// keySigner signs with a local key.
type keySigner struct {
	key *ecdsa.PrivateKey
}

func (s *keySigner) Transactor(context.Context) (*bind.TransactOpts, error) {
	return bind.NewKeyedTransactorWithChainID(s.key, big.NewInt(146))
}

func (s *keySigner) address() common.Address {
	return crypto.PubkeyToAddress(s.key.PublicKey)
}

func newTestClient(t *testing.T, cfg *config.EthereumConfig) (*Client, *fakeBackend, *keySigner) {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	backend := newFakeBackend()
	signer := &keySigner{key: key}
	if cfg == nil {
		cfg = &config.EthereumConfig{ReceiptTimeout: 5 * time.Second}
	}
	return NewClient(backend, signer, cfg, WithReceiptPollInterval(5*time.Millisecond)), backend, signer
}

func mustABI(t *testing.T, md *bind.MetaData) *abi.ABI {
	t.Helper()
	parsed, err := md.GetAbi()
	require.NoError(t, err)
	return parsed
}

func gameABI(t *testing.T) *abi.ABI  { return mustABI(t, contracts.JackpotGameMetaData) }
func tokenABI(t *testing.T) *abi.ABI { return mustABI(t, contracts.GameTokenMetaData) }
func curveABI(t *testing.T) *abi.ABI { return mustABI(t, contracts.BondingCurveMetaData) }

// errorStringData encodes Error(string) revert data.
func errorStringData(t *testing.T, reason string) string {
	t.Helper()
	stringTy, err := abi.NewType("string", "", nil)
	require.NoError(t, err)
	packed, err := abi.Arguments{{Type: stringTy}}.Pack(reason)
	require.NoError(t, err)
	return hexutil.Encode(append(crypto.Keccak256([]byte("Error(string)"))[:4], packed...))
}

// customErrorData encodes a custom error declared in parsed.
func customErrorData(t *testing.T, parsed *abi.ABI, name string, args ...interface{}) string {
	t.Helper()
	e, ok := parsed.Errors[name]
	require.True(t, ok, "unknown error %s", name)
	packed, err := e.Inputs.Pack(args...)
	require.NoError(t, err)
	return hexutil.Encode(append(append([]byte{}, e.ID[:4]...), packed...))
}

// eventLog builds a log for event emitted by address with player as the
// indexed topic.
func eventLog(t *testing.T, parsed *abi.ABI, name string, address, player common.Address, args ...interface{}) *types.Log {
	t.Helper()
	event, ok := parsed.Events[name]
	require.True(t, ok, "unknown event %s", name)
	data, err := event.Inputs.NonIndexed().Pack(args...)
	require.NoError(t, err)
	return &types.Log{
		Address: address,
		Topics:  []common.Hash{event.ID, common.BytesToHash(player.Bytes())},
		Data:    data,
	}
}
