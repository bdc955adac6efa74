package service

import (
	"context"
	"errors"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/jackpot-middleware/pkg/game"
	"github.com/chainsafe/jackpot-middleware/pkg/wallet"
)

var (
	playerAddr = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	otherAddr  = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	tokenAddr  = common.HexToAddress("0x0000000000000000000000000000000000000c01")
	gameAddr   = common.HexToAddress("0x0000000000000000000000000000000000000c02")
	curveAddr  = common.HexToAddress("0x0000000000000000000000000000000000000c03")

	testNetwork = wallet.Network{
		ChainID: 146,
		Name:    "Sonic",
		RPCURL:  "https://rpc.soniclabs.com",
		NativeCurrency: wallet.NativeCurrency{
			Name:     "Sonic",
			Symbol:   "S",
			Decimals: 18,
		},
	}
)

// sentTx is one state-changing call observed by the fake chain.
type sentTx struct {
	Method string
	To     common.Address
	Args   []any
	Value  *big.Int
}

// fakeChain is an in-memory model of the three contracts. All sends are
// made by the wallet's current account and recorded in order.
type fakeChain struct {
	mu sync.Mutex

	sender common.Address
	block  uint64

	balances   map[common.Address]*big.Int
	allowances map[[2]common.Address]*big.Int

	paused        bool
	guessCost     *big.Int
	hintCost      *big.Int
	totalGuesses  *big.Int
	jackpot       *big.Int
	nextJackpot   *big.Int
	hintCounter   *big.Int
	playerGuesses map[common.Address]*big.Int
	split         game.Split
	commits       map[common.Address]common.Hash
	winningGuess  string
	// receipts carry no reveal outcome event
	hideOutcome bool

	initialPrice  *big.Int
	priceIncrease *big.Int
	totalBought   *big.Int

	readErrs map[string]error
	sendErrs map[string]error
	sent     []sentTx
}

func newFakeChain() *fakeChain {
	return &fakeChain{
		sender: playerAddr,
		block:  100,
		balances: map[common.Address]*big.Int{
			playerAddr: big.NewInt(100_000),
			curveAddr:  big.NewInt(1_000_000_000),
		},
		allowances:    map[[2]common.Address]*big.Int{},
		guessCost:     big.NewInt(5000),
		hintCost:      big.NewInt(2000),
		totalGuesses:  big.NewInt(41),
		jackpot:       new(big.Int).Mul(big.NewInt(12), big.NewInt(1e18)),
		nextJackpot:   new(big.Int).Mul(big.NewInt(3), big.NewInt(1e18)),
		hintCounter:   big.NewInt(3),
		playerGuesses: map[common.Address]*big.Int{},
		split:         game.Split{Burn: 10, Jackpot: 60, Next: 20, Marketing: 10},
		commits:       map[common.Address]common.Hash{},
		winningGuess:  "mango",
		initialPrice:  big.NewInt(1000),
		priceIncrease: big.NewInt(10),
		totalBought:   big.NewInt(0),
		readErrs:      map[string]error{},
		sendErrs:      map[string]error{},
	}
}

func bal(m map[common.Address]*big.Int, a common.Address) *big.Int {
	if v, ok := m[a]; ok {
		return v
	}
	return new(big.Int)
}

func (c *fakeChain) allowance(owner, spender common.Address) *big.Int {
	if v, ok := c.allowances[[2]common.Address{owner, spender}]; ok {
		return v
	}
	return new(big.Int)
}

func (c *fakeChain) setAllowance(owner, spender common.Address, v *big.Int) {
	c.allowances[[2]common.Address{owner, spender}] = new(big.Int).Set(v)
}

func (c *fakeChain) read(field string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readErrs[field]
}

// send records a call and mines it. Must be called with mu held.
func (c *fakeChain) send(method string, to common.Address, value *big.Int, args ...any) (*game.Receipt, error) {
	if err := c.sendErrs[method]; err != nil {
		return nil, err
	}
	c.block++
	c.sent = append(c.sent, sentTx{Method: method, To: to, Args: args, Value: value})
	return &game.Receipt{
		TxHash:      common.BigToHash(big.NewInt(int64(len(c.sent)))),
		BlockNumber: c.block,
		GasUsed:     21000,
	}, nil
}

func (c *fakeChain) revert(op, reason string) error {
	return &game.RevertError{Op: op, Reason: reason}
}

// spend moves amount from the sender to spender's custody using the allowance.
func (c *fakeChain) spend(op string, spender common.Address, amount *big.Int) error {
	if c.allowance(c.sender, spender).Cmp(amount) < 0 {
		return c.revert(op, "ERC20: insufficient allowance")
	}
	if bal(c.balances, c.sender).Cmp(amount) < 0 {
		return c.revert(op, "ERC20: transfer amount exceeds balance")
	}
	c.setAllowance(c.sender, spender, new(big.Int).Sub(c.allowance(c.sender, spender), amount))
	c.balances[c.sender] = new(big.Int).Sub(bal(c.balances, c.sender), amount)
	c.balances[spender] = new(big.Int).Add(bal(c.balances, spender), amount)
	return nil
}

func (c *fakeChain) sentMethods() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.sent))
	for _, tx := range c.sent {
		out = append(out, tx.Method)
	}
	return out
}

func (c *fakeChain) lastSent() sentTx {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sent[len(c.sent)-1]
}

func (c *fakeChain) sentAt(i int) sentTx {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sent[i]
}

// fakeLedger is the game token.
type fakeLedger struct{ c *fakeChain }

func (l *fakeLedger) Address() common.Address { return tokenAddr }
func (l *fakeLedger) Decimals() uint8         { return 6 }

func (l *fakeLedger) BalanceOf(_ context.Context, owner common.Address) (*big.Int, error) {
	if err := l.c.read("balance"); err != nil {
		return nil, err
	}
	l.c.mu.Lock()
	defer l.c.mu.Unlock()
	return new(big.Int).Set(bal(l.c.balances, owner)), nil
}

func (l *fakeLedger) Allowance(_ context.Context, owner, spender common.Address) (*big.Int, error) {
	if err := l.c.read("allowance"); err != nil {
		return nil, err
	}
	l.c.mu.Lock()
	defer l.c.mu.Unlock()
	return new(big.Int).Set(l.c.allowance(owner, spender)), nil
}

func (l *fakeLedger) Approve(_ context.Context, spender common.Address, amount *big.Int) (*game.Receipt, error) {
	l.c.mu.Lock()
	defer l.c.mu.Unlock()
	r, err := l.c.send("approve", tokenAddr, nil, spender, new(big.Int).Set(amount))
	if err != nil {
		return nil, err
	}
	l.c.setAllowance(l.c.sender, spender, amount)
	return r, nil
}

// fakeGame is the jackpot game.
type fakeGame struct{ c *fakeChain }

func (g *fakeGame) Address() common.Address { return gameAddr }

func (g *fakeGame) view(field string, fn func() *big.Int) (*big.Int, error) {
	if err := g.c.read(field); err != nil {
		return nil, err
	}
	g.c.mu.Lock()
	defer g.c.mu.Unlock()
	return new(big.Int).Set(fn()), nil
}

func (g *fakeGame) TotalGuesses(context.Context) (*big.Int, error) {
	return g.view("total_guesses", func() *big.Int { return g.c.totalGuesses })
}

func (g *fakeGame) JackpotAmount(context.Context) (*big.Int, error) {
	return g.view("jackpot_amount", func() *big.Int { return g.c.jackpot })
}

func (g *fakeGame) NextJackpotAmount(context.Context) (*big.Int, error) {
	return g.view("next_jackpot_amount", func() *big.Int { return g.c.nextJackpot })
}

func (g *fakeGame) PlayerGuesses(_ context.Context, player common.Address) (*big.Int, error) {
	return g.view("player_guesses", func() *big.Int { return bal(g.c.playerGuesses, player) })
}

func (g *fakeGame) GuessCost(context.Context) (*big.Int, error) {
	return g.view("guess_cost", func() *big.Int { return g.c.guessCost })
}

func (g *fakeGame) HintCost(context.Context) (*big.Int, error) {
	return g.view("hint_cost", func() *big.Int { return g.c.hintCost })
}

func (g *fakeGame) HintCount(context.Context, common.Address) (*big.Int, error) {
	return g.view("hint_count", func() *big.Int { return g.c.hintCounter })
}

func (g *fakeGame) GetSplit(context.Context) (game.Split, error) {
	if err := g.c.read("split"); err != nil {
		return game.Split{}, err
	}
	g.c.mu.Lock()
	defer g.c.mu.Unlock()
	return g.c.split, nil
}

func (g *fakeGame) Paused(context.Context) (bool, error) {
	if err := g.c.read("paused"); err != nil {
		return false, err
	}
	g.c.mu.Lock()
	defer g.c.mu.Unlock()
	return g.c.paused, nil
}

func (g *fakeGame) CommitGuess(_ context.Context, hash common.Hash) (*game.Receipt, error) {
	c := g.c
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.paused {
		return nil, c.revert("commit_guess", "Pausable: paused")
	}
	if err := c.spend("commit_guess", gameAddr, c.guessCost); err != nil {
		return nil, err
	}
	r, err := c.send("commitGuess", gameAddr, nil, hash)
	if err != nil {
		return nil, err
	}
	c.commits[c.sender] = hash
	c.totalGuesses = new(big.Int).Add(c.totalGuesses, big.NewInt(1))
	c.playerGuesses[c.sender] = new(big.Int).Add(bal(c.playerGuesses, c.sender), big.NewInt(1))
	return r, nil
}

func (g *fakeGame) RevealGuess(_ context.Context, plaintext string, nonce [game.NonceSize]byte) (*game.RevealOutcome, error) {
	c := g.c
	c.mu.Lock()
	defer c.mu.Unlock()

	hash, ok := c.commits[c.sender]
	if !ok {
		return nil, c.revert("reveal_guess", "NoCommitment()")
	}
	if game.CommitmentHash(plaintext, nonce) != hash {
		return nil, c.revert("reveal_guess", "InvalidReveal()")
	}
	r, err := c.send("revealGuess", gameAddr, nil, plaintext, nonce)
	if err != nil {
		return nil, err
	}
	delete(c.commits, c.sender)

	out := &game.RevealOutcome{Receipt: *r, Decoded: true}
	if plaintext == c.winningGuess {
		out.Won = true
		out.Amount = new(big.Int).Set(c.jackpot)
		c.jackpot = new(big.Int).Set(c.nextJackpot)
		c.nextJackpot = new(big.Int)
	}
	if c.hideOutcome {
		out.Decoded = false
		out.Won = false
		out.Amount = nil
	}
	return out, nil
}

func (g *fakeGame) RequestHint(context.Context) (*game.HintReceipt, error) {
	c := g.c
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.spend("request_hint", gameAddr, c.hintCost); err != nil {
		return nil, err
	}
	r, err := c.send("requestHint", gameAddr, nil)
	if err != nil {
		return nil, err
	}
	return &game.HintReceipt{Receipt: *r, Index: new(big.Int).Sub(c.hintCounter, big.NewInt(1))}, nil
}

// fakeCurve is the bonding curve.
type fakeCurve struct{ c *fakeChain }

func (f *fakeCurve) Address() common.Address { return curveAddr }

func (f *fakeCurve) InitialPrice(context.Context) (*big.Int, error) {
	return (&fakeGame{f.c}).view("initial_price", func() *big.Int { return f.c.initialPrice })
}

func (f *fakeCurve) PriceIncrease(context.Context) (*big.Int, error) {
	return (&fakeGame{f.c}).view("price_increase", func() *big.Int { return f.c.priceIncrease })
}

func (f *fakeCurve) TotalBought(context.Context) (*big.Int, error) {
	return (&fakeGame{f.c}).view("total_bought", func() *big.Int { return f.c.totalBought })
}

func (f *fakeCurve) Buy(_ context.Context, amount, value *big.Int) (*game.Receipt, error) {
	c := f.c
	c.mu.Lock()
	defer c.mu.Unlock()

	if bal(c.balances, curveAddr).Cmp(amount) < 0 {
		return nil, c.revert("buy", "InsufficientSupply()")
	}
	r, err := c.send("buy", curveAddr, new(big.Int).Set(value), new(big.Int).Set(amount))
	if err != nil {
		return nil, err
	}
	c.balances[curveAddr] = new(big.Int).Sub(bal(c.balances, curveAddr), amount)
	c.balances[c.sender] = new(big.Int).Add(bal(c.balances, c.sender), amount)
	c.totalBought = new(big.Int).Add(c.totalBought, amount)
	return r, nil
}

func (f *fakeCurve) Sell(_ context.Context, amount *big.Int) (*game.Receipt, error) {
	c := f.c
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.spend("sell", curveAddr, amount); err != nil {
		return nil, err
	}
	return c.send("sell", curveAddr, nil, new(big.Int).Set(amount))
}

// fakeWallet is a scripted wallet. Listener callbacks are captured so tests
// can fire them synchronously.
type fakeWallet struct {
	mu sync.Mutex

	chain    *fakeChain
	accounts []common.Address
	chainID  uint64
	native   *big.Int

	requestErr error
	switchErr  error
	// switchTo is the chain the wallet lands on after a switch; 0 means the
	// requested chain.
	switchTo uint64
	switches int

	accountFns []func([]common.Address)
	chainFns   []func(uint64)
}

func newFakeWallet(chain *fakeChain) *fakeWallet {
	return &fakeWallet{
		chain:    chain,
		accounts: []common.Address{playerAddr},
		chainID:  testNetwork.ChainID,
		native:   new(big.Int).Mul(big.NewInt(5), big.NewInt(1e18)),
	}
}

func (w *fakeWallet) RequestAccounts(context.Context) ([]common.Address, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.requestErr != nil {
		return nil, w.requestErr
	}
	return append([]common.Address(nil), w.accounts...), nil
}

func (w *fakeWallet) ChainID(context.Context) (uint64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.chainID, nil
}

func (w *fakeWallet) SwitchOrAddChain(_ context.Context, n wallet.Network) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.switches++
	if w.switchErr != nil {
		return w.switchErr
	}
	if w.switchTo != 0 {
		w.chainID = w.switchTo
		return nil
	}
	w.chainID = n.ChainID
	return nil
}

func (w *fakeWallet) OnAccountsChanged(fn func([]common.Address)) func() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.accountFns = append(w.accountFns, fn)
	return func() {}
}

func (w *fakeWallet) OnChainChanged(fn func(uint64)) func() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.chainFns = append(w.chainFns, fn)
	return func() {}
}

func (w *fakeWallet) Balance(context.Context, common.Address) (*big.Int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return new(big.Int).Set(w.native), nil
}

func (w *fakeWallet) Transactor(context.Context) (*bind.TransactOpts, error) {
	return nil, errors.New("fake wallet does not sign")
}

// switchAccount makes addr the wallet's primary account and the chain's sender.
func (w *fakeWallet) switchAccount(addr common.Address) {
	w.mu.Lock()
	w.accounts = []common.Address{addr}
	w.mu.Unlock()

	w.chain.mu.Lock()
	w.chain.sender = addr
	w.chain.mu.Unlock()
}

// failingReader reports an exhausted entropy source.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy source unavailable")
}
