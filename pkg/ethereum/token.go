package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/chainsafe/jackpot-middleware/pkg/ethereum/contracts"
	"github.com/chainsafe/jackpot-middleware/pkg/game"
)

// TokenLedger is the ERC-20 game token.
type TokenLedger struct {
	client   *Client
	address  common.Address
	token    *contracts.GameToken
	abi      *abi.ABI
	decimals uint8
}

// NewTokenLedger binds the game token at address. decimals is the display
// exponent of the token.
func NewTokenLedger(c *Client, address common.Address, decimals uint8) (*TokenLedger, error) {
	token, err := contracts.NewGameToken(address, c.backend)
	if err != nil {
		return nil, fmt.Errorf("failed to load game token contract: %w", err)
	}
	parsed, err := contracts.GameTokenMetaData.GetAbi()
	if err != nil {
		return nil, fmt.Errorf("failed to parse game token abi: %w", err)
	}
	return &TokenLedger{
		client:   c,
		address:  address,
		token:    token,
		abi:      parsed,
		decimals: decimals,
	}, nil
}

// Address returns the token contract address.
func (t *TokenLedger) Address() common.Address { return t.address }

// Decimals returns the configured display exponent.
func (t *TokenLedger) Decimals() uint8 { return t.decimals }

// BalanceOf returns the token balance of owner in base units.
func (t *TokenLedger) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	opts, cancel := t.client.callOpts(ctx)
	defer cancel()
	return t.token.BalanceOf(opts, owner)
}

// Allowance returns how much spender may still transfer from owner.
func (t *TokenLedger) Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error) {
	opts, cancel := t.client.callOpts(ctx)
	defer cancel()
	return t.token.Allowance(opts, owner, spender)
}

// Approve sets the allowance of spender to amount and waits for the
// approval to be mined.
func (t *TokenLedger) Approve(ctx context.Context, spender common.Address, amount *big.Int) (*game.Receipt, error) {
	t.client.logger.Info("Approving spender",
		zap.String("token", t.address.Hex()),
		zap.String("spender", spender.Hex()),
		zap.String("amount", amount.String()))

	receipt, err := t.client.transact(ctx, "approve", []*abi.ABI{t.abi},
		func(opts *bind.TransactOpts) (*types.Transaction, error) {
			return t.token.Approve(opts, spender, amount)
		})
	if err != nil {
		return nil, err
	}
	r := toReceipt(receipt)
	return &r, nil
}
