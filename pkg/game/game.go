// Package game holds the domain model of the jackpot guessing game: sessions,
// commitments, snapshots of on-chain state and the pure pricing/hashing rules
// the client must reproduce bit-for-bit.
package game

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Session is the connected wallet state. A nil *Session means disconnected.
type Session struct {
	Address     common.Address `json:"address"`
	ChainID     uint64         `json:"chain_id"`
	IsConnected bool           `json:"is_connected"`
	ConnectedAt time.Time      `json:"connected_at"`
}

// Amount carries a value in the contract base unit together with its
// display representation for a known decimal exponent.
type Amount struct {
	Base     *big.Int        `json:"base"`
	Display  decimal.Decimal `json:"display"`
	Decimals uint8           `json:"decimals"`
}

// NewAmount converts base units into an Amount using decimals.
func NewAmount(base *big.Int, decimals uint8) Amount {
	if base == nil {
		base = new(big.Int)
	}
	return Amount{
		Base:     new(big.Int).Set(base),
		Display:  ToDisplay(base, decimals),
		Decimals: decimals,
	}
}

// Split is the percentage split of every guess payment.
type Split struct {
	Burn      uint64 `json:"burn"`
	Jackpot   uint64 `json:"jackpot"`
	Next      uint64 `json:"next"`
	Marketing uint64 `json:"marketing"`
}

// Total returns the sum of the four shares.
func (s Split) Total() uint64 {
	return s.Burn + s.Jackpot + s.Next + s.Marketing
}

// Snapshot is the locally cached view of on-chain game state. It is always
// published whole: a failed refresh never replaces it.
type Snapshot struct {
	TotalGuesses      *big.Int  `json:"total_guesses"`
	PlayerGuessCount  *big.Int  `json:"player_guess_count"`
	JackpotAmount     Amount    `json:"jackpot_amount"`
	NextJackpotAmount Amount    `json:"next_jackpot_amount"`
	GuessCost         Amount    `json:"guess_cost"`
	HintCost          Amount    `json:"hint_cost"`
	TokenBalance      Amount    `json:"token_balance"`
	Split             Split     `json:"split"`
	Paused            bool      `json:"paused"`
	RefreshedAt       time.Time `json:"refreshed_at"`
}

// Receipt is the mined result of a state-changing call.
type Receipt struct {
	TxHash      common.Hash `json:"tx_hash"`
	BlockNumber uint64      `json:"block_number"`
	GasUsed     uint64      `json:"gas_used"`
}

// RevealOutcome is what the game contract reported for a reveal transaction.
type RevealOutcome struct {
	Receipt
	Won     bool     `json:"won"`
	Amount  *big.Int `json:"amount,omitempty"`
	Decoded bool     `json:"-"`
}

// HintReceipt is the mined result of a hint request. Index is nil when the
// transaction logs carry no hint index.
type HintReceipt struct {
	Receipt
	Index *big.Int `json:"index,omitempty"`
}

// CommitResult is reported after a guess commitment has been mined.
type CommitResult struct {
	Receipt
	CommitmentHash common.Hash `json:"commitment_hash"`
	Message        string      `json:"message"`
}

// RevealResult is reported after a reveal transaction has been mined.
// Undetermined is set when the receipt carried no outcome event; Won is then
// meaningless and the refreshed snapshot is the only source of truth.
type RevealResult struct {
	Receipt
	Won           bool      `json:"won"`
	Undetermined  bool      `json:"undetermined,omitempty"`
	Amount        *big.Int  `json:"amount,omitempty"`
	Message       string    `json:"message"`
	HintAvailable bool      `json:"hint_available"`
	HintMessage   string    `json:"hint_message,omitempty"`
	Snapshot      *Snapshot `json:"snapshot,omitempty"`
}

// HintResult is reported after a hint purchase has been mined.
type HintResult struct {
	Receipt
	Index *big.Int `json:"index,omitempty"`
	Hint  string   `json:"hint,omitempty"`
}

// Quote is the exact cost of buying Amount game tokens at the current curve position.
type Quote struct {
	Amount      Amount   `json:"amount"`
	TotalBought *big.Int `json:"total_bought"`
	StartPrice  *big.Int `json:"start_price"`
	EndPrice    *big.Int `json:"end_price"`
	Cost        Amount   `json:"cost"`
}

// TradeResult is reported after a buy or sell has been mined.
type TradeResult struct {
	Receipt
	Amount Amount  `json:"amount"`
	Cost   *Amount `json:"cost,omitempty"`
}
