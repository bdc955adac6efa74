package game

import (
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// NonceSize is the commitment nonce length in bytes (256 bits).
const NonceSize = 32

// Commitment is a committed, not yet revealed guess. It lives only in memory;
// losing it between commit and reveal forfeits the guess.
type Commitment struct {
	Player      common.Address
	Plaintext   string
	Nonce       [NonceSize]byte
	Hash        common.Hash
	TxHash      common.Hash
	BlockNumber uint64
	SubmittedAt time.Time
}

// CommitmentHash returns keccak256(utf8(plaintext) ‖ nonce), the value the
// game contract recomputes on reveal.
func CommitmentHash(plaintext string, nonce [NonceSize]byte) common.Hash {
	return crypto.Keccak256Hash([]byte(plaintext), nonce[:])
}

// NewCommitment draws a fresh nonce from rnd and hashes plaintext with it.
// rnd must be a cryptographically secure source; there is no fallback.
func NewCommitment(player common.Address, plaintext string, rnd io.Reader) (*Commitment, error) {
	if plaintext == "" {
		return nil, fmt.Errorf("%w: guess must not be empty", ErrInvalidGuess)
	}
	if rnd == nil {
		return nil, ErrRandomnessUnavailable
	}

	var nonce [NonceSize]byte
	if _, err := io.ReadFull(rnd, nonce[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomnessUnavailable, err)
	}

	return &Commitment{
		Player:    player,
		Plaintext: plaintext,
		Nonce:     nonce,
		Hash:      CommitmentHash(plaintext, nonce),
	}, nil
}

// Verify reports whether the retained plaintext and nonce still produce Hash.
func (c *Commitment) Verify() bool {
	return CommitmentHash(c.Plaintext, c.Nonce) == c.Hash
}

// PendingCommitment is the public view of a commitment; it never exposes
// the plaintext or nonce.
type PendingCommitment struct {
	Player      common.Address `json:"player"`
	Hash        common.Hash    `json:"commitment_hash"`
	TxHash      common.Hash    `json:"tx_hash"`
	BlockNumber uint64         `json:"block_number"`
	SubmittedAt time.Time      `json:"submitted_at"`
}

// Public returns the redacted view of c.
func (c *Commitment) Public() *PendingCommitment {
	return &PendingCommitment{
		Player:      c.Player,
		Hash:        c.Hash,
		TxHash:      c.TxHash,
		BlockNumber: c.BlockNumber,
		SubmittedAt: c.SubmittedAt,
	}
}

// HintMessage describes hint availability for a published hint counter.
func HintMessage(counter *big.Int) string {
	if counter == nil || counter.Sign() <= 0 {
		return "No hints available yet."
	}
	latest := new(big.Int).Sub(counter, big.NewInt(1))
	return fmt.Sprintf("Hint #%s available.", latest.String())
}
