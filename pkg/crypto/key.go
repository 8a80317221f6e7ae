package crypto

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Klingon-tech/injwallet/pkg/types"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// PrivateKeySize is the length of a serialized secret scalar.
const PrivateKeySize = 32

// MaxKeyDraws caps how many out-of-range scalars GenerateKey tolerates
// before declaring the entropy source broken. An honest source produces an
// invalid scalar with probability ~2^-128 per draw.
const MaxKeyDraws = 16

// ErrInvalidScalar means 32 bytes are zero or not below the curve order.
var ErrInvalidScalar = errors.New("invalid secp256k1 scalar")

// PrivateKey wraps a secp256k1 secret scalar in [1, n).
type PrivateKey struct {
	key *secp256k1.PrivateKey
}

// GenerateKey draws a uniformly random secret key from src, re-drawing when
// the bytes are not a valid scalar. Each draw waits at most timeout.
func GenerateKey(src io.Reader, timeout time.Duration) (*PrivateKey, error) {
	var buf [PrivateKeySize]byte
	defer clear(buf[:])

	for i := 0; i < MaxKeyDraws; i++ {
		if err := readEntropy(src, buf[:], timeout); err != nil {
			return nil, fmt.Errorf("generate key: %w", err)
		}
		key, err := PrivateKeyFromBytes(buf[:])
		if errors.Is(err, ErrInvalidScalar) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("generate key: %w", err)
		}
		return key, nil
	}
	return nil, fmt.Errorf("generate key: %w: %d consecutive draws were %w",
		ErrEntropyUnavailable, MaxKeyDraws, ErrInvalidScalar)
}

// PrivateKeyFromBytes creates a PrivateKey from a 32-byte big-endian scalar.
// Zero and values >= the curve order fail with ErrInvalidScalar.
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != PrivateKeySize {
		return nil, fmt.Errorf("private key must be %d bytes, got %d", PrivateKeySize, len(b))
	}
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(b); overflow || s.IsZero() {
		s.Zero()
		return nil, ErrInvalidScalar
	}
	return &PrivateKey{key: secp256k1.NewPrivateKey(&s)}, nil
}

// PrivateKeyFromHex parses a 64-digit hex scalar, with or without 0x prefix.
func PrivateKeyFromHex(s string) (*PrivateKey, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) != 2*PrivateKeySize {
		return nil, fmt.Errorf("private key must be %d hex digits, got %d", 2*PrivateKeySize, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid private key hex: %w", err)
	}
	defer clear(b)
	return PrivateKeyFromBytes(b)
}

// PublicKey returns the uncompressed 65-byte public key (0x04 || X || Y).
func (pk *PrivateKey) PublicKey() []byte {
	return pk.key.PubKey().SerializeUncompressed()
}

// Address derives the account payload: Keccak256(X || Y)[12:].
func (pk *PrivateKey) Address() types.Address {
	return addressFromPoint(pk.PublicKey())
}

// Serialize returns the 32-byte private key scalar.
func (pk *PrivateKey) Serialize() []byte {
	return pk.key.Serialize()
}

// Hex returns the scalar as "0x" followed by 64 lowercase hex digits.
func (pk *PrivateKey) Hex() string {
	b := pk.key.Serialize()
	defer clear(b)
	return "0x" + hex.EncodeToString(b)
}

// Zero securely zeroes the private key memory.
func (pk *PrivateKey) Zero() {
	pk.key.Zero()
}
