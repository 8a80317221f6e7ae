package types

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// AddressSize is the length of an address payload in bytes.
const AddressSize = 20

// InjectiveHRP is the bech32 human-readable part of Injective account addresses.
const InjectiveHRP = "inj"

// Sentinel errors - addresses
var (
	ErrInvalidPayloadLength = errors.New("address payload must be 20 bytes")
	ErrWrongHRP             = errors.New("address has wrong human-readable part")
	ErrEmptyAddress         = errors.New("empty address")
	ErrNotBech32            = errors.New("address is not in bech32 form")
)

// Address is the 20-byte account payload: the last 20 bytes of the
// Keccak-256 digest of an uncompressed public key.
type Address [AddressSize]byte

// IsZero returns true if the address is all zeros.
func (a Address) IsZero() bool {
	return a == Address{}
}

// String returns the bech32-encoded address (e.g. "inj1...").
func (a Address) String() string {
	s, err := Bech32Encode(InjectiveHRP, a[:])
	if err != nil {
		// A 20-byte payload under a fixed HRP always encodes.
		panic(fmt.Sprintf("types: encode address: %v", err))
	}
	return s
}

// Hex returns the raw hex-encoded address without prefix.
func (a Address) Hex() string {
	return hex.EncodeToString(a[:])
}

// EthHex returns the 0x-prefixed, EIP-55 mixed-case checksummed form of the
// address, which Injective also accepts for the same account.
func (a Address) EthHex() string {
	lower := a.Hex()
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	digest := h.Sum(nil)

	out := make([]byte, 2+len(lower))
	out[0], out[1] = '0', 'x'
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		nibble := digest[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if c >= 'a' && c <= 'f' && nibble&0x0f >= 8 {
			c -= 'a' - 'A'
		}
		out[2+i] = c
	}
	return string(out)
}

// Bytes returns a copy of the address as a byte slice.
func (a Address) Bytes() []byte {
	b := make([]byte, AddressSize)
	copy(b, a[:])
	return b
}

// MarshalJSON encodes the address as a bech32 string.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON decodes a bech32 or 0x-hex string into an address.
func (a *Address) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*a = Address{}
		return nil
	}
	parsed, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// EncodeAddress bech32-encodes a raw payload under hrp. The payload must be
// exactly AddressSize bytes; anything else fails before encoding.
func EncodeAddress(hrp string, payload []byte) (string, error) {
	if len(payload) != AddressSize {
		return "", fmt.Errorf("%w: got %d", ErrInvalidPayloadLength, len(payload))
	}
	return Bech32Encode(hrp, payload)
}

// ParseAddress parses an Injective address.
// Accepts: bech32 ("inj1...") or the 0x-prefixed 40-char hex form.
// Bech32 failures keep their *Bech32Error kind; a valid bech32 string for a
// different network fails with ErrWrongHRP.
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Address{}, ErrEmptyAddress
	}

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return HexToAddress(s[2:])
	}

	return parseBech32(s)
}

// ParseBech32Address parses only the canonical "inj1..." form. The 0x hex
// form fails with ErrNotBech32.
func ParseBech32Address(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Address{}, ErrEmptyAddress
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return Address{}, ErrNotBech32
	}
	return parseBech32(s)
}

func parseBech32(s string) (Address, error) {
	hrp, data, err := Bech32Decode(s)
	if err != nil {
		return Address{}, fmt.Errorf("invalid bech32 address: %w", err)
	}
	if hrp != InjectiveHRP {
		return Address{}, fmt.Errorf("%w: got %q, want %q", ErrWrongHRP, hrp, InjectiveHRP)
	}
	if len(data) != AddressSize {
		return Address{}, fmt.Errorf("%w: got %d", ErrInvalidPayloadLength, len(data))
	}
	var a Address
	copy(a[:], data)
	return a, nil
}

// HexToAddress converts a raw hex string to an Address.
// Returns an error if the string is not exactly 40 hex characters.
// For user-facing input that may have a prefix, use ParseAddress instead.
func HexToAddress(s string) (Address, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Address{}, fmt.Errorf("invalid hex: %w", err)
	}
	if len(b) != AddressSize {
		return Address{}, fmt.Errorf("%w: got %d", ErrInvalidPayloadLength, len(b))
	}
	var a Address
	copy(a[:], b)
	return a, nil
}
