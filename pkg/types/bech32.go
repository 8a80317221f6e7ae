package types

import (
	"errors"
	"fmt"
	"strings"
)

// Bech32 charset used for encoding (BIP-173).
const bech32Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// bech32Const is the classic bech32 checksum constant. Injective addresses
// are bech32, never bech32m (0x2bc830a3).
const bech32Const = 1

// Bech32MaxLength is the longest string BIP-173 allows.
const Bech32MaxLength = 90

// bech32ChecksumLen is the number of checksum characters.
const bech32ChecksumLen = 6

// Sentinel errors - decoding
var (
	ErrBech32TooLong          = errors.New("bech32: string too long")
	ErrBech32MixedCase        = errors.New("bech32: mixed case")
	ErrBech32InvalidChar      = errors.New("bech32: invalid character")
	ErrBech32ChecksumMismatch = errors.New("bech32: checksum mismatch")
	ErrBech32InvalidFormat    = errors.New("bech32: invalid format")
	ErrBech32InvalidPadding   = errors.New("bech32: non-zero padding")
)

// ErrBech32Encoding is returned when a well-formed input cannot be encoded.
// It indicates a bug, not bad user input.
var ErrBech32Encoding = errors.New("bech32: encoding failure")

// bech32CharsetRev maps bech32 characters to their 5-bit values. -1 = invalid.
var bech32CharsetRev [128]int8

func init() {
	for i := range bech32CharsetRev {
		bech32CharsetRev[i] = -1
	}
	for i, c := range bech32Charset {
		bech32CharsetRev[c] = int8(i)
	}
}

// Bech32Error describes a decode failure. Kind is one of the ErrBech32*
// sentinels, so callers match with errors.Is.
type Bech32Error struct {
	Kind error
	Pos  int  // offending position, -1 when not applicable
	Char rune // offending character, 0 when not applicable
}

// Error implements the error interface.
func (e *Bech32Error) Error() string {
	if e.Char != 0 {
		return fmt.Sprintf("%v %q at position %d", e.Kind, e.Char, e.Pos)
	}
	if e.Pos >= 0 {
		return fmt.Sprintf("%v (position %d)", e.Kind, e.Pos)
	}
	return e.Kind.Error()
}

// Unwrap returns the error kind.
func (e *Bech32Error) Unwrap() error {
	return e.Kind
}

func bech32Err(kind error) error {
	return &Bech32Error{Kind: kind, Pos: -1}
}

// Bech32Encode encodes a human-readable part and data bytes into a bech32 string.
func Bech32Encode(hrp string, data []byte) (string, error) {
	if len(hrp) == 0 {
		return "", fmt.Errorf("%w: empty HRP", ErrBech32Encoding)
	}
	for _, c := range hrp {
		if c < 33 || c > 126 {
			return "", fmt.Errorf("%w: invalid HRP character %q", ErrBech32Encoding, c)
		}
		if c >= 'A' && c <= 'Z' {
			return "", fmt.Errorf("%w: HRP must be lowercase", ErrBech32Encoding)
		}
	}

	// Convert 8-bit data to 5-bit groups.
	conv, err := convertBits(data, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("%w: convert bits: %v", ErrBech32Encoding, err)
	}

	total := len(hrp) + 1 + len(conv) + bech32ChecksumLen
	if total > Bech32MaxLength {
		return "", fmt.Errorf("%w: result would be %d characters (max %d)", ErrBech32Encoding, total, Bech32MaxLength)
	}

	chk := bech32CreateChecksum(hrp, conv)

	// Build result: hrp + "1" + data + checksum
	var sb strings.Builder
	sb.Grow(total)
	sb.WriteString(hrp)
	sb.WriteByte('1')
	for _, b := range conv {
		sb.WriteByte(bech32Charset[b])
	}
	for _, b := range chk {
		sb.WriteByte(bech32Charset[b])
	}
	return sb.String(), nil
}

// Bech32Decode decodes a bech32 string into the human-readable part and data bytes.
// The returned HRP is always lowercase. Errors are *Bech32Error values.
func Bech32Decode(s string) (string, []byte, error) {
	if len(s) > Bech32MaxLength {
		return "", nil, &Bech32Error{Kind: ErrBech32TooLong, Pos: Bech32MaxLength}
	}
	if len(s) == 0 {
		return "", nil, bech32Err(ErrBech32InvalidFormat)
	}

	hasUpper := false
	hasLower := false
	for i, c := range s {
		if c < 33 || c > 126 {
			return "", nil, &Bech32Error{Kind: ErrBech32InvalidChar, Pos: i, Char: c}
		}
		if c >= 'A' && c <= 'Z' {
			hasUpper = true
		}
		if c >= 'a' && c <= 'z' {
			hasLower = true
		}
	}
	if hasUpper && hasLower {
		return "", nil, bech32Err(ErrBech32MixedCase)
	}

	// Work in lowercase.
	s = strings.ToLower(s)

	// The separator is the last '1'; the HRP itself may contain '1'.
	sepIdx := strings.LastIndexByte(s, '1')
	if sepIdx < 1 {
		return "", nil, &Bech32Error{Kind: ErrBech32InvalidFormat, Pos: sepIdx}
	}
	if sepIdx+1+bech32ChecksumLen > len(s) {
		return "", nil, &Bech32Error{Kind: ErrBech32InvalidFormat, Pos: sepIdx}
	}

	hrp := s[:sepIdx]
	dataStr := s[sepIdx+1:]

	data5 := make([]byte, len(dataStr))
	for i := 0; i < len(dataStr); i++ {
		c := dataStr[i]
		val := bech32CharsetRev[c]
		if val < 0 {
			return "", nil, &Bech32Error{Kind: ErrBech32InvalidChar, Pos: sepIdx + 1 + i, Char: rune(c)}
		}
		data5[i] = byte(val)
	}

	if !bech32VerifyChecksum(hrp, data5) {
		return "", nil, bech32Err(ErrBech32ChecksumMismatch)
	}

	// Strip checksum from data.
	data5 = data5[:len(data5)-bech32ChecksumLen]

	data8, err := convertBits(data5, 5, 8, false)
	if err != nil {
		return "", nil, bech32Err(ErrBech32InvalidPadding)
	}

	return hrp, data8, nil
}

// bech32Polymod computes the bech32 polynomial modulus.
func bech32Polymod(values []byte) uint32 {
	gen := [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}
	chk := uint32(1)
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (top>>uint(i))&1 == 1 {
				chk ^= gen[i]
			}
		}
	}
	return chk
}

// bech32HRPExpand expands the HRP for checksum computation.
func bech32HRPExpand(hrp string) []byte {
	ret := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		ret = append(ret, hrp[i]>>5)
	}
	ret = append(ret, 0)
	for i := 0; i < len(hrp); i++ {
		ret = append(ret, hrp[i]&31)
	}
	return ret
}

// bech32CreateChecksum creates a 6-value checksum for the given HRP and data.
func bech32CreateChecksum(hrp string, data []byte) []byte {
	values := append(bech32HRPExpand(hrp), data...)
	values = append(values, 0, 0, 0, 0, 0, 0)
	polymod := bech32Polymod(values) ^ bech32Const
	ret := make([]byte, bech32ChecksumLen)
	for i := 0; i < bech32ChecksumLen; i++ {
		ret[i] = byte((polymod >> uint(5*(5-i))) & 31)
	}
	return ret
}

// bech32VerifyChecksum verifies the checksum of the given HRP and data (including checksum).
func bech32VerifyChecksum(hrp string, data []byte) bool {
	return bech32Polymod(append(bech32HRPExpand(hrp), data...)) == bech32Const
}

// convertBits converts between bit groups.
// fromBits/toBits are the source/destination group sizes (e.g. 8 and 5).
// pad controls whether incomplete groups are zero-padded.
func convertBits(data []byte, fromBits, toBits uint, pad bool) ([]byte, error) {
	acc := uint32(0)
	bits := uint(0)
	maxv := uint32((1 << toBits) - 1)
	ret := make([]byte, 0, (len(data)*int(fromBits)+int(toBits)-1)/int(toBits))

	for _, b := range data {
		if uint32(b)>>fromBits != 0 {
			return nil, fmt.Errorf("invalid data byte: %d", b)
		}
		acc = acc<<fromBits | uint32(b)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			ret = append(ret, byte((acc>>bits)&maxv))
		}
	}

	if pad {
		if bits > 0 {
			ret = append(ret, byte((acc<<(toBits-bits))&maxv))
		}
	} else {
		if bits >= fromBits {
			return nil, fmt.Errorf("non-zero padding")
		}
		if (acc<<(toBits-bits))&maxv != 0 {
			return nil, fmt.Errorf("non-zero padding")
		}
	}

	return ret, nil
}
