// Package types defines the value types of an Injective account: the
// 32-byte Keccak digest, the 20-byte address payload and its bech32 form.
package types

import "encoding/hex"

// HashSize is the length of a hash in bytes.
const HashSize = 32

// Hash represents a 256-bit Keccak digest.
type Hash [HashSize]byte

// String returns the hex-encoded hash.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Tail returns the trailing AddressSize bytes of the hash as an Address.
func (h Hash) Tail() Address {
	var a Address
	copy(a[:], h[HashSize-AddressSize:])
	return a
}
