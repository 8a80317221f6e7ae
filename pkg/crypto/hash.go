// Package crypto provides the key and hash primitives behind Injective
// account derivation: secp256k1 keys and Keccak-256.
package crypto

import (
	"fmt"

	"github.com/Klingon-tech/injwallet/pkg/types"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/sha3"
)

// Public key encodings (SEC1).
const (
	UncompressedPubKeySize = 65
	CompressedPubKeySize   = 33

	uncompressedTag = 0x04
)

// Keccak256 computes the legacy Keccak-256 digest (the Ethereum hash, with
// the pre-standard 0x01 padding; NIST SHA3-256 gives different output).
func Keccak256(data ...[]byte) types.Hash {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	var out types.Hash
	h.Sum(out[:0])
	return out
}

// AddressFromPubKey derives an address from a SEC1 public key.
// Address = Keccak256(X || Y)[12:], where X || Y is the uncompressed key
// without its 0x04 tag. Compressed keys are decompressed first.
func AddressFromPubKey(pubKey []byte) (types.Address, error) {
	switch len(pubKey) {
	case UncompressedPubKeySize:
		if pubKey[0] != uncompressedTag {
			return types.Address{}, fmt.Errorf("uncompressed public key must start with 0x04, got 0x%02x", pubKey[0])
		}
	case CompressedPubKeySize:
	default:
		return types.Address{}, fmt.Errorf("public key must be %d or %d bytes, got %d",
			UncompressedPubKeySize, CompressedPubKeySize, len(pubKey))
	}

	pk, err := secp256k1.ParsePubKey(pubKey)
	if err != nil {
		return types.Address{}, fmt.Errorf("parse public key: %w", err)
	}
	return addressFromPoint(pk.SerializeUncompressed()), nil
}

// addressFromPoint hashes an already validated uncompressed public key.
func addressFromPoint(uncompressed []byte) types.Address {
	return Keccak256(uncompressed[1:]).Tail()
}
