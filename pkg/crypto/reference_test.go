package crypto

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/btcsuite/btcd/btcutil/bech32"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// Derivation must agree with go-ethereum's Keccak/address code and btcd's
// bech32 encoder for every sampled key.
func TestDerivation_MatchesReference(t *testing.T) {
	src := rand.NewChaCha8([32]byte{'d', 'e', 'r', 'i', 'v', 'e'})

	for i := 0; i < 1000; i++ {
		key, err := GenerateKey(src, 0)
		if err != nil {
			t.Fatalf("GenerateKey: %v", err)
		}

		ref, err := ethcrypto.ToECDSA(key.Serialize())
		if err != nil {
			t.Fatalf("reference ToECDSA: %v", err)
		}
		refPub := ethcrypto.FromECDSAPub(&ref.PublicKey)
		if !bytes.Equal(key.PublicKey(), refPub) {
			t.Fatalf("key %s: pubkey %x, reference %x", key.Hex(), key.PublicKey(), refPub)
		}

		digest := Keccak256(refPub[1:])
		if refDigest := ethcrypto.Keccak256(refPub[1:]); !bytes.Equal(digest[:], refDigest) {
			t.Fatalf("key %s: keccak %x, reference %x", key.Hex(), digest, refDigest)
		}

		addr := key.Address()
		refAddr := ethcrypto.PubkeyToAddress(ref.PublicKey)
		if !bytes.Equal(addr[:], refAddr[:]) {
			t.Fatalf("key %s: payload %x, reference %x", key.Hex(), addr, refAddr)
		}

		conv, err := bech32.ConvertBits(refAddr[:], 8, 5, true)
		if err != nil {
			t.Fatalf("reference ConvertBits: %v", err)
		}
		want, err := bech32.Encode("inj", conv)
		if err != nil {
			t.Fatalf("reference Encode: %v", err)
		}
		if got := addr.String(); got != want {
			t.Fatalf("key %s: address %s, reference %s", key.Hex(), got, want)
		}

		// Same key, same address.
		again, err := PrivateKeyFromBytes(key.Serialize())
		if err != nil {
			t.Fatalf("PrivateKeyFromBytes: %v", err)
		}
		if again.Address() != addr {
			t.Fatalf("key %s: derivation not deterministic", key.Hex())
		}
	}
}

func TestAddress_EthHexMatchesReference(t *testing.T) {
	key, err := GenerateKey(rand.NewChaCha8([32]byte{'e', 'i', 'p', '5', '5'}), 0)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	ref, err := ethcrypto.ToECDSA(key.Serialize())
	if err != nil {
		t.Fatalf("reference ToECDSA: %v", err)
	}
	want := ethcrypto.PubkeyToAddress(ref.PublicKey).Hex()
	if got := key.Address().EthHex(); got != want {
		t.Errorf("EthHex() = %s, reference %s", got, want)
	}
}
