// Package wallet generates single Injective accounts and renders their
// export document. It holds no state between requests: every call draws
// fresh entropy and returns a self-contained Record.
package wallet

import (
	"fmt"
	"io"
	"time"

	"github.com/Klingon-tech/injwallet/internal/log"
	"github.com/Klingon-tech/injwallet/pkg/crypto"
	"github.com/Klingon-tech/injwallet/pkg/types"
)

// Record is a generated account. Field names match the JSON contract the
// desktop and browser frontends consume.
type Record struct {
	Address    string `json:"address"`
	PrivateKey string `json:"private_key"`
}

// Clock returns the current local time.
type Clock func() time.Time

// Generator creates wallets from an injected entropy source and clock.
// It is safe for concurrent use when the entropy source is.
type Generator struct {
	rand    io.Reader
	timeout time.Duration
	now     Clock
}

// Option configures a Generator.
type Option func(*Generator)

// WithRandom sets the entropy source. It must be a CSPRNG; tests may pass a
// fixed byte stream.
func WithRandom(r io.Reader) Option {
	return func(g *Generator) { g.rand = r }
}

// WithEntropyTimeout bounds each read from the entropy source.
func WithEntropyTimeout(d time.Duration) Option {
	return func(g *Generator) { g.timeout = d }
}

// WithClock sets the time source used for export timestamps.
func WithClock(c Clock) Option {
	return func(g *Generator) { g.now = c }
}

// NewGenerator returns a Generator using the system CSPRNG and clock unless
// overridden.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rand:    crypto.SystemRandom,
		timeout: crypto.DefaultEntropyTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateWallet creates a new account. On error no partial record is
// returned.
func (g *Generator) GenerateWallet() (*Record, error) {
	defer log.Benchmark("generate_wallet")()

	key, err := crypto.GenerateKey(g.rand, g.timeout)
	if err != nil {
		log.Wallet.Error().Err(err).Msg("Wallet generation failed")
		return nil, err
	}
	defer key.Zero()

	rec, err := recordFor(key)
	if err != nil {
		return nil, err
	}
	log.Wallet.Debug().Str("address", rec.Address).Msg("Wallet generated")
	return rec, nil
}

// FromPrivateKey rebuilds the record for an existing hex secret key
// ("0x" prefix optional).
func (g *Generator) FromPrivateKey(privateKeyHex string) (*Record, error) {
	key, err := crypto.PrivateKeyFromHex(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	defer key.Zero()
	return recordFor(key)
}

// ExportText renders rec as an export document stamped with the
// generator's clock.
func (g *Generator) ExportText(rec Record) string {
	return FormatExport(rec.Address, rec.PrivateKey, g.now())
}

// Verify checks that the record's address is the bech32 address its
// private key derives to. The 0x hex form is rejected so that export
// documents always carry the inj1 address.
func (r Record) Verify() error {
	key, err := crypto.PrivateKeyFromHex(r.PrivateKey)
	if err != nil {
		return fmt.Errorf("parse private key: %w", err)
	}
	defer key.Zero()

	addr, err := types.ParseBech32Address(r.Address)
	if err != nil {
		return fmt.Errorf("parse address: %w", err)
	}
	if derived := key.Address(); derived != addr {
		return fmt.Errorf("address %s does not match private key (derives %s)", r.Address, derived)
	}
	return nil
}

func recordFor(key *crypto.PrivateKey) (*Record, error) {
	addr := key.Address()
	encoded, err := types.EncodeAddress(types.InjectiveHRP, addr[:])
	if err != nil {
		// Unreachable for a 20-byte payload; treat as a bug.
		return nil, fmt.Errorf("encode address: %w", err)
	}
	return &Record{Address: encoded, PrivateKey: key.Hex()}, nil
}
