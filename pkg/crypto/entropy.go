package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"time"
)

// DefaultEntropyTimeout bounds a single read from the entropy source.
const DefaultEntropyTimeout = 5 * time.Second

// Sentinel errors - entropy
var (
	ErrEntropyUnavailable = errors.New("entropy source unavailable")
	ErrEntropyTimeout     = errors.New("entropy source stalled")
)

// SystemRandom is the operating system CSPRNG. On js/wasm it is backed by
// crypto.getRandomValues.
var SystemRandom io.Reader = rand.Reader

// readEntropy fills buf from src. A failing, short or stalled source is
// reported as ErrEntropyUnavailable; there is no fallback source.
// A timeout <= 0 waits indefinitely.
func readEntropy(src io.Reader, buf []byte, timeout time.Duration) error {
	if src == nil {
		return fmt.Errorf("%w: no source configured", ErrEntropyUnavailable)
	}
	if timeout <= 0 {
		if _, err := io.ReadFull(src, buf); err != nil {
			return fmt.Errorf("%w: %w", ErrEntropyUnavailable, err)
		}
		return nil
	}

	// The read goes to a private buffer so a stalled reader that wakes up
	// later can never write into buf after we return.
	tmp := make([]byte, len(buf))
	done := make(chan error, 1)
	go func() {
		_, err := io.ReadFull(src, tmp)
		done <- err
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil {
			clear(tmp)
			return fmt.Errorf("%w: %w", ErrEntropyUnavailable, err)
		}
		copy(buf, tmp)
		clear(tmp)
		return nil
	case <-timer.C:
		return fmt.Errorf("%w: %w after %s", ErrEntropyUnavailable, ErrEntropyTimeout, timeout)
	}
}
