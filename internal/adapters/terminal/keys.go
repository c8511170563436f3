package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/xvierd/pomodoro-cli/internal/ports"
)

// KeyReader reads runes from r on a helper goroutine so callers can wait for
// a key with a timeout. After EOF it only ever times out.
type KeyReader struct {
	r    io.Reader
	once sync.Once
	keys chan rune
	errs chan error
}

// NewKeyReader creates a key reader over r. Nothing is read until the first
// ReadKey call.
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{
		r:    r,
		keys: make(chan rune, 16),
		errs: make(chan error, 1),
	}
}

func (k *KeyReader) loop() {
	br := bufio.NewReader(k.r)
	for {
		key, _, err := br.ReadRune()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				k.errs <- err
			}
			close(k.keys)
			return
		}
		k.keys <- key
	}
}

// ReadKey waits up to timeout for a key press.
func (k *KeyReader) ReadKey(ctx context.Context, timeout time.Duration) (rune, bool, error) {
	k.once.Do(func() { go k.loop() })

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return 0, false, ctx.Err()
		case err := <-k.errs:
			return 0, false, fmt.Errorf("read key: %w", err)
		case key, ok := <-k.keys:
			if !ok {
				k.keys = nil
				continue
			}
			return key, true, nil
		case <-timer.C:
			return 0, false, nil
		}
	}
}

var _ ports.KeySource = (*KeyReader)(nil)
