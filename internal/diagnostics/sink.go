// Package diagnostics provides the fire-and-forget reporting channel the
// rendering engine uses for non-fatal structural and accessibility
// warnings. A lost message degrades observability, never correctness.
package diagnostics

import (
	"sync"

	"github.com/alexisbeaulieu97/segmented/internal/logger"
)

// Sink receives diagnostic messages. Implementations must not block.
type Sink interface {
	Report(msg string)
}

// SinkFunc adapts a plain function into a Sink.
type SinkFunc func(msg string)

// Report invokes the wrapped function.
func (f SinkFunc) Report(msg string) {
	if f != nil {
		f(msg)
	}
}

// Nop returns a sink that discards every message.
func Nop() Sink {
	return SinkFunc(nil)
}

// NewLoggerSink routes diagnostics to the application logger at warning
// level. A nil logger yields a discarding sink.
func NewLoggerSink(log *logger.Logger) Sink {
	return SinkFunc(func(msg string) {
		log.Warn(msg)
	})
}

// Capture is a Sink that records every message it receives. It exists for
// tests that assert on the exact diagnostic stream.
type Capture struct {
	mu       sync.Mutex
	messages []string
}

// Report appends the message to the captured stream.
func (c *Capture) Report(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msg)
}

// Messages returns a copy of everything reported so far.
func (c *Capture) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.messages))
	copy(out, c.messages)
	return out
}

// Reset clears the captured stream.
func (c *Capture) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = nil
}
