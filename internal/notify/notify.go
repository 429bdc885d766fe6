// Package notify implements the single-slot toast channel. At most one
// message is ever visible; each Show supersedes the previous message and
// restarts the expiry timer.
package notify

import (
	"sync"
	"time"
)

// DefaultTTL is how long a message stays visible.
const DefaultTTL = 3 * time.Second

// Notifier is the transient message slot.
type Notifier struct {
	mu       sync.Mutex
	msg      string
	timer    *time.Timer
	ttl      time.Duration
	onChange func(string)
}

// New returns a Notifier with the default 3-second expiry.
func New() *Notifier {
	return NewWithTTL(DefaultTTL)
}

// NewWithTTL returns a Notifier with a custom expiry, used by tests.
func NewWithTTL(ttl time.Duration) *Notifier {
	return &Notifier{ttl: ttl}
}

// OnChange registers a callback invoked with the new message on every Show
// and with "" when the message expires. Used by the TUI to repaint.
func (n *Notifier) OnChange(fn func(msg string)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onChange = fn
}

// Show replaces the current message and resets the expiry timer.
func (n *Notifier) Show(msg string) {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.msg = msg
	n.timer = time.AfterFunc(n.ttl, n.expire)
	fn := n.onChange
	n.mu.Unlock()

	if fn != nil {
		fn(msg)
	}
}

// Current returns the visible message, if any.
func (n *Notifier) Current() (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.msg, n.msg != ""
}

func (n *Notifier) expire() {
	n.mu.Lock()
	n.msg = ""
	fn := n.onChange
	n.mu.Unlock()

	if fn != nil {
		fn("")
	}
}
