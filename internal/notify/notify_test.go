package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_ShowAndCurrent(t *testing.T) {
	n := New()

	_, ok := n.Current()
	assert.False(t, ok)

	n.Show("Pengumuman ditambah")
	msg, ok := n.Current()
	require.True(t, ok)
	assert.Equal(t, "Pengumuman ditambah", msg)
}

func TestNotifier_ShowSupersedesPrevious(t *testing.T) {
	n := New()
	n.Show("pertama")
	n.Show("kedua")

	msg, ok := n.Current()
	require.True(t, ok)
	assert.Equal(t, "kedua", msg)
}

func TestNotifier_MessageExpires(t *testing.T) {
	n := NewWithTTL(20 * time.Millisecond)
	n.Show("sekejap sahaja")

	assert.Eventually(t, func() bool {
		_, ok := n.Current()
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestNotifier_ShowResetsExpiry(t *testing.T) {
	n := NewWithTTL(60 * time.Millisecond)
	n.Show("pertama")
	time.Sleep(40 * time.Millisecond)
	n.Show("kedua")
	time.Sleep(40 * time.Millisecond)

	// The second Show restarted the timer, so the message is still visible.
	msg, ok := n.Current()
	require.True(t, ok)
	assert.Equal(t, "kedua", msg)
}

func TestNotifier_OnChangeFiresForShowAndExpiry(t *testing.T) {
	n := NewWithTTL(20 * time.Millisecond)

	events := make(chan string, 4)
	n.OnChange(func(msg string) { events <- msg })

	n.Show("hello")
	assert.Equal(t, "hello", <-events)

	select {
	case msg := <-events:
		assert.Equal(t, "", msg)
	case <-time.After(time.Second):
		t.Fatal("expected expiry callback")
	}
}
