package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// debounceMsg carries a scheduled value back into Update once the quiet
// period has elapsed.
type debounceMsg struct {
	seq   uint64
	value string
}

// Debouncer defers a value until input has been quiet for delay. Only the
// most recently scheduled value is ever accepted: each Schedule or Cancel
// bumps a sequence number that invalidates ticks already in flight.
//
// It lives inside the Bubble Tea model and is only touched from Update, so it
// needs no locking.
type Debouncer struct {
	delay time.Duration
	seq   uint64
}

// NewDebouncer returns a debouncer with the given quiet period.
func NewDebouncer(delay time.Duration) Debouncer {
	return Debouncer{delay: delay}
}

// Schedule replaces any pending value with value and returns the tick
// command that will deliver it.
func (d *Debouncer) Schedule(value string) tea.Cmd {
	d.seq++
	seq := d.seq
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq, value: value}
	})
}

// Cancel drops the pending value, if any.
func (d *Debouncer) Cancel() {
	d.seq++
}

// Accept reports whether msg is the latest scheduled value and returns it.
// Stale or cancelled messages are rejected.
func (d *Debouncer) Accept(msg debounceMsg) (string, bool) {
	if msg.seq != d.seq {
		return "", false
	}
	// A delivered value is consumed; a duplicate delivery must not re-fire.
	d.seq++
	return msg.value, true
}
