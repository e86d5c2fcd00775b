// Package effects tracks the short-lived reward markers shown after a
// quest task is completed.
package effects

import (
	"slices"
	"time"

	"github.com/oklog/ulid/v2"
)

// DefaultLifetime is how long a marker stays on screen.
const DefaultLifetime = 1200 * time.Millisecond

// RewardLabel is the text of a task completion marker.
const RewardLabel = "+5 XP"

// Marker is one floating reward label.
type Marker struct {
	ID      ulid.ULID
	Label   string
	Born    time.Time
	Expires time.Time
}

// Tracker holds live markers. It is not safe for concurrent use; the TUI
// touches it only from its update loop.
type Tracker struct {
	lifetime time.Duration
	markers  []Marker
}

// NewTracker creates a tracker. A non-positive lifetime uses DefaultLifetime.
func NewTracker(lifetime time.Duration) *Tracker {
	if lifetime <= 0 {
		lifetime = DefaultLifetime
	}
	return &Tracker{lifetime: lifetime}
}

// Lifetime returns the marker lifetime.
func (t *Tracker) Lifetime() time.Duration {
	return t.lifetime
}

// Spawn adds a reward marker born at now.
func (t *Tracker) Spawn(now time.Time) Marker {
	m := Marker{
		ID:      ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()),
		Label:   RewardLabel,
		Born:    now,
		Expires: now.Add(t.lifetime),
	}
	t.markers = append(t.markers, m)
	return m
}

// Expire removes the marker with id. Unknown ids are ignored.
func (t *Tracker) Expire(id ulid.ULID) {
	t.markers = slices.DeleteFunc(t.markers, func(m Marker) bool { return m.ID == id })
}

// Sweep drops every marker that has expired by now.
func (t *Tracker) Sweep(now time.Time) {
	t.markers = slices.DeleteFunc(t.markers, func(m Marker) bool { return !now.Before(m.Expires) })
}

// Active returns the markers still live at now, oldest first.
func (t *Tracker) Active(now time.Time) []Marker {
	var out []Marker
	for _, m := range t.markers {
		if now.Before(m.Expires) {
			out = append(out, m)
		}
	}
	return out
}

// Shaking reports whether the screen should shake at now.
func (t *Tracker) Shaking(now time.Time) bool {
	return len(t.Active(now)) > 0
}

// Progress returns how far m is through its lifetime, in [0,1].
func (m Marker) Progress(now time.Time) float64 {
	total := m.Expires.Sub(m.Born)
	if total <= 0 {
		return 1
	}
	p := float64(now.Sub(m.Born)) / float64(total)
	return min(max(p, 0), 1)
}
