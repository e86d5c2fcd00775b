package skill

import "time"

// spinnerTickMsg animates the loading spinner. gen ties a tick chain to the
// Init that started it so stale chains die out.
type spinnerTickMsg struct {
	gen int
	at  time.Time
}
