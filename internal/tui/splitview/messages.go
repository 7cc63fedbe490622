package splitview

import "time"

// clickTimeoutMsg fires once the double click window of a pending click has
// passed.
type clickTimeoutMsg struct {
	At time.Time
}
