package cart

// LineState tracks the optimistic-update lifecycle of one cart line.
// A quantity change moves the line Clean → Pending, then either Confirmed
// on server acknowledgement or RolledBack after the authoritative re-fetch
// that discards the optimistic patch.
type LineState string

const (
	StateClean      LineState = "clean"
	StatePending    LineState = "pending"
	StateConfirmed  LineState = "confirmed"
	StateRolledBack LineState = "rolled_back"
)
