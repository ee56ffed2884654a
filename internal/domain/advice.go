package domain

// Advice is the outcome of evaluating a geofence "enter" against the
// arrival-notification rules. Recomputed on every enter; never stored.
type Advice struct {
	ShouldNotify bool
	Message      string
}
