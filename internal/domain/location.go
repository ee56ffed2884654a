package domain

// LocationUpdate kinds as reported by the tracking client.
const (
	UpdateKindLocation   = "location"
	UpdateKindTransition = "transition"
)

// Geofence transition events.
const (
	TransitionEnter = "enter"
	TransitionLeave = "leave"
)

// LocationUpdate is a single OwnTracks-style report. Plain location updates
// carry coordinates only; geofence transitions additionally carry the event
// direction and the area description.
type LocationUpdate struct {
	Kind  string  `json:"_type" validate:"required,oneof=location transition"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Event string  `json:"event,omitempty" validate:"required_if=Kind transition,omitempty,oneof=enter leave"`
	Desc  string  `json:"desc,omitempty" validate:"required_if=Kind transition"`
}

// IsTransition reports whether the update is a geofence crossing.
func (u LocationUpdate) IsTransition() bool { return u.Kind == UpdateKindTransition }
