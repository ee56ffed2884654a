package domain

import "errors"

// ErrUpstream marks a failed call to an external collaborator (LINE API,
// geocoder, Discord). Components that must not propagate failures log it
// and move on; the webhook batch path is the one place it surfaces.
var ErrUpstream = errors.New("upstream call failed")
