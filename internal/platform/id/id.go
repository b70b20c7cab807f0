package id

import "github.com/google/uuid"

// Generator creates opaque identifiers.
type Generator interface {
	New() string
}

// UUID yields random (v4) identifiers. Used to tag each invocation's log
// records; store records use integer identities.
type UUID struct{}

func (UUID) New() string {
	return uuid.NewString()
}

type Static string

func (s Static) New() string {
	return string(s)
}
