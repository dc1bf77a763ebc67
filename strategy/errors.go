package strategy

import "fmt"

// SelfTargetError is returned when source and target are the same actor.
// Pathfinding is never run against oneself; the selector rejects before
// any graph traversal.
type SelfTargetError struct {
	ID string
}

func (e *SelfTargetError) Error() string {
	return fmt.Sprintf("cannot plan a connection to yourself (%s)", e.ID)
}

// EmptyGraphError is returned when the graph holds too little data to
// search. It is recoverable: the user needs to browse more profiles to
// accumulate graph data.
type EmptyGraphError struct {
	Nodes int
}

func (e *EmptyGraphError) Error() string {
	return fmt.Sprintf("graph has only %d node(s); browse more profiles to build connection data", e.Nodes)
}

// UserDetectionError is a precondition failure: the upstream collaborator
// could not resolve the current user's profile. The engine checks it
// before invoking the selector.
type UserDetectionError struct {
	Reason string
}

func (e *UserDetectionError) Error() string {
	return fmt.Sprintf("could not resolve the current user: %s", e.Reason)
}

// InvalidCacheEntryError marks a persisted strategy that failed
// validation, such as the forbidden empty type. The cache purges the
// entry and treats the read as a miss.
type InvalidCacheEntryError struct {
	TargetID string
	Reason   string
}

func (e *InvalidCacheEntryError) Error() string {
	return fmt.Sprintf("invalid cached strategy for %s: %s", e.TargetID, e.Reason)
}

// InternalInvariantError reports that the selector was about to return no
// strategy at all. This is a logic defect, never a normal "no match"
// outcome, and is surfaced as an internal error rather than an empty
// result.
type InternalInvariantError struct {
	Reason string
}

func (e *InternalInvariantError) Error() string {
	return fmt.Sprintf("internal error: %s", e.Reason)
}
