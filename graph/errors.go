package graph

import "errors"

var (
	// ErrEmptyNodeID is returned when a node with an empty ID is added.
	ErrEmptyNodeID = errors.New("node id must not be empty")

	// ErrNodeNotFound is returned when an edge references an unknown node.
	ErrNodeNotFound = errors.New("node not found")

	// ErrInvalidWeight is returned when an edge weight is outside [0.1, 1.0].
	ErrInvalidWeight = errors.New("edge weight must be within [0.1, 1.0]")

	// ErrSelfEdge is returned when an edge would connect a node to itself.
	ErrSelfEdge = errors.New("edge endpoints must differ")
)
