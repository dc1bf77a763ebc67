// Package strategy turns graph searches into actionable connection
// recommendations.
//
// # The Never-None Guarantee
//
// ConnectionStrategy is a closed tagged union over direct-path,
// mutual-path, intermediary and candidate. Its kind field is unexported
// and only settable through the constructors, so an empty or "none"
// strategy cannot be constructed; what the original design enforced by
// convention is enforced here by the type system. The selector backs the
// same guarantee at runtime: any code path about to return nothing is a
// logic defect, reported as InternalInvariantError and logged distinctly.
//
// # Degradation Order
//
// The selector attempts a weighted route first. One hop classifies as
// direct-path, two or three as mutual-path. When the hop cap exhausts the
// search it degrades to the best similarity-scored node: an intermediary
// if that node can reach the target, otherwise a low-confidence
// candidate. Only self-target and empty-graph requests fail fast.
package strategy
