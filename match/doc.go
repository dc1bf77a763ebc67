// Package match scores profile similarity and derives the edge weights
// the weighted path search traverses.
//
// A match score is a 0-100 percentage built from five independently
// capped components: mutual connections, shared schools, shared
// employers, shared skills, and location. The edge weight inverts the
// score into a traversal cost in [0.1, 1.0], with categorical boosts for
// a shared current employer, any shared school, and recent target
// activity. Lower weight means a stronger connection.
//
// The ProfileView interface decouples scoring from profile shape: the
// lean graph node and the full scraped record each implement it once.
package match
