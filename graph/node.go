package graph

// ContactStatus tracks the relationship between the viewing user and an actor.
type ContactStatus string

const (
	// StatusNotContacted means no outreach has been made yet.
	StatusNotContacted ContactStatus = "not-contacted"
	// StatusContacted means a request or message has been sent but not accepted.
	StatusContacted ContactStatus = "contacted"
	// StatusConnected means the actor accepted and is a first-degree contact.
	StatusConnected ContactStatus = "connected"
)

// ActorNode is a person in the acquaintance graph. Identity is the ID
// (canonical profile URL); all other fields are a mutable profile summary
// replaced wholesale on re-upsert.
type ActorNode struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Headline string `json:"headline,omitempty"`
	Location string `json:"location,omitempty"`

	// Skills, Employers and Schools are free-text labels from the profile.
	// Employers are ordered most recent first.
	Skills    []string `json:"skills,omitempty"`
	Employers []string `json:"employers,omitempty"`
	Schools   []string `json:"schools,omitempty"`

	AvatarURL string        `json:"avatar_url,omitempty"`
	Status    ContactStatus `json:"status,omitempty"`

	// Degree is the hop distance from the viewing user, 0 for self.
	Degree int `json:"degree"`

	// MatchScore is the cached 0-100 similarity against the viewing user.
	MatchScore int `json:"match_score"`

	// RecentActivity reports whether the actor had visible activity when
	// their profile was last observed. It feeds the edge-weight boost.
	RecentActivity bool `json:"recent_activity,omitempty"`
}

// Clone returns a deep copy of the node.
func (n *ActorNode) Clone() *ActorNode {
	if n == nil {
		return nil
	}
	c := *n
	c.Skills = append([]string(nil), n.Skills...)
	c.Employers = append([]string(nil), n.Employers...)
	c.Schools = append([]string(nil), n.Schools...)
	return &c
}

// Edge is a directed acquaintance link. Weight is an inverse-strength
// traversal cost in [0.1, 1.0]; lower means stronger.
type Edge struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// Snapshot is the serialized form of a Store, used for persistence
// round-trips. Nodes are ordered by ID and edges by (From, To) so the
// encoding is deterministic.
type Snapshot struct {
	Nodes []*ActorNode `json:"nodes"`
	Edges []Edge       `json:"edges"`
}
