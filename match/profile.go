package match

import (
	"strings"
	"time"

	"github.com/warmpath/warmpath/graph"
)

// ProfileView is the lean profile shape the scoring model depends on.
// Each source format (graph nodes, scraped full profiles) implements it
// once, instead of hand-mapping between shapes at every call site.
type ProfileView interface {
	ProfileID() string
	DisplayName() string
	ProfileLocation() string
	SkillList() []string
	// EmployerList is ordered most recent first.
	EmployerList() []string
	SchoolList() []string
	HasRecentActivity() bool
}

// NodeView adapts a graph.ActorNode to ProfileView.
type NodeView struct {
	Node *graph.ActorNode
}

var _ ProfileView = NodeView{}

// ViewNode wraps a graph node in a ProfileView.
func ViewNode(n *graph.ActorNode) NodeView {
	return NodeView{Node: n}
}

func (v NodeView) ProfileID() string       { return v.Node.ID }
func (v NodeView) DisplayName() string     { return v.Node.Name }
func (v NodeView) ProfileLocation() string { return v.Node.Location }
func (v NodeView) SkillList() []string     { return v.Node.Skills }
func (v NodeView) EmployerList() []string  { return v.Node.Employers }
func (v NodeView) SchoolList() []string    { return v.Node.Schools }
func (v NodeView) HasRecentActivity() bool { return v.Node.RecentActivity }

// Position is one employment entry in a scraped profile.
type Position struct {
	Company string `json:"company"`
	Title   string `json:"title"`
	Current bool   `json:"current"`
}

// Education is one school entry in a scraped profile.
type Education struct {
	School string `json:"school"`
	Degree string `json:"degree,omitempty"`
}

// ScrapedProfile is the full profile record produced by the external
// page-scraping collaborator. The engine never touches pages itself; it
// only consumes these records.
type ScrapedProfile struct {
	URL            string      `json:"url"`
	FirstName      string      `json:"first_name"`
	LastName       string      `json:"last_name"`
	Headline       string      `json:"headline,omitempty"`
	City           string      `json:"city,omitempty"`
	Country        string      `json:"country,omitempty"`
	AvatarURL      string      `json:"avatar_url,omitempty"`
	Skills         []string    `json:"skills,omitempty"`
	Positions      []Position  `json:"positions,omitempty"`
	Education      []Education `json:"education,omitempty"`
	LastActivityAt time.Time   `json:"last_activity_at,omitempty"`
}

var _ ProfileView = (*ScrapedProfile)(nil)

// recentActivityWindow is how long after the last observed activity a
// profile still counts as active.
const recentActivityWindow = 14 * 24 * time.Hour

func (p *ScrapedProfile) ProfileID() string { return p.URL }

func (p *ScrapedProfile) DisplayName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func (p *ScrapedProfile) ProfileLocation() string {
	switch {
	case p.City != "" && p.Country != "":
		return p.City + ", " + p.Country
	case p.City != "":
		return p.City
	default:
		return p.Country
	}
}

func (p *ScrapedProfile) SkillList() []string { return p.Skills }

func (p *ScrapedProfile) EmployerList() []string {
	employers := make([]string, 0, len(p.Positions))
	for _, pos := range p.Positions {
		if pos.Company != "" {
			employers = append(employers, pos.Company)
		}
	}
	return employers
}

func (p *ScrapedProfile) SchoolList() []string {
	schools := make([]string, 0, len(p.Education))
	for _, e := range p.Education {
		if e.School != "" {
			schools = append(schools, e.School)
		}
	}
	return schools
}

func (p *ScrapedProfile) HasRecentActivity() bool {
	if p.LastActivityAt.IsZero() {
		return false
	}
	return time.Since(p.LastActivityAt) < recentActivityWindow
}

// ToNode converts the scraped record into the lean node shape stored in
// the graph.
func (p *ScrapedProfile) ToNode() *graph.ActorNode {
	return &graph.ActorNode{
		ID:             p.URL,
		Name:           p.DisplayName(),
		Headline:       p.Headline,
		Location:       p.ProfileLocation(),
		Skills:         append([]string(nil), p.Skills...),
		Employers:      p.EmployerList(),
		Schools:        p.SchoolList(),
		AvatarURL:      p.AvatarURL,
		Status:         graph.StatusNotContacted,
		RecentActivity: p.HasRecentActivity(),
	}
}
