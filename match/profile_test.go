package match

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warmpath/warmpath/graph"
)

func TestScrapedProfile_View(t *testing.T) {
	t.Parallel()

	p := &ScrapedProfile{
		URL:       "https://example.com/in/jane",
		FirstName: "Jane",
		LastName:  "Doe",
		Headline:  "Engineer",
		City:      "Austin",
		Country:   "USA",
		Skills:    []string{"go"},
		Positions: []Position{
			{Company: "Acme", Title: "Engineer", Current: true},
			{Company: "Initech", Title: "Intern"},
			{Company: ""},
		},
		Education: []Education{
			{School: "UT Austin", Degree: "BSc"},
			{School: ""},
		},
	}

	assert.Equal(t, "https://example.com/in/jane", p.ProfileID())
	assert.Equal(t, "Jane Doe", p.DisplayName())
	assert.Equal(t, "Austin, USA", p.ProfileLocation())
	assert.Equal(t, []string{"Acme", "Initech"}, p.EmployerList(), "blank companies dropped, order kept")
	assert.Equal(t, []string{"UT Austin"}, p.SchoolList())
}

func TestScrapedProfile_PartialLocation(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Austin", (&ScrapedProfile{City: "Austin"}).ProfileLocation())
	assert.Equal(t, "USA", (&ScrapedProfile{Country: "USA"}).ProfileLocation())
	assert.Equal(t, "", (&ScrapedProfile{}).ProfileLocation())
}

func TestScrapedProfile_RecentActivity(t *testing.T) {
	t.Parallel()

	assert.False(t, (&ScrapedProfile{}).HasRecentActivity(), "no observed activity")
	assert.True(t, (&ScrapedProfile{LastActivityAt: time.Now().Add(-time.Hour)}).HasRecentActivity())
	assert.False(t, (&ScrapedProfile{LastActivityAt: time.Now().Add(-30 * 24 * time.Hour)}).HasRecentActivity())
}

func TestScrapedProfile_ToNode(t *testing.T) {
	t.Parallel()

	p := &ScrapedProfile{
		URL:            "https://example.com/in/jane",
		FirstName:      "Jane",
		LastName:       "Doe",
		City:           "Austin",
		Skills:         []string{"go"},
		Positions:      []Position{{Company: "Acme"}},
		Education:      []Education{{School: "UT Austin"}},
		LastActivityAt: time.Now(),
	}

	n := p.ToNode()
	require.NotNil(t, n)
	assert.Equal(t, p.URL, n.ID)
	assert.Equal(t, "Jane Doe", n.Name)
	assert.Equal(t, graph.StatusNotContacted, n.Status)
	assert.True(t, n.RecentActivity)

	// The node and scraped views must score identically: both shapes go
	// through the same ProfileView surface.
	model := NewModel(nil)
	self := model.Score(p, ViewNode(n))
	assert.Equal(t, model.Score(p, p), self)
}
