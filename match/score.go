package match

import (
	"strings"

	"github.com/warmpath/warmpath/graph"
)

// Component caps of the match score. They sum to 100, so the raw sum is
// already a percentage of the theoretical maximum.
const (
	maxMutualPoints   = 40
	pointsPerMutual   = 4
	maxSchoolPoints   = 20
	pointsPerSchool   = 20
	maxEmployerPoints = 20
	pointsPerEmployer = 20
	maxSkillPoints    = 10
	pointsPerSkill    = 2
	exactLocation     = 10
	partialLocation   = 5
)

// Edge-weight boosts. Weights are costs, so a boost subtracts.
const (
	baseWeight          = 1.0
	scoreWeightFactor   = 0.3
	sameEmployerBoost   = 0.2
	sharedSchoolBoost   = 0.15
	recentActivityBoost = 0.1
)

// Model scores profile similarity and derives edge traversal weights.
// The graph store supplies mutual-connection counts; a nil store scores
// mutuals as zero, which is the right behavior when scoring a profile
// that is not in the graph yet.
type Model struct {
	graph *graph.Store
}

// NewModel creates a scoring model backed by the given graph.
func NewModel(g *graph.Store) *Model {
	return &Model{graph: g}
}

// Score computes the 0-100 similarity between two profiles: mutual
// connections (4 points each, capped at 40), shared schools (20 each,
// capped at 20, so a single shared school saturates the component),
// shared employers (20 each, capped at 20), shared skills (2 each,
// capped at 10), and location (10 exact, 5 partial).
func (m *Model) Score(a, b ProfileView) int {
	score := capped(m.mutualCount(a, b)*pointsPerMutual, maxMutualPoints)
	score += capped(sharedCount(a.SchoolList(), b.SchoolList())*pointsPerSchool, maxSchoolPoints)
	score += capped(sharedCount(a.EmployerList(), b.EmployerList())*pointsPerEmployer, maxEmployerPoints)
	score += capped(sharedCount(a.SkillList(), b.SkillList())*pointsPerSkill, maxSkillPoints)
	score += locationPoints(a.ProfileLocation(), b.ProfileLocation())
	return score
}

// EdgeWeight converts a match score into a traversal weight in
// [0.1, 1.0]. The weight starts at 1.0 and shrinks with similarity and
// categorical boosts; lower always means a stronger, more traversable
// connection, which the path search minimizes.
func (m *Model) EdgeWeight(a, b ProfileView, score int) float64 {
	w := baseWeight - float64(score)/100*scoreWeightFactor

	if sameMostRecentEmployer(a, b) {
		w -= sameEmployerBoost
	}
	if sharedCount(a.SchoolList(), b.SchoolList()) > 0 {
		w -= sharedSchoolBoost
	}
	if b.HasRecentActivity() {
		w -= recentActivityBoost
	}

	if w < graph.MinWeight {
		w = graph.MinWeight
	}
	if w > graph.MaxWeight {
		w = graph.MaxWeight
	}
	return w
}

// Weigh scores the pair and derives the edge weight in one call.
func (m *Model) Weigh(a, b ProfileView) (score int, weight float64) {
	score = m.Score(a, b)
	return score, m.EdgeWeight(a, b, score)
}

func (m *Model) mutualCount(a, b ProfileView) int {
	if m.graph == nil {
		return 0
	}
	return len(m.graph.MutualConnections(a.ProfileID(), b.ProfileID()))
}

func capped(points, limit int) int {
	if points > limit {
		return limit
	}
	return points
}

// sharedCount intersects two label lists case-insensitively, ignoring
// blanks and duplicates.
func sharedCount(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	set := make(map[string]struct{}, len(a))
	for _, s := range a {
		if key := normalizeLabel(s); key != "" {
			set[key] = struct{}{}
		}
	}

	count := 0
	seen := make(map[string]struct{}, len(b))
	for _, s := range b {
		key := normalizeLabel(s)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if _, ok := set[key]; ok {
			count++
		}
	}
	return count
}

func locationPoints(a, b string) int {
	la, lb := normalizeLabel(a), normalizeLabel(b)
	if la == "" || lb == "" {
		return 0
	}
	if la == lb {
		return exactLocation
	}
	if strings.Contains(la, lb) || strings.Contains(lb, la) {
		return partialLocation
	}
	return 0
}

func sameMostRecentEmployer(a, b ProfileView) bool {
	ea, eb := a.EmployerList(), b.EmployerList()
	if len(ea) == 0 || len(eb) == 0 {
		return false
	}
	current := normalizeLabel(ea[0])
	return current != "" && current == normalizeLabel(eb[0])
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
