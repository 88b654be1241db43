package analysis

import (
	"sort"

	"github.com/dd0wney/scholarnet/pkg/algorithms"
	"github.com/dd0wney/scholarnet/pkg/config"
	"github.com/dd0wney/scholarnet/pkg/graph"
	"github.com/dd0wney/scholarnet/pkg/logging"
)

// topCategoryCount caps the category list in a community profile
const topCategoryCount = 5

// Doc ties one paper's member nodes (authors or keywords, depending on the
// graph) to its subject categories.
type Doc struct {
	Nodes      []string
	Categories []string
}

// Profiler summarizes detected communities: size, member paper counts, the
// papers the community touches, its leading members, and its dominant
// subject categories.
type Profiler struct {
	topMembers int
	logger     logging.Logger
}

// NewProfiler creates a community profiler
func NewProfiler(cfg config.CommunityConfig, logger logging.Logger) *Profiler {
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	return &Profiler{
		topMembers: cfg.TopMembers,
		logger:     logger.With(logging.Component("profiler")),
	}
}

// Profile builds one profile per community, ordered by community id.
// Singleton communities are reported like any other. docs may be nil when no
// per-paper data is available; Papers and TopCategories stay empty then.
func (p *Profiler) Profile(g *graph.Graph, partition map[string]int, docs []Doc) []CommunityProfile {
	members := make(map[int][]string)
	for id, c := range partition {
		members[c] = append(members[c], id)
	}

	// Each doc counts once per community it touches, so papers shared by
	// several members are not double-counted.
	volume := make(map[int]int)
	catCounts := make(map[int]map[string]float64)
	for i := range docs {
		touched := make(map[int]bool)
		for _, n := range docs[i].Nodes {
			if c, ok := partition[n]; ok {
				touched[c] = true
			}
		}
		for c := range touched {
			volume[c]++
			if len(docs[i].Categories) > 0 {
				if catCounts[c] == nil {
					catCounts[c] = make(map[string]float64)
				}
				for _, cat := range docs[i].Categories {
					catCounts[c][cat]++
				}
			}
		}
	}

	ids := make([]int, 0, len(members))
	for c := range members {
		ids = append(ids, c)
	}
	sort.Ints(ids)

	profiles := make([]CommunityProfile, 0, len(ids))
	for _, c := range ids {
		profiles = append(profiles, p.profileOne(g, c, members[c], volume[c], catCounts[c]))
	}
	return profiles
}

func (p *Profiler) profileOne(g *graph.Graph, id int, members []string, papers int, catCounts map[string]float64) CommunityProfile {
	profile := CommunityProfile{
		ID:     id,
		Size:   len(members),
		Papers: papers,
	}

	// Rank members by their paper counts; ties resolve alphabetically
	scores := make(map[string]float64, len(members))
	for _, m := range members {
		count := 0
		if node, err := g.GetNode(m); err == nil {
			count = node.Count
		}
		scores[m] = float64(count)
		profile.MemberPaperCount += count
	}
	profile.TopMembers = algorithms.TopK(scores, p.topMembers)
	if profile.TopMembers == nil {
		profile.TopMembers = []algorithms.Ranked[string]{}
	}

	if len(catCounts) > 0 {
		ranked := algorithms.TopK(catCounts, topCategoryCount)
		profile.TopCategories = make([]string, len(ranked))
		for i, r := range ranked {
			profile.TopCategories[i] = r.ID
		}
	}

	return profile
}
