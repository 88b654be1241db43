// Package analysis orchestrates network construction, structural metrics,
// community detection, and community profiling over a paper corpus.
package analysis

import (
	"time"

	"github.com/dd0wney/scholarnet/pkg/algorithms"
	"github.com/dd0wney/scholarnet/pkg/graph"
)

// Detection methods reported in a NetworkReport.
const (
	MethodLouvain    = "louvain"
	MethodComponents = "components"
)

// Graph kinds used in reports and metric labels.
const (
	KindCoauthor = "coauthor"
	KindKeyword  = "keyword"
)

// Centrality holds per-node centrality scores with top-N leaderboards per
// measure. Degree covers the whole graph at any size; the shortest-path and
// spectral maps cover the largest connected component (nodes outside it are
// absent) and stay nil when the graph exceeded the size ceiling.
type Centrality struct {
	Degree      map[string]float64 `json:"degree"`
	Betweenness map[string]float64 `json:"betweenness,omitempty"`
	Closeness   map[string]float64 `json:"closeness,omitempty"`
	Eigenvector map[string]float64 `json:"eigenvector,omitempty"`

	TopDegree      []algorithms.Ranked[string] `json:"top_degree,omitempty"`
	TopBetweenness []algorithms.Ranked[string] `json:"top_betweenness,omitempty"`
	TopCloseness   []algorithms.Ranked[string] `json:"top_closeness,omitempty"`
	TopEigenvector []algorithms.Ranked[string] `json:"top_eigenvector,omitempty"`

	// EigenvectorDegraded is set when power iteration failed to converge
	// and degree centrality was substituted.
	EigenvectorDegraded bool `json:"eigenvector_degraded,omitempty"`
}

// Metrics summarizes the structure of one graph
type Metrics struct {
	Nodes            int     `json:"nodes"`
	Edges            int     `json:"edges"`
	Density          float64 `json:"density"`
	AvgDegree        float64 `json:"avg_degree"`
	MaxDegree        int     `json:"max_degree"`
	MinDegree        int     `json:"min_degree"`
	MaxDegreeNode    string  `json:"max_degree_node,omitempty"`
	Components       int     `json:"components"`
	LargestComponent int     `json:"largest_component"`
	AvgClustering    float64 `json:"avg_clustering"`

	// CentralityComputed is false when the graph exceeded the size ceiling;
	// Centrality then carries degree scores only.
	CentralityComputed bool        `json:"centrality_computed"`
	Centrality         *Centrality `json:"centrality,omitempty"`
}

// CommunityProfile describes one detected community. Papers counts the
// papers with at least one member; MemberPaperCount sums each member's own
// paper count and so counts shared papers once per member.
type CommunityProfile struct {
	ID               int                         `json:"id"`
	Size             int                         `json:"size"`
	Papers           int                         `json:"papers"`
	MemberPaperCount int                         `json:"member_paper_count"`
	TopMembers       []algorithms.Ranked[string] `json:"top_members"`
	TopCategories    []string                    `json:"top_categories,omitempty"`
}

// NetworkReport is the full analysis output for one graph. Graph carries
// the analyzed structure for downstream serialization and is excluded from
// the JSON summary.
type NetworkReport struct {
	Graph       *graph.Graph       `json:"-"`
	Kind        string             `json:"kind"`
	Metrics     Metrics            `json:"metrics"`
	Method      string             `json:"method"`
	Modularity  float64            `json:"modularity"`
	Partition   map[string]int     `json:"partition"`
	Communities []CommunityProfile `json:"communities"`
}

// Result is the assembled output of a complete analysis run
type Result struct {
	RunID       string         `json:"run_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Papers      int            `json:"papers"`
	Coauthor    *NetworkReport `json:"coauthor"`
	Keyword     *NetworkReport `json:"keyword"`
	Elapsed     time.Duration  `json:"elapsed_ns"`
}
