package analysis

import (
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/scholarnet/pkg/config"
	"github.com/dd0wney/scholarnet/pkg/corpus"
	"github.com/dd0wney/scholarnet/pkg/graph"
	"github.com/dd0wney/scholarnet/pkg/logging"
	"github.com/dd0wney/scholarnet/pkg/metrics"
	"github.com/dd0wney/scholarnet/pkg/network"
)

// Analyzer runs the full pipeline: graph construction, structural metrics,
// community detection, and profiling, for both the co-authorship and the
// keyword co-occurrence graph.
type Analyzer struct {
	cfg      *config.Config
	logger   logging.Logger
	registry *metrics.Registry

	builder  *network.Builder
	engine   *Engine
	detector *Detector
	profiler *Profiler
}

// New creates an analyzer. A nil logger falls back to the default logger
// and a nil registry to the default metrics registry.
func New(cfg *config.Config, logger logging.Logger, registry *metrics.Registry) *Analyzer {
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	if registry == nil {
		registry = metrics.DefaultRegistry()
	}
	logger = logger.With(logging.Component("analyzer"))

	return &Analyzer{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
		builder:  network.NewBuilder(logger),
		engine:   NewEngine(cfg.Metrics, logger),
		detector: NewDetector(cfg.Community, logger),
		profiler: NewProfiler(cfg.Community, logger),
	}
}

// Run analyzes the corpus and assembles the result. Runs on the same corpus
// and configuration produce identical graphs, partitions, and profiles;
// only the run id and timestamps differ.
func (a *Analyzer) Run(papers []corpus.Paper) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	timer := logging.StartTimer(a.logger, "Analysis run complete",
		logging.String("run_id", runID),
		logging.Count(len(papers)))

	coauthor := a.builder.CoauthorGraph(papers, a.cfg.Build.MinCollaborations)
	keyword := a.builder.KeywordGraph(papers, a.cfg.Build.MinCooccurrence)
	a.registry.RecordGraph(KindCoauthor, coauthor.NodeCount(), coauthor.EdgeCount())
	a.registry.RecordGraph(KindKeyword, keyword.NodeCount(), keyword.EdgeCount())

	authorDocs, keywordDocs := corpusDocs(papers)

	coReport, err := a.analyzeGraph(coauthor, KindCoauthor, authorDocs)
	if err != nil {
		a.registry.RecordAnalysis("error", time.Since(start))
		timer.EndError(err)
		return nil, err
	}

	kwReport, err := a.analyzeGraph(keyword, KindKeyword, keywordDocs)
	if err != nil {
		a.registry.RecordAnalysis("error", time.Since(start))
		timer.EndError(err)
		return nil, err
	}

	elapsed := time.Since(start)
	a.registry.RecordAnalysis("success", elapsed)
	timer.End()

	return &Result{
		RunID:       runID,
		GeneratedAt: start.UTC(),
		Papers:      len(papers),
		Coauthor:    coReport,
		Keyword:     kwReport,
		Elapsed:     elapsed,
	}, nil
}

// analyzeGraph runs metrics, detection, and profiling for one graph
func (a *Analyzer) analyzeGraph(g *graph.Graph, kind string, docs []Doc) (*NetworkReport, error) {
	m := a.engine.Compute(g, kind)
	if !m.CentralityComputed && m.Nodes > 0 {
		a.registry.RecordCentralitySkipped()
	} else if m.Centrality != nil && m.Centrality.EigenvectorDegraded {
		a.registry.RecordEigenvectorDegradation()
	}

	partition, method, q, err := a.detector.Detect(g)
	if err != nil {
		return nil, err
	}
	if method == MethodComponents {
		a.registry.RecordDetectorFallback()
	}

	communities := a.profiler.Profile(g, partition, docs)
	a.registry.RecordPartition(kind, len(communities), q)

	a.logger.Info("Graph analyzed",
		logging.String("graph", kind),
		logging.Nodes(m.Nodes),
		logging.Edges(m.Edges),
		logging.String("method", method),
		logging.Int("communities", len(communities)),
		logging.Float64("modularity", q))

	return &NetworkReport{
		Graph:       g,
		Kind:        kind,
		Metrics:     m,
		Method:      method,
		Modularity:  q,
		Partition:   partition,
		Communities: communities,
	}, nil
}

// corpusDocs projects the papers into profiler docs for both graphs: one
// keyed by author membership, one by keyword membership.
func corpusDocs(papers []corpus.Paper) ([]Doc, []Doc) {
	authorDocs := make([]Doc, 0, len(papers))
	keywordDocs := make([]Doc, 0, len(papers))

	for i := range papers {
		cats := papers[i].Categories
		authorDocs = append(authorDocs, Doc{
			Nodes:      papers[i].DistinctAuthors(),
			Categories: cats,
		})
		keywordDocs = append(keywordDocs, Doc{
			Nodes:      papers[i].DistinctKeywords(),
			Categories: cats,
		})
	}

	return authorDocs, keywordDocs
}
