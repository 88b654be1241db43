package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dd0wney/scholarnet/pkg/analysis"
	"github.com/dd0wney/scholarnet/pkg/config"
	"github.com/dd0wney/scholarnet/pkg/corpus"
	"github.com/dd0wney/scholarnet/pkg/export"
	"github.com/dd0wney/scholarnet/pkg/logging"
	"github.com/dd0wney/scholarnet/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration")
	corpusPath := flag.String("corpus", "", "Path to the paper corpus JSON file (overrides config)")
	outDir := flag.String("out", "", "Export directory (overrides config)")
	httpAddr := flag.String("http", "", "Address for the /metrics endpoint (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *corpusPath != "" {
		cfg.Corpus.Path = *corpusPath
		cfg.Corpus.DSN = ""
	}
	if *outDir != "" {
		cfg.Export.Directory = *outDir
	}
	if *httpAddr != "" {
		cfg.HTTPAddr = *httpAddr
	}
	if cfg.Corpus.Path == "" && cfg.Corpus.DSN == "" {
		log.Fatalf("No corpus source: set -corpus or corpus.path/corpus.dsn in the config")
	}

	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(cfg.LogLevel))
	registry := metrics.DefaultRegistry()
	ctx := context.Background()

	if cfg.HTTPAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(registry.GetPrometheusRegistry(), promhttp.HandlerOpts{}))
			logger.Info("Metrics endpoint listening", logging.String("addr", cfg.HTTPAddr))
			if err := http.ListenAndServe(cfg.HTTPAddr, mux); err != nil {
				logger.Error("Metrics endpoint failed", logging.Error(err))
			}
		}()
	}

	papers, err := loadCorpus(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
	}
	logger.Info("Corpus loaded", logging.Count(len(papers)))

	analyzer := analysis.New(cfg, logger, registry)
	result, err := analyzer.Run(papers)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	exporter, err := export.NewExporter(ctx, cfg.Export, logger, registry)
	if err != nil {
		log.Fatalf("Failed to configure export: %v", err)
	}
	if err := exporter.Export(ctx, result, result.Coauthor.Graph, result.Keyword.Graph); err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	logger.Info("Run finished",
		logging.String("run_id", result.RunID),
		logging.Path(cfg.Export.Directory),
		logging.Latency(result.Elapsed))
}

// loadCorpus reads papers from the configured source: a JSON file or a
// Postgres database.
func loadCorpus(ctx context.Context, cfg *config.Config, logger logging.Logger) ([]corpus.Paper, error) {
	if cfg.Corpus.Path != "" {
		return corpus.LoadFile(cfg.Corpus.Path, logger)
	}

	store, err := corpus.NewPGStore(ctx, cfg.Corpus.DSN)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return store.LoadPapers(ctx)
}
