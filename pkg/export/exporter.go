package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/snappy"

	"github.com/dd0wney/scholarnet/pkg/analysis"
	"github.com/dd0wney/scholarnet/pkg/config"
	"github.com/dd0wney/scholarnet/pkg/graph"
	"github.com/dd0wney/scholarnet/pkg/logging"
	"github.com/dd0wney/scholarnet/pkg/metrics"
)

// Exporter writes analysis artifacts to the export directory and, when a
// bucket is configured, mirrors them to object storage.
type Exporter struct {
	cfg      config.ExportConfig
	logger   logging.Logger
	registry *metrics.Registry
	uploader *S3Uploader
}

// NewExporter creates an exporter. The S3 uploader is only constructed when
// a bucket is configured.
func NewExporter(ctx context.Context, cfg config.ExportConfig, logger logging.Logger, registry *metrics.Registry) (*Exporter, error) {
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	if registry == nil {
		registry = metrics.DefaultRegistry()
	}

	e := &Exporter{
		cfg:      cfg,
		logger:   logger.With(logging.Component("export")),
		registry: registry,
	}

	if cfg.S3.Bucket != "" {
		uploader, err := NewS3Uploader(ctx, cfg.S3)
		if err != nil {
			return nil, fmt.Errorf("failed to configure uploads: %w", err)
		}
		e.uploader = uploader
	}

	return e, nil
}

// Export writes the GraphML documents for both graphs and the JSON run
// summary. File names are prefixed with the run id.
func (e *Exporter) Export(ctx context.Context, result *analysis.Result, coauthor, keyword *graph.Graph) error {
	if err := os.MkdirAll(e.cfg.Directory, 0755); err != nil {
		return fmt.Errorf("failed to create export directory %s: %w", e.cfg.Directory, err)
	}

	graphs := []struct {
		kind string
		g    *graph.Graph
	}{
		{analysis.KindCoauthor, coauthor},
		{analysis.KindKeyword, keyword},
	}

	for _, entry := range graphs {
		if err := e.exportGraph(ctx, result.RunID, entry.kind, entry.g); err != nil {
			e.registry.RecordExport("graphml", "error")
			return err
		}
		e.registry.RecordExport("graphml", "success")
	}

	if err := e.exportSummary(ctx, result); err != nil {
		e.registry.RecordExport("json", "error")
		return err
	}
	e.registry.RecordExport("json", "success")

	return nil
}

func (e *Exporter) exportGraph(ctx context.Context, runID, kind string, g *graph.Graph) error {
	var buf bytes.Buffer
	if err := WriteGraphML(&buf, g, kind); err != nil {
		return err
	}

	name := fmt.Sprintf("%s-%s.graphml", runID, kind)
	data := buf.Bytes()
	if e.cfg.Compress {
		data = snappy.Encode(nil, data)
		name += ".snappy"
	}

	if err := e.writeArtifact(ctx, name, data); err != nil {
		return err
	}

	e.logger.Info("Graph exported",
		logging.String("graph", kind),
		logging.Path(filepath.Join(e.cfg.Directory, name)),
		logging.Nodes(g.NodeCount()),
		logging.Edges(g.EdgeCount()))
	return nil
}

func (e *Exporter) exportSummary(ctx context.Context, result *analysis.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run summary: %w", err)
	}

	name := fmt.Sprintf("%s-summary.json", result.RunID)
	if err := e.writeArtifact(ctx, name, data); err != nil {
		return err
	}

	e.logger.Info("Run summary exported",
		logging.String("run_id", result.RunID),
		logging.Path(filepath.Join(e.cfg.Directory, name)))
	return nil
}

// writeArtifact writes one file locally and mirrors it to object storage
// when uploads are configured.
func (e *Exporter) writeArtifact(ctx context.Context, name string, data []byte) error {
	path := filepath.Join(e.cfg.Directory, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if e.uploader != nil {
		if err := e.uploader.Upload(ctx, name, data); err != nil {
			return fmt.Errorf("failed to upload %s: %w", name, err)
		}
	}

	return nil
}
