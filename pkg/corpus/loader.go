package corpus

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dd0wney/scholarnet/pkg/logging"
)

// LoadFile reads a corpus from a JSON file holding an array of paper records.
// Records that fail validation are skipped with a logged warning rather than
// aborting the load; only an unreadable or unparseable file is a hard failure.
func LoadFile(path string, logger logging.Logger) ([]Paper, error) {
	if logger == nil {
		logger = logging.DefaultLogger()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}

	var records []Paper
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse corpus %s: %w", path, err)
	}

	papers := make([]Paper, 0, len(records))
	skipped := 0
	for i := range records {
		if err := records[i].Validate(); err != nil {
			skipped++
			logger.Warn("skipping malformed paper record",
				logging.Int("index", i),
				logging.Error(err))
			continue
		}
		papers = append(papers, records[i])
	}

	logger.Info("corpus loaded",
		logging.Path(path),
		logging.Count(len(papers)),
		logging.Int("skipped", skipped))

	return papers, nil
}
