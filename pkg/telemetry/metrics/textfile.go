package metrics

import (
	"fmt"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
)

// TextfileName is the snapshot file written into the textfile directory.
const TextfileName = "logsweep.prom"

// WriteTextfile snapshots the registry into the configured textfile
// directory for the node_exporter textfile collector. This is the
// export path for one-shot scheduled runs, where no process is alive to
// scrape by the time the scrape interval comes around. No-op when the
// collector is disabled or no directory is configured.
func (c *Collector) WriteTextfile() error {
	if !c.config.Enabled || c.config.TextfileDir == "" {
		return nil
	}

	path := filepath.Join(c.config.TextfileDir, TextfileName)
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("write metrics textfile %q: %w", path, err)
	}
	return nil
}
