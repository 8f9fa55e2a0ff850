package stats

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/ecosim/config"
)

// Output writes run artifacts to a directory: stats.csv with one row per sample,
// config.yaml and a final summary.csv. A nil *Output discards everything.
type Output struct {
	dir           string
	statsFile     *os.File
	headerWritten bool
}

// NewOutput creates the output directory and opens stats.csv.
// Returns nil if dir is empty (output disabled).
func NewOutput(dir string) (*Output, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "stats.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating stats.csv: %w", err)
	}

	return &Output{dir: dir, statsFile: f}, nil
}

// Dir returns the output directory, or "" when disabled.
func (o *Output) Dir() string {
	if o == nil {
		return ""
	}
	return o.dir
}

// WriteConfig saves the configuration as YAML.
func (o *Output) WriteConfig(cfg *config.Config) error {
	if o == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(o.dir, "config.yaml"))
}

// WriteSample appends a sample to stats.csv.
func (o *Output) WriteSample(s Sample) error {
	if o == nil {
		return nil
	}

	records := []Sample{s}

	if !o.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, o.statsFile); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
		o.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, o.statsFile); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
	}

	return nil
}

// WriteSummary writes summary.csv, replacing any previous one.
func (o *Output) WriteSummary(summaries []Summary) error {
	if o == nil {
		return nil
	}

	f, err := os.Create(filepath.Join(o.dir, "summary.csv"))
	if err != nil {
		return fmt.Errorf("creating summary.csv: %w", err)
	}
	defer f.Close()

	if err := gocsv.Marshal(summaries, f); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

// Close flushes and closes open files.
func (o *Output) Close() error {
	if o == nil || o.statsFile == nil {
		return nil
	}
	err := o.statsFile.Close()
	o.statsFile = nil
	return err
}
