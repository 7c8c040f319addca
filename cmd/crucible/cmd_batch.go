package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"crucible/internal/assess"
	"crucible/internal/logging"
)

var batchFlags struct {
	scenario   string
	attemptDir string
	domain     string
	workers    int
	outDir     string
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score every attempt document in a directory",
	Long: `Batch scores all attempt documents (*.yaml, *.yml, *.json) in a directory
against one scenario, using a bounded worker pool. The engine is pure, so
attempts are scored concurrently without shared state.`,
	RunE: runBatch,
}

func init() {
	f := batchCmd.Flags()
	f.StringVar(&batchFlags.scenario, "scenario", "", "Path to the scenario document (YAML or JSON)")
	f.StringVar(&batchFlags.attemptDir, "attempt-dir", "", "Directory of attempt documents")
	f.StringVar(&batchFlags.domain, "domain", "technology", "Rule-pack domain (technology, business, law)")
	f.IntVar(&batchFlags.workers, "workers", 4, "Number of concurrent scoring workers")
	f.StringVar(&batchFlags.outDir, "out-dir", "", "Write one <attempt>.report.json per attempt to this directory")
	_ = batchCmd.MarkFlagRequired("scenario")
	_ = batchCmd.MarkFlagRequired("attempt-dir")
}

// batchRow is one line of the batch summary.
type batchRow struct {
	File  string
	Total int
	Grade assess.Grade
	Err   error
}

func runBatch(cmd *cobra.Command, _ []string) error {
	logger := logging.New("batch")

	pack, err := newLoader().Load(batchFlags.domain)
	if err != nil {
		return err
	}
	scenario, err := assess.LoadScenario(batchFlags.scenario)
	if err != nil {
		return err
	}
	scenario = assess.ValidateScenario(scenario, pack)

	paths, err := attemptPaths(batchFlags.attemptDir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no attempt documents in %s", batchFlags.attemptDir)
	}
	if batchFlags.outDir != "" {
		if err := os.MkdirAll(batchFlags.outDir, 0o755); err != nil {
			return fmt.Errorf("create out dir: %w", err)
		}
	}

	logger.Info("scoring attempts", "count", len(paths), "workers", batchFlags.workers)

	// Each worker writes its own index, so no locking is needed.
	rows := make([]batchRow, len(paths))
	var g errgroup.Group
	g.SetLimit(max(1, batchFlags.workers))

	for i, path := range paths {
		g.Go(func() error {
			row := batchRow{File: filepath.Base(path)}
			attempt, err := assess.LoadAttempt(path)
			if err != nil {
				row.Err = err
			} else {
				report := assess.ScoreAttempt(attempt, scenario, pack)
				row.Total = report.Total
				row.Grade = report.Grade
				if batchFlags.outDir != "" {
					row.Err = writeBatchReport(batchFlags.outDir, path, &report)
				}
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].File < rows[j].File })

	failed := 0
	for _, row := range rows {
		if row.Err != nil {
			failed++
			cmd.Printf("%-30s ERROR %v\n", row.File, row.Err)
			continue
		}
		cmd.Printf("%-30s %3d  %s\n", row.File, row.Total, row.Grade)
	}
	cmd.Printf("\n%d attempts scored, %d failed\n", len(rows)-failed, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d attempts failed to score", failed, len(rows))
	}
	return nil
}

// attemptPaths lists scoreable documents in dir, sorted by name.
func attemptPaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read attempt dir: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml", ".json":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func writeBatchReport(outDir, attemptPath string, report *assess.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	base := strings.TrimSuffix(filepath.Base(attemptPath), filepath.Ext(attemptPath))
	out := filepath.Join(outDir, base+".report.json")
	if err := os.WriteFile(out, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
