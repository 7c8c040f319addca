package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"crucible/internal/assess"
	"crucible/internal/logging"
)

var scoreFlags struct {
	scenario string
	attempt  string
	domain   string
	judgment string
	format   string
	out      string
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one attempt against a scenario",
	Long: `Score loads the rule pack for a domain, validates the scenario against it,
runs the deterministic scorer on the attempt, and optionally applies an
explanation judgment as a bounded second pass.`,
	RunE: runScore,
}

func init() {
	f := scoreCmd.Flags()
	f.StringVar(&scoreFlags.scenario, "scenario", "", "Path to the scenario document (YAML or JSON)")
	f.StringVar(&scoreFlags.attempt, "attempt", "", "Path to the attempt document (YAML or JSON)")
	f.StringVar(&scoreFlags.domain, "domain", "technology", "Rule-pack domain (technology, business, law)")
	f.StringVar(&scoreFlags.judgment, "judgment", "", "Optional path to an explanation judgment document")
	f.StringVar(&scoreFlags.format, "format", "text", "Output format (text, json)")
	f.StringVar(&scoreFlags.out, "out", "", "Write output to path instead of stdout")
	_ = scoreCmd.MarkFlagRequired("scenario")
	_ = scoreCmd.MarkFlagRequired("attempt")
}

func runScore(cmd *cobra.Command, _ []string) error {
	logger := logging.New("score")

	pack, err := newLoader().Load(scoreFlags.domain)
	if err != nil {
		return err
	}
	scenario, err := assess.LoadScenario(scoreFlags.scenario)
	if err != nil {
		return err
	}
	attempt, err := assess.LoadAttempt(scoreFlags.attempt)
	if err != nil {
		return err
	}

	scenario = assess.ValidateScenario(scenario, pack)
	report := assess.ScoreAttempt(attempt, scenario, pack)

	if scoreFlags.judgment != "" {
		judgment, err := assess.LoadJudgment(scoreFlags.judgment)
		if err != nil {
			return err
		}
		report = assess.Adjust(report, judgment)
	}

	logger.Info("scored attempt",
		"domain", pack.Domain(),
		"actions", report.ActionsTaken,
		"total", report.Total,
		"grade", report.Grade)

	return writeReport(cmd, &report, scoreFlags.format, scoreFlags.out)
}

// writeReport renders a report in the requested format to stdout or a file.
func writeReport(cmd *cobra.Command, report *assess.Report, format, out string) error {
	var rendered []byte
	switch format {
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		rendered = append(data, '\n')
	case "text":
		rendered = []byte(assess.FormatReport(report))
	default:
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}

	if out == "" {
		cmd.Print(string(rendered))
		return nil
	}
	if err := os.WriteFile(out, rendered, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
