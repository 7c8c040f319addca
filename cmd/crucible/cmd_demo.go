package main

import (
	"github.com/spf13/cobra"

	"crucible/internal/assess"
	"crucible/internal/demo"
)

var demoFlags struct {
	attempt string
	adjust  bool
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Score the embedded sample scenario with scripted attempts",
	Long: `Demo scores the embedded "payment outage" scenario with three scripted
attempts (methodical, rushed, negligent) and prints the full report for each,
showing how ordering, critical actions and timing move the grade.`,
	RunE: runDemo,
}

func init() {
	f := demoCmd.Flags()
	f.StringVar(&demoFlags.attempt, "attempt", "", "Only run the named attempt (methodical, rushed, negligent)")
	f.BoolVar(&demoFlags.adjust, "adjust", true, "Apply the scripted explanation judgment as a second pass")
}

func runDemo(cmd *cobra.Command, _ []string) error {
	pack, err := newLoader().Load(demo.Domain)
	if err != nil {
		return err
	}
	scenario := assess.ValidateScenario(demo.Scenario(), pack)

	cmd.Printf("Scenario: %s\n", scenario.Context)
	cmd.Printf("Time limit: %ds, %d actions available\n\n", scenario.TimeLimitSeconds, len(scenario.AvailableActions))

	for _, na := range demo.Attempts() {
		if demoFlags.attempt != "" && na.Name != demoFlags.attempt {
			continue
		}
		report := assess.ScoreAttempt(na.Attempt, scenario, pack)
		if demoFlags.adjust {
			report = assess.Adjust(report, na.Judgment)
		}
		cmd.Printf("### %s — %s\n\n", na.Name, na.Description)
		cmd.Print(assess.FormatReport(&report))
		cmd.Println()
	}
	return nil
}
