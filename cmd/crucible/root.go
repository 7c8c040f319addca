package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"crucible/internal/logging"
	"crucible/internal/rulepack"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	logLevel  string
	logFormat string
	rulesDir  string
}

var rootCmd = &cobra.Command{
	Use:   "crucible",
	Short: "Deterministic scoring for scenario-based skill assessment",
	Long: "Crucible scores a candidate's ordered actions inside a generated decision\n" +
		"scenario against a layered rule pack, producing a reproducible skill profile\n" +
		"with per-category scores, a stress sub-score and a letter grade.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level, err := logging.ParseLevel(rootFlags.logLevel)
		if err != nil {
			return err
		}
		logging.Init(level, rootFlags.logFormat)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format (text, json)")
	pf.StringVar(&rootFlags.rulesDir, "rules-dir", "", "Directory with core.<ext> and <domain>.<ext> rule documents; empty = embedded packs")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

// newLoader builds the rule-pack loader for the active --rules-dir.
func newLoader() *rulepack.Loader {
	if rootFlags.rulesDir != "" {
		return rulepack.NewLoader(rulepack.DirSource{Dir: rootFlags.rulesDir})
	}
	return rulepack.NewLoader(nil)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
