package main

import (
	"github.com/spf13/cobra"

	"crucible/internal/rulepack"
)

var rulesFlags struct {
	domain string
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the merged rule pack for a domain",
	RunE:  runRules,
}

func init() {
	f := rulesCmd.Flags()
	f.StringVar(&rulesFlags.domain, "domain", "technology", "Rule-pack domain (technology, business, law)")
}

func runRules(cmd *cobra.Command, _ []string) error {
	pack, err := newLoader().Load(rulesFlags.domain)
	if err != nil {
		return err
	}

	cmd.Printf("Domain: %s (%d rules)\n", pack.Domain(), pack.Len())
	if skills := pack.SkillNames(); len(skills) > 0 {
		cmd.Println("Skills:")
		for _, s := range skills {
			cmd.Printf("  - %s\n", s)
		}
	}
	cmd.Println()

	byCategory := make(map[rulepack.Category][]rulepack.Rule)
	for _, r := range pack.Rules() {
		byCategory[r.Category] = append(byCategory[r.Category], r)
	}
	order := append(rulepack.RuleCategories(), rulepack.CategoryUnknown)
	for _, cat := range order {
		rules := byCategory[cat]
		if len(rules) == 0 {
			continue
		}
		cmd.Printf("--- %s ---\n", cat)
		for _, r := range rules {
			cmd.Printf("%-5s %4.1f  %s\n", r.ID, r.Weight, r.Label)
		}
		cmd.Println()
	}

	if rootFlags.rulesDir == "" {
		cmd.Printf("Available domains: %v\n", rulepack.EmbeddedDomains())
	}
	return nil
}
