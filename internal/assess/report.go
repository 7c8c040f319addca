package assess

import (
	"fmt"
	"strings"

	"crucible/internal/rulepack"
)

// categoryTitles maps category keys to report headings.
var categoryTitles = map[rulepack.Category]string{
	rulepack.DecisionQuality:  "Decision Quality",
	rulepack.RiskAwareness:    "Risk Awareness",
	rulepack.Communication:    "Communication",
	rulepack.EthicalReasoning: "Ethical Reasoning",
	rulepack.CategoryUnknown:  "Uncategorized",
}

// FormatReport produces the human-readable score report.
func FormatReport(r *Report) string {
	var b strings.Builder

	b.WriteString("=== Crucible Score Report ===\n")
	b.WriteString(fmt.Sprintf("Total: %d/100  Grade: %s\n", r.Total, r.Grade))
	b.WriteString(fmt.Sprintf("Actions taken: %d of %d available\n\n", r.ActionsTaken, r.ActionsAvailable))

	b.WriteString("--- Skill Categories ---\n")
	order := append(rulepack.RuleCategories(), rulepack.CategoryUnknown)
	for _, cat := range order {
		cs, ok := r.Categories[cat]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("%-20s %3d  (%.1f/%.1f)\n",
			categoryTitles[cat], cs.Score, cs.Earned, cs.Possible))
		for _, d := range cs.Details {
			b.WriteString(fmt.Sprintf("    - %s\n", d))
		}
	}
	b.WriteString(fmt.Sprintf("%-20s %3d  (%ds of %ds)\n\n",
		"Stress Behavior", r.Stress.Score, r.Stress.TimeTakenSeconds, r.Stress.TimeLimitSeconds))

	b.WriteString("--- Action Breakdown ---\n")
	for i, ar := range r.Breakdown {
		label := ar.Label
		if label == "" {
			label = ar.ActionID
		}
		mark := "✓"
		if !ar.Known {
			mark = "?"
			label += " (not in scenario)"
		}
		b.WriteString(fmt.Sprintf("%2d. %s %s\n", i+1, mark, label))
		for _, h := range ar.Followed {
			b.WriteString(fmt.Sprintf("      + %.1f  %s\n", h.Points, h.Rule))
		}
		for _, m := range ar.Violated {
			b.WriteString(fmt.Sprintf("      - %.1f  %s\n", m.Penalty, m.Rule))
		}
	}

	if r.Explanation != "" {
		b.WriteString("\n--- Explanation Review ---\n")
		b.WriteString(r.Explanation + "\n")
	}

	return b.String()
}
