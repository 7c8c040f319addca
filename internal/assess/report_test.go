package assess

import (
	"strings"
	"testing"
)

func TestFormatReport(t *testing.T) {
	pack := singleRulePack(t)
	sc := singleActionScenario()

	r := Score([]UserAction{{ActionID: "a1"}, {ActionID: "ghost"}}, sc, pack, 50)
	r = Adjust(r, Judgment{LogicalCoherence: 80, SelfAwareness: 80, EthicalConsideration: 80, Feedback: "Reasoning was coherent."})

	out := FormatReport(&r)

	for _, want := range []string{
		"Crucible Score Report",
		"Grade:",
		"Decision Quality",
		"Risk Awareness",
		"No rules tested",
		"Stress Behavior",
		"Check the monitoring dashboard",
		"ghost (not in scenario)",
		"Explanation Review",
		"Reasoning was coherent.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestFormatReportNoExplanationSection(t *testing.T) {
	pack := singleRulePack(t)
	sc := singleActionScenario()

	r := Score([]UserAction{{ActionID: "a1"}}, sc, pack, 50)

	if strings.Contains(FormatReport(&r), "Explanation Review") {
		t.Error("unadjusted report should not have an explanation section")
	}
}
