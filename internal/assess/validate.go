package assess

import "crucible/internal/rulepack"

// ValidateScenario returns a copy of the scenario whose rule mappings only
// reference rule IDs present in the active pack. Unknown IDs are silently
// dropped, not rejected: the external generator is allowed to hallucinate
// plausible-looking IDs, and scoring correctness depends only on what
// survives the filter. The input scenario is never mutated.
func ValidateScenario(sc Scenario, pack *rulepack.Pack) Scenario {
	out := sc
	out.RuleMappings = make(map[string]RuleMapping, len(sc.RuleMappings))
	for actionID, m := range sc.RuleMappings {
		out.RuleMappings[actionID] = RuleMapping{
			RulesFollowed: keepKnown(m.RulesFollowed, pack),
			RulesViolated: keepKnown(m.RulesViolated, pack),
		}
	}
	return out
}

func keepKnown(ids []string, pack *rulepack.Pack) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := pack.Lookup(id); ok {
			out = append(out, id)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
