package assess

import (
	"fmt"
	"math"

	"crucible/internal/rulepack"
)

const (
	// orderBonusCeiling is the marginal decision_quality credit available
	// for matching the scenario's optimal action order.
	orderBonusCeiling = 3.0

	// criticalSkipWeight is added to risk_awareness possible for every
	// critical action the attempt never takes.
	criticalSkipWeight = 2.0

	// neutralStressScore is reported when no timing signal exists.
	neutralStressScore = 100
)

// accumulator tracks earned vs possible weight for one category during a
// single scoring run. One set is allocated per call and discarded after
// aggregation, so concurrent scoring shares nothing.
type accumulator struct {
	earned   float64
	possible float64
	details  []string
}

// Score runs the full deterministic scoring pass for one attempt: per-action
// rule accounting, the ordering bonus, the critical-action penalty and the
// stress sub-score, aggregated into a report. It never fails; malformed
// input (unknown action IDs, unresolved rules, zero-length optimal order,
// zero time limit) degrades to documented neutral behavior.
func Score(attempt []UserAction, sc Scenario, pack *rulepack.Pack, timeTakenSeconds int) Report {
	accs, breakdown := scoreActions(attempt, sc, pack)
	stress := StressScore{
		Score:            stressScore(timeTakenSeconds, sc.TimeLimitSeconds),
		TimeTakenSeconds: timeTakenSeconds,
		TimeLimitSeconds: sc.TimeLimitSeconds,
	}
	return aggregate(accs, stress, breakdown, len(attempt), len(sc.AvailableActions))
}

// ScoreAttempt is the document-shaped convenience over Score.
func ScoreAttempt(a Attempt, sc Scenario, pack *rulepack.Pack) Report {
	return Score(a.Actions, sc, pack, a.TimeTakenSeconds)
}

// scoreActions walks the attempt in order and fills one accumulator per
// touched category plus the per-action breakdown.
func scoreActions(attempt []UserAction, sc Scenario, pack *rulepack.Pack) (map[rulepack.Category]*accumulator, []ActionResult) {
	accs := make(map[rulepack.Category]*accumulator, 4)
	for _, c := range rulepack.RuleCategories() {
		accs[c] = &accumulator{}
	}
	// Rules that parsed into the unknown bucket still get an accumulator so
	// their weight stays visible instead of silently vanishing.
	get := func(c rulepack.Category) *accumulator {
		if a, ok := accs[c]; ok {
			return a
		}
		a := &accumulator{}
		accs[c] = a
		return a
	}

	available := make(map[string]Action, len(sc.AvailableActions))
	for _, a := range sc.AvailableActions {
		available[a.ID] = a
	}

	breakdown := make([]ActionResult, 0, len(attempt))
	for _, ua := range attempt {
		act, known := available[ua.ActionID]
		res := ActionResult{ActionID: ua.ActionID, Label: act.Label, Known: known}

		// Missing mapping: the action scores neither positively nor
		// negatively, but the breakdown entry still records it was taken.
		if m, ok := sc.RuleMappings[ua.ActionID]; ok {
			for _, id := range m.RulesFollowed {
				r, ok := pack.Lookup(id)
				if !ok {
					// The validator should have filtered this; skip defensively.
					continue
				}
				a := get(r.Category)
				a.earned += r.Weight
				a.possible += r.Weight
				res.Followed = append(res.Followed, RuleHit{Rule: r.Label, Points: r.Weight})
			}
			for _, id := range m.RulesViolated {
				r, ok := pack.Lookup(id)
				if !ok {
					continue
				}
				a := get(r.Category)
				a.possible += r.Weight
				a.details = append(a.details, fmt.Sprintf("Violated %q (-%.1f)", r.Label, r.Weight))
				res.Violated = append(res.Violated, RuleMiss{Rule: r.Label, Penalty: r.Weight})
			}
		}
		breakdown = append(breakdown, res)
	}

	// --- Ordering bonus (decision_quality, once per attempt) ---
	if n := len(sc.OptimalOrder); n > 0 {
		limit := min(len(attempt), n)
		correct := 0
		for i := 0; i < limit; i++ {
			if attempt[i].ActionID == sc.OptimalOrder[i] {
				correct++
			}
		}
		ratio := float64(correct) / float64(n)
		dq := accs[rulepack.DecisionQuality]
		dq.earned += ratio * orderBonusCeiling
		dq.possible += orderBonusCeiling
	}

	// --- Critical-action penalty (risk_awareness) ---
	taken := make(map[string]bool, len(attempt))
	for _, ua := range attempt {
		taken[ua.ActionID] = true
	}
	for _, id := range sc.CriticalActions {
		if taken[id] {
			// Taking a critical action earns nothing by itself; credit
			// comes only through its own rule mappings.
			continue
		}
		label := id
		if a, ok := available[id]; ok && a.Label != "" {
			label = a.Label
		}
		ra := accs[rulepack.RiskAwareness]
		ra.possible += criticalSkipWeight
		ra.details = append(ra.details, fmt.Sprintf("Skipped critical action: %s", label))
	}

	return accs, breakdown
}

// stressScore computes the time-derived sub-score. The ratio only exists
// when both values are positive; otherwise there is no timing signal and
// the score is the fixed neutral value.
func stressScore(timeTakenSeconds, timeLimitSeconds int) int {
	if timeTakenSeconds <= 0 || timeLimitSeconds <= 0 {
		return neutralStressScore
	}
	ratio := float64(timeTakenSeconds) / float64(timeLimitSeconds)
	switch {
	case ratio > 1.5:
		return 30 // badly over time
	case ratio > 1.0:
		return 60 // over time
	case ratio < 0.2:
		return 50 // suspiciously fast, flagged as reckless
	default:
		// Linear decay once past the midpoint of the allotted time.
		return 100 - int(math.Max(0, math.Floor((ratio-0.5)*40)))
	}
}
