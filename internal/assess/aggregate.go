package assess

import (
	"math"

	"crucible/internal/rulepack"
)

const (
	// neutralCategoryScore is reported for a category the scenario never
	// exercised (possible == 0), so an untested skill is not penalized.
	neutralCategoryScore = 75

	// noRulesDetail marks a neutral-defaulted category in its details.
	noRulesDetail = "No rules tested"

	// stressWeight is stress_behavior's share of the total. Together with
	// categoryWeights it sums to 1.0.
	stressWeight = 0.10
)

// categoryWeights is the fixed weight table for the total score. Rules that
// fell into the unknown bucket carry no weight here; their category is
// reported for audit but cannot move the total.
var categoryWeights = map[rulepack.Category]float64{
	rulepack.DecisionQuality:  0.30,
	rulepack.RiskAwareness:    0.25,
	rulepack.EthicalReasoning: 0.25,
	rulepack.Communication:    0.10,
}

// aggregate converts the transient accumulators into the final report:
// 0–100 category scores, the weighted total and the letter grade.
func aggregate(accs map[rulepack.Category]*accumulator, stress StressScore, breakdown []ActionResult, actionsTaken, actionsAvailable int) Report {
	categories := make(map[rulepack.Category]CategoryScore, len(accs))
	for cat, acc := range accs {
		if cat == rulepack.CategoryUnknown && acc.possible == 0 {
			// The unknown bucket only appears when something landed in it.
			continue
		}
		categories[cat] = categoryScore(acc)
	}

	weighted := 0.0
	for cat, w := range categoryWeights {
		weighted += w * float64(categories[cat].Score)
	}
	weighted += stressWeight * float64(stress.Score)
	total := int(math.Round(math.Min(100, weighted)))

	return Report{
		Categories:       categories,
		Stress:           stress,
		Total:            total,
		Grade:            gradeFor(total),
		Breakdown:        breakdown,
		ActionsTaken:     actionsTaken,
		ActionsAvailable: actionsAvailable,
	}
}

func categoryScore(acc *accumulator) CategoryScore {
	cs := CategoryScore{
		Earned:   acc.earned,
		Possible: acc.possible,
		Details:  acc.details,
	}
	if acc.possible > 0 {
		cs.Score = int(math.Round(math.Min(100, acc.earned/acc.possible*100)))
		return cs
	}
	cs.Score = neutralCategoryScore
	cs.Details = append(cs.Details, noRulesDetail)
	return cs
}

// gradeFor maps a total score onto its letter band. Thresholds are
// inclusive lower bounds, evaluated top-down.
func gradeFor(total int) Grade {
	switch {
	case total >= 85:
		return GradeA
	case total >= 70:
		return GradeB
	case total >= 55:
		return GradeC
	case total >= 40:
		return GradeD
	default:
		return GradeF
	}
}
