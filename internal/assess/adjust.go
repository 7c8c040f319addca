package assess

import "math"

// Adjust applies the bounded explanation correction to a finished report and
// returns the adjusted copy. The three judgment dimensions are clamped to
// [0,100], so the correction is capped to ±10 points by construction; the
// grade is recomputed from the new total and the judge's feedback becomes
// the report's explanation. Category scores are never touched, and the
// input report is not mutated.
func Adjust(r Report, j Judgment) Report {
	avg := float64(clampDim(j.LogicalCoherence)+clampDim(j.SelfAwareness)+clampDim(j.EthicalConsideration)) / 3.0
	adjustment := (avg - 50.0) / 5.0

	total := int(math.Round(float64(r.Total) + adjustment))
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}

	out := r
	out.Total = total
	out.Grade = gradeFor(total)
	out.Explanation = j.Feedback
	return out
}

func clampDim(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
