// Package assess implements the deterministic scoring engine for
// scenario-based skill assessment. Given a validated scenario, the active
// rule pack and one attempt (the candidate's ordered actions plus elapsed
// time), it produces a reproducible score report; an optional second pass
// applies a bounded correction from an externally judged explanation.
//
// The engine is pure: it performs no I/O, holds no shared state, and never
// fails a scoring run — malformed input degrades to documented neutral
// behavior recorded in the report's details and breakdown.
package assess

import "crucible/internal/rulepack"

// ActionCategory classifies what kind of move a scenario action is. The
// scorer does not branch on it; it is scenario metadata surfaced to callers.
type ActionCategory string

const (
	ActionInvestigate ActionCategory = "investigate"
	ActionCommunicate ActionCategory = "communicate"
	ActionExecute     ActionCategory = "execute"
	ActionEscalate    ActionCategory = "escalate"
	ActionDefer       ActionCategory = "defer"
)

// RiskLevel grades how dangerous an action is if taken carelessly.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Action is one scenario-defined move available to the candidate.
type Action struct {
	ID                string         `json:"id" yaml:"id"`
	Label             string         `json:"label" yaml:"label"`
	Category          ActionCategory `json:"category" yaml:"category"`
	RiskLevel         RiskLevel      `json:"risk_level" yaml:"risk_level"`
	HiddenConsequence string         `json:"hidden_consequence,omitempty" yaml:"hidden_consequence,omitempty"`
}

// RuleMapping ties one action to the rule IDs it follows and violates.
type RuleMapping struct {
	RulesFollowed []string `json:"rules_followed,omitempty" yaml:"rules_followed,omitempty"`
	RulesViolated []string `json:"rules_violated,omitempty" yaml:"rules_violated,omitempty"`
}

// Scenario is one generated decision situation. It arrives from an external
// generator and must pass through ValidateScenario before scoring so the
// engine never scores against a rule ID outside the active pack.
type Scenario struct {
	Context          string                 `json:"context" yaml:"context"`
	Urgency          string                 `json:"urgency" yaml:"urgency"`
	TimeLimitSeconds int                    `json:"time_limit_seconds" yaml:"time_limit_seconds"`
	AvailableActions []Action               `json:"available_actions" yaml:"available_actions"`
	OptimalOrder     []string               `json:"optimal_order" yaml:"optimal_order"`
	CriticalActions  []string               `json:"critical_actions,omitempty" yaml:"critical_actions,omitempty"`
	RuleMappings     map[string]RuleMapping `json:"rule_mappings" yaml:"rule_mappings"`
}

// UserAction is one played move within an attempt. The engine does not
// deduplicate repeated action IDs; callers decide whether repeats are legal.
type UserAction struct {
	ActionID   string `json:"action_id" yaml:"action_id"`
	OrderIndex int    `json:"order_index" yaml:"order_index"`
}

// Attempt is the document shape one scoring request arrives in: the ordered
// action sequence plus elapsed time.
type Attempt struct {
	Actions          []UserAction `json:"actions" yaml:"actions"`
	TimeTakenSeconds int          `json:"time_taken_seconds" yaml:"time_taken_seconds"`
}

// Judgment carries the three externally judged 0–100 explanation dimensions.
// The engine clamps each dimension and applies a fixed adjustment formula;
// it never performs the qualitative judgment itself.
type Judgment struct {
	LogicalCoherence     int    `json:"logical_coherence" yaml:"logical_coherence"`
	SelfAwareness        int    `json:"self_awareness" yaml:"self_awareness"`
	EthicalConsideration int    `json:"ethical_consideration" yaml:"ethical_consideration"`
	Feedback             string `json:"feedback,omitempty" yaml:"feedback,omitempty"`
}

// RuleHit records one followed rule on one action.
type RuleHit struct {
	Rule   string  `json:"rule"`
	Points float64 `json:"points"`
}

// RuleMiss records one violated rule on one action.
type RuleMiss struct {
	Rule    string  `json:"rule"`
	Penalty float64 `json:"penalty"`
}

// ActionResult is the per-action entry in the report breakdown. Known is
// false when the played ID does not exist in the scenario's available
// actions; such actions contribute nothing but stay visible for audit.
type ActionResult struct {
	ActionID string     `json:"action_id"`
	Label    string     `json:"label,omitempty"`
	Known    bool       `json:"known"`
	Followed []RuleHit  `json:"followed,omitempty"`
	Violated []RuleMiss `json:"violated,omitempty"`
}

// CategoryScore is the aggregated outcome for one rule category.
type CategoryScore struct {
	Score    int      `json:"score"`
	Earned   float64  `json:"earned"`
	Possible float64  `json:"possible"`
	Details  []string `json:"details,omitempty"`
}

// StressScore is the time-derived fifth dimension. It never participates in
// earned/possible accounting.
type StressScore struct {
	Score            int `json:"score"`
	TimeTakenSeconds int `json:"time_taken_seconds"`
	TimeLimitSeconds int `json:"time_limit_seconds"`
}

// Grade is the letter band derived from the total score.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Report is the full outcome of one scoring run. It is produced fresh per
// attempt and treated as immutable once returned; Adjust returns a new
// value rather than mutating.
type Report struct {
	Categories       map[rulepack.Category]CategoryScore `json:"categories"`
	Stress           StressScore                         `json:"stress_behavior"`
	Total            int                                 `json:"total"`
	Grade            Grade                               `json:"grade"`
	Breakdown        []ActionResult                      `json:"breakdown"`
	ActionsTaken     int                                 `json:"actions_taken"`
	ActionsAvailable int                                 `json:"actions_available"`
	Explanation      string                              `json:"explanation,omitempty"`
}
