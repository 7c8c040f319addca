// Package demo provides an embedded sample scenario with scripted attempts,
// used by the demo command and as a realistic fixture in tests. The scenario
// references only rule IDs from the embedded technology pack.
package demo

import "crucible/internal/assess"

// Domain is the rule-pack domain the sample scenario is scored against.
const Domain = "technology"

// Scenario returns the "payment outage" sample: a production incident with
// seven available actions, a four-step optimal order and two critical
// actions.
func Scenario() assess.Scenario {
	return assess.Scenario{
		Context: "The payment service is returning 500s for 40% of checkout requests. " +
			"A deploy went out 20 minutes ago. Customer complaints are spiking and " +
			"the on-call channel is silent.",
		Urgency:          "high",
		TimeLimitSeconds: 600,
		AvailableActions: []assess.Action{
			{ID: "check_dashboards", Label: "Check error dashboards and recent deploy markers",
				Category: assess.ActionInvestigate, RiskLevel: assess.RiskLow},
			{ID: "announce_incident", Label: "Open an incident and announce it in the status channel",
				Category: assess.ActionCommunicate, RiskLevel: assess.RiskLow},
			{ID: "rollback_deploy", Label: "Roll back the 20-minute-old deploy",
				Category: assess.ActionExecute, RiskLevel: assess.RiskMedium,
				HiddenConsequence: "The deploy included a schema migration; naive rollback corrupts in-flight orders."},
			{ID: "snapshot_db", Label: "Snapshot the orders database before any rollback",
				Category: assess.ActionExecute, RiskLevel: assess.RiskLow},
			{ID: "restart_everything", Label: "Restart all payment pods immediately",
				Category: assess.ActionExecute, RiskLevel: assess.RiskHigh,
				HiddenConsequence: "Restarts mask the error pattern and destroy the evidence in memory."},
			{ID: "silence_alerts", Label: "Silence the paging alerts until the noise dies down",
				Category: assess.ActionDefer, RiskLevel: assess.RiskHigh,
				HiddenConsequence: "Alerts for an unrelated storage failure get silenced with them."},
			{ID: "notify_support", Label: "Brief the support team on what customers should be told",
				Category: assess.ActionCommunicate, RiskLevel: assess.RiskLow},
		},
		OptimalOrder:    []string{"check_dashboards", "announce_incident", "snapshot_db", "rollback_deploy"},
		CriticalActions: []string{"announce_incident", "snapshot_db"},
		RuleMappings: map[string]assess.RuleMapping{
			"check_dashboards":   {RulesFollowed: []string{"CR1", "TR2"}},
			"announce_incident":  {RulesFollowed: []string{"CR5", "TR5"}},
			"snapshot_db":        {RulesFollowed: []string{"CR4", "TR4"}},
			"rollback_deploy":    {RulesFollowed: []string{"CR2"}},
			"restart_everything": {RulesViolated: []string{"CR1", "TR1"}},
			"silence_alerts":     {RulesViolated: []string{"CR5", "CR7"}},
			"notify_support":     {RulesFollowed: []string{"CR5", "CR6"}},
		},
	}
}

// NamedAttempt pairs a scripted attempt with a short description for the
// demo output.
type NamedAttempt struct {
	Name        string
	Description string
	Attempt     assess.Attempt
	Judgment    assess.Judgment
}

// Attempts returns three scripted plays of the sample scenario: a strong
// run, a rushed run and a negligent one.
func Attempts() []NamedAttempt {
	return []NamedAttempt{
		{
			Name:        "methodical",
			Description: "Investigates, communicates, protects state, then rolls back",
			Attempt: assess.Attempt{
				Actions: []assess.UserAction{
					{ActionID: "check_dashboards", OrderIndex: 0},
					{ActionID: "announce_incident", OrderIndex: 1},
					{ActionID: "snapshot_db", OrderIndex: 2},
					{ActionID: "rollback_deploy", OrderIndex: 3},
				},
				TimeTakenSeconds: 420,
			},
			Judgment: assess.Judgment{
				LogicalCoherence: 90, SelfAwareness: 80, EthicalConsideration: 85,
				Feedback: "Explains the rollback risk and why the snapshot had to come first.",
			},
		},
		{
			Name:        "rushed",
			Description: "Rolls back instantly without protecting state or telling anyone",
			Attempt: assess.Attempt{
				Actions: []assess.UserAction{
					{ActionID: "rollback_deploy", OrderIndex: 0},
					{ActionID: "check_dashboards", OrderIndex: 1},
				},
				TimeTakenSeconds: 70,
			},
			Judgment: assess.Judgment{
				LogicalCoherence: 55, SelfAwareness: 40, EthicalConsideration: 60,
				Feedback: "Recognizes the gamble only in hindsight; no mention of the skipped snapshot.",
			},
		},
		{
			Name:        "negligent",
			Description: "Silences alerts and restarts pods, destroying the evidence",
			Attempt: assess.Attempt{
				Actions: []assess.UserAction{
					{ActionID: "silence_alerts", OrderIndex: 0},
					{ActionID: "restart_everything", OrderIndex: 1},
				},
				TimeTakenSeconds: 900,
			},
			Judgment: assess.Judgment{
				LogicalCoherence: 30, SelfAwareness: 20, EthicalConsideration: 25,
				Feedback: "No awareness that silencing alerts hid a second failure.",
			},
		},
	}
}
