package rulepack

// Embedded rule-set documents. These are the compiled-in equivalents of the
// core.yaml / <domain>.yaml documents a DirSource would read; the generator
// that produces scenarios is bounded to reference only these IDs.

// coreDoc returns the universal rule layer shared by every domain.
func coreDoc() Document {
	return Document{
		Domain: "core",
		Rules: []Rule{
			{ID: "CR1", Label: "Verify facts before acting", Category: DecisionQuality, Weight: 2.0},
			{ID: "CR2", Label: "Prioritize by impact and urgency", Category: DecisionQuality, Weight: 2.5},
			{ID: "CR3", Label: "Identify risks before executing", Category: RiskAwareness, Weight: 2.5},
			{ID: "CR4", Label: "Prepare a fallback before irreversible steps", Category: RiskAwareness, Weight: 2.0},
			{ID: "CR5", Label: "Notify affected stakeholders early", Category: Communication, Weight: 2.0},
			{ID: "CR6", Label: "Document decisions as they are made", Category: Communication, Weight: 1.5},
			{ID: "CR7", Label: "Weigh harm to people over convenience", Category: EthicalReasoning, Weight: 3.0},
			{ID: "CR8", Label: "Escalate conflicts of interest instead of hiding them", Category: EthicalReasoning, Weight: 2.0},
		},
	}
}

// domainDocs returns the per-domain rule layers keyed by domain name.
func domainDocs() map[string]Document {
	return map[string]Document{
		"technology": {
			Domain: "technology",
			Skills: []string{
				"Incident response",
				"Root cause analysis",
				"Change management",
				"Stakeholder communication",
				"Risk triage",
			},
			Rules: []Rule{
				{ID: "TR1", Label: "Reproduce the failure before patching", Category: DecisionQuality, Weight: 2.0},
				{ID: "TR2", Label: "Check monitoring and logs before guessing", Category: DecisionQuality, Weight: 2.0},
				{ID: "TR3", Label: "Never deploy untested changes to production", Category: RiskAwareness, Weight: 3.0},
				{ID: "TR4", Label: "Snapshot state before destructive operations", Category: RiskAwareness, Weight: 2.5},
				{ID: "TR5", Label: "Keep the incident channel updated", Category: Communication, Weight: 2.0},
				{ID: "TR6", Label: "Disclose data exposure to affected users", Category: EthicalReasoning, Weight: 3.0},
			},
		},
		"business": {
			Domain: "business",
			Skills: []string{
				"Negotiation under pressure",
				"Budget trade-off analysis",
				"Team communication",
				"Conflict resolution",
				"Strategic prioritization",
			},
			Rules: []Rule{
				{ID: "BR1", Label: "Quantify the trade-off before committing budget", Category: DecisionQuality, Weight: 2.5},
				{ID: "BR2", Label: "Consult the people the decision affects", Category: Communication, Weight: 2.0},
				{ID: "BR3", Label: "Model the downside scenario, not just the upside", Category: RiskAwareness, Weight: 2.5},
				{ID: "BR4", Label: "Keep commitments made to partners", Category: EthicalReasoning, Weight: 2.5},
				{ID: "BR5", Label: "Separate the person from the position in conflicts", Category: Communication, Weight: 1.5},
				{ID: "BR6", Label: "Refuse misleading framing of results", Category: EthicalReasoning, Weight: 3.0},
			},
		},
		"law": {
			Domain: "law",
			Skills: []string{
				"Case analysis",
				"Client counseling",
				"Negotiation strategy",
				"Professional responsibility",
				"Risk assessment",
			},
			Rules: []Rule{
				{ID: "LR1", Label: "Read the controlling documents before advising", Category: DecisionQuality, Weight: 2.5},
				{ID: "LR2", Label: "Preserve privilege in all communications", Category: RiskAwareness, Weight: 3.0},
				{ID: "LR3", Label: "Keep the client informed of material developments", Category: Communication, Weight: 2.0},
				{ID: "LR4", Label: "Decline conflicted representation", Category: EthicalReasoning, Weight: 3.0},
				{ID: "LR5", Label: "Flag limitation periods before strategy talk", Category: DecisionQuality, Weight: 2.0},
				{ID: "LR6", Label: "Never counsel evidence destruction", Category: EthicalReasoning, Weight: 3.0},
			},
		},
	}
}

// EmbeddedDomains lists the domain names the embedded source can serve,
// in stable order.
func EmbeddedDomains() []string {
	return []string{"technology", "business", "law"}
}
