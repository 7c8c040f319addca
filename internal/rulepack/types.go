// Package rulepack defines the layered scoring-rule sets used by the
// assessment engine. A pack is the union of a universal core layer and one
// domain layer (technology, business, law); rules are immutable once loaded
// and identified by their ID.
package rulepack

import "strings"

// Category is the skill dimension a rule contributes weight to.
type Category string

const (
	DecisionQuality  Category = "decision_quality"
	RiskAwareness    Category = "risk_awareness"
	Communication    Category = "communication"
	EthicalReasoning Category = "ethical_reasoning"

	// CategoryUnknown buckets rules whose category string matches none of
	// the known dimensions, so malformed external data cannot invent a
	// category the aggregator's weight table does not account for.
	CategoryUnknown Category = "unknown"
)

// RuleCategories lists the four rule-weighted dimensions in display order.
// The fifth report dimension, stress_behavior, is time-derived and carries
// no rules, so it does not appear here.
func RuleCategories() []Category {
	return []Category{DecisionQuality, RiskAwareness, Communication, EthicalReasoning}
}

// ParseCategory maps a free-form category string onto the closed enum.
// Anything unrecognized lands in CategoryUnknown.
func ParseCategory(s string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case DecisionQuality:
		return DecisionQuality
	case RiskAwareness:
		return RiskAwareness
	case Communication:
		return Communication
	case EthicalReasoning:
		return EthicalReasoning
	}
	return CategoryUnknown
}

// Rule is one weighted scoring rule. Identity is the ID; a rule belongs to
// exactly one category.
type Rule struct {
	ID       string   `json:"id" yaml:"id"`
	Label    string   `json:"label" yaml:"label"`
	Category Category `json:"category" yaml:"category"`
	Weight   float64  `json:"weight" yaml:"weight"`
}

// Pack is the merged core + domain rule set active for one scoring run.
// The two layers are kept distinct so a cross-layer ID collision can be
// rejected at load time instead of silently resolving last-write-wins.
type Pack struct {
	domain string
	core   []Rule
	extra  []Rule
	skills []string
	index  map[string]Rule
}

// Domain returns the domain name this pack was loaded for. A pack built
// from core rules only (unknown domain) reports the requested name.
func (p *Pack) Domain() string { return p.domain }

// Lookup resolves a rule by ID across both layers.
func (p *Pack) Lookup(id string) (Rule, bool) {
	r, ok := p.index[id]
	return r, ok
}

// Len returns the total number of rules across both layers.
func (p *Pack) Len() int { return len(p.index) }

// Rules returns all rules, core layer first, in load order.
func (p *Pack) Rules() []Rule {
	out := make([]Rule, 0, len(p.core)+len(p.extra))
	out = append(out, p.core...)
	out = append(out, p.extra...)
	return out
}

// SkillNames returns the human-readable skill names declared by the domain
// layer. The scorer never reads these; they ride along for the surrounding
// system.
func (p *Pack) SkillNames() []string { return p.skills }
