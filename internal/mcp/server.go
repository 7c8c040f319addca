// Package mcp exposes the assessment engine over the Model Context Protocol
// so agent hosts can load rule packs and score attempts as tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"crucible/internal/assess"
	"crucible/internal/logging"
	"crucible/internal/rulepack"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP SDK server around a shared rule-pack loader. All
// tools are stateless beyond the loader's cache, so one server can score
// concurrent attempts safely.
type Server struct {
	MCPServer *sdkmcp.Server
	loader    *rulepack.Loader
}

// NewServer creates an MCP server with the engine tools registered. A nil
// loader means the embedded rule packs.
func NewServer(loader *rulepack.Loader) *Server {
	if loader == nil {
		loader = rulepack.NewLoader(nil)
	}
	s := &Server{loader: loader}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "crucible", Version: "dev"},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_domains",
		Description: "List the embedded rule-pack domains.",
	}, s.handleListDomains)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "get_rulepack",
		Description: "Get the merged core + domain rule set for a domain, including its skill names. The scenario generator must only reference these rule IDs.",
	}, s.handleGetRulePack)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "score_attempt",
		Description: "Score one attempt against a scenario: validates the scenario against the domain rule pack, runs the deterministic scorer, and optionally applies the explanation judgment.",
	}, s.handleScoreAttempt)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "adjust_report",
		Description: "Apply an explanation judgment to a previously produced score report, returning the adjusted report. The correction is bounded to ±10 points.",
	}, s.handleAdjustReport)
}

// --- Tool input/output types ---

type listDomainsInput struct{}

type listDomainsOutput struct {
	Domains []string `json:"domains"`
}

type getRulePackInput struct {
	Domain string `json:"domain" jsonschema:"rule-pack domain (technology, business, law); unknown domains yield core rules only"`
}

type getRulePackOutput struct {
	Domain     string          `json:"domain"`
	Rules      []rulepack.Rule `json:"rules"`
	SkillNames []string        `json:"skill_names,omitempty"`
}

type scoreAttemptInput struct {
	Domain       string `json:"domain" jsonschema:"rule-pack domain to score against"`
	ScenarioJSON string `json:"scenario_json" jsonschema:"scenario document as a JSON string"`
	AttemptJSON  string `json:"attempt_json" jsonschema:"attempt document as a JSON string: {actions:[{action_id,order_index}],time_taken_seconds}"`
	JudgmentJSON string `json:"judgment_json,omitempty" jsonschema:"optional explanation judgment as a JSON string; when present the adjusted report is returned"`
}

type scoreAttemptOutput struct {
	Total  int           `json:"total"`
	Grade  assess.Grade  `json:"grade"`
	Report assess.Report `json:"report"`
}

type adjustReportInput struct {
	ReportJSON   string `json:"report_json" jsonschema:"score report as returned by score_attempt, as a JSON string"`
	JudgmentJSON string `json:"judgment_json" jsonschema:"explanation judgment as a JSON string: {logical_coherence,self_awareness,ethical_consideration,feedback}"`
}

type adjustReportOutput struct {
	Total  int           `json:"total"`
	Grade  assess.Grade  `json:"grade"`
	Report assess.Report `json:"report"`
}

// --- Handlers ---

func (s *Server) handleListDomains(ctx context.Context, _ *sdkmcp.CallToolRequest, _ listDomainsInput) (*sdkmcp.CallToolResult, listDomainsOutput, error) {
	return nil, listDomainsOutput{Domains: rulepack.EmbeddedDomains()}, nil
}

func (s *Server) handleGetRulePack(ctx context.Context, _ *sdkmcp.CallToolRequest, input getRulePackInput) (*sdkmcp.CallToolResult, getRulePackOutput, error) {
	pack, err := s.loader.Load(input.Domain)
	if err != nil {
		return nil, getRulePackOutput{}, err
	}
	return nil, getRulePackOutput{
		Domain:     pack.Domain(),
		Rules:      pack.Rules(),
		SkillNames: pack.SkillNames(),
	}, nil
}

func (s *Server) handleScoreAttempt(ctx context.Context, _ *sdkmcp.CallToolRequest, input scoreAttemptInput) (*sdkmcp.CallToolResult, scoreAttemptOutput, error) {
	logger := logging.New("mcp-score")

	pack, err := s.loader.Load(input.Domain)
	if err != nil {
		return nil, scoreAttemptOutput{}, fmt.Errorf("load rule pack: %w", err)
	}

	var sc assess.Scenario
	if err := json.Unmarshal([]byte(input.ScenarioJSON), &sc); err != nil {
		return nil, scoreAttemptOutput{}, fmt.Errorf("scenario_json is not a valid scenario: %w", err)
	}
	var attempt assess.Attempt
	if err := json.Unmarshal([]byte(input.AttemptJSON), &attempt); err != nil {
		return nil, scoreAttemptOutput{}, fmt.Errorf("attempt_json is not a valid attempt: %w", err)
	}

	sc = assess.ValidateScenario(sc, pack)
	report := assess.ScoreAttempt(attempt, sc, pack)

	if input.JudgmentJSON != "" {
		var j assess.Judgment
		if err := json.Unmarshal([]byte(input.JudgmentJSON), &j); err != nil {
			return nil, scoreAttemptOutput{}, fmt.Errorf("judgment_json is not a valid judgment: %w", err)
		}
		report = assess.Adjust(report, j)
	}

	logger.Info("scored attempt",
		"domain", pack.Domain(),
		"actions", report.ActionsTaken,
		"total", report.Total,
		"grade", report.Grade)

	return nil, scoreAttemptOutput{Total: report.Total, Grade: report.Grade, Report: report}, nil
}

func (s *Server) handleAdjustReport(ctx context.Context, _ *sdkmcp.CallToolRequest, input adjustReportInput) (*sdkmcp.CallToolResult, adjustReportOutput, error) {
	var report assess.Report
	if err := json.Unmarshal([]byte(input.ReportJSON), &report); err != nil {
		return nil, adjustReportOutput{}, fmt.Errorf("report_json is not a valid report: %w", err)
	}
	var j assess.Judgment
	if err := json.Unmarshal([]byte(input.JudgmentJSON), &j); err != nil {
		return nil, adjustReportOutput{}, fmt.Errorf("judgment_json is not a valid judgment: %w", err)
	}

	adjusted := assess.Adjust(report, j)
	return nil, adjustReportOutput{Total: adjusted.Total, Grade: adjusted.Grade, Report: adjusted}, nil
}
