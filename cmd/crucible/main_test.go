package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"crucible/internal/assess"
	"crucible/internal/demo"
)

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeJSON(t *testing.T, dir, name string, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal %s: %v", name, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestScoreCommandJSON(t *testing.T) {
	dir := t.TempDir()
	scenarioPath := writeJSON(t, dir, "scenario.json", demo.Scenario())
	attemptPath := writeJSON(t, dir, "attempt.json", demo.Attempts()[0].Attempt)
	outPath := filepath.Join(dir, "report.json")

	_, err := execute(t, "score",
		"--scenario", scenarioPath,
		"--attempt", attemptPath,
		"--domain", demo.Domain,
		"--format", "json",
		"--out", outPath)
	if err != nil {
		t.Fatalf("score: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var report assess.Report
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	if report.Total < 0 || report.Total > 100 {
		t.Errorf("total %d out of bounds", report.Total)
	}
	if report.ActionsTaken != 4 {
		t.Errorf("actions taken = %d, want 4", report.ActionsTaken)
	}
}

func TestScoreCommandWithJudgment(t *testing.T) {
	dir := t.TempDir()
	na := demo.Attempts()[0]
	scenarioPath := writeJSON(t, dir, "scenario.json", demo.Scenario())
	attemptPath := writeJSON(t, dir, "attempt.json", na.Attempt)
	judgmentPath := writeJSON(t, dir, "judgment.json", na.Judgment)

	// Flag values persist across Execute calls, so reset format/out explicitly.
	out, err := execute(t, "score",
		"--scenario", scenarioPath,
		"--attempt", attemptPath,
		"--domain", demo.Domain,
		"--judgment", judgmentPath,
		"--format", "text",
		"--out", "")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if !strings.Contains(out, "Explanation Review") {
		t.Errorf("text report missing explanation section:\n%s", out)
	}
}

func TestRulesCommand(t *testing.T) {
	out, err := execute(t, "rules", "--domain", "law")
	if err != nil {
		t.Fatalf("rules: %v", err)
	}
	for _, want := range []string{"Domain: law", "decision_quality", "LR1", "Skills:"} {
		if !strings.Contains(out, want) {
			t.Errorf("rules output missing %q:\n%s", want, out)
		}
	}
}

func TestDemoCommand(t *testing.T) {
	out, err := execute(t, "demo", "--attempt", "methodical")
	if err != nil {
		t.Fatalf("demo: %v", err)
	}
	if !strings.Contains(out, "methodical") || !strings.Contains(out, "Grade:") {
		t.Errorf("demo output missing report:\n%s", out)
	}
	if strings.Contains(out, "negligent") {
		t.Error("demo --attempt filter did not filter")
	}
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	scenarioPath := writeJSON(t, dir, "scenario.json", demo.Scenario())

	attemptDir := filepath.Join(dir, "attempts")
	if err := os.MkdirAll(attemptDir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, na := range demo.Attempts() {
		writeJSON(t, attemptDir, na.Name+".json", na.Attempt)
	}
	outDir := filepath.Join(dir, "reports")

	out, err := execute(t, "batch",
		"--scenario", scenarioPath,
		"--attempt-dir", attemptDir,
		"--domain", demo.Domain,
		"--workers", "2",
		"--out-dir", outDir)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	if !strings.Contains(out, "3 attempts scored, 0 failed") {
		t.Errorf("unexpected batch summary:\n%s", out)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Errorf("wrote %d reports, want 3", len(entries))
	}
}

func TestScoreCommandUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	scenarioPath := writeJSON(t, dir, "scenario.json", demo.Scenario())
	attemptPath := writeJSON(t, dir, "attempt.json", demo.Attempts()[0].Attempt)

	if _, err := execute(t, "score",
		"--scenario", scenarioPath,
		"--attempt", attemptPath,
		"--judgment", "",
		"--format", "xml"); err == nil {
		t.Fatal("unknown format accepted")
	}
}
