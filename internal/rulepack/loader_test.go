package rulepack

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadEmbeddedDomains(t *testing.T) {
	l := NewLoader(nil)
	for _, domain := range EmbeddedDomains() {
		pack, err := l.Load(domain)
		if err != nil {
			t.Fatalf("Load(%s): %v", domain, err)
		}
		if pack.Len() <= len(coreDoc().Rules) {
			t.Errorf("%s pack has %d rules, expected core (%d) plus domain rules",
				domain, pack.Len(), len(coreDoc().Rules))
		}
		if len(pack.SkillNames()) == 0 {
			t.Errorf("%s pack has no skill names", domain)
		}
	}
}

func TestLoadUnknownDomainIsCoreOnly(t *testing.T) {
	l := NewLoader(nil)
	pack, err := l.Load("astrology")
	if err != nil {
		t.Fatalf("Load(astrology): %v", err)
	}
	if pack.Len() != len(coreDoc().Rules) {
		t.Errorf("unknown domain pack has %d rules, want core-only %d",
			pack.Len(), len(coreDoc().Rules))
	}
	if pack.Domain() != "astrology" {
		t.Errorf("Domain() = %q, want requested name", pack.Domain())
	}
}

func TestLoadIsCachedAndIdempotent(t *testing.T) {
	l := NewLoader(nil)
	a, err := l.Load("technology")
	if err != nil {
		t.Fatalf("first Load: %v", err)
	}
	b, err := l.Load("technology")
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if a != b {
		t.Error("second Load returned a different pack instance; cache miss")
	}
}

// countingSource counts Core() calls so concurrent population can be verified
// to collapse to a single build per domain.
type countingSource struct {
	mu    sync.Mutex
	cores int
}

func (c *countingSource) Core() (Document, error) {
	c.mu.Lock()
	c.cores++
	c.mu.Unlock()
	return coreDoc(), nil
}

func (c *countingSource) Domain(name string) (Document, bool, error) {
	doc, ok := domainDocs()[name]
	return doc, ok, nil
}

func TestLoadConcurrentFirstPopulation(t *testing.T) {
	src := &countingSource{}
	l := NewLoader(src)

	var wg sync.WaitGroup
	packs := make([]*Pack, 16)
	for i := range packs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := l.Load("law")
			if err != nil {
				t.Errorf("Load: %v", err)
				return
			}
			packs[i] = p
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(packs); i++ {
		if packs[i] != packs[0] {
			t.Fatal("concurrent loads returned distinct pack instances")
		}
	}
	if src.cores != 1 {
		t.Errorf("backing store read %d times, want 1", src.cores)
	}
}

func TestMergeRejectsCrossLayerCollision(t *testing.T) {
	core := Document{Rules: []Rule{{ID: "X1", Label: "core rule", Category: DecisionQuality, Weight: 1.0}}}
	extra := Document{Rules: []Rule{{ID: "X1", Label: "domain rule", Category: Communication, Weight: 2.0}}}

	_, err := Merge("technology", core, extra)
	if !errors.Is(err, ErrRuleCollision) {
		t.Fatalf("Merge err = %v, want ErrRuleCollision", err)
	}
}

func TestMergeRejectsBadWeightAndEmptyID(t *testing.T) {
	if _, err := Merge("d", Document{Rules: []Rule{{ID: "X1", Weight: 0}}}, Document{}); err == nil {
		t.Error("zero weight accepted")
	}
	if _, err := Merge("d", Document{Rules: []Rule{{ID: "X1", Weight: -1}}}, Document{}); err == nil {
		t.Error("negative weight accepted")
	}
	if _, err := Merge("d", Document{Rules: []Rule{{Label: "anon", Weight: 1}}}, Document{}); err == nil {
		t.Error("empty id accepted")
	}
}

func TestMergeNormalizesUnknownCategory(t *testing.T) {
	core := Document{Rules: []Rule{{ID: "X1", Label: "odd", Category: "bravery", Weight: 1.0}}}
	pack, err := Merge("d", core, Document{})
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	r, _ := pack.Lookup("X1")
	if r.Category != CategoryUnknown {
		t.Errorf("category = %q, want unknown bucket", r.Category)
	}
}

func TestParseDocument(t *testing.T) {
	yamlDoc := []byte("domain: technology\nskills:\n  - Triage\nrules:\n  - id: TR9\n    label: Sample\n    category: risk_awareness\n    weight: 1.5\n")
	jsonDoc := []byte(`{"domain":"technology","skills":["Triage"],"rules":[{"id":"TR9","label":"Sample","category":"risk_awareness","weight":1.5}]}`)

	want := Document{
		Domain: "technology",
		Skills: []string{"Triage"},
		Rules:  []Rule{{ID: "TR9", Label: "Sample", Category: RiskAwareness, Weight: 1.5}},
	}

	tests := []struct {
		name string
		data []byte
		ext  string
	}{
		{"yaml by ext", yamlDoc, ".yaml"},
		{"yml alias", yamlDoc, ".yml"},
		{"json by ext", jsonDoc, ".json"},
		{"json sniffed", jsonDoc, ""},
		{"yaml sniffed", yamlDoc, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDocument(tt.data, tt.ext)
			if err != nil {
				t.Fatalf("ParseDocument: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("document mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := ParseDocument(yamlDoc, ".toml"); err == nil {
		t.Error("unsupported format accepted")
	}
}

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	core := "domain: core\nrules:\n  - id: CX1\n    label: Core rule\n    category: decision_quality\n    weight: 2.0\n"
	tech := `{"domain":"technology","rules":[{"id":"TX1","label":"Tech rule","category":"communication","weight":1.0}]}`
	if err := os.WriteFile(filepath.Join(dir, "core.yaml"), []byte(core), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "technology.json"), []byte(tech), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader(DirSource{Dir: dir})

	pack, err := l.Load("technology")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if pack.Len() != 2 {
		t.Errorf("pack has %d rules, want 2", pack.Len())
	}
	if _, ok := pack.Lookup("TX1"); !ok {
		t.Error("domain rule TX1 missing from merged pack")
	}

	// Unknown domain still loads as core-only.
	pack, err = l.Load("finance")
	if err != nil {
		t.Fatalf("Load(finance): %v", err)
	}
	if pack.Len() != 1 {
		t.Errorf("core-only pack has %d rules, want 1", pack.Len())
	}
}

func TestDirSourceMissingCore(t *testing.T) {
	l := NewLoader(DirSource{Dir: t.TempDir()})
	if _, err := l.Load("technology"); err == nil {
		t.Fatal("missing core document did not surface an error")
	}
}
