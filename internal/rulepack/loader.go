package rulepack

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
	yaml "gopkg.in/yaml.v3"
)

// Document is the on-disk shape of one rule-set layer: a list of rules plus
// the human-readable skill names for that domain.
type Document struct {
	Domain string   `json:"domain" yaml:"domain"`
	Skills []string `json:"skills,omitempty" yaml:"skills,omitempty"`
	Rules  []Rule   `json:"rules" yaml:"rules"`
}

// Source supplies raw rule-set documents by domain name.
type Source interface {
	// Core returns the universal rule layer.
	Core() (Document, error)
	// Domain returns the named domain layer. found == false means the
	// domain is unknown to this source, which is not an error: the loader
	// falls back to a core-only pack.
	Domain(name string) (doc Document, found bool, err error)
}

// ErrRuleCollision is wrapped by Load when a domain layer reuses a rule ID
// already taken by the core layer, or a layer repeats an ID internally.
var ErrRuleCollision = errors.New("rule id collision")

// Loader merges core + domain layers into Packs and caches them by domain.
// Loads are idempotent: repeated calls for the same domain return the cached
// pack, and concurrent first loads of one domain collapse to a single build.
type Loader struct {
	src Source

	mu    sync.RWMutex
	cache map[string]*Pack
	group singleflight.Group
}

// NewLoader creates a Loader over the given source. A nil source means the
// embedded packs.
func NewLoader(src Source) *Loader {
	if src == nil {
		src = EmbeddedSource{}
	}
	return &Loader{src: src, cache: make(map[string]*Pack)}
}

// Load returns the merged core + domain pack. An unknown domain yields a
// core-only pack, not an error; the caller decides whether that is
// acceptable. Configuration problems (unreadable documents, non-positive
// weights, ID collisions) surface as errors.
func (l *Loader) Load(domain string) (*Pack, error) {
	l.mu.RLock()
	p, ok := l.cache[domain]
	l.mu.RUnlock()
	if ok {
		return p, nil
	}

	v, err, _ := l.group.Do(domain, func() (any, error) {
		pack, err := l.build(domain)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.cache[domain] = pack
		l.mu.Unlock()
		return pack, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Pack), nil
}

func (l *Loader) build(domain string) (*Pack, error) {
	coreDoc, err := l.src.Core()
	if err != nil {
		return nil, fmt.Errorf("load core rules: %w", err)
	}
	domainDoc, found, err := l.src.Domain(domain)
	if err != nil {
		return nil, fmt.Errorf("load %s rules: %w", domain, err)
	}
	if !found {
		domainDoc = Document{Domain: domain}
	}
	return Merge(domain, coreDoc, domainDoc)
}

// Merge builds a Pack from a core layer and a domain layer. It normalizes
// rule categories, rejects non-positive weights, and rejects any rule ID
// that appears twice, within a layer or across the two layers.
func Merge(domain string, core, extra Document) (*Pack, error) {
	p := &Pack{
		domain: domain,
		skills: extra.Skills,
		index:  make(map[string]Rule, len(core.Rules)+len(extra.Rules)),
	}

	add := func(layer string, r Rule) (Rule, error) {
		if r.ID == "" {
			return r, fmt.Errorf("%s layer: rule with empty id (label %q)", layer, r.Label)
		}
		if r.Weight <= 0 {
			return r, fmt.Errorf("%s layer: rule %s has non-positive weight %v", layer, r.ID, r.Weight)
		}
		if _, taken := p.index[r.ID]; taken {
			return r, fmt.Errorf("%s layer: %w: %s", layer, ErrRuleCollision, r.ID)
		}
		r.Category = ParseCategory(string(r.Category))
		p.index[r.ID] = r
		return r, nil
	}

	for _, r := range core.Rules {
		nr, err := add("core", r)
		if err != nil {
			return nil, err
		}
		p.core = append(p.core, nr)
	}
	for _, r := range extra.Rules {
		nr, err := add("domain", r)
		if err != nil {
			return nil, err
		}
		p.extra = append(p.extra, nr)
	}
	return p, nil
}

// EmbeddedSource serves the compiled-in core and domain documents.
type EmbeddedSource struct{}

func (EmbeddedSource) Core() (Document, error) { return coreDoc(), nil }

func (EmbeddedSource) Domain(name string) (Document, bool, error) {
	doc, ok := domainDocs()[strings.ToLower(strings.TrimSpace(name))]
	return doc, ok, nil
}

// DirSource reads rule-set documents from a directory: core.<ext> for the
// core layer and <domain>.<ext> per domain, where ext is yaml, yml or json.
type DirSource struct {
	Dir string
}

func (d DirSource) Core() (Document, error) {
	doc, found, err := d.read("core")
	if err != nil {
		return Document{}, err
	}
	if !found {
		return Document{}, fmt.Errorf("no core rule document in %s", d.Dir)
	}
	return doc, nil
}

func (d DirSource) Domain(name string) (Document, bool, error) {
	return d.read(name)
}

func (d DirSource) read(name string) (Document, bool, error) {
	for _, ext := range []string{".yaml", ".yml", ".json"} {
		path := filepath.Join(d.Dir, name+ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return Document{}, false, fmt.Errorf("read rule document: %w", err)
		}
		doc, err := ParseDocument(data, ext)
		if err != nil {
			return Document{}, false, fmt.Errorf("%s: %w", path, err)
		}
		return doc, true, nil
	}
	return Document{}, false, nil
}

// ParseDocument parses one rule-set document. ext is the file extension for
// format hint; empty = detect from content (leading '{' means JSON).
func ParseDocument(data []byte, ext string) (Document, error) {
	var doc Document
	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}
	if ext == "" {
		if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
			ext = ".json"
		} else {
			ext = ".yaml"
		}
	}
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("parse rule document json: %w", err)
		}
	case ".yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("parse rule document yaml: %w", err)
		}
	default:
		return Document{}, fmt.Errorf("unsupported rule document format %q", ext)
	}
	return doc, nil
}
