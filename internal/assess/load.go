package assess

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// LoadScenario reads a scenario document (YAML or JSON) from disk. Format is
// detected by extension (.yaml/.yml/.json) or by content (leading '{').
func LoadScenario(path string) (Scenario, error) {
	var sc Scenario
	if err := loadDocument(path, &sc); err != nil {
		return Scenario{}, fmt.Errorf("load scenario: %w", err)
	}
	return sc, nil
}

// LoadAttempt reads an attempt document (YAML or JSON) from disk.
func LoadAttempt(path string) (Attempt, error) {
	var a Attempt
	if err := loadDocument(path, &a); err != nil {
		return Attempt{}, fmt.Errorf("load attempt: %w", err)
	}
	return a, nil
}

// LoadJudgment reads an explanation judgment document (YAML or JSON) from disk.
func LoadJudgment(path string) (Judgment, error) {
	var j Judgment
	if err := loadDocument(path, &j); err != nil {
		return Judgment{}, fmt.Errorf("load judgment: %w", err)
	}
	return j, nil
}

func loadDocument(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return ParseDocument(data, filepath.Ext(path), v)
}

// ParseDocument parses one engine input document into v. ext is the file
// extension for format hint; empty = detect from content.
func ParseDocument(data []byte, ext string, v any) error {
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
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("parse json: %w", err)
		}
	case ".yaml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return fmt.Errorf("unsupported document format %q", ext)
	}
	return nil
}
