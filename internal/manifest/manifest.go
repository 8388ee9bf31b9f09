// Package manifest reads YAML suite files for the compare runner. A
// suite is a list of document pairs with the expected equivalence
// verdict, optionally with a per-case ignore expression.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Case is one comparison: two files and the expected outcome.
type Case struct {
	Left       string `yaml:"left"`
	Right      string `yaml:"right"`
	Equivalent bool   `yaml:"equivalent"`
	Ignore     string `yaml:"ignore,omitempty"`
}

// Suite is a named list of cases, usually resolved against a data dir.
type Suite struct {
	Name  string `yaml:"name,omitempty"`
	Cases []Case `yaml:"cases"`
}

// Load reads and checks a suite file.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite %s: %w", path, err)
	}

	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite %s: %w", path, err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite %s has no cases", path)
	}
	for i, c := range s.Cases {
		if c.Left == "" || c.Right == "" {
			return nil, fmt.Errorf("suite %s case %d: left and right are required", path, i)
		}
	}
	return &s, nil
}
