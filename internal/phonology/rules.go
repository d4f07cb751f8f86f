package phonology

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// RuleSet is the on-disk form of a replacement table:
//
//	reversible:
//	  - {from: οι, to: O}
//	irreversible:
//	  - {from: ς, to: σ}
type RuleSet struct {
	Reversible   []Rule `yaml:"reversible"`
	Irreversible []Rule `yaml:"irreversible"`
}

// LoadRules reads a YAML rule file and builds a validated table
func LoadRules(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	return ParseRules(bytes.NewReader(data))
}

// ParseRules decodes a YAML rule set and builds a validated table
func ParseRules(r io.Reader) (*Table, error) {
	var rs RuleSet
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rs); err != nil {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}
	return NewTable(rs.Reversible, rs.Irreversible)
}

// RuleSet returns the table's rules in their on-disk form
func (t *Table) RuleSet() RuleSet {
	return RuleSet{Reversible: t.Reversible(), Irreversible: t.Irreversible()}
}
