package config

import (
	"fmt"
	"os"

	domainErrors "github.com/thomas-vilte/issuecategorizer/internal/errors"
	"github.com/thomas-vilte/issuecategorizer/internal/models"
	"gopkg.in/yaml.v3"
)

// Rules is a YAML file naming several label sets to download in one go:
//
//	state: closed
//	sets:
//	  - name: train
//	    include: [bug, enhancement]
//	  - name: test
//	    include: [unlabeled]
//	    exclude: [bug, enhancement]
type Rules struct {
	State string            `yaml:"state,omitempty"`
	Sets  []models.LabelSet `yaml:"sets"`
}

func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, domainErrors.ErrRulesInvalid.WithError(err).WithContext("path", path)
	}

	if err := rules.validate(); err != nil {
		return nil, domainErrors.ErrRulesInvalid.WithError(err).WithContext("path", path)
	}

	return &rules, nil
}

func (r *Rules) validate() error {
	if r.State != "" && !IsValidState(r.State) {
		return fmt.Errorf("invalid state %q", r.State)
	}
	if len(r.Sets) == 0 {
		return fmt.Errorf("no label sets defined")
	}

	seen := make(map[string]bool, len(r.Sets))
	for i, set := range r.Sets {
		if set.Name == "" {
			return fmt.Errorf("set #%d has no name", i+1)
		}
		if seen[set.Name] {
			return fmt.Errorf("set %q is defined twice", set.Name)
		}
		seen[set.Name] = true
		if len(set.Include) == 0 {
			return fmt.Errorf("set %q has no include labels", set.Name)
		}
	}
	return nil
}
