package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// edit is one step of a scenario: a splice applied to the buffer left by
// the previous step. The initial full source is scenario.Initial, not an
// edit.
type edit struct {
	Position uint32 `yaml:"position"`
	Remove   uint32 `yaml:"remove"`
	Insert   string `yaml:"insert"`
}

// scenario is a YAML-scripted sequence of edits replayed against a single
// language, used to manually exercise reconciliation by hand instead of
// one-shot parsing.
type scenario struct {
	Language string `yaml:"language"`
	Initial  string `yaml:"initial"`
	Edits    []edit `yaml:"edits"`
}

func loadScenario(path string) (*scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read scenario %s", path)
	}
	var s scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, errors.Wrapf(err, "parse scenario %s", path)
	}
	if s.Language == "" {
		return nil, errors.Errorf("scenario %s: language is required", path)
	}
	return &s, nil
}
