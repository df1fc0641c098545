//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package roster defines the QA personas that make up the test-planning
// team and the speaking order they take in the group chat. The built-in
// roster can be replaced or extended through a YAML file.
package roster

import (
	"fmt"
	"strings"
)

// Generation defaults applied to personas that do not set their own.
const (
	DefaultMaxTokens   = 2000
	DefaultTemperature = 0.7
)

// Persona is one member of the QA team: a name, a short description, and
// the role instruction that conditions the underlying model. MaxTokens and
// Temperature override the package defaults when non-zero.
type Persona struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Instruction string  `yaml:"instruction"`
	MaxTokens   int     `yaml:"max_tokens,omitempty"`
	Temperature float64 `yaml:"temperature,omitempty"`
}

// Roster is the full team definition: the persona set, the round-robin
// speaking order, and the maximum number of full passes over that order.
type Roster struct {
	Personas []Persona `yaml:"personas"`
	Order    []string  `yaml:"order"`
	Rounds   int       `yaml:"rounds"`
}

// ByName returns the persona with the given name, or false when the
// roster does not define it.
func (r *Roster) ByName(name string) (Persona, bool) {
	for _, p := range r.Personas {
		if p.Name == name {
			return p, true
		}
	}
	return Persona{}, false
}

// Speakers resolves the speaking order to personas, in order.
// The roster must have been validated first.
func (r *Roster) Speakers() []Persona {
	speakers := make([]Persona, 0, len(r.Order))
	for _, name := range r.Order {
		if p, ok := r.ByName(name); ok {
			speakers = append(speakers, p)
		}
	}
	return speakers
}

// Validate checks the roster for the mistakes a hand-edited config file
// can introduce. It never mutates the roster.
func (r *Roster) Validate() error {
	if len(r.Personas) == 0 {
		return fmt.Errorf("roster has no personas")
	}
	seen := make(map[string]struct{}, len(r.Personas))
	for i, p := range r.Personas {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("persona %d has an empty name", i)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("duplicate persona name %q", p.Name)
		}
		seen[p.Name] = struct{}{}
		if strings.TrimSpace(p.Instruction) == "" {
			return fmt.Errorf("persona %q has an empty instruction", p.Name)
		}
		if p.MaxTokens < 0 {
			return fmt.Errorf("persona %q has negative max_tokens", p.Name)
		}
		if p.Temperature < 0 {
			return fmt.Errorf("persona %q has negative temperature", p.Name)
		}
	}
	if len(r.Order) == 0 {
		return fmt.Errorf("roster has an empty speaking order")
	}
	for _, name := range r.Order {
		if _, ok := seen[name]; !ok {
			return fmt.Errorf("speaking order references unknown persona %q", name)
		}
	}
	if r.Rounds <= 0 {
		return fmt.Errorf("rounds must be positive, got %d", r.Rounds)
	}
	return nil
}
