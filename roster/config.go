//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package roster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML roster file and merges it over the built-in defaults:
// personas override by name or are appended, and a non-empty order or
// positive rounds value replaces the default. The merged roster is
// validated before it is returned, so a malformed file never yields a
// partially usable team.
//
// A minimal file only has to name the changes it wants:
//
//	rounds: 3
//	order: [test_plan_creator, manual_qa_agent, database_qa_agent]
//	personas:
//	  - name: database_qa_agent
//	    instruction: |
//	      You are a database QA specialist for time-series stores...
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}

	var file Roster
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse roster file %s: %w", path, err)
	}

	r := Default()
	for _, p := range file.Personas {
		r.upsert(p)
	}
	if len(file.Order) > 0 {
		r.Order = file.Order
	}
	if file.Rounds > 0 {
		r.Rounds = file.Rounds
	}

	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("invalid roster file %s: %w", path, err)
	}
	return r, nil
}

// upsert replaces the named persona or appends a new one. Empty fields in
// an override keep the default persona's values, so a file can retune a
// single knob without restating the instruction.
func (r *Roster) upsert(p Persona) {
	for i, existing := range r.Personas {
		if existing.Name != p.Name {
			continue
		}
		if p.Description != "" {
			existing.Description = p.Description
		}
		if p.Instruction != "" {
			existing.Instruction = p.Instruction
		}
		if p.MaxTokens != 0 {
			existing.MaxTokens = p.MaxTokens
		}
		if p.Temperature != 0 {
			existing.Temperature = p.Temperature
		}
		r.Personas[i] = existing
		return
	}
	r.Personas = append(r.Personas, p)
}
