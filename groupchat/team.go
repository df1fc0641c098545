//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package groupchat assembles the QA roster into a round-robin agent team.
// Turn-taking, model calls, and event delivery are the framework's job;
// this package only maps personas onto llm agents, wires them into a
// cycle, and decides when the conversation is finished.
package groupchat

import (
	"fmt"
	"strings"

	"trpc.group/trpc-go/trpc-agent-go/agent"
	"trpc.group/trpc-go/trpc-agent-go/agent/cycleagent"
	"trpc.group/trpc-go/trpc-agent-go/agent/llmagent"
	"trpc.group/trpc-go/trpc-agent-go/event"
	"trpc.group/trpc-go/trpc-agent-go/model"

	"trpc.group/trpc-go/trpc-testplan-go/roster"
	"trpc.group/trpc-go/trpc-testplan-go/testplan"
)

// TeamName is the agent name the cycle runs under; transcript events from
// the coordinator itself carry it as author.
const TeamName = "qa_team"

// Option configures team assembly.
type Option func(*options)

type options struct {
	streaming bool
}

// WithStreaming enables streamed model responses for every persona.
func WithStreaming(streaming bool) Option {
	return func(o *options) { o.streaming = streaming }
}

// NewTeam builds the round-robin team for the roster: one llm agent per
// speaker in order, wrapped in a cycle capped at the roster's round limit
// and escalating as soon as a finished plan appears.
func NewTeam(r *roster.Roster, mdl model.Model, opts ...Option) (*cycleagent.CycleAgent, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("invalid roster: %w", err)
	}

	speakers := r.Speakers()
	subAgents := make([]agent.Agent, 0, len(speakers))
	for _, p := range speakers {
		subAgents = append(subAgents, newPersonaAgent(p, mdl, o.streaming))
	}

	team := cycleagent.New(
		TeamName,
		cycleagent.WithSubAgents(subAgents),
		cycleagent.WithMaxIterations(r.Rounds),
		cycleagent.WithEscalationFunc(PlanComplete),
	)
	return team, nil
}

// newPersonaAgent maps one persona onto an llm agent. Zero generation
// knobs fall back to the roster defaults.
func newPersonaAgent(p roster.Persona, mdl model.Model, streaming bool) agent.Agent {
	maxTokens := p.MaxTokens
	if maxTokens <= 0 {
		maxTokens = roster.DefaultMaxTokens
	}
	temperature := p.Temperature
	if temperature <= 0 {
		temperature = roster.DefaultTemperature
	}

	genConfig := model.GenerationConfig{
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
		Stream:      streaming,
	}

	return llmagent.New(
		p.Name,
		llmagent.WithModel(mdl),
		llmagent.WithDescription(p.Description),
		llmagent.WithInstruction(p.Instruction),
		llmagent.WithGenerationConfig(genConfig),
	)
}

// PlanComplete is the cycle escalation check: stop on error events and on
// any completed message that carries the end-of-plan marker. The cycle
// only consults it for meaningful events, never for streaming chunks.
func PlanComplete(evt *event.Event) bool {
	if evt == nil || evt.Response == nil {
		return false
	}
	if evt.Error != nil {
		return true
	}
	if len(evt.Response.Choices) == 0 {
		return false
	}
	return strings.Contains(evt.Response.Choices[0].Message.Content, testplan.EndMarker)
}
