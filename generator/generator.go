//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package generator runs the end-to-end pipeline: compose the kickoff
// prompt, drive the group chat through a runner, capture the transcript,
// and recover a structured plan from it. Writing the plan to disk is the
// caller's step; generation never touches the filesystem.
package generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"trpc.group/trpc-go/trpc-agent-go/agent"
	"trpc.group/trpc-go/trpc-agent-go/event"
	"trpc.group/trpc-go/trpc-agent-go/log"
	"trpc.group/trpc-go/trpc-agent-go/model"
	"trpc.group/trpc-go/trpc-agent-go/runner"

	"trpc.group/trpc-go/trpc-testplan-go/brief"
	"trpc.group/trpc-go/trpc-testplan-go/groupchat"
	"trpc.group/trpc-go/trpc-testplan-go/testplan"
)

// Result carries everything one generation run produced.
type Result struct {
	Plan       *testplan.Plan
	Transcript *groupchat.Transcript
	Prompt     string
	ModelName  string
	Turns      int
	StartedAt  time.Time
	FinishedAt time.Time

	// Fallback is true when the plan did not come from a delimited
	// document: either emergency case parsing or the skeleton.
	Fallback bool
}

// Generator drives plan generation for one configuration. It is safe to
// reuse for multiple briefs; every Generate call runs a fresh session.
type Generator struct {
	opts options
	mdl  model.Model
}

// New returns a generator backed by the given chat model.
func New(mdl model.Model, opt ...Option) *Generator {
	opts := defaultOptions()
	for _, o := range opt {
		o(&opts)
	}
	return &Generator{opts: opts, mdl: mdl}
}

// Generate runs the group chat over the brief and recovers a plan from
// the transcript. A chat failure with a usable partial transcript is
// salvaged the same way an undelimited transcript is; a chat failure with
// nothing captured is returned as an error.
func (g *Generator) Generate(ctx context.Context, b brief.Brief) (*Result, error) {
	team, err := groupchat.NewTeam(g.opts.roster, g.mdl, groupchat.WithStreaming(g.opts.streaming))
	if err != nil {
		return nil, err
	}

	r := runner.NewRunner(g.opts.appName, team, runner.WithSessionService(g.opts.sessionService))
	defer r.Close()

	result := &Result{
		Prompt:     testplan.KickoffPrompt(b.Text, g.opts.caseCount),
		ModelName:  g.mdl.Info().Name,
		StartedAt:  time.Now(),
		Transcript: groupchat.NewTranscript(),
	}

	sessionID := uuid.New().String()
	log.Infof("starting test plan chat: brief=%q session=%s speakers=%d",
		b.Title, sessionID, len(g.opts.roster.Order))

	events, err := r.Run(
		ctx,
		g.opts.userID,
		sessionID,
		model.NewUserMessage(result.Prompt),
		agent.WithRequestID(uuid.New().String()),
	)
	if err != nil {
		return nil, fmt.Errorf("run group chat: %w", err)
	}

	runErr := g.collect(events, result.Transcript)
	result.Transcript.Flush()
	result.Turns = result.Transcript.Len()
	result.FinishedAt = time.Now()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("group chat canceled: %w", err)
	}
	if runErr != nil && result.Turns == 0 {
		return nil, fmt.Errorf("group chat failed: %w", runErr)
	}
	if runErr != nil {
		log.Warnf("group chat ended with error after %d turns, salvaging transcript: %v",
			result.Turns, runErr)
	}

	result.Plan, result.Fallback = g.recoverPlan(b, result.Transcript)
	result.Plan.BriefTitle = b.Title
	result.Plan.Model = result.ModelName
	result.Plan.CreatedAt = result.FinishedAt
	if result.Plan.Title == "" {
		result.Plan.Title = "Test Plan for " + b.Title
	}

	log.Infof("test plan recovered: cases=%d turns=%d fallback=%t",
		len(result.Plan.Cases), result.Turns, result.Fallback)
	return result, nil
}

// collect drains the event channel into the transcript and returns the
// first error event seen. Only roster personas contribute to the
// transcript; the kickoff prompt and runner bookkeeping stay out of it.
func (g *Generator) collect(events <-chan *event.Event, transcript *groupchat.Transcript) error {
	var runErr error
	for evt := range events {
		if evt == nil || evt.Response == nil {
			continue
		}
		if evt.Error != nil && runErr == nil {
			runErr = fmt.Errorf("%s: %s", evt.Error.Type, evt.Error.Message)
		}
		if _, ok := g.opts.roster.ByName(evt.Author); !ok {
			continue
		}
		transcript.Record(evt)
	}
	return runErr
}

// recoverPlan turns the transcript into a plan, degrading in the same
// order the chat can fail: delimited document, then emergency case
// parsing, then the skeleton.
func (g *Generator) recoverPlan(b brief.Brief, transcript *groupchat.Transcript) (*testplan.Plan, bool) {
	body, err := testplan.ExtractDelimited(transcript.Contents())
	if err == nil {
		log.Debugf("delimited plan extracted: %d characters", len(body))
		return testplan.ParsePlan(body), false
	}

	log.Warnf("no delimited plan in transcript, attempting emergency parsing")
	if cases := testplan.ParseCases(strings.Join(transcript.Contents(), "\n")); len(cases) > 0 {
		return testplan.FromCases(cases), true
	}

	log.Warnf("emergency parsing recovered nothing, falling back to skeleton plan")
	return testplan.Skeleton(b.Title, g.opts.skeletonCases), true
}
