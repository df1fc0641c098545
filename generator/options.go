//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package generator

import (
	"trpc.group/trpc-go/trpc-agent-go/session"
	sessioninmemory "trpc.group/trpc-go/trpc-agent-go/session/inmemory"

	"trpc.group/trpc-go/trpc-testplan-go/roster"
	"trpc.group/trpc-go/trpc-testplan-go/testplan"
)

const (
	defaultAppName = "trpc-testplan"
	defaultUserID  = "qa-user"
)

// Option configures a Generator.
type Option func(*options)

type options struct {
	appName        string
	userID         string
	roster         *roster.Roster
	sessionService session.Service
	caseCount      int
	skeletonCases  int
	streaming      bool
}

func defaultOptions() options {
	return options{
		appName:        defaultAppName,
		userID:         defaultUserID,
		roster:         roster.Default(),
		sessionService: sessioninmemory.NewSessionService(),
		caseCount:      testplan.DefaultCaseCount,
		skeletonCases:  testplan.DefaultSkeletonCases,
	}
}

// WithRoster replaces the default team definition.
func WithRoster(r *roster.Roster) Option {
	return func(o *options) {
		if r != nil {
			o.roster = r
		}
	}
}

// WithSessionService replaces the in-memory session backend.
func WithSessionService(svc session.Service) Option {
	return func(o *options) {
		if svc != nil {
			o.sessionService = svc
		}
	}
}

// WithCaseCount sets how many test cases the kickoff prompt asks for.
func WithCaseCount(n int) Option {
	return func(o *options) { o.caseCount = n }
}

// WithSkeletonCases sets the placeholder case count used when the chat
// produced nothing parseable.
func WithSkeletonCases(n int) Option {
	return func(o *options) { o.skeletonCases = n }
}

// WithStreaming enables streamed model responses.
func WithStreaming(streaming bool) Option {
	return func(o *options) { o.streaming = streaming }
}

// WithAppName overrides the application name sessions are stored under.
func WithAppName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.appName = name
		}
	}
}

// WithUserID overrides the user identity attached to chat sessions.
func WithUserID(id string) Option {
	return func(o *options) {
		if id != "" {
			o.userID = id
		}
	}
}
