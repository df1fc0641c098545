//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package testplan

import "fmt"

// DefaultSkeletonCases is the number of placeholder cases generated when
// the chat produced nothing parseable.
const DefaultSkeletonCases = 5

// FromCases wraps cases salvaged from an undelimited transcript in a plan
// whose narrative sections are left undetermined.
func FromCases(cases []TestCase) *Plan {
	return &Plan{
		Sections: placeholderSections(),
		Cases:    cases,
	}
}

// Skeleton returns a placeholder plan: every section undetermined and n
// placeholder cases derived from the brief title. It is the last-resort
// output when neither delimiter extraction nor case parsing recovered
// anything from the transcript. Zero or negative n falls back to
// DefaultSkeletonCases.
func Skeleton(briefTitle string, n int) *Plan {
	if n <= 0 {
		n = DefaultSkeletonCases
	}
	subject := briefTitle
	if subject == "" {
		subject = "system"
	}

	p := &Plan{
		Title:      fmt.Sprintf("Test Plan for %s (draft)", subject),
		BriefTitle: briefTitle,
		Sections:   placeholderSections(),
	}
	for i := 1; i <= n; i++ {
		c := NewCase(i, fmt.Sprintf("Verify %s requirement %d", subject, i))
		c.Objective = sectionPlaceholder
		c.Preconditions = sectionPlaceholder
		c.Expected = sectionPlaceholder
		c.Steps = []string{
			"Review the requirement with the stakeholders",
			"Execute the verification procedure",
			"Record the observed results",
		}
		p.Cases = append(p.Cases, c)
	}
	return p
}
