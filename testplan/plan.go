//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package testplan defines the structured test plan document, the kickoff
// prompt that asks an agent team to produce one, and the parsers that
// recover the document from freeform chat output.
package testplan

import "time"

// Markers delimiting the plan document inside chat output.
const (
	StartMarker = "TEST PLAN:"
	EndMarker   = "END OF TEST PLAN"
)

// Field values applied when the source text leaves them out.
const (
	DefaultPriority = "Medium"
	DefaultStatus   = "Draft"

	sectionPlaceholder = "To be determined"
)

// TestCase is a single entry in the plan's case list.
type TestCase struct {
	Number        int
	Title         string
	Objective     string
	Preconditions string
	Steps         []string
	Expected      string
	Priority      string
	Status        string
}

// Sections holds the narrative parts of the plan, in rendering order.
type Sections struct {
	Objective   string
	Scope       string
	Strategy    string
	Environment string
	Schedule    string
	Risks       string
}

// Plan is the structured test plan recovered from a chat transcript.
// Raw preserves the delimited document text the plan was derived from;
// it is empty when the plan came from the skeleton fallback.
type Plan struct {
	Title      string
	BriefTitle string
	Sections   Sections
	Cases      []TestCase
	Raw        string
	Model      string
	CreatedAt  time.Time
}

// NewCase returns a test case with the default priority and status set.
func NewCase(number int, title string) TestCase {
	return TestCase{
		Number:   number,
		Title:    title,
		Priority: DefaultPriority,
		Status:   DefaultStatus,
	}
}

// placeholderSections returns sections with every field marked undetermined.
func placeholderSections() Sections {
	return Sections{
		Objective:   sectionPlaceholder,
		Scope:       sectionPlaceholder,
		Strategy:    sectionPlaceholder,
		Environment: sectionPlaceholder,
		Schedule:    sectionPlaceholder,
		Risks:       sectionPlaceholder,
	}
}
