//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package testplan

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	caseBoundary = regexp.MustCompile(`Test Case (\d+)`)
	numberedStep = regexp.MustCompile(`^\d+\.\s*`)
)

// ParseCases recovers test cases from freeform plan text. Case boundaries
// match "Test Case <number>"; within a case, labeled lines fill the
// corresponding fields and bullet or numbered lines become steps. Fields
// the text never mentions keep their defaults. Text that contains no
// "Objective:" label at all is not treated as a case listing and yields
// nothing.
func ParseCases(text string) []TestCase {
	if !strings.Contains(text, "Objective:") {
		return nil
	}

	var (
		cases   []TestCase
		current *TestCase
	)
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if m := caseBoundary.FindStringSubmatchIndex(trimmed); m != nil {
			if current != nil {
				cases = append(cases, *current)
			}
			number, _ := strconv.Atoi(trimmed[m[2]:m[3]])
			c := NewCase(number, caseTitle(trimmed, m[1], number))
			current = &c
			continue
		}
		if current == nil {
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "Objective:"):
			current.Objective = strings.TrimSpace(strings.TrimPrefix(trimmed, "Objective:"))
		case strings.HasPrefix(trimmed, "Preconditions:"):
			current.Preconditions = strings.TrimSpace(strings.TrimPrefix(trimmed, "Preconditions:"))
		case strings.HasPrefix(trimmed, "Expected Results:"):
			current.Expected = strings.TrimSpace(strings.TrimPrefix(trimmed, "Expected Results:"))
		case strings.HasPrefix(trimmed, "Priority:"):
			current.Priority = strings.TrimSpace(strings.TrimPrefix(trimmed, "Priority:"))
		case strings.HasPrefix(trimmed, "Status:"):
			current.Status = strings.TrimSpace(strings.TrimPrefix(trimmed, "Status:"))
		case strings.HasPrefix(trimmed, "-"):
			if step := strings.TrimSpace(strings.TrimPrefix(trimmed, "-")); step != "" {
				current.Steps = append(current.Steps, step)
			}
		case numberedStep.MatchString(trimmed):
			if step := numberedStep.ReplaceAllString(trimmed, ""); step != "" {
				current.Steps = append(current.Steps, step)
			}
		}
	}
	if current != nil {
		cases = append(cases, *current)
	}
	return cases
}

// caseTitle extracts the title following a case boundary: the text after
// the first colon past the matched "Test Case <number>" token. Boundaries
// without a title fall back to "Test Case <number>".
func caseTitle(line string, matchEnd, number int) string {
	rest := line[matchEnd:]
	if idx := strings.Index(rest, ":"); idx >= 0 {
		if title := strings.TrimSpace(rest[idx+1:]); title != "" {
			return title
		}
	}
	return "Test Case " + strconv.Itoa(number)
}

// sectionNames maps normalized heading text to a section field selector.
var sectionNames = map[string]func(*Sections) *string{
	"objective":        func(s *Sections) *string { return &s.Objective },
	"scope":            func(s *Sections) *string { return &s.Scope },
	"testing strategy": func(s *Sections) *string { return &s.Strategy },
	"test environment": func(s *Sections) *string { return &s.Environment },
	"schedule":         func(s *Sections) *string { return &s.Schedule },
	"risk assessment":  func(s *Sections) *string { return &s.Risks },
}

// ParsePlan builds a structured plan from a delimited document body. The
// narrative sections are recognized by heading; the case list is recovered
// with ParseCases. Sections the text never introduces stay marked
// undetermined.
func ParsePlan(text string) *Plan {
	p := &Plan{
		Sections: placeholderSections(),
		Cases:    ParseCases(text),
		Raw:      text,
	}

	var (
		target  *string
		body    []string
		inCases bool
	)
	flush := func() {
		if target != nil {
			if content := strings.TrimSpace(strings.Join(body, "\n")); content != "" {
				*target = content
			}
		}
		target = nil
		body = nil
	}

	lines := strings.Split(text, "\n")
	first := firstContentLine(lines)
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if target != nil {
				body = append(body, line)
			}
			continue
		}

		if name := normalizeHeading(trimmed); name != "" {
			flush()
			inCases = name == "test cases"
			if sel, ok := sectionNames[name]; ok {
				target = sel(&p.Sections)
			}
			continue
		}
		if p.Title == "" && i == first && !inCases &&
			!caseBoundary.MatchString(trimmed) && len(trimmed) <= 120 {
			p.Title = trimmed
			continue
		}
		if target != nil && !inCases {
			body = append(body, line)
		}
	}
	flush()
	return p
}

// normalizeHeading strips markdown and list decorations from a line and
// reports the section name it introduces, or "" when the line is not a
// heading. "Test Cases" is reported so the caller can skip the case region.
func normalizeHeading(line string) string {
	s := strings.TrimLeft(line, "#*- \t")
	s = strings.TrimLeft(s, "0123456789")
	s = strings.TrimLeft(s, ". \t")
	s = strings.TrimRight(s, ":* \t")
	s = strings.ToLower(s)
	if s == "test cases" {
		return s
	}
	if _, ok := sectionNames[s]; ok {
		return s
	}
	return ""
}

func firstContentLine(lines []string) int {
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			return i
		}
	}
	return -1
}
