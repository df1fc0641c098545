//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"trpc.group/trpc-go/trpc-testplan-go/testplan"
)

// Markdown writes a Markdown rendering of the plan.
func Markdown(plan *testplan.Plan, w io.Writer) error {
	_, err := io.WriteString(w, renderMarkdown(plan))
	return err
}

func renderMarkdown(plan *testplan.Plan) string {
	if len(plan.Cases) == 0 && strings.TrimSpace(plan.Raw) != "" {
		var b strings.Builder
		fmt.Fprintf(&b, "# %s\n\n", plan.Title)
		b.WriteString("```\n")
		b.WriteString(strings.TrimRight(plan.Raw, "\n") + "\n")
		b.WriteString("```\n")
		return b.String()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", plan.Title)
	if line := provenanceLine(plan); line != "" {
		b.WriteString(line + "\n\n")
	}

	writeMarkdownSection(&b, "Objective", plan.Sections.Objective)
	writeMarkdownSection(&b, "Scope", plan.Sections.Scope)
	writeMarkdownSection(&b, "Testing Strategy", plan.Sections.Strategy)
	writeMarkdownSection(&b, "Test Environment", plan.Sections.Environment)
	writeMarkdownSection(&b, "Schedule", plan.Sections.Schedule)

	b.WriteString("## Test Cases\n\n")
	for _, tc := range plan.Cases {
		fmt.Fprintf(&b, "### Test Case %d: %s\n\n", tc.Number, tc.Title)
		fmt.Fprintf(&b, "**Objective:** %s\n\n", tc.Objective)
		fmt.Fprintf(&b, "**Preconditions:** %s\n\n", tc.Preconditions)
		b.WriteString("**Steps:**\n\n")
		for i, step := range tc.Steps {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "**Expected Results:** %s\n\n", tc.Expected)
		fmt.Fprintf(&b, "**Priority:** %s · **Status:** %s\n\n", tc.Priority, tc.Status)
	}

	writeMarkdownSection(&b, "Risk Assessment", plan.Sections.Risks)
	return b.String()
}

func provenanceLine(plan *testplan.Plan) string {
	var parts []string
	if !plan.CreatedAt.IsZero() {
		parts = append(parts, "Generated "+plan.CreatedAt.UTC().Format(time.RFC3339))
	}
	if plan.Model != "" {
		parts = append(parts, "by `"+plan.Model+"`")
	}
	if plan.BriefTitle != "" {
		parts = append(parts, "for *"+plan.BriefTitle+"*")
	}
	if len(parts) == 0 {
		return ""
	}
	return "_" + strings.Join(parts, " ") + "_"
}

func writeMarkdownSection(b *strings.Builder, name, body string) {
	fmt.Fprintf(b, "## %s\n\n", name)
	body = strings.TrimSpace(body)
	if body != "" {
		b.WriteString(body + "\n\n")
	}
}
