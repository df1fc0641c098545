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

const (
	bannerWidth = 50
	stepIndent  = "- "
)

// Text writes the canonical plain text rendering of the plan. The layout
// is stable for a given plan, so repeated exports of the same plan are
// byte identical.
func Text(plan *testplan.Plan, w io.Writer) error {
	_, err := io.WriteString(w, renderText(plan))
	return err
}

func renderText(plan *testplan.Plan) string {
	// A plan that never parsed into cases still carries the raw chat
	// text. Preserve it verbatim rather than rendering empty sections.
	if len(plan.Cases) == 0 && strings.TrimSpace(plan.Raw) != "" {
		return strings.TrimRight(plan.Raw, "\n") + "\n"
	}

	var b strings.Builder
	b.WriteString(plan.Title + "\n")
	b.WriteString(strings.Repeat("=", bannerWidth) + "\n")
	writeProvenance(&b, plan)
	b.WriteString("\n")

	writeSection(&b, "Objective", plan.Sections.Objective)
	writeSection(&b, "Scope", plan.Sections.Scope)
	writeSection(&b, "Testing Strategy", plan.Sections.Strategy)
	writeSection(&b, "Test Environment", plan.Sections.Environment)
	writeSection(&b, "Schedule", plan.Sections.Schedule)

	b.WriteString("Test Cases\n")
	b.WriteString(strings.Repeat("-", bannerWidth) + "\n")
	for _, tc := range plan.Cases {
		writeCase(&b, tc)
	}
	b.WriteString("\n")

	writeSection(&b, "Risk Assessment", plan.Sections.Risks)
	return b.String()
}

func writeProvenance(b *strings.Builder, plan *testplan.Plan) {
	if !plan.CreatedAt.IsZero() {
		fmt.Fprintf(b, "Generated: %s\n", plan.CreatedAt.UTC().Format(time.RFC3339))
	}
	if plan.Model != "" {
		fmt.Fprintf(b, "Model: %s\n", plan.Model)
	}
	if plan.BriefTitle != "" {
		fmt.Fprintf(b, "Brief: %s\n", plan.BriefTitle)
	}
}

func writeSection(b *strings.Builder, name, body string) {
	b.WriteString(name + "\n")
	b.WriteString(strings.Repeat("-", bannerWidth) + "\n")
	body = strings.TrimSpace(body)
	if body != "" {
		b.WriteString(body + "\n")
	}
	b.WriteString("\n")
}

func writeCase(b *strings.Builder, tc testplan.TestCase) {
	fmt.Fprintf(b, "\nTest Case %d: %s\n", tc.Number, tc.Title)
	b.WriteString(strings.Repeat("-", bannerWidth) + "\n")
	fmt.Fprintf(b, "Objective: %s\n", tc.Objective)
	fmt.Fprintf(b, "Preconditions: %s\n", tc.Preconditions)
	b.WriteString("Steps:\n")
	for _, step := range tc.Steps {
		b.WriteString(stepIndent + step + "\n")
	}
	fmt.Fprintf(b, "Expected Results: %s\n", tc.Expected)
	fmt.Fprintf(b, "Priority: %s\n", tc.Priority)
	fmt.Fprintf(b, "Status: %s\n", tc.Status)
}
