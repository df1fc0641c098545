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
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"trpc.group/trpc-go/trpc-testplan-go/testplan"
)

// DOCX writes a Word rendering of the plan to path. The writer saves by
// file name, so unlike the stream renderers this one takes a path.
func DOCX(plan *testplan.Plan, path string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("new document: %w", err)
	}

	if _, err := doc.AddHeading(plan.Title, 0); err != nil {
		return fmt.Errorf("add title: %w", err)
	}
	if line := pdfProvenance(plan); line != "" {
		doc.AddParagraph(line)
	}

	if len(plan.Cases) == 0 && strings.TrimSpace(plan.Raw) != "" {
		for _, line := range strings.Split(strings.TrimRight(plan.Raw, "\n"), "\n") {
			doc.AddParagraph(line)
		}
		return doc.SaveTo(path)
	}

	if err := docxSection(doc, "Objective", plan.Sections.Objective); err != nil {
		return err
	}
	if err := docxSection(doc, "Scope", plan.Sections.Scope); err != nil {
		return err
	}
	if err := docxSection(doc, "Testing Strategy", plan.Sections.Strategy); err != nil {
		return err
	}
	if err := docxSection(doc, "Test Environment", plan.Sections.Environment); err != nil {
		return err
	}
	if err := docxSection(doc, "Schedule", plan.Sections.Schedule); err != nil {
		return err
	}

	if _, err := doc.AddHeading("Test Cases", 1); err != nil {
		return fmt.Errorf("add heading: %w", err)
	}
	for _, tc := range plan.Cases {
		if _, err := doc.AddHeading(fmt.Sprintf("Test Case %d: %s", tc.Number, tc.Title), 2); err != nil {
			return fmt.Errorf("add case heading: %w", err)
		}
		doc.AddParagraph("Objective: " + tc.Objective)
		doc.AddParagraph("Preconditions: " + tc.Preconditions)
		doc.AddParagraph("Steps:")
		for i, step := range tc.Steps {
			doc.AddParagraph(fmt.Sprintf("%d. %s", i+1, step))
		}
		doc.AddParagraph("Expected Results: " + tc.Expected)
		doc.AddParagraph(fmt.Sprintf("Priority: %s    Status: %s", tc.Priority, tc.Status))
	}

	if err := docxSection(doc, "Risk Assessment", plan.Sections.Risks); err != nil {
		return err
	}
	return doc.SaveTo(path)
}

func docxSection(doc *docx.RootDoc, name, body string) error {
	if _, err := doc.AddHeading(name, 1); err != nil {
		return fmt.Errorf("add heading: %w", err)
	}
	body = strings.TrimSpace(body)
	for _, line := range strings.Split(body, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			doc.AddParagraph(line)
		}
	}
	return nil
}
