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

	"github.com/go-pdf/fpdf"

	"trpc.group/trpc-go/trpc-testplan-go/testplan"
)

const (
	pdfTitleSize   = 16
	pdfHeadingSize = 12
	pdfBodySize    = 10
	pdfLineHeight  = 5
)

// PDF writes an A4 PDF rendering of the plan.
func PDF(plan *testplan.Plan, w io.Writer) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(plan.Title, true)
	doc.AddPage()
	// Core fonts are cp1252 only. Translate so quotes and dashes coming
	// out of a chat model survive the encoding.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "B", pdfTitleSize)
	doc.MultiCell(0, 8, tr(plan.Title), "", "L", false)
	if line := pdfProvenance(plan); line != "" {
		doc.SetFont("Helvetica", "I", pdfBodySize)
		doc.MultiCell(0, pdfLineHeight, tr(line), "", "L", false)
	}
	doc.Ln(4)

	if len(plan.Cases) == 0 && strings.TrimSpace(plan.Raw) != "" {
		doc.SetFont("Helvetica", "", pdfBodySize)
		doc.MultiCell(0, pdfLineHeight, tr(plan.Raw), "", "L", false)
		return doc.Output(w)
	}

	pdfSection(doc, tr, "Objective", plan.Sections.Objective)
	pdfSection(doc, tr, "Scope", plan.Sections.Scope)
	pdfSection(doc, tr, "Testing Strategy", plan.Sections.Strategy)
	pdfSection(doc, tr, "Test Environment", plan.Sections.Environment)
	pdfSection(doc, tr, "Schedule", plan.Sections.Schedule)

	doc.SetFont("Helvetica", "B", pdfHeadingSize)
	doc.MultiCell(0, 7, "Test Cases", "", "L", false)
	doc.Ln(2)
	for _, tc := range plan.Cases {
		pdfCase(doc, tr, tc)
	}

	pdfSection(doc, tr, "Risk Assessment", plan.Sections.Risks)
	return doc.Output(w)
}

func pdfProvenance(plan *testplan.Plan) string {
	var parts []string
	if !plan.CreatedAt.IsZero() {
		parts = append(parts, "Generated "+plan.CreatedAt.UTC().Format("2006-01-02 15:04 MST"))
	}
	if plan.Model != "" {
		parts = append(parts, "by "+plan.Model)
	}
	if plan.BriefTitle != "" {
		parts = append(parts, "for "+plan.BriefTitle)
	}
	return strings.Join(parts, " ")
}

func pdfSection(doc *fpdf.Fpdf, tr func(string) string, name, body string) {
	doc.SetFont("Helvetica", "B", pdfHeadingSize)
	doc.MultiCell(0, 7, name, "", "L", false)
	body = strings.TrimSpace(body)
	if body != "" {
		doc.SetFont("Helvetica", "", pdfBodySize)
		doc.MultiCell(0, pdfLineHeight, tr(body), "", "L", false)
	}
	doc.Ln(3)
}

func pdfCase(doc *fpdf.Fpdf, tr func(string) string, tc testplan.TestCase) {
	doc.SetFont("Helvetica", "B", pdfBodySize+1)
	doc.MultiCell(0, 6, tr(fmt.Sprintf("Test Case %d: %s", tc.Number, tc.Title)), "", "L", false)

	doc.SetFont("Helvetica", "", pdfBodySize)
	doc.MultiCell(0, pdfLineHeight, tr("Objective: "+tc.Objective), "", "L", false)
	doc.MultiCell(0, pdfLineHeight, tr("Preconditions: "+tc.Preconditions), "", "L", false)
	doc.MultiCell(0, pdfLineHeight, "Steps:", "", "L", false)
	for i, step := range tc.Steps {
		doc.MultiCell(0, pdfLineHeight, tr(fmt.Sprintf("  %d. %s", i+1, step)), "", "L", false)
	}
	doc.MultiCell(0, pdfLineHeight, tr("Expected Results: "+tc.Expected), "", "L", false)
	doc.MultiCell(0, pdfLineHeight, tr(fmt.Sprintf("Priority: %s    Status: %s", tc.Priority, tc.Status)), "", "L", false)
	doc.Ln(3)
}
