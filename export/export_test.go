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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gomutex/godocx"
	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-testplan-go/testplan"
)

func samplePlan() *testplan.Plan {
	return &testplan.Plan{
		Title:      "Test Plan for Order Gateway",
		BriefTitle: "Order Gateway",
		Model:      "deepseek-chat",
		CreatedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Sections: testplan.Sections{
			Objective:   "Validate order routing end to end.",
			Scope:       "Order intake, matching, and reporting.",
			Strategy:    "Manual checks plus API level automation.",
			Environment: "Staging cluster with simulated market feeds.",
			Schedule:    "Two week test cycle.",
			Risks:       "Feed outages may block execution windows.",
		},
		Cases: []testplan.TestCase{
			{
				Number:        1,
				Title:         "Submit limit order",
				Objective:     "Verify a valid limit order is accepted.",
				Preconditions: "Session authenticated.",
				Steps:         []string{"Open the order form", "Submit a limit order", "Check the order book"},
				Expected:      "Order appears in the book within one second.",
				Priority:      "High",
				Status:        "Draft",
			},
			{
				Number:        2,
				Title:         "Reject malformed order",
				Objective:     "Verify malformed orders are rejected.",
				Preconditions: "Session authenticated.",
				Steps:         []string{"Submit an order with negative quantity"},
				Expected:      "Gateway returns a validation error.",
				Priority:      "Medium",
				Status:        "Draft",
			},
		},
	}
}

func TestTextLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(samplePlan(), &buf))
	out := buf.String()

	require.True(t, strings.HasPrefix(out, "Test Plan for Order Gateway\n"+strings.Repeat("=", 50)+"\n"))
	require.Contains(t, out, "Generated: 2025-06-01T12:00:00Z\n")
	require.Contains(t, out, "Model: deepseek-chat\n")
	require.Contains(t, out, "Brief: Order Gateway\n")

	for _, heading := range []string{"Objective", "Scope", "Testing Strategy", "Test Environment", "Schedule", "Test Cases", "Risk Assessment"} {
		require.Contains(t, out, "\n"+heading+"\n"+strings.Repeat("-", 50)+"\n", "missing section %q", heading)
	}

	require.Contains(t, out, "\nTest Case 1: Submit limit order\n")
	require.Contains(t, out, "Objective: Verify a valid limit order is accepted.\n")
	require.Contains(t, out, "Steps:\n- Open the order form\n- Submit a limit order\n- Check the order book\n")
	require.Contains(t, out, "Expected Results: Order appears in the book within one second.\n")
	require.Contains(t, out, "Priority: High\nStatus: Draft\n")
	require.Contains(t, out, "\nTest Case 2: Reject malformed order\n")

	// Risk assessment renders after the cases.
	require.Greater(t, strings.Index(out, "Risk Assessment"), strings.Index(out, "Test Case 2"))
}

func TestTextStableOutput(t *testing.T) {
	plan := samplePlan()
	var first, second bytes.Buffer
	require.NoError(t, Text(plan, &first))
	require.NoError(t, Text(plan, &second))
	require.Equal(t, first.Bytes(), second.Bytes())
}

func TestTextRawPassthrough(t *testing.T) {
	plan := &testplan.Plan{
		Title: "Test Plan for Legacy System",
		Raw:   "The agents produced prose instead of numbered cases.\nStill worth keeping.",
	}
	var buf bytes.Buffer
	require.NoError(t, Text(plan, &buf))
	require.Equal(t, plan.Raw+"\n", buf.String())
}

func TestMarkdownLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Markdown(samplePlan(), &buf))
	out := buf.String()

	require.True(t, strings.HasPrefix(out, "# Test Plan for Order Gateway\n"))
	require.Contains(t, out, "## Objective\n")
	require.Contains(t, out, "### Test Case 1: Submit limit order\n")
	require.Contains(t, out, "**Objective:** Verify a valid limit order is accepted.")
	require.Contains(t, out, "1. Open the order form\n2. Submit a limit order\n3. Check the order book\n")
	require.Contains(t, out, "**Priority:** High")
}

func TestHTMLDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(samplePlan(), &buf))
	out := buf.String()

	require.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	require.Contains(t, out, "<title>Test Plan for Order Gateway</title>")
	require.Contains(t, out, "<h1")
	require.Contains(t, out, "Submit limit order")
	require.Contains(t, out, "</html>")
}

// TestPDFRoundTrip renders the plan and reads the bytes back with the
// same reader the brief loader uses, proving the output is a well formed
// PDF and not just non-empty bytes.
func TestPDFRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PDF(samplePlan(), &buf))
	content := buf.Bytes()
	require.NotEmpty(t, content)

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	require.NoError(t, err)

	var text strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		require.NoError(t, err)
		text.WriteString(content)
	}
	extracted := text.String()
	require.Contains(t, extracted, "Order")
	require.Contains(t, extracted, "Objective")
}

func TestDOCXRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.docx")
	require.NoError(t, DOCX(samplePlan(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(content, []byte("PK")), "docx output must be a zip archive")

	_, err = godocx.OpenDocument(path)
	require.NoError(t, err)
}

func TestWriteFileCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "plan.txt")
	require.NoError(t, WriteFile(samplePlan(), path, FormatText))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, renderText(samplePlan()), string(content))

	// The temp file must be gone after the rename.
	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".plan-*"))
	require.NoError(t, err)
	require.Empty(t, leftovers)
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.txt")
	first := samplePlan()
	require.NoError(t, WriteFile(first, path, FormatText))

	second := samplePlan()
	second.Title = "Test Plan for Order Gateway v2"
	require.NoError(t, WriteFile(second, path, FormatText))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(content), "v2")
}

func TestWriteFileDOCX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.docx")
	require.NoError(t, WriteFile(samplePlan(), path, FormatDOCX))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(content, []byte("PK")))
}

func TestWriteFileNilPlan(t *testing.T) {
	err := WriteFile(nil, filepath.Join(t.TempDir(), "plan.txt"), FormatText)
	require.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]Format{
		"text":     FormatText,
		"txt":      FormatText,
		"markdown": FormatMarkdown,
		"md":       FormatMarkdown,
		"HTML":     FormatHTML,
		" pdf ":    FormatPDF,
		"docx":     FormatDOCX,
	} {
		got, err := ParseFormat(input)
		require.NoError(t, err, "input %q", input)
		require.Equal(t, want, got, "input %q", input)
	}

	_, err := ParseFormat("rtf")
	require.Error(t, err)
}

func TestFormatExt(t *testing.T) {
	require.Equal(t, ".txt", FormatText.Ext())
	require.Equal(t, ".md", FormatMarkdown.Ext())
	require.Equal(t, ".html", FormatHTML.Ext())
	require.Equal(t, ".pdf", FormatPDF.Ext())
	require.Equal(t, ".docx", FormatDOCX.Ext())
}

func TestDefaultPath(t *testing.T) {
	require.Equal(t, filepath.Join("test_plan_output", "test_plan.txt"), DefaultPath())
}
