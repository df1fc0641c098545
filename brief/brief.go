//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package brief supplies the requirements text the test-planning team
// works from: either the built-in default brief or one ingested from a
// text, Markdown, PDF, or DOCX file.
package brief

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrEmptyBrief indicates that a source file yielded no usable text.
// Generating a plan from an empty brief would silently produce nonsense,
// so ingestion refuses it up front.
var ErrEmptyBrief = errors.New("brief has no text content")

// DefaultTitle names the built-in brief.
const DefaultTitle = "High-Frequency Trading Platform"

const defaultText = `Create a comprehensive test plan for a financial technology system designed for high-frequency trading. The system includes:
- A stock prediction algorithm for market trends
- Real-time trade execution
- A web-based dashboard for analytics and reporting

Key aspects to test:
1. Functional tests for the prediction algorithm's accuracy and edge cases.
2. Load tests to simulate high-frequency trading scenarios.
3. Security tests to prevent data breaches and unauthorized access.
4. UI/UX tests to ensure usability and accessibility of the dashboard.
5. Integration tests for seamless operation between the prediction engine, trade execution system, and dashboard.

Constraints:
- The system must process at least 1,000,000 trades per second.
- Predictions must have an accuracy rate above 95%.
- Downtime must be under 2 minutes per year.

Expected Deliverables:
- Test cases grouped by functional area.
- Detailed steps, preconditions, and expected results for each test case.
- Priority and severity levels for each test case.
- A summary of test coverage.

Ensure that the test cases cover edge cases, error handling, and scalability scenarios. Each test case should follow this format:
- Test Case Number
- Title
- Objective
- Preconditions
- Test Steps
- Expected Results
- Priority
- Status`

// Brief is a requirements document handed to the team. Source is the file
// it came from, empty for the built-in default.
type Brief struct {
	Title  string
	Text   string
	Source string
}

// Default returns the built-in requirements brief.
func Default() Brief {
	return Brief{Title: DefaultTitle, Text: defaultText}
}

// FromFile ingests a requirements brief from path, dispatching on the
// file extension: .md/.markdown are flattened Markdown, .pdf and .docx
// are text-extracted, everything else is read as plain UTF-8 text.
func FromFile(path string) (Brief, error) {
	var (
		text  string
		title string
		err   error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		text, title, err = readMarkdown(path)
	case ".pdf":
		text, err = readPDF(path)
	case ".docx":
		text, err = readDOCX(path)
	default:
		text, err = readText(path)
	}
	if err != nil {
		return Brief{}, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return Brief{}, fmt.Errorf("%s: %w", path, ErrEmptyBrief)
	}
	if title == "" {
		title = titleFromPath(path)
	}
	return Brief{Title: title, Text: text, Source: path}, nil
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read brief: %w", err)
	}
	return string(data), nil
}

// titleFromPath derives a readable title from the file name.
func titleFromPath(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stem = strings.NewReplacer("_", " ", "-", " ").Replace(stem)
	return strings.TrimSpace(stem)
}
