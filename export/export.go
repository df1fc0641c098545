//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package export serializes a structured test plan to disk. The plain
// text rendering is canonical; Markdown, HTML, PDF, and DOCX renderings
// derive from the same plan. Files are written through a temp file and a
// rename, so a failed export never leaves a partial document at the
// target path.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"trpc.group/trpc-go/trpc-testplan-go/testplan"
)

// Default location of the canonical text output, relative to the working
// directory. Stable across runs.
const (
	DefaultOutputDir = "test_plan_output"
	DefaultFileName  = "test_plan.txt"
)

// DefaultPath returns the default canonical output path.
func DefaultPath() string {
	return filepath.Join(DefaultOutputDir, DefaultFileName)
}

// Format selects an output serialization.
type Format string

// Supported output formats.
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatPDF      Format = "pdf"
	FormatDOCX     Format = "docx"
)

// Formats lists the supported formats in canonical order.
func Formats() []Format {
	return []Format{FormatText, FormatMarkdown, FormatHTML, FormatPDF, FormatDOCX}
}

// ParseFormat resolves a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "txt":
		return FormatText, nil
	case FormatMarkdown, "md":
		return FormatMarkdown, nil
	case FormatHTML:
		return FormatHTML, nil
	case FormatPDF:
		return FormatPDF, nil
	case FormatDOCX:
		return FormatDOCX, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// Ext returns the file extension for the format, dot included.
func (f Format) Ext() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatHTML:
		return ".html"
	case FormatPDF:
		return ".pdf"
	case FormatDOCX:
		return ".docx"
	default:
		return ".txt"
	}
}

// WriteFile serializes the plan to path in the given format. The output
// directory is created if missing. The document is written to a temp
// file in the target directory and renamed into place, so the target
// either holds the previous content or the complete new document, never
// a torn write.
func WriteFile(plan *testplan.Plan, path string, format Format) error {
	if plan == nil {
		return fmt.Errorf("write %s: nil plan", path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".plan-*"+format.Ext())
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		tmp.Close()
		os.Remove(tmpPath)
	}

	switch format {
	case FormatText:
		err = Text(plan, tmp)
	case FormatMarkdown:
		err = Markdown(plan, tmp)
	case FormatHTML:
		err = HTML(plan, tmp)
	case FormatPDF:
		err = PDF(plan, tmp)
	case FormatDOCX:
		// The DOCX writer saves by path: hand it the temp path.
		if err = tmp.Close(); err == nil {
			err = DOCX(plan, tmpPath)
		}
		if err != nil {
			os.Remove(tmpPath)
			return fmt.Errorf("render %s: %w", format, err)
		}
		if err = os.Rename(tmpPath, path); err != nil {
			os.Remove(tmpPath)
			return fmt.Errorf("finalize output: %w", err)
		}
		return nil
	default:
		cleanup()
		return fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		cleanup()
		return fmt.Errorf("render %s: %w", format, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("flush output: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("finalize output: %w", err)
	}
	return nil
}
