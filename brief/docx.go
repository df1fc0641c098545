//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package brief

import (
	"fmt"
	"os"
	"strings"

	"github.com/gonfva/docxlib"
)

// readDOCX extracts paragraph text from a Word document, one line per
// paragraph. Formatting, links, and embedded objects are dropped.
func readDOCX(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("read brief: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("read brief: %w", err)
	}

	doc, err := docxlib.Parse(file, info.Size())
	if err != nil {
		return "", fmt.Errorf("parse docx brief: %w", err)
	}

	var allText strings.Builder
	for _, para := range doc.Paragraphs() {
		var line strings.Builder
		for _, child := range para.Children() {
			if child.Run != nil && child.Run.Text != nil {
				line.WriteString(child.Run.Text.Text)
			}
		}
		if text := strings.TrimSpace(line.String()); text != "" {
			allText.WriteString(text)
			allText.WriteString("\n")
		}
	}
	return allText.String(), nil
}
