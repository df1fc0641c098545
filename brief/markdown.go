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
	"bytes"
	"fmt"
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readMarkdown flattens a Markdown file to plain text by walking the
// parsed AST. The first level-1 heading becomes the brief title.
func readMarkdown(path string) (string, string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read brief: %w", err)
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var (
		buf   bytes.Buffer
		title string
	)
	err = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			// Separate blocks so flattened text keeps its line structure.
			if node.Type() == ast.TypeBlock && buf.Len() > 0 {
				buf.WriteString("\n")
			}
			return ast.WalkContinue, nil
		}
		switch v := node.(type) {
		case *ast.Heading:
			if v.Level == 1 && title == "" {
				title = string(extractNodeText(v, source))
			}
		case *ast.Text:
			buf.Write(v.Text(source))
		case *ast.String:
			buf.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", "", fmt.Errorf("parse markdown brief: %w", err)
	}
	return buf.String(), title, nil
}

// extractNodeText collects the text content beneath a single AST node.
func extractNodeText(node ast.Node, source []byte) []byte {
	var buf bytes.Buffer
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Text:
			buf.Write(v.Text(source))
		case *ast.String:
			buf.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})
	return buf.Bytes()
}
