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
	"fmt"
	"html"
	"io"

	"github.com/yuin/goldmark"

	"trpc.group/trpc-go/trpc-testplan-go/testplan"
)

const htmlStyle = `body{font-family:sans-serif;max-width:60em;margin:2em auto;padding:0 1em;line-height:1.5}
h1{border-bottom:2px solid #ccc;padding-bottom:.3em}
h3{margin-top:1.5em}
pre{background:#f6f8fa;padding:1em;overflow-x:auto}`

// HTML writes a standalone HTML page for the plan. The body is the
// Markdown rendering converted by goldmark.
func HTML(plan *testplan.Plan, w io.Writer) error {
	var body bytes.Buffer
	if err := goldmark.New().Convert([]byte(renderMarkdown(plan)), &body); err != nil {
		return fmt.Errorf("convert markdown: %w", err)
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n<style>%s</style>\n</head>\n<body>\n",
		html.EscapeString(plan.Title), htmlStyle); err != nil {
		return err
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}
