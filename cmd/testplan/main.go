//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package main runs a QA agent team against a product brief and writes
// the resulting test plan to disk. With no flags it generates a plan for
// the built-in sample brief using the default roster, so a plain
// `go run ./cmd/testplan` produces output immediately.
//
// Model credentials come from the environment: OPENAI_API_KEY and,
// for non-default endpoints, OPENAI_BASE_URL.
package main

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"trpc.group/trpc-go/trpc-agent-go/log"
	"trpc.group/trpc-go/trpc-agent-go/model/openai"

	"trpc.group/trpc-go/trpc-testplan-go/brief"
	"trpc.group/trpc-go/trpc-testplan-go/export"
	"trpc.group/trpc-go/trpc-testplan-go/generator"
	"trpc.group/trpc-go/trpc-testplan-go/roster"
	"trpc.group/trpc-go/trpc-testplan-go/server/report"
	"trpc.group/trpc-go/trpc-testplan-go/testplan"
)

var (
	modelName  = flag.String("model", "deepseek-chat", "Name of the model to use")
	variant    = flag.String("variant", "openai", "Name of the variant to use when calling the OpenAI provider")
	streaming  = flag.Bool("streaming", true, "Enable streaming mode for responses")
	briefPath  = flag.String("brief", "", "Product brief file (.txt, .md, .pdf, .docx); empty uses the built-in sample")
	rosterPath = flag.String("roster", "", "YAML roster file overriding the default personas")
	outPath    = flag.String("out", export.DefaultPath(), "Output path for the generated plan")
	formatName = flag.String("format", "text", "Output format: text, markdown, html, pdf, docx, or all")
	caseCount  = flag.Int("cases", testplan.DefaultCaseCount, "Number of test cases to request")
	rounds     = flag.Int("rounds", 0, "Passes over the speaking order; 0 keeps the roster default")
	serveAddr  = flag.String("serve", "", "Serve the report API on this address after generating, e.g. :8080")
	logLevel   = flag.String("log-level", "info", "Log level: debug, info, warn, error, fatal")
)

func main() {
	flag.Parse()
	log.SetLevel(*logLevel)

	fmt.Printf("🧪 Multi-agent test plan generator\n")
	fmt.Printf("Model: %s\n", *modelName)
	fmt.Printf("Streaming: %t\n", *streaming)
	fmt.Printf("Requested cases: %d\n", *caseCount)
	fmt.Println(strings.Repeat("=", 50))

	app := &planApp{
		modelName:  *modelName,
		variant:    *variant,
		streaming:  *streaming,
		briefPath:  *briefPath,
		rosterPath: *rosterPath,
		outPath:    *outPath,
		formatName: *formatName,
		caseCount:  *caseCount,
		rounds:     *rounds,
		serveAddr:  *serveAddr,
	}
	if err := app.run(context.Background()); err != nil {
		log.Fatalf("test plan generation failed: %v", err)
	}
}

// planApp holds the resolved configuration for one generation run.
type planApp struct {
	modelName  string
	variant    string
	streaming  bool
	briefPath  string
	rosterPath string
	outPath    string
	formatName string
	caseCount  int
	rounds     int
	serveAddr  string
}

func (a *planApp) run(ctx context.Context) error {
	b, err := a.loadBrief()
	if err != nil {
		return fmt.Errorf("load brief: %w", err)
	}
	fmt.Printf("Brief: %s\n", b.Title)

	r, err := a.loadRoster()
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}

	formats, err := a.formats()
	if err != nil {
		return err
	}

	mdl := openai.New(a.modelName, openai.WithVariant(openai.Variant(a.variant)))
	gen := generator.New(mdl,
		generator.WithRoster(r),
		generator.WithCaseCount(a.caseCount),
		generator.WithStreaming(a.streaming),
	)

	result, err := gen.Generate(ctx, b)
	if err != nil {
		return err
	}

	fmt.Printf("✅ Plan ready: %d cases after %d turns", len(result.Plan.Cases), result.Turns)
	if result.Fallback {
		fmt.Printf(" (recovered without plan markers)")
	}
	fmt.Println()

	for _, f := range formats {
		path := pathForFormat(a.outPath, f)
		if err := export.WriteFile(result.Plan, path, f); err != nil {
			return fmt.Errorf("write %s output: %w", f, err)
		}
		fmt.Printf("📄 Saved %s\n", path)
	}

	if a.serveAddr != "" {
		return report.New(filepath.Dir(a.outPath)).ListenAndServe(a.serveAddr)
	}
	return nil
}

func (a *planApp) loadBrief() (brief.Brief, error) {
	if a.briefPath == "" {
		return brief.Default(), nil
	}
	return brief.FromFile(a.briefPath)
}

func (a *planApp) loadRoster() (*roster.Roster, error) {
	r := roster.Default()
	if a.rosterPath != "" {
		var err error
		if r, err = roster.Load(a.rosterPath); err != nil {
			return nil, err
		}
	}
	if a.rounds > 0 {
		r.Rounds = a.rounds
	}
	return r, nil
}

func (a *planApp) formats() ([]export.Format, error) {
	if strings.EqualFold(strings.TrimSpace(a.formatName), "all") {
		return export.Formats(), nil
	}
	f, err := export.ParseFormat(a.formatName)
	if err != nil {
		return nil, err
	}
	return []export.Format{f}, nil
}

// pathForFormat swaps the extension of the configured output path so a
// multi-format run writes sibling files.
func pathForFormat(path string, f export.Format) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + f.Ext()
}
