//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package testplan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKickoffPrompt(t *testing.T) {
	prompt := KickoffPrompt("  Build a ledger service.  ", 12)

	require.Contains(t, prompt, "Context: Build a ledger service.")
	require.Contains(t, prompt, "Generate 12 detailed test cases")
	require.Contains(t, prompt, StartMarker)
	require.Contains(t, prompt, EndMarker)
	require.Contains(t, prompt, "**Risk Assessment**")
	require.Contains(t, prompt, "Priority: [Low/Medium/High]")
}

func TestKickoffPrompt_DefaultCount(t *testing.T) {
	prompt := KickoffPrompt("anything", 0)
	require.Contains(t, prompt, "Generate 25 detailed test cases")

	prompt = KickoffPrompt("anything", -3)
	require.Contains(t, prompt, "Generate 25 detailed test cases")
}
