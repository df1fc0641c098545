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

func TestExtractDelimited_NewestWins(t *testing.T) {
	messages := []string{
		"Let me draft something first.",
		"TEST PLAN:\nold draft\nEND OF TEST PLAN",
		"Here is the revised version.\nTEST PLAN:\nfinal draft\nEND OF TEST PLAN\nThanks!",
	}

	body, err := ExtractDelimited(messages)
	require.NoError(t, err)
	require.Equal(t, "final draft", body)
}

func TestExtractDelimited_SkipsUnclosed(t *testing.T) {
	messages := []string{
		"TEST PLAN:\ncomplete draft\nEND OF TEST PLAN",
		"TEST PLAN:\nstill typing...",
	}

	body, err := ExtractDelimited(messages)
	require.NoError(t, err)
	require.Equal(t, "complete draft", body)
}

func TestExtractDelimited_NotFound(t *testing.T) {
	_, err := ExtractDelimited([]string{"no plan here", "still nothing"})
	require.ErrorIs(t, err, ErrNoPlanFound)

	_, err = ExtractDelimited(nil)
	require.ErrorIs(t, err, ErrNoPlanFound)
}

func TestExtractDelimited_TrimsBody(t *testing.T) {
	messages := []string{"TEST PLAN:\n\n  body text  \n\nEND OF TEST PLAN"}

	body, err := ExtractDelimited(messages)
	require.NoError(t, err)
	require.Equal(t, "body text", body)
}
