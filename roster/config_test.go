//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeRosterFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_OverridesAndAppends(t *testing.T) {
	path := writeRosterFile(t, `
rounds: 4
order: [test_plan_creator, database_qa_agent, security_qa_agent]
personas:
  - name: database_qa_agent
    temperature: 0.2
  - name: security_qa_agent
    description: Security reviewer.
    instruction: You probe the system for security weaknesses in every test case.
`)

	r, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, r.Rounds)
	require.Equal(t, []string{TestPlanCreator, DatabaseQAAgent, "security_qa_agent"}, r.Order)

	// Override keeps the default instruction, changes only the knob.
	db, ok := r.ByName(DatabaseQAAgent)
	require.True(t, ok)
	require.Equal(t, 0.2, db.Temperature)
	require.Contains(t, db.Instruction, "DB_TEST_CASES:")

	// New persona is appended alongside the defaults.
	require.Len(t, r.Personas, 9)
	sec, ok := r.ByName("security_qa_agent")
	require.True(t, ok)
	require.Equal(t, "Security reviewer.", sec.Description)
}

func TestLoad_DefaultsUntouchedOnPartialFile(t *testing.T) {
	path := writeRosterFile(t, "rounds: 7\n")

	r, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 7, r.Rounds)
	require.Equal(t, Default().Order, r.Order)
	require.Len(t, r.Personas, 8)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "read roster file")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeRosterFile(t, "personas: [unterminated")
	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse roster file")
}

func TestLoad_InvalidMerge(t *testing.T) {
	// A new persona with no instruction fails validation.
	path := writeRosterFile(t, `
personas:
  - name: silent_agent
order: [silent_agent]
`)
	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty instruction")
}
