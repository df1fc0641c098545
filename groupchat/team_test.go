//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

package groupchat

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-agent-go/event"
	"trpc.group/trpc-go/trpc-agent-go/model"

	"trpc.group/trpc-go/trpc-testplan-go/roster"
)

// scriptedModel returns canned responses in call order, repeating the
// last one when the script runs out. It records each request's system
// message so tests can verify which persona spoke.
type scriptedModel struct {
	mu        sync.Mutex
	responses []string
	systems   []string
	calls     int
}

func (m *scriptedModel) Info() model.Info {
	return model.Info{Name: "scripted-model"}
}

func (m *scriptedModel) GenerateContent(ctx context.Context, req *model.Request) (<-chan *model.Response, error) {
	m.mu.Lock()
	idx := m.calls
	m.calls++
	if len(req.Messages) > 0 && req.Messages[0].Role == model.RoleSystem {
		m.systems = append(m.systems, req.Messages[0].Content)
	} else {
		m.systems = append(m.systems, "")
	}
	m.mu.Unlock()

	if idx >= len(m.responses) {
		idx = len(m.responses) - 1
	}
	content := m.responses[idx]

	ch := make(chan *model.Response, 1)
	ch <- &model.Response{
		Object: model.ObjectTypeChatCompletion,
		Done:   true,
		Model:  "scripted-model",
		Choices: []model.Choice{{
			Message: model.Message{Role: model.RoleAssistant, Content: content},
		}},
	}
	close(ch)
	return ch, nil
}

func (m *scriptedModel) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func TestNewTeam_SpeakerOrder(t *testing.T) {
	team, err := NewTeam(roster.Default(), &scriptedModel{responses: []string{"ok"}})
	require.NoError(t, err)
	require.Equal(t, TeamName, team.Info().Name)

	subs := team.SubAgents()
	require.Len(t, subs, 3)
	require.Equal(t, roster.TestPlanCreator, subs[0].Info().Name)
	require.Equal(t, roster.ManualQAAgent, subs[1].Info().Name)
	require.Equal(t, roster.APIQAAgent, subs[2].Info().Name)
}

func TestNewTeam_InvalidRoster(t *testing.T) {
	r := roster.Default()
	r.Rounds = 0

	_, err := NewTeam(r, &scriptedModel{responses: []string{"ok"}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid roster")
}

func TestPlanComplete(t *testing.T) {
	require.False(t, PlanComplete(nil))
	require.False(t, PlanComplete(event.New("inv", "author")))

	errEvt := event.NewErrorEvent("inv", "author", model.ErrorTypeAPIError, "credentials rejected")
	require.True(t, PlanComplete(errEvt))

	done := completionEvent("test_plan_creator", "TEST PLAN: ...\nEND OF TEST PLAN")
	require.True(t, PlanComplete(done))

	inProgress := completionEvent("manual_qa_agent", "TEST_CASES: still going")
	require.False(t, PlanComplete(inProgress))
}
