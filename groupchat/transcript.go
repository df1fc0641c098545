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
	"strings"

	"trpc.group/trpc-go/trpc-agent-go/event"
	"trpc.group/trpc-go/trpc-agent-go/model"
)

// Message is one completed utterance in the group chat.
type Message struct {
	Author  string
	Content string
}

// Transcript accumulates completed messages from an event stream.
// Streaming deltas are buffered per author and committed when the final
// event for the message arrives, so the transcript never contains
// partial fragments.
type Transcript struct {
	messages []Message
	pending  map[string]*strings.Builder
}

// NewTranscript returns an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{pending: make(map[string]*strings.Builder)}
}

// Record folds one event into the transcript. Events without message
// content (preprocessing, tool traffic, runner bookkeeping) are ignored.
func (t *Transcript) Record(evt *event.Event) {
	if evt == nil || evt.Response == nil || len(evt.Response.Choices) == 0 {
		return
	}
	choice := evt.Response.Choices[0]

	// Streaming chunk: buffer the delta under its author.
	if evt.Response.Object == model.ObjectTypeChatCompletionChunk || evt.Response.IsPartial {
		if choice.Delta.Content != "" {
			t.buffer(evt.Author).WriteString(choice.Delta.Content)
		}
		return
	}
	if !evt.Response.Done {
		return
	}

	// Completed message: the full content supersedes any buffered deltas.
	if choice.Message.Content != "" {
		delete(t.pending, evt.Author)
		t.messages = append(t.messages, Message{Author: evt.Author, Content: choice.Message.Content})
		return
	}
	t.commitPending(evt.Author)
}

// Flush commits any authors still holding buffered deltas. Call it after
// the event channel closes so a stream cut off mid-message is not lost.
func (t *Transcript) Flush() {
	for author := range t.pending {
		t.commitPending(author)
	}
}

// Messages returns the completed messages in arrival order.
func (t *Transcript) Messages() []Message {
	return t.messages
}

// Contents returns just the message bodies, in arrival order.
func (t *Transcript) Contents() []string {
	contents := make([]string, len(t.messages))
	for i, m := range t.messages {
		contents[i] = m.Content
	}
	return contents
}

// Len reports the number of completed messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Text renders the whole conversation as attributed plain text.
func (t *Transcript) Text() string {
	var sb strings.Builder
	for _, m := range t.messages {
		sb.WriteString(m.Author)
		sb.WriteString(": ")
		sb.WriteString(m.Content)
		sb.WriteString("\n\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func (t *Transcript) buffer(author string) *strings.Builder {
	b, ok := t.pending[author]
	if !ok {
		b = &strings.Builder{}
		t.pending[author] = b
	}
	return b
}

func (t *Transcript) commitPending(author string) {
	b, ok := t.pending[author]
	if !ok {
		return
	}
	delete(t.pending, author)
	if content := b.String(); content != "" {
		t.messages = append(t.messages, Message{Author: author, Content: content})
	}
}
