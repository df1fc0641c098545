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
	"errors"
	"strings"
)

// ErrNoPlanFound indicates that no message carried a complete delimited
// plan document.
var ErrNoPlanFound = errors.New("no delimited test plan found")

// ExtractDelimited scans messages newest-first and returns the body of the
// first complete plan document it finds: the text between StartMarker and
// EndMarker, markers excluded, surrounding whitespace trimmed. Messages
// that open a plan without closing it are skipped.
func ExtractDelimited(messages []string) (string, error) {
	for i := len(messages) - 1; i >= 0; i-- {
		body, ok := delimitedBody(messages[i])
		if ok {
			return body, nil
		}
	}
	return "", ErrNoPlanFound
}

func delimitedBody(content string) (string, bool) {
	start := strings.Index(content, StartMarker)
	if start < 0 {
		return "", false
	}
	rest := content[start+len(StartMarker):]
	end := strings.Index(rest, EndMarker)
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}
