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
	"fmt"
	"strings"
)

// DefaultCaseCount is the number of test cases requested when the caller
// does not specify one.
const DefaultCaseCount = 25

const promptTemplate = `Create a detailed test plan with the following requirements:

Context: %s

Test Plan Requirements:
1. Include a clear **Objective** for the test plan.
2. Define the **Scope**, including which systems, components, or APIs will be tested.
3. Specify the **Testing Strategy**, such as manual testing, automated testing, API testing, database testing, and system testing.
4. Highlight the **Test Environment** requirements and setup.
5. Provide a **Schedule** and testing phases (e.g., Unit Testing, Integration Testing, End-to-End Testing).
6. Include a list of **Test Cases**:
    - Each test case must follow this format:
      Test Case [Number]: [Test Case Title]
      Objective: [Purpose of the test case]
      Preconditions: [Preconditions required before executing the test]
      Test Steps:
        1. [Step 1]
        2. [Step 2]
        3. [Step 3]
      Expected Results: [Expected outcome for this test case]
      Priority: [Low/Medium/High]
      Status: [Draft/Ready for Execution/Completed]
7. End with **Risk Assessment**: Highlight potential risks and mitigation strategies.

Generate %d detailed test cases and ensure no fields are left incomplete.

START WITH '%s' AND END WITH '%s'`

// KickoffPrompt renders the opening user message that asks the team for a
// complete plan covering the brief. Zero or negative caseCount falls back
// to DefaultCaseCount.
func KickoffPrompt(briefText string, caseCount int) string {
	if caseCount <= 0 {
		caseCount = DefaultCaseCount
	}
	return fmt.Sprintf(promptTemplate, strings.TrimSpace(briefText), caseCount, StartMarker, EndMarker)
}
