package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssistantRunStatus_IsPending(t *testing.T) {
	tests := map[AssistantRunStatus]bool{
		AssistantRunStatus_Queued:         true,
		AssistantRunStatus_InProgress:     true,
		AssistantRunStatus_RequiresAction: false,
		AssistantRunStatus_Cancelling:     false,
		AssistantRunStatus_Cancelled:      false,
		AssistantRunStatus_Failed:         false,
		AssistantRunStatus_Completed:      false,
		AssistantRunStatus_Incomplete:     false,
		AssistantRunStatus_Expired:        false,
	}

	for status, expected := range tests {
		t.Run(string(status), func(t *testing.T) {
			assert.Equal(t, expected, status.IsPending())
		})
	}
}
