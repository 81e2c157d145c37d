package domain

import (
	"context"
	"encoding/json"
)

// AssistantRunStatus represents the lifecycle status reported for a remote assistant run.
type AssistantRunStatus string

const (
	AssistantRunStatus_Queued         AssistantRunStatus = "queued"
	AssistantRunStatus_InProgress     AssistantRunStatus = "in_progress"
	AssistantRunStatus_RequiresAction AssistantRunStatus = "requires_action"
	AssistantRunStatus_Cancelling     AssistantRunStatus = "cancelling"
	AssistantRunStatus_Cancelled      AssistantRunStatus = "cancelled"
	AssistantRunStatus_Failed         AssistantRunStatus = "failed"
	AssistantRunStatus_Completed      AssistantRunStatus = "completed"
	AssistantRunStatus_Incomplete     AssistantRunStatus = "incomplete"
	AssistantRunStatus_Expired        AssistantRunStatus = "expired"
)

// IsPending reports whether the run is still being processed by the remote assistant.
func (s AssistantRunStatus) IsPending() bool {
	return s == AssistantRunStatus_Queued || s == AssistantRunStatus_InProgress
}

// AssistantToolCall is one local function invocation requested by a run.
type AssistantToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// AssistantToolOutput is the result of a dispatched tool call, keyed by the originating call id.
type AssistantToolOutput struct {
	ToolCallID string
	Output     string
}

// AssistantRunError carries the failure reported by the remote assistant.
type AssistantRunError struct {
	Code    string
	Message string
}

// AssistantRun is a transient snapshot of a remote assistant run.
type AssistantRun struct {
	ID                string
	ThreadID          string
	Status            AssistantRunStatus
	RequiredToolCalls []AssistantToolCall
	LastError         *AssistantRunError
}

// AssistantRunStep summarizes one step the remote assistant executed while processing a run.
type AssistantRunStep struct {
	ID        string
	Type      string
	Status    string
	ToolCalls []AssistantToolCall
}

// AssistantThreadMessage is a message stored in a remote assistant thread.
type AssistantThreadMessage struct {
	ID   string
	Role string
	Text string
}

// AssistantToolDefinition describes one tool exposed to the remote assistant.
type AssistantToolDefinition struct {
	Name        string
	Description string
	Parameters  json.RawMessage
}

// CreateAssistantRunParams holds the inputs required to start a run on a thread.
type CreateAssistantRunParams struct {
	ThreadID     string
	Instructions string
	Tools        []AssistantToolDefinition
}

// RemoteAssistant is the boundary to the hosted assistant API (threads and runs).
type RemoteAssistant interface {
	// CreateThread creates a new conversation thread and returns its id.
	CreateThread(ctx context.Context) (string, error)
	// PostMessage appends a user message to the thread.
	PostMessage(ctx context.Context, threadID string, content string) error
	// CreateRun starts a run on the thread.
	CreateRun(ctx context.Context, params CreateAssistantRunParams) (AssistantRun, error)
	// RetrieveRun returns the current state of a run.
	RetrieveRun(ctx context.Context, threadID string, runID string) (AssistantRun, error)
	// ListRunSteps returns the steps executed by a run.
	ListRunSteps(ctx context.Context, threadID string, runID string) ([]AssistantRunStep, error)
	// SubmitToolOutputs submits all outputs for the pending tool calls in a single batch.
	SubmitToolOutputs(ctx context.Context, threadID string, runID string, outputs []AssistantToolOutput) (AssistantRun, error)
	// ListMessages returns the thread messages, newest first.
	ListMessages(ctx context.Context, threadID string) ([]AssistantThreadMessage, error)
}

// AssistantToolRegistry exposes and dispatches the local tools callable by the remote assistant.
type AssistantToolRegistry interface {
	// Definitions returns the tool definitions sent at run creation.
	Definitions() []AssistantToolDefinition
	// Dispatch executes the requested call and returns its output.
	Dispatch(ctx context.Context, call AssistantToolCall) AssistantToolOutput
}
