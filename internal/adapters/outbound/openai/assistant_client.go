// Package openai adapts the OpenAI Assistants API (threads, runs and run
// steps) to the domain.RemoteAssistant port.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-appointments/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	oai "github.com/sashabaranov/go-openai"
)

const listMessagesLimit = 20

// AssistantClient implements domain.RemoteAssistant on top of go-openai.
type AssistantClient struct {
	client      *oai.Client
	assistantID string
	model       string
}

// NewAssistantClient creates an AssistantClient bound to one assistant id.
// An empty model keeps the model configured on the assistant.
func NewAssistantClient(client *oai.Client, assistantID, model string) AssistantClient {
	return AssistantClient{
		client:      client,
		assistantID: assistantID,
		model:       model,
	}
}

// NewClient builds a go-openai client that sends requests through httpClient.
func NewClient(apiKey, baseURL string, httpClient *http.Client) *oai.Client {
	cfg := oai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return oai.NewClientWithConfig(cfg)
}

// CreateThread creates an empty thread.
func (a AssistantClient) CreateThread(ctx context.Context) (string, error) {
	thread, err := a.client.CreateThread(ctx, oai.ThreadRequest{})
	if err != nil {
		return "", err
	}
	return thread.ID, nil
}

// PostMessage appends a user message to the thread.
func (a AssistantClient) PostMessage(ctx context.Context, threadID, content string) error {
	_, err := a.client.CreateMessage(ctx, threadID, oai.MessageRequest{
		Role:    string(oai.ThreadMessageRoleUser),
		Content: content,
	})
	return err
}

// CreateRun starts a run of the configured assistant on the thread.
func (a AssistantClient) CreateRun(ctx context.Context, params domain.CreateAssistantRunParams) (domain.AssistantRun, error) {
	tools := make([]oai.Tool, 0, len(params.Tools))
	for _, def := range params.Tools {
		tools = append(tools, toTool(def))
	}

	run, err := a.client.CreateRun(ctx, params.ThreadID, oai.RunRequest{
		AssistantID:  a.assistantID,
		Model:        a.model,
		Instructions: params.Instructions,
		Tools:        tools,
	})
	if err != nil {
		return domain.AssistantRun{}, err
	}
	return toDomainRun(run), nil
}

// RetrieveRun fetches the current state of a run.
func (a AssistantClient) RetrieveRun(ctx context.Context, threadID, runID string) (domain.AssistantRun, error) {
	run, err := a.client.RetrieveRun(ctx, threadID, runID)
	if err != nil {
		return domain.AssistantRun{}, err
	}
	return toDomainRun(run), nil
}

// ListRunSteps lists the steps of a run in creation order.
func (a AssistantClient) ListRunSteps(ctx context.Context, threadID, runID string) ([]domain.AssistantRunStep, error) {
	order := "asc"
	list, err := a.client.ListRunSteps(ctx, threadID, runID, oai.Pagination{Order: &order})
	if err != nil {
		return nil, err
	}

	steps := make([]domain.AssistantRunStep, 0, len(list.RunSteps))
	for _, s := range list.RunSteps {
		steps = append(steps, domain.AssistantRunStep{
			ID:        s.ID,
			Type:      string(s.Type),
			Status:    string(s.Status),
			ToolCalls: toDomainToolCalls(s.StepDetails.ToolCalls),
		})
	}
	return steps, nil
}

// SubmitToolOutputs submits all outputs for a run waiting on tool calls.
func (a AssistantClient) SubmitToolOutputs(ctx context.Context, threadID, runID string, outputs []domain.AssistantToolOutput) (domain.AssistantRun, error) {
	req := oai.SubmitToolOutputsRequest{
		ToolOutputs: make([]oai.ToolOutput, 0, len(outputs)),
	}
	for _, o := range outputs {
		req.ToolOutputs = append(req.ToolOutputs, oai.ToolOutput{
			ToolCallID: o.ToolCallID,
			Output:     o.Output,
		})
	}

	run, err := a.client.SubmitToolOutputs(ctx, threadID, runID, req)
	if err != nil {
		return domain.AssistantRun{}, err
	}
	return toDomainRun(run), nil
}

// ListMessages lists the newest thread messages first.
func (a AssistantClient) ListMessages(ctx context.Context, threadID string) ([]domain.AssistantThreadMessage, error) {
	limit := listMessagesLimit
	order := "desc"
	list, err := a.client.ListMessage(ctx, threadID, &limit, &order, nil, nil, nil)
	if err != nil {
		return nil, err
	}

	messages := make([]domain.AssistantThreadMessage, 0, len(list.Messages))
	for _, m := range list.Messages {
		messages = append(messages, domain.AssistantThreadMessage{
			ID:   m.ID,
			Role: m.Role,
			Text: messageText(m.Content),
		})
	}
	return messages, nil
}

func toTool(def domain.AssistantToolDefinition) oai.Tool {
	var params any = json.RawMessage(`{"type":"object","properties":{}}`)
	if len(def.Parameters) > 0 {
		params = def.Parameters
	}
	return oai.Tool{
		Type: oai.ToolTypeFunction,
		Function: &oai.FunctionDefinition{
			Name:        def.Name,
			Description: def.Description,
			Parameters:  params,
		},
	}
}

func toDomainRun(run oai.Run) domain.AssistantRun {
	out := domain.AssistantRun{
		ID:       run.ID,
		ThreadID: run.ThreadID,
		Status:   domain.AssistantRunStatus(run.Status),
	}
	if run.RequiredAction != nil && run.RequiredAction.SubmitToolOutputs != nil {
		out.RequiredToolCalls = toDomainToolCalls(run.RequiredAction.SubmitToolOutputs.ToolCalls)
	}
	if run.LastError != nil {
		out.LastError = &domain.AssistantRunError{
			Code:    string(run.LastError.Code),
			Message: run.LastError.Message,
		}
	}
	return out
}

func toDomainToolCalls(calls []oai.ToolCall) []domain.AssistantToolCall {
	if len(calls) == 0 {
		return nil
	}
	out := make([]domain.AssistantToolCall, 0, len(calls))
	for _, c := range calls {
		out = append(out, domain.AssistantToolCall{
			ID:        c.ID,
			Name:      c.Function.Name,
			Arguments: c.Function.Arguments,
		})
	}
	return out
}

func messageText(content []oai.MessageContent) string {
	parts := make([]string, 0, len(content))
	for _, c := range content {
		if c.Type == "text" && c.Text != nil {
			parts = append(parts, c.Text.Value)
		}
	}
	return strings.Join(parts, "\n")
}

// InitRemoteAssistant registers the OpenAI assistant client as domain.RemoteAssistant.
type InitRemoteAssistant struct {
	HttpClient  *http.Client `resolve:""`
	APIKey      string       `config:"OPENAI_API_KEY"`
	BaseURL     string       `config:"OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
	AssistantID string       `config:"OPENAI_ASSISTANT_ID"`
	Model       string       `config:"OPENAI_MODEL" default:"-"`
}

// Initialize implements the symbiont initializer contract.
func (i InitRemoteAssistant) Initialize(ctx context.Context) (context.Context, error) {
	if i.AssistantID == "" {
		return ctx, fmt.Errorf("OPENAI_ASSISTANT_ID is required")
	}
	model := i.Model
	if model == "-" {
		model = ""
	}
	client := NewClient(i.APIKey, i.BaseURL, i.HttpClient)
	depend.Register[domain.RemoteAssistant](NewAssistantClient(client, i.AssistantID, model))
	return ctx, nil
}
