package usecases

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-appointments/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.yaml.in/yaml/v3"
)

//go:embed prompts/assistant.yml
var assistantPrompt embed.FS

// runState is the Run Driver state derived from each observed run status.
type runState int

const (
	runState_Starting runState = iota
	runState_Polling
	runState_RequiresAction
	runState_Completed
	runState_Failed
	runState_Unexpected
)

func (s runState) String() string {
	switch s {
	case runState_Starting:
		return "starting"
	case runState_Polling:
		return "polling"
	case runState_RequiresAction:
		return "requires_action"
	case runState_Completed:
		return "completed"
	case runState_Failed:
		return "failed"
	default:
		return "unexpected"
	}
}

// stateForStatus maps a remote run status to the next driver state.
func stateForStatus(status domain.AssistantRunStatus) runState {
	switch {
	case status.IsPending():
		return runState_Polling
	case status == domain.AssistantRunStatus_RequiresAction:
		return runState_RequiresAction
	case status == domain.AssistantRunStatus_Completed:
		return runState_Completed
	case status == domain.AssistantRunStatus_Failed:
		return runState_Failed
	default:
		return runState_Unexpected
	}
}

// RunDriverConfig bounds how long a single assistant run may be driven.
type RunDriverConfig struct {
	PollInterval    time.Duration
	MaxPollAttempts int
	RunTimeout      time.Duration
}

// ProcessUserMessage defines the interface for the ProcessUserMessage use case.
type ProcessUserMessage interface {
	Execute(ctx context.Context, userMessage string) (string, error)
}

// ProcessUserMessageImpl drives a remote assistant run for one user message,
// dispatching the tool calls it requests until the run reaches a terminal status.
type ProcessUserMessageImpl struct {
	assistant    domain.RemoteAssistant
	tools        domain.AssistantToolRegistry
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
	cfg          RunDriverConfig
	wait         func(ctx context.Context, d time.Duration) error
}

// NewProcessUserMessageImpl creates a new instance of ProcessUserMessageImpl.
func NewProcessUserMessageImpl(
	assistant domain.RemoteAssistant,
	tools domain.AssistantToolRegistry,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
	cfg RunDriverConfig,
) ProcessUserMessageImpl {
	return ProcessUserMessageImpl{
		assistant:    assistant,
		tools:        tools,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
		wait:         waitInterval,
	}
}

// Execute sends userMessage to a new thread, drives the run and returns the
// newest assistant reply.
func (p ProcessUserMessageImpl) Execute(ctx context.Context, userMessage string) (string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(userMessage) == "" {
		err := domain.NewValidationErr("user_message cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return "", err
	}

	runCtx := spanCtx
	if p.cfg.RunTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(spanCtx, p.cfg.RunTimeout)
		defer cancel()
	}

	started := time.Now()
	reply, final, attempts, err := p.drive(runCtx, userMessage)
	if err != nil && errors.Is(runCtx.Err(), context.DeadlineExceeded) && spanCtx.Err() == nil {
		err = domain.NewTimeoutErr(fmt.Sprintf("assistant run did not finish within %s", p.cfg.RunTimeout))
	}

	status := final.String()
	var timeoutErr *domain.TimeoutErr
	if errors.As(err, &timeoutErr) {
		status = "timed_out"
	}
	RecordAssistantRun(spanCtx, status, attempts, time.Since(started))
	span.SetAttributes(
		attribute.String("run.final_state", status),
		attribute.Int("run.poll_attempts", attempts),
	)

	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}
	return reply, nil
}

// drive runs the state machine and returns the reply, the last state reached
// and the number of status polls performed.
func (p ProcessUserMessageImpl) drive(ctx context.Context, userMessage string) (string, runState, int, error) {
	state := runState_Starting
	run, err := p.start(ctx, userMessage)
	if err != nil {
		return "", state, 0, err
	}

	attempts := 0
	state = runState_Polling
	for {
		switch state {
		case runState_Polling:
			if p.cfg.MaxPollAttempts > 0 && attempts >= p.cfg.MaxPollAttempts {
				return "", state, attempts, domain.NewTimeoutErr(
					fmt.Sprintf("assistant run %s still %s after %d status checks", run.ID, run.Status, attempts),
				)
			}
			if attempts > 0 && run.Status.IsPending() {
				if err := p.wait(ctx, p.cfg.PollInterval); err != nil {
					return "", state, attempts, err
				}
			}
			attempts++
			run, err = p.assistant.RetrieveRun(ctx, run.ThreadID, run.ID)
			if err != nil {
				return "", state, attempts, err
			}
			state = stateForStatus(run.Status)

		case runState_RequiresAction:
			if err := p.submitToolOutputs(ctx, run); err != nil {
				return "", state, attempts, err
			}
			// Force the next poll to skip the wait.
			run.Status = domain.AssistantRunStatus_RequiresAction
			state = runState_Polling

		case runState_Completed:
			reply, err := p.latestReply(ctx, run)
			return reply, state, attempts, err

		case runState_Failed:
			msg := "assistant run failed"
			if run.LastError != nil {
				msg = fmt.Sprintf("assistant run failed: %s: %s", run.LastError.Code, run.LastError.Message)
			}
			p.logger.Printf("ProcessUserMessage: run %s failed: %s", run.ID, msg)
			return "", state, attempts, domain.NewAssistantRunErr(string(run.Status), msg)

		default:
			p.logger.Printf("ProcessUserMessage: run %s ended with unexpected status %q", run.ID, run.Status)
			return "", runState_Unexpected, attempts, domain.NewAssistantRunErr(
				runState_Unexpected.String(),
				fmt.Sprintf("assistant run ended with unexpected status %q", run.Status),
			)
		}
	}
}

// start creates the thread, posts the user message and creates the run.
func (p ProcessUserMessageImpl) start(ctx context.Context, userMessage string) (domain.AssistantRun, error) {
	instructions, err := p.buildInstructions()
	if err != nil {
		return domain.AssistantRun{}, err
	}

	threadID, err := p.assistant.CreateThread(ctx)
	if err != nil {
		return domain.AssistantRun{}, fmt.Errorf("failed to create thread: %w", err)
	}

	if err := p.assistant.PostMessage(ctx, threadID, userMessage); err != nil {
		return domain.AssistantRun{}, fmt.Errorf("failed to post message: %w", err)
	}

	run, err := p.assistant.CreateRun(ctx, domain.CreateAssistantRunParams{
		ThreadID:     threadID,
		Instructions: instructions,
		Tools:        p.tools.Definitions(),
	})
	if err != nil {
		return domain.AssistantRun{}, fmt.Errorf("failed to create run: %w", err)
	}
	if run.ThreadID == "" {
		run.ThreadID = threadID
	}
	return run, nil
}

// submitToolOutputs dispatches every requested call and submits all outputs in one batch.
func (p ProcessUserMessageImpl) submitToolOutputs(ctx context.Context, run domain.AssistantRun) error {
	if len(run.RequiredToolCalls) == 0 {
		return domain.NewAssistantRunErr(string(run.Status), "assistant run requires action but requested no tool calls")
	}

	outputs := make([]domain.AssistantToolOutput, 0, len(run.RequiredToolCalls))
	for _, call := range run.RequiredToolCalls {
		output := p.tools.Dispatch(ctx, call)
		output.ToolCallID = call.ID
		outputs = append(outputs, output)
	}

	if _, err := p.assistant.SubmitToolOutputs(ctx, run.ThreadID, run.ID, outputs); err != nil {
		return fmt.Errorf("failed to submit tool outputs: %w", err)
	}
	RecordToolOutputsSubmitted(ctx, len(outputs))
	return nil
}

// latestReply returns the text of the newest assistant message in the thread.
func (p ProcessUserMessageImpl) latestReply(ctx context.Context, run domain.AssistantRun) (string, error) {
	steps, err := p.assistant.ListRunSteps(ctx, run.ThreadID, run.ID)
	if err != nil {
		p.logger.Printf("ProcessUserMessage: failed to list steps of run %s: %v", run.ID, err)
	} else {
		toolCalls := 0
		for _, step := range steps {
			toolCalls += len(step.ToolCalls)
		}
		p.logger.Printf("ProcessUserMessage: run %s completed in %d steps with %d tool calls", run.ID, len(steps), toolCalls)
	}

	messages, err := p.assistant.ListMessages(ctx, run.ThreadID)
	if err != nil {
		return "", fmt.Errorf("failed to list messages: %w", err)
	}
	for _, msg := range messages {
		if msg.Role == "assistant" && strings.TrimSpace(msg.Text) != "" {
			return msg.Text, nil
		}
	}
	return "", domain.NewAssistantRunErr(string(run.Status), "assistant run completed without a reply")
}

type promptMessage struct {
	Role    string `yaml:"role"`
	Content string `yaml:"content"`
}

// buildInstructions renders the embedded system prompt for the current date.
func (p ProcessUserMessageImpl) buildInstructions() (string, error) {
	file, err := assistantPrompt.Open("prompts/assistant.yml")
	if err != nil {
		return "", fmt.Errorf("failed to open assistant prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	messages := []promptMessage{}
	if err := yaml.NewDecoder(file).Decode(&messages); err != nil {
		return "", fmt.Errorf("failed to decode assistant prompt: %w", err)
	}

	parts := make([]string, 0, len(messages))
	for i, msg := range messages {
		if msg.Role != "system" {
			continue
		}
		content := msg.Content
		if i == 0 {
			content = fmt.Sprintf(content, p.timeProvider.Now().UTC().Format(time.DateOnly))
		}
		parts = append(parts, strings.TrimSpace(content))
	}
	return strings.Join(parts, "\n\n"), nil
}

// waitInterval blocks for d or until ctx is done.
func waitInterval(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// InitProcessUserMessage registers the ProcessUserMessage use case in the dependency container.
type InitProcessUserMessage struct {
	Assistant       domain.RemoteAssistant       `resolve:""`
	Tools           domain.AssistantToolRegistry `resolve:""`
	TimeProvider    domain.CurrentTimeProvider   `resolve:""`
	Logger          *log.Logger                  `resolve:""`
	PollInterval    time.Duration                `config:"ASSISTANT_POLL_INTERVAL" default:"5s"`
	MaxPollAttempts int                          `config:"ASSISTANT_MAX_POLL_ATTEMPTS" default:"60"`
	RunTimeout      time.Duration                `config:"ASSISTANT_RUN_TIMEOUT" default:"5m"`
}

// Initialize implements the symbiont initializer contract.
func (i InitProcessUserMessage) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ProcessUserMessage](NewProcessUserMessageImpl(
		i.Assistant,
		i.Tools,
		i.TimeProvider,
		i.Logger,
		RunDriverConfig{
			PollInterval:    i.PollInterval,
			MaxPollAttempts: i.MaxPollAttempts,
			RunTimeout:      i.RunTimeout,
		},
	))
	return ctx, nil
}
