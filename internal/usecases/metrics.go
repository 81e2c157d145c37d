package usecases

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter                     = otel.Meter("usecases")
	AppointmentOperations     metric.Int64Counter
	AssistantRuns             metric.Int64Counter
	AssistantPollAttempts     metric.Int64Histogram
	AssistantRunDuration      metric.Float64Histogram
	AssistantToolCallsRelayed metric.Int64Counter
	AssistantToolCalls        metric.Int64Counter
	AppointmentEventsConsumed metric.Int64Counter
)

func init() {
	var err error
	AppointmentOperations, err = meter.Int64Counter(
		"appointment_operations_total",
		metric.WithDescription("Appointments created or removed through the REST API"),
	)
	if err != nil {
		panic(err)
	}

	AssistantRuns, err = meter.Int64Counter(
		"assistant_runs_total",
		metric.WithDescription("Assistant runs by terminal status"),
	)
	if err != nil {
		panic(err)
	}

	AssistantPollAttempts, err = meter.Int64Histogram(
		"assistant_poll_attempts",
		metric.WithDescription("Status polls needed to drive an assistant run to a terminal status"),
	)
	if err != nil {
		panic(err)
	}

	AssistantRunDuration, err = meter.Float64Histogram(
		"assistant_run_duration_seconds",
		metric.WithDescription("Wall-clock time spent driving an assistant run"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}

	AssistantToolCallsRelayed, err = meter.Int64Counter(
		"assistant_tool_outputs_submitted_total",
		metric.WithDescription("Tool outputs submitted back to assistant runs"),
	)
	if err != nil {
		panic(err)
	}

	AssistantToolCalls, err = meter.Int64Counter(
		"assistant_tool_calls_total",
		metric.WithDescription("Tool calls dispatched for assistant runs by tool and outcome"),
	)
	if err != nil {
		panic(err)
	}

	AppointmentEventsConsumed, err = meter.Int64Counter(
		"appointment_events_consumed_total",
		metric.WithDescription("Appointment events received from the message topic"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordAppointmentOperation records a successful appointment mutation.
func RecordAppointmentOperation(ctx context.Context, operation string) {
	AppointmentOperations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
	))
}

// RecordAssistantRun records the outcome of a driven assistant run.
func RecordAssistantRun(ctx context.Context, status string, pollAttempts int, elapsed time.Duration) {
	attrs := metric.WithAttributes(attribute.String("status", status))
	AssistantRuns.Add(ctx, 1, attrs)
	AssistantPollAttempts.Record(ctx, int64(pollAttempts), attrs)
	AssistantRunDuration.Record(ctx, elapsed.Seconds(), attrs)
}

// RecordToolOutputsSubmitted records a batch of tool outputs submitted to a run.
func RecordToolOutputsSubmitted(ctx context.Context, count int) {
	AssistantToolCallsRelayed.Add(ctx, int64(count))
}

// RecordToolCall records one dispatched tool call and whether it succeeded.
func RecordToolCall(ctx context.Context, tool string, outcome string) {
	AssistantToolCalls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.String("outcome", outcome),
	))
}

// RecordAppointmentEventConsumed records one appointment event taken off the topic.
func RecordAppointmentEventConsumed(ctx context.Context, eventType string) {
	AppointmentEventsConsumed.Add(ctx, 1, metric.WithAttributes(
		attribute.String("event_type", eventType),
	))
}
