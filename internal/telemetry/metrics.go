package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Metrics struct {
	TokenUsage        metric.Float64Histogram
	OperationDuration metric.Float64Histogram
	Cost              metric.Float64Counter
	RetryCount        metric.Int64Counter
	FallbackCount     metric.Int64Counter
	ErrorCount        metric.Int64Counter

	RunDuration      metric.Float64Histogram
	AlertsFound      metric.Float64Histogram
	AlertsBySeverity metric.Int64Counter
	DispatchDuration metric.Float64Histogram
	AlertsDispatched metric.Int64Counter
	HistorySize      metric.Float64Histogram
}

func NewMetrics(m metric.Meter) (*Metrics, error) {
	tokenUsage, err := m.Float64Histogram("gen_ai.client.token.usage",
		metric.WithUnit("{token}"),
		metric.WithDescription("Number of tokens used per agent call"),
	)
	if err != nil {
		return nil, err
	}

	operationDuration, err := m.Float64Histogram("gen_ai.client.operation.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Wall-clock duration of agent API call"),
	)
	if err != nil {
		return nil, err
	}

	cost, err := m.Float64Counter("gen_ai.client.cost",
		metric.WithUnit("usd"),
		metric.WithDescription("Cumulative cost of agent calls in USD"),
	)
	if err != nil {
		return nil, err
	}

	retryCount, err := m.Int64Counter("gen_ai.client.retry.count",
		metric.WithUnit("{retry}"),
		metric.WithDescription("Number of retry attempts"),
	)
	if err != nil {
		return nil, err
	}

	fallbackCount, err := m.Int64Counter("gen_ai.client.fallback.count",
		metric.WithUnit("{fallback}"),
		metric.WithDescription("Number of fallback provider triggers"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := m.Int64Counter("gen_ai.client.error.count",
		metric.WithUnit("{error}"),
		metric.WithDescription("Number of agent call errors"),
	)
	if err != nil {
		return nil, err
	}

	runDuration, err := m.Float64Histogram("logistics.run.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Total duration of a logistics check run"),
	)
	if err != nil {
		return nil, err
	}

	alertsFound, err := m.Float64Histogram("logistics.run.alerts",
		metric.WithUnit("{alert}"),
		metric.WithDescription("Number of alerts produced per run"),
	)
	if err != nil {
		return nil, err
	}

	alertsBySeverity, err := m.Int64Counter("logistics.alerts.by_severity",
		metric.WithUnit("{alert}"),
		metric.WithDescription("Alerts produced, partitioned by severity"),
	)
	if err != nil {
		return nil, err
	}

	dispatchDuration, err := m.Float64Histogram("logistics.dispatch.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Total duration of a dispatch call"),
	)
	if err != nil {
		return nil, err
	}

	alertsDispatched, err := m.Int64Counter("logistics.dispatch.alerts",
		metric.WithUnit("{alert}"),
		metric.WithDescription("Alerts handed to the dispatcher agent"),
	)
	if err != nil {
		return nil, err
	}

	historySize, err := m.Float64Histogram("logistics.history.size",
		metric.WithUnit("{entry}"),
		metric.WithDescription("History length after a committed run"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		TokenUsage:        tokenUsage,
		OperationDuration: operationDuration,
		Cost:              cost,
		RetryCount:        retryCount,
		FallbackCount:     fallbackCount,
		ErrorCount:        errorCount,
		RunDuration:       runDuration,
		AlertsFound:       alertsFound,
		AlertsBySeverity:  alertsBySeverity,
		DispatchDuration:  dispatchDuration,
		AlertsDispatched:  alertsDispatched,
		HistorySize:       historySize,
	}, nil
}

type RecordParams struct {
	Provider     string
	Model        string
	Agent        string
	InputTokens  int
	OutputTokens int
	DurationSec  float64
	CostUSD      float64
}

func (g *Metrics) RecordAgentCall(ctx context.Context, p RecordParams) {
	baseAttrs := []attribute.KeyValue{
		attribute.String("gen_ai.operation.name", "chat"),
		attribute.String("gen_ai.provider.name", p.Provider),
		attribute.String("gen_ai.request.model", p.Model),
	}
	if p.Agent != "" {
		baseAttrs = append(baseAttrs, attribute.String("logistics.agent", p.Agent))
	}
	attrs := metric.WithAttributes(baseAttrs...)

	g.TokenUsage.Record(ctx, float64(p.InputTokens),
		attrs,
		metric.WithAttributes(attribute.String("gen_ai.token.type", "input")),
	)
	g.TokenUsage.Record(ctx, float64(p.OutputTokens),
		attrs,
		metric.WithAttributes(attribute.String("gen_ai.token.type", "output")),
	)
	g.OperationDuration.Record(ctx, p.DurationSec, attrs)
	g.Cost.Add(ctx, p.CostUSD, attrs)
}

func WithProviderModel(provider, model string) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.String("gen_ai.provider.name", provider),
		attribute.String("gen_ai.request.model", model),
	)
}

func WithSeverity(severity string) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String("logistics.severity", severity))
}

func WithAgent(agent string) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String("logistics.agent", agent))
}
