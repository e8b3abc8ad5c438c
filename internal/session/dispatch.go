package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"perfume-logistics/internal/agent"
	"perfume-logistics/internal/alerts"
	"perfume-logistics/internal/store"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Dispatch hands the selected alerts to the Dispatcher agent and folds the
// outcome into the most recent history entry: alertsDispatched grows by
// len(selected) and the entry moves to Dispatched. The increment is blind —
// repeated dispatches against the same run keep accumulating even when the
// same alerts are re-selected. Empty selection is the caller's guard; an
// empty history leaves the fold a no-op. On agent failure nothing mutates.
func (s *State) Dispatch(ctx context.Context, selected []alerts.Alert, slackChannel string, emailRecipients []string) (*alerts.DispatchResult, error) {
	start := time.Now()

	ctx, span := s.tracer.Start(ctx, "session dispatch")
	defer span.End()
	span.SetAttributes(attribute.Int("logistics.selected_alerts", len(selected)))

	brief := buildDispatchBrief(selected, slackChannel, emailRecipients)

	payload, err := s.agents.Invoke(ctx, agent.DispatcherAgentID, brief)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("alert dispatch failed: %w", err)
	}

	result := alerts.NormalizeDispatch(payload)

	s.mu.Lock()
	if len(s.history) > 0 {
		// Credits whatever run is at the head when the response lands.
		s.history[0].AlertsDispatched += len(selected)
		s.history[0].Status = StatusDispatched
		history := append([]HistoryEntry(nil), s.history...)
		s.mu.Unlock()
		store.Save(ctx, s.kv, store.HistoryKey, history)
	} else {
		s.mu.Unlock()
	}

	if s.metrics != nil {
		s.metrics.DispatchDuration.Record(ctx, time.Since(start).Seconds())
		s.metrics.AlertsDispatched.Add(ctx, int64(len(selected)))
	}

	span.SetAttributes(
		attribute.Int("logistics.total_dispatched", result.TotalDispatched),
		attribute.String("logistics.slack_status", result.SlackStatus),
		attribute.String("logistics.email_status", result.EmailStatus),
	)

	return &result, nil
}

func buildDispatchBrief(selected []alerts.Alert, slackChannel string, emailRecipients []string) string {
	recipients := "none specified"
	if len(emailRecipients) > 0 {
		recipients = strings.Join(emailRecipients, ", ")
	}

	lines := make([]string, len(selected))
	for i, a := range selected {
		lines[i] = fmt.Sprintf("- [%s] %s: %s. Recommended action: %s", a.Severity, a.Title, a.Description, a.RecommendedAction)
	}

	return fmt.Sprintf("Dispatch the following alerts to Slack channel %q and email recipients %s:\n\n%s",
		slackChannel, recipients, strings.Join(lines, "\n"))
}
