package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"perfume-logistics/internal/agent"
	"perfume-logistics/internal/alerts"
	"perfume-logistics/internal/catalog"
	"perfume-logistics/internal/store"
	"perfume-logistics/internal/telemetry"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// RunCheck builds the analysis brief from current thresholds and the
// requestable catalog, invokes the Manager agent, normalizes its response,
// and commits a new history entry. Every invocation is independent: two
// identical runs produce two history entries, because every run is an audit
// event. On failure nothing is mutated.
func (s *State) RunCheck(ctx context.Context) (*alerts.CheckResult, error) {
	start := time.Now()

	ctx, span := s.tracer.Start(ctx, "session run_check")
	defer span.End()

	s.mu.Lock()
	settings := s.settings
	requestable := catalog.Requestable(s.products)
	s.mu.Unlock()

	brief := buildCheckBrief(settings, requestable)
	span.SetAttributes(attribute.Int("logistics.catalog_products", len(requestable)))

	payload, err := s.agents.Invoke(ctx, agent.ManagerAgentID, brief)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("logistics check failed: %w", err)
	}

	result := alerts.NormalizeCheck(payload)

	entry := HistoryEntry{
		ID:               "run-" + uuid.NewString(),
		Date:             time.Now().Format("2006-01-02 15:04:05"),
		TotalAlerts:      len(result.Alerts),
		AlertsDispatched: 0,
		Status:           StatusReviewed,
		Alerts:           result.Alerts,
	}

	s.mu.Lock()
	s.history = append([]HistoryEntry{entry}, s.history...)
	if len(s.history) > HistoryLimit {
		s.history = s.history[:HistoryLimit]
	}
	history := append([]HistoryEntry(nil), s.history...)
	s.current = result
	s.sampleMode = false
	s.mu.Unlock()

	store.Save(ctx, s.kv, store.HistoryKey, history)

	if s.metrics != nil {
		s.metrics.RunDuration.Record(ctx, time.Since(start).Seconds())
		s.metrics.AlertsFound.Record(ctx, float64(len(result.Alerts)))
		s.metrics.HistorySize.Record(ctx, float64(len(history)))
		for _, severity := range []string{"critical", "warning", "info"} {
			if n := alerts.CountBySeverity(result.Alerts, severity); n > 0 {
				s.metrics.AlertsBySeverity.Add(ctx, int64(n), telemetry.WithSeverity(severity))
			}
		}
	}

	span.SetAttributes(
		attribute.Int("logistics.alerts_found", len(result.Alerts)),
		attribute.Int("logistics.total_critical", result.TotalCritical),
		attribute.String("logistics.run_id", entry.ID),
	)

	return &result, nil
}

func buildCheckBrief(s ThresholdSettings, products []catalog.Product) string {
	catalogBlock := ""
	if len(products) > 0 {
		lines := make([]string, len(products))
		for i, p := range products {
			lines[i] = fmt.Sprintf("- %s (SKU: %s, %s %s, Brand: %s) | Current Stock: %d units | Min Stock: %d | Reorder Point: %d | Price: $%.2f | Supplier: %s | Status: %s",
				p.Name, p.SKU, p.Category, p.Size, p.Brand, p.CurrentStock, p.MinStock, p.ReorderPoint, p.Price, p.Supplier, p.Status)
		}
		catalogBlock = fmt.Sprintf("\n\nProduct Catalog (%d products):\n%s", len(products), strings.Join(lines, "\n"))
	}

	return fmt.Sprintf(`Run a comprehensive logistics check for our perfume supply chain operations.

Alert Thresholds:
- Minimum stock level: %d units per SKU
- Reorder point: %d units
- Maximum acceptable shipping delay: %d hours
- Order age warning threshold: %d days
%s

Please analyze inventory levels against the product catalog above, check active shipments, and review order pipeline. Flag any items that breach these thresholds with appropriate severity levels (Critical/Warning/Info). Use the actual product names and SKUs from the catalog in your alerts.`,
		s.MinStockLevel, s.ReorderPoint, s.MaxDelayHours, s.OrderAgeWarningDays, catalogBlock)
}
