package session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"perfume-logistics/internal/agent"
	"perfume-logistics/internal/catalog"
	"perfume-logistics/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type fakeAgents struct {
	payload     string
	err         error
	calls       int
	lastAgentID string
	lastMessage string
}

func (f *fakeAgents) Invoke(_ context.Context, agentID, message string) (gjson.Result, error) {
	f.calls++
	f.lastAgentID = agentID
	f.lastMessage = message
	if f.err != nil {
		return gjson.Parse("{}"), f.err
	}
	return gjson.Parse(f.payload), nil
}

func newTestState(t *testing.T, kv store.KV, agents Invoker) *State {
	t.Helper()
	if kv == nil {
		kv = store.NewMemoryKV()
	}
	tp := sdktrace.NewTracerProvider()
	return New(context.Background(), kv, agents, tp.Tracer("test"), nil)
}

const singleCriticalPayload = `{
	"inventory_alerts": [{"id": "a1", "title": "Low Stock: Chanel No. 5", "category": "Inventory", "severity": "Critical"}],
	"shipping_alerts": [],
	"order_alerts": [],
	"total_critical": 1,
	"overall_summary": "one critical issue"
}`

func TestRunCheckEmbedsCatalogLine(t *testing.T) {
	ctx := context.Background()
	agents := &fakeAgents{payload: singleCriticalPayload}
	s := newTestState(t, nil, agents)

	s.SaveSettings(ctx, ThresholdSettings{MinStockLevel: 50, ReorderPoint: 100, MaxDelayHours: 48, OrderAgeWarningDays: 7})
	_, err := s.AddProduct(ctx, catalog.Input{
		SKU: "CHN5-100", Name: "Chanel No. 5 EDP 100ml", Brand: "Chanel",
		Category: "EDP", Size: "100ml", CurrentStock: 12, MinStock: 50,
		ReorderPoint: 100, Price: 189.99, Supplier: "LuxFragrance", Status: catalog.StatusActive,
	})
	require.NoError(t, err)

	result, err := s.RunCheck(ctx)
	require.NoError(t, err)

	assert.Equal(t, agent.ManagerAgentID, agents.lastAgentID)
	assert.Contains(t, agents.lastMessage, "Minimum stock level: 50 units per SKU")
	assert.Contains(t, agents.lastMessage, "Product Catalog (1 products)")
	assert.Contains(t, agents.lastMessage, "Current Stock: 12 units")
	assert.Contains(t, agents.lastMessage, "SKU: CHN5-100")

	require.Len(t, result.Alerts, 1)
	history := s.History()
	require.Len(t, history, 1)
	assert.Equal(t, 1, history[0].TotalAlerts)
	assert.Equal(t, StatusReviewed, history[0].Status)
	assert.Zero(t, history[0].AlertsDispatched)
}

func TestRunCheckOmitsCatalogBlockWhenEmpty(t *testing.T) {
	agents := &fakeAgents{payload: singleCriticalPayload}
	s := newTestState(t, nil, agents)

	_, err := s.RunCheck(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, agents.lastMessage, "Product Catalog")
}

func TestRunCheckExcludesDiscontinuedProducts(t *testing.T) {
	ctx := context.Background()
	agents := &fakeAgents{payload: singleCriticalPayload}
	s := newTestState(t, nil, agents)

	_, err := s.AddProduct(ctx, catalog.Input{SKU: "OLD-1", Name: "Retired Scent", Status: catalog.StatusDiscontinued})
	require.NoError(t, err)
	_, err = s.AddProduct(ctx, catalog.Input{SKU: "OOS-1", Name: "Empty Shelf", Status: catalog.StatusOutOfStock})
	require.NoError(t, err)

	_, err = s.RunCheck(ctx)
	require.NoError(t, err)
	assert.NotContains(t, agents.lastMessage, "Retired Scent")
	assert.Contains(t, agents.lastMessage, "Empty Shelf")
}

func TestRunCheckFailureLeavesHistoryUntouched(t *testing.T) {
	ctx := context.Background()
	agents := &fakeAgents{payload: singleCriticalPayload}
	s := newTestState(t, nil, agents)

	_, err := s.RunCheck(ctx)
	require.NoError(t, err)
	require.Len(t, s.History(), 1)

	agents.err = errors.New("agent unreachable")
	_, err = s.RunCheck(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logistics check failed")

	assert.Len(t, s.History(), 1)
	snap := s.Snapshot()
	assert.Len(t, snap.Alerts, 1)
}

func TestRunCheckTruncatesHistoryTo50(t *testing.T) {
	ctx := context.Background()
	agents := &fakeAgents{payload: singleCriticalPayload}
	s := newTestState(t, nil, agents)

	var lastID string
	for i := 0; i < 55; i++ {
		_, err := s.RunCheck(ctx)
		require.NoError(t, err)
		lastID = s.History()[0].ID
	}

	history := s.History()
	require.Len(t, history, HistoryLimit)
	assert.Equal(t, lastID, history[0].ID)

	// Distinct entries even with identical inputs: every run is audited.
	seen := map[string]bool{}
	for _, e := range history {
		assert.False(t, seen[e.ID])
		seen[e.ID] = true
	}
}

func TestRunCheckPersistsHistory(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	agents := &fakeAgents{payload: singleCriticalPayload}
	s := newTestState(t, kv, agents)

	_, err := s.RunCheck(ctx)
	require.NoError(t, err)

	reloaded := store.Load(ctx, kv, store.HistoryKey, []HistoryEntry{})
	require.Len(t, reloaded, 1)
	assert.Equal(t, s.History()[0].ID, reloaded[0].ID)
}

func TestRunCheckMalformedPayloadCommitsEmptyRun(t *testing.T) {
	ctx := context.Background()
	agents := &fakeAgents{payload: `{"inventory_alerts": "garbage"}`}
	s := newTestState(t, nil, agents)

	result, err := s.RunCheck(ctx)
	require.NoError(t, err)
	assert.Empty(t, result.Alerts)

	history := s.History()
	require.Len(t, history, 1)
	assert.Zero(t, history[0].TotalAlerts)
}

func TestRunCheckClearsSampleMode(t *testing.T) {
	ctx := context.Background()
	agents := &fakeAgents{payload: singleCriticalPayload}
	s := newTestState(t, nil, agents)

	s.ToggleSampleMode(true)
	_, err := s.RunCheck(ctx)
	require.NoError(t, err)
	assert.False(t, s.Snapshot().SampleMode)
}

func TestBuildCheckBriefFormatsThresholds(t *testing.T) {
	brief := buildCheckBrief(ThresholdSettings{MinStockLevel: 10, ReorderPoint: 20, MaxDelayHours: 36, OrderAgeWarningDays: 5}, nil)
	assert.Contains(t, brief, "- Minimum stock level: 10 units per SKU")
	assert.Contains(t, brief, "- Reorder point: 20 units")
	assert.Contains(t, brief, "- Maximum acceptable shipping delay: 36 hours")
	assert.Contains(t, brief, "- Order age warning threshold: 5 days")
}

func TestBuildCheckBriefProductLine(t *testing.T) {
	brief := buildCheckBrief(DefaultSettings(), []catalog.Product{{
		Name: "Tom Ford Oud Wood", SKU: "TF-OW-50", Category: "EDP", Size: "50ml",
		Brand: "Tom Ford", CurrentStock: 95, MinStock: 50, ReorderPoint: 100,
		Price: 250, Supplier: "Estee Group", Status: catalog.StatusActive,
	}})
	expected := fmt.Sprintf("- Tom Ford Oud Wood (SKU: TF-OW-50, EDP 50ml, Brand: Tom Ford) | Current Stock: 95 units | Min Stock: 50 | Reorder Point: 100 | Price: $%.2f | Supplier: Estee Group | Status: Active", 250.0)
	assert.Contains(t, brief, expected)
}
