// Package session owns the orchestration state for one operator session:
// threshold settings, the product catalog, the bounded run history, and the
// transient alert display state. The presentation layer holds a read
// reference plus the four public operations; it never mutates state itself.
package session

import (
	"context"
	"sync"

	"perfume-logistics/internal/alerts"
	"perfume-logistics/internal/catalog"
	"perfume-logistics/internal/store"
	"perfume-logistics/internal/telemetry"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel/trace"
)

type ThresholdSettings struct {
	MinStockLevel          int      `json:"minStockLevel"`
	ReorderPoint           int      `json:"reorderPoint"`
	MaxDelayHours          int      `json:"maxDelayHours"`
	OrderAgeWarningDays    int      `json:"orderAgeWarningDays"`
	DefaultSlackChannel    string   `json:"defaultSlackChannel"`
	DefaultEmailRecipients []string `json:"defaultEmailRecipients"`
}

func DefaultSettings() ThresholdSettings {
	return ThresholdSettings{
		MinStockLevel:          50,
		ReorderPoint:           100,
		MaxDelayHours:          48,
		OrderAgeWarningDays:    7,
		DefaultSlackChannel:    "#logistics-alerts",
		DefaultEmailRecipients: []string{},
	}
}

const (
	StatusReviewed   = "Reviewed"
	StatusDispatched = "Dispatched"

	// History keeps the 50 most recent runs, newest at index 0.
	HistoryLimit = 50
)

// HistoryEntry records one completed run. Alerts are an embedded copy:
// later catalog edits never change a stored alert.
type HistoryEntry struct {
	ID               string         `json:"id"`
	Date             string         `json:"date"`
	TotalAlerts      int            `json:"totalAlerts"`
	AlertsDispatched int            `json:"alertsDispatched"`
	Status           string         `json:"status"`
	Alerts           []alerts.Alert `json:"alerts"`
}

// Invoker is the agent-invocation boundary. agent.Client implements it.
type Invoker interface {
	Invoke(ctx context.Context, agentID, message string) (gjson.Result, error)
}

type State struct {
	mu      sync.Mutex
	kv      store.KV
	agents  Invoker
	tracer  trace.Tracer
	metrics *telemetry.Metrics

	settings ThresholdSettings
	history  []HistoryEntry
	products []catalog.Product

	current    alerts.CheckResult
	sampleMode bool
}

func New(ctx context.Context, kv store.KV, agents Invoker, tracer trace.Tracer, metrics *telemetry.Metrics) *State {
	return &State{
		kv:       kv,
		agents:   agents,
		tracer:   tracer,
		metrics:  metrics,
		settings: store.Load(ctx, kv, store.SettingsKey, DefaultSettings()),
		history:  store.Load(ctx, kv, store.HistoryKey, []HistoryEntry{}),
		products: store.Load(ctx, kv, store.ProductsKey, []catalog.Product{}),
	}
}

// Snapshot is the read surface exposed to the presentation layer.
type Snapshot struct {
	Alerts         []alerts.Alert `json:"alerts"`
	TotalCritical  int            `json:"totalCritical"`
	TotalWarning   int            `json:"totalWarning"`
	TotalInfo      int            `json:"totalInfo"`
	OverallSummary string         `json:"overallSummary"`
	CheckTimestamp string         `json:"checkTimestamp"`
	SampleMode     bool           `json:"sampleMode"`
}

func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Alerts:         append([]alerts.Alert(nil), s.current.Alerts...),
		TotalCritical:  s.current.TotalCritical,
		TotalWarning:   s.current.TotalWarning,
		TotalInfo:      s.current.TotalInfo,
		OverallSummary: s.current.OverallSummary,
		CheckTimestamp: s.current.CheckTimestamp,
		SampleMode:     s.sampleMode,
	}
}

func (s *State) Settings() ThresholdSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func (s *State) History() []HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]HistoryEntry(nil), s.history...)
}

func (s *State) Products() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]catalog.Product(nil), s.products...)
}

// SaveSettings overwrites the settings record wholesale. Values are taken
// as given; threshold policy authority rests with the operator.
func (s *State) SaveSettings(ctx context.Context, settings ThresholdSettings) {
	if settings.DefaultEmailRecipients == nil {
		settings.DefaultEmailRecipients = []string{}
	}
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
	store.Save(ctx, s.kv, store.SettingsKey, settings)
}

// ToggleSampleMode swaps fixture alerts in and out of the transient display
// state. The store is never touched: sample mode is display-only.
func (s *State) ToggleSampleMode(on bool) Snapshot {
	s.mu.Lock()
	s.sampleMode = on
	if on {
		s.current = alerts.SampleCheck()
	} else {
		s.current = alerts.CheckResult{}
	}
	s.mu.Unlock()
	return s.Snapshot()
}

// Catalog writes go through the catalog package's validation and are
// persisted as a whole-record overwrite.

func (s *State) AddProduct(ctx context.Context, in catalog.Input) (catalog.Product, error) {
	s.mu.Lock()
	updated, p, err := catalog.Add(s.products, in)
	if err != nil {
		s.mu.Unlock()
		return catalog.Product{}, err
	}
	s.products = updated
	s.mu.Unlock()
	store.Save(ctx, s.kv, store.ProductsKey, updated)
	return p, nil
}

func (s *State) UpdateProduct(ctx context.Context, id string, in catalog.Input) error {
	s.mu.Lock()
	updated, err := catalog.Update(s.products, id, in)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.products = updated
	s.mu.Unlock()
	store.Save(ctx, s.kv, store.ProductsKey, updated)
	return nil
}

func (s *State) RemoveProduct(ctx context.Context, id string) {
	s.mu.Lock()
	updated := catalog.Remove(s.products, id)
	s.products = updated
	s.mu.Unlock()
	store.Save(ctx, s.kv, store.ProductsKey, updated)
}
