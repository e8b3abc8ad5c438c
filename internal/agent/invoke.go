package agent

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Logical routing keys for the two fixed agents. Callers treat these as
// opaque ids; the mapping to model and system prompt lives here.
const (
	ManagerAgentID    = "manager"
	DispatcherAgentID = "dispatcher"
)

const managerSystemPrompt = `You are a logistics operations manager for a perfume supply chain.
Given alert thresholds and a product catalog snapshot, analyze inventory levels, active
shipments, and the order pipeline, and flag threshold breaches.

Respond with a single JSON object:
{"inventory_alerts": [...], "shipping_alerts": [...], "order_alerts": [...],
 "total_critical": 0, "total_warning": 0, "total_info": 0,
 "overall_summary": "...", "check_timestamp": "..."}

Each alert must have: id, title, category, severity (Critical/Warning/Info), description,
affected_items, recommended_action, timestamp. Use the actual product names and SKUs given.`

const dispatcherSystemPrompt = `You are a notification dispatcher for a perfume supply chain
operation. Given a list of alerts, a Slack channel, and email recipients, send each alert to
the appropriate channels.

Respond with a single JSON object:
{"dispatched_alerts": [{"alert_id": "...", "alert_title": "...", "channels_sent": [...],
 "status": "...", "timestamp": "..."}],
 "total_dispatched": 0, "slack_status": "...", "email_status": "...", "summary": "..."}`

var agentPrompts = map[string]string{
	ManagerAgentID:    managerSystemPrompt,
	DispatcherAgentID: dispatcherSystemPrompt,
}

// Invoke routes a free-form message to one of the fixed agents and returns
// the JSON payload extracted from the model's reply. Transport and provider
// failures are returned as errors; an unparseable reply is not an error — it
// yields an empty object and downstream defaulting takes over.
func (c *Client) Invoke(ctx context.Context, agentID, message string) (gjson.Result, error) {
	system, ok := agentPrompts[agentID]
	if !ok {
		return emptyPayload(), fmt.Errorf("unknown agent id %q", agentID)
	}

	ctx, span := c.Tracer.Start(ctx, "agent.invoke "+agentID)
	defer span.End()
	span.SetAttributes(attribute.String("logistics.agent", agentID))

	resp, err := c.Generate(ctx, GenerateRequest{
		Model:       c.modelFor(agentID),
		System:      system,
		Prompt:      message,
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
		Agent:       agentID,
	})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return emptyPayload(), err
	}

	payload := ExtractPayload(resp.Content)
	span.SetAttributes(attribute.Bool("logistics.payload_extracted", payload.Raw != "{}"))
	return payload, nil
}

func (c *Client) modelFor(agentID string) string {
	if agentID == DispatcherAgentID && c.DispatcherModel != "" {
		return c.DispatcherModel
	}
	if c.ManagerModel != "" {
		return c.ManagerModel
	}
	return c.DispatcherModel
}

var jsonBlockPattern = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*\\})\\s*```")

// ExtractPayload pulls the JSON object out of a model reply. Fenced blocks
// are preferred, then the raw content, then the outermost braced span.
// Anything unparseable collapses to an empty object.
func ExtractPayload(content string) gjson.Result {
	if m := jsonBlockPattern.FindStringSubmatch(content); m != nil {
		if gjson.Valid(m[1]) {
			return gjson.Parse(m[1])
		}
	}

	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "{") && gjson.Valid(trimmed) {
		return gjson.Parse(trimmed)
	}

	if start := strings.Index(content, "{"); start >= 0 {
		if end := strings.LastIndex(content, "}"); end > start {
			candidate := content[start : end+1]
			if gjson.Valid(candidate) {
				return gjson.Parse(candidate)
			}
		}
	}

	return emptyPayload()
}

func emptyPayload() gjson.Result {
	return gjson.Parse("{}")
}
