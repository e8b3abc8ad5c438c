package alerts

import (
	"time"

	"github.com/tidwall/gjson"
)

// CheckResult is the normalized form of a Manager-agent response.
type CheckResult struct {
	Alerts         []Alert `json:"alerts"`
	TotalCritical  int     `json:"total_critical"`
	TotalWarning   int     `json:"total_warning"`
	TotalInfo      int     `json:"total_info"`
	OverallSummary string  `json:"overall_summary"`
	CheckTimestamp string  `json:"check_timestamp"`
}

// DispatchedAlert is one per-alert record from the Dispatcher agent.
type DispatchedAlert struct {
	AlertID      string   `json:"alert_id"`
	AlertTitle   string   `json:"alert_title"`
	ChannelsSent []string `json:"channels_sent"`
	Status       string   `json:"status"`
	Timestamp    string   `json:"timestamp"`
}

// DispatchResult is the normalized outcome of one dispatch call. It is
// ephemeral: only its fold into the current history entry persists.
type DispatchResult struct {
	DispatchedAlerts []DispatchedAlert `json:"dispatched_alerts"`
	TotalDispatched  int               `json:"total_dispatched"`
	SlackStatus      string            `json:"slack_status"`
	EmailStatus      string            `json:"email_status"`
	Summary          string            `json:"summary"`
}

// NormalizeCheck converts an arbitrary Manager payload into a CheckResult.
// The three alert lists are concatenated in fixed category order (inventory,
// shipping, orders), each treated as empty unless actually array-shaped.
// Every top-level field defaults independently; a malformed sub-field never
// invalidates the rest of the payload, and this function never fails.
func NormalizeCheck(payload gjson.Result) CheckResult {
	all := alertList(payload, "inventory_alerts")
	all = append(all, alertList(payload, "shipping_alerts")...)
	all = append(all, alertList(payload, "order_alerts")...)

	timestamp := stringOr(payload, "check_timestamp", time.Now().UTC().Format(time.RFC3339))

	return CheckResult{
		Alerts:         all,
		TotalCritical:  int(payload.Get("total_critical").Int()),
		TotalWarning:   int(payload.Get("total_warning").Int()),
		TotalInfo:      int(payload.Get("total_info").Int()),
		OverallSummary: payload.Get("overall_summary").String(),
		CheckTimestamp: timestamp,
	}
}

// NormalizeDispatch converts an arbitrary Dispatcher payload into a
// DispatchResult with per-field defaults. Never fails.
func NormalizeDispatch(payload gjson.Result) DispatchResult {
	result := DispatchResult{
		DispatchedAlerts: []DispatchedAlert{},
		TotalDispatched:  int(payload.Get("total_dispatched").Int()),
		SlackStatus:      stringOr(payload, "slack_status", "unknown"),
		EmailStatus:      stringOr(payload, "email_status", "unknown"),
		Summary:          stringOr(payload, "summary", "Alerts dispatched."),
	}

	if list := payload.Get("dispatched_alerts"); list.IsArray() {
		for _, item := range list.Array() {
			channels := []string{}
			if cs := item.Get("channels_sent"); cs.IsArray() {
				for _, c := range cs.Array() {
					channels = append(channels, c.String())
				}
			}
			result.DispatchedAlerts = append(result.DispatchedAlerts, DispatchedAlert{
				AlertID:      item.Get("alert_id").String(),
				AlertTitle:   item.Get("alert_title").String(),
				ChannelsSent: channels,
				Status:       item.Get("status").String(),
				Timestamp:    item.Get("timestamp").String(),
			})
		}
	}

	return result
}

func alertList(payload gjson.Result, path string) []Alert {
	field := payload.Get(path)
	if !field.IsArray() {
		return nil
	}
	var out []Alert
	for _, item := range field.Array() {
		out = append(out, Alert{
			ID:                item.Get("id").String(),
			Title:             item.Get("title").String(),
			Category:          item.Get("category").String(),
			Severity:          item.Get("severity").String(),
			Description:       item.Get("description").String(),
			AffectedItems:     item.Get("affected_items").String(),
			RecommendedAction: item.Get("recommended_action").String(),
			Timestamp:         item.Get("timestamp").String(),
		})
	}
	return out
}

// stringOr defaults only on absent or null fields; a present empty string
// is kept as-is.
func stringOr(payload gjson.Result, path, fallback string) string {
	v := payload.Get(path)
	if !v.Exists() || v.Type == gjson.Null {
		return fallback
	}
	return v.String()
}
