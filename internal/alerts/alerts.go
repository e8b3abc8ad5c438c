// Package alerts holds the canonical alert model and the normalization of
// the agents' semi-structured responses into it.
package alerts

import (
	"sort"
	"strings"
)

// Alert is one flagged condition. Category and severity are free text from
// the upstream agent; classification goes through the predicates below, not
// enum equality.
type Alert struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Category          string `json:"category"`
	Severity          string `json:"severity"`
	Description       string `json:"description"`
	AffectedItems     string `json:"affected_items"`
	RecommendedAction string `json:"recommended_action"`
	Timestamp         string `json:"timestamp"`
}

// SeverityRank orders critical < warning < info; anything else sorts after
// these three.
func SeverityRank(severity string) int {
	switch strings.ToLower(severity) {
	case "critical":
		return 0
	case "warning":
		return 1
	case "info":
		return 2
	default:
		return 3
	}
}

// InCategory reports whether an alert's category text names the given
// category. Matching is case-insensitive substring, so "Shipping & Customs"
// still counts as "ship".
func InCategory(category, want string) bool {
	return strings.Contains(strings.ToLower(category), strings.ToLower(want))
}

func CountBySeverity(list []Alert, severity string) int {
	n := 0
	for _, a := range list {
		if strings.EqualFold(a.Severity, severity) {
			n++
		}
	}
	return n
}

func CountByCategory(list []Alert, category string) int {
	n := 0
	for _, a := range list {
		if InCategory(a.Category, category) {
			n++
		}
	}
	return n
}

// SortBySeverity orders a copy of list by severity rank, keeping the
// original relative order within each rank.
func SortBySeverity(list []Alert) []Alert {
	out := make([]Alert, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		return SeverityRank(out[i].Severity) < SeverityRank(out[j].Severity)
	})
	return out
}
