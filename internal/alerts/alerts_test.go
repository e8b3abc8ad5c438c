package alerts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityRankOrdering(t *testing.T) {
	assert.Equal(t, 0, SeverityRank("Critical"))
	assert.Equal(t, 0, SeverityRank("critical"))
	assert.Equal(t, 1, SeverityRank("WARNING"))
	assert.Equal(t, 2, SeverityRank("Info"))
	assert.Equal(t, 3, SeverityRank("urgent"))
	assert.Equal(t, 3, SeverityRank(""))
}

func TestInCategorySubstringMatch(t *testing.T) {
	assert.True(t, InCategory("Inventory", "inventory"))
	assert.True(t, InCategory("Shipping & Customs", "ship"))
	assert.True(t, InCategory("order pipeline", "order"))
	assert.False(t, InCategory("Inventory", "ship"))
}

func TestCountBySeverity(t *testing.T) {
	list := []Alert{
		{Severity: "Critical"}, {Severity: "critical"}, {Severity: "Warning"}, {Severity: "odd"},
	}
	assert.Equal(t, 2, CountBySeverity(list, "critical"))
	assert.Equal(t, 1, CountBySeverity(list, "warning"))
	assert.Equal(t, 0, CountBySeverity(list, "info"))
}

func TestCountByCategory(t *testing.T) {
	list := []Alert{
		{Category: "Inventory"}, {Category: "Shipping"}, {Category: "International Shipping"}, {Category: "Orders"},
	}
	assert.Equal(t, 1, CountByCategory(list, "inventory"))
	assert.Equal(t, 2, CountByCategory(list, "ship"))
	assert.Equal(t, 1, CountByCategory(list, "order"))
}

func TestSortBySeverityStable(t *testing.T) {
	list := []Alert{
		{ID: "a", Severity: "Info"},
		{ID: "b", Severity: "mystery"},
		{ID: "c", Severity: "Critical"},
		{ID: "d", Severity: "Info"},
		{ID: "e", Severity: "Warning"},
	}
	sorted := SortBySeverity(list)

	ids := make([]string, len(sorted))
	for i, a := range sorted {
		ids[i] = a.ID
	}
	// Critical first, unknown severities last, a before d (stable).
	assert.Equal(t, []string{"c", "e", "a", "d", "b"}, ids)
	// Input untouched.
	assert.Equal(t, "a", list[0].ID)
}

func TestSampleCheckShape(t *testing.T) {
	s := SampleCheck()
	assert.Len(t, s.Alerts, 5)
	assert.Equal(t, 2, s.TotalCritical)
	assert.Equal(t, 2, s.TotalWarning)
	assert.Equal(t, 1, s.TotalInfo)
	assert.Equal(t, 2, CountByCategory(s.Alerts, "inventory"))
	assert.Equal(t, 2, CountByCategory(s.Alerts, "ship"))
	assert.Equal(t, 1, CountByCategory(s.Alerts, "order"))
}
