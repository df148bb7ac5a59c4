package assets

import "math"

// PriorityCounts breaks pending work orders down by priority.
type PriorityCounts struct {
	High   int `yaml:"high"`
	Medium int `yaml:"medium"`
	Low    int `yaml:"low"`
}

// Total is the sum of all priorities.
func (p PriorityCounts) Total() int {
	return p.High + p.Medium + p.Low
}

// HealthBreakdown holds the percentage of assets per status.
type HealthBreakdown struct {
	Operational int `yaml:"operational"`
	Maintenance int `yaml:"maintenance"`
	Critical    int `yaml:"critical"`
}

// Percent returns the percentage recorded for s.
func (h HealthBreakdown) Percent(s Status) int {
	switch s {
	case StatusOperational:
		return h.Operational
	case StatusMaintenance:
		return h.Maintenance
	case StatusCritical:
		return h.Critical
	}
	return 0
}

// Trends are the short captions under each stats card.
type Trends struct {
	TotalAssets           string `yaml:"total_assets"`
	PendingWorkOrders     string `yaml:"pending_work_orders"`
	PreventiveMaintenance string `yaml:"preventive_maintenance"`
}

// Stats is the dashboard summary shown above the asset table.
type Stats struct {
	TotalAssets           int             `yaml:"total_assets"`
	PendingWorkOrders     int             `yaml:"pending_work_orders"`
	PendingByPriority     PriorityCounts  `yaml:"pending_by_priority"`
	PreventiveMaintenance int             `yaml:"preventive_maintenance"` // percent
	Health                HealthBreakdown `yaml:"health"`
	Trends                Trends          `yaml:"trends"`
}

// SampleStats returns the mock summary paired with SampleRecords.
func SampleStats() Stats {
	return Stats{
		TotalAssets:           1243,
		PendingWorkOrders:     27,
		PendingByPriority:     PriorityCounts{High: 5, Medium: 12, Low: 10},
		PreventiveMaintenance: 98,
		Health:                HealthBreakdown{Operational: 85, Maintenance: 10, Critical: 5},
		Trends: Trends{
			TotalAssets:           "5% increase",
			PendingWorkOrders:     "3 urgent",
			PreventiveMaintenance: "+2% from last month",
		},
	}
}

// ComputeHealth derives the per-status percentages from a record set.
// Percentages are rounded to the nearest integer; an empty set yields zeros.
func ComputeHealth(records []AssetRecord) HealthBreakdown {
	counts := make(map[Status]int, len(Statuses))
	for _, r := range records {
		counts[r.Status]++
	}
	return HealthFromCounts(counts, len(records))
}

// HealthFromCounts turns per-status counts out of total into percentages.
func HealthFromCounts(counts map[Status]int, total int) HealthBreakdown {
	if total <= 0 {
		return HealthBreakdown{}
	}
	pct := func(s Status) int {
		return int(math.Round(float64(counts[s]) * 100 / float64(total)))
	}
	return HealthBreakdown{
		Operational: pct(StatusOperational),
		Maintenance: pct(StatusMaintenance),
		Critical:    pct(StatusCritical),
	}
}
