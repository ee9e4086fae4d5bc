package analytics

import "context"

// AnalyticsService defines the attendance analytics operations
type AnalyticsService interface {
	// GetSummary returns the full metrics object for a reporting period
	GetSummary(ctx context.Context, period string) (*Summary, error)

	// GetTrend returns only the time-bucketed trend series for a period
	GetTrend(ctx context.Context, period string) ([]TrendPoint, error)

	// GetDepartmentStats returns only the per-role attendance breakdown
	GetDepartmentStats(ctx context.Context, period string) ([]DepartmentStat, error)
}
