package report

import (
	"github.com/shopspring/decimal"

	"github.com/plusgraphics/backoffice/internal/models"
)

// Unlimited is the limit value that disables a quota entirely.
const Unlimited = -1

const nearLimitThreshold = 0.8

// UsagePercentage is current/limit x 100. An unlimited quota reports 0%.
func UsagePercentage(current, limit float64) float64 {
	if limit == Unlimited || limit == 0 {
		return 0
	}
	p, _ := decimal.NewFromFloat(current).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromFloat(limit)).
		Round(1).Float64()
	return p
}

// NearLimit reports usage at or past 80% of the quota. Unlimited quotas
// never warn.
func NearLimit(current, limit float64) bool {
	if limit == Unlimited {
		return false
	}
	return limit > 0 && current/limit >= nearLimitThreshold
}

// OverLimit reports usage at or past the quota.
func OverLimit(current, limit float64) bool {
	if limit == Unlimited {
		return false
	}
	return limit > 0 && current >= limit
}

// UsageRow is one quota line on the billing page.
type UsageRow struct {
	Name       string
	Current    float64
	Limit      float64
	Percentage float64
	NearLimit  bool
	OverLimit  bool
}

// UsageRows expands usage against plan limits into display rows, in a
// fixed order.
func UsageRows(usage models.PlanUsage, limits models.PlanLimits) []UsageRow {
	pairs := []struct {
		name           string
		current, limit float64
	}{
		{"products", float64(usage.Products), float64(limits.Products)},
		{"users", float64(usage.Users), float64(limits.Users)},
		{"orders_per_month", float64(usage.OrdersPerMonth), float64(limits.OrdersPerMonth)},
		{"storage_gb", usage.StorageGB, limits.StorageGB},
	}
	rows := make([]UsageRow, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, UsageRow{
			Name:       p.name,
			Current:    p.current,
			Limit:      p.limit,
			Percentage: UsagePercentage(p.current, p.limit),
			NearLimit:  NearLimit(p.current, p.limit),
			OverLimit:  OverLimit(p.current, p.limit),
		})
	}
	return rows
}

// HasWarnings reports whether any row is near or over its limit.
func HasWarnings(rows []UsageRow) bool {
	for _, r := range rows {
		if r.NearLimit || r.OverLimit {
			return true
		}
	}
	return false
}
