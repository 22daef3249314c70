package usecase

import (
	"time"

	"github.com/diillson/aws-billing-notifier/internal/domain/entity"
)

// ResolveCostDateRange returns the month-to-date window ending today. Cost
// Explorer rejects empty windows, so on the first of the month the window
// covers the whole previous month instead.
func ResolveCostDateRange(now time.Time) (start, end time.Time) {
	now = now.UTC()
	end = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	if start.Equal(end) {
		start = start.AddDate(0, -1, 0)
	}
	return start, end
}

// CostPeriod wraps ResolveCostDateRange into a BillingPeriod.
func CostPeriod(now time.Time) entity.BillingPeriod {
	start, end := ResolveCostDateRange(now)
	return entity.BillingPeriod{Start: start, End: end}
}
