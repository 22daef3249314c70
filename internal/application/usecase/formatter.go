package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/diillson/aws-billing-notifier/internal/domain/entity"
)

const displayDateLayout = "01/02"

var (
	mediumThreshold = decimal.NewFromInt(15)
	highThreshold   = decimal.NewFromInt(30)
)

// roundUSD rounds half away from zero to cents.
func roundUSD(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// FormatMessage renders the summary, per-service detail and severity. The
// account is filled in by the caller.
func FormatMessage(total entity.TotalBilling, services []entity.ServiceBilling) entity.FormattedMessage {
	displayStart := total.Period.Start.Format(displayDateLayout)
	displayEnd := total.Period.LastDay().Format(displayDateLayout)
	roundedTotal := roundUSD(total.Amount)

	details := make([]string, 0, len(services))
	for _, service := range services {
		amount := roundUSD(service.Amount)
		if amount.IsZero() {
			continue
		}
		details = append(details, fmt.Sprintf("- %s: %s USD", service.ServiceName, amount.StringFixed(2)))
	}

	return entity.FormattedMessage{
		Summary:     fmt.Sprintf(" (%s-%s): %s USD", displayStart, displayEnd, roundedTotal.StringFixed(2)),
		DetailLines: details,
		Severity:    SeverityFor(roundedTotal),
	}
}

// SeverityFor grades a total: below 15 USD is low, below 30 USD medium.
func SeverityFor(total decimal.Decimal) entity.Severity {
	switch {
	case total.LessThan(mediumThreshold):
		return entity.SeverityLow
	case total.LessThan(highThreshold):
		return entity.SeverityMedium
	default:
		return entity.SeverityHigh
	}
}

// FormatBudgetLines renders one line per budget.
func FormatBudgetLines(budgets []entity.BudgetInfo) []string {
	lines := make([]string, 0, len(budgets))
	for _, b := range budgets {
		line := fmt.Sprintf("- %s: %s / %s USD", b.Name, roundUSD(b.Actual).StringFixed(2), roundUSD(b.Limit).StringFixed(2))
		if b.Forecast != nil {
			line += fmt.Sprintf(" (forecast %s USD)", roundUSD(*b.Forecast).StringFixed(2))
		}
		lines = append(lines, line)
	}
	return lines
}
