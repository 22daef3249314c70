package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillingPeriod is a reporting window. End is exclusive.
type BillingPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// LastDay returns the last day included in the period.
func (p BillingPeriod) LastDay() time.Time {
	return p.End.AddDate(0, 0, -1)
}

// TotalBilling is the amortized cost of the whole account for a period, in USD.
type TotalBilling struct {
	Period BillingPeriod   `json:"period"`
	Amount decimal.Decimal `json:"amount"`
}

// ServiceBilling is the amortized cost of a single AWS service, in USD.
type ServiceBilling struct {
	ServiceName string          `json:"service_name"`
	Amount      decimal.Decimal `json:"amount"`
}
