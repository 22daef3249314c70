package repository

import (
	"context"

	"github.com/diillson/aws-billing-notifier/internal/domain/entity"
)

// BillingRepository defines the read side of the AWS billing APIs.
type BillingRepository interface {
	// Cost Operations
	GetTotalBilling(ctx context.Context, period entity.BillingPeriod) (entity.TotalBilling, error)
	GetServiceBillings(ctx context.Context, period entity.BillingPeriod) ([]entity.ServiceBilling, error)

	// Account Operations
	GetAccountID(ctx context.Context) (string, error)

	// Budget Operations
	GetBudgets(ctx context.Context, accountID string) ([]entity.BudgetInfo, error)
}
