package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/budgets"
	budgetTypes "github.com/aws/aws-sdk-go-v2/service/budgets/types"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	ceTypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/shopspring/decimal"

	"github.com/diillson/aws-billing-notifier/internal/domain/entity"
	"github.com/diillson/aws-billing-notifier/internal/domain/repository"
	"github.com/diillson/aws-billing-notifier/internal/shared/types"
)

const (
	dateLayout     = "2006-01-02"
	costMetric     = "AmortizedCost"
	serviceGroupBy = "SERVICE"
)

// BillingRepositoryImpl implementa o BillingRepository sobre Cost Explorer,
// STS e Budgets.
type BillingRepositoryImpl struct {
	ce      CostExplorerAPI
	sts     STSAPI
	budgets budgets.DescribeBudgetsAPIClient
}

// NewBillingRepository cria um BillingRepository a partir de uma aws.Config.
func NewBillingRepository(cfg aws.Config) repository.BillingRepository {
	return NewBillingRepositoryFromClients(newCostExplorerClient(cfg), newSTSClient(cfg), newBudgetsClient(cfg))
}

// NewBillingRepositoryFromClients permite injetar clientes (usado nos testes).
func NewBillingRepositoryFromClients(ce CostExplorerAPI, stsClient STSAPI, budgetsClient budgets.DescribeBudgetsAPIClient) *BillingRepositoryImpl {
	return &BillingRepositoryImpl{
		ce:      ce,
		sts:     stsClient,
		budgets: budgetsClient,
	}
}

func costAndUsageInput(period entity.BillingPeriod) *costexplorer.GetCostAndUsageInput {
	return &costexplorer.GetCostAndUsageInput{
		TimePeriod: &ceTypes.DateInterval{
			Start: aws.String(period.Start.Format(dateLayout)),
			End:   aws.String(period.End.Format(dateLayout)),
		},
		Granularity: ceTypes.GranularityMonthly,
		Metrics:     []string{costMetric},
	}
}

// GetTotalBilling returns the amortized cost for the period together with the
// period Cost Explorer actually reported, which may be clamped.
func (r *BillingRepositoryImpl) GetTotalBilling(ctx context.Context, period entity.BillingPeriod) (entity.TotalBilling, error) {
	result, err := r.ce.GetCostAndUsage(ctx, costAndUsageInput(period))
	if err != nil {
		return entity.TotalBilling{}, fmt.Errorf("failed to get total cost: %w", err)
	}

	if len(result.ResultsByTime) == 0 {
		return entity.TotalBilling{}, fmt.Errorf("%w: no results for %s", types.ErrMalformedCostResponse, formatInterval(period))
	}
	first := result.ResultsByTime[0]

	reported, err := parseInterval(first.TimePeriod)
	if err != nil {
		return entity.TotalBilling{}, err
	}

	metric, ok := first.Total[costMetric]
	if !ok {
		return entity.TotalBilling{}, fmt.Errorf("%w: missing %s total", types.ErrMalformedCostResponse, costMetric)
	}
	amount, err := parseAmount(metric.Amount)
	if err != nil {
		return entity.TotalBilling{}, err
	}

	return entity.TotalBilling{Period: reported, Amount: amount}, nil
}

// GetServiceBillings returns one entry per SERVICE group in the order Cost
// Explorer returned them. Only the first page is read.
func (r *BillingRepositoryImpl) GetServiceBillings(ctx context.Context, period entity.BillingPeriod) ([]entity.ServiceBilling, error) {
	input := costAndUsageInput(period)
	input.GroupBy = []ceTypes.GroupDefinition{
		{Type: ceTypes.GroupDefinitionTypeDimension, Key: aws.String(serviceGroupBy)},
	}

	result, err := r.ce.GetCostAndUsage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get cost by service: %w", err)
	}

	if len(result.ResultsByTime) == 0 {
		return nil, fmt.Errorf("%w: no grouped results for %s", types.ErrMalformedCostResponse, formatInterval(period))
	}

	groups := result.ResultsByTime[0].Groups
	billings := make([]entity.ServiceBilling, 0, len(groups))
	for _, group := range groups {
		if len(group.Keys) == 0 {
			return nil, fmt.Errorf("%w: service group without key", types.ErrMalformedCostResponse)
		}
		metric, ok := group.Metrics[costMetric]
		if !ok {
			return nil, fmt.Errorf("%w: service %s has no %s", types.ErrMalformedCostResponse, group.Keys[0], costMetric)
		}
		amount, err := parseAmount(metric.Amount)
		if err != nil {
			return nil, fmt.Errorf("service %s: %w", group.Keys[0], err)
		}
		billings = append(billings, entity.ServiceBilling{
			ServiceName: group.Keys[0],
			Amount:      amount,
		})
	}

	return billings, nil
}

// GetAccountID resolves the caller's account through STS.
func (r *BillingRepositoryImpl) GetAccountID(ctx context.Context) (string, error) {
	result, err := r.sts.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("error getting account ID: %w", err)
	}
	if result.Account == nil {
		return "", fmt.Errorf("error getting account ID: empty caller identity")
	}
	return *result.Account, nil
}

// GetBudgets lists every budget of the account with its actual and
// forecasted spend.
func (r *BillingRepositoryImpl) GetBudgets(ctx context.Context, accountID string) ([]entity.BudgetInfo, error) {
	paginator := budgets.NewDescribeBudgetsPaginator(r.budgets, &budgets.DescribeBudgetsInput{
		AccountId: aws.String(accountID),
	})

	budgetsData := []entity.BudgetInfo{}
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error describing budgets for account %s: %w", accountID, err)
		}
		for _, budget := range page.Budgets {
			budgetsData = append(budgetsData, toBudgetInfo(budget))
		}
	}

	return budgetsData, nil
}

func toBudgetInfo(budget budgetTypes.Budget) entity.BudgetInfo {
	b := entity.BudgetInfo{Name: aws.ToString(budget.BudgetName)}
	if budget.BudgetLimit != nil {
		b.Limit, _ = parseAmount(budget.BudgetLimit.Amount)
	}
	if spend := budget.CalculatedSpend; spend != nil {
		if spend.ActualSpend != nil {
			b.Actual, _ = parseAmount(spend.ActualSpend.Amount)
		}
		if spend.ForecastedSpend != nil {
			if forecast, err := parseAmount(spend.ForecastedSpend.Amount); err == nil {
				b.Forecast = &forecast
			}
		}
	}
	return b
}

func parseAmount(raw *string) (decimal.Decimal, error) {
	if raw == nil {
		return decimal.Zero, fmt.Errorf("%w: missing amount", types.ErrMalformedCostResponse)
	}
	amount, err := decimal.NewFromString(*raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q: %w", types.ErrMalformedCostResponse, *raw, err)
	}
	return amount, nil
}

func parseInterval(interval *ceTypes.DateInterval) (entity.BillingPeriod, error) {
	if interval == nil || interval.Start == nil || interval.End == nil {
		return entity.BillingPeriod{}, fmt.Errorf("%w: missing time period", types.ErrMalformedCostResponse)
	}
	start, err := time.Parse(dateLayout, *interval.Start)
	if err != nil {
		return entity.BillingPeriod{}, fmt.Errorf("%w: period start: %w", types.ErrMalformedCostResponse, err)
	}
	end, err := time.Parse(dateLayout, *interval.End)
	if err != nil {
		return entity.BillingPeriod{}, fmt.Errorf("%w: period end: %w", types.ErrMalformedCostResponse, err)
	}
	return entity.BillingPeriod{Start: start, End: end}, nil
}

func formatInterval(period entity.BillingPeriod) string {
	return period.Start.Format(dateLayout) + ".." + period.End.Format(dateLayout)
}
