package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/diillson/aws-billing-notifier/internal/domain/entity"
	"github.com/diillson/aws-billing-notifier/internal/domain/repository"
	"github.com/diillson/aws-billing-notifier/internal/shared/types"
)

// RunOptions tweaks a single invocation.
type RunOptions struct {
	// DryRun formats the message and prints it without notifying anyone.
	DryRun bool
}

// RunReport is what a run produced.
type RunReport struct {
	Message entity.FormattedMessage
	Results []entity.DispatchResult
}

// NotifierUseCase fetches the month-to-date bill and sends it to every
// configured notifier.
type NotifierUseCase struct {
	cfg         *types.Config
	billingRepo repository.BillingRepository
	notifiers   []repository.Notifier
	console     types.ConsoleInterface
	now         func() time.Time
}

// NewNotifierUseCase creates a new notifier use case. Notifiers are attempted
// in the given order.
func NewNotifierUseCase(
	cfg *types.Config,
	billingRepo repository.BillingRepository,
	notifiers []repository.Notifier,
	console types.ConsoleInterface,
) *NotifierUseCase {
	return &NotifierUseCase{
		cfg:         cfg,
		billingRepo: billingRepo,
		notifiers:   notifiers,
		console:     console,
		now:         time.Now,
	}
}

// WithClock replaces the clock used to resolve the reporting window.
func (uc *NotifierUseCase) WithClock(now func() time.Time) *NotifierUseCase {
	uc.now = now
	return uc
}

// Run executes one notification cycle. Fetch errors abort before any
// notifier is called; notifier errors are collected and joined.
func (uc *NotifierUseCase) Run(ctx context.Context, opts RunOptions) (*RunReport, error) {
	accountID, err := uc.resolveAccountID(ctx)
	if err != nil {
		return nil, err
	}

	period := CostPeriod(uc.now())
	uc.console.LogInfo("Account %s, requesting costs for %s to %s", accountID,
		period.Start.Format("2006-01-02"), period.End.Format("2006-01-02"))

	total, err := uc.billingRepo.GetTotalBilling(ctx, period)
	if err != nil {
		return nil, err
	}
	uc.console.LogInfo("Total amortized cost %s USD for %s to %s", total.Amount.String(),
		total.Period.Start.Format("2006-01-02"), total.Period.End.Format("2006-01-02"))

	services, err := uc.billingRepo.GetServiceBillings(ctx, period)
	if err != nil {
		return nil, err
	}
	uc.console.LogInfo("Received %d service groups", len(services))

	msg := FormatMessage(total, services)
	msg.AccountID = accountID

	if uc.cfg.IncludeBudgets {
		budgets, err := uc.billingRepo.GetBudgets(ctx, accountID)
		if err != nil {
			uc.console.LogWarning("Skipping budgets: %s", err)
		} else {
			msg.BudgetLines = FormatBudgetLines(budgets)
		}
	}

	uc.console.LogInfo("Title: %s", msg.Title())
	uc.console.LogInfo("Detail:\n%s", msg.Body())

	report := &RunReport{Message: msg}

	if opts.DryRun {
		uc.renderPreview(msg, services)
		return report, nil
	}

	if len(uc.notifiers) == 0 {
		uc.console.LogWarning("No notification destination configured, nothing sent")
		return report, nil
	}

	report.Results = uc.dispatch(ctx, msg)

	var errs []error
	for _, r := range report.Results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Sink, r.Err))
		}
	}
	if len(errs) > 0 {
		return report, fmt.Errorf("%w: %w", types.ErrDispatchFailed, errors.Join(errs...))
	}
	return report, nil
}

// dispatch attempts every notifier, even after a failure.
func (uc *NotifierUseCase) dispatch(ctx context.Context, msg entity.FormattedMessage) []entity.DispatchResult {
	results := make([]entity.DispatchResult, 0, len(uc.notifiers))
	for _, n := range uc.notifiers {
		uc.console.LogInfo("Sending to %s", n.Name())
		err := n.Send(ctx, msg)
		if err != nil {
			uc.console.LogError("Failed to send to %s: %s", n.Name(), err)
		} else {
			uc.console.LogSuccess("Sent to %s", n.Name())
		}
		results = append(results, entity.DispatchResult{Sink: n.Name(), Err: err})
	}
	return results
}

func (uc *NotifierUseCase) resolveAccountID(ctx context.Context) (string, error) {
	if id := strings.TrimSpace(uc.cfg.AccountNumber); id != "" {
		return id, nil
	}
	if !uc.cfg.ResolveAccountID {
		return "", types.ErrMissingAccountNumber
	}

	id, err := uc.billingRepo.GetAccountID(ctx)
	if err != nil {
		return "", err
	}
	uc.console.LogInfo("Resolved account %s from caller identity", id)
	return id, nil
}

// renderPreview prints the message and the full service table, including the
// services that round to zero.
func (uc *NotifierUseCase) renderPreview(msg entity.FormattedMessage, services []entity.ServiceBilling) {
	var title string
	switch msg.Severity {
	case entity.SeverityHigh:
		title = pterm.FgRed.Sprint(msg.Title())
	case entity.SeverityMedium:
		title = pterm.FgYellow.Sprint(msg.Title())
	default:
		title = pterm.FgGreen.Sprint(msg.Title())
	}
	uc.console.Println(title)

	table := uc.console.CreateTable()
	table.AddColumn("Service")
	table.AddColumn("Cost (USD)")
	table.AddColumn("Notified")
	for _, s := range services {
		notified := "yes"
		if roundUSD(s.Amount).IsZero() {
			notified = "no"
		}
		table.AddRow(s.ServiceName, roundUSD(s.Amount).StringFixed(2), notified)
	}
	uc.console.Print(table.Render())

	if len(msg.BudgetLines) > 0 {
		uc.console.Println(pterm.FgCyan.Sprint("Budgets"))
		uc.console.Println(msg.Budgets())
	}
	uc.console.LogWarning("Dry run: no notification sent")
}
