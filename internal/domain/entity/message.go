package entity

import "strings"

// Severity grades the month-to-date spend.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

// Embed colors understood by Discord-style webhooks.
const (
	ColorGreen  = 0x2ECC71
	ColorYellow = 0xF1C40F
	ColorRed    = 0xE74C3C
)

// NoBillingLine replaces the detail when every service rounds to zero.
const NoBillingLine = "- No billing this month"

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Color returns the embed color for the severity.
func (s Severity) Color() int {
	switch s {
	case SeverityMedium:
		return ColorYellow
	case SeverityHigh:
		return ColorRed
	default:
		return ColorGreen
	}
}

// FormattedMessage is the rendered notification, built fresh on every run.
type FormattedMessage struct {
	AccountID   string   `json:"account_id"`
	Summary     string   `json:"summary"`
	DetailLines []string `json:"detail_lines"`
	BudgetLines []string `json:"budget_lines,omitempty"`
	Severity    Severity `json:"severity"`
}

// Title prefixes the summary with the account.
func (m FormattedMessage) Title() string {
	return "ACCOUNT: " + m.AccountID + m.Summary
}

// Detail joins the per-service lines, falling back to NoBillingLine.
func (m FormattedMessage) Detail() string {
	if len(m.DetailLines) == 0 {
		return NoBillingLine
	}
	return strings.Join(m.DetailLines, "\n")
}

// Budgets joins the budget lines. Empty when budgets were not requested.
func (m FormattedMessage) Budgets() string {
	return strings.Join(m.BudgetLines, "\n")
}

// Body is the plain-text message: the detail followed by the budget section
// when budgets were requested.
func (m FormattedMessage) Body() string {
	if len(m.BudgetLines) == 0 {
		return m.Detail()
	}
	return m.Detail() + "\n\nBudgets\n" + m.Budgets()
}
