package types

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws/arn"
)

// DefaultWebhookUsername is the display name used for chat webhook posts.
const DefaultWebhookUsername = "AWS Billing Notifier"

// Config represents the notifier configuration. It is read once at start and
// passed explicitly to the use case and the notifiers.
type Config struct {
	AccountNumber    string `json:"account_number" yaml:"account_number" toml:"account_number"`
	WebhookURL       string `json:"webhook_url" yaml:"webhook_url" toml:"webhook_url"`
	WebhookUsername  string `json:"webhook_username" yaml:"webhook_username" toml:"webhook_username"`
	SNSTopicARN      string `json:"sns_topic_arn" yaml:"sns_topic_arn" toml:"sns_topic_arn"`
	ResolveAccountID bool   `json:"resolve_account_id" yaml:"resolve_account_id" toml:"resolve_account_id"`
	IncludeBudgets   bool   `json:"include_budgets" yaml:"include_budgets" toml:"include_budgets"`
	AWSProfile       string `json:"aws_profile" yaml:"aws_profile" toml:"aws_profile"`
}

// WebhookEnabled reports whether the chat webhook sink is configured.
func (c *Config) WebhookEnabled() bool {
	return strings.TrimSpace(c.WebhookURL) != ""
}

// SNSEnabled reports whether the SNS topic sink is configured.
func (c *Config) SNSEnabled() bool {
	return strings.TrimSpace(c.SNSTopicARN) != ""
}

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var problems []error

	if strings.TrimSpace(c.AccountNumber) == "" && !c.ResolveAccountID {
		problems = append(problems, ErrMissingAccountNumber)
	}

	if c.WebhookEnabled() {
		u, err := url.Parse(c.WebhookURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			problems = append(problems, fmt.Errorf("invalid WEBHOOK_URL %q: must be an absolute http(s) URL", c.WebhookURL))
		}
	}

	if c.SNSEnabled() {
		parsed, err := arn.Parse(c.SNSTopicARN)
		if err != nil {
			problems = append(problems, fmt.Errorf("invalid SNS_TOPIC_ARN %q: %w", c.SNSTopicARN, err))
		} else if parsed.Service != "sns" {
			problems = append(problems, fmt.Errorf("invalid SNS_TOPIC_ARN %q: service is %q, expected sns", c.SNSTopicARN, parsed.Service))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(problems...))
}
