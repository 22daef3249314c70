package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/diillson/aws-billing-notifier/internal/domain/entity"
	"github.com/diillson/aws-billing-notifier/internal/shared/types"
	"github.com/diillson/aws-billing-notifier/pkg/version"
)

const (
	descriptionHeader = "\nPer Service Billing\n"
	noBillingText     = "No billing this month."
	maxLoggedBody     = 4 << 10
)

// Notifier posts the billing message as a rich embed to a chat webhook.
type Notifier struct {
	url      string
	username string
	client   *http.Client
	console  types.ConsoleInterface
}

// NewNotifier creates a chat webhook notifier.
func NewNotifier(webhookURL, username string, console types.ConsoleInterface) *Notifier {
	if username == "" {
		username = types.DefaultWebhookUsername
	}
	return &Notifier{
		url:      webhookURL,
		username: username,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		console: console,
	}
}

func (n *Notifier) Name() string { return "webhook" }

// Send issues one POST and waits for the delivery confirmation.
func (n *Notifier) Send(ctx context.Context, msg entity.FormattedMessage) error {
	target, err := withWait(n.url)
	if err != nil {
		return err
	}

	body, err := json.Marshal(n.payload(msg))
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send webhook notification: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxLoggedBody))
	n.console.LogInfo("Webhook response: status %d, body %s", resp.StatusCode, strings.TrimSpace(string(respBody)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

func (n *Notifier) payload(msg entity.FormattedMessage) webhookPayload {
	description := noBillingText
	if len(msg.DetailLines) > 0 {
		description = descriptionHeader + msg.Detail()
	}
	if len(msg.BudgetLines) > 0 {
		description += "\n\nBudgets\n" + msg.Budgets()
	}

	return webhookPayload{
		Username: n.username,
		Embeds: []webhookEmbed{{
			Title:       msg.Title(),
			Color:       msg.Severity.Color(),
			Description: description,
		}},
	}
}

// withWait adds wait=true so the webhook answers only after the message was
// stored.
func withWait(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid webhook URL: %w", err)
	}
	q := u.Query()
	q.Set("wait", "true")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

type webhookPayload struct {
	Username string         `json:"username"`
	Embeds   []webhookEmbed `json:"embeds"`
}

type webhookEmbed struct {
	Title       string `json:"title"`
	Color       int    `json:"color"`
	Description string `json:"description"`
}
