package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/diillson/aws-billing-notifier/internal/domain/entity"
	"github.com/diillson/aws-billing-notifier/internal/shared/types"
)

// SNS subjects must be shorter than 100 characters.
const maxSubjectLength = 99

// SNSNotifier publishes the billing message to an SNS topic.
type SNSNotifier struct {
	client   SNSAPI
	topicARN string
	console  types.ConsoleInterface
}

// NewSNSNotifier creates a notifier whose client targets the topic's region.
func NewSNSNotifier(cfg aws.Config, topicARN string, console types.ConsoleInterface) (*SNSNotifier, error) {
	parsed, err := arn.Parse(topicARN)
	if err != nil {
		return nil, fmt.Errorf("invalid SNS topic ARN %q: %w", topicARN, err)
	}

	regionalCfg := cfg.Copy()
	regionalCfg.Region = parsed.Region

	return NewSNSNotifierFromClient(sns.NewFromConfig(regionalCfg), topicARN, console), nil
}

// NewSNSNotifierFromClient permite injetar o cliente (usado nos testes).
func NewSNSNotifierFromClient(client SNSAPI, topicARN string, console types.ConsoleInterface) *SNSNotifier {
	return &SNSNotifier{client: client, topicARN: topicARN, console: console}
}

func (n *SNSNotifier) Name() string { return "sns" }

// Send publishes a single message: the title as subject, the detail as body.
func (n *SNSNotifier) Send(ctx context.Context, msg entity.FormattedMessage) error {
	result, err := n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Subject:  aws.String(subject(msg.Title())),
		Message:  aws.String(msg.Body()),
	})
	if err != nil {
		return fmt.Errorf("publish to %s: %w", n.topicARN, err)
	}

	n.console.LogInfo("SNS publish acknowledged: message id %s", aws.ToString(result.MessageId))
	return nil
}

func subject(title string) string {
	runes := []rune(title)
	if len(runes) > maxSubjectLength {
		runes = runes[:maxSubjectLength]
	}
	return string(runes)
}
