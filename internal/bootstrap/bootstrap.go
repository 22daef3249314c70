// Package bootstrap wires the AWS clients and notifiers for a Config.
package bootstrap

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"

	awsadapter "github.com/diillson/aws-billing-notifier/internal/adapter/driven/aws"
	"github.com/diillson/aws-billing-notifier/internal/adapter/driven/webhook"
	"github.com/diillson/aws-billing-notifier/internal/application/usecase"
	"github.com/diillson/aws-billing-notifier/internal/domain/repository"
	"github.com/diillson/aws-billing-notifier/internal/shared/types"
)

// Builder creates the use case for a loaded configuration.
type Builder func(ctx context.Context, cfg *types.Config, console types.ConsoleInterface) (*usecase.NotifierUseCase, error)

// NewUseCase loads the AWS configuration and assembles the use case.
func NewUseCase(ctx context.Context, cfg *types.Config, console types.ConsoleInterface) (*usecase.NotifierUseCase, error) {
	awsCfg, err := awsadapter.LoadConfig(ctx, cfg.AWSProfile)
	if err != nil {
		return nil, err
	}

	notifiers, err := Notifiers(awsCfg, cfg, console)
	if err != nil {
		return nil, err
	}

	return usecase.NewNotifierUseCase(cfg, awsadapter.NewBillingRepository(awsCfg), notifiers, console), nil
}

// Notifiers returns the configured sinks, webhook first.
func Notifiers(awsCfg aws.Config, cfg *types.Config, console types.ConsoleInterface) ([]repository.Notifier, error) {
	var notifiers []repository.Notifier

	if cfg.WebhookEnabled() {
		console.LogInfo("Webhook notifications enabled")
		notifiers = append(notifiers, webhook.NewNotifier(cfg.WebhookURL, cfg.WebhookUsername, console))
	}

	if cfg.SNSEnabled() {
		console.LogInfo("SNS notifications enabled for %s", cfg.SNSTopicARN)
		snsNotifier, err := awsadapter.NewSNSNotifier(awsCfg, cfg.SNSTopicARN, console)
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, snsNotifier)
	}

	return notifiers, nil
}
