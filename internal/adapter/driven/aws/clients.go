package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/budgets"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Cost Explorer and Budgets only answer in us-east-1.
const billingRegion = "us-east-1"

// CostExplorerAPI is the subset of *costexplorer.Client used by the notifier.
type CostExplorerAPI interface {
	GetCostAndUsage(ctx context.Context, params *costexplorer.GetCostAndUsageInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostAndUsageOutput, error)
}

// STSAPI is the subset of *sts.Client used by the notifier.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// SNSAPI is the subset of *sns.Client used by the notifier.
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// LoadConfig loads the default AWS configuration, optionally for a shared
// config profile. Credentials come from the ambient environment.
func LoadConfig(ctx context.Context, profile string) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		if profile == "" {
			return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
		}
		return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %s: %w", profile, err)
	}
	return cfg, nil
}

func newCostExplorerClient(cfg aws.Config) *costexplorer.Client {
	regionalCfg := cfg.Copy()
	regionalCfg.Region = billingRegion
	return costexplorer.NewFromConfig(regionalCfg)
}

func newBudgetsClient(cfg aws.Config) *budgets.Client {
	regionalCfg := cfg.Copy()
	regionalCfg.Region = billingRegion
	return budgets.NewFromConfig(regionalCfg)
}

func newSTSClient(cfg aws.Config) *sts.Client {
	regionalCfg := cfg.Copy()
	if regionalCfg.Region == "" {
		regionalCfg.Region = billingRegion
	}
	return sts.NewFromConfig(regionalCfg)
}
