package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/diillson/aws-billing-notifier/internal/domain/repository"
	"github.com/diillson/aws-billing-notifier/internal/shared/types"
	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvAccountNumber    = "ACCOUNT_NUMBER"
	EnvWebhookURL       = "WEBHOOK_URL"
	EnvWebhookUsername  = "WEBHOOK_USERNAME"
	EnvSNSTopicARN      = "SNS_TOPIC_ARN"
	EnvResolveAccountID = "RESOLVE_ACCOUNT_ID"
	EnvIncludeBudgets   = "INCLUDE_BUDGETS"
	EnvAWSProfile       = "AWS_PROFILE"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Loader builds a types.Config from an optional .env file, an optional config
// file and the process environment, in that order of increasing precedence.
type Loader struct {
	repo      repository.ConfigRepository
	lookup    LookupFunc
	overrides []func(*types.Config)
}

// NewLoader creates a Loader reading the real process environment.
func NewLoader(repo repository.ConfigRepository) *Loader {
	return &Loader{repo: repo, lookup: os.LookupEnv}
}

// WithLookup replaces the environment source.
func (l *Loader) WithLookup(lookup LookupFunc) *Loader {
	l.lookup = lookup
	return l
}

// WithOverride registers a change applied after the environment and before
// validation. Command-line flags use it.
func (l *Loader) WithOverride(fn func(*types.Config)) *Loader {
	l.overrides = append(l.overrides, fn)
	return l
}

// Load reads and validates the configuration.
func (l *Loader) Load(configFile, envFile string) (*types.Config, error) {
	if envFile != "" {
		// godotenv never overrides variables that are already set.
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("error loading env file %s: %w", envFile, err)
			}
		}
	}

	cfg := &types.Config{}
	if configFile != "" {
		fileCfg, err := l.repo.LoadConfigFile(configFile)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	if err := ApplyEnv(cfg, l.lookup); err != nil {
		return nil, err
	}

	for _, override := range l.overrides {
		override(cfg)
	}

	if cfg.WebhookUsername == "" {
		cfg.WebhookUsername = types.DefaultWebhookUsername
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with every variable that is set in the environment.
func ApplyEnv(cfg *types.Config, lookup LookupFunc) error {
	strs := map[string]*string{
		EnvAccountNumber:   &cfg.AccountNumber,
		EnvWebhookURL:      &cfg.WebhookURL,
		EnvWebhookUsername: &cfg.WebhookUsername,
		EnvSNSTopicARN:     &cfg.SNSTopicARN,
		EnvAWSProfile:      &cfg.AWSProfile,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = strings.TrimSpace(v)
		}
	}

	bools := map[string]*bool{
		EnvResolveAccountID: &cfg.ResolveAccountID,
		EnvIncludeBudgets:   &cfg.IncludeBudgets,
	}
	for key, dst := range bools {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s must be a boolean, got %q", types.ErrInvalidConfig, key, v)
		}
		*dst = b
	}

	return nil
}
