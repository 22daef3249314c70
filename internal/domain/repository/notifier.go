package repository

import (
	"context"

	"github.com/diillson/aws-billing-notifier/internal/domain/entity"
)

// Notifier delivers a formatted billing message to one destination.
type Notifier interface {
	// Name identifies the sink in logs and dispatch results.
	Name() string

	Send(ctx context.Context, msg entity.FormattedMessage) error
}
