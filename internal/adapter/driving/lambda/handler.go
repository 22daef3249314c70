package lambda

import (
	"context"
	"encoding/json"
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"

	"github.com/diillson/aws-billing-notifier/internal/application/usecase"
	"github.com/diillson/aws-billing-notifier/internal/shared/types"
)

// Runner runs one notification cycle.
type Runner interface {
	Run(ctx context.Context, opts usecase.RunOptions) (*usecase.RunReport, error)
}

// Handler is the Lambda entry point. The scheduled event carries no useful
// payload and is ignored.
type Handler struct {
	runner  Runner
	console types.ConsoleInterface
}

// NewHandler creates a Lambda handler around the use case.
func NewHandler(runner Runner, console types.ConsoleInterface) *Handler {
	return &Handler{runner: runner, console: console}
}

// Handle runs the notifier once. Any error is returned to the Lambda runtime,
// which records the invocation as failed.
func (h *Handler) Handle(ctx context.Context, _ json.RawMessage) error {
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		h.console.LogInfo("Invocation %s started", lc.AwsRequestID)
	}

	report, err := h.runner.Run(ctx, usecase.RunOptions{})
	if err != nil {
		h.console.LogError("Invocation failed: %s", err)
		return err
	}

	h.console.LogSuccess("Invocation finished: %d notification(s) sent", len(report.Results))
	return nil
}

// Start hands the handler to the Lambda runtime. It never returns.
func (h *Handler) Start() {
	awslambda.Start(h.Handle)
}

// InLambda reports whether the process runs inside the Lambda runtime.
func InLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}
