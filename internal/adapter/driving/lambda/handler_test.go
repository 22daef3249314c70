package lambda

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/aws-billing-notifier/internal/application/usecase"
	"github.com/diillson/aws-billing-notifier/internal/domain/entity"
	"github.com/diillson/aws-billing-notifier/pkg/console"
)

type fakeRunner struct {
	report *usecase.RunReport
	err    error
	opts   []usecase.RunOptions
}

func (f *fakeRunner) Run(_ context.Context, opts usecase.RunOptions) (*usecase.RunReport, error) {
	f.opts = append(f.opts, opts)
	return f.report, f.err
}

func TestHandle(t *testing.T) {
	var out bytes.Buffer
	runner := &fakeRunner{report: &usecase.RunReport{Results: []entity.DispatchResult{{Sink: "webhook"}}}}
	h := NewHandler(runner, console.NewPlainConsole(&out))

	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "req-42"})
	event := json.RawMessage(`{"source": "aws.events", "detail-type": "Scheduled Event"}`)

	require.NoError(t, h.Handle(ctx, event))
	assert.Equal(t, []usecase.RunOptions{{}}, runner.opts)
	assert.Contains(t, out.String(), "req-42")
	assert.Contains(t, out.String(), "1 notification(s) sent")
}

func TestHandle_Error(t *testing.T) {
	runErr := errors.New("AccessDeniedException")
	h := NewHandler(&fakeRunner{err: runErr}, console.NewPlainConsole(&bytes.Buffer{}))

	err := h.Handle(context.Background(), nil)
	assert.ErrorIs(t, err, runErr)
}

func TestInLambda(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "")
	assert.False(t, InLambda())

	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "billing-notifier")
	assert.True(t, InLambda())
}
