package aws

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/aws-billing-notifier/internal/domain/entity"
	"github.com/diillson/aws-billing-notifier/pkg/console"
)

const topicARN = "arn:aws:sns:eu-west-1:123456789012:billing"

func TestSNSNotifier_Send(t *testing.T) {
	client := &fakeSNS{}
	n := NewSNSNotifierFromClient(client, topicARN, console.NewPlainConsole(io.Discard))
	assert.Equal(t, "sns", n.Name())

	err := n.Send(context.Background(), entity.FormattedMessage{
		AccountID:   "123456789012",
		Summary:     " (03/01-03/14): 123.46 USD",
		DetailLines: []string{"- Amazon EC2: 100.00 USD", "- AWS Lambda: 23.45 USD"},
	})
	require.NoError(t, err)

	require.Len(t, client.inputs, 1)
	in := client.inputs[0]
	assert.Equal(t, topicARN, aws.ToString(in.TopicArn))
	assert.Equal(t, "ACCOUNT: 123456789012 (03/01-03/14): 123.46 USD", aws.ToString(in.Subject))
	assert.Equal(t, "- Amazon EC2: 100.00 USD\n- AWS Lambda: 23.45 USD", aws.ToString(in.Message))
}

func TestSNSNotifier_SendEmptyDetail(t *testing.T) {
	client := &fakeSNS{}
	n := NewSNSNotifierFromClient(client, topicARN, console.NewPlainConsole(io.Discard))

	require.NoError(t, n.Send(context.Background(), entity.FormattedMessage{AccountID: "1", Summary: " (03/01-03/14): 0.00 USD"}))
	assert.Equal(t, entity.NoBillingLine, aws.ToString(client.inputs[0].Message))
}

func TestSNSNotifier_Error(t *testing.T) {
	client := &fakeSNS{err: errors.New("AuthorizationError")}
	n := NewSNSNotifierFromClient(client, topicARN, console.NewPlainConsole(io.Discard))

	err := n.Send(context.Background(), entity.FormattedMessage{})
	assert.ErrorContains(t, err, "AuthorizationError")
	assert.ErrorContains(t, err, topicARN)
}

func TestSubjectTruncation(t *testing.T) {
	long := strings.Repeat("x", 150)
	assert.Len(t, subject(long), maxSubjectLength)
	assert.Equal(t, "short", subject("short"))
}

func TestNewSNSNotifier_UsesTopicRegion(t *testing.T) {
	n, err := NewSNSNotifier(aws.Config{Region: "us-east-1"}, topicARN, console.NewPlainConsole(io.Discard))
	require.NoError(t, err)
	assert.Equal(t, topicARN, n.topicARN)

	_, err = NewSNSNotifier(aws.Config{}, "not-an-arn", console.NewPlainConsole(io.Discard))
	assert.Error(t, err)
}
