package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"

	"github.com/suse/saas-tools/pkg/notification"
)

// NotificationMessageGroupID is the group used for FIFO queues.
var NotificationMessageGroupID = "marketplace-notifications"

// SQSClient is the part of the SQS API used to acknowledge and inject
// notifications.
//
//go:generate go run go.uber.org/mock/mockgen@v0.5.0 -destination=../../internal/mocks/sqs_client.go -package=mocks . SQSClient
type SQSClient interface {
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
}

// QueueURLFromARN derives the URL of a queue from its ARN,
// arn:aws:sqs:<region>:<account>:<queue>.
func QueueURLFromARN(arn string) (string, error) {
	parts := strings.SplitN(arn, ":", 6)
	if len(parts) != 6 || parts[0] != "arn" || parts[2] != "sqs" {
		return "", fmt.Errorf("not an SQS queue ARN: %q", arn)
	}
	region, account, queue := parts[3], parts[4], parts[5]
	if region == "" || account == "" || queue == "" {
		return "", fmt.Errorf("incomplete SQS queue ARN: %q", arn)
	}
	return fmt.Sprintf("https://sqs.%s.amazonaws.com/%s/%s", region, account, queue), nil
}

// SQSNotificationQueue acknowledges processed marketplace notifications and
// injects synthetic ones for testing.
type SQSNotificationQueue struct {
	sqsClient SQSClient
}

// NewSQSNotificationQueue returns a new SQSNotificationQueue for the given aws config
func NewSQSNotificationQueue(cfg aws.Config) *SQSNotificationQueue {
	return NewSQSNotificationQueueWithClient(sqs.NewFromConfig(cfg))
}

func NewSQSNotificationQueueWithClient(client SQSClient) *SQSNotificationQueue {
	return &SQSNotificationQueue{sqsClient: client}
}

// DeleteMessage removes a received message from the queue identified by
// queueARN.
func (s *SQSNotificationQueue) DeleteMessage(ctx context.Context, queueARN, receiptHandle string) error {
	queueURL, err := QueueURLFromARN(queueARN)
	if err != nil {
		return err
	}
	_, err = s.sqsClient.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(queueURL),
		ReceiptHandle: aws.String(receiptHandle),
	})
	if err != nil {
		return fmt.Errorf("deleting message: %w", err)
	}
	return nil
}

// QueueURL returns nameOrURL unchanged when it is already a URL and looks
// the queue up by name otherwise.
func (s *SQSNotificationQueue) QueueURL(ctx context.Context, nameOrURL string) (string, error) {
	if strings.HasPrefix(nameOrURL, "https://") || strings.HasPrefix(nameOrURL, "http://") {
		return nameOrURL, nil
	}
	out, err := s.sqsClient.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{QueueName: aws.String(nameOrURL)})
	if err != nil {
		return "", fmt.Errorf("looking up queue %s: %w", nameOrURL, err)
	}
	return aws.ToString(out.QueueUrl), nil
}

// Send enqueues content wrapped in an SNS envelope, as the marketplace
// topic subscription would deliver it, and returns the SQS message id.
func (s *SQSNotificationQueue) Send(ctx context.Context, queueURL string, content notification.Content) (string, error) {
	body, err := NewEnvelope(content)
	if err != nil {
		return "", err
	}
	input := &sqs.SendMessageInput{
		QueueUrl:    aws.String(queueURL),
		MessageBody: aws.String(body),
	}
	if strings.HasSuffix(queueURL, ".fifo") {
		input.MessageGroupId = &NotificationMessageGroupID
		input.MessageDeduplicationId = aws.String(uuid.NewString())
	}
	out, err := s.sqsClient.SendMessage(ctx, input)
	if err != nil {
		return "", fmt.Errorf("enqueueing message: %w", err)
	}
	return aws.ToString(out.MessageId), nil
}

// NewEnvelope serializes content as the body of an SNS notification, with
// the content embedded as a JSON string.
func NewEnvelope(content notification.Content) (string, error) {
	inner, err := json.Marshal(content)
	if err != nil {
		return "", fmt.Errorf("serializing message content: %w", err)
	}
	message, err := json.Marshal(string(inner))
	if err != nil {
		return "", fmt.Errorf("serializing message content: %w", err)
	}
	envelope, err := json.Marshal(notification.Envelope{
		Type:      "Notification",
		MessageID: uuid.NewString(),
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return "", fmt.Errorf("serializing message json: %w", err)
	}
	return string(envelope), nil
}
