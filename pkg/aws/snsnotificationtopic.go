package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/google/uuid"

	"github.com/suse/saas-tools/pkg/notification"
)

// SNSClient is the part of the SNS API used to publish synthetic
// marketplace notifications.
//
//go:generate go run go.uber.org/mock/mockgen@v0.5.0 -destination=../../internal/mocks/sns_client.go -package=mocks . SNSClient
type SNSClient interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSNotificationTopic publishes marketplace notifications to a topic
// subscribed by the event queue.
type SNSNotificationTopic struct {
	topicARN  string
	snsClient SNSClient
}

func NewSNSNotificationTopic(cfg aws.Config, topicARN string) *SNSNotificationTopic {
	return NewSNSNotificationTopicWithClient(sns.NewFromConfig(cfg), topicARN)
}

func NewSNSNotificationTopicWithClient(client SNSClient, topicARN string) *SNSNotificationTopic {
	return &SNSNotificationTopic{topicARN: topicARN, snsClient: client}
}

// Publish sends content as the message of a notification and returns the
// SNS message id. FIFO topics get a group and deduplication id.
func (t *SNSNotificationTopic) Publish(ctx context.Context, content notification.Content) (string, error) {
	message, err := json.Marshal(content)
	if err != nil {
		return "", fmt.Errorf("serializing message content: %w", err)
	}
	input := &sns.PublishInput{
		TopicArn: aws.String(t.topicARN),
		Message:  aws.String(string(message)),
	}
	if strings.HasSuffix(t.topicARN, ".fifo") {
		input.MessageGroupId = &NotificationMessageGroupID
		input.MessageDeduplicationId = aws.String(uuid.NewString())
	}
	out, err := t.snsClient.Publish(ctx, input)
	if err != nil {
		return "", fmt.Errorf("publishing message: %w", err)
	}
	return aws.ToString(out.MessageId), nil
}
