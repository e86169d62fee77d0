package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// Action is the kind of marketplace event a notification announces.
type Action string

const (
	ActionEntitlementUpdated Action = "entitlement-updated"
	ActionSubscribeSuccess   Action = "subscribe-success"
	ActionUnsubscribeSuccess Action = "unsubscribe-success"
	ActionSubscribeFail      Action = "subscribe-fail"
	ActionUnsubscribePending Action = "unsubscribe-pending"
)

// Actions lists every action with a handler, in a stable order.
var Actions = []Action{
	ActionEntitlementUpdated,
	ActionSubscribeSuccess,
	ActionUnsubscribeSuccess,
	ActionSubscribeFail,
	ActionUnsubscribePending,
}

// Known reports whether a is one of Actions.
func (a Action) Known() bool {
	for _, known := range Actions {
		if a == known {
			return true
		}
	}
	return false
}

// CarriesEntitlements reports whether the customer may hold active
// entitlements after an event of this kind.
func (a Action) CarriesEntitlements() bool {
	return a != ActionSubscribeFail && a != ActionUnsubscribePending
}

// Envelope is the SNS notification delivered as the body of an SQS message.
type Envelope struct {
	Type      string          `json:"Type"`
	MessageID string          `json:"MessageId"`
	TopicARN  string          `json:"TopicArn"`
	Message   json.RawMessage `json:"Message"`
	Timestamp string          `json:"Timestamp"`
}

// Content is the marketplace payload carried in the envelope's Message.
type Content struct {
	Action                 Action `json:"action"`
	CustomerID             string `json:"customer-identifier"`
	ProductCode            string `json:"product-code"`
	OfferID                string `json:"offer-identifier"`
	IsFreeTrialTermPresent string `json:"isFreeTrialTermPresent"`
}

// Message is a parsed SQS record.
type Message struct {
	ID             string
	ReceiptHandle  string
	EventSourceARN string
	// Category is the SNS notification type, e.g. "Notification".
	Category string
	Content
}

// Parse decodes the SNS envelope in the body of record. The envelope's
// Message may be an embedded object or a string holding JSON. Bodies
// delivered without an envelope are read as the content itself.
func Parse(record events.SQSMessage) (Message, error) {
	msg := Message{
		ID:             record.MessageId,
		ReceiptHandle:  record.ReceiptHandle,
		EventSourceARN: record.EventSourceARN,
	}

	var env Envelope
	if err := json.Unmarshal([]byte(record.Body), &env); err != nil {
		return msg, fmt.Errorf("decoding envelope of message %s: %w", record.MessageId, err)
	}
	msg.Category = env.Type

	raw := bytes.TrimSpace(env.Message)
	if env.Type == "" && len(raw) == 0 {
		raw = []byte(record.Body)
	}
	content, err := decodeContent(raw)
	if err != nil {
		return msg, fmt.Errorf("decoding content of message %s: %w", record.MessageId, err)
	}
	msg.Content = content
	return msg, nil
}

func decodeContent(raw []byte) (Content, error) {
	var content Content
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return content.trimmed(), nil
	}

	if raw[0] == '"' {
		var embedded string
		if err := json.Unmarshal(raw, &embedded); err != nil {
			return content, err
		}
		embedded = strings.TrimSpace(embedded)
		if embedded == "" {
			return content.trimmed(), nil
		}
		raw = []byte(embedded)
	}

	if err := json.Unmarshal(raw, &content); err != nil {
		return content, err
	}
	return content.trimmed(), nil
}

func (c Content) trimmed() Content {
	c.Action = Action(strings.TrimSpace(string(c.Action)))
	c.CustomerID = strings.TrimSpace(c.CustomerID)
	c.ProductCode = strings.TrimSpace(c.ProductCode)
	c.OfferID = strings.TrimSpace(c.OfferID)
	c.IsFreeTrialTermPresent = strings.TrimSpace(c.IsFreeTrialTermPresent)
	if c.IsFreeTrialTermPresent == "" {
		c.IsFreeTrialTermPresent = "false"
	}
	return c
}
