package events

import (
	"context"
	"errors"
	"fmt"

	awsevents "github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	logging "github.com/ipfs/go-log/v2"
	"go.uber.org/zap"

	"github.com/suse/saas-tools/pkg/apperror"
	"github.com/suse/saas-tools/pkg/forward"
	"github.com/suse/saas-tools/pkg/marketplace"
	"github.com/suse/saas-tools/pkg/notification"
	"github.com/suse/saas-tools/pkg/role"
)

var log = logging.Logger("events")

var (
	// ErrNoDestination means no forward URL is configured for an action.
	ErrNoDestination = errors.New("no destination configured")
	// ErrIncompleteMessage means a notification lacks its customer or product.
	ErrIncompleteMessage = errors.New("incomplete message")
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.0 -destination=../../../internal/mocks/events.go -package=mocks . EntitlementResolver,Forwarder,MessageDeleter

type EntitlementResolver interface {
	ResolveEntitlements(ctx context.Context, customerID, productCode string, roles role.Config) ([]marketplace.Entitlement, error)
}

type Forwarder interface {
	Forward(ctx context.Context, url string, payload any) error
}

type MessageDeleter interface {
	DeleteMessage(ctx context.Context, queueARN, receiptHandle string) error
}

// Payload is the document POSTed downstream for every handled event.
type Payload struct {
	CustomerIdentifier     string                    `json:"customerIdentifier"`
	MarketplaceIdentifier  string                    `json:"marketplaceIdentifier"`
	ProductCode            string                    `json:"productCode"`
	Action                 notification.Action       `json:"action"`
	OfferIdentifier        string                    `json:"offerIdentifier"`
	IsFreeTrialTermPresent string                    `json:"isFreeTrialTermPresent"`
	Entitlements           []marketplace.Entitlement `json:"entitlements"`
}

// Handler processes batches of marketplace notifications delivered through
// SQS.
type Handler struct {
	resolver  EntitlementResolver
	forwarder Forwarder
	deleter   MessageDeleter
	roles     role.Config
	urls      map[notification.Action]string
	log       *zap.SugaredLogger
}

type Option func(*Handler)

// WithLogger sets the logger records are reported to.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(h *Handler) {
		h.log = l
	}
}

// WithForwardURLs sets the destination of each action. Actions without a
// destination are dropped.
func WithForwardURLs(urls map[notification.Action]string) Option {
	return func(h *Handler) {
		h.urls = urls
	}
}

func NewHandler(resolver EntitlementResolver, forwarder Forwarder, deleter MessageDeleter, roles role.Config, opts ...Option) *Handler {
	h := &Handler{
		resolver:  resolver,
		forwarder: forwarder,
		deleter:   deleter,
		roles:     roles,
		urls:      map[notification.Action]string{},
		log:       &log.SugaredLogger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle processes the records of event one after another. Records that
// should be delivered again are listed in the response; all others are
// deleted from their queue.
func (h *Handler) Handle(ctx context.Context, event awsevents.SQSEvent) (awsevents.SQSEventResponse, error) {
	l := h.log
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		l = l.With("requestId", lc.AwsRequestID)
	}

	resp := awsevents.SQSEventResponse{BatchItemFailures: []awsevents.SQSBatchItemFailure{}}
	for _, record := range event.Records {
		if err := h.process(ctx, l.With("messageId", record.MessageId), record); err != nil {
			l.Errorw("Exception processing message", "messageId", record.MessageId, "receiptHandle", record.ReceiptHandle, "error", err)
			resp.BatchItemFailures = append(resp.BatchItemFailures, awsevents.SQSBatchItemFailure{ItemIdentifier: record.MessageId})
		}
	}
	return resp, nil
}

// process returns an error only when the record should be retried.
func (h *Handler) process(ctx context.Context, l *zap.SugaredLogger, record awsevents.SQSMessage) error {
	msg, err := notification.Parse(record)
	if err != nil {
		return err
	}

	switch {
	case msg.Action == "":
		l.Infow("Received an unknown message", "category", msg.Category, "body", record.Body)
	case !msg.Action.Known():
		l.Infof("Received a message with an unhandled action type: %s", msg.Action)
	default:
		if err := h.dispatch(ctx, msg); err != nil {
			if retryable(err) {
				return err
			}
			l.Errorw("Dropping message", "action", msg.Action, "customerIdentifier", msg.CustomerID, "productCode", msg.ProductCode, "error", err)
		} else {
			l.Infow("Forwarded message", "action", msg.Action, "customerIdentifier", msg.CustomerID, "productCode", msg.ProductCode)
		}
	}

	// always clean up the message except on retryable failure
	if err := h.deleter.DeleteMessage(ctx, msg.EventSourceARN, msg.ReceiptHandle); err != nil {
		return fmt.Errorf("deleting message: %w", err)
	}
	return nil
}

func (h *Handler) dispatch(ctx context.Context, msg notification.Message) error {
	url := h.urls[msg.Action]
	if url == "" {
		return fmt.Errorf("%w for action %s", ErrNoDestination, msg.Action)
	}

	entitlements := []marketplace.Entitlement{}
	if msg.Action.CarriesEntitlements() {
		if msg.CustomerID == "" || msg.ProductCode == "" {
			return fmt.Errorf("%w: customer %q, product %q", ErrIncompleteMessage, msg.CustomerID, msg.ProductCode)
		}
		resolved, err := h.resolver.ResolveEntitlements(ctx, msg.CustomerID, msg.ProductCode, h.roles)
		if err != nil {
			return fmt.Errorf("getting entitlements for customer %s and product %s: %w", msg.CustomerID, msg.ProductCode, err)
		}
		entitlements = resolved
	}

	return h.forwarder.Forward(ctx, url, Payload{
		CustomerIdentifier:     msg.CustomerID,
		MarketplaceIdentifier:  marketplace.MarketplaceIdentifier,
		ProductCode:            msg.ProductCode,
		Action:                 msg.Action,
		OfferIdentifier:        msg.OfferID,
		IsFreeTrialTermPresent: msg.IsFreeTrialTermPresent,
		Entitlements:           entitlements,
	})
}

// retryable reports whether a dispatch failure may clear up on redelivery.
// Every entitlement lookup failure is retried.
func retryable(err error) bool {
	if errors.Is(err, ErrNoDestination) || errors.Is(err, ErrIncompleteMessage) {
		return false
	}
	var rec apperror.Record
	if errors.As(err, &rec) {
		return true
	}
	return forward.Retryable(err)
}
