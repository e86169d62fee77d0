package lambda

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/core"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/suse/saas-tools/internal/telemetry"
	"github.com/suse/saas-tools/pkg/aws"
)

// SQSEventHandler is a function that handles SQS events, suitable to use as a lambda handler.
// Records that should be redelivered are listed in the response.
type SQSEventHandler func(context.Context, events.SQSEvent) (events.SQSEventResponse, error)

// SQSEventHandlerBuilder is a function that creates a SQSEventHandler from a config.
type SQSEventHandlerBuilder func(context.Context, aws.Config) (SQSEventHandler, error)

// StartSQSEventHandler starts a lambda handler that processes SQS events.
func StartSQSEventHandler(makeHandler SQSEventHandlerBuilder) {
	ctx := context.Background()
	cfg := aws.FromEnv(ctx)
	telemetry.SetupErrorReporting(cfg.SentryDSN, cfg.SentryEnvironment)

	handler, err := makeHandler(ctx, cfg)
	if err != nil {
		telemetry.ReportError(err)
		telemetry.Flush()
		panic(err)
	}

	lambda.StartWithOptions(instrumentSQSEventHandler(handler), lambda.WithContext(ctx))
}

// instrumentSQSEventHandler wraps a SQSEventHandler with error reporting.
func instrumentSQSEventHandler(handler SQSEventHandler) SQSEventHandler {
	return func(ctx context.Context, sqsEvent events.SQSEvent) (events.SQSEventResponse, error) {
		defer telemetry.Flush()

		resp, err := handler(ctx, sqsEvent)
		if err != nil {
			telemetry.ReportError(err)
		}

		return resp, err
	}
}

// HTTPHandlerBuilder is a function that creates a http.Handler from a config.
type HTTPHandlerBuilder func(context.Context, aws.Config) (http.Handler, error)

// StartHTTPHandler starts a lambda handler that processes HTTP requests.
func StartHTTPHandler(makeHandler HTTPHandlerBuilder) {
	ctx := context.Background()
	cfg := aws.FromEnv(ctx)
	telemetry.SetupErrorReporting(cfg.SentryDSN, cfg.SentryEnvironment)

	handler, err := makeHandler(ctx, cfg)
	if err != nil {
		telemetry.ReportError(err)
		telemetry.Flush()
		panic(err)
	}

	lambda.StartWithOptions(instrumentHTTPHandler(httpadapter.NewV2(handler)), lambda.WithContext(ctx))
}

type httpProxy func(context.Context, events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error)

func instrumentHTTPHandler(adapter *httpadapter.HandlerAdapterV2) httpProxy {
	return func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		defer telemetry.Flush()

		resp, err := adapter.ProxyWithContext(ctx, req)
		if err != nil {
			telemetry.ReportError(err)
			return core.GatewayTimeoutV2(), err
		}
		return resp, nil
	}
}
