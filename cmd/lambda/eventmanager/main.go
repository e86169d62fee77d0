package main

import (
	"context"
	"fmt"

	"github.com/suse/saas-tools/cmd/lambda"
	"github.com/suse/saas-tools/pkg/aws"
	"github.com/suse/saas-tools/pkg/service/events"
)

func main() {
	lambda.StartSQSEventHandler(makeHandler)
}

func makeHandler(ctx context.Context, cfg aws.Config) (lambda.SQSEventHandler, error) {
	roles, err := aws.LoadRoles(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("loading role config: %w", err)
	}

	forwarder, err := aws.NewForwarder(ctx, cfg)
	if err != nil {
		return nil, err
	}

	handler := events.NewHandler(
		aws.NewMarketplaceResolver(cfg),
		forwarder,
		aws.NewSQSNotificationQueue(cfg.Config),
		roles,
		events.WithForwardURLs(cfg.ForwardURLs),
	)
	return handler.Handle, nil
}
