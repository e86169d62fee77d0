package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/suse/saas-tools/cmd/lambda"
	"github.com/suse/saas-tools/pkg/aws"
	"github.com/suse/saas-tools/pkg/service/customer"
)

func main() {
	lambda.StartHTTPHandler(makeHandler)
}

func makeHandler(ctx context.Context, cfg aws.Config) (http.Handler, error) {
	roles, err := aws.LoadRoles(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("loading role config: %w", err)
	}

	srv, err := customer.NewServer(aws.NewMarketplaceResolver(cfg), roles)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	srv.Serve(mux)
	return mux, nil
}
