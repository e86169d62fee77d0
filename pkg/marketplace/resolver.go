package marketplace

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/datazone"
	"github.com/aws/aws-sdk-go-v2/service/marketplaceentitlementservice"
	"github.com/aws/aws-sdk-go-v2/service/marketplacemetering"

	"github.com/suse/saas-tools/pkg/role"
)

// MarketplaceIdentifier is reported for every customer resolved here.
const MarketplaceIdentifier = "AWS"

// MeteringClient is the part of the Marketplace Metering API used to
// resolve registration tokens.
//
//go:generate go run go.uber.org/mock/mockgen@v0.5.0 -destination=../../internal/mocks/metering_client.go -package=mocks . MeteringClient
type MeteringClient interface {
	ResolveCustomer(ctx context.Context, params *marketplacemetering.ResolveCustomerInput, optFns ...func(*marketplacemetering.Options)) (*marketplacemetering.ResolveCustomerOutput, error)
}

// EntitlementClient is the part of the Marketplace Entitlement Service API
// used to list customer entitlements.
//
//go:generate go run go.uber.org/mock/mockgen@v0.5.0 -destination=../../internal/mocks/entitlement_client.go -package=mocks . EntitlementClient
type EntitlementClient interface {
	GetEntitlements(ctx context.Context, params *marketplaceentitlementservice.GetEntitlementsInput, optFns ...func(*marketplaceentitlementservice.Options)) (*marketplaceentitlementservice.GetEntitlementsOutput, error)
}

// DataZoneClient is the part of the DataZone API used to read subscriptions.
//
//go:generate go run go.uber.org/mock/mockgen@v0.5.0 -destination=../../internal/mocks/datazone_client.go -package=mocks . DataZoneClient
type DataZoneClient interface {
	GetSubscription(ctx context.Context, params *datazone.GetSubscriptionInput, optFns ...func(*datazone.Options)) (*datazone.GetSubscriptionOutput, error)
}

// ClientFactory builds a client for region authenticated with creds.
type ClientFactory[C any] func(region string, creds aws.CredentialsProvider) C

// Resolver looks up customers, entitlements and subscriptions using
// credentials obtained from a role.Resolver.
type Resolver struct {
	roles          *role.Resolver
	newMetering    ClientFactory[MeteringClient]
	newEntitlement ClientFactory[EntitlementClient]
	newDataZone    ClientFactory[DataZoneClient]
}

type Option func(*Resolver)

func WithMeteringClientFactory(f ClientFactory[MeteringClient]) Option {
	return func(r *Resolver) {
		r.newMetering = f
	}
}

func WithEntitlementClientFactory(f ClientFactory[EntitlementClient]) Option {
	return func(r *Resolver) {
		r.newEntitlement = f
	}
}

func WithDataZoneClientFactory(f ClientFactory[DataZoneClient]) Option {
	return func(r *Resolver) {
		r.newDataZone = f
	}
}

// New creates a Resolver. Clients default to ones built from cfg with the
// region and credentials of the role that was assumed.
func New(cfg aws.Config, roles *role.Resolver, opts ...Option) *Resolver {
	r := &Resolver{
		roles: roles,
		newMetering: func(region string, creds aws.CredentialsProvider) MeteringClient {
			return marketplacemetering.NewFromConfig(cfg, func(o *marketplacemetering.Options) {
				o.Region = region
				o.Credentials = creds
			})
		},
		newEntitlement: func(region string, creds aws.CredentialsProvider) EntitlementClient {
			return marketplaceentitlementservice.NewFromConfig(cfg, func(o *marketplaceentitlementservice.Options) {
				o.Region = region
				o.Credentials = creds
			})
		},
		newDataZone: func(region string, creds aws.CredentialsProvider) DataZoneClient {
			return datazone.NewFromConfig(cfg, func(o *datazone.Options) {
				o.Region = region
				o.Credentials = creds
			})
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithLogger returns a copy of the resolver whose failures are reported to
// l.
func (r *Resolver) WithLogger(l role.Logger) *Resolver {
	c := *r
	c.roles = r.roles.WithLogger(l)
	return &c
}

func (r *Resolver) log() role.Logger {
	return r.roles.Logger()
}
