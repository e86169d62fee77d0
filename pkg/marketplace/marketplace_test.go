package marketplace_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/datazone"
	dztypes "github.com/aws/aws-sdk-go-v2/service/datazone/types"
	"github.com/aws/aws-sdk-go-v2/service/marketplaceentitlementservice"
	"github.com/aws/aws-sdk-go-v2/service/marketplaceentitlementservice/types"
	"github.com/aws/aws-sdk-go-v2/service/marketplacemetering"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	ststypes "github.com/aws/aws-sdk-go-v2/service/sts/types"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/suse/saas-tools/internal/mocks"
	"github.com/suse/saas-tools/pkg/apperror"
	"github.com/suse/saas-tools/pkg/marketplace"
	"github.com/suse/saas-tools/pkg/role"
)

var (
	euRole = role.Role{ARN: "arn:aws:iam::123456789012:role/eu", Session: "saas"}
	usRole = role.Role{ARN: "arn:aws:iam::123456789012:role/us", Session: "saas"}
	roles  = role.Config{"us-east-1": usRole, "eu-central-1": euRole}
)

func apiError(code string, status int) error {
	return &awshttp.ResponseError{
		ResponseError: &smithyhttp.ResponseError{
			Response: &smithyhttp.Response{Response: &http.Response{StatusCode: status}},
			Err:      &smithy.GenericAPIError{Code: code, Message: code + " happened"},
		},
	}
}

func credentialsFor(region string) *sts.AssumeRoleOutput {
	return &sts.AssumeRoleOutput{
		Credentials: &ststypes.Credentials{
			AccessKeyId:     aws.String("AKIA-" + region),
			SecretAccessKey: aws.String("secret"),
			SessionToken:    aws.String("token"),
		},
	}
}

type regionMocks struct {
	sts         *mocks.MockSTSClient
	metering    *mocks.MockMeteringClient
	entitlement *mocks.MockEntitlementClient
	datazone    *mocks.MockDataZoneClient
}

type testEnv struct {
	regions map[string]*regionMocks
	logs    *observer.ObservedLogs
}

func newResolver(t *testing.T) (*marketplace.Resolver, testEnv) {
	ctrl := gomock.NewController(t)
	env := testEnv{regions: map[string]*regionMocks{}}
	for _, region := range []string{"eu-central-1", "us-east-1"} {
		env.regions[region] = &regionMocks{
			sts:         mocks.NewMockSTSClient(ctrl),
			metering:    mocks.NewMockMeteringClient(ctrl),
			entitlement: mocks.NewMockEntitlementClient(ctrl),
			datazone:    mocks.NewMockDataZoneClient(ctrl),
		}
	}
	core, logs := observer.New(zapcore.DebugLevel)
	env.logs = logs

	// clients must be built with the credentials of the region they serve
	checkCreds := func(region string, creds aws.CredentialsProvider) {
		v, err := creds.Retrieve(context.Background())
		require.NoError(t, err)
		require.Equal(t, "AKIA-"+region, v.AccessKeyID)
	}

	roleResolver := role.NewResolver(aws.Config{},
		role.WithSTSClientFactory(func(region string) role.STSClient { return env.regions[region].sts }),
		role.WithLogger(zap.New(core).Sugar()),
	)
	r := marketplace.New(aws.Config{}, roleResolver,
		marketplace.WithMeteringClientFactory(func(region string, creds aws.CredentialsProvider) marketplace.MeteringClient {
			checkCreds(region, creds)
			return env.regions[region].metering
		}),
		marketplace.WithEntitlementClientFactory(func(region string, creds aws.CredentialsProvider) marketplace.EntitlementClient {
			checkCreds(region, creds)
			return env.regions[region].entitlement
		}),
		marketplace.WithDataZoneClientFactory(func(region string, creds aws.CredentialsProvider) marketplace.DataZoneClient {
			checkCreds(region, creds)
			return env.regions[region].datazone
		}),
	)
	return r, env
}

func (env testEnv) assumeSucceeds(region string) *gomock.Call {
	return env.regions[region].sts.EXPECT().AssumeRole(gomock.Any(), gomock.Any()).Return(credentialsFor(region), nil)
}

func (env testEnv) errorLogs() []observer.LoggedEntry {
	return env.logs.FilterLevelExact(zapcore.ErrorLevel).All()
}

func TestResolveCustomer(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, env := newResolver(t)
		env.assumeSucceeds("eu-central-1")
		env.regions["eu-central-1"].metering.EXPECT().
			ResolveCustomer(gomock.Any(), gomock.Cond(func(in *marketplacemetering.ResolveCustomerInput) bool {
				return aws.ToString(in.RegistrationToken) == "a+b/c=="
			})).
			Return(&marketplacemetering.ResolveCustomerOutput{
				CustomerIdentifier:   aws.String("cust-1"),
				CustomerAWSAccountId: aws.String("111122223333"),
				ProductCode:          aws.String("prod-1"),
			}, nil)

		identity, err := r.ResolveCustomer(context.Background(), "a+b%2Fc%3D%3D", roles)
		require.NoError(t, err)
		require.Equal(t, marketplace.CustomerIdentity{CustomerID: "cust-1", AccountID: "111122223333", ProductCode: "prod-1"}, identity)
	})

	t.Run("missing fields are empty", func(t *testing.T) {
		r, env := newResolver(t)
		env.assumeSucceeds("eu-central-1")
		env.regions["eu-central-1"].metering.EXPECT().
			ResolveCustomer(gomock.Any(), gomock.Any()).
			Return(&marketplacemetering.ResolveCustomerOutput{CustomerIdentifier: aws.String("cust-1")}, nil)

		identity, err := r.ResolveCustomer(context.Background(), "token", roles)
		require.NoError(t, err)
		require.Equal(t, marketplace.CustomerIdentity{CustomerID: "cust-1"}, identity)
	})

	t.Run("empty token makes no calls", func(t *testing.T) {
		r, env := newResolver(t)

		_, err := r.ResolveCustomer(context.Background(), "", roles)
		require.Equal(t, apperror.Record{StatusCode: 422, Message: "no marketplace token provided", Code: "MissingTokenException"}, err)
		require.Len(t, env.errorLogs(), 1)
	})

	t.Run("empty roles make no calls", func(t *testing.T) {
		r, _ := newResolver(t)

		_, err := r.ResolveCustomer(context.Background(), "token", role.Config{})
		require.Equal(t, role.NoRoleRecord(), err)
	})

	t.Run("malformed token", func(t *testing.T) {
		r, _ := newResolver(t)

		_, err := r.ResolveCustomer(context.Background(), "bad%zz", roles)
		var rec apperror.Record
		require.ErrorAs(t, err, &rec)
		require.Equal(t, 422, rec.StatusCode)
		require.Equal(t, "MissingTokenException", rec.Code)
	})

	t.Run("throttled in every region", func(t *testing.T) {
		r, env := newResolver(t)
		gomock.InOrder(
			env.regions["eu-central-1"].sts.EXPECT().AssumeRole(gomock.Any(), gomock.Any()).
				Return(nil, apiError("ThrottlingException", http.StatusBadRequest)),
			env.regions["us-east-1"].sts.EXPECT().AssumeRole(gomock.Any(), gomock.Any()).
				Return(nil, apiError("ThrottlingException", http.StatusBadRequest)),
		)

		_, err := r.ResolveCustomer(context.Background(), "token", roles)
		want := apperror.Record{StatusCode: 400, Message: "ThrottlingException happened", Code: "App.Error.TokenException"}
		require.Equal(t, want, err)

		logs := env.errorLogs()
		require.Len(t, logs, 2)
		for _, entry := range logs {
			require.Equal(t, want.Message, entry.Message)
			require.EqualValues(t, 400, entry.ContextMap()["statusCode"])
			require.Equal(t, "App.Error.TokenException", entry.ContextMap()["code"])
		}
	})

	t.Run("upstream failures are classified", func(t *testing.T) {
		for code, want := range map[string]apperror.Record{
			"ExpiredTokenException":         {StatusCode: 400, Message: "ExpiredTokenException happened", Code: "App.Error.TokenException"},
			"InvalidTokenException":         {StatusCode: 400, Message: "InvalidTokenException happened", Code: "App.Error.TokenException"},
			"DisabledApiException":          {StatusCode: 400, Message: "DisabledApiException happened", Code: "App.Error.TokenException"},
			"InternalServiceErrorException": {StatusCode: 500, Message: "InternalServiceErrorException happened", Code: "InternalServiceErrorException"},
		} {
			t.Run(code, func(t *testing.T) {
				r, env := newResolver(t)
				env.assumeSucceeds("eu-central-1")
				env.regions["eu-central-1"].metering.EXPECT().
					ResolveCustomer(gomock.Any(), gomock.Any()).
					Return(nil, apiError(code, want.StatusCode))

				_, err := r.ResolveCustomer(context.Background(), "token", roles)
				require.Equal(t, want, err)
				require.Len(t, env.errorLogs(), 1)
			})
		}
	})
}

func TestResolveEntitlements(t *testing.T) {
	t.Run("success with pagination", func(t *testing.T) {
		r, env := newResolver(t)
		env.assumeSucceeds("eu-central-1")
		client := env.regions["eu-central-1"].entitlement
		gomock.InOrder(
			client.EXPECT().
				GetEntitlements(gomock.Any(), gomock.Cond(func(in *marketplaceentitlementservice.GetEntitlementsInput) bool {
					return aws.ToString(in.ProductCode) == "prod-1" &&
						in.NextToken == nil &&
						in.Filter["CUSTOMER_IDENTIFIER"][0] == "cust-1"
				})).
				Return(&marketplaceentitlementservice.GetEntitlementsOutput{
					Entitlements: []types.Entitlement{{Dimension: aws.String("users"), Value: &types.EntitlementValue{IntegerValue: aws.Int32(10)}}},
					NextToken:    aws.String("page-2"),
				}, nil),
			client.EXPECT().
				GetEntitlements(gomock.Any(), gomock.Cond(func(in *marketplaceentitlementservice.GetEntitlementsInput) bool {
					return aws.ToString(in.NextToken) == "page-2"
				})).
				Return(&marketplaceentitlementservice.GetEntitlementsOutput{
					Entitlements: []types.Entitlement{{Dimension: aws.String("tier"), Value: &types.EntitlementValue{StringValue: aws.String("gold")}}},
				}, nil),
		)

		entitlements, err := r.ResolveEntitlements(context.Background(), "cust-1", "prod-1", roles)
		require.NoError(t, err)
		require.Equal(t, []marketplace.Entitlement{
			{Dimension: "users", Value: marketplace.Value{IntegerValue: 10}},
			{Dimension: "tier", Value: marketplace.Value{StringValue: "gold"}},
		}, entitlements)
	})

	t.Run("falls back when the call fails", func(t *testing.T) {
		r, env := newResolver(t)
		env.assumeSucceeds("eu-central-1")
		env.assumeSucceeds("us-east-1")
		env.regions["eu-central-1"].entitlement.EXPECT().
			GetEntitlements(gomock.Any(), gomock.Any()).
			Return(nil, apiError("AccessDeniedException", http.StatusForbidden))
		env.regions["us-east-1"].entitlement.EXPECT().
			GetEntitlements(gomock.Any(), gomock.Any()).
			Return(&marketplaceentitlementservice.GetEntitlementsOutput{}, nil)

		entitlements, err := r.ResolveEntitlements(context.Background(), "cust-1", "prod-1", roles)
		require.NoError(t, err)
		require.NotNil(t, entitlements)
		require.Empty(t, entitlements)
	})

	t.Run("failures are classified", func(t *testing.T) {
		r, env := newResolver(t)
		env.assumeSucceeds("eu-central-1")
		env.assumeSucceeds("us-east-1")
		env.regions["eu-central-1"].entitlement.EXPECT().
			GetEntitlements(gomock.Any(), gomock.Any()).
			Return(nil, apiError("InvalidParameterException", http.StatusBadRequest))
		env.regions["us-east-1"].entitlement.EXPECT().
			GetEntitlements(gomock.Any(), gomock.Any()).
			Return(nil, apiError("ThrottlingException", http.StatusBadRequest))

		_, err := r.ResolveEntitlements(context.Background(), "cust-1", "prod-1", roles)
		require.Equal(t, apperror.Record{StatusCode: 400, Message: "ThrottlingException happened", Code: "App.Error.EntitlementException"}, err)
		require.Len(t, env.errorLogs(), 2)
	})

	t.Run("missing input makes no calls", func(t *testing.T) {
		for name, args := range map[string][2]string{
			"customer": {"", "prod-1"},
			"product":  {"cust-1", ""},
		} {
			t.Run(name, func(t *testing.T) {
				r, _ := newResolver(t)
				_, err := r.ResolveEntitlements(context.Background(), args[0], args[1], roles)
				require.Equal(t, apperror.Record{StatusCode: 500, Message: "no customer_id/product_code and/or role provided", Code: "InternalServiceErrorException"}, err)
			})
		}

		r, _ := newResolver(t)
		_, err := r.ResolveEntitlements(context.Background(), "cust-1", "prod-1", nil)
		require.Equal(t, marketplace.MissingEntitlementInputRecord(), err)
	})
}

func TestNormalize(t *testing.T) {
	expires := time.Date(2031, 6, 1, 0, 0, 0, 0, time.UTC)
	got := marketplace.Normalize([]types.Entitlement{
		{
			Dimension:      aws.String("d"),
			ExpirationDate: &expires,
			Value:          &types.EntitlementValue{BooleanValue: aws.Bool(true), IntegerValue: aws.Int32(5)},
		},
		{Dimension: aws.String("empty")},
	})
	require.Equal(t, []marketplace.Entitlement{
		{
			Dimension:      "d",
			ExpirationDate: "2031-06-01T00:00:00Z",
			Value:          marketplace.Value{BooleanValue: true, DoubleValue: 0, IntegerValue: 5, StringValue: ""},
		},
		{Dimension: "empty"},
	}, got)

	require.NotNil(t, marketplace.Normalize(nil))
}

func TestResolveSubscription(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, env := newResolver(t)
		env.assumeSucceeds("eu-central-1")
		created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		env.regions["eu-central-1"].datazone.EXPECT().
			GetSubscription(gomock.Any(), gomock.Cond(func(in *datazone.GetSubscriptionInput) bool {
				return aws.ToString(in.DomainIdentifier) == "dzd-1" && aws.ToString(in.Identifier) == "sub-1"
			})).
			Return(&datazone.GetSubscriptionOutput{
				Id:                    aws.String("sub-1"),
				DomainId:              aws.String("dzd-1"),
				Status:                dztypes.SubscriptionStatusApproved,
				SubscriptionRequestId: aws.String("req-1"),
				RetainPermissions:     aws.Bool(true),
				CreatedBy:             aws.String("alice"),
				CreatedAt:             &created,
			}, nil)

		sub, err := r.ResolveSubscription(context.Background(), "dzd-1", "sub-1", roles)
		require.NoError(t, err)
		require.Equal(t, marketplace.Subscription{
			ID:                    "sub-1",
			DomainID:              "dzd-1",
			Status:                "APPROVED",
			SubscriptionRequestID: "req-1",
			RetainPermissions:     true,
			CreatedBy:             "alice",
			CreatedAt:             "2024-03-01T12:00:00Z",
		}, sub)
	})

	t.Run("failures pass through unclassified", func(t *testing.T) {
		r, env := newResolver(t)
		env.assumeSucceeds("eu-central-1")
		env.assumeSucceeds("us-east-1")
		env.regions["eu-central-1"].datazone.EXPECT().
			GetSubscription(gomock.Any(), gomock.Any()).
			Return(nil, apiError("ThrottlingException", http.StatusTooManyRequests))
		env.regions["us-east-1"].datazone.EXPECT().
			GetSubscription(gomock.Any(), gomock.Any()).
			Return(nil, apiError("ResourceNotFoundException", http.StatusNotFound))

		_, err := r.ResolveSubscription(context.Background(), "dzd-1", "sub-1", roles)
		require.Equal(t, apperror.Record{StatusCode: 404, Message: "ResourceNotFoundException happened", Code: "ResourceNotFoundException"}, err)
	})

	t.Run("missing input", func(t *testing.T) {
		r, _ := newResolver(t)
		_, err := r.ResolveSubscription(context.Background(), "dzd-1", "", roles)
		require.Equal(t, marketplace.MissingSubscriptionInputRecord(), err)
	})
}
