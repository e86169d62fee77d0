package aws

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	appconfig "github.com/suse/saas-tools/pkg/config"
	"github.com/suse/saas-tools/pkg/forward"
	"github.com/suse/saas-tools/pkg/marketplace"
	"github.com/suse/saas-tools/pkg/notification"
	"github.com/suse/saas-tools/pkg/role"
)

// ErrMissingSecret means that the value returned from Secrets was empty
var ErrMissingSecret = errors.New("missing value for secret")

// ForwardServiceName identifies this service in minted forward tokens.
const ForwardServiceName = "saas-tools"

// DefaultForwardTimeout bounds a single downstream POST.
const DefaultForwardTimeout = 10 * time.Second

// forwardURLEnvVars maps each action to the variable holding its
// destination.
var forwardURLEnvVars = map[notification.Action]string{
	notification.ActionEntitlementUpdated: "ENTITLEMENT_UPDATED_URL",
	notification.ActionSubscribeSuccess:   "SUBSCRIBE_SUCCESS_URL",
	notification.ActionUnsubscribeSuccess: "UNSUBSCRIBE_SUCCESS_URL",
	notification.ActionSubscribeFail:      "SUBSCRIBE_FAIL_URL",
	notification.ActionUnsubscribePending: "UNSUBSCRIBE_PENDING_URL",
}

func mustGetEnv(envVar string) string {
	value := os.Getenv(envVar)
	if len(value) == 0 {
		panic(fmt.Errorf("missing env var: %s", envVar))
	}
	return value
}

func mustGetDuration(envVar string, def time.Duration) time.Duration {
	value := os.Getenv(envVar)
	if len(value) == 0 {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		panic(fmt.Errorf("parsing %s: %w", envVar, err))
	}
	return d
}

// SSMClient is the part of the SSM API used to read secrets.
//
//go:generate go run go.uber.org/mock/mockgen@v0.5.0 -destination=../../internal/mocks/ssm_client.go -package=mocks . SSMClient
type SSMClient interface {
	GetParameters(ctx context.Context, params *ssm.GetParametersInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersOutput, error)
}

type Config struct {
	Config            aws.Config
	S3Options         []func(*s3.Options)
	SentryDSN         string
	SentryEnvironment string
	RoleConfigPath    string
	AttemptTimeout    time.Duration
	ResolveBudget     time.Duration
	ForwardURLs       map[notification.Action]string
	ForwardTimeout    time.Duration
	// ForwardTokenParam names the SSM parameter holding a static bearer
	// token for downstream requests.
	ForwardTokenParam string
	// ForwardSigningKeyParam names the SSM parameter holding an HS256 key.
	// When set, downstream requests carry a minted JWT instead of the
	// static token.
	ForwardSigningKeyParam string
}

func mustGetSSMParams(ctx context.Context, client SSMClient, names ...string) map[string]string {
	response, err := client.GetParameters(ctx, &ssm.GetParametersInput{
		Names:          names,
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		panic(fmt.Errorf("retrieving SSM parameters: %w", err))
	}
	params := map[string]string{}
	for _, name := range names {
		value := ""
		for _, p := range response.Parameters {
			if aws.ToString(p.Name) == name {
				value = aws.ToString(p.Value)
				break
			}
		}
		if value == "" {
			panic(fmt.Errorf("%w: %s", ErrMissingSecret, name))
		}
		params[name] = value
	}
	return params
}

// FromEnv constructs the AWS Configuration from the environment
func FromEnv(ctx context.Context) Config {
	awsConfig, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		panic(fmt.Errorf("loading aws default config: %w", err))
	}

	forwardURLs := map[notification.Action]string{}
	for action, envVar := range forwardURLEnvVars {
		if u := os.Getenv(envVar); u != "" {
			forwardURLs[action] = u
		}
	}

	return Config{
		Config:                 awsConfig,
		SentryDSN:              os.Getenv("SENTRY_DSN"),
		SentryEnvironment:      os.Getenv("SENTRY_ENVIRONMENT"),
		RoleConfigPath:         appconfig.RoleConfigPath(),
		AttemptTimeout:         mustGetDuration("ATTEMPT_TIMEOUT", role.DefaultAttemptTimeout),
		ResolveBudget:          mustGetDuration("RESOLVE_BUDGET", role.DefaultBudget),
		ForwardURLs:            forwardURLs,
		ForwardTimeout:         mustGetDuration("FORWARD_TIMEOUT", DefaultForwardTimeout),
		ForwardTokenParam:      os.Getenv("FORWARD_TOKEN_PARAM"),
		ForwardSigningKeyParam: os.Getenv("FORWARD_SIGNING_KEY_PARAM"),
	}
}

// LoadRoles reads the role configuration named by cfg, fetching it from S3
// for s3:// paths.
func LoadRoles(ctx context.Context, cfg Config) (role.Config, error) {
	return appconfig.LoadRoles(ctx, cfg.RoleConfigPath, appconfig.WithS3Client(s3.NewFromConfig(cfg.Config, cfg.S3Options...)))
}

// NewRoleResolver builds a role resolver with the timeouts from cfg.
func NewRoleResolver(cfg Config, opts ...role.Option) *role.Resolver {
	opts = append([]role.Option{
		role.WithAttemptTimeout(cfg.AttemptTimeout),
		role.WithBudget(cfg.ResolveBudget),
	}, opts...)
	return role.NewResolver(cfg.Config, opts...)
}

// NewMarketplaceResolver builds the customer, entitlement and subscription
// resolver.
func NewMarketplaceResolver(cfg Config, opts ...marketplace.Option) *marketplace.Resolver {
	return marketplace.New(cfg.Config, NewRoleResolver(cfg), opts...)
}

// ForwardAuthHeader returns the Authorization header for downstream
// requests, reading its secret from SSM.
func ForwardAuthHeader(ctx context.Context, cfg Config, client SSMClient) (string, error) {
	if cfg.ForwardSigningKeyParam != "" {
		secrets := mustGetSSMParams(ctx, client, cfg.ForwardSigningKeyParam)
		header, err := forward.CreateJWTAuthHeader(ForwardServiceName, []byte(secrets[cfg.ForwardSigningKeyParam]), 0)
		if err != nil {
			return "", fmt.Errorf("generating forward JWT: %w", err)
		}
		return header, nil
	}
	name := cfg.ForwardTokenParam
	if name == "" {
		name = mustGetEnv("FORWARD_TOKEN_PARAM")
	}
	secrets := mustGetSSMParams(ctx, client, name)
	return forward.BearerAuthHeader(secrets[name]), nil
}

// NewForwarder builds the downstream client, authenticated with the secret
// named by cfg.
func NewForwarder(ctx context.Context, cfg Config) (*forward.Client, error) {
	auth, err := ForwardAuthHeader(ctx, cfg, ssm.NewFromConfig(cfg.Config))
	if err != nil {
		return nil, err
	}
	return forward.New(&http.Client{Timeout: cfg.ForwardTimeout}, auth), nil
}
