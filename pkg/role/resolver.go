package role

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	logging "github.com/ipfs/go-log/v2"

	"github.com/suse/saas-tools/pkg/apperror"
)

var log = logging.Logger("role")

const (
	// DefaultAttemptTimeout bounds a single region attempt, including any
	// API call made with the assumed credentials.
	DefaultAttemptTimeout = 10 * time.Second
	// DefaultBudget bounds a whole fallback walk across all regions.
	DefaultBudget = 30 * time.Second
)

// Logger is the structured logger the resolvers write to.
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
}

// STSClient is the part of the STS API used to assume roles.
//
//go:generate go run go.uber.org/mock/mockgen@v0.5.0 -destination=../../internal/mocks/sts_client.go -package=mocks . STSClient
type STSClient interface {
	AssumeRole(ctx context.Context, params *sts.AssumeRoleInput, optFns ...func(*sts.Options)) (*sts.AssumeRoleOutput, error)
}

// STSClientFactory returns an STS client bound to region.
type STSClientFactory func(region string) STSClient

// AttemptFunc runs with freshly assumed credentials for one region. A nil
// return ends the fallback walk with that region.
type AttemptFunc func(ctx context.Context, assumed Assumed) error

// NoRoleRecord is reported when the role configuration is empty.
func NoRoleRecord() apperror.Record {
	return apperror.WithCode(http.StatusInternalServerError, "no role provided", apperror.CodeInternalError)
}

// Resolver acquires credentials by assuming the configured role of each
// region in turn until one succeeds.
type Resolver struct {
	newSTSClient   STSClientFactory
	log            Logger
	attemptTimeout time.Duration
	budget         time.Duration
}

type Option func(*Resolver)

// WithSTSClientFactory replaces how STS clients are constructed.
func WithSTSClientFactory(f STSClientFactory) Option {
	return func(r *Resolver) {
		r.newSTSClient = f
	}
}

// WithLogger sets the logger failures are reported to.
func WithLogger(l Logger) Option {
	return func(r *Resolver) {
		r.log = l
	}
}

// WithAttemptTimeout sets the per region timeout. Zero disables it.
func WithAttemptTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		r.attemptTimeout = d
	}
}

// WithBudget sets the timeout for a whole fallback walk. Zero disables it.
func WithBudget(d time.Duration) Option {
	return func(r *Resolver) {
		r.budget = d
	}
}

func NewResolver(cfg aws.Config, opts ...Option) *Resolver {
	r := &Resolver{
		newSTSClient: func(region string) STSClient {
			return sts.NewFromConfig(cfg, func(o *sts.Options) {
				o.Region = region
			})
		},
		log:            log,
		attemptTimeout: DefaultAttemptTimeout,
		budget:         DefaultBudget,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithLogger returns a copy of the resolver reporting to l, so a single
// invocation can carry its own scoped logger.
func (r *Resolver) WithLogger(l Logger) *Resolver {
	c := *r
	c.log = l
	return &c
}

// AttemptContext derives a context bounded by the per region timeout, for
// calls made with credentials after the fallback walk has finished.
func (r *Resolver) AttemptContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.attemptTimeout > 0 {
		return context.WithTimeout(ctx, r.attemptTimeout)
	}
	return context.WithCancel(ctx)
}

// Logger returns the logger the resolver reports to.
func (r *Resolver) Logger() Logger {
	return r.log
}

// Resolve assumes the role of each configured region in sorted order and
// returns the credentials of the first that succeeds. When every region
// fails the returned slice holds one record per region in attempt order.
func (r *Resolver) Resolve(ctx context.Context, roles Config) (Assumed, []apperror.Record) {
	return r.Fallback(ctx, roles, nil, nil)
}

// Fallback walks the regions of roles in sorted order. For each region it
// assumes the role and, when attempt is non-nil, runs attempt with the
// credentials. The first region where both succeed is returned and failures
// of earlier regions are dropped. Each failure is normalized through rules.
func (r *Resolver) Fallback(ctx context.Context, roles Config, rules apperror.Rules, attempt AttemptFunc) (Assumed, []apperror.Record) {
	if len(roles) == 0 {
		rec := NoRoleRecord()
		apperror.Log(r.log, rec)
		return Assumed{}, []apperror.Record{rec}
	}

	if r.budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.budget)
		defer cancel()
	}

	var failures []apperror.Record
	for _, region := range roles.Regions() {
		if err := ctx.Err(); err != nil {
			msg := fmt.Sprintf("resolution budget exhausted before %s: %s", region, err)
			failures = append(failures, apperror.New(http.StatusGatewayTimeout, msg, apperror.KindTimeout))
			continue
		}

		r.log.Debugw("trying region", "region", region, "role", roles[region].ARN)
		assumed, err := r.try(ctx, region, roles[region], attempt)
		if err != nil {
			failures = append(failures, rules.Apply(apperror.FromError(err)))
			continue
		}
		r.log.Debugw("region succeeded", "region", region, "failedBefore", len(failures))
		return assumed, nil
	}

	apperror.LogAll(r.log, failures)
	return Assumed{}, failures
}

func (r *Resolver) try(ctx context.Context, region string, role Role, attempt AttemptFunc) (Assumed, error) {
	if r.attemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.attemptTimeout)
		defer cancel()
	}

	creds, err := r.assume(ctx, region, role)
	if err != nil {
		return Assumed{}, err
	}
	assumed := Assumed{Region: region, Credentials: creds}
	if attempt != nil {
		if err := attempt(ctx, assumed); err != nil {
			return Assumed{}, err
		}
	}
	return assumed, nil
}

func (r *Resolver) assume(ctx context.Context, region string, role Role) (Credentials, error) {
	out, err := r.newSTSClient(region).AssumeRole(ctx, &sts.AssumeRoleInput{
		RoleArn:         aws.String(role.ARN),
		RoleSessionName: aws.String(role.Session),
	})
	if err != nil {
		return Credentials{}, fmt.Errorf("assuming role %s in %s: %w", role.ARN, region, err)
	}
	if out == nil || out.Credentials == nil || aws.ToString(out.Credentials.AccessKeyId) == "" {
		return Credentials{}, apperror.New(http.StatusInternalServerError, "assume_role has no data for "+role.ARN)
	}

	creds := Credentials{
		AccessKeyID:     aws.ToString(out.Credentials.AccessKeyId),
		SecretAccessKey: aws.ToString(out.Credentials.SecretAccessKey),
		SessionToken:    aws.ToString(out.Credentials.SessionToken),
	}
	if out.Credentials.Expiration != nil {
		creds.Expiration = out.Credentials.Expiration.UTC().Format(time.RFC3339)
	}
	return creds, nil
}
