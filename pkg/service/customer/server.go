package customer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/lambdacontext"
	logging "github.com/ipfs/go-log/v2"
	"go.uber.org/zap"

	"github.com/suse/saas-tools/internal/telemetry"
	"github.com/suse/saas-tools/pkg/apperror"
	"github.com/suse/saas-tools/pkg/marketplace"
	"github.com/suse/saas-tools/pkg/role"
)

var log = logging.Logger("customer")

// TokenField is the name the marketplace posts the registration token as.
const TokenField = "x-amzn-marketplace-token"

// Topics errors are reported under.
const (
	TopicCustomer     = "customer"
	TopicEntitlements = "entitlements"
	TopicRequest      = "request"
)

// MaxBodySize caps how much of a request body is read.
const MaxBodySize = 1 << 20

var errUndecodableBody = errors.New("undecodable request body")

//go:generate go run go.uber.org/mock/mockgen@v0.5.0 -destination=../../../internal/mocks/customer.go -package=mocks . CustomerResolver

// CustomerResolver resolves registration tokens and entitlements.
type CustomerResolver interface {
	ResolveCustomer(ctx context.Context, urlEncodedToken string, roles role.Config) (marketplace.CustomerIdentity, error)
	ResolveEntitlements(ctx context.Context, customerID, productCode string, roles role.Config) ([]marketplace.Entitlement, error)
}

// scopable resolvers can report failures to a per request logger.
type scopable interface {
	WithLogger(l role.Logger) *marketplace.Resolver
}

// Response is the body of a successful resolution.
type Response struct {
	MarketplaceIdentifier string                    `json:"marketplaceIdentifier"`
	MarketplaceAccountID  string                    `json:"marketplaceAccountId"`
	CustomerIdentifier    string                    `json:"customerIdentifier"`
	ProductCode           string                    `json:"productCode"`
	Entitlements          []marketplace.Entitlement `json:"entitlements"`
}

// ErrorResponse is the body of a failed resolution. Errors holds the failed
// topic mapped to its message, plus "Exception" mapped to the error code.
type ErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

// TopicError is a record that failed resolving topic.
type TopicError struct {
	Topic  string
	Record apperror.Record
}

func (e TopicError) Error() string {
	return fmt.Sprintf("%s: %s", e.Topic, e.Record.Error())
}

func (e TopicError) Unwrap() error {
	return e.Record
}

type Server struct {
	resolver CustomerResolver
	roles    role.Config
	log      *zap.SugaredLogger
}

type Option func(*Server)

// WithLogger sets the base logger requests are logged to.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Server) {
		s.log = l
	}
}

func NewServer(resolver CustomerResolver, roles role.Config, opts ...Option) (*Server, error) {
	if resolver == nil {
		return nil, errors.New("customer resolver is required")
	}
	srv := &Server{resolver: resolver, roles: roles, log: &log.SugaredLogger}
	for _, opt := range opts {
		opt(srv)
	}
	return srv, nil
}

func (srv *Server) Serve(mux *http.ServeMux) {
	mux.Handle("POST /", srv.Handler())
}

// Handler returns the resolve-customer endpoint.
func (srv *Server) Handler() http.Handler {
	handler := func(w http.ResponseWriter, r *http.Request) error {
		l := srv.log
		if lc, ok := lambdacontext.FromContext(r.Context()); ok {
			l = l.With("requestId", lc.AwsRequestID)
		}

		token, err := readToken(r)
		if err != nil {
			l.Infow("Rejected request", "error", err)
			return writeTopicError(w, TopicError{
				Topic:  TopicRequest,
				Record: apperror.New(http.StatusBadRequest, err.Error()),
			})
		}

		resp, err := srv.resolve(r.Context(), l, token)
		if err != nil {
			var te TopicError
			if errors.As(err, &te) {
				return writeTopicError(w, te)
			}
			return telemetry.NewHTTPError(err, http.StatusInternalServerError)
		}

		l.Infow("Resolved customer", "customerIdentifier", resp.CustomerIdentifier, "productCode", resp.ProductCode, "entitlements", len(resp.Entitlements))
		return writeJSON(w, http.StatusOK, resp)
	}

	return telemetry.NewErrorReportingHandler(handler, writeHTTPError)
}

func (srv *Server) resolve(ctx context.Context, l *zap.SugaredLogger, token string) (Response, error) {
	resolver := srv.resolver
	if s, ok := resolver.(scopable); ok {
		resolver = s.WithLogger(l)
	}

	identity, err := resolver.ResolveCustomer(ctx, token, srv.roles)
	if err != nil {
		return Response{}, TopicError{Topic: TopicCustomer, Record: apperror.FromError(err)}
	}

	entitlements, err := resolver.ResolveEntitlements(ctx, identity.CustomerID, identity.ProductCode, srv.roles)
	if err != nil {
		return Response{}, TopicError{Topic: TopicEntitlements, Record: apperror.FromError(err)}
	}
	if entitlements == nil {
		entitlements = []marketplace.Entitlement{}
	}

	return Response{
		MarketplaceIdentifier: marketplace.MarketplaceIdentifier,
		MarketplaceAccountID:  identity.AccountID,
		CustomerIdentifier:    identity.CustomerID,
		ProductCode:           identity.ProductCode,
		Entitlements:          entitlements,
	}, nil
}

// readToken extracts the registration token from a JSON or form encoded
// body. An empty body yields an empty token.
func readToken(r *http.Request) (string, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodySize))
	if err != nil {
		return "", fmt.Errorf("%w: %w", errUndecodableBody, err)
	}
	if strings.TrimSpace(string(body)) == "" {
		return "", nil
	}

	var doc struct {
		MarketplaceToken  string `json:"x-amzn-marketplace-token"`
		RegistrationToken string `json:"registrationToken"`
	}
	jsonErr := json.Unmarshal(body, &doc)
	if jsonErr == nil {
		if doc.MarketplaceToken != "" {
			return doc.MarketplaceToken, nil
		}
		return doc.RegistrationToken, nil
	}

	// the marketplace form post sends the token still url encoded
	if mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mediaType == "application/x-www-form-urlencoded" {
		for _, pair := range strings.Split(string(body), "&") {
			key, value, _ := strings.Cut(pair, "=")
			if k, err := url.QueryUnescape(key); err == nil && k == TokenField {
				return value, nil
			}
		}
		return "", nil
	}

	return "", fmt.Errorf("%w: %w", errUndecodableBody, jsonErr)
}

func writeTopicError(w http.ResponseWriter, te TopicError) error {
	return writeJSON(w, te.Record.StatusCode, ErrorResponse{
		Errors: map[string]string{
			te.Topic:    te.Record.Message,
			"Exception": te.Record.Code,
		},
	})
}

func writeHTTPError(w http.ResponseWriter, e telemetry.HTTPError) {
	rec := apperror.New(e.StatusCode(), e.Error())
	_ = writeTopicError(w, TopicError{Topic: TopicRequest, Record: rec})
}

func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}
