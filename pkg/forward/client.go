package forward

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/suse/saas-tools/pkg/build"
)

// Sender posts JSON documents to downstream subscribers of marketplace
// events.
type Sender interface {
	Forward(ctx context.Context, url string, payload any) error
}

// ErrFailedResponse is returned when the downstream answers with a non 2xx
// status.
type ErrFailedResponse struct {
	StatusCode int
	Body       string
}

func errFromResponse(res *http.Response) ErrFailedResponse {
	err := ErrFailedResponse{StatusCode: res.StatusCode}

	message, merr := io.ReadAll(res.Body)
	if merr != nil {
		err.Body = merr.Error()
	} else {
		err.Body = string(message)
	}
	return err
}

func (e ErrFailedResponse) Error() string {
	return fmt.Sprintf("http request failed, status: %d %s, message: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

// Retryable reports whether the same request may succeed later.
func (e ErrFailedResponse) Retryable() bool {
	return e.StatusCode >= http.StatusInternalServerError ||
		e.StatusCode == http.StatusTooManyRequests ||
		e.StatusCode == http.StatusRequestTimeout
}

// ErrInvalidRequest marks requests that could not be built, such as a
// payload that does not encode or a malformed URL.
var ErrInvalidRequest = errors.New("invalid request")

// Retryable reports whether err, returned by Forward, is worth another
// delivery. Transport errors are retryable; invalid requests and downstream
// rejections other than overload are final.
func Retryable(err error) bool {
	if err == nil || errors.Is(err, ErrInvalidRequest) {
		return false
	}
	var failed ErrFailedResponse
	if errors.As(err, &failed) {
		return failed.Retryable()
	}
	return true
}

type Client struct {
	authHeader string
	client     *http.Client
}

var _ Sender = (*Client)(nil)

func New(client *http.Client, authHeader string) *Client {
	return &Client{
		authHeader: authHeader,
		client:     client,
	}
}

// Forward POSTs payload as JSON to url.
func (c *Client) Forward(ctx context.Context, url string, payload any) error {
	return c.verifySuccess(c.postJson(ctx, url, payload))
}

func (c *Client) sendRequest(ctx context.Context, method string, url string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("%w: generating http request: %w", ErrInvalidRequest, err)
	}
	if c.authHeader != "" {
		req.Header.Add("Authorization", c.authHeader)
	}
	req.Header.Add("Content-Type", "application/json")
	req.Header.Set("User-Agent", build.UserAgent())
	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request to %s: %w", url, err)
	}
	return res, nil
}

func (c *Client) postJson(ctx context.Context, url string, params any) (*http.Response, error) {
	var body io.Reader
	if params != nil {
		asBytes, err := json.Marshal(params)
		if err != nil {
			return nil, fmt.Errorf("%w: encoding request parameters: %w", ErrInvalidRequest, err)
		}
		body = bytes.NewReader(asBytes)
	}

	return c.sendRequest(ctx, http.MethodPost, url, body)
}

func (c *Client) verifySuccess(res *http.Response, err error) error {
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return errFromResponse(res)
	}
	_, _ = io.Copy(io.Discard, res.Body)
	return nil
}

// BearerAuthHeader returns the Authorization header value for a static token.
func BearerAuthHeader(token string) string {
	if token == "" {
		return ""
	}
	return "Bearer " + token
}

// CreateJWTAuthHeader mints an HS256 token identifying serviceName, signed
// with key. A zero ttl yields a token without expiry.
func CreateJWTAuthHeader(serviceName string, key []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"service_name": serviceName,
		"iat":          now.Unix(),
	}
	if ttl > 0 {
		claims["exp"] = now.Add(ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %v", err)
	}

	return "Bearer " + tokenString, nil
}
