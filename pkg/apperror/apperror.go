package apperror

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/smithy-go"
)

// CodePrefix is prepended to every application error kind.
const CodePrefix = "App.Error."

const (
	KindUnknown              = "Unknown"
	KindTimeout              = "Timeout"
	KindTokenException       = "TokenException"
	KindEntitlementException = "EntitlementException"
)

// Codes reported verbatim by the handlers for input and configuration problems.
const (
	CodeMissingToken  = "MissingTokenException"
	CodeInternalError = "InternalServiceErrorException"
)

// Record is a failure normalized to an HTTP-like status, a message and an
// error code. It is the unit every resolver reports failures in.
type Record struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Code       string `json:"code"`
}

// Error implements the error interface
func (r Record) Error() string {
	return fmt.Sprintf("%s (%d): %s", r.Code, r.StatusCode, r.Message)
}

// New creates a record with code "App.Error.<kind>". The kind defaults to
// "Unknown".
func New(statusCode int, message string, kind ...string) Record {
	k := KindUnknown
	if len(kind) > 0 && kind[0] != "" {
		k = kind[0]
	}
	return Record{StatusCode: statusCode, Message: message, Code: CodePrefix + k}
}

// WithCode creates a record carrying the given code unprefixed.
func WithCode(statusCode int, message string, code string) Record {
	return Record{StatusCode: statusCode, Message: message, Code: code}
}

// Code returns the application code for kind.
func Code(kind string) string {
	return CodePrefix + kind
}

// FromError converts an error returned by an AWS SDK client, or by one of
// the resolvers, into a Record. Records pass through unchanged.
func FromError(err error) Record {
	if err == nil {
		return Record{}
	}

	var rec Record
	if errors.As(err, &rec) {
		return rec
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return New(http.StatusGatewayTimeout, err.Error(), KindTimeout)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		if code == "" {
			code = Code(KindUnknown)
		}
		message := apiErr.ErrorMessage()
		if message == "" {
			message = err.Error()
		}
		return Record{StatusCode: statusOf(err, apiErr.ErrorFault()), Message: message, Code: code}
	}

	return New(http.StatusInternalServerError, err.Error())
}

func statusOf(err error, fault smithy.ErrorFault) int {
	var withStatus interface{ HTTPStatusCode() int }
	if errors.As(err, &withStatus) && withStatus.HTTPStatusCode() != 0 {
		return withStatus.HTTPStatusCode()
	}
	if fault == smithy.FaultServer {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}
