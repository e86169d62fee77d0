package telemetry

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/suse/saas-tools/pkg/build"
)

// FlushTimeout bounds how long buffered events are sent for before a
// Lambda invocation returns.
const FlushTimeout = 2 * time.Second

// HTTPError is an error that also has an associated HTTP status code
type HTTPError struct {
	err        error
	statusCode int
}

// Error implements the error interface
func (he HTTPError) Error() string {
	return he.err.Error()
}

// Unwrap returns the underlying error
func (he HTTPError) Unwrap() error {
	return he.err
}

// StatusCode returns the HTTP status code associated with the error
func (he HTTPError) StatusCode() int {
	return he.statusCode
}

// NewHTTPError creates a new HTTPError
func NewHTTPError(err error, statusCode int) HTTPError {
	return HTTPError{err: err, statusCode: statusCode}
}

// ErrorReturningHTTPHandler is a HTTP handler function that returns an error
type ErrorReturningHTTPHandler func(http.ResponseWriter, *http.Request) error

// ErrorWriter renders an HTTPError as a response.
type ErrorWriter func(http.ResponseWriter, HTTPError)

// SetupErrorReporting configures the Sentry SDK for error reporting. An
// empty dsn leaves reporting disabled.
func SetupErrorReporting(dsn, environment string) {
	if dsn == "" {
		return
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
		Release:     build.Version,
		Transport:   sentry.NewHTTPSyncTransport(),
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
}

// NewErrorReportingHandler wraps an ErrorReturningHTTPHandler with error
// reporting. Returned errors and panics are reported; HTTPErrors and panics
// are rendered with writeError, or http.Error when it is nil.
func NewErrorReportingHandler(errorReturningHandler ErrorReturningHTTPHandler, writeError ErrorWriter) http.Handler {
	if writeError == nil {
		writeError = func(w http.ResponseWriter, e HTTPError) {
			http.Error(w, e.Error(), e.StatusCode())
		}
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				err := fmt.Errorf("panic serving %s: %v", r.URL.Path, v)
				ReportError(err)
				writeError(w, NewHTTPError(err, http.StatusInternalServerError))
			}
		}()

		if err := errorReturningHandler(w, r); err != nil {
			ReportError(err)

			// if the error is an HTTPError, send an appropriate response aside from reporting it
			if e, ok := err.(HTTPError); ok {
				writeError(w, e)
			}
		}
	})

	sentryHandler := sentryhttp.New(sentryhttp.Options{})
	return sentryHandler.Handle(handler)
}

// ReportError reports an error to Sentry
func ReportError(err error) {
	sentry.CaptureException(err)
}

// Flush waits for buffered events to be delivered.
func Flush() {
	sentry.Flush(FlushTimeout)
}
