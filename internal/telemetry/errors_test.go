package telemetry

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewErrorReportingHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h := NewErrorReportingHandler(func(w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusNoContent)
			return nil
		}, nil)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("http error uses default writer", func(t *testing.T) {
		h := NewErrorReportingHandler(func(w http.ResponseWriter, r *http.Request) error {
			return NewHTTPError(errors.New("nope"), http.StatusTeapot)
		}, nil)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusTeapot, rec.Code)
		require.Equal(t, "nope\n", rec.Body.String())
	})

	t.Run("panic is rendered with custom writer", func(t *testing.T) {
		var got HTTPError
		h := NewErrorReportingHandler(func(w http.ResponseWriter, r *http.Request) error {
			panic("boom")
		}, func(w http.ResponseWriter, e HTTPError) {
			got = e
			w.WriteHeader(e.StatusCode())
		})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/resolve", nil))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, http.StatusInternalServerError, got.StatusCode())
		require.Contains(t, got.Error(), "boom")
	})
}
