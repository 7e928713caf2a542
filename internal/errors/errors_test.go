package errors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pribylovaa/hacker-stories/internal/service"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToHTTP_ServiceErrors(t *testing.T) {
	wrap := func(err error) error { return fmt.Errorf("service.fetch.Search: %w", err) }

	tcs := []struct {
		name       string
		in         error
		wantStatus int
		wantCode   string
	}{
		{"invalid_argument", wrap(service.ErrInvalidArgument), http.StatusBadRequest, "invalid_argument"},
		{"unknown_field", wrap(service.ErrUnknownField), http.StatusBadRequest, "invalid_argument"},
		{"no_history", wrap(service.ErrNoHistory), http.StatusPreconditionFailed, "failed_precondition"},
		{"fetch_in_progress", wrap(service.ErrFetchInProgress), http.StatusPreconditionFailed, "failed_precondition"},
		{"no_more_pages", wrap(service.ErrNoMorePages), http.StatusPreconditionFailed, "failed_precondition"},
		{"fetch_failed", fmt.Errorf("op: %w: %w", service.ErrFetchFailed, context.DeadlineExceeded), http.StatusServiceUnavailable, "unavailable"},
		{"superseded", wrap(service.ErrSuperseded), http.StatusConflict, "aborted"},
		{"canceled", wrap(context.Canceled), StatusClientClosedRequest, "canceled"},
		{"deadline", wrap(context.DeadlineExceeded), http.StatusGatewayTimeout, "deadline_exceeded"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			gotStatus, resp := ToHTTP(tc.in)
			require.Equal(t, tc.wantStatus, gotStatus)
			require.Equal(t, tc.wantCode, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestToHTTP_GRPCStatus(t *testing.T) {
	gotStatus, resp := ToHTTP(status.Error(codes.NotFound, "x"))
	require.Equal(t, http.StatusNotFound, gotStatus)
	require.Equal(t, "not_found", resp.Error.Code)

	gotStatus, _ = ToHTTP(status.Error(codes.Unimplemented, "x"))
	require.Equal(t, http.StatusNotImplemented, gotStatus)
}

func TestToHTTP_NilError_Returns500Internal(t *testing.T) {
	gotStatus, resp := ToHTTP(nil)
	require.Equal(t, http.StatusInternalServerError, gotStatus)
	require.Equal(t, "internal", resp.Error.Code)
	require.Equal(t, "internal error", resp.Error.Message)
}

func TestCodeOf(t *testing.T) {
	require.Equal(t, codes.OK, CodeOf(nil))
	require.Equal(t, codes.InvalidArgument, CodeOf(service.ErrInvalidArgument))
	require.Equal(t, codes.Internal, CodeOf(errors.New("x")))
}

func TestWriteError_WithRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/search", nil)
	req.Header.Set("X-Request-Id", "rid-1")
	rr := httptest.NewRecorder()

	WriteError(rr, req, fmt.Errorf("op: %w", service.ErrNoHistory))

	require.Equal(t, http.StatusPreconditionFailed, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "failed_precondition", body.Error.Code)
	require.Equal(t, "rid-1", body.Error.RequestID)
}
