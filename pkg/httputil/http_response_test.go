package httputil_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/engagement/internal/error_values"
	"github.com/limbo/engagement/pkg/httputil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	testCases := []struct {
		Desc string
		Err  error
		Kind string
	}{
		{Desc: "nil", Err: nil, Kind: ""},
		{Desc: "insufficient", Err: &errorvalues.InsufficientFreezesError{Needed: 3, Available: 1}, Kind: "insufficient_freezes"},
		{Desc: "nothing to bridge", Err: errorvalues.ErrNothingToBridge, Kind: "nothing_to_bridge"},
		{Desc: "expired", Err: errorvalues.ErrFreezeExpired, Kind: "freeze_unavailable"},
		{Desc: "unknown stream", Err: fmt.Errorf("%w: %q", errorvalues.ErrUnknownStream, "weekly"), Kind: "unknown_stream"},
		{Desc: "not found", Err: errorvalues.ErrProgressNotFound, Kind: "not_found"},
		{Desc: "wrapped validation", Err: fmt.Errorf("streak %q: %w", "daily", errorvalues.ErrInvalidConfiguration), Kind: "validation"},
		{Desc: "storage", Err: errorvalues.Storage("listing events", errors.New("conn reset")), Kind: "storage"},
		{Desc: "unclassified", Err: errors.New("boom"), Kind: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Kind, httputil.Kind(tc.Err))
		})
	}
}

func TestWriteErrorResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteErrorResponse(rr, http.StatusConflict, "not enough freezes", &errorvalues.InsufficientFreezesError{Needed: 2, Available: 1})

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var resp httputil.ErrorResponse
	require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, httputil.ErrorResponse{
		Code:    http.StatusConflict,
		Kind:    "insufficient_freezes",
		Message: "not enough freezes",
		Details: "not enough freezes to save streak: need 1 more freeze",
	}, resp)
}

func TestWriteNoContent(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteNoContent(rr)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.Bytes())
}
