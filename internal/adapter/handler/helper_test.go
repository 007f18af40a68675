package handler

import (
	"encoding/json"
	stdErrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-manager/errors"
	uerrors "github.com/johnquangdev/meeting-manager/internal/usecase/errors"
)

func newEchoContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandleSuccess_Envelope(t *testing.T) {
	c, rec := newEchoContext(t)

	if err := HandleSuccess(zap.NewNop(), c, map[string]string{"hello": "world"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Code    int               `json:"code"`
		Message string            `json:"message"`
		Data    map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	if body.Message != "success" || body.Data["hello"] != "world" {
		t.Fatalf("unexpected envelope %+v", body)
	}
}

func TestHandleError_AppErrorStatus(t *testing.T) {
	c, rec := newEchoContext(t)

	if err := HandleError(zap.NewNop(), c, errors.ErrInvalidMeetingID("nope")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleError_UsecaseSentinelMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{uerrors.ErrMeetingNotFound, http.StatusNotFound},
		{uerrors.ErrAlreadySummarized, http.StatusConflict},
		{uerrors.ErrTranscriptRequired, http.StatusBadRequest},
		{uerrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{uerrors.ErrEmailAlreadyUsed, http.StatusConflict},
	}

	for _, tc := range cases {
		c, rec := newEchoContext(t)
		if err := HandleError(zap.NewNop(), c, tc.err); err != nil {
			t.Fatalf("%v: unexpected error: %v", tc.err, err)
		}
		if rec.Code != tc.want {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.want, rec.Code)
		}
	}
}

func TestHandleError_WrappedSentinel(t *testing.T) {
	c, rec := newEchoContext(t)

	wrapped := stdErrors.Join(uerrors.ErrMeetingNotFound)
	if err := HandleError(zap.NewNop(), c, wrapped); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped sentinel, got %d", rec.Code)
	}
}

func TestHandleError_UnknownErrorIsInternal(t *testing.T) {
	c, rec := newEchoContext(t)

	if err := HandleError(zap.NewNop(), c, stdErrors.New("boom")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Internal server error") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}
