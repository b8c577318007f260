package httpapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartSpan_NoParentIsNoop(t *testing.T) {
	ctx := context.Background()
	got, span := startSpan(ctx, "httpapi.Handler.GetTrajectory")
	defer span.End()

	assert.Equal(t, ctx, got)
	assert.False(t, span.SpanContext().IsValid())
}

func TestBodyCapture_Capturable(t *testing.T) {
	capture := BodyCapture{Enabled: true, MaxBytes: 64}
	tests := []struct {
		name        string
		method      string
		path        string
		contentType string
		want        bool
	}{
		{name: "json event", method: http.MethodPost, path: "/v1/events", contentType: "application/json", want: true},
		{name: "get", method: http.MethodGet, path: "/v1/events", contentType: "application/json", want: false},
		{name: "login", method: http.MethodPost, path: "/v1/session/login", contentType: "application/json", want: false},
		{name: "register draft", method: http.MethodPut, path: "/v1/preferences/drafts/register", contentType: "application/json", want: false},
		{name: "multipart", method: http.MethodPost, path: "/v1/profile/picture", contentType: "multipart/form-data", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(`{"a":1}`))
			req.Header.Set("Content-Type", tt.contentType)
			assert.Equal(t, tt.want, capture.capturable(req))
		})
	}

	disabled := BodyCapture{MaxBytes: 64}
	req := httptest.NewRequest(http.MethodPost, "/v1/events", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	assert.False(t, disabled.capturable(req))
}

func TestCaptureRequestBody_PassesBodyThroughUntraced(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		seen = string(raw)
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/events", strings.NewReader(`{"name":"run"}`))
	req.Header.Set("Content-Type", "application/json")
	captureRequestBody(BodyCapture{Enabled: true, MaxBytes: 4}, next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, `{"name":"run"}`, seen)
}
