package adapter

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapLoginResponse(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    error
		wantMsg string
	}{
		{name: "ok", status: http.StatusOK},
		{name: "no content", status: http.StatusNoContent},
		{name: "bad request", status: http.StatusBadRequest, body: "Invalid JSON was passed", want: ErrBadRequest, wantMsg: "Invalid JSON was passed"},
		{name: "unauthorized", status: http.StatusUnauthorized, body: "invalid login/password", want: ErrRejected, wantMsg: "invalid login/password"},
		{name: "forbidden", status: http.StatusForbidden, want: ErrRejected, wantMsg: "Forbidden"},
		{name: "too many requests", status: http.StatusTooManyRequests, want: ErrTooManyRequests},
		{name: "internal", status: http.StatusInternalServerError, want: ErrServiceUnavailable, wantMsg: "http 500"},
		{name: "bad gateway", status: http.StatusBadGateway, want: ErrServiceUnavailable, wantMsg: "http 502"},
		{name: "unknown status", status: http.StatusTeapot, wantMsg: "http 418: I'm a teapot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			resp, err := resty.New().R().Get(srv.URL)
			require.NoError(t, err)

			err = mapLoginResponse(resp)
			if tt.want == nil && tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestMapLoginResponse_TruncatesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(strings.Repeat("x", 1000)))
	}))
	defer srv.Close()

	resp, err := resty.New().R().Get(srv.URL)
	require.NoError(t, err)

	err = mapLoginResponse(resp)

	require.ErrorIs(t, err, ErrRejected)
	assert.Less(t, len(err.Error()), 1000)
}
