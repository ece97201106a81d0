package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-login-bridge/internal/app"
	"github.com/MKhiriev/go-login-bridge/internal/logger"
	"github.com/MKhiriev/go-login-bridge/internal/mock"
	"github.com/MKhiriev/go-login-bridge/internal/service"
	"github.com/MKhiriev/go-login-bridge/models"
)

type handlerMocks struct {
	auth    *mock.MockAuthService
	appInfo *mock.MockAppInfoService
}

func newTestRouter(t *testing.T) (http.Handler, handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := handlerMocks{
		auth:    mock.NewMockAuthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	h := NewHandler(&service.Services{
		AuthService:    m.auth,
		AppInfoService: m.appInfo,
	}, logger.Nop())

	return h.Init(), m
}

func TestLogin(t *testing.T) {
	account := models.Account{UserID: 1, Login: "alice@example.com"}

	tests := []struct {
		name       string
		body       string
		setup      func(m handlerMocks)
		wantStatus int
		wantHeader string
	}{
		{
			name: "success",
			body: `{"login":"alice@example.com","password":"secret"}`,
			setup: func(m handlerMocks) {
				m.auth.EXPECT().
					Login(gomock.Any(), models.Credentials{Identifier: "alice@example.com", Secret: "secret"}).
					Return(account, nil)
				m.auth.EXPECT().CreateToken(gomock.Any(), account).
					Return(models.Token{SignedString: "signed.jwt.token"}, nil)
			},
			wantStatus: http.StatusOK,
			wantHeader: "Bearer signed.jwt.token",
		},
		{
			name:       "invalid json",
			body:       `{"login":`,
			setup:      func(handlerMocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid data",
			body: `{"login":"","password":""}`,
			setup: func(m handlerMocks) {
				m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(models.Account{}, service.ErrInvalidDataProvided)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "wrong password",
			body: `{"login":"alice@example.com","password":"nope"}`,
			setup: func(m handlerMocks) {
				m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(models.Account{}, service.ErrWrongPassword)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "token creation failed",
			body: `{"login":"alice@example.com","password":"secret"}`,
			setup: func(m handlerMocks) {
				m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(account, nil)
				m.auth.EXPECT().CreateToken(gomock.Any(), account).
					Return(models.Token{}, service.ErrTokenCreationFailed)
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "unexpected error",
			body: `{"login":"alice@example.com","password":"secret"}`,
			setup: func(m handlerMocks) {
				m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(models.Account{}, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			tt.setup(m)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantHeader, rec.Header().Get("Authorization"))
			assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
		})
	}
}

func TestWhoami(t *testing.T) {
	expires := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		header     string
		setup      func(m handlerMocks)
		wantStatus int
		wantBody   *whoamiResponse
	}{
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(m handlerMocks) {
				m.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(models.Token{
					RegisteredClaims: jwt.RegisteredClaims{
						Subject:   "1",
						Issuer:    "go-login-bridge",
						ExpiresAt: jwt.NewNumericDate(expires),
					},
					SignedString: "good",
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   &whoamiResponse{Subject: "1", Issuer: "go-login-bridge", ExpiresAt: expires.Unix()},
		},
		{
			name:       "missing header",
			setup:      func(handlerMocks) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer header",
			header:     "Basic abc",
			setup:      func(handlerMocks) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "expired token",
			header: "Bearer old",
			setup: func(m handlerMocks) {
				m.auth.EXPECT().ParseToken(gomock.Any(), "old").Return(models.Token{}, service.ErrTokenIsExpired)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer forged",
			setup: func(m handlerMocks) {
				m.auth.EXPECT().ParseToken(gomock.Any(), "forged").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			tt.setup(m)

			req := httptest.NewRequest(http.MethodGet, "/api/auth/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody == nil {
				return
			}

			var got whoamiResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, *tt.wantBody, got)
		})
	}
}

func TestErrorBodies(t *testing.T) {
	t.Run("wrong password", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Account{}, service.ErrWrongPassword)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"login":"a@b.c","password":"nope1"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, app.MsgInvalidLoginPassword+"\n", rec.Body.String())
	})

	t.Run("expired token", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.auth.EXPECT().ParseToken(gomock.Any(), "old").Return(models.Token{}, service.ErrTokenIsExpired)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/whoami", nil)
		req.Header.Set("Authorization", "Bearer old")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, app.MsgTokenIsExpired+"\n", rec.Body.String())
	})
}

func TestGetServerVersion(t *testing.T) {
	router, m := newTestRouter(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.4.0")
	m.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("1.4.0", "2026-10-17", "abc123"))

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got versionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, versionResponse{Version: "1.4.0", Build: "1.4.0", Date: "2026-10-17", Commit: "abc123"}, got)
}

func TestTraceID(t *testing.T) {
	tests := []struct {
		name   string
		header string
		value  string
	}{
		{name: "trace id is echoed", header: traceIDHeader, value: "trace-1"},
		{name: "request id is reused", header: requestIDHeader, value: "req-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")
			m.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("", "", ""))

			req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
			req.Header.Set(tt.header, tt.value)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.value, rec.Header().Get(traceIDHeader))
		})
	}
}

func TestMethodNotRouted(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/login", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAccessLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, accessLevel(http.StatusOK))
	assert.Equal(t, zerolog.InfoLevel, accessLevel(http.StatusFound))
	assert.Equal(t, zerolog.WarnLevel, accessLevel(http.StatusUnauthorized))
	assert.Equal(t, zerolog.ErrorLevel, accessLevel(http.StatusBadGateway))
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	w.WriteHeader(http.StatusTeapot)

	assert.Equal(t, 5, n)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, http.StatusOK, rec.Code)
}
