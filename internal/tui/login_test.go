package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-login-bridge/internal/adapter"
	"github.com/MKhiriev/go-login-bridge/internal/dispatch"
	"github.com/MKhiriev/go-login-bridge/internal/lifecycle"
	"github.com/MKhiriev/go-login-bridge/internal/logger"
	"github.com/MKhiriev/go-login-bridge/internal/mock"
	"github.com/MKhiriev/go-login-bridge/internal/service"
	"github.com/MKhiriev/go-login-bridge/internal/store"
	"github.com/MKhiriev/go-login-bridge/internal/workers"
	"github.com/MKhiriev/go-login-bridge/models"
)

// chanSender collects the messages programView sends.
type chanSender chan tea.Msg

func (s chanSender) Send(msg tea.Msg) { s <- msg }

type screenHarness struct {
	model *loginModel
	scope *lifecycle.Scope
	loop  *dispatch.Loop
	msgs  chanSender
}

func newScreenHarness(t *testing.T, login adapter.LoginService) *screenHarness {
	t.Helper()

	loop := dispatch.NewLoop(logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = loop.Run(ctx) }()

	pool := workers.NewPool(1, 1, logger.Nop())
	pool.Run()

	auth, err := service.NewClientAuthService(login, nil, pool, 0, logger.Nop())
	require.NoError(t, err)

	scope := lifecycle.NewScope(context.Background(), loop, logger.Nop())
	msgs := make(chanSender, 8)
	view := &programView{}
	view.attach(msgs)

	t.Cleanup(func() {
		scope.CancelAll()
		pool.Stop()
		cancel()
		<-loop.Done()
	})

	return &screenHarness{
		model: newLoginModel(auth, scope, view),
		scope: scope,
		loop:  loop,
		msgs:  msgs,
	}
}

func (h *screenHarness) next(t *testing.T) tea.Msg {
	t.Helper()
	select {
	case msg := <-h.msgs:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("no message from the login operation")
		return nil
	}
}

func typeText(m *loginModel, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func fillForm(m *loginModel, identifier, password string) {
	typeText(m, identifier)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeText(m, password)
}

func enter(m *loginModel) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestLoginModel_Validation(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		password   string
		wantFocus  int
		wantErrs   []bool
	}{
		{name: "empty identifier", identifier: "", password: "secret", wantFocus: fieldIdentifier, wantErrs: []bool{true, false}},
		{name: "identifier without at", identifier: "alice", password: "secret", wantFocus: fieldIdentifier, wantErrs: []bool{true, false}},
		{name: "short password", identifier: "alice@example.com", password: "1234", wantFocus: fieldPassword, wantErrs: []bool{false, true}},
		{name: "both invalid", identifier: "alice", password: "123", wantFocus: fieldIdentifier, wantErrs: []bool{true, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// no login attempt for an invalid form
			h := newScreenHarness(t, mock.NewMockLoginService(ctrl))

			fillForm(h.model, tt.identifier, tt.password)
			enter(h.model)

			assert.Equal(t, tt.wantFocus, h.model.focus)
			for i, want := range tt.wantErrs {
				assert.Equal(t, want, h.model.errs[i] != "", "field %d", i)
			}
			assert.False(t, h.model.busy())
		})
	}
}

func TestLoginModel_EmptyPasswordIsAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	loginSvc := mock.NewMockLoginService(ctrl)
	loginSvc.EXPECT().Login("alice@example.com", "", gomock.Any()).
		Do(func(_, _ string, handler adapter.LoginHandler) { handler.OnLoginFailure() })
	h := newScreenHarness(t, loginSvc)

	fillForm(h.model, "alice@example.com", "")
	enter(h.model)

	assert.Equal(t, progressMsg{visible: true}, h.next(t))
	assert.Equal(t, progressMsg{visible: false}, h.next(t))
	assert.Equal(t, outcomeMsg{result: models.LoginFailed(models.FailureRejected)}, h.next(t))
}

func TestLoginModel_SuccessShowsToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	loginSvc := mock.NewMockLoginService(ctrl)
	loginSvc.EXPECT().Login("alice@example.com", "secret", gomock.Any()).
		Do(func(_, _ string, handler adapter.LoginHandler) { handler.OnLoginSuccess("tok-1234567890-abcdef") })
	h := newScreenHarness(t, loginSvc)

	fillForm(h.model, "alice@example.com", "secret")
	enter(h.model)
	require.True(t, h.model.busy())

	for range 3 {
		h.model.Update(h.next(t))
	}

	assert.False(t, h.model.busy())
	assert.Equal(t, "tok-1234567890-abcdef", h.model.token)
	assert.Equal(t, "Login successful!", h.model.notice)
	assert.Contains(t, h.model.View(), "tok-12")
	assert.NotContains(t, h.model.View(), "tok-1234567890-abcdef")
}

func TestLoginModel_SuccessShowsStoredExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	expiresAt := time.Date(2026, 10, 18, 9, 30, 0, 0, time.Local)
	auth.EXPECT().LastLogin(gomock.Any(), "alice@example.com").
		Return(models.StoredToken{Identifier: "alice@example.com", Token: "tok-123", ExpiresAt: expiresAt}, nil)

	scope := lifecycle.NewScope(context.Background(), dispatch.ExecutorFunc(func(task func()) error {
		task()
		return nil
	}), logger.Nop())
	m := newLoginModel(auth, scope, &programView{})
	typeText(m, "alice@example.com")

	m.Update(outcomeMsg{result: models.LoginSucceeded("tok-123")})
	m.Update(m.cmdLoadStoredToken("alice@example.com")())

	assert.Equal(t, expiresAt, m.expiresAt)
	assert.Contains(t, m.View(), "Valid until: 2026-10-18 09:30:00")
}

func TestLoginModel_StoredTokenIgnoredWhenStale(t *testing.T) {
	tests := []struct {
		name string
		msg  storedTokenMsg
	}{
		{name: "not stored", msg: storedTokenMsg{err: store.ErrTokenNotFound}},
		{name: "older token", msg: storedTokenMsg{stored: models.StoredToken{Token: "tok-old", ExpiresAt: time.Now()}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newLoginModel(nil, nil, &programView{})
			m.token = "tok-new"

			m.Update(tt.msg)

			assert.True(t, m.expiresAt.IsZero())
			assert.NotContains(t, m.View(), "Valid until")
		})
	}
}

func TestLoginModel_FailureNotice(t *testing.T) {
	tests := []struct {
		reason models.FailureReason
		want   string
	}{
		{reason: models.FailureRejected, want: "Login failed!"},
		{reason: models.FailureTimeout, want: "did not answer in time"},
		{reason: models.FailureUnavailable, want: "unavailable"},
	}

	for _, tt := range tests {
		t.Run(string(tt.reason), func(t *testing.T) {
			m := newLoginModel(nil, nil, &programView{})

			m.Update(outcomeMsg{result: models.LoginFailed(tt.reason)})

			assert.Contains(t, m.notice, tt.want)
			assert.True(t, m.noticeError)
			assert.Empty(t, m.token)
		})
	}
}

func TestLoginModel_SingleInFlightOperation(t *testing.T) {
	ctrl := gomock.NewController(t)
	loginSvc := mock.NewMockLoginService(ctrl)
	called := make(chan struct{})
	// never answers; a second call would fail the test
	loginSvc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_, _ string, _ adapter.LoginHandler) { close(called) }).
		Times(1)
	h := newScreenHarness(t, loginSvc)

	fillForm(h.model, "alice@example.com", "secret")
	enter(h.model)
	h.model.Update(h.next(t))
	require.True(t, h.model.inProgress)

	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("login service was not called")
	}

	enter(h.model)
	enter(h.model)

	assert.Contains(t, h.model.View(), "Signing in as alice@example.com")
}

func TestLoginModel_ClosingScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newScreenHarness(t, mock.NewMockLoginService(ctrl))
	h.scope.CancelAll()

	fillForm(h.model, "alice@example.com", "secret")
	enter(h.model)

	assert.False(t, h.model.busy())
	assert.Equal(t, "The screen is closing.", h.model.notice)
}

func TestLoginModel_NoticeExpires(t *testing.T) {
	m := newLoginModel(nil, nil, &programView{})

	m.Update(outcomeMsg{result: models.LoginFailed(models.FailureRejected)})
	stale := m.noticeSeq
	m.Update(copiedMsg{})

	m.Update(clearNoticeMsg{seq: stale})
	assert.Equal(t, "Token copied to clipboard.", m.notice)

	m.Update(clearNoticeMsg{seq: m.noticeSeq})
	assert.Empty(t, m.notice)
}

func TestRootModel_LeaveTearsDownOnce(t *testing.T) {
	calls := 0
	root := NewRootModel(newLoginModel(nil, nil, &programView{}), models.NewAppBuildInfo("1.0.0", "", ""), func() { calls++ })

	next, cmd := root.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.Equal(t, 1, calls)
	assert.True(t, next.(RootModel).left)
}

func TestRootModel_BuildInfoWindow(t *testing.T) {
	calls := 0
	root := NewRootModel(newLoginModel(nil, nil, &programView{}), models.NewAppBuildInfo("1.2.3", "2026-10-17", "abc123"), func() { calls++ })

	next, _ := root.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	view := next.View()
	assert.Contains(t, view, "Version: 1.2.3")
	assert.Contains(t, view, "Commit: abc123")

	// esc closes the window without leaving the screen
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, 0, calls)
	assert.Contains(t, next.View(), "SIGN IN")
}

func TestRootModel_CancelWhileAwaitingNeverReportsOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	handlers := make(chan adapter.LoginHandler, 1)
	loginSvc := mock.NewMockLoginService(ctrl)
	loginSvc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_, _ string, handler adapter.LoginHandler) { handlers <- handler })
	h := newScreenHarness(t, loginSvc)

	teardown := func() { require.NoError(t, h.loop.Submit(h.scope.CancelAll)) }
	root := NewRootModel(h.model, models.NewAppBuildInfo("", "", ""), teardown)

	fillForm(h.model, "alice@example.com", "secret")
	enter(h.model)
	assert.Equal(t, progressMsg{visible: true}, h.next(t))
	handler := <-handlers

	root.Update(tea.KeyMsg{Type: tea.KeyEsc})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, h.scope.Wait(ctx))

	handler.OnLoginSuccess("tok-late")

	select {
	case msg := <-h.msgs:
		t.Fatalf("unexpected message after teardown: %#v", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "****", maskToken("abcd"))
	assert.Equal(t, "abcdef…uvwxyz", maskToken("abcdefghijklmnopqrstuvwxyz"))
}

func TestProgramView_WithoutProgramDropsCalls(t *testing.T) {
	v := &programView{}

	assert.NotPanics(t, func() {
		v.SetProgressVisible(true)
		v.ReportOutcome(models.LoginSucceeded("tok"))
	})
}
