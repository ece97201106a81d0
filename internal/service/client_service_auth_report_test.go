package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-login-bridge/internal/logger"
	"github.com/MKhiriev/go-login-bridge/models"
)

// recordingView records the calls it receives.
type recordingView struct {
	calls []string
}

func (v *recordingView) SetProgressVisible(visible bool) {
	if visible {
		v.calls = append(v.calls, "progress:on")
		return
	}
	v.calls = append(v.calls, "progress:off")
}

func (v *recordingView) ReportOutcome(result models.LoginResult) {
	v.calls = append(v.calls, "outcome")
}

func awaitingOperation(t *testing.T) *LoginOperation {
	t.Helper()
	op := newLoginOperation(models.Credentials{Identifier: "alice@example.com"})
	require.True(t, op.advance(StageIdle, StageShowingProgress))
	require.True(t, op.advance(StageShowingProgress, StageAwaitingResult))
	return op
}

func TestClientAuthService_Report_Delivers(t *testing.T) {
	svc := &clientAuthService{logger: logger.Nop()}
	op := awaitingOperation(t)
	view := &recordingView{}

	err := svc.report(context.Background(), op, view, models.LoginSucceeded("tok-123"))

	require.NoError(t, err)
	assert.Equal(t, []string{"progress:off", "outcome"}, view.calls)
	assert.Equal(t, StageDone, op.Stage())
	assert.Equal(t, "tok-123", svc.Token())
}

func TestClientAuthService_Report_CancelledAfterResolve(t *testing.T) {
	svc := &clientAuthService{logger: logger.Nop()}
	op := awaitingOperation(t)
	view := &recordingView{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.report(ctx, op, view, models.LoginFailed(models.FailureRejected))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, view.calls, "view touched after cancellation")
	assert.Equal(t, StageCancelled, op.Stage())

	result, ok := op.Result()
	assert.True(t, ok)
	assert.Equal(t, models.FailureRejected, result.Reason)
}

func TestClientAuthService_Report_ResolvedOnce(t *testing.T) {
	svc := &clientAuthService{logger: logger.Nop()}
	op := awaitingOperation(t)
	view := &recordingView{}

	require.NoError(t, svc.report(context.Background(), op, view, models.LoginSucceeded("tok-1")))
	require.NoError(t, svc.report(context.Background(), op, view, models.LoginSucceeded("tok-2")))

	assert.Equal(t, []string{"progress:off", "outcome"}, view.calls)
	assert.Equal(t, "tok-1", svc.Token())
}
