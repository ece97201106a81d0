package client

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-login-bridge/internal/logger"
	"github.com/MKhiriev/go-login-bridge/internal/tui"
	"github.com/MKhiriev/go-login-bridge/internal/workers"
)

type fakeUI struct {
	token string
	err   error
}

func (f fakeUI) LoginFlow(context.Context) (string, error) {
	return f.token, f.err
}

type closeCounter struct {
	calls int
	err   error
}

func (c *closeCounter) Close() error {
	c.calls++
	return c.err
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name     string
		ui       fakeUI
		closeErr error
		wantErr  bool
		wantOut  string
	}{
		{name: "token printed", ui: fakeUI{token: "tok-1"}, wantOut: "Logged in. Token: tok-1\n"},
		{name: "user quit", ui: fakeUI{err: tui.ErrUserQuit}},
		{name: "ui error", ui: fakeUI{err: errors.New("no tty")}, wantErr: true},
		{name: "close error is logged only", ui: fakeUI{token: "tok-2"}, closeErr: errors.New("busy"), wantOut: "Logged in. Token: tok-2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := workers.NewPool(1, 1, logger.Nop())
			storages := &closeCounter{err: tt.closeErr}

			app, err := NewApp(tt.ui, pool, storages, logger.Nop())
			require.NoError(t, err)
			var out bytes.Buffer
			app.out = &out

			err = app.Run()

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantOut, out.String())
			assert.Equal(t, 1, storages.calls)
			assert.ErrorIs(t, pool.Submit(func() {}), workers.ErrPoolStopped)
		})
	}
}

func TestNewApp_Validation(t *testing.T) {
	_, err := NewApp(nil, workers.NewPool(1, 1, logger.Nop()), nil, logger.Nop())
	require.Error(t, err)

	_, err = NewApp(fakeUI{}, nil, nil, logger.Nop())
	require.Error(t, err)
}
