package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-login-bridge/internal/logger"
	"github.com/MKhiriev/go-login-bridge/internal/tui"
	"github.com/MKhiriev/go-login-bridge/internal/workers"
)

type App struct {
	ui       LoginUI
	pool     *workers.Pool
	storages io.Closer

	out    io.Writer
	logger *logger.Logger
}

func NewApp(ui LoginUI, pool *workers.Pool, storages io.Closer, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("no login ui")
	}
	if pool == nil {
		return nil, errors.New("no worker pool")
	}

	return &App{
		ui:       ui,
		pool:     pool,
		storages: storages,
		out:      os.Stdout,
		logger:   logger,
	}, nil
}

func (a *App) Run() error {
	workers.NewWorkers(a.pool).Run()
	defer a.close()

	token, err := a.ui.LoginFlow(context.Background())
	switch {
	case errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("login screen left without a token")
		return nil
	case err != nil:
		return fmt.Errorf("login flow: %w", err)
	}

	a.logger.Info().Int("token_length", len(token)).Msg("logged in")
	fmt.Fprintf(a.out, "Logged in. Token: %s\n", token)
	return nil
}

func (a *App) close() {
	a.pool.Stop()

	if a.storages == nil {
		return
	}
	if err := a.storages.Close(); err != nil {
		a.logger.Error().Err(err).Msg("error closing storages")
	}
}
