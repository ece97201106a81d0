package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-login-bridge/internal/dispatch"
	"github.com/MKhiriev/go-login-bridge/internal/lifecycle"
	"github.com/MKhiriev/go-login-bridge/internal/logger"
	"github.com/MKhiriev/go-login-bridge/internal/service"
	"github.com/MKhiriev/go-login-bridge/models"
)

var ErrUserQuit = errors.New("user left the login screen without a token")

const shutdownTimeout = 3 * time.Second

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.AuthService == nil {
		return nil, service.ErrNoLoginService
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// LoginFlow shows the login screen until the user leaves it and returns the
// token received on it. Work still running when the screen is left is
// cancelled and never reaches the screen.
func (t *TUI) LoginFlow(ctx context.Context) (string, error) {
	log := t.logger.WithStr("screen", "login")

	loop := dispatch.NewLoop(log)
	loopCtx, stopLoop := context.WithCancel(ctx)
	defer stopLoop()
	go func() {
		if err := loop.Run(loopCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("home loop stopped")
		}
	}()

	scope := lifecycle.NewScope(ctx, loop, log)
	teardown := func() {
		// serialized with the view calls running on the loop
		if err := loop.Submit(scope.CancelAll); err != nil {
			scope.CancelAll()
		}
	}

	view := &programView{}
	root := NewRootModel(newLoginModel(t.services.AuthService, scope, view), t.buildInfo, teardown)
	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	view.attach(p)

	finalModel, runErr := p.Run()

	teardown()
	waitCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := scope.Wait(waitCtx); err != nil {
		log.Warn().Err(err).Int("active", scope.Active()).Msg("login operations still running after teardown")
	}
	if err := loop.Shutdown(waitCtx); err != nil {
		log.Warn().Err(err).Msg("error shutting down home loop")
	}

	if runErr != nil {
		return "", runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.Token() == "" {
		return "", ErrUserQuit
	}
	return result.Token(), nil
}
