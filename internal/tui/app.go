package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-login-bridge/models"
)

// RootModel hosts the login screen:
// 1) handles leaving the screen (esc, ctrl+c) by tearing its scope down
// 2) toggles the build info window
// 3) delegates all other messages to the login screen
type RootModel struct {
	login    *loginModel
	teardown func()

	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	left bool
}

// NewRootModel wraps login. teardown is called once when the user leaves
// the screen.
func NewRootModel(login *loginModel, buildInfo models.AppBuildInfo, teardown func()) RootModel {
	return RootModel{
		login:     login,
		teardown:  teardown,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	return r.login.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.quit):
			return r.leave()
		case key.Matches(k, keys.buildInfo):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(k, keys.esc):
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
			return r.leave()
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	_, cmd := r.login.Update(msg)
	return r, cmd
}

func (r RootModel) leave() (tea.Model, tea.Cmd) {
	if !r.left {
		r.left = true
		if r.teardown != nil {
			r.teardown()
		}
	}
	return r, tea.Quit
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	return r.login.View()
}

// Token returns the token received on the screen, if any.
func (r RootModel) Token() string {
	return r.login.token
}
