package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-login-bridge/models"
)

type messageSender interface {
	Send(msg tea.Msg)
}

// programView implements service.LoginView by turning each call into a
// program message, so the screen state is only touched by the program's
// own update loop.
type programView struct {
	sender messageSender
}

func (v *programView) attach(sender messageSender) {
	v.sender = sender
}

func (v *programView) SetProgressVisible(visible bool) {
	v.send(progressMsg{visible: visible})
}

func (v *programView) ReportOutcome(result models.LoginResult) {
	v.send(outcomeMsg{result: result})
}

func (v *programView) send(msg tea.Msg) {
	if v.sender != nil {
		v.sender.Send(msg)
	}
}
