// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-login-bridge/internal/lifecycle"
	"github.com/MKhiriev/go-login-bridge/internal/service"
	"github.com/MKhiriev/go-login-bridge/internal/validators"
	"github.com/MKhiriev/go-login-bridge/models"
)

const (
	fieldIdentifier = iota
	fieldPassword
)

// formFields maps form fields to validator field names.
var formFields = [...]string{
	fieldIdentifier: validators.FieldIdentifier,
	fieldPassword:   validators.FieldSecret,
}

const noticeTTL = 3 * time.Second

// progressMsg and outcomeMsg carry LoginView calls into the program.
type progressMsg struct {
	visible bool
}

type outcomeMsg struct {
	result models.LoginResult
}

type copiedMsg struct {
	err error
}

type clearNoticeMsg struct {
	seq int
}

// storedTokenMsg carries the token stored on this device after a login.
type storedTokenMsg struct {
	stored models.StoredToken
	err    error
}

// loginModel is the login screen. It validates the form, starts at most one
// login operation at a time and renders what the operation reports through
// the LoginView.
type loginModel struct {
	auth      service.ClientAuthService
	scope     *lifecycle.Scope
	view      service.LoginView
	validator validators.Validator

	inputs []textinput.Model
	errs   []string
	focus  int

	spinner    spinner.Model
	inProgress bool
	pending    *service.LoginOperation

	notice      string
	noticeError bool
	noticeSeq   int

	token     string
	expiresAt time.Time
}

func newLoginModel(auth service.ClientAuthService, scope *lifecycle.Scope, view service.LoginView) *loginModel {
	identifier := textinput.New()
	identifier.Placeholder = "you@example.com"
	identifier.CharLimit = 254
	identifier.Width = 40
	identifier.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return &loginModel{
		auth:      auth,
		scope:     scope,
		view:      view,
		validator: validators.NewFormValidator(),
		inputs:    []textinput.Model{identifier, password},
		errs:      make([]string, len(formFields)),
		spinner:   sp,
	}
}

func (m *loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.inProgress = msg.visible
		if msg.visible {
			return m, m.spinner.Tick
		}
		return m, nil

	case outcomeMsg:
		m.pending = nil
		return m, m.showOutcome(msg.result)

	case spinner.TickMsg:
		if !m.inProgress {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case storedTokenMsg:
		if msg.err == nil && msg.stored.Token == m.token {
			m.expiresAt = msg.stored.ExpiresAt
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			return m, m.setNotice(fmt.Sprintf("Copy failed: %v", msg.err), true)
		}
		return m, m.setNotice("Token copied to clipboard.", false)

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *loginModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.copy) {
		if m.token == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.token)
	}

	// the form is hidden while a login is in flight
	if m.busy() {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.tab, keys.down):
		m.setFocus((m.focus + 1) % len(m.inputs))
		return m, nil
	case key.Matches(msg, keys.backtab, keys.up):
		m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.focus == fieldIdentifier && m.inputs[fieldPassword].Value() == "" {
			m.setFocus(fieldPassword)
			return m, nil
		}
		return m, m.submit()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.errs[m.focus] = ""
	return m, cmd
}

func (m *loginModel) busy() bool {
	return m.pending != nil || m.inProgress
}

// submit validates the form and starts a login operation when it is valid.
func (m *loginModel) submit() tea.Cmd {
	creds := models.Credentials{
		Identifier: strings.TrimSpace(m.inputs[fieldIdentifier].Value()),
		Secret:     m.inputs[fieldPassword].Value(),
	}

	if invalid := m.validate(creds); invalid >= 0 {
		m.setFocus(invalid)
		return nil
	}

	m.notice = ""
	op := m.auth.Login(m.scope, creds, m.view)
	if op == nil {
		return m.setNotice("The screen is closing.", true)
	}
	m.pending = op
	return nil
}

// validate records a message per invalid field and returns the first
// invalid field, or -1.
func (m *loginModel) validate(creds models.Credentials) int {
	first := -1
	for field, name := range formFields {
		m.errs[field] = ""
		if err := m.validator.Validate(context.Background(), creds, name); err != nil {
			m.errs[field] = fieldError(err)
			if first < 0 {
				first = field
			}
		}
	}
	return first
}

func fieldError(err error) string {
	switch {
	case errors.Is(err, validators.ErrEmptyIdentifier), errors.Is(err, validators.ErrEmptySecret):
		return "This field is required"
	case errors.Is(err, validators.ErrInvalidIdentifier):
		return "This email address is invalid"
	case errors.Is(err, validators.ErrShortSecret):
		return "This password is too short"
	default:
		return err.Error()
	}
}

func (m *loginModel) showOutcome(result models.LoginResult) tea.Cmd {
	if result.Succeeded() {
		m.token = result.Token
		m.expiresAt = time.Time{}
		identifier := strings.TrimSpace(m.inputs[fieldIdentifier].Value())
		return tea.Batch(m.setNotice("Login successful!", false), m.cmdLoadStoredToken(identifier))
	}

	switch result.Reason {
	case models.FailureTimeout:
		return m.setNotice("Login failed! The login service did not answer in time.", true)
	case models.FailureUnavailable:
		return m.setNotice("Login failed! The login service is unavailable.", true)
	default:
		return m.setNotice("Login failed!", true)
	}
}

func (m *loginModel) cmdLoadStoredToken(identifier string) tea.Cmd {
	ctx := m.scope.Context()
	return func() tea.Msg {
		stored, err := m.auth.LastLogin(ctx, identifier)
		return storedTokenMsg{stored: stored, err: err}
	}
}

func (m *loginModel) setNotice(text string, isError bool) tea.Cmd {
	m.noticeSeq++
	m.notice = text
	m.noticeError = isError

	seq := m.noticeSeq
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}

func (m *loginModel) setFocus(field int) {
	m.inputs[m.focus].Blur()
	m.focus = field
	m.inputs[m.focus].Focus()
}

func (m *loginModel) View() string {
	var b strings.Builder

	if m.inProgress {
		b.WriteString(m.spinner.View())
		b.WriteString(" Signing in as ")
		b.WriteString(strings.TrimSpace(m.inputs[fieldIdentifier].Value()))
		b.WriteString("...\n")
	} else {
		m.renderField(&b, "Email   ", fieldIdentifier)
		m.renderField(&b, "Password", fieldPassword)
	}

	if m.token != "" {
		b.WriteString("\nToken: ")
		b.WriteString(maskToken(m.token))
		b.WriteString("\n")
		if !m.expiresAt.IsZero() {
			b.WriteString("Valid until: ")
			b.WriteString(m.expiresAt.Local().Format(time.DateTime))
			b.WriteString("\n")
		}
	}

	if m.notice != "" {
		b.WriteString("\n")
		if m.noticeError {
			b.WriteString(errorStyle.Render(m.notice))
		} else {
			b.WriteString(successStyle.Render(m.notice))
		}
		b.WriteString("\n")
	}

	help := "tab: next field │ enter: sign in │ esc: leave"
	if m.token != "" {
		help += " │ ctrl+y: copy token"
	}
	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), help)
}

func (m *loginModel) renderField(b *strings.Builder, label string, field int) {
	b.WriteString(label)
	b.WriteString(" │ ")
	b.WriteString(m.inputs[field].View())
	b.WriteString("\n")
	if m.errs[field] != "" {
		b.WriteString("           ")
		b.WriteString(errorStyle.Render(m.errs[field]))
		b.WriteString("\n")
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}
