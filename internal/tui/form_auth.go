package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-code-tutor/internal/app"
	"github.com/MKhiriev/go-code-tutor/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// authAction is the session call behind a form: Login or Register.
type authAction func(ctx context.Context, username, password string) error

// AuthFormModel is the username/password form shared by the login and
// registration pages. Submitting runs the action asynchronously and reports
// an [AuthResult]; [RootModel] finishes the flow on success.
type AuthFormModel struct {
	ctx     context.Context
	session service.ClientSessionService
	action  authAction

	title  string
	button string

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewLoginModel returns the login page.
func NewLoginModel(ctx context.Context, session service.ClientSessionService) *AuthFormModel {
	return newAuthFormModel(ctx, session, session.Login, "LOG IN", "Log in")
}

// NewRegisterModel returns the registration page. A successful registration
// logs the new account in.
func NewRegisterModel(ctx context.Context, session service.ClientSessionService) *AuthFormModel {
	return newAuthFormModel(ctx, session, session.Register, "REGISTER", "Create account")
}

func newAuthFormModel(ctx context.Context, session service.ClientSessionService, action authAction, title, button string) *AuthFormModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 64
	usernameInput.Width = 40
	usernameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &AuthFormModel{
		ctx:     ctx,
		session: session,
		action:  action,
		title:   title,
		button:  button,
		inputs:  []textinput.Model{usernameInput, passwordInput},
	}
}

func (m *AuthFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *AuthFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(AuthResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err, m.session.LastAuthError())
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			username := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if username == "" || strings.TrimSpace(password) == "" {
				m.errMsg = app.MsgCredentialsRequired
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSubmit(username, password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *AuthFormModel) View() string {
	var b strings.Builder
	b.WriteString("Username │ ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n")
	b.WriteString("Password │ ")
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n\n")

	if m.submitting {
		b.WriteString("[" + m.button + "...]")
	} else {
		b.WriteString("[" + m.button + "]")
	}
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(m.title, strings.TrimRight(b.String(), "\n"), helpLine(keys.esc, keys.tab, keys.enter))
}

func (m *AuthFormModel) cmdSubmit(username, password string) tea.Cmd {
	ctx := m.ctx
	action := m.action

	return func() tea.Msg {
		return AuthResult{
			Err:      action(ctx, username, password),
			Username: username,
		}
	}
}

func (m *AuthFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *AuthFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
