package tui

import (
	"github.com/MKhiriev/go-code-tutor/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the auth flow to Page. A non-nil Payload is delivered
// to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// AuthResult is produced when a login or registration attempt finishes.
type AuthResult struct {
	Err      error
	Username string
}

// chatResultMsg is produced when a chat submission finishes.
type chatResultMsg struct {
	resp models.ChatResponse
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
