package tui

import (
	"github.com/MKhiriev/go-code-tutor/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

// RootModel hosts the auth pages. Page models exchange [NavigateTo] and
// [AuthResult] messages with it; everything else goes to the active page.
// The program ends on ctrl+c or on the first successful [AuthResult].
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	buildInfo models.AppBuildInfo
	aboutOpen bool

	quitByUser bool
	username   string
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := r.handleKey(msg); handled {
			return r, cmd
		}
	case NavigateTo:
		return r.navigate(msg)
	case AuthResult:
		if msg.Err == nil {
			r.username = msg.Username
			return r, tea.Quit
		}
	}

	if r.current == nil {
		return r, nil
	}

	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return r, cmd
}

// handleKey applies the global bindings. While the about window is open it
// swallows every other key.
func (r *RootModel) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.quit):
		r.quitByUser = true
		return tea.Quit, true
	case key.Matches(msg, keys.about) && r.onMenu():
		r.aboutOpen = !r.aboutOpen
		return nil, true
	case key.Matches(msg, keys.esc) && r.aboutOpen:
		r.aboutOpen = false
		return nil, true
	}

	return nil, r.aboutOpen
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, ok := r.pages[nav.Page]
	if !ok {
		return r, nil
	}

	r.aboutOpen = false
	r.current = next

	if nav.Payload != nil {
		payload := nav.Payload
		return r, func() tea.Msg { return payload }
	}
	return r, r.current.Init()
}

func (r RootModel) View() string {
	switch {
	case r.aboutOpen:
		return renderBuildInfoWindow(r.buildInfo)
	case r.current == nil:
		return renderPage("CODE TUTOR", "", "")
	default:
		return r.current.View()
	}
}

func (r RootModel) onMenu() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
