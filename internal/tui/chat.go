package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-code-tutor/internal/adapter"
	"github.com/MKhiriev/go-code-tutor/internal/render"
	"github.com/MKhiriev/go-code-tutor/internal/service"
	"github.com/MKhiriev/go-code-tutor/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	focusMessage = iota
	focusCode
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	messageHeight = 3
	codeHeight    = 8
	minFeedHeight = 3

	statusTTL = 2 * time.Second
)

var copyToClipboard = clipboard.WriteAll

// chatModel is the chat screen: the rendered transcript on top, the
// message composer below it and an optional code attachment.
type chatModel struct {
	ctx      context.Context
	session  service.ClientSessionService
	chat     service.ClientChatService
	renderer *render.Renderer

	feed    viewport.Model
	message textarea.Model
	code    textarea.Model
	spinner spinner.Model

	language models.Language
	showCode bool
	focus    int

	width    int
	height   int
	rendered int
	// transcript is the rendered feed for the first rendered turns. Spinner
	// ticks append to it without rendering markdown again.
	transcript string

	sending bool
	errMsg  string
	status  string
	logout  bool
}

func newChatModel(ctx context.Context, session service.ClientSessionService, chat service.ClientChatService, renderer *render.Renderer) *chatModel {
	message := textarea.New()
	message.Placeholder = "Ask about your code..."
	message.ShowLineNumbers = false
	message.CharLimit = 0
	message.SetHeight(messageHeight)
	message.Focus()

	code := textarea.New()
	code.Placeholder = "Paste a snippet here"
	code.ShowLineNumbers = true
	code.CharLimit = 0
	code.SetHeight(codeHeight)

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := &chatModel{
		ctx:      ctx,
		session:  session,
		chat:     chat,
		renderer: renderer,
		feed:     viewport.New(defaultWidth, minFeedHeight),
		message:  message,
		code:     code,
		spinner:  spin,
		language: models.Go,
		rendered: -1,
	}
	m.resize(defaultWidth, defaultHeight)
	m.refreshFeed()

	return m
}

func (m *chatModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.rendered = -1
		m.refreshFeed()
		return m, nil

	case chatResultMsg:
		return m, m.handleResult(msg)

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Copy failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "Reply copied to clipboard"
		return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.sending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refreshFeed()
		return m, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.feed, cmd = m.feed.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	if m.focus == focusCode {
		m.code, cmd = m.code.Update(msg)
	} else {
		m.message, cmd = m.message.Update(msg)
	}
	return m, cmd
}

func (m *chatModel) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.quit):
		return tea.Quit, true

	case key.Matches(msg, keys.send):
		return m.send(), true

	case key.Matches(msg, keys.code):
		m.toggleCode()
		return nil, true

	case key.Matches(msg, keys.language):
		m.language = m.language.Next()
		return nil, true

	case key.Matches(msg, keys.copy):
		return m.copyReply(), true

	case key.Matches(msg, keys.logout):
		if m.sending {
			return nil, true
		}
		m.session.Logout(m.ctx)
		m.chat.Reset()
		m.logout = true
		return tea.Quit, true

	case key.Matches(msg, keys.tab):
		if m.showCode {
			m.switchFocus()
			return nil, true
		}
		return nil, false

	case key.Matches(msg, keys.pageUp), key.Matches(msg, keys.pageDown):
		var cmd tea.Cmd
		m.feed, cmd = m.feed.Update(msg)
		return cmd, true
	}

	return nil, false
}

// send submits the composed message. It is a no-op while the text is blank
// or a request is already in flight.
func (m *chatModel) send() tea.Cmd {
	text := m.message.Value()
	if strings.TrimSpace(text) == "" || m.sending || m.chat.InFlight() {
		return nil
	}

	code := ""
	if m.showCode {
		code = m.code.Value()
	}

	m.sending = true
	m.errMsg = ""
	m.status = ""
	m.refreshFeed()

	ctx, chat, language := m.ctx, m.chat, m.language
	submit := func() tea.Msg {
		resp, err := chat.Submit(ctx, text, code, language)
		return chatResultMsg{resp: resp, err: err}
	}

	return tea.Batch(m.spinner.Tick, submit)
}

func (m *chatModel) handleResult(msg chatResultMsg) tea.Cmd {
	m.sending = false
	m.rendered = -1

	if msg.err != nil {
		m.errMsg = humanizeError(msg.err, m.chat.LastChatError())
		if errors.Is(msg.err, adapter.ErrUnauthorized) {
			m.errMsg += " (press ctrl+x to log in again)"
		}
		m.refreshFeed()
		return nil
	}

	m.message.Reset()
	m.code.Reset()
	m.refreshFeed()
	m.feed.GotoBottom()
	return nil
}

func (m *chatModel) copyReply() tea.Cmd {
	resp, ok := m.chat.LastResponse()
	if !ok || resp.Text == "" {
		m.errMsg = "Nothing to copy yet"
		return nil
	}

	text := resp.Text
	return func() tea.Msg {
		return copiedMsg{err: copyToClipboard(text)}
	}
}

func (m *chatModel) toggleCode() {
	m.showCode = !m.showCode
	if !m.showCode && m.focus == focusCode {
		m.switchFocus()
	}
	m.resize(m.width, m.height)
}

func (m *chatModel) switchFocus() {
	if m.focus == focusMessage {
		m.focus = focusCode
		m.message.Blur()
		m.code.Focus()
		return
	}
	m.focus = focusMessage
	m.code.Blur()
	m.message.Focus()
}

func (m *chatModel) resize(width, height int) {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	m.width, m.height = width, height

	inner := max(width-4, 10)
	m.message.SetWidth(inner)
	m.code.SetWidth(inner)

	// header, status line, help line and the composer borders
	reserved := 2 + 1 + 1 + messageHeight + 2
	if m.showCode {
		reserved += codeHeight + 3
	}

	m.feed.Width = width
	m.feed.Height = max(height-reserved, minFeedHeight)
}

// refreshFeed re-renders the transcript when it changed since the last
// render. While a request is in flight only the spinner line is redrawn.
func (m *chatModel) refreshFeed() {
	turns := m.chat.Transcript()
	if len(turns) == m.rendered && !m.sending {
		return
	}

	atBottom := m.feed.AtBottom()
	if len(turns) != m.rendered {
		m.rendered = len(turns)
		m.transcript = m.renderTranscript(turns)
	}
	m.feed.SetContent(m.feedContent(len(turns)))
	if atBottom || m.sending {
		m.feed.GotoBottom()
	}
}

func (m *chatModel) feedContent(turns int) string {
	if turns == 0 && !m.sending {
		return helpStyle.Render("Ask a question about your code. Attach a snippet with ctrl+o.")
	}
	if !m.sending {
		return m.transcript
	}

	var b strings.Builder
	if m.transcript != "" {
		b.WriteString(m.transcript)
		b.WriteString("\n")
	}
	b.WriteString(modelLabelStyle.Render("Assistant"))
	b.WriteString("\n")
	b.WriteString(m.spinner.View())
	b.WriteString(" thinking...")
	return b.String()
}

func (m *chatModel) renderTranscript(turns []models.ConversationTurn) string {
	var b strings.Builder
	for _, turn := range turns {
		if !turn.IsRenderable() {
			continue
		}
		if turn.Role == models.RoleUser {
			b.WriteString(userLabelStyle.Render("You"))
		} else {
			b.WriteString(modelLabelStyle.Render("Assistant"))
		}
		b.WriteString("\n")
		b.WriteString(m.renderer.Turn(turn, m.feed.Width))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m *chatModel) View() string {
	var b strings.Builder

	header := fmt.Sprintf("CODE TUTOR · %s · %s", fitText(m.session.Profile().Username, 24), m.language)
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	b.WriteString(m.feed.View())
	b.WriteString("\n")

	switch {
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	case m.status != "":
		b.WriteString(okStyle.Render(m.status))
	}
	b.WriteString("\n")

	b.WriteString(composerStyle.Render(m.message.View()))
	b.WriteString("\n")

	if m.showCode {
		b.WriteString(helpStyle.Render(fmt.Sprintf("Code (%s)", m.language)))
		b.WriteString("\n")
		if m.focus == focusCode || strings.TrimSpace(m.code.Value()) == "" {
			b.WriteString(m.code.View())
		} else {
			b.WriteString(previewStyle.Render(m.codePreview()))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(helpLine(keys.send, keys.code, keys.language, keys.copy, keys.logout, keys.quit)))

	return b.String()
}

// codePreview highlights the attached snippet, clipped to the code area.
func (m *chatModel) codePreview() string {
	lines := strings.Split(render.Code(m.code.Value(), m.language), "\n")
	if len(lines) > codeHeight {
		lines = append(lines[:codeHeight-1], helpStyle.Render(fmt.Sprintf("… %d more lines", len(lines)-codeHeight+1)))
	}
	return strings.Join(lines, "\n")
}
