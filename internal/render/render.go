// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render turns conversation turns into terminal output: markdown via
// glamour for the message feed and chroma highlighting for the code
// attachment preview.
package render

import (
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/glamour"
	glamourStyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-code-tutor/models"
)

const (
	// StyleAuto picks a dark or light theme from the terminal background.
	// The background is queried once, when the Renderer is created.
	StyleAuto = "auto"
	// StylePlain renders without colours. Used in tests and dumb terminals.
	StylePlain = glamourStyles.NoTTYStyle

	codeStyle     = "monokai"
	codeFormatter = "terminal256"

	minWidth = 20
)

// hasDarkBackground queries the terminal. It must not run while a bubbletea
// program owns stdin, or the reply races the program's input reader.
var hasDarkBackground = lipgloss.HasDarkBackground

// Renderer renders markdown at a given wrap width. The glamour renderer is
// rebuilt only when the width changes.
type Renderer struct {
	style string

	mu    sync.Mutex
	width int
	term  *glamour.TermRenderer
}

// NewRenderer returns a Renderer using style ([StyleAuto], [StylePlain] or a
// glamour standard style name). An empty style means [StyleAuto], which is
// resolved here, so call NewRenderer before starting a tea.Program.
func NewRenderer(style string) *Renderer {
	return &Renderer{style: resolveStyle(style)}
}

// Style returns the concrete glamour style in use.
func (r *Renderer) Style() string {
	return r.style
}

func resolveStyle(style string) string {
	if style != "" && style != StyleAuto {
		return style
	}
	if hasDarkBackground() {
		return glamourStyles.DarkStyle
	}
	return glamourStyles.LightStyle
}

// Markdown renders text wrapped to width. When glamour fails the raw text is
// returned.
func (r *Renderer) Markdown(text string, width int) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	term, err := r.termRenderer(width)
	if err != nil {
		return text
	}

	out, err := term.Render(text)
	if err != nil {
		return text
	}

	return strings.Trim(out, "\n")
}

// Turn renders one conversation turn. Turns without parts render as "".
func (r *Renderer) Turn(turn models.ConversationTurn, width int) string {
	if !turn.IsRenderable() {
		return ""
	}
	return r.Markdown(turn.Text(), width)
}

func (r *Renderer) termRenderer(width int) (*glamour.TermRenderer, error) {
	if width < minWidth {
		width = minWidth
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.term != nil && r.width == width {
		return r.term, nil
	}

	term, err := glamour.NewTermRenderer(glamour.WithStandardStyle(r.style), glamour.WithWordWrap(width))
	if err != nil {
		return nil, err
	}

	r.term = term
	r.width = width
	return term, nil
}

// Code highlights code with the lexer of language, falling back to content
// analysis and then to plain text. Highlighting errors return code as is.
func Code(code string, language models.Language) string {
	if code == "" {
		return ""
	}

	lexer := lexers.Get(language.Lexer())
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get(codeStyle)
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get(codeFormatter)
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return buf.String()
}
