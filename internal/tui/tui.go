// Package tui is the Bubble Tea terminal interface of the code-tutor
// client: a menu with login and registration forms, and the chat screen
// with the message feed, composer and code attachment.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-code-tutor/internal/logger"
	"github.com/MKhiriev/go-code-tutor/internal/render"
	"github.com/MKhiriev/go-code-tutor/internal/service"
	"github.com/MKhiriev/go-code-tutor/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned by [TUI.AuthFlow] when the user closes the program
// instead of logging in.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.ClientServices
	renderer  *render.Renderer
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		renderer:  render.NewRenderer(render.StyleAuto),
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// AuthFlow runs the menu, login and registration screens until the session
// is authorized. It returns [ErrUserQuit] when the user quits.
func (t *TUI) AuthFlow(ctx context.Context) error {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.Session),
		pageRegister: NewRegisterModel(ctx, t.services.Session),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	t.logger.Info().Str("username", result.username).Msg("authorized")
	return nil
}

// ChatLoop runs the chat screen. logout is true when the user logged out
// and the auth flow should start again.
func (t *TUI) ChatLoop(ctx context.Context) (logout bool, err error) {
	model := newChatModel(ctx, t.services.Session, t.services.Chat, t.renderer)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(*chatModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
