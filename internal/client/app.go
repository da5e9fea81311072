package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-code-tutor/internal/logger"
	"github.com/MKhiriev/go-code-tutor/internal/service"
	"github.com/MKhiriev/go-code-tutor/internal/tui"
)

type App struct {
	session service.ClientSessionService
	ui      UI
	logger  *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) *App {
	return &App{
		session: services.Session,
		ui:      ui,
		logger:  logger,
	}
}

// Run restores a stored session and alternates between the auth flow and
// the chat screen until the user quits. Logging out returns to the auth
// flow.
func (a *App) Run(ctx context.Context) error {
	if err := a.session.Restore(ctx); err != nil {
		// unreadable session store: start logged out
		a.logger.Warn().Err(err).Msg("could not restore session")
	}

	for {
		if !a.session.Authorized() {
			err := a.ui.AuthFlow(ctx)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			if err != nil {
				return err
			}
		}

		logout, err := a.ui.ChatLoop(ctx)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		a.logger.Info().Msg("logged out")
	}
}
