package service

import (
	"github.com/MKhiriev/go-code-tutor/internal/config"
	"github.com/MKhiriev/go-code-tutor/internal/crypto"
	"github.com/MKhiriev/go-code-tutor/internal/llm"
	"github.com/MKhiriev/go-code-tutor/internal/logger"
	"github.com/MKhiriev/go-code-tutor/internal/store"
)

// Services aggregates the server-side services.
type Services struct {
	AuthService    AuthService
	ChatService    ChatService
	AppInfoService AppInfoService

	// Limiter is shared with the limiter janitor worker.
	Limiter *RateLimiter
}

func NewServices(storages *store.Storages, model llm.Model, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	limiter := NewRateLimiter(cfg.Limits)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, crypto.NewPasswordHasher(), cfg.App, logger),
		ChatService:    NewChatService(storages.HistoryRepository, model, limiter, cfg.Limits, logger),
		AppInfoService: appInfo,
		Limiter:        limiter,
	}, nil
}
