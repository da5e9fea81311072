package config

import "time"

// Defaults follow the original deployment: the API listens on port 5000 and
// the web client was served from localhost:3000.
const (
	DefaultServiceURL      = "http://localhost:5000"
	DefaultServerAddress   = "localhost:5000"
	DefaultClientDSN       = "code-tutor.db"
	DefaultModel           = "gemini-2.5-flash"
	DefaultTokenIssuer     = "go-code-tutor"
	DefaultHistoryDatabase = "user_chat_histories"
)

func serverDefaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: 24 * time.Hour,
			Version:       "dev",
		},
		Storage: Storage{
			History: History{Database: DefaultHistoryDatabase},
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: 60 * time.Second,
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		LLM: LLM{
			Model:       DefaultModel,
			Temperature: 0.2,
		},
		Limits: Limits{
			RequestsPerMinute: 10,
			DailyRequests:     250,
			MaxCodeLines:      150,
			HistoryTurns:      10,
		},
		Workers: Workers{
			JanitorInterval: 5 * time.Minute,
			LimiterIdleTTL:  30 * time.Minute,
		},
	}
}

func clientDefaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: "dev"},
		Storage: Storage{
			DB: DB{DSN: DefaultClientDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultServiceURL,
			RequestTimeout: 30 * time.Second,
		},
	}
}
