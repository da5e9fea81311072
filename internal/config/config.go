// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from every
// source described in the package documentation.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the remote service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// LLM holds the model settings used by the chat service.
	LLM LLM `envPrefix:"LLM_"`

	// Limits holds per-user quotas and request size caps.
	Limits Limits `envPrefix:"LIMITS_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON or YAML configuration file.
	// The format is chosen by extension (.yaml/.yml → YAML, otherwise JSON).
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "24h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings. The server
	// expects a PostgreSQL DSN, the client a path to its SQLite file.
	DB DB `envPrefix:"DB_"`

	// History selects an alternative chat-history backend.
	History History `envPrefix:"HISTORY_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the data source name.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// History holds settings of the optional document-store history backend.
type History struct {
	// URI is a mongodb:// connection string. When empty, chat history is
	// kept in the relational database.
	// Env: STORAGE_HISTORY_URI
	URI string `env:"URI"`

	// Database is the MongoDB database name.
	// Env: STORAGE_HISTORY_DATABASE
	Database string `env:"DATABASE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists CORS origins allowed to call the API.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Adapter holds the client-side settings for reaching the service.
type Adapter struct {
	// HTTPAddress is the base URL of the service (e.g. "http://localhost:5000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// LLM holds the model configuration.
type LLM struct {
	// APIKey is the Gemini API key. When empty the SDK falls back to the
	// GOOGLE_API_KEY / GEMINI_API_KEY environment variables.
	// Env: LLM_API_KEY
	APIKey string `env:"API_KEY"`

	// Model is the model name (e.g. "gemini-2.5-flash").
	// Env: LLM_MODEL
	Model string `env:"MODEL"`

	// Temperature is the sampling temperature.
	// Env: LLM_TEMPERATURE
	Temperature float32 `env:"TEMPERATURE"`

	// SystemPrompt overrides the built-in tutor instruction.
	// Env: LLM_SYSTEM_PROMPT
	SystemPrompt string `env:"SYSTEM_PROMPT"`
}

// Limits holds per-user quotas.
type Limits struct {
	// RequestsPerMinute is the sustained chat rate per user.
	// Env: LIMITS_REQUESTS_PER_MINUTE
	RequestsPerMinute int `env:"REQUESTS_PER_MINUTE"`

	// DailyRequests caps chat requests per user per day.
	// Env: LIMITS_DAILY_REQUESTS
	DailyRequests int `env:"DAILY_REQUESTS"`

	// MaxCodeLines caps the attached snippet size.
	// Env: LIMITS_MAX_CODE_LINES
	MaxCodeLines int `env:"MAX_CODE_LINES"`

	// HistoryTurns is how many past turns are sent along with a prompt.
	// Env: LIMITS_HISTORY_TURNS
	HistoryTurns int `env:"HISTORY_TURNS"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// JanitorInterval is how often idle rate limiters are evicted.
	// Env: WORKERS_JANITOR_INTERVAL
	JanitorInterval time.Duration `env:"JANITOR_INTERVAL"`

	// LimiterIdleTTL is how long a user's limiter may stay unused before
	// eviction.
	// Env: WORKERS_LIMITER_IDLE_TTL
	LimiterIdleTTL time.Duration `env:"LIMITER_IDLE_TTL"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources. Server defaults fill every field no source sets.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults(serverDefaults()).
		withDotEnv(".env").
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

// GetServerConfig is an alias of [GetStructuredConfig] kept for symmetry
// with [GetClientConfig].
func GetServerConfig() (*StructuredConfig, error) {
	return GetStructuredConfig()
}
