package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] for JSON and YAML files.
// Durations are written as strings such as "30s" or "24h".
type StructuredFileConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
		Version       string   `json:"version" yaml:"version"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`

		History struct {
			URI      string `json:"uri" yaml:"uri"`
			Database string `json:"database" yaml:"database"`
		} `json:"history,omitempty" yaml:"history,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	LLM struct {
		APIKey       string  `json:"api_key" yaml:"api_key"`
		Model        string  `json:"model" yaml:"model"`
		Temperature  float32 `json:"temperature" yaml:"temperature"`
		SystemPrompt string  `json:"system_prompt" yaml:"system_prompt"`
	} `json:"llm,omitempty" yaml:"llm,omitempty"`

	Limits struct {
		RequestsPerMinute int `json:"requests_per_minute" yaml:"requests_per_minute"`
		DailyRequests     int `json:"daily_requests" yaml:"daily_requests"`
		MaxCodeLines      int `json:"max_code_lines" yaml:"max_code_lines"`
		HistoryTurns      int `json:"history_turns" yaml:"history_turns"`
	} `json:"limits,omitempty" yaml:"limits,omitempty"`

	Workers struct {
		JanitorInterval Duration `json:"janitor_interval" yaml:"janitor_interval"`
		LimiterIdleTTL  Duration `json:"limiter_idle_ttl" yaml:"limiter_idle_ttl"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// parseFile reads a config file. Files ending in .yaml or .yml are decoded
// as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg.toStructured(), nil
}

func (f *StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  f.App.TokenSignKey,
			TokenIssuer:   f.App.TokenIssuer,
			TokenDuration: time.Duration(f.App.TokenDuration),
			Version:       f.App.Version,
		},
		Storage: Storage{
			DB: DB{DSN: f.Storage.DB.DSN},
			History: History{
				URI:      f.Storage.History.URI,
				Database: f.Storage.History.Database,
			},
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			GRPCAddress:    f.Server.GRPCAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
			AllowedOrigins: f.Server.AllowedOrigins,
		},
		Adapter: Adapter{
			HTTPAddress:    f.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
		},
		LLM: LLM{
			APIKey:       f.LLM.APIKey,
			Model:        f.LLM.Model,
			Temperature:  f.LLM.Temperature,
			SystemPrompt: f.LLM.SystemPrompt,
		},
		Limits: Limits{
			RequestsPerMinute: f.Limits.RequestsPerMinute,
			DailyRequests:     f.Limits.DailyRequests,
			MaxCodeLines:      f.Limits.MaxCodeLines,
			HistoryTurns:      f.Limits.HistoryTurns,
		},
		Workers: Workers{
			JanitorInterval: time.Duration(f.Workers.JanitorInterval),
			LimiterIdleTTL:  time.Duration(f.Workers.LimiterIdleTTL),
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	if n, err := time.ParseDuration(s); err == nil {
		*d = Duration(n)
		return nil
	}

	var ns int64
	if err := value.Decode(&ns); err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	*d = Duration(time.Duration(ns))
	return nil
}
