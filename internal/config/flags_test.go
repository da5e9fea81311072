package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 5000}, expected: "localhost:5000"},
		{name: "only port", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "localhost", input: "localhost:5000"},
		{name: "ip", input: "127.0.0.1:9090"},
		{name: "any interface", input: ":5000"},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:abc", wantErr: true},
		{name: "port out of range", input: "localhost:70000", wantErr: true},
		{name: "bad host", input: "not-an-ip:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, a.String())
		})
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "localhost:5000",
		"-grpc-address", "localhost:5001",
		"-d", "postgres://db",
		"-history-uri", "mongodb://localhost",
		"-token-duration", "1h",
		"-request-timeout", "45s",
		"-llm-model", "gemini-pro",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:5000", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:5001", cfg.Server.GRPCAddress)
	assert.Equal(t, "postgres://db", cfg.Storage.DB.DSN)
	assert.Equal(t, "mongodb://localhost", cfg.Storage.History.URI)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "gemini-pro", cfg.LLM.Model)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}
