package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-code-tutor/internal/config"
	"github.com/MKhiriev/go-code-tutor/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── AppInfoService ───────────────────────────────────────────────────────────

func TestAppInfoService_RequiresVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestAppInfoService_ReportsConfiguredVersion(t *testing.T) {
	for _, version := range []string{"dev", "v0.3.0", "v1.2.3-rc.1+build.7"} {
		t.Run(version, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: version}, logger.Nop())
			require.NoError(t, err)

			assert.Equal(t, version, svc.GetAppVersion(context.Background()))
		})
	}
}
