package di

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"ridgeline.build/ridgeline-web/internal/config"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Load(context.Background(),
		config.WithoutSystemEnv(),
		config.WithEnvFile(""),
		config.WithEnvMap(map[string]string{"SITE_BASE_URL": "https://www.example.com"}),
	)
	require.NoError(t, err)
	return cfg
}

func TestNewContainerLoadsShippedSite(t *testing.T) {
	c, err := NewContainer(context.Background(), testConfig(t), zap.NewNop())
	require.NoError(t, err)
	require.True(t, c.Site.Has("/"))
	require.True(t, c.Site.Has("/about"))
	require.Equal(t, "en", c.Bundle.Fallback())

	report, err := c.Audit(context.Background())
	require.NoError(t, err)
	require.NoError(t, report.Err())
	require.Equal(t, c.Site.Len(), report.Pages)
}

func TestNewContainerLogsSupportedLanguages(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	_, err := NewContainer(context.Background(), testConfig(t), zap.New(core))
	require.NoError(t, err)

	entries := logs.FilterMessage("site loaded").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "en", fields["lang"])
	require.Equal(t, []interface{}{"en", "es"}, fields["languages"])
}

func TestNewContainerRequiresLogger(t *testing.T) {
	_, err := NewContainer(context.Background(), testConfig(t), nil)
	require.Error(t, err)
}

func TestExporterWritesSite(t *testing.T) {
	c, err := NewContainer(context.Background(), testConfig(t), zap.NewNop())
	require.NoError(t, err)
	ex, err := c.Exporter()
	require.NoError(t, err)
	m, err := ex.Export(context.Background(), t.TempDir())
	require.NoError(t, err)
	require.Len(t, m.Pages, c.Site.Len())
	require.Positive(t, m.Assets)
}
