package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Should return defaults without overrides", func(t *testing.T) {
		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, []string{"en", "es"}, cfg.Build.Locales)
		assert.Equal(t, "package.json", cfg.Build.HostManifest)
		assert.Contains(t, cfg.Build.DependencyAllow, "next")
		assert.Equal(t, "campaign_drafts", cfg.Firestore.Collection)
	})

	t.Run("Should apply prefixed environment variables", func(t *testing.T) {
		t.Setenv("LANDINGKIT_BUILD_LOCALES", "en,fr,de")
		t.Setenv("LANDINGKIT_BUILD_CONCURRENT_TASKS", "true")
		t.Setenv("LANDINGKIT_FIRESTORE_PROJECT_ID", "demo-project")

		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, []string{"en", "fr", "de"}, cfg.Build.Locales)
		assert.True(t, cfg.Build.ConcurrentTasks)
		assert.Equal(t, "demo-project", cfg.Firestore.ProjectID)
	})

	t.Run("Should read values from an env file", func(t *testing.T) {
		dir := t.TempDir()
		envFile := filepath.Join(dir, ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("LANDINGKIT_STORAGE_BUCKET=exports-bucket\n"), 0644))
		t.Cleanup(func() { os.Unsetenv("LANDINGKIT_STORAGE_BUCKET") })

		cfg, err := Load(envFile)

		require.NoError(t, err)
		assert.Equal(t, "exports-bucket", cfg.Storage.Bucket)
	})

	t.Run("Should ignore a missing env file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))

		assert.NoError(t, err)
	})

	t.Run("Should reject an invalid log level", func(t *testing.T) {
		t.Setenv("LANDINGKIT_LOG_LEVEL", "loud")

		_, err := Load("")

		assert.ErrorContains(t, err, "configuration validation failed")
	})
}

func TestTransformEnvKey(t *testing.T) {
	assert.Equal(t, "build.host_manifest", transformEnvKey("BUILD_HOST_MANIFEST"))
	assert.Equal(t, "log.level", transformEnvKey("LOG_LEVEL"))
	assert.Equal(t, "storage", transformEnvKey("STORAGE"))
	assert.Equal(t, "", transformEnvKey("_"))
}
