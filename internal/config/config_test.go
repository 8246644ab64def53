package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setAllVars(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("RAPIDAPI_KEY", "rapid-key")
	t.Setenv("GOOGLE_API_KEY", "google-key")
	t.Setenv("GOOGLE_CX_ID", "cx-id")
	t.Setenv("YOUTUBE_API_KEY", "yt-key")
}

func TestLoad_AllVarsPresent(t *testing.T) {
	setAllVars(t)
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, "gemini-key", cfg.GeminiAPIKey)
	assert.Equal(t, "cx-id", cfg.GoogleCXID)
}

func TestLoad_MissingVarsAreAllListed(t *testing.T) {
	setAllVars(t)
	t.Setenv("RAPIDAPI_KEY", "")
	t.Setenv("GOOGLE_CX_ID", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RAPIDAPI_KEY")
	assert.Contains(t, err.Error(), "GOOGLE_CX_ID")
	assert.NotContains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoad_PortOverride(t *testing.T) {
	setAllVars(t)
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoad_InvalidPort(t *testing.T) {
	setAllVars(t)
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
}
