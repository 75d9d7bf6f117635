package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsdevblog/shortlinks/internal/db"
)

func TestLoadConfig_Defaults(t *testing.T) {
	conf, err := LoadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, defaultServerAddress, conf.ServerAddress)
	assert.Nil(t, conf.BaseURL)
	assert.Equal(t, db.StorageTypeInMemory, conf.StorageType())
	assert.Equal(t, defaultClickRecordTimeout, conf.ClickRecordTimeout)
	assert.Equal(t, defaultMaxGenerateAttempts, conf.MaxGenerateAttempts)
	assert.False(t, conf.EnableHTTPS)
	assert.True(t, conf.GeneratedSecrets)
	assert.NotEmpty(t, conf.SessionSecret)
	assert.NotEmpty(t, conf.NotesKey)
	assert.NotEqual(t, conf.SessionSecret, conf.NotesKey)
}

func TestLoadConfig_Flags(t *testing.T) {
	conf, err := LoadConfig([]string{
		"-a", ":9090",
		"-b", "https://sho.rt/ignored/path?x=1",
		"-s", "/tmp/links.db",
		"-k", "session-secret",
		"-n", "notes-key",
		"-tls",
		"-click-timeout", "500ms",
	})
	require.NoError(t, err)

	assert.Equal(t, ":9090", conf.ServerAddress)
	require.NotNil(t, conf.BaseURL)
	assert.Equal(t, "https://sho.rt", conf.BaseURL.String())
	assert.Equal(t, db.StorageTypeSQLite, conf.StorageType())
	assert.Equal(t, "session-secret", conf.SessionSecret)
	assert.Equal(t, "notes-key", conf.NotesKey)
	assert.False(t, conf.GeneratedSecrets)
	assert.True(t, conf.EnableHTTPS)
	assert.Equal(t, 500*time.Millisecond, conf.ClickRecordTimeout)
}

func TestLoadConfig_EnvWins(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":7070")
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/db")
	t.Setenv("BASE_URL", "http://env.example:8080/path")
	t.Setenv("ENABLE_HTTPS", "false")
	t.Setenv("MAX_GENERATE_ATTEMPTS", "7")

	conf, err := LoadConfig([]string{"-a", ":9090", "-s", "/tmp/links.db", "-tls"})
	require.NoError(t, err)

	assert.Equal(t, ":7070", conf.ServerAddress)
	assert.Equal(t, db.StorageTypePostgres, conf.StorageType())
	assert.Equal(t, "http://env.example:8080", conf.BaseURL.String())
	assert.False(t, conf.EnableHTTPS)
	assert.Equal(t, 7, conf.MaxGenerateAttempts)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig([]string{"-b", "not a url"})
	require.Error(t, err)

	_, err = LoadConfig([]string{"-unknown"})
	require.Error(t, err)

	t.Setenv("CLICK_RECORD_TIMEOUT", "soon")
	_, err = LoadConfig(nil)
	require.Error(t, err)
}
