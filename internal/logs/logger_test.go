package logs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	gormlogger "gorm.io/gorm/logger"
)

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(WithLevel("verbose"))
	require.Error(t, err)
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log, err := New(WithLevel(LevelTypeInfo), WithFile(path))
	require.NoError(t, err)

	log.Info("hello from test")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}

func TestToGormLogLevel(t *testing.T) {
	tests := []struct {
		in   zapcore.Level
		want gormlogger.LogLevel
	}{
		{in: zapcore.DebugLevel, want: gormlogger.Info},
		{in: zapcore.WarnLevel, want: gormlogger.Warn},
		{in: zapcore.ErrorLevel, want: gormlogger.Error},
		{in: zapcore.InvalidLevel, want: gormlogger.Silent},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, toGormLogLevel(tt.in))
		})
	}
}
