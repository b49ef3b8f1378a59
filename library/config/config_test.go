package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/2ntng/library-management/library/config"
)

func TestNewConfigOptions(t *testing.T) {
	// with LOG_LEVEL unset the option value must survive envconfig
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.WarnLevel),
		config.WithWriteTimeout(time.Minute),
	)

	require.Equal(t, zapcore.WarnLevel, cfg.Log.LogLevel)
	require.Equal(t, time.Minute, cfg.Server.WriteTimeout)
	require.NotEmpty(t, cfg.Server.Port)
	require.NotEmpty(t, cfg.Database.Host)
}
