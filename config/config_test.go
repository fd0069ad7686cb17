package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NotEmpty(t, cfg.Server)
	require.NotEmpty(t, cfg.ContentType)
	require.NotZero(t, cfg.Timeout)
	require.NotZero(t, cfg.MaxSockets)
	require.NotNil(t, cfg.DefaultHeaders)
	require.GreaterOrEqual(t, cfg.Workers, 1)
}

func TestDefaultWorkers(t *testing.T) {
	require.GreaterOrEqual(t, DefaultWorkers(), 1)
}
