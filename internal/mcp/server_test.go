package mcp

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	server, err := NewServer()
	require.NoError(t, err)

	assert.NotNil(t, server.mcp, "MCP server should be created")
	assert.NotNil(t, server.chunker, "Chunker should be created")
	assert.Equal(t, runtime.NumCPU(), server.workers)
}

func TestNewServer_WorkersFromEnv(t *testing.T) {
	t.Setenv(EnvWorkers, "3")

	server, err := NewServer()
	require.NoError(t, err)
	assert.Equal(t, 3, server.workers)
}

func TestNewServer_IgnoresInvalidWorkersEnv(t *testing.T) {
	t.Run("non-numeric", func(t *testing.T) {
		t.Setenv(EnvWorkers, "lots")

		server, err := NewServer()
		require.NoError(t, err)
		assert.Equal(t, runtime.NumCPU(), server.workers)
	})

	t.Run("non-positive", func(t *testing.T) {
		t.Setenv(EnvWorkers, "0")

		server, err := NewServer()
		require.NoError(t, err)
		assert.Equal(t, runtime.NumCPU(), server.workers)
	})
}
