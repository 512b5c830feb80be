package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil indexer service returns error", func(t *testing.T) {
		ports := testPorts()
		ports.Indexer = nil
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingIndexerService)
	})

	t.Run("nil query service returns error", func(t *testing.T) {
		ports := testPorts()
		ports.Query = nil
		_, err := NewServer(ports)
		assert.ErrorIs(t, err, ErrMissingQueryService)
	})

	t.Run("nil library service returns error", func(t *testing.T) {
		ports := testPorts()
		ports.Library = nil
		_, err := NewServer(ports)
		assert.ErrorIs(t, err, ErrMissingLibraryService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(testPorts())
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("empty ports", func(t *testing.T) {
		ports := &Ports{}
		assert.ErrorIs(t, ports.Validate(), ErrMissingIndexerService)
	})

	t.Run("all ports is valid", func(t *testing.T) {
		assert.NoError(t, testPorts().Validate())
	})
}
