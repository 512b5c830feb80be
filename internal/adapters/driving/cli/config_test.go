package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdforacle/pdforacle/internal/adapters/driven/config/file"
	"github.com/pdforacle/pdforacle/internal/core/domain"
)

func setupTestConfigDir(t *testing.T) string {
	t.Helper()
	original := configDir
	configDir = t.TempDir()
	t.Cleanup(func() { configDir = original })
	return configDir
}

func TestConfigCmd_Use(t *testing.T) {
	assert.Equal(t, "config", configCmd.Use)
	assert.Equal(t, "show", configShowCmd.Use)
	assert.Equal(t, "get <key>", configGetCmd.Use)
	assert.Equal(t, "set <key> <value>", configSetCmd.Use)
}

func TestConfigCmd_SetPersistsValue(t *testing.T) {
	dir := setupTestConfigDir(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "set", "llm.provider", "anthropic"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Set llm.provider = anthropic")

	// A fresh store reads the value back from disk.
	store, err := file.NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "anthropic", store.GetString("llm.provider"))
}

func TestConfigCmd_SetIntKey(t *testing.T) {
	dir := setupTestConfigDir(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "set", "chunk_size", "800"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)

	store, err := file.NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, 800, store.GetInt("chunk_size"))
}

func TestConfigCmd_SetRejectsUnknownKey(t *testing.T) {
	setupTestConfigDir(t)

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"config", "set", "nonsense", "value"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConfigCmd_SetRejectsNonIntegerChunkSize(t *testing.T) {
	setupTestConfigDir(t)

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"config", "set", "chunk_size", "lots"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConfigCmd_GetAndShow(t *testing.T) {
	dir := setupTestConfigDir(t)

	store, err := file.NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("collection", "papers"))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "get", "collection"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "papers")

	buf.Reset()
	rootCmd.SetArgs([]string{"config", "show"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "collection = papers")
	assert.Contains(t, buf.String(), "llm.model = (not set)")
}
