package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryCmd_Use(t *testing.T) {
	assert.Equal(t, "query [question]", queryCmd.Use)
}

func TestQueryCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"query"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestQueryCmd_Flags(t *testing.T) {
	kFlag := queryCmd.Flags().Lookup("top-k")
	require.NotNil(t, kFlag)
	assert.Equal(t, "k", kFlag.Shorthand)
	assert.Equal(t, "5", kFlag.DefValue)

	assert.NotNil(t, queryCmd.Flags().Lookup("document"))
	assert.NotNil(t, queryCmd.Flags().Lookup("tag"))
	assert.NotNil(t, queryCmd.Flags().Lookup("page-min"))
	assert.NotNil(t, queryCmd.Flags().Lookup("page-max"))
	assert.NotNil(t, queryCmd.Flags().Lookup("json"))
}

func TestQueryCmd_RejectsHalfOpenPageRange(t *testing.T) {
	setupTestConfig(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"query", "what?", "--page-min", "2"})
	defer func() {
		rootCmd.SetArgs(nil)
		queryPageMin = 0
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "page_min and page_max must be provided together")
}
