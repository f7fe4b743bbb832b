package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCmd_Exists(t *testing.T) {
	rootCmd := NewRootCmd()
	// Verify the serve subcommand is registered
	cmd, _, err := rootCmd.Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, "serve", cmd.Name())
}

func TestServeCmd_DefaultFlags(t *testing.T) {
	cmd := NewServeCmd()
	assert.Contains(t, cmd.UseLine(), "serve")

	port, _ := cmd.Flags().GetInt("port")
	assert.Equal(t, 7434, port)
	bind, _ := cmd.Flags().GetString("bind")
	assert.Equal(t, "127.0.0.1", bind)
	db, _ := cmd.Flags().GetString("db")
	assert.Contains(t, db, "palettes.db")
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	rootCmd := NewRootCmd()
	for _, path := range [][]string{
		{"generate"},
		{"svg"},
		{"inspect"},
		{"formulas"},
		{"tui"},
		{"library", "save"},
		{"library", "list"},
		{"library", "show"},
		{"library", "delete"},
		{"lib", "rm"},
	} {
		cmd, _, err := rootCmd.Find(path)
		require.NoError(t, err, "find %v", path)
		assert.NotEqual(t, rootCmd, cmd, "%v should resolve to a subcommand", path)
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	rootCmd := NewRootCmd()
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("debug"))
}
