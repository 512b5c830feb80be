package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdforacle/pdforacle/internal/adapters/driven/config/file"
	"github.com/pdforacle/pdforacle/internal/core/domain"
)

// configDir overrides the config store location. Empty means the default
// ~/.pdforacle directory.
var configDir string

// configKeys are the settings the store accepts, with their value kind.
var configKeys = map[string]string{
	"persist_dir":        "string",
	"collection":         "string",
	"chunk_size":         "int",
	"chunk_overlap":      "int",
	"llm.provider":       "string",
	"llm.model":          "string",
	"embedding.provider": "string",
	"embedding.model":    "string",
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage stored configuration defaults",
	Long: `View and change the defaults stored in the config file.

Stored values are used when the matching environment variable is unset;
environment variables always win.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one stored configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a configuration value",
	Long: `Store a configuration value in the config file.

Known keys:
  persist_dir, collection, chunk_size, chunk_overlap,
  llm.provider, llm.model, embedding.provider, embedding.model`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func openConfigStore() (*file.ConfigStore, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("open config store: %w", err)
	}
	return store, nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	store, err := openConfigStore()
	if err != nil {
		return err
	}

	cmd.Printf("Config file: %s\n\n", store.Path())

	keys := make([]string, 0, len(configKeys))
	for key := range configKeys {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if val, ok := store.Get(key); ok {
			cmd.Printf("  %s = %v\n", key, val)
		} else {
			cmd.Printf("  %s = (not set)\n", key)
		}
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if _, known := configKeys[key]; !known {
		return fmt.Errorf("%w: unknown config key %q", domain.ErrInvalidInput, key)
	}

	store, err := openConfigStore()
	if err != nil {
		return err
	}

	val, ok := store.Get(key)
	if !ok {
		cmd.Printf("%s is not set\n", key)
		return nil
	}
	cmd.Printf("%v\n", val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, raw := args[0], args[1]
	kind, known := configKeys[key]
	if !known {
		return fmt.Errorf("%w: unknown config key %q", domain.ErrInvalidInput, key)
	}

	var value any = raw
	if kind == "int" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer, got %q", domain.ErrInvalidInput, key, raw)
		}
		if n < 0 {
			return fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidInput, key)
		}
		value = n
	}

	store, err := openConfigStore()
	if err != nil {
		return err
	}
	if err := store.Set(key, value); err != nil {
		return fmt.Errorf("store config value: %w", err)
	}

	cmd.Printf("Set %s = %v\n", key, value)
	return nil
}
