package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vocabsync/internal/core/ports/driven"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit the configuration file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := resolveConfigStore()
		if err != nil {
			return err
		}
		cmd.Println(store.Path())
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a configuration value, e.g. skyeng.username",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := resolveConfigStore()
		if err != nil {
			return err
		}
		val, ok := store.Get(args[0])
		if !ok {
			return fmt.Errorf("%s is not set", args[0])
		}
		out := fmt.Sprint(val)
		if isSecretKey(args[0]) {
			out = maskSecret(out)
		}
		cmd.Println(out)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value, e.g. sync.batch_size 25",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := resolveConfigStore()
		if err != nil {
			return err
		}
		key := args[0]
		if !strings.Contains(key, ".") {
			return fmt.Errorf("key %q must be section.name", key)
		}
		if err := store.Set(key, parseValue(args[1])); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		cmd.Printf("%s updated in %s\n", key, store.Path())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd, configGetCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}

// parseValue keeps TOML types for numbers and booleans.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}

func isSecretKey(key string) bool {
	return strings.HasSuffix(key, ".password")
}

func maskSecret(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:2] + strings.Repeat("*", len(s)-2)
}

func resolveConfigStore() (driven.ConfigStore, error) {
	if configStore != nil {
		return configStore, nil
	}
	if builder == nil {
		return nil, errors.New("config store not configured")
	}
	return builder.ConfigStore(opts)
}
