package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stacklab/realign/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "View or modify configuration",
	Long: `View or modify realign configuration stored in .realign/config.yaml.

Examples:
  realign config                        Show all config
  realign config search.iterations     Get a specific value
  realign config search.seed 42        Set a value`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		wsDir, _, err := loadWorkspaceConfig()
		if err != nil {
			return err
		}
		configPath := config.Path(wsDir)

		switch len(args) {
		case 0:
			return showConfig(wsDir, configPath)
		case 1:
			return getConfigValue(wsDir, configPath, args[0])
		case 2:
			return setConfigValue(wsDir, configPath, args[0], args[1])
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func showConfig(workspaceDir, configPath string) error {
	content, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		if err := config.Save(workspaceDir, config.DefaultConfig()); err != nil {
			return err
		}
		content, err = os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	fmt.Println(string(content))
	return nil
}

func getConfigValue(workspaceDir, configPath, key string) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := config.Save(workspaceDir, config.DefaultConfig()); err != nil {
			return err
		}
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	value := v.Get(key)
	if value == nil {
		return fmt.Errorf("key not found: %s", key)
	}

	fmt.Println(value)
	return nil
}

func setConfigValue(workspaceDir, configPath, key, value string) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := config.Save(workspaceDir, config.DefaultConfig()); err != nil {
			return err
		}
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	v.Set(key, value)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Set %s = %s\n", key, value)
	return nil
}
