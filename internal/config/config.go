package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the realign configuration
type Config struct {
	Planner PlannerConfig `mapstructure:"planner"`
	Search  SearchConfig  `mapstructure:"search"`
	World   WorldConfig   `mapstructure:"world"`
}

// PlannerConfig contains external-planner settings
type PlannerConfig struct {
	Binary      string `mapstructure:"binary"`
	Strategy    string `mapstructure:"strategy"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// SearchConfig contains intervention-search settings
type SearchConfig struct {
	Iterations          int     `mapstructure:"iterations"`
	ExplorationConstant float64 `mapstructure:"exploration_constant"`
	Seed                int64   `mapstructure:"seed"`
	DenseShaping        bool    `mapstructure:"dense_shaping"`
}

// WorldConfig contains world-model settings
type WorldConfig struct {
	AlignmentThreshold float64 `mapstructure:"alignment_threshold"`
}

// Path returns the workspace config file location
func Path(workspaceDir string) string {
	return filepath.Join(workspaceDir, ".realign", "config.yaml")
}

// Load reads the config from the workspace
func Load(workspaceDir string) (*Config, error) {
	configPath := Path(workspaceDir)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		Planner: PlannerConfig{
			Binary:      "fast-downward",
			Strategy:    "astar(lmcut())",
			TimeoutSecs: 300,
		},
		Search: SearchConfig{
			Iterations:          30000,
			ExplorationConstant: 0.5,
			Seed:                1,
		},
		World: WorldConfig{
			AlignmentThreshold: 0.005,
		},
	}
}

// Save writes the config to the workspace, creating .realign if needed
func Save(workspaceDir string, cfg *Config) error {
	configPath := Path(workspaceDir)
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.Set("planner.binary", cfg.Planner.Binary)
	v.Set("planner.strategy", cfg.Planner.Strategy)
	v.Set("planner.timeout_secs", cfg.Planner.TimeoutSecs)
	v.Set("search.iterations", cfg.Search.Iterations)
	v.Set("search.exploration_constant", cfg.Search.ExplorationConstant)
	v.Set("search.seed", cfg.Search.Seed)
	v.Set("search.dense_shaping", cfg.Search.DenseShaping)
	v.Set("world.alignment_threshold", cfg.World.AlignmentThreshold)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// setDefaults registers the default for every key so that keys absent from
// the file fall back while explicit values, including zero, are kept as-is.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("planner.binary", d.Planner.Binary)
	v.SetDefault("planner.strategy", d.Planner.Strategy)
	v.SetDefault("planner.timeout_secs", d.Planner.TimeoutSecs)
	v.SetDefault("search.iterations", d.Search.Iterations)
	v.SetDefault("search.exploration_constant", d.Search.ExplorationConstant)
	v.SetDefault("search.seed", d.Search.Seed)
	v.SetDefault("search.dense_shaping", d.Search.DenseShaping)
	v.SetDefault("world.alignment_threshold", d.World.AlignmentThreshold)
}
