/*
Package config manages TOML configuration for seqtrie's CLI and server
modes. The trie core itself takes plain ints (maxTau, bottom) and never
reads a Config directly; this package exists to get those ints from a
file or sane defaults into cmd/seqtrie.
*/
package config

import (
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/iyhaoo/starcode/internal/utils"
)

// Config holds the entire configuration structure.
type Config struct {
	Trie   TrieConfig   `toml:"trie"`
	Ingest IngestConfig `toml:"ingest"`
	CLI    CliConfig    `toml:"cli"`
}

// TrieConfig mirrors the parameters trie.New takes.
type TrieConfig struct {
	MaxTau int `toml:"max_tau"`
	Bottom int `toml:"bottom"`
}

// IngestConfig controls how a barcode list file is loaded.
type IngestConfig struct {
	BatchSize    int  `toml:"batch_size"`
	SkipBadLines bool `toml:"skip_bad_lines"`
}

// CliConfig holds REPL defaults.
type CliConfig struct {
	DefaultTau   int  `toml:"default_tau"`
	ShowDistance bool `toml:"show_distance"`
}

// GetConfigDir returns the platform config directory resolved by
// utils.PathResolver. It does not check that the directory exists or is
// writable, and it does not fall back to any other location.
func GetConfigDir() (string, error) {
	pr, err := utils.NewPathResolver()
	if err != nil {
		log.Errorf("Failed to build path resolver: %v", err)
		return "", err
	}
	return pr.GetConfigDir(), nil
}

// GetDefaultConfigPath returns the default path for config.toml.
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/seqtrie/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customConfigPath)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Trie: TrieConfig{
			MaxTau: 3,
			Bottom: 24,
		},
		Ingest: IngestConfig{
			BatchSize:    4096,
			SkipBadLines: true,
		},
		CLI: CliConfig{
			DefaultTau:   1,
			ShowDistance: true,
		},
	}
}

// InitConfig loads config from file or creates a default one if missing.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads a Config from a TOML file, falling back to a
// section-by-section partial parse if the file is malformed.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if trieSection, ok := utils.ExtractSection(tempConfig, "trie"); ok {
		extractTrieConfig(trieSection, &config.Trie)
	}
	if ingestSection, ok := utils.ExtractSection(tempConfig, "ingest"); ok {
		extractIngestConfig(ingestSection, &config.Ingest)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	return config, nil
}

func extractTrieConfig(data map[string]any, trie *TrieConfig) {
	if val, ok := utils.ExtractInt64(data, "max_tau"); ok {
		trie.MaxTau = val
	}
	if val, ok := utils.ExtractInt64(data, "bottom"); ok {
		trie.Bottom = val
	}
}

func extractIngestConfig(data map[string]any, ingest *IngestConfig) {
	if val, ok := utils.ExtractInt64(data, "batch_size"); ok {
		ingest.BatchSize = val
	}
	if val, ok := utils.ExtractBool(data, "skip_bad_lines"); ok {
		ingest.SkipBadLines = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_tau"); ok {
		cli.DefaultTau = val
	}
	if val, ok := utils.ExtractBool(data, "show_distance"); ok {
		cli.ShowDistance = val
	}
}

// RebuildConfigFile force-creates a fresh default config.toml.
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	if err := utils.EnsureDir(filepath.Dir(defaultPath)); err != nil {
		return err
	}
	return SaveConfig(DefaultConfig(), defaultPath)
}

// GetActiveConfigPath returns the absolute path of the loaded config file.
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig writes a Config to a TOML file.
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update changes trie-tunable config values and persists them.
func (c *Config) Update(configPath string, maxTau, bottom *int) error {
	if maxTau != nil {
		c.Trie.MaxTau = *maxTau
	}
	if bottom != nil {
		c.Trie.Bottom = *bottom
	}
	return SaveConfig(c, configPath)
}
