/*
Package config manages TOML config for WordGrid hosts.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/wordgrid/internal/utils"
	"github.com/bastiangx/wordgrid/pkg/search"
	"github.com/bastiangx/wordgrid/pkg/words"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Words  WordsConfig  `toml:"words"`
	Search SearchConfig `toml:"search"`
	Server ServerConfig `toml:"server"`
	CLI    CliConfig    `toml:"cli"`
}

// WordsConfig controls the selection pipeline and corpus.
type WordsConfig struct {
	Limit  int    `toml:"limit"`
	Seed   int64  `toml:"seed"`
	Corpus string `toml:"corpus"`
}

// SearchConfig controls the selection sink.
type SearchConfig struct {
	Prefix string `toml:"prefix"`
	DryRun bool   `toml:"dry_run"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	HTTPAddr string `toml:"http_addr"`
	MaxLimit int    `toml:"max_limit"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	Columns int `toml:"columns"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "wordgrid")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "wordgrid")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/wordgrid/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
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
		Words: WordsConfig{
			Limit: words.DefaultLimit,
		},
		Search: SearchConfig{
			Prefix: search.DefaultPrefix,
		},
		Server: ServerConfig{
			HTTPAddr: ":8080",
			MaxLimit: 26,
		},
		CLI: CliConfig{
			Columns: 6,
		},
	}
}

// InitConfig loads config from file or creates default if missing
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

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	config.normalize()
	return config, nil
}

// tryPartialParse keeps whatever sections still decode and defaults the rest.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "words"); ok {
		extractWordsConfig(section, &config.Words)
	}
	if section, ok := utils.ExtractSection(tempConfig, "search"); ok {
		extractSearchConfig(section, &config.Search)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	config.normalize()
	return config, nil
}

func extractWordsConfig(data map[string]any, w *WordsConfig) {
	if val, ok := utils.ExtractInt64(data, "limit"); ok {
		w.Limit = val
	}
	if val, ok := utils.ExtractInt64(data, "seed"); ok {
		w.Seed = int64(val)
	}
	if val, ok := utils.ExtractString(data, "corpus"); ok {
		w.Corpus = val
	}
}

func extractSearchConfig(data map[string]any, s *SearchConfig) {
	if val, ok := utils.ExtractString(data, "prefix"); ok {
		s.Prefix = val
	}
	if val, ok := utils.ExtractBool(data, "dry_run"); ok {
		s.DryRun = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractString(data, "http_addr"); ok {
		server.HTTPAddr = val
	}
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "columns"); ok {
		cli.Columns = val
	}
}

// normalize replaces unusable values with defaults.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Words.Limit < 0 {
		log.Warnf("Invalid words.limit %d, using %d", c.Words.Limit, def.Words.Limit)
		c.Words.Limit = def.Words.Limit
	}
	if c.Search.Prefix == "" {
		c.Search.Prefix = def.Search.Prefix
	}
	if c.Server.MaxLimit < 1 {
		c.Server.MaxLimit = def.Server.MaxLimit
	}
	if c.Words.Limit > c.Server.MaxLimit {
		log.Warnf("words.limit %d exceeds server.max_limit, using %d", c.Words.Limit, c.Server.MaxLimit)
		c.Words.Limit = c.Server.MaxLimit
	}
	if c.Server.HTTPAddr == "" {
		c.Server.HTTPAddr = def.Server.HTTPAddr
	}
	if c.CLI.Columns < 1 {
		c.CLI.Columns = def.CLI.Columns
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update changes the config values and saves them to file.
// Only the given keys are written; the rest of the file is reloaded from
// disk so runtime overrides held in c are never persisted.
func (c *Config) Update(configPath string, limit *int, prefix *string) error {
	c.apply(limit, prefix)
	if configPath == "" {
		return nil
	}

	onDisk, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	onDisk.apply(limit, prefix)
	return SaveConfig(onDisk, configPath)
}

func (c *Config) apply(limit *int, prefix *string) {
	if limit != nil {
		c.Words.Limit = *limit
	}
	if prefix != nil {
		c.Search.Prefix = *prefix
	}
	c.normalize()
}
