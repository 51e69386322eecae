/*
Package config manages TOML config for the wordgain solver.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/tobrh/wordgain/internal/utils"
	"github.com/tobrh/wordgain/pkg/solver"
)

// Config holds the entire config structure
type Config struct {
	Solver SolverConfig `toml:"solver"`
	Dict   DictConfig   `toml:"dict"`
	Curve  CurveConfig  `toml:"curve"`
	CLI    CliConfig    `toml:"cli"`
}

// SolverConfig has ranking related options.
type SolverConfig struct {
	// SuggestionLimit caps how many ranked guesses are surfaced; 0 keeps all.
	SuggestionLimit int `toml:"suggestion_limit"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Path         string `toml:"path"`
	SampleWindow int    `toml:"sample_window"`
}

// CurveConfig overrides the fitted likelihood-curve coefficients.
// The defaults are the tuned production fit; override only to re-tune
// against a different corpus.
type CurveConfig struct {
	A float64 `toml:"a"`
	B float64 `toml:"b"`
	C float64 `toml:"c"`
}

// CliConfig holds interactive session options.
type CliConfig struct {
	DefaultLimit int `toml:"default_limit"`
	HintLimit    int `toml:"hint_limit"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/wordgain
// 2. Current executable dir
// 3. builtin defaults
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "wordgain")
	if err := utils.EnsureDir(primaryPath); err == nil {
		return primaryPath, nil
	}
	return utils.GetExecutableDir()
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
// 1. Custom path from -config flag
// 2. Default path: ~/.config/wordgain/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
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
		Solver: SolverConfig{
			SuggestionLimit: 0,
		},
		Dict: DictConfig{
			Path:         "data/word_freqs.txt",
			SampleWindow: 5,
		},
		Curve: CurveConfig{
			A: solver.DefaultCurveA,
			B: solver.DefaultCurveB,
			C: solver.DefaultCurveC,
		},
		CLI: CliConfig{
			DefaultLimit: 20,
			HintLimit:    5,
		},
	}
}

// SolverCurve converts the configured coefficients into the solver's
// curve type.
func (c *Config) SolverCurve() solver.Curve {
	return solver.Curve{A: c.Curve.A, B: c.Curve.B, C: c.Curve.C}
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
	return config, nil
}

// tryPartialParse salvages whatever valid sections a broken TOML file
// still has, falling back to defaults for the rest.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if solverSection, ok := utils.ExtractSection(tempConfig, "solver"); ok {
		extractSolverConfig(solverSection, &config.Solver)
	}
	if dictSection, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(dictSection, &config.Dict)
	}
	if curveSection, ok := utils.ExtractSection(tempConfig, "curve"); ok {
		extractCurveConfig(curveSection, &config.Curve)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	return config, nil
}

func extractSolverConfig(data map[string]any, s *SolverConfig) {
	if val, ok := utils.ExtractInt64(data, "suggestion_limit"); ok {
		s.SuggestionLimit = val
	}
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		dict.Path = val
	}
	if val, ok := utils.ExtractInt64(data, "sample_window"); ok {
		dict.SampleWindow = val
	}
}

func extractCurveConfig(data map[string]any, curve *CurveConfig) {
	if val, ok := utils.ExtractFloat64(data, "a"); ok {
		curve.A = val
	}
	if val, ok := utils.ExtractFloat64(data, "b"); ok {
		curve.B = val
	}
	if val, ok := utils.ExtractFloat64(data, "c"); ok {
		curve.C = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "hint_limit"); ok {
		cli.HintLimit = val
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
