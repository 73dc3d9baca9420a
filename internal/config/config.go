package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables honored by the command-line front-ends. They act as
// defaults for the corresponding flags and are typically supplied through a
// .env file loaded at startup.
const (
	EnvConfigPath  = "KABADDI_CONFIG"
	EnvDatasetPath = "KABADDI_DATASET"
)

// ResolvePath returns the flag value when set, otherwise the value of the
// environment variable named by key.
func ResolvePath(flagValue, key string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(key)
}

// DatasetConfig points at the question/answer source file. An empty path
// selects the built-in Kabaddi corpus.
type DatasetConfig struct {
	Path string `yaml:"path"`
}

// EmbedderConfig configures the TF-IDF vectorizer.
type EmbedderConfig struct {
	// Stopwords selects the stopword filter: "english" or "none".
	Stopwords string `yaml:"stopwords"`
}

// MatcherConfig configures match behavior and the console presentation.
type MatcherConfig struct {
	// MinScore is the similarity cutoff; 0 disables it and the matcher
	// always answers.
	MinScore float64 `yaml:"min_score"`
	// Fallback is printed when MinScore is set and no question reaches it.
	Fallback string `yaml:"fallback"`
	// TopK bounds the alternatives list shown by the TUI.
	TopK int `yaml:"top_k"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Dataset  DatasetConfig  `yaml:"dataset"`
	Embedder EmbedderConfig `yaml:"embedder"`
	Matcher  MatcherConfig  `yaml:"matcher"`
}

// Load reads a config from a specified path. If the file does not exist,
// returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/kabaddi-chat/config.yaml.
// If neither exists, it writes defaults to the user path and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "kabaddi-chat", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Embedder: EmbedderConfig{Stopwords: "english"},
		Matcher: MatcherConfig{
			MinScore: 0,
			Fallback: "Ask something related to Kabaddi.",
			TopK:     5,
		},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Embedder.Stopwords == "" {
		cfg.Embedder.Stopwords = "english"
	}
	if cfg.Matcher.Fallback == "" {
		cfg.Matcher.Fallback = "Ask something related to Kabaddi."
	}
	if cfg.Matcher.TopK == 0 {
		cfg.Matcher.TopK = 5
	}
}
