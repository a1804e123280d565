package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// RankingConfig sets how many results each ranking phase keeps.
type RankingConfig struct {
	FileMatches     int `yaml:"file_matches"`
	SentenceMatches int `yaml:"sentence_matches"`
}

// CorpusConfig controls which files are loaded and how many are tokenized
// in parallel.
type CorpusConfig struct {
	Extensions []string `yaml:"extensions"`
	Workers    int      `yaml:"workers"`
}

// TokenizerConfig adds stopwords on top of the built-in English list.
type TokenizerConfig struct {
	ExtraStopwords []string `yaml:"extra_stopwords,omitempty"`
}

// LoggingConfig controls log level and output format (text or json).
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Ranking   RankingConfig   `yaml:"ranking"`
	Corpus    CorpusConfig    `yaml:"corpus"`
	Tokenizer TokenizerConfig `yaml:"tokenizer"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// Load reads a config from path over the defaults. If the file does not
// exist, the defaults are returned. Environment overrides apply either way.
func Load(path string) (*AppConfig, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/questions/config.yaml.
// If neither exists, it writes defaults to ~/.config/questions/config.yaml and returns them.
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
	applyEnvOverrides(cfg)
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

// Validate rejects settings the ranking pipeline cannot run with.
func (c *AppConfig) Validate() error {
	if c.Ranking.FileMatches < 0 {
		return fmt.Errorf("%w: ranking.file_matches must be >= 0, got %d", ErrInvalidConfig, c.Ranking.FileMatches)
	}
	if c.Ranking.SentenceMatches < 0 {
		return fmt.Errorf("%w: ranking.sentence_matches must be >= 0, got %d", ErrInvalidConfig, c.Ranking.SentenceMatches)
	}
	if c.Corpus.Workers <= 0 {
		return fmt.Errorf("%w: corpus.workers must be > 0, got %d", ErrInvalidConfig, c.Corpus.Workers)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "questions", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Ranking: RankingConfig{FileMatches: 1, SentenceMatches: 1},
		Corpus:  CorpusConfig{Extensions: []string{".txt"}, Workers: 4},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// applyEnvOverrides reads QUESTIONS_* environment variables over cfg.
// Unparseable numbers are ignored.
func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("QUESTIONS_FILE_MATCHES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Ranking.FileMatches = n
		}
	}
	if v := os.Getenv("QUESTIONS_SENTENCE_MATCHES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Ranking.SentenceMatches = n
		}
	}
	if v := os.Getenv("QUESTIONS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("QUESTIONS_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
