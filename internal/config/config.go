// Package config provides configuration loading and structs for the WellNest server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wellnest/wellnest/internal/corpus"
)

// Config holds all configuration for the application.
type Config struct {
	Debug      bool             `yaml:"debug"`
	Server     ServerConfig     `yaml:"server"`
	Storage    StorageConfig    `yaml:"storage"`
	Datasets   DatasetsConfig   `yaml:"datasets"`
	Chat       ChatConfig       `yaml:"chat"`
	Classifier ClassifierConfig `yaml:"classifier"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StorageConfig holds the user database path.
type StorageConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// DatasetsConfig holds the corpus sources loaded at startup.
type DatasetsConfig struct {
	// Dir is prepended to relative corpus paths.
	Dir string `yaml:"dir"`
	// Watch enables the dataset directory watcher (advisory logging only;
	// corpora never reload at runtime).
	Watch   bool           `yaml:"watch"`
	Corpora []CorpusConfig `yaml:"corpora"`
}

// CorpusConfig declares one retrieval corpus.
type CorpusConfig struct {
	Name         string            `yaml:"name"`
	Path         string            `yaml:"path"`
	PromptColumn string            `yaml:"prompt_column"`
	AnswerColumn string            `yaml:"answer_column"`
	Template     string            `yaml:"template"`
	Weight       float64           `yaml:"weight"`
	Kind         string            `yaml:"kind"`
	Labels       map[string]string `yaml:"labels"`
	MaxAnswerLen int               `yaml:"max_answer_len"`
}

// ChatConfig holds reply engine tuning.
type ChatConfig struct {
	MinScore  float64  `yaml:"min_score"`
	Fallback  string   `yaml:"fallback"`
	Stopwords []string `yaml:"stopwords"`
}

// ClassifierConfig holds the emotion model location.
type ClassifierConfig struct {
	ModelPath string `yaml:"model_path"`
}

// Load reads and parses the config file at path, expands paths, and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Storage.DatabasePath = expandPath(cfg.Storage.DatabasePath, configDir)
	cfg.Datasets.Dir = expandPath(cfg.Datasets.Dir, configDir)
	if cfg.Classifier.ModelPath != "" {
		cfg.Classifier.ModelPath = expandPath(cfg.Classifier.ModelPath, configDir)
	}

	return &cfg, nil
}

// Descriptors converts the configured corpora into corpus descriptors, in
// declaration order. Relative corpus paths resolve against Datasets.Dir.
func (c *Config) Descriptors() ([]corpus.Descriptor, error) {
	descriptors := make([]corpus.Descriptor, 0, len(c.Datasets.Corpora))
	for _, cc := range c.Datasets.Corpora {
		kind, err := corpus.ParseKind(cc.Kind)
		if err != nil {
			return nil, fmt.Errorf("corpus %q: %w", cc.Name, err)
		}
		path := cc.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(c.Datasets.Dir, path)
		}
		descriptors = append(descriptors, corpus.Descriptor{
			Name:         cc.Name,
			Path:         path,
			PromptColumn: cc.PromptColumn,
			AnswerColumn: cc.AnswerColumn,
			Template:     cc.Template,
			Weight:       cc.Weight,
			Kind:         kind,
			Labels:       cc.Labels,
			MaxAnswerLen: cc.MaxAnswerLen,
		})
	}
	return descriptors, nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
