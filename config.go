package abrade

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFilePath is where the CLI looks for a user-level
// defaults file, under $HOME/.config/<tool>/.
var DefaultConfigFilePath = filepath.Join(getUserHomeDir(), ".config/abrade/config.yaml")

// Config seeds default flag values so repeat users don't retype
// tuning options every invocation.
type Config struct {
	UserAgent      string `yaml:"user_agent"`
	InitialConcurrency int `yaml:"initial_concurrency"`
	MinConcurrency int    `yaml:"min_concurrency"`
	MaxConcurrency int    `yaml:"max_concurrency"`
	SampleSize     int    `yaml:"sample_size"`
	SampleInterval int    `yaml:"sample_interval"`
}

// NewConfig reads a Config from a YAML file.
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GenerateSample writes a sample config file with default values.
func GenerateSample(filePath string) error {
	cfg := Config{
		UserAgent:          DefaultUserAgent,
		InitialConcurrency: DefaultInitialConcurrency,
		MinConcurrency:     DefaultMinConcurrency,
		MaxConcurrency:     DefaultMaxConcurrency,
		SampleSize:         DefaultSampleSize,
		SampleInterval:     DefaultSampleInterval,
	}
	bin, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}
