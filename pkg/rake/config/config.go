package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/rake/pkg/rake/internalerr"
)

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}

	return &sl, nil
}

// Config is the extraction tool configuration
type Config struct {
	StoplistPath string `yaml:"stoplist"`
	TopK         int    `yaml:"top_k"`
	DBPath       string `yaml:"db"`
}

// Load reads a Config from a YAML file and validates it
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.TopK < 0 {
		return nil, fmt.Errorf("%w: top_k must not be negative", internalerr.ErrInvalidConfig)
	}

	return &cfg, nil
}
