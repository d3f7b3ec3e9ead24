package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level bankstatement.yaml configuration.
type Config struct {
	Database  string       `yaml:"database"`
	ImportDir string       `yaml:"import_dir"`
	ReportDir string       `yaml:"report_dir"`
	LogFile   string       `yaml:"log_file"`
	Charts    ChartsConfig `yaml:"charts"`
}

// ChartsConfig holds the output paths for rendered charts.
type ChartsConfig struct {
	LinesFile string `yaml:"lines_file"`
	PieFile   string `yaml:"pie_file"`
}

// Load reads a bankstatement.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Database:  "expenses.db",
		ImportDir: "import",
		ReportDir: "reports",
		LogFile:   "logs/commands.csv",
		Charts: ChartsConfig{
			LinesFile: "reports/lines.png",
			PieFile:   "reports/pie.png",
		},
	}
}
