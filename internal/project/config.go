package project

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config — разобранный tsig.toml.
type Config struct {
	Project ProjectSection `toml:"project"`
	Extract ExtractSection `toml:"extract"`
	Output  OutputSection  `toml:"output"`
}

type ProjectSection struct {
	Name string   `toml:"name"`
	Src  []string `toml:"src"`
}

type ExtractSection struct {
	Extensions     []string `toml:"extensions"`
	MaxDiagnostics int      `toml:"max_diagnostics"`
	Jobs           int      `toml:"jobs"`
	Cache          bool     `toml:"cache"`
}

type OutputSection struct {
	Format string `toml:"format"` // pretty | json
}

// DefaultConfig returns the configuration used when no manifest exists.
func DefaultConfig() Config {
	return Config{
		Project: ProjectSection{Src: []string{"."}},
		Extract: ExtractSection{
			Extensions:     []string{".ts", ".mts", ".cts"},
			MaxDiagnostics: 100,
			Cache:          true,
		},
		Output: OutputSection{Format: "pretty"},
	}
}

// LoadConfig reads and validates a manifest file. Отсутствующие поля
// добираются из дефолтов.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFrom ищет манифест вверх от startDir; без манифеста — дефолты.
func LoadConfigFrom(startDir string) (Config, string, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return DefaultConfig(), "", nil
	}
	cfg, err := LoadConfig(manifestPath)
	return cfg, manifestPath, err
}

func (c *Config) Validate() error {
	switch c.Output.Format {
	case "", "pretty", "json":
	default:
		return fmt.Errorf("unknown output format %q (must be pretty or json)", c.Output.Format)
	}
	if c.Extract.MaxDiagnostics < 0 {
		return fmt.Errorf("extract.max_diagnostics must be non-negative")
	}
	if c.Extract.Jobs < 0 {
		return fmt.Errorf("extract.jobs must be non-negative")
	}
	return nil
}
