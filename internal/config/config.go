package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lugisami/internal/errors"

	"github.com/gobwas/glob"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Placeholders substituted into collaborator arguments.
const (
	PlaceholderInput  = "{input}"
	PlaceholderFolder = "{folder}"
	PlaceholderName   = "{name}"
	PlaceholderOutput = "{output}" // folder joined with name
)

// Command describes an external program and its argument template
type Command struct {
	Command string   `yaml:"command" toml:"command"`
	Args    []string `yaml:"args" toml:"args"`
}

// Reader binds a source-file glob to the command that reads such reports
type Reader struct {
	Pattern string   `yaml:"pattern" toml:"pattern"` // Glob matched against the lower-cased file name
	Command string   `yaml:"command" toml:"command"`
	Args    []string `yaml:"args" toml:"args"`
}

// Config represents the application configuration structure.
type Config struct {
	Window struct {
		Title     string `yaml:"title" toml:"title"`
		Resizable bool   `yaml:"resizable" toml:"resizable"`
	} `yaml:"window" toml:"window"`
	Help struct {
		Document string `yaml:"document" toml:"document"` // Help file opened by the HELP button
	} `yaml:"help" toml:"help"`
	Logging struct {
		Debug bool   `yaml:"debug" toml:"debug"`
		JSON  bool   `yaml:"json" toml:"json"`
		File  string `yaml:"file" toml:"file"`
	} `yaml:"logging" toml:"logging"`
	Collaborators struct {
		CreateInput struct {
			Output Command `yaml:"output" toml:"output"` // Produces the ISAMI input file
			Batch  Command `yaml:"batch" toml:"batch"`   // Produces the batch file next to it
		} `yaml:"create_input" toml:"create_input"`
		ReadReport struct {
			Readers []Reader `yaml:"readers" toml:"readers"`
		} `yaml:"read_report" toml:"read_report"`
	} `yaml:"collaborators" toml:"collaborators"`

	path string
}

// DefaultPath returns ~/.config/lugisami/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "lugisami", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var tempCfg Config
	if err := unmarshal(path, data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge onto defaults so unset sections keep their values
	if tempCfg.Window.Title != "" {
		cfg.Window.Title = tempCfg.Window.Title
	}
	cfg.Window.Resizable = tempCfg.Window.Resizable
	if tempCfg.Help.Document != "" {
		cfg.Help.Document = tempCfg.Help.Document
	}
	cfg.Logging = tempCfg.Logging

	createInput := tempCfg.Collaborators.CreateInput
	if createInput.Output.Command != "" {
		cfg.Collaborators.CreateInput.Output = createInput.Output
	}
	if createInput.Batch.Command != "" {
		cfg.Collaborators.CreateInput.Batch = createInput.Batch
	}
	if len(tempCfg.Collaborators.ReadReport.Readers) > 0 {
		cfg.Collaborators.ReadReport.Readers = tempCfg.Collaborators.ReadReport.Readers
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func unmarshal(path string, data []byte, out *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Unmarshal(data, out)
	default:
		return yaml.Unmarshal(data, out)
	}
}

// defaultConfig returns the configuration used when no file is present.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Window.Title = "ISAMI LUG V1.0"
	cfg.Window.Resizable = false
	cfg.Help.Document = "LugISAMI_Help.pdf"

	cfg.Collaborators.CreateInput.Output = Command{
		Command: "lugwriter",
		Args:    []string{"--input", PlaceholderInput, "--output-path", PlaceholderFolder, "--output-name", PlaceholderName},
	}
	cfg.Collaborators.CreateInput.Batch = Command{
		Command: "lugwriter",
		Args:    []string{"--input", PlaceholderInput, "--output-path", PlaceholderFolder, "--output-name", PlaceholderName, "--batch"},
	}
	cfg.Collaborators.ReadReport.Readers = []Reader{
		{
			Pattern: "*.{html,htm}",
			Command: "lugreader",
			Args:    []string{"--format", "html", "--input", PlaceholderInput, "--output", PlaceholderOutput},
		},
		{
			Pattern: "*.czm",
			Command: "lugreader",
			Args:    []string{"--format", "czm", "--input", PlaceholderInput, "--output", PlaceholderOutput},
		},
	}

	return cfg
}

// New returns the default configuration
func New() *Config {
	return defaultConfig()
}

// Path returns the file the configuration was loaded from, if any
func (c *Config) Path() string {
	return c.path
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var data []byte
	var err error
	if strings.ToLower(filepath.Ext(path)) == ".toml" {
		data, err = toml.Marshal(cfg)
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("configuration is nil", "", errors.InvalidConfig, errors.ErrInvalidConfig)
	}

	if strings.TrimSpace(c.Help.Document) == "" {
		return errors.NewConfigError("help document must not be empty", "help.document", errors.InvalidConfig, errors.ErrInvalidConfig)
	}

	if c.Collaborators.CreateInput.Output.Command == "" {
		return errors.NewConfigError("command is required", "collaborators.create_input.output", errors.InvalidConfig, errors.ErrInvalidConfig)
	}
	if c.Collaborators.CreateInput.Batch.Command == "" {
		return errors.NewConfigError("command is required", "collaborators.create_input.batch", errors.InvalidConfig, errors.ErrInvalidConfig)
	}

	if len(c.Collaborators.ReadReport.Readers) == 0 {
		return errors.NewConfigError("at least one reader is required", "collaborators.read_report.readers", errors.InvalidConfig, errors.ErrInvalidConfig)
	}
	for i, r := range c.Collaborators.ReadReport.Readers {
		param := fmt.Sprintf("collaborators.read_report.readers[%d]", i)
		if r.Command == "" {
			return errors.NewConfigError("command is required", param, errors.InvalidConfig, errors.ErrInvalidConfig)
		}
		if r.Pattern == "" {
			return errors.NewConfigError("pattern is required", param, errors.InvalidConfig, errors.ErrInvalidConfig)
		}
		if _, err := glob.Compile(r.Pattern); err != nil {
			return errors.NewConfigError("invalid pattern", param, errors.InvalidConfig, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err))
		}
	}

	return nil
}
