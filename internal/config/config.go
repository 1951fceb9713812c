// Package config loads and saves the sdkshell TOML configuration.
package config

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// Config represents the complete sdkshell configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	SDK     SDKConfig     `toml:"sdk"`
	Output  OutputConfig  `toml:"output"`
}

// GeneralConfig contains general settings.
type GeneralConfig struct {
	// AutoConfirm answers yes to the license question (like the -y flag).
	AutoConfirm bool `toml:"auto_confirm"`

	// DryRun prints sdkmanager invocations instead of running them.
	DryRun bool `toml:"dry_run"`

	// History records install, uninstall and license operations.
	History bool `toml:"history"`
}

// SDKConfig locates the sdkmanager tool.
type SDKConfig struct {
	// ToolsDir is the directory holding sdkmanager. When empty the SDK root
	// from ANDROID_SDK_ROOT or ANDROID_HOME is used, then PATH.
	ToolsDir string `toml:"tools_dir"`

	// Binary overrides the full sdkmanager path, bypassing platform resolution.
	Binary string `toml:"binary"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	// Color enables colored output (respects NO_COLOR env var).
	Color bool `toml:"color"`

	// Unicode enables the spinner's unicode frames.
	Unicode bool `toml:"unicode"`

	// Verbose enables debug logging.
	Verbose bool `toml:"verbose"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			AutoConfirm: false,
			DryRun:      false,
			History:     true,
		},
		Output: OutputConfig{
			Color:   true,
			Unicode: true,
			Verbose: false,
		},
	}
}

// Load loads the configuration from the default path.
// If the config file doesn't exist, it returns the default configuration.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom loads the configuration from a specific path.
// If the config file doesn't exist, it returns the default configuration.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}
	return c.SaveTo(ConfigPath())
}

// SaveTo writes the configuration to a specific path.
func (c *Config) SaveTo(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return c.Encode(f)
}

// Encode writes the configuration as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// ShouldUseColor returns true if colored output should be used.
// Respects the NO_COLOR environment variable.
func (c *Config) ShouldUseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return c.Output.Color
}
