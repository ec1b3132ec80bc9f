package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// Config is the TOML configuration struct. When a ~/.distinct.toml or
// ~/.config/distinct.toml file exists, or one is named with --config, its
// values replace the compiled-in defaults. Flags set on the command line
// always win.
type Config struct {
	Type      string `toml:"type"`
	Input     string `toml:"input"`
	Format    string `toml:"format"`
	Pretty    *bool  `toml:"pretty"`
	Count     *bool  `toml:"count"`
	Require   *bool  `toml:"require"`
	Trim      *bool  `toml:"trim"`
	SkipBlank *bool  `toml:"skip_blank"`
	NFC       *bool  `toml:"nfc"`
	XZ        *bool  `toml:"xz"`
	Quiet     *bool  `toml:"quiet"`
	Verbose   *bool  `toml:"verbose"`
}

// loadConfig applies the configuration file, if any, and returns its path.
func loadConfig(cmd *cobra.Command, opts *options) (string, error) {
	file := opts.configPath
	if file == "" {
		var err error
		if file, err = findConfigFile(); err != nil {
			return "", fmt.Errorf("locating distinct TOML configuration: %w", err)
		}
		if file == "" {
			return "", nil
		}
	}

	config, err := parseConfig(file)
	if err != nil {
		return "", fmt.Errorf("parsing distinct TOML configuration file %q: %w", file, err)
	}
	config.Apply(cmd, opts)
	return file, nil
}

// Apply copies every value the file sets into opts, skipping options whose
// flag was given explicitly.
func (config *Config) Apply(cmd *cobra.Command, opts *options) {
	changed := cmd.Flags().Changed

	setString := func(flag, val string, dst *string) {
		if len(val) > 0 && !changed(flag) {
			*dst = val
		}
	}
	setBool := func(flag string, val *bool, dst *bool) {
		if val != nil && !changed(flag) {
			*dst = *val
		}
	}

	setString("type", config.Type, &opts.kind)
	setString("input", config.Input, &opts.input)
	setString("format", config.Format, &opts.format)
	setBool("pretty", config.Pretty, &opts.pretty)
	setBool("count", config.Count, &opts.count)
	setBool("require", config.Require, &opts.require)
	setBool("trim", config.Trim, &opts.trim)
	setBool("skip-blank", config.SkipBlank, &opts.skipBlank)
	setBool("nfc", config.NFC, &opts.nfc)
	setBool("xz", config.XZ, &opts.xz)
	setBool("quiet", config.Quiet, &opts.quiet)
	setBool("verbose", config.Verbose, &opts.verbose)
}

func parseConfig(file string) (*Config, error) {
	config := &Config{}
	if _, err := toml.DecodeFile(file, config); err != nil {
		return nil, err
	}
	return config, nil
}

// findConfigFile searches for a ~/.distinct.toml or ~/.config/distinct.toml
// file (in this order).
//
// If no config file is found, ("", nil) is returned.
func findConfigFile() (string, error) {
	home := os.Getenv("HOME")
	if home == "" {
		return "", nil
	}
	paths := []string{
		filepath.Join(home, ".distinct.toml"),
		filepath.Join(home, ".config", "distinct.toml"),
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if os.IsNotExist(err) {
			continue
		} else {
			return "", err
		}
	}
	return "", nil
}
