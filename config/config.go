// Package config loads the settings for running Z-- programs.
//
// A configuration file is YAML:
//
//	trace: true
//	max_call_depth: 200
//	import_paths:
//	  - lib
//	  - /usr/share/zminus
//
// Fields that are absent keep their defaults. Unknown fields are errors.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"

	"github.com/zephyrtronium/zminus/internal"
)

// FileName is the configuration file looked for beside a program.
const FileName = ".zminus.yaml"

// Config holds interpreter settings.
type Config struct {
	// Trace enables debug logging of lexing, parsing, and execution.
	Trace bool `yaml:"trace"`
	// MaxCallDepth limits nested procedure calls. Zero means no limit.
	MaxCallDepth int `yaml:"max_call_depth"`
	// ImportPaths are the directories searched by use statements.
	ImportPaths []string `yaml:"import_paths"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{MaxCallDepth: internal.DefaultMaxDepth}
}

// Parse decodes and validates YAML configuration data on top of the
// defaults.
func Parse(data []byte) (Config, error) {
	c := Default()
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads and parses the configuration file at path. Relative import paths
// are resolved against the file's directory.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.WithStack(err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "loading %s", path)
	}
	dir := filepath.Dir(path)
	for i, p := range c.ImportPaths {
		if !filepath.IsAbs(p) {
			c.ImportPaths[i] = filepath.Join(dir, p)
		}
	}
	return c, nil
}

// ForProgram loads the configuration file beside the named program if there
// is one, and the defaults otherwise.
func ForProgram(program string) (Config, error) {
	path := filepath.Join(filepath.Dir(program), FileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, errors.WithStack(err)
	}
	return Load(path)
}

// Validate reports every problem with the configuration.
func (c Config) Validate() error {
	var err error
	if c.MaxCallDepth < 0 {
		err = multierr.Append(err, errors.Errorf("max_call_depth must not be negative, got %d", c.MaxCallDepth))
	}
	for i, p := range c.ImportPaths {
		if p == "" {
			err = multierr.Append(err, errors.Errorf("import_paths[%d] is empty", i))
		}
	}
	return err
}
