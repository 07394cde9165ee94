// Package config loads the wordbreak CLI configuration from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// FormatText prints one "INPUT: PHRASE" line per input.
	FormatText = "text"
	// FormatJSON prints one JSON object per input.
	FormatJSON = "json"

	// DictionaryCommon selects the embedded common-word dictionary.
	DictionaryCommon = "common"
	// DictionaryDemo selects the embedded demo dictionary.
	DictionaryDemo = "demo"
)

// ValidFormats lists the accepted output formats.
var ValidFormats = []string{FormatText, FormatJSON}

// ErrInvalidFormat is returned by Validate for an unknown output format.
var ErrInvalidFormat = errors.New("config: invalid format")

// Config holds CLI settings. Command-line flags override file values.
type Config struct {
	// Dictionary is "common", "demo", or a path to a word list
	// (.yaml/.yml or one word per line).
	Dictionary string `yaml:"dictionary"`

	// Format is "text" or "json".
	Format string `yaml:"format"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Dictionary: DictionaryCommon,
		Format:     FormatText,
		Verbose:    false,
	}
}

// Load reads the YAML file at path on top of Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %q: %w", path, err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode %q: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks field values.
func (c Config) Validate() error {
	for _, f := range ValidFormats {
		if c.Format == f {
			return nil
		}
	}

	return fmt.Errorf("%w %q: must be one of %v", ErrInvalidFormat, c.Format, ValidFormats)
}
