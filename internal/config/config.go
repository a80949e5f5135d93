// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable consulted when --config is unset.
const EnvVar = "MOTIFSCAN_CONFIG"

// Defaults holds values a YAML file may preset. Pointer fields stay nil
// when the key is absent so the caller can tell "unset" from "false" or 0.
type Defaults struct {
	Output          *string `yaml:"output"`
	Strand          *string `yaml:"strand"`
	Threads         *int    `yaml:"threads"`
	ChunkSize       *int    `yaml:"chunk_size"`
	IncludeSequence *bool   `yaml:"include_sequence"`
	Header          *bool   `yaml:"header"`
	Sort            *bool   `yaml:"sort"`
	Color           *bool   `yaml:"color"`
	DedupeCap       *int    `yaml:"dedupe_cap"`
}

// Resolve picks the config path: the explicit one, else $MOTIFSCAN_CONFIG.
func Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return os.Getenv(EnvVar)
}

// Load reads a defaults file. An empty path yields empty Defaults.
func Load(path string) (Defaults, error) {
	var d Defaults
	if path == "" {
		return d, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return d, fmt.Errorf("config: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Decode(f, path)
}

// Decode parses YAML from r; name is used in error messages only.
// Unknown keys are rejected.
func Decode(r io.Reader, name string) (Defaults, error) {
	var d Defaults
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return Defaults{}, fmt.Errorf("config %s: %w", name, err)
	}
	return d, nil
}
