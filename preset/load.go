package preset

import (
	"bytes"
	"fmt"
	"io"
	"os"

	_ "embed"

	"github.com/artexplorer/primecut/polyhedra"
	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var defaultPresetsYAML []byte

type presetFile struct {
	Presets []Config `yaml:"presets"`
}

// DecodePresets reads a preset table from YAML. Unknown fields are
// rejected, so a typo in a hand-edited table fails loudly instead of
// silently dropping the value.
func DecodePresets(r io.Reader) ([]Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var file presetFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode presets: %w", err)
	}
	for i, cfg := range file.Presets {
		if err := validateConfig(cfg); err != nil {
			return nil, fmt.Errorf("preset %d (%q): %w", i, cfg.Name, err)
		}
	}
	return file.Presets, nil
}

// LoadPresets reads and validates a preset table from a YAML file.
func LoadPresets(path string) ([]Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodePresets(bytes.NewReader(data))
}

// Default returns the registry of compiled-in presets wired to the
// polyhedra vertex sources. The embedded table is validated at build of
// the registry, so a bad edit to presets.yaml fails the first Default call.
func Default() (*Registry, error) {
	configs, err := DecodePresets(bytes.NewReader(defaultPresetsYAML))
	if err != nil {
		return nil, err
	}
	return NewRegistry(configs, polyhedra.Vertices)
}

func validateConfig(cfg Config) error {
	if cfg.Name == "" {
		return fmt.Errorf("missing name")
	}
	if cfg.VertexSource == "" {
		return fmt.Errorf("missing vertex-source")
	}
	if err := cfg.Spreads.Validate(); err != nil {
		return err
	}
	if cfg.ExpectedHullCount < 1 {
		return fmt.Errorf("expected-hull-count %d out of range", cfg.ExpectedHullCount)
	}
	if cfg.MaxInteriorAngle <= 0 || cfg.MaxInteriorAngle > 180 {
		return fmt.Errorf("max-interior-angle %g out of range (0,180]", cfg.MaxInteriorAngle)
	}
	if cfg.VertexCount < 0 {
		return fmt.Errorf("vertex-count %d out of range", cfg.VertexCount)
	}
	return nil
}
