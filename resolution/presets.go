package resolution

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// presetFile is the on-disk layout for both formats:
//
//	[[bucket]]
//	name = "cinema"
//	width = 1600
//	height = 672
type presetFile struct {
	Buckets []Bucket `yaml:"buckets" toml:"bucket"`
}

// LoadPresets reads extra buckets from a .yaml, .yml or .toml file.
func LoadPresets(path string) ([]Bucket, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}

	var raw presetFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrInvalidPresets, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrInvalidPresets, path, err)
	}

	for i := range raw.Buckets {
		raw.Buckets[i].Name = strings.TrimSpace(raw.Buckets[i].Name)
		if err := raw.Buckets[i].validate(); err != nil {
			return nil, fmt.Errorf("%w: %s entry %d: %v", ErrInvalidPresets, path, i, err)
		}
	}
	return raw.Buckets, nil
}

// TableWithPresets returns the default table extended by the preset file at
// path. An empty path yields the default table.
func TableWithPresets(path string) (*Table, error) {
	t := DefaultTable()
	if path == "" {
		return t, nil
	}
	buckets, err := LoadPresets(path)
	if err != nil {
		return nil, err
	}
	if err := t.Add(buckets...); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPresets, err)
	}
	return t, nil
}
