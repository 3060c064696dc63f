package resolution

import (
	"fmt"
	"slices"
	"strings"
)

// Custom selects explicit dimensions instead of a named bucket.
const Custom = "custom"

// Orientation picks which side of a bucket is the long one.
type Orientation string

const (
	Landscape Orientation = "Landscape"
	Profile   Orientation = "Profile"
)

// ParseOrientation accepts the orientation names case-insensitively, plus
// "portrait" as an alias for Profile. Empty means Landscape.
func ParseOrientation(v string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "landscape":
		return Landscape, nil
	case "profile", "portrait":
		return Profile, nil
	default:
		return "", fmt.Errorf("resolution: unknown orientation %q", v)
	}
}

// Bucket is a named base resolution, stored in landscape form.
type Bucket struct {
	Name   string `yaml:"name" toml:"name" json:"name"`
	Width  int    `yaml:"width" toml:"width" json:"width"`
	Height int    `yaml:"height" toml:"height" json:"height"`
}

func (b Bucket) validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("%w: bucket without a name", ErrInvalidDimensions)
	}
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: bucket %q has size %dx%d", ErrInvalidDimensions, b.Name, b.Width, b.Height)
	}
	return nil
}

var defaultBuckets = []Bucket{
	{Name: "1:1", Width: 1024, Height: 1024},
	{Name: "5:4", Width: 1120, Height: 896},
	{Name: "4:3", Width: 1152, Height: 864},
	{Name: "3:2", Width: 1248, Height: 832},
	{Name: "16:9", Width: 1344, Height: 768},
	{Name: "21:9", Width: 1536, Height: 640},
}

// Table maps bucket names to base resolutions. The zero value is empty;
// use DefaultTable for the built-in buckets.
type Table struct {
	buckets map[string]Bucket
	order   []string
}

// DefaultTable returns a fresh table holding the built-in buckets.
func DefaultTable() *Table {
	t := &Table{}
	for _, b := range defaultBuckets {
		t.put(b)
	}
	return t
}

func (t *Table) put(b Bucket) {
	if t.buckets == nil {
		t.buckets = make(map[string]Bucket)
	}
	if _, exists := t.buckets[b.Name]; !exists {
		t.order = append(t.order, b.Name)
	}
	t.buckets[b.Name] = b
}

// Add inserts or replaces buckets. Nothing is added if any bucket is invalid.
func (t *Table) Add(buckets ...Bucket) error {
	for _, b := range buckets {
		if err := b.validate(); err != nil {
			return err
		}
		if strings.EqualFold(b.Name, Custom) {
			return fmt.Errorf("%w: %q is reserved", ErrInvalidDimensions, Custom)
		}
	}
	for _, b := range buckets {
		t.put(b)
	}
	return nil
}

// Get returns the named bucket.
func (t *Table) Get(name string) (Bucket, bool) {
	b, ok := t.buckets[strings.TrimSpace(name)]
	return b, ok
}

// Names lists bucket names in insertion order.
func (t *Table) Names() []string {
	return slices.Clone(t.order)
}
