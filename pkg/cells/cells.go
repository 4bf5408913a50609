// Package cells holds the catalog of cylindrical cell profiles a pack can be
// built from.
//
// A [Spec] is an immutable rating (nominal voltage and capacity). The
// [Default] catalog ships the four common 18650 profiles; additional profiles
// can be appended from the user's config file with [Catalog.With].
package cells

import (
	"fmt"
	"slices"

	"github.com/matzehuels/cellstack/pkg/errors"
)

// DefaultID is the profile selected when the user has not picked one.
const DefaultID = "balanced"

// Spec describes a single cell profile.
type Spec struct {
	ID       string  `json:"id" toml:"id"`
	Name     string  `json:"name" toml:"name"`
	Voltage  float64 `json:"voltage" toml:"voltage"`   // nominal volts
	Capacity float64 `json:"capacity" toml:"capacity"` // amp-hours
}

// Validate checks the id format and that both ratings are positive.
func (s Spec) Validate() error {
	if err := errors.ValidateCellID(s.ID); err != nil {
		return err
	}
	if err := errors.ValidatePositive("cell voltage", s.Voltage); err != nil {
		return err
	}
	return errors.ValidatePositive("cell capacity", s.Capacity)
}

// String returns the display name followed by the ratings.
func (s Spec) String() string {
	return fmt.Sprintf("%s [%.1fV %.1fAh]", s.Name, s.Voltage, s.Capacity)
}

// Catalog is an ordered list of profiles with unique ids.
type Catalog struct {
	specs []Spec
}

var defaultSpecs = []Spec{
	{ID: "very_high_power", Name: "Very High Power (1.5Ah)", Voltage: 3.7, Capacity: 1.5},
	{ID: "high_power", Name: "High Power (2.6Ah)", Voltage: 3.7, Capacity: 2.6},
	{ID: "balanced", Name: "Balanced (3.0Ah)", Voltage: 3.7, Capacity: 3.0},
	{ID: "high_capacity", Name: "High Capacity (3.5Ah)", Voltage: 3.7, Capacity: 3.5},
}

// Default returns the built-in 18650 catalog.
func Default() Catalog {
	return Catalog{specs: slices.Clone(defaultSpecs)}
}

// All returns a copy of the profiles in catalog order.
func (c Catalog) All() []Spec {
	return slices.Clone(c.specs)
}

// Len returns the number of profiles.
func (c Catalog) Len() int { return len(c.specs) }

// Lookup returns the profile with the given id.
func (c Catalog) Lookup(id string) (Spec, bool) {
	i := c.index(id)
	if i < 0 {
		return Spec{}, false
	}
	return c.specs[i], true
}

// Get is like Lookup but returns an UNKNOWN_CELL error listing valid ids.
func (c Catalog) Get(id string) (Spec, error) {
	if s, ok := c.Lookup(id); ok {
		return s, nil
	}
	return Spec{}, errors.New(errors.ErrCodeUnknownCell, "unknown cell profile %q (available: %v)", id, c.IDs())
}

// IDs returns the profile ids in catalog order.
func (c Catalog) IDs() []string {
	ids := make([]string, len(c.specs))
	for i, s := range c.specs {
		ids[i] = s.ID
	}
	return ids
}

// Next returns the profile after id, wrapping around. Unknown ids yield the
// first profile.
func (c Catalog) Next(id string) Spec {
	return c.step(id, 1)
}

// Prev returns the profile before id, wrapping around.
func (c Catalog) Prev(id string) Spec {
	return c.step(id, -1)
}

func (c Catalog) step(id string, delta int) Spec {
	if len(c.specs) == 0 {
		return Spec{}
	}
	i := c.index(id)
	if i < 0 {
		return c.specs[0]
	}
	n := len(c.specs)
	return c.specs[((i+delta)%n+n)%n]
}

// With returns a new catalog with extra appended. A profile whose id already
// exists replaces the existing entry in place. Every extra profile is
// validated; the receiver is never modified.
func (c Catalog) With(extra ...Spec) (Catalog, error) {
	out := Catalog{specs: slices.Clone(c.specs)}
	for _, s := range extra {
		if err := s.Validate(); err != nil {
			return Catalog{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cell profile %q", s.ID)
		}
		if s.Name == "" {
			s.Name = s.ID
		}
		if i := out.index(s.ID); i >= 0 {
			out.specs[i] = s
			continue
		}
		out.specs = append(out.specs, s)
	}
	return out, nil
}

func (c Catalog) index(id string) int {
	return slices.IndexFunc(c.specs, func(s Spec) bool { return s.ID == id })
}
