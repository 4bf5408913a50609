package cells

import (
	"testing"

	"github.com/matzehuels/cellstack/pkg/errors"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	want := []struct {
		id       string
		capacity float64
	}{
		{"very_high_power", 1.5},
		{"high_power", 2.6},
		{"balanced", 3.0},
		{"high_capacity", 3.5},
	}

	if c.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", c.Len(), len(want))
	}
	for i, s := range c.All() {
		if s.ID != want[i].id {
			t.Errorf("All()[%d].ID = %q, want %q", i, s.ID, want[i].id)
		}
		if s.Voltage != 3.7 {
			t.Errorf("%s voltage = %v, want 3.7", s.ID, s.Voltage)
		}
		if s.Capacity != want[i].capacity {
			t.Errorf("%s capacity = %v, want %v", s.ID, s.Capacity, want[i].capacity)
		}
		if err := s.Validate(); err != nil {
			t.Errorf("%s Validate() error = %v", s.ID, err)
		}
	}

	if _, ok := c.Lookup(DefaultID); !ok {
		t.Errorf("default id %q missing from catalog", DefaultID)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	c := Default()
	specs := c.All()
	specs[0].Voltage = 99

	if s, _ := c.Lookup(specs[0].ID); s.Voltage != 3.7 {
		t.Errorf("catalog mutated through All(): voltage = %v", s.Voltage)
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Default().Get("lifepo4")
	if err == nil {
		t.Fatal("Get(unknown) should fail")
	}
	if !errors.Is(err, errors.ErrCodeUnknownCell) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeUnknownCell)
	}
}

func TestNextPrev(t *testing.T) {
	c := Default()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"next middle", c.Next("high_power").ID, "balanced"},
		{"next wraps", c.Next("high_capacity").ID, "very_high_power"},
		{"prev wraps", c.Prev("very_high_power").ID, "high_capacity"},
		{"prev middle", c.Prev("balanced").ID, "high_power"},
		{"unknown", c.Next("nope").ID, "very_high_power"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}

	if (Catalog{}).Next("x") != (Spec{}) {
		t.Error("Next on empty catalog should return zero Spec")
	}
}

func TestWith(t *testing.T) {
	base := Default()

	t.Run("append", func(t *testing.T) {
		c, err := base.With(Spec{ID: "p42a", Voltage: 3.6, Capacity: 4.2})
		if err != nil {
			t.Fatalf("With() error = %v", err)
		}
		if c.Len() != base.Len()+1 {
			t.Errorf("Len() = %d, want %d", c.Len(), base.Len()+1)
		}
		s, _ := c.Lookup("p42a")
		if s.Name != "p42a" {
			t.Errorf("Name = %q, want id fallback", s.Name)
		}
		if base.Len() != 4 {
			t.Error("With() mutated the receiver")
		}
	})

	t.Run("replace", func(t *testing.T) {
		c, err := base.With(Spec{ID: "balanced", Name: "Balanced 3.2", Voltage: 3.7, Capacity: 3.2})
		if err != nil {
			t.Fatalf("With() error = %v", err)
		}
		if c.Len() != base.Len() {
			t.Errorf("Len() = %d, want %d", c.Len(), base.Len())
		}
		if s, _ := c.Lookup("balanced"); s.Capacity != 3.2 {
			t.Errorf("capacity = %v, want 3.2", s.Capacity)
		}
		if c.IDs()[2] != "balanced" {
			t.Errorf("replaced profile moved: %v", c.IDs())
		}
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := base.With(Spec{ID: "bad", Voltage: 0, Capacity: 3})
		if !errors.Is(err, errors.ErrCodeInvalidConfig) {
			t.Errorf("With(zero voltage) error = %v, want INVALID_CONFIG", err)
		}
	})
}

func TestSpecString(t *testing.T) {
	s, _ := Default().Lookup("balanced")
	if got, want := s.String(), "Balanced (3.0Ah) [3.7V 3.0Ah]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
