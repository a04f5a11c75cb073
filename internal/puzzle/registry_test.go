package puzzle

import (
	"errors"
	"testing"
)

func constant(v any) Solution {
	return func(string) (any, error) { return v, nil }
}

func TestRegistry_DefaultVariant(t *testing.T) {
	reg := NewRegistry()

	mustRegister(t, reg, Puzzle{Key: Key{Day: 3, Part: 2, Variant: "geometric"}, Solve: constant("g")})
	mustRegister(t, reg, Puzzle{Key: Key{Day: 3, Part: 2, Variant: "grid"}, Solve: constant("r"), Default: true})

	p, err := reg.Get(Key{Day: 3, Part: 2})
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if p.Key.Variant != "grid" {
		t.Errorf("default variant = %q, want %q", p.Key.Variant, "grid")
	}
	if !p.Default {
		t.Error("expected resolved puzzle to be marked default")
	}

	p, err = reg.Get(Key{Day: 3, Part: 2, Variant: "geometric"})
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if p.Default {
		t.Error("geometric should not be the default")
	}
}

func TestRegistry_FirstRegisteredIsDefault(t *testing.T) {
	reg := NewRegistry()
	mustRegister(t, reg, Puzzle{Key: Key{Day: 5, Part: 1, Variant: "scan"}, Solve: constant(1)})
	mustRegister(t, reg, Puzzle{Key: Key{Day: 5, Part: 1, Variant: "split"}, Solve: constant(2)})

	p, err := reg.Get(Key{Day: 5, Part: 1})
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if p.Key.Variant != "scan" {
		t.Errorf("default variant = %q, want scan", p.Key.Variant)
	}

	if err := reg.SetDefault(Key{Day: 5, Part: 1, Variant: "split"}); err != nil {
		t.Fatalf("SetDefault() failed: %v", err)
	}
	p, _ = reg.Get(Key{Day: 5, Part: 1})
	if p.Key.Variant != "split" {
		t.Errorf("default variant after SetDefault = %q, want split", p.Key.Variant)
	}
}

func TestRegistry_Errors(t *testing.T) {
	reg := NewRegistry()
	mustRegister(t, reg, Puzzle{Key: Key{Day: 1, Part: 1}, Solve: constant(3)})

	if err := reg.Register(Puzzle{Key: Key{Day: 1, Part: 1}, Solve: constant(3)}); !errors.Is(err, ErrDuplicate) {
		t.Errorf("duplicate Register() error = %v, want ErrDuplicate", err)
	}
	if err := reg.Register(Puzzle{Key: Key{Day: 1, Part: 2}}); err == nil {
		t.Error("expected error for puzzle without solution")
	}
	if err := reg.Register(Puzzle{Key: Key{Day: 0, Part: 1}, Solve: constant(0)}); err == nil {
		t.Error("expected error for day 0")
	}
	if _, err := reg.Get(Key{Day: 9, Part: 1}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
	if _, err := reg.Get(Key{Day: 1, Part: 1, Variant: "nope"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
	if err := reg.SetDefault(Key{Day: 1, Part: 1, Variant: "nope"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetDefault() error = %v, want ErrNotFound", err)
	}
}

func TestRegistry_RemoveDefaultFallsBack(t *testing.T) {
	reg := NewRegistry()
	mustRegister(t, reg, Puzzle{Key: Key{Day: 3, Part: 2, Variant: "grid"}, Solve: constant(1)})
	mustRegister(t, reg, Puzzle{Key: Key{Day: 3, Part: 2, Variant: "geometric"}, Solve: constant(2)})

	if !reg.Remove(Key{Day: 3, Part: 2, Variant: "grid"}) {
		t.Fatal("Remove() returned false for a registered key")
	}
	if reg.Remove(Key{Day: 3, Part: 2, Variant: "grid"}) {
		t.Error("second Remove() should return false")
	}

	p, err := reg.Get(Key{Day: 3, Part: 2})
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if p.Key.Variant != "geometric" {
		t.Errorf("fallback default = %q, want geometric", p.Key.Variant)
	}

	reg.Remove(Key{Day: 3, Part: 2, Variant: "geometric"})
	if _, err := reg.Get(Key{Day: 3, Part: 2}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after removing all variants error = %v, want ErrNotFound", err)
	}
	if reg.Len() != 0 {
		t.Errorf("Len() = %d, want 0", reg.Len())
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	reg := NewRegistry()
	mustRegister(t, reg, Puzzle{Key: Key{Day: 2, Part: 1}, Solve: constant(0)})
	mustRegister(t, reg, Puzzle{Key: Key{Day: 1, Part: 2}, Solve: constant(0)})
	mustRegister(t, reg, Puzzle{Key: Key{Day: 1, Part: 1}, Solve: constant(0)})

	list := reg.List()
	want := []string{"day1/part1", "day1/part2", "day2/part1"}
	if len(list) != len(want) {
		t.Fatalf("List() returned %d puzzles, want %d", len(list), len(want))
	}
	for i, p := range list {
		if p.Key.String() != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, p.Key, want[i])
		}
		if !p.Default {
			t.Errorf("%s should be default", p.Key)
		}
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in      string
		want    Key
		wantErr bool
	}{
		{in: "3/2", want: Key{Day: 3, Part: 2}},
		{in: "3/2/geometric", want: Key{Day: 3, Part: 2, Variant: "geometric"}},
		{in: "day5/part1/split", want: Key{Day: 5, Part: 1, Variant: "split"}},
		{in: "3", wantErr: true},
		{in: "x/2", wantErr: true},
		{in: "3/y", wantErr: true},
		{in: "1/2/3/4", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKey(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseKey(%q) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKey(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseKey(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			if round, _ := ParseKey(got.String()); round != got {
				t.Errorf("String() does not round trip: %s", got)
			}
		})
	}
}

func TestInvalidf(t *testing.T) {
	err := Invalidf("line %d", 4)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Invalidf() should wrap ErrInvalidInput")
	}
	if err.Error() != "invalid input: line 4" {
		t.Errorf("Invalidf() message = %q", err.Error())
	}
}

func mustRegister(t *testing.T, reg *Registry, p Puzzle) {
	t.Helper()
	if err := reg.Register(p); err != nil {
		t.Fatalf("Register(%s) failed: %v", p.Key, err)
	}
}
