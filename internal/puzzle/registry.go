package puzzle

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
)

type dayPart struct {
	day  int
	part int
}

// Registry maps puzzle keys to solutions. Each day/part has one default
// variant which is used when a lookup leaves the variant empty.
type Registry struct {
	mu       sync.RWMutex
	puzzles  map[Key]Puzzle
	defaults map[dayPart]string
}

func NewRegistry() *Registry {
	return &Registry{
		puzzles:  make(map[Key]Puzzle),
		defaults: make(map[dayPart]string),
	}
}

// Register adds p. The first variant registered for a day/part becomes its
// default unless a later one sets Default.
func (r *Registry) Register(p Puzzle) error {
	if p.Solve == nil {
		return fmt.Errorf("puzzle %s has no solution", p.Key)
	}
	if p.Key.Day <= 0 || p.Key.Part <= 0 {
		return fmt.Errorf("puzzle %s: day and part must be positive", p.Key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.puzzles[p.Key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicate, p.Key)
	}
	r.puzzles[p.Key] = p

	dp := dayPart{p.Key.Day, p.Key.Part}
	if _, ok := r.defaults[dp]; !ok || p.Default {
		r.defaults[dp] = p.Key.Variant
	}
	return nil
}

// Get resolves key. An empty variant resolves to the default variant.
func (r *Registry) Get(key Key) (Puzzle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if key.Variant == "" {
		variant, ok := r.defaults[dayPart{key.Day, key.Part}]
		if !ok {
			return Puzzle{}, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		key.Variant = variant
	}

	p, ok := r.puzzles[key]
	if !ok {
		return Puzzle{}, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	p.Default = r.defaults[dayPart{key.Day, key.Part}] == key.Variant
	return p, nil
}

// SetDefault makes variant the default for its day/part.
func (r *Registry) SetDefault(key Key) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.puzzles[key]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	r.defaults[dayPart{key.Day, key.Part}] = key.Variant
	return nil
}

// Remove deletes key. When the removed variant was the default, the
// remaining variant that sorts first takes over.
func (r *Registry) Remove(key Key) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.puzzles[key]; !ok {
		return false
	}
	delete(r.puzzles, key)

	dp := dayPart{key.Day, key.Part}
	if r.defaults[dp] != key.Variant {
		return true
	}
	delete(r.defaults, dp)

	var remaining []string
	for k := range r.puzzles {
		if k.Day == key.Day && k.Part == key.Part {
			remaining = append(remaining, k.Variant)
		}
	}
	if len(remaining) > 0 {
		slices.Sort(remaining)
		r.defaults[dp] = remaining[0]
	}
	return true
}

// List returns every registered puzzle sorted by day, part and variant.
func (r *Registry) List() []Puzzle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]Puzzle, 0, len(r.puzzles))
	for key, p := range r.puzzles {
		p.Default = r.defaults[dayPart{key.Day, key.Part}] == key.Variant
		list = append(list, p)
	}

	slices.SortFunc(list, func(a, b Puzzle) int {
		return cmp.Or(
			cmp.Compare(a.Key.Day, b.Key.Day),
			cmp.Compare(a.Key.Part, b.Key.Part),
			cmp.Compare(a.Key.Variant, b.Key.Variant),
		)
	})
	return list
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.puzzles)
}
