package category

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by Lookup for keys outside the registry.
var ErrNotFound = errors.New("category not found")

// Descriptor maps a category key to its dataset and display title.
type Descriptor struct {
	Key        string `json:"key" yaml:"key"`
	DatasetRef string `json:"dataset_ref" yaml:"dataset_ref"`
	Title      string `json:"title" yaml:"title"`
}

// Registry is an immutable, ordered set of category descriptors.
// Build it once at startup and pass it to the components that need it.
type Registry struct {
	order []string
	byKey map[string]Descriptor
}

// NewRegistry validates descs and builds a Registry preserving their order.
func NewRegistry(descs ...Descriptor) (*Registry, error) {
	r := &Registry{byKey: make(map[string]Descriptor, len(descs))}
	for _, d := range descs {
		if strings.TrimSpace(d.Key) == "" {
			return nil, fmt.Errorf("category: empty key")
		}
		if d.DatasetRef == "" {
			return nil, fmt.Errorf("category %q: empty dataset ref", d.Key)
		}
		if _, dup := r.byKey[d.Key]; dup {
			return nil, fmt.Errorf("category %q: duplicate key", d.Key)
		}
		r.byKey[d.Key] = d
		r.order = append(r.order, d.Key)
	}
	return r, nil
}

// Default returns the built-in category table.
func Default() *Registry {
	r, err := NewRegistry(
		Descriptor{Key: "vlogs", DatasetRef: "CAvideos.csv", Title: "Vlogs: Explore Personal Stories"},
		Descriptor{Key: "travel", DatasetRef: "USvideos.csv", Title: "Travel: Discover New Places"},
		Descriptor{Key: "food", DatasetRef: "GBvideos.csv", Title: "Food: Culinary Delights"},
		Descriptor{Key: "entertainment", DatasetRef: "xAvideos.csv", Title: "Entertainment: Fun and Laughter"},
		Descriptor{Key: "songs", DatasetRef: "CAvideos.csv", Title: "Songs: The Power of Music"},
	)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup resolves key exactly (case-sensitive).
func (r *Registry) Lookup(key string) (Descriptor, error) {
	d, ok := r.byKey[key]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return d, nil
}

// Keys returns the category keys in declaration order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// All returns a copy of the descriptors in declaration order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.byKey[k])
	}
	return out
}

// Len reports the number of categories.
func (r *Registry) Len() int { return len(r.order) }
