package sections

import (
	"fmt"
	"sort"

	"github.com/eduardo/landingkit/internal/domain"
)

// Registry maps editor section names to the dictionary keys used by the
// generated site. It is immutable after construction.
type Registry struct {
	keys map[string]string
}

var defaultSections = map[string]string{
	"Hero":         "hero",
	"Features":     "features",
	"Benefits":     "benefits",
	"Testimonials": "testimonials",
	"Pricing":      "pricing",
	"Gallery":      "gallery",
	"Faq":          "faq",
	"Cta":          "cta",
	"Contact":      "contact",
	"Newsletter":   "newsletter",
	"Countdown":    "countdown",
	"Products":     "products",
}

// NewRegistry returns the built-in section registry
func NewRegistry() *Registry {
	return NewRegistryFrom(defaultSections)
}

// NewRegistryFrom copies keys into a new registry
func NewRegistryFrom(keys map[string]string) *Registry {
	cp := make(map[string]string, len(keys))
	for name, key := range keys {
		cp[name] = key
	}
	return &Registry{keys: cp}
}

func (r *Registry) DictionaryKey(section string) (string, bool) {
	key, ok := r.keys[section]
	return key, ok
}

// Names lists the known sections in alphabetical order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.keys))
	for name := range r.keys {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateLayout reports the first layout entry that is not a known section
func (r *Registry) ValidateLayout(layout []domain.LayoutSection) error {
	for i, s := range layout {
		if _, ok := r.keys[s.Name]; !ok {
			return fmt.Errorf("layout[%d] %q: %w", i, s.Name, domain.ErrUnknownSection)
		}
	}
	return nil
}
