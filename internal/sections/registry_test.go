package sections

import (
	"testing"

	"github.com/eduardo/landingkit/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	t.Run("Should resolve known sections", func(t *testing.T) {
		key, ok := r.DictionaryKey("Hero")
		assert.True(t, ok)
		assert.Equal(t, "hero", key)
	})

	t.Run("Should not resolve unknown sections", func(t *testing.T) {
		_, ok := r.DictionaryKey("Carousel")
		assert.False(t, ok)
	})

	t.Run("Should validate layouts", func(t *testing.T) {
		assert.NoError(t, r.ValidateLayout([]domain.LayoutSection{{Name: "Hero"}, {Name: "Faq"}}))

		err := r.ValidateLayout([]domain.LayoutSection{{Name: "Hero"}, {Name: "Carousel"}})
		assert.ErrorIs(t, err, domain.ErrUnknownSection)
		assert.ErrorContains(t, err, `layout[1] "Carousel"`)
	})

	t.Run("Should not share state with the source map", func(t *testing.T) {
		src := map[string]string{"A": "a"}
		custom := NewRegistryFrom(src)
		src["B"] = "b"

		assert.Equal(t, []string{"A"}, custom.Names())
	})
}
