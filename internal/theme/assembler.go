package theme

import (
	"context"
	"sort"

	"github.com/eduardo/landingkit/internal/domain"
	"github.com/eduardo/landingkit/internal/logger"
)

// Assembler resolves draft preset identifiers against the built-in catalog
type Assembler struct{}

func NewAssembler() *Assembler {
	return &Assembler{}
}

// Assemble never fails on bad input: unknown presets fall back to DefaultPreset.
func (a *Assembler) Assemble(ctx context.Context, cfg domain.ThemeConfig) (domain.Theme, error) {
	log := logger.FromContext(ctx)
	return domain.Theme{
		Colors:   resolve(log, "color", colorPresets, cfg.ColorPreset),
		Fonts:    resolve(log, "font", fontPresets, cfg.FontPreset),
		Geometry: resolve(log, "radius", radiusPresets, cfg.RadiusPreset),
	}, nil
}

func resolve(log logger.Logger, kind string, catalog map[string]map[string]string, id string) map[string]any {
	preset, ok := catalog[id]
	if !ok {
		if id != "" {
			log.Warn("unknown theme preset, using default", "kind", kind, "preset", id)
		}
		preset = catalog[DefaultPreset]
	}
	out := make(map[string]any, len(preset))
	for k, v := range preset {
		out[k] = v
	}
	return out
}

// Presets lists the available preset identifiers per kind
func Presets() map[string][]string {
	return map[string][]string{
		"color":  names(colorPresets),
		"font":   names(fontPresets),
		"radius": names(radiusPresets),
	}
}

func names(catalog map[string]map[string]string) []string {
	out := make([]string, 0, len(catalog))
	for id := range catalog {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
