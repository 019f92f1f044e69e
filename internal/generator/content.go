package generator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eduardo/landingkit/internal/domain"
	"github.com/eduardo/landingkit/internal/logger"
)

// Dictionary is the generated site's content: locale -> dictionary key -> fields
type Dictionary map[string]map[string]map[string]any

// TransformContent walks locales in the given order and, within each locale,
// the draft layout in order. Sections without content for a locale are left
// out, and a locale with no content at all is absent from the result.
// Unknown section names are skipped. Two different section names resolving
// to the same dictionary key in one locale is ErrDictionaryKeyCollision.
func TransformContent(draft *domain.CampaignDraft, locales []string, registry domain.SectionRegistryPort) (Dictionary, error) {
	out := make(Dictionary)
	for _, locale := range locales {
		owners := make(map[string]string)
		for _, section := range draft.LayoutConfig {
			fields, ok := draft.ContentData[section.Name][locale]
			if !ok {
				continue
			}
			key, ok := registry.DictionaryKey(section.Name)
			if !ok {
				continue
			}
			if owner, taken := owners[key]; taken {
				if owner != section.Name {
					return nil, fmt.Errorf("sections %q and %q both map to %q in locale %s: %w",
						owner, section.Name, key, locale, domain.ErrDictionaryKeyCollision)
				}
				continue
			}
			owners[key] = section.Name
			if out[locale] == nil {
				out[locale] = make(map[string]map[string]any)
			}
			out[locale][key] = fields
		}
	}
	return out, nil
}

func (g *Generator) GenerateContentJSON(ctx context.Context, bc *domain.BuildContext) error {
	dict, err := TransformContent(bc.Draft, bc.Locales, g.registry)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Debug("content transformed", "locales", len(dict))
	data, err := json.MarshalIndent(dict, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode content: %w", err)
	}
	return g.writeFile(bc, ContentJSONPath, data)
}

type themeFile struct {
	Layout themeLayout `json:"layout"`
}

type themeLayout struct {
	Sections []domain.LayoutSection `json:"sections"`
}

// GenerateThemeJSON copies the layout order verbatim; the generated page
// renders sections in exactly this order.
func (g *Generator) GenerateThemeJSON(_ context.Context, bc *domain.BuildContext) error {
	sections := bc.Draft.LayoutConfig
	if sections == nil {
		sections = []domain.LayoutSection{}
	}
	data, err := json.MarshalIndent(themeFile{Layout: themeLayout{Sections: sections}}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode theme: %w", err)
	}
	return g.writeFile(bc, ThemeJSONPath, data)
}
