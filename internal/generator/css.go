package generator

import (
	"context"
	"fmt"
	"sort"

	"github.com/eduardo/landingkit/internal/domain"
)

// CSSVariables flattens the theme into custom property declarations:
// colors, then fonts, then geometry, keys sorted within each group.
// Only string values are emitted. Values are not escaped.
func CSSVariables(theme domain.Theme) []string {
	var decls []string
	for _, group := range []map[string]any{theme.Colors, theme.Fonts, theme.Geometry} {
		for _, key := range stringKeys(group) {
			decls = append(decls, fmt.Sprintf("--%s: %s;", key, group[key]))
		}
	}
	return decls
}

func (g *Generator) GenerateGlobalsCSS(_ context.Context, bc *domain.BuildContext) error {
	data := struct {
		Declarations     []string
		FontDeclarations []string
	}{
		Declarations:     CSSVariables(bc.Theme),
		FontDeclarations: FontDeclarations(bc.Theme),
	}
	return g.render(bc, GlobalsCSSPath, GlobalsCSSTemplate, data)
}

// stringKeys returns the sorted keys whose value is a string
func stringKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k, v := range m {
		if _, ok := v.(string); ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
