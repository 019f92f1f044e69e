package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/eduardo/landingkit/internal/domain"
)

// FontImport is a next/font/google loader emitted into the layout
type FontImport struct {
	Match   string   // Substring looked for in theme font values
	Import  string   // Export name in next/font/google
	Var     string   // Local variable name in the layout
	CSSVar  string   // Custom property set by the loader on <body>
	Weights []string // Required for fonts without a variable axis
}

var knownFonts = []FontImport{
	{Match: "Playfair Display", Import: "Playfair_Display", Var: "playfairDisplay", CSSVar: "--font-playfair-display"},
	{Match: "Open Sans", Import: "Open_Sans", Var: "openSans", CSSVar: "--font-open-sans"},
	{Match: "Merriweather", Import: "Merriweather", Var: "merriweather", CSSVar: "--font-merriweather", Weights: []string{"400", "700"}},
	{Match: "Montserrat", Import: "Montserrat", Var: "montserrat", CSSVar: "--font-montserrat"},
	{Match: "Poppins", Import: "Poppins", Var: "poppins", CSSVar: "--font-poppins", Weights: []string{"400", "600", "700"}},
	{Match: "Roboto", Import: "Roboto", Var: "roboto", CSSVar: "--font-roboto", Weights: []string{"400", "500", "700"}},
	{Match: "Inter", Import: "Inter", Var: "inter", CSSVar: "--font-inter"},
	{Match: "Lato", Import: "Lato", Var: "lato", CSSVar: "--font-lato", Weights: []string{"400", "700"}},
	{Match: "Lora", Import: "Lora", Var: "lora", CSSVar: "--font-lora"},
}

// DetectFonts returns the known fonts referenced by the theme's string font
// values, in font key order, without duplicates. Unrecognised fonts yield
// nothing.
func DetectFonts(theme domain.Theme) []FontImport {
	var found []FontImport
	seen := make(map[string]bool)
	for _, key := range stringKeys(theme.Fonts) {
		value := theme.Fonts[key].(string)
		for _, f := range knownFonts {
			if seen[f.Import] || !strings.Contains(value, f.Match) {
				continue
			}
			seen[f.Import] = true
			found = append(found, f)
		}
	}
	return found
}

// FontDeclarations rebinds every theme font key that names a known font to
// the loader's custom property, keeping the theme value as the fallback stack.
// They belong in the body rule, where the loader classes define the variables.
func FontDeclarations(theme domain.Theme) []string {
	var decls []string
	for _, key := range stringKeys(theme.Fonts) {
		value := theme.Fonts[key].(string)
		for _, f := range knownFonts {
			if strings.Contains(value, f.Match) {
				decls = append(decls, fmt.Sprintf("--%s: var(%s), %s;", key, f.CSSVar, value))
				break
			}
		}
	}
	return decls
}

func (g *Generator) GenerateLayout(_ context.Context, bc *domain.BuildContext) error {
	fonts := DetectFonts(bc.Theme)
	lang := "en"
	if len(bc.Locales) > 0 {
		lang = bc.Locales[0]
	}
	data := struct {
		Title         string
		Lang          string
		Fonts         []FontImport
		BodyClassName string
		Header        domain.Chrome
		Footer        domain.Chrome
	}{
		Title:         bc.Draft.CampaignName,
		Lang:          lang,
		Fonts:         fonts,
		BodyClassName: bodyClassName(fonts),
		Header:        bc.Draft.StructureConfig.Header,
		Footer:        bc.Draft.StructureConfig.Footer,
	}
	return g.render(bc, LayoutPath, LayoutTemplate, data)
}

// bodyClassName builds the JSX className attribute value for <body>
func bodyClassName(fonts []FontImport) string {
	if len(fonts) == 0 {
		return `"antialiased"`
	}
	parts := make([]string, 0, len(fonts)+1)
	for _, f := range fonts {
		parts = append(parts, f.Var+".variable")
	}
	parts = append(parts, `"antialiased"`)
	return "{[" + strings.Join(parts, ", ") + `].join(" ")}`
}
