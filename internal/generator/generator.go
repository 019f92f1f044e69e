package generator

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/eduardo/landingkit/internal/domain"
	"github.com/eduardo/landingkit/internal/pipeline"
)

// Step names, in the order Tasks returns them
const (
	StepPackageJSON    = "package.json"
	StepNextConfig     = "next.config"
	StepPostCSSConfig  = "postcss.config"
	StepTailwindConfig = "tailwind.config"
	StepLayout         = "app/layout"
	StepGlobalsCSS     = "app/globals.css"
	StepPage           = "app/page"
	StepContentJSON    = "content/content.json"
	StepThemeJSON      = "content/theme.json"
)

// Output paths relative to the build directory
const (
	PackageJSONPath    = "package.json"
	NextConfigPath     = "next.config.mjs"
	PostCSSConfigPath  = "postcss.config.mjs"
	TailwindConfigPath = "tailwind.config.ts"
	LayoutPath         = "app/layout.tsx"
	GlobalsCSSPath     = "app/globals.css"
	PagePath           = "app/page.tsx"
	ContentJSONPath    = "content/content.json"
	ThemeJSONPath      = "content/theme.json"
)

// Options configures the package.json generator
type Options struct {
	HostManifest    string   // Path of the host project's package.json
	DependencyAllow []string // Package names copied from the host manifest
}

// Generator writes the files of a static campaign site. Each method
// produces exactly one file and never reads another method's output.
type Generator struct {
	fs        domain.FileSystemPort
	templates domain.TemplatePort
	registry  domain.SectionRegistryPort
	opts      Options
}

func New(fs domain.FileSystemPort, templates domain.TemplatePort, registry domain.SectionRegistryPort, opts Options) *Generator {
	return &Generator{
		fs:        fs,
		templates: templates,
		registry:  registry,
		opts:      opts,
	}
}

// Tasks returns one pipeline task per generated file
func (g *Generator) Tasks() []pipeline.Task[*domain.BuildContext] {
	return []pipeline.Task[*domain.BuildContext]{
		{Name: StepPackageJSON, Execute: g.GeneratePackageJSON},
		{Name: StepNextConfig, Execute: g.GenerateNextConfig},
		{Name: StepPostCSSConfig, Execute: g.GeneratePostCSSConfig},
		{Name: StepTailwindConfig, Execute: g.GenerateTailwindConfig},
		{Name: StepLayout, Execute: g.GenerateLayout},
		{Name: StepGlobalsCSS, Execute: g.GenerateGlobalsCSS},
		{Name: StepPage, Execute: g.GeneratePage},
		{Name: StepContentJSON, Execute: g.GenerateContentJSON},
		{Name: StepThemeJSON, Execute: g.GenerateThemeJSON},
	}
}

// Pipeline wires Tasks into a new pipeline over bc
func (g *Generator) Pipeline(bc *domain.BuildContext, opts ...pipeline.Option[*domain.BuildContext]) *pipeline.Pipeline[*domain.BuildContext] {
	p := pipeline.New(bc, opts...)
	for _, task := range g.Tasks() {
		p.AddTask(task)
	}
	return p
}

// writeFile writes data to rel under the build directory, creating parents
func (g *Generator) writeFile(bc *domain.BuildContext, rel string, data []byte) error {
	path := filepath.Join(bc.TempDir, filepath.FromSlash(rel))
	if err := g.fs.MkdirAll(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", rel, err)
	}
	if err := g.fs.WriteFile(path, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", rel, err)
	}
	return nil
}

// render executes a template and writes the result to rel
func (g *Generator) render(bc *domain.BuildContext, rel, tmpl string, data any) error {
	out, err := g.templates.Render(rel, tmpl, data)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", rel, err)
	}
	return g.writeFile(bc, rel, out)
}

func (g *Generator) GenerateNextConfig(_ context.Context, bc *domain.BuildContext) error {
	return g.render(bc, NextConfigPath, NextConfigTemplate, nil)
}

func (g *Generator) GeneratePostCSSConfig(_ context.Context, bc *domain.BuildContext) error {
	return g.render(bc, PostCSSConfigPath, PostCSSConfigTemplate, nil)
}

func (g *Generator) GenerateTailwindConfig(_ context.Context, bc *domain.BuildContext) error {
	data := struct {
		Colors []string
		Fonts  []string
	}{
		Colors: stringKeys(bc.Theme.Colors),
		Fonts:  stringKeys(bc.Theme.Fonts),
	}
	return g.render(bc, TailwindConfigPath, TailwindConfigTemplate, data)
}

type pageSection struct {
	Name string
	Key  string
}

func (g *Generator) GeneratePage(_ context.Context, bc *domain.BuildContext) error {
	seen := make(map[string]bool)
	var sections []pageSection
	for _, s := range bc.Draft.LayoutConfig {
		if seen[s.Name] {
			continue
		}
		key, ok := g.registry.DictionaryKey(s.Name)
		if !ok {
			continue
		}
		seen[s.Name] = true
		sections = append(sections, pageSection{Name: s.Name, Key: key})
	}
	defaultLocale := ""
	if len(bc.Locales) > 0 {
		defaultLocale = bc.Locales[0]
	}
	data := struct {
		DefaultLocale string
		Sections      []pageSection
	}{
		DefaultLocale: defaultLocale,
		Sections:      sections,
	}
	return g.render(bc, PagePath, PageTemplate, data)
}
