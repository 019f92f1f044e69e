package generator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/eduardo/landingkit/internal/domain"
	"github.com/eduardo/landingkit/internal/infrastructure"
	"github.com/eduardo/landingkit/internal/sections"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hostManifest = `{
  "name": "portal",
  "dependencies": {"next": "14.0.0", "left-pad": "1.0.0", "react": "18.2.0"},
  "devDependencies": {"tailwindcss": "3.4.1", "eslint": "8.0.0"}
}`

func newTestGenerator(t *testing.T, fs *infrastructure.FileSystem) *Generator {
	t.Helper()
	require.NoError(t, fs.WriteFile("/host/package.json", []byte(hostManifest)))
	return New(fs, infrastructure.NewGoTemplateEngine(), sections.NewRegistry(), Options{
		HostManifest:    "/host/package.json",
		DependencyAllow: []string{"next", "react"},
	})
}

func newBuildContext() *domain.BuildContext {
	return &domain.BuildContext{
		Draft: &domain.CampaignDraft{
			ID:           "d1",
			CampaignName: "Summer Sale 2025",
			StructureConfig: domain.StructureConfig{
				Header: domain.Chrome{Enabled: true, Component: "simple"},
			},
			LayoutConfig: []domain.LayoutSection{{Name: "Hero"}, {Name: "Faq"}},
			ContentData: map[string]domain.LocalizedContent{
				"Hero": {"en": {"title": "Hi"}},
			},
		},
		Theme: domain.Theme{
			Colors:   map[string]any{"primary": "#2563eb", "background": "#ffffff"},
			Fonts:    map[string]any{"sans": "Inter, sans-serif", "heading": "Playfair Display, serif"},
			Geometry: map[string]any{"radius": "0.5rem"},
		},
		TempDir: "/build/d1",
		Locales: []string{"en", "es"},
		TraceID: "trace",
	}
}

func readFile(t *testing.T, fs *infrastructure.FileSystem, bc *domain.BuildContext, rel string) string {
	t.Helper()
	data, err := fs.ReadFile(filepath.Join(bc.TempDir, rel))
	require.NoError(t, err)
	return string(data)
}

func TestGenerator_Tasks(t *testing.T) {
	t.Run("Should list one task per artifact in a fixed order", func(t *testing.T) {
		g := New(nil, nil, nil, Options{})

		var names []string
		for _, task := range g.Tasks() {
			names = append(names, task.Name)
		}

		assert.Equal(t, []string{
			StepPackageJSON, StepNextConfig, StepPostCSSConfig, StepTailwindConfig,
			StepLayout, StepGlobalsCSS, StepPage, StepContentJSON, StepThemeJSON,
		}, names)
	})

	t.Run("Should write every artifact through the pipeline", func(t *testing.T) {
		fs := infrastructure.NewMemFileSystem()
		g := newTestGenerator(t, fs)
		bc := newBuildContext()

		res := g.Pipeline(bc).Run(context.Background(), bc.TraceID)

		require.True(t, res.Success, res.Error)
		for _, rel := range []string{
			PackageJSONPath, NextConfigPath, PostCSSConfigPath, TailwindConfigPath,
			LayoutPath, GlobalsCSSPath, PagePath, ContentJSONPath, ThemeJSONPath,
		} {
			_, err := fs.Stat(filepath.Join(bc.TempDir, rel))
			assert.NoError(t, err, rel)
		}
	})

	t.Run("Should attribute a write failure to its step", func(t *testing.T) {
		mem := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(mem, "/host/package.json", []byte(hostManifest), 0644))
		fs := infrastructure.NewFileSystem(afero.NewReadOnlyFs(mem))
		g := New(fs, infrastructure.NewGoTemplateEngine(), sections.NewRegistry(), Options{
			HostManifest: "/host/package.json",
		})

		res := g.Pipeline(newBuildContext()).Run(context.Background(), "trace")

		assert.False(t, res.Success)
		assert.Equal(t, StepPackageJSON, res.FailedStep)
		assert.Contains(t, res.Error, "Fallo en el paso: package.json. Detalles:")
	})

	t.Run("Should overwrite files on a second build into the same directory", func(t *testing.T) {
		fs := infrastructure.NewMemFileSystem()
		g := newTestGenerator(t, fs)
		bc := newBuildContext()
		require.True(t, g.Pipeline(bc).Run(context.Background(), "").Success)

		bc.Draft.LayoutConfig = []domain.LayoutSection{{Name: "Faq"}}
		require.True(t, g.Pipeline(bc).Run(context.Background(), "").Success)

		assert.JSONEq(t, `{"layout":{"sections":[{"name":"Faq"}]}}`, readFile(t, fs, bc, ThemeJSONPath))
	})
}

func TestGenerator_GeneratePackageJSON(t *testing.T) {
	t.Run("Should keep allow-listed and imported packages only", func(t *testing.T) {
		fs := infrastructure.NewMemFileSystem()
		g := newTestGenerator(t, fs)
		bc := newBuildContext()

		require.NoError(t, g.GeneratePackageJSON(context.Background(), bc))

		assert.JSONEq(t, `{
			"name": "summer-sale-2025",
			"version": "0.1.0",
			"private": true,
			"scripts": {"dev": "next dev", "build": "next build", "start": "next start"},
			"dependencies": {"next": "14.0.0", "react": "18.2.0"},
			"devDependencies": {"tailwindcss": "3.4.1"}
		}`, readFile(t, fs, bc, PackageJSONPath))
	})

	t.Run("Should propagate a missing host manifest", func(t *testing.T) {
		fs := infrastructure.NewMemFileSystem()
		g := New(fs, infrastructure.NewGoTemplateEngine(), sections.NewRegistry(), Options{HostManifest: "/nope.json"})

		err := g.GeneratePackageJSON(context.Background(), newBuildContext())

		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Should fall back to a default project name", func(t *testing.T) {
		assert.Equal(t, "campaign-site", projectName(&domain.CampaignDraft{CampaignName: "!!!"}))
	})
}

func TestFilterManifest(t *testing.T) {
	t.Run("Should drop packages outside the allow-list", func(t *testing.T) {
		host := []byte(`{"dependencies": {"next": "14.0.0", "left-pad": "1.0.0"}}`)

		deps, devDeps, err := FilterManifest(host, map[string]bool{"next": true})

		require.NoError(t, err)
		assert.Equal(t, map[string]string{"next": "14.0.0"}, deps)
		assert.Empty(t, devDeps)
	})

	t.Run("Should reject invalid JSON", func(t *testing.T) {
		_, _, err := FilterManifest([]byte(`{"dependencies":`), nil)

		assert.Error(t, err)
	})
}

func TestScanImports(t *testing.T) {
	src := `import type { Metadata } from "next";
import { Inter } from "next/font/google";
import "./globals.css";
import Button from "@/components/button";
import { motion } from '@scope/motion/dist';
const x = require("clsx");`

	assert.Equal(t, []string{"@scope/motion", "clsx", "next"}, ScanImports(src))
}

func TestTemplateImports(t *testing.T) {
	assert.Equal(t, []string{"next", "tailwindcss"}, templateImports())
}

func TestGenerator_GenerateLayout(t *testing.T) {
	t.Run("Should import detected fonts and render chrome", func(t *testing.T) {
		fs := infrastructure.NewMemFileSystem()
		g := newTestGenerator(t, fs)
		bc := newBuildContext()

		require.NoError(t, g.GenerateLayout(context.Background(), bc))

		out := readFile(t, fs, bc, LayoutPath)
		assert.Contains(t, out, `import { Playfair_Display } from "next/font/google";`)
		assert.Contains(t, out, `import { Inter } from "next/font/google";`)
		assert.Contains(t, out, `variable: "--font-playfair-display",`)
		assert.Contains(t, out, `<html lang={ "en" }>`)
		assert.Contains(t, out, `<body className={[playfairDisplay.variable, inter.variable, "antialiased"].join(" ")}>`)
		assert.Contains(t, out, `<header className="site-header" data-variant={ "simple" }>`)
		assert.NotContains(t, out, "<footer")
	})

	t.Run("Should emit draft strings as JS expressions", func(t *testing.T) {
		fs := infrastructure.NewMemFileSystem()
		g := newTestGenerator(t, fs)
		bc := newBuildContext()
		bc.Draft.CampaignName = "Sale\nprocess.exit(1);"
		bc.Draft.StructureConfig.Header.Component = `a"b`

		require.NoError(t, g.GenerateLayout(context.Background(), bc))

		out := readFile(t, fs, bc, LayoutPath)
		assert.Contains(t, out, `data-variant={ "a\"b" }>`)
		assert.Contains(t, out, `title: "Sale\nprocess.exit(1);",`)
		assert.NotContains(t, out, "\nprocess.exit(1);")
	})

	t.Run("Should emit no font import for unknown fonts", func(t *testing.T) {
		fs := infrastructure.NewMemFileSystem()
		g := newTestGenerator(t, fs)
		bc := newBuildContext()
		bc.Theme.Fonts = map[string]any{"sans": "system-ui, sans-serif"}

		require.NoError(t, g.GenerateLayout(context.Background(), bc))

		out := readFile(t, fs, bc, LayoutPath)
		assert.NotContains(t, out, "next/font/google")
		assert.Contains(t, out, `<body className="antialiased">`)
	})
}

func TestDetectFonts(t *testing.T) {
	t.Run("Should detect once per font in key order", func(t *testing.T) {
		fonts := DetectFonts(domain.Theme{Fonts: map[string]any{
			"sans":    "Roboto, sans-serif",
			"heading": "Merriweather, serif",
			"mono":    "Roboto, monospace",
			"size":    16,
		}})

		require.Len(t, fonts, 2)
		assert.Equal(t, "Merriweather", fonts[0].Import)
		assert.Equal(t, "Roboto", fonts[1].Import)
	})

	t.Run("Should return nothing for unknown fonts", func(t *testing.T) {
		assert.Empty(t, DetectFonts(domain.Theme{Fonts: map[string]any{"sans": "Comic Neue"}}))
	})
}

func TestFontDeclarations(t *testing.T) {
	t.Run("Should point known fonts at their loader variable", func(t *testing.T) {
		decls := FontDeclarations(domain.Theme{Fonts: map[string]any{
			"sans":    "Inter, sans-serif",
			"heading": "Playfair Display, serif",
			"mono":    "ui-monospace, monospace",
			"size":    16,
		}})

		assert.Equal(t, []string{
			"--heading: var(--font-playfair-display), Playfair Display, serif;",
			"--sans: var(--font-inter), Inter, sans-serif;",
		}, decls)
	})

	t.Run("Should match the variable the layout loads", func(t *testing.T) {
		fs := infrastructure.NewMemFileSystem()
		g := newTestGenerator(t, fs)
		bc := newBuildContext()

		require.NoError(t, g.GenerateLayout(context.Background(), bc))

		layout := readFile(t, fs, bc, LayoutPath)
		for _, f := range DetectFonts(bc.Theme) {
			assert.Contains(t, layout, `variable: "`+f.CSSVar+`",`)
		}
	})
}

func TestGenerator_StaticFiles(t *testing.T) {
	fs := infrastructure.NewMemFileSystem()
	g := newTestGenerator(t, fs)
	bc := newBuildContext()
	ctx := context.Background()

	require.NoError(t, g.GenerateNextConfig(ctx, bc))
	require.NoError(t, g.GeneratePostCSSConfig(ctx, bc))
	require.NoError(t, g.GenerateTailwindConfig(ctx, bc))
	require.NoError(t, g.GeneratePage(ctx, bc))

	nextConfig := readFile(t, fs, bc, NextConfigPath)
	assert.Contains(t, nextConfig, `output: "export",`)
	assert.NotContains(t, nextConfig, bc.Draft.CampaignName)
	assert.Contains(t, readFile(t, fs, bc, PostCSSConfigPath), "autoprefixer: {},")

	tailwind := readFile(t, fs, bc, TailwindConfigPath)
	assert.Contains(t, tailwind, `"background": "var(--background)",`)
	assert.Contains(t, tailwind, `"primary": "var(--primary)",`)
	assert.Contains(t, tailwind, `"heading": ["var(--heading)"],`)

	page := readFile(t, fs, bc, PagePath)
	assert.Contains(t, page, `const DEFAULT_LOCALE = "en";`)
	assert.Contains(t, page, `"Hero": "hero",`)
	assert.Contains(t, page, `"Faq": "faq",`)
}
