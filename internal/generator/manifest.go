package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/eduardo/landingkit/internal/domain"
	"github.com/eduardo/landingkit/internal/logger"
	"github.com/gosimple/slug"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Manifest is the package.json of the generated site
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private"`
	Scripts         ManifestScripts   `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

type ManifestScripts struct {
	Dev   string `json:"dev"`
	Build string `json:"build"`
	Start string `json:"start"`
}

// FilterManifest copies the dependencies and devDependencies of the host
// manifest whose names are in keep. Everything else is dropped.
func FilterManifest(host []byte, keep map[string]bool) (deps, devDeps map[string]string, err error) {
	if !gjson.ValidBytes(host) {
		return nil, nil, fmt.Errorf("host manifest is not valid JSON")
	}
	pick := func(path string) map[string]string {
		out := make(map[string]string)
		gjson.GetBytes(host, path).ForEach(func(name, version gjson.Result) bool {
			if keep[name.String()] {
				out[name.String()] = version.String()
			}
			return true
		})
		return out
	}
	return pick("dependencies"), pick("devDependencies"), nil
}

var importPattern = regexp.MustCompile(`(?m)(?:\bfrom\s+|\bimport\s+|\brequire\()["']([^"']+)["']`)

// ScanImports returns the bare package names imported by the given sources.
// Relative and alias ("@/") imports are ignored.
func ScanImports(sources ...string) []string {
	set := make(map[string]bool)
	for _, src := range sources {
		for _, m := range importPattern.FindAllStringSubmatch(src, -1) {
			if name := packageName(m[1]); name != "" {
				set[name] = true
			}
		}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// packageName reduces an import path to its package: "next/font/google" -> "next",
// "@scope/pkg/sub" -> "@scope/pkg"
func packageName(imp string) string {
	if strings.HasPrefix(imp, ".") || strings.HasPrefix(imp, "/") || strings.HasPrefix(imp, "@/") {
		return ""
	}
	parts := strings.Split(imp, "/")
	if strings.HasPrefix(imp, "@") {
		if len(parts) < 2 {
			return ""
		}
		return parts[0] + "/" + parts[1]
	}
	return parts[0]
}

// templateImports lists the packages the generated sources import
func templateImports() []string {
	return ScanImports(
		NextConfigTemplate,
		PostCSSConfigTemplate,
		TailwindConfigTemplate,
		LayoutTemplate,
		PageTemplate,
	)
}

func (g *Generator) GeneratePackageJSON(ctx context.Context, bc *domain.BuildContext) error {
	log := logger.FromContext(ctx)
	host, err := g.fs.ReadFile(g.opts.HostManifest)
	if err != nil {
		return fmt.Errorf("failed to read host manifest: %w", err)
	}

	keep := make(map[string]bool)
	for _, name := range g.opts.DependencyAllow {
		keep[name] = true
	}
	imported := templateImports()
	for _, name := range imported {
		keep[name] = true
	}

	deps, devDeps, err := FilterManifest(host, keep)
	if err != nil {
		return err
	}
	for _, name := range imported {
		if _, ok := deps[name]; ok {
			continue
		}
		if _, ok := devDeps[name]; ok {
			continue
		}
		log.Warn("generated code imports a package missing from the host manifest", "package", name)
	}

	manifest := Manifest{
		Name:    projectName(bc.Draft),
		Version: "0.1.0",
		Private: true,
		Scripts: ManifestScripts{
			Dev:   "next dev",
			Build: "next build",
			Start: "next start",
		},
		Dependencies:    deps,
		DevDependencies: devDeps,
	}
	data, err := json.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("failed to encode package.json: %w", err)
	}
	return g.writeFile(bc, PackageJSONPath, pretty.Pretty(data))
}

func projectName(draft *domain.CampaignDraft) string {
	if name := slug.Make(draft.CampaignName); name != "" {
		return name
	}
	return "campaign-site"
}
