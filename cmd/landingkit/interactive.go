package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/eduardo/landingkit/internal/domain"
	"github.com/eduardo/landingkit/internal/infrastructure"
	"github.com/eduardo/landingkit/internal/parser"
	"github.com/eduardo/landingkit/internal/sections"
	"github.com/eduardo/landingkit/internal/theme"
	"github.com/gosimple/slug"
	"github.com/spf13/cobra"
)

func newInteractiveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Pick or create a draft and build it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := runInteractiveMode(cmd, opts)
			if err != nil {
				return err
			}
			return runBuild(cmd, opts, req)
		},
	}
}

func runInteractiveMode(cmd *cobra.Command, opts *rootOptions) (domain.BuildRequest, error) {
	var action string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Campaign Builder").
				Options(
					huh.NewOption("Create new draft", "create"),
					huh.NewOption("Select existing draft file", "select"),
					huh.NewOption("Select stored draft", "stored"),
				).
				Value(&action),
		),
	)

	if err := runForm(form); err != nil {
		return domain.BuildRequest{}, err
	}

	var req domain.BuildRequest
	var err error
	switch action {
	case "create":
		req.DraftFile, err = createNewDraft(cmd, opts)
	case "select":
		req.DraftFile, err = selectDraftFile()
	case "stored":
		req.DraftID, err = selectStoredDraft(cmd, opts)
	default:
		err = fmt.Errorf("invalid option")
	}
	if err != nil {
		return req, err
	}

	if err := promptOutput(&req); err != nil {
		return req, err
	}
	return req, nil
}

// runForm runs a huh form; replaced in tests
var runForm = func(form *huh.Form) error {
	return form.Run()
}

func promptOutput(req *domain.BuildRequest) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Archive path (empty for default)").
				Value(&req.OutputPath),
			huh.NewConfirm().
				Title("Upload archive to storage?").
				Value(&req.Upload),
		),
	)
	return runForm(form)
}

func createNewDraft(cmd *cobra.Command, opts *rootOptions) (string, error) {
	var (
		campaignName string
		layout       []string
		header       bool
		footer       bool
		colorPreset  string
		fontPreset   string
		radiusPreset string
	)

	presets := theme.Presets()
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Campaign Name").
				Value(&campaignName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("campaign name is required")
					}
					return nil
				}),
			huh.NewMultiSelect[string]().
				Title("Sections").
				Options(huh.NewOptions(sections.NewRegistry().Names()...)...).
				Value(&layout),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show header?").
				Value(&header),
			huh.NewConfirm().
				Title("Show footer?").
				Value(&footer),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color Preset").
				Options(huh.NewOptions(presets["color"]...)...).
				Value(&colorPreset),
			huh.NewSelect[string]().
				Title("Font Preset").
				Options(huh.NewOptions(presets["font"]...)...).
				Value(&fontPreset),
			huh.NewSelect[string]().
				Title("Radius Preset").
				Options(huh.NewOptions(presets["radius"]...)...).
				Value(&radiusPreset),
		),
	)

	if err := runForm(form); err != nil {
		return "", err
	}

	draft := &domain.CampaignDraft{
		CampaignName: strings.TrimSpace(campaignName),
		Origin:       domain.OriginScratch,
		StructureConfig: domain.StructureConfig{
			Header: domain.Chrome{Enabled: header},
			Footer: domain.Chrome{Enabled: footer},
		},
		ThemeConfig: domain.ThemeConfig{
			ColorPreset:  colorPreset,
			FontPreset:   fontPreset,
			RadiusPreset: radiusPreset,
		},
		ContentData: make(map[string]domain.LocalizedContent),
	}

	// Seed every section with a title per locale so the draft builds as is
	for _, name := range layout {
		draft.LayoutConfig = append(draft.LayoutConfig, domain.LayoutSection{Name: name})
		content := make(domain.LocalizedContent)
		for _, locale := range opts.cfg.Build.Locales {
			content[locale] = map[string]any{"title": name}
		}
		draft.ContentData[name] = content
	}

	data, err := parser.Render(draft)
	if err != nil {
		return "", err
	}

	filename := slug.Make(draft.CampaignName) + ".md"
	if err := infrastructure.NewOSFileSystem().WriteFile(filename, data); err != nil {
		return "", fmt.Errorf("failed to create draft file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", filename)
	return filename, nil
}

func selectDraftFile() (string, error) {
	var files []string
	for _, pattern := range []string{"*.md", "*.json"} {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return "", err
		}
		files = append(files, matches...)
	}

	if len(files) == 0 {
		return "", fmt.Errorf("no .md or .json files found in current directory")
	}

	var selectedFile string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select a draft").
				Options(huh.NewOptions(files...)...).
				Value(&selectedFile),
		),
	)

	if err := runForm(form); err != nil {
		return "", err
	}

	return selectedFile, nil
}

func selectStoredDraft(cmd *cobra.Command, opts *rootOptions) (string, error) {
	ctx := cmd.Context()
	r, err := opts.openRemote(ctx, infrastructure.NewOSFileSystem(), false)
	if err != nil {
		return "", err
	}
	defer r.Close()

	drafts, err := r.drafts.List(ctx, 50)
	if err != nil {
		return "", err
	}
	if len(drafts) == 0 {
		return "", errors.New("the draft store is empty")
	}

	var options []huh.Option[string]
	for _, d := range drafts {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", d.CampaignName, d.ID), d.ID))
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select a stored draft").
				Options(options...).
				Value(&selected),
		),
	)

	if err := runForm(form); err != nil {
		return "", err
	}

	return selected, nil
}
