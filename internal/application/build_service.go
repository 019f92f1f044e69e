package application

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/eduardo/landingkit/internal/config"
	"github.com/eduardo/landingkit/internal/domain"
	"github.com/eduardo/landingkit/internal/generator"
	"github.com/eduardo/landingkit/internal/logger"
	"github.com/eduardo/landingkit/internal/packager"
	"github.com/eduardo/landingkit/internal/pipeline"
	"github.com/eduardo/landingkit/internal/theme"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// StepPackage names the packaging step in a BuildError
const StepPackage = "package"

// LayoutValidator checks that every section of a layout is registered
type LayoutValidator interface {
	domain.SectionRegistryPort
	ValidateLayout(layout []domain.LayoutSection) error
}

// Dependencies groups the adapters used by BuildService. Store and Archives
// may be nil when drafts are read from files and nothing is uploaded.
type Dependencies struct {
	FS        domain.FileSystemPort
	Parser    domain.DraftParserPort
	Store     domain.DraftStorePort
	Archives  domain.ArchiveStorePort
	Themes    domain.ThemeAssemblerPort
	Sections  LayoutValidator
	Generator *generator.Generator
	Packager  *packager.Packager
}

// BuildService implements domain.BuildServicePort
type BuildService struct {
	deps     Dependencies
	cfg      config.Build
	validate *validator.Validate
	newID    func() string
}

func NewBuildService(deps Dependencies, cfg config.Build) *BuildService {
	return &BuildService{
		deps:     deps,
		cfg:      cfg,
		validate: validator.New(),
		newID:    uuid.NewString,
	}
}

// Build turns one draft into a zip archive. The build directory is removed
// on every path unless req.KeepTemp is set.
func (s *BuildService) Build(ctx context.Context, req domain.BuildRequest) (*domain.BuildResult, error) {
	if req.Upload && s.deps.Archives == nil {
		return nil, errors.New("archive store is not configured")
	}

	traceID := s.newID()
	log := logger.FromContext(ctx).With("trace_id", traceID)

	draft, err := s.resolveDraft(ctx, req)
	if err != nil {
		return nil, err
	}
	s.enrichDraft(draft)
	if err := s.validateDraft(draft, log); err != nil {
		return nil, err
	}

	assembled, err := s.deps.Themes.Assemble(ctx, draft.ThemeConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble theme: %w", err)
	}

	name := archiveName(draft)
	tempDir, err := s.deps.FS.TempDir(fmt.Sprintf("%s%s-%s-", s.cfg.TempPrefix, name, traceID))
	if err != nil {
		return nil, fmt.Errorf("failed to create build directory: %w", err)
	}
	result := &domain.BuildResult{TraceID: traceID, DraftID: draft.ID}
	if req.KeepTemp {
		result.TempDir = tempDir
	} else {
		defer func() {
			if err := s.deps.FS.RemoveAll(tempDir); err != nil {
				log.Warn("failed to remove build directory", "dir", tempDir, "err", err)
			}
		}()
	}

	log.Info("build started", "draft", draft.ID, "campaign", draft.CampaignName, "dir", tempDir)
	bc := &domain.BuildContext{
		Draft:   draft,
		Theme:   assembled,
		TempDir: tempDir,
		Locales: s.cfg.Locales,
		TraceID: traceID,
	}
	p := s.deps.Generator.Pipeline(bc, pipeline.WithLogger[*domain.BuildContext](logger.FromContext(ctx)))
	var res pipeline.Result
	if s.cfg.ConcurrentTasks {
		res = p.RunConcurrent(ctx, traceID)
	} else {
		res = p.Run(ctx, traceID)
	}
	if !res.Success {
		return nil, &domain.BuildError{TraceID: traceID, Step: res.FailedStep, Message: res.Error}
	}

	outPath := req.OutputPath
	if outPath == "" {
		dir := req.OutputDir
		if dir == "" {
			dir = s.cfg.OutputDir
		}
		outPath = filepath.Join(dir, fmt.Sprintf("%s-%s.zip", name, shortID(traceID)))
	}
	if err := s.deps.Packager.Zip(ctx, tempDir, outPath, traceID); err != nil {
		if rmErr := s.deps.FS.Remove(outPath); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			log.Warn("failed to remove partial archive", "path", outPath, "err", rmErr)
		}
		return nil, &domain.BuildError{TraceID: traceID, Step: StepPackage, Message: err.Error()}
	}
	result.ArchivePath = outPath

	if req.Upload {
		url, err := s.deps.Archives.Upload(ctx, outPath, filepath.Base(outPath))
		if err != nil {
			return result, fmt.Errorf("archive written to %s but upload failed: %w", outPath, err)
		}
		result.ObjectURL = url
	}

	log.Info("build completed", "archive", outPath, "object", result.ObjectURL)
	return result, nil
}

func (s *BuildService) resolveDraft(ctx context.Context, req domain.BuildRequest) (*domain.CampaignDraft, error) {
	switch {
	case req.DraftFile != "":
		draft, err := s.deps.Parser.Parse(req.DraftFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read draft %s: %w", req.DraftFile, err)
		}
		return draft, nil
	case req.DraftID != "":
		if s.deps.Store == nil {
			return nil, errors.New("draft store is not configured")
		}
		return s.deps.Store.Get(ctx, req.DraftID)
	default:
		return nil, errors.New("a draft file or a draft id is required")
	}
}

func (s *BuildService) enrichDraft(draft *domain.CampaignDraft) {
	if draft.Origin == "" {
		draft.Origin = domain.OriginScratch
	}
	s.enrichStructure(draft)
	s.enrichTheme(draft)
}

func (s *BuildService) enrichStructure(draft *domain.CampaignDraft) {
	header := &draft.StructureConfig.Header
	if header.Enabled && header.Component == "" {
		header.Component = s.cfg.DefaultHeader
	}
	footer := &draft.StructureConfig.Footer
	if footer.Enabled && footer.Component == "" {
		footer.Component = s.cfg.DefaultFooter
	}
}

func (s *BuildService) enrichTheme(draft *domain.CampaignDraft) {
	tc := &draft.ThemeConfig
	if tc.ColorPreset == "" {
		tc.ColorPreset = theme.DefaultPreset
	}
	if tc.FontPreset == "" {
		tc.FontPreset = theme.DefaultPreset
	}
	if tc.RadiusPreset == "" {
		tc.RadiusPreset = theme.DefaultPreset
	}
}

// validateDraft rejects malformed drafts. Unregistered sections are only
// reported; the generators leave them out of the site.
func (s *BuildService) validateDraft(draft *domain.CampaignDraft, log logger.Logger) error {
	if err := s.validate.Struct(draft); err != nil {
		return fmt.Errorf("invalid draft %s: %w", draft.ID, err)
	}
	if err := s.deps.Sections.ValidateLayout(draft.LayoutConfig); err != nil {
		log.Warn("layout references unregistered sections", "err", err)
	}
	return nil
}

func archiveName(draft *domain.CampaignDraft) string {
	if name := slug.Make(draft.CampaignName); name != "" {
		return name
	}
	return "campaign"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
