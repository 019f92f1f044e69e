package domain

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// FileSystemPort defines the interface for file and directory operations
type FileSystemPort interface {
	MkdirAll(path string) error
	WriteFile(path string, data []byte) error
	ReadFile(path string) ([]byte, error)
	RemoveAll(path string) error
	Remove(path string) error
	Stat(path string) (os.FileInfo, error)
	TempDir(prefix string) (string, error)
	Create(path string) (WritableFile, error)
	Open(path string) (io.ReadCloser, error)
	Walk(root string, fn filepath.WalkFunc) error
}

// WritableFile is a file opened for writing
type WritableFile interface {
	io.WriteCloser
	Sync() error
}

// TemplatePort defines the interface for rendering templates
type TemplatePort interface {
	Render(name, tmpl string, data any) ([]byte, error)
}

// DraftParserPort reads a campaign draft from a local file
type DraftParserPort interface {
	Parse(filename string) (*CampaignDraft, error)
}

// DraftStorePort defines the persistence of campaign drafts
type DraftStorePort interface {
	Get(ctx context.Context, id string) (*CampaignDraft, error)
	List(ctx context.Context, limit int) ([]DraftSummary, error)
	Save(ctx context.Context, draft *CampaignDraft) (string, error)
}

// ArchiveStorePort uploads finished archives
type ArchiveStorePort interface {
	Upload(ctx context.Context, localPath, objectName string) (string, error)
}

// ThemeAssemblerPort resolves preset identifiers into a theme
type ThemeAssemblerPort interface {
	Assemble(ctx context.Context, cfg ThemeConfig) (Theme, error)
}

// SectionRegistryPort maps section names to dictionary keys
type SectionRegistryPort interface {
	DictionaryKey(section string) (string, bool)
}

// BuildServicePort defines the interface for the core build logic
type BuildServicePort interface {
	Build(ctx context.Context, req BuildRequest) (*BuildResult, error)
}
