package infrastructure

import (
	"io"
	"os"
	"path/filepath"

	"github.com/eduardo/landingkit/internal/domain"
	"github.com/spf13/afero"
)

// FileSystem implements domain.FileSystemPort on top of an afero.Fs
type FileSystem struct {
	fs afero.Fs
}

func NewOSFileSystem() *FileSystem {
	return &FileSystem{fs: afero.NewOsFs()}
}

// NewMemFileSystem returns an in-memory filesystem, mostly for tests
func NewMemFileSystem() *FileSystem {
	return &FileSystem{fs: afero.NewMemMapFs()}
}

func NewFileSystem(fs afero.Fs) *FileSystem {
	return &FileSystem{fs: fs}
}

func (f *FileSystem) MkdirAll(path string) error {
	return f.fs.MkdirAll(path, 0755)
}

func (f *FileSystem) WriteFile(path string, data []byte) error {
	return afero.WriteFile(f.fs, path, data, 0644)
}

func (f *FileSystem) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(f.fs, path)
}

func (f *FileSystem) RemoveAll(path string) error {
	return f.fs.RemoveAll(path)
}

func (f *FileSystem) Remove(path string) error {
	return f.fs.Remove(path)
}

func (f *FileSystem) Stat(path string) (os.FileInfo, error) {
	return f.fs.Stat(path)
}

func (f *FileSystem) TempDir(prefix string) (string, error) {
	return afero.TempDir(f.fs, "", prefix)
}

func (f *FileSystem) Create(path string) (domain.WritableFile, error) {
	return f.fs.Create(path)
}

func (f *FileSystem) Open(path string) (io.ReadCloser, error) {
	return f.fs.Open(path)
}

func (f *FileSystem) Walk(root string, fn filepath.WalkFunc) error {
	return afero.Walk(f.fs, root, fn)
}
