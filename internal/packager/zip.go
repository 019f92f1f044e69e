package packager

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/eduardo/landingkit/internal/domain"
	"github.com/eduardo/landingkit/internal/logger"
	"github.com/klauspost/compress/flate"
)

// Packager compresses a build directory into a single zip archive
type Packager struct {
	fs domain.FileSystemPort
}

func New(fs domain.FileSystemPort) *Packager {
	return &Packager{fs: fs}
}

// Zip writes every regular file under srcDir into outPath, named relative to
// srcDir. It returns once the archive is flushed, synced and closed. On error
// a partial file may be left at outPath; removing it is up to the caller.
func (p *Packager) Zip(ctx context.Context, srcDir, outPath, traceID string) (err error) {
	log := logger.FromContext(ctx).With("trace_id", traceID)
	started := time.Now()

	info, err := p.fs.Stat(srcDir)
	if err != nil {
		return fmt.Errorf("failed to stat source directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("source %s is not a directory", srcDir)
	}

	if err := p.fs.MkdirAll(filepath.Dir(outPath)); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}
	out, err := p.fs.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close archive: %w", closeErr)
		}
	}()

	zw := zip.NewWriter(out)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.BestCompression)
	})

	files := 0
	walkErr := p.fs.Walk(srcDir, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !fi.Mode().IsRegular() || filepath.Clean(path) == filepath.Clean(outPath) {
			return nil
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		if err := p.addFile(zw, path, filepath.ToSlash(rel), fi); err != nil {
			return fmt.Errorf("failed to add %s: %w", rel, err)
		}
		files++
		return nil
	})
	if walkErr != nil {
		_ = zw.Close()
		return walkErr
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	if err := out.Sync(); err != nil {
		return fmt.Errorf("failed to sync archive: %w", err)
	}

	log.Info("archive written", "path", outPath, "files", files, "duration", time.Since(started))
	return nil
}

func (p *Packager) addFile(zw *zip.Writer, path, name string, fi os.FileInfo) error {
	header, err := zip.FileInfoHeader(fi)
	if err != nil {
		return err
	}
	header.Name = name
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}
	src, err := p.fs.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	_, err = io.Copy(w, src)
	return err
}
