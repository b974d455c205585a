// Package glove fetches pretrained word vector files at startup when they are
// not already on disk.
package glove

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/tsawler/word-vector-sim/internal/config"
)

// Ensure makes sure the configured vectors file exists. When it is missing,
// the configured zip archive is downloaded and the configured member is
// extracted next to the target path. A failure here is a fatal startup
// condition for the caller to act on; Ensure itself only returns the error.
func Ensure(ctx context.Context, cfg *config.VectorsConfig, logger *zap.Logger) error {
	if _, err := os.Stat(cfg.Path); err == nil {
		return nil
	}
	if cfg.DownloadURL == "" {
		return fmt.Errorf("vectors file %s not found and no download URL configured", cfg.Path)
	}

	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create vectors directory: %w", err)
	}

	zipPath := filepath.Join(dir, filepath.Base(cfg.DownloadURL))
	if _, err := os.Stat(zipPath); err != nil {
		if logger != nil {
			logger.Info("downloading vectors archive",
				zap.String("url", cfg.DownloadURL),
				zap.String("dest", zipPath),
			)
		}
		if err := download(ctx, cfg.DownloadURL, zipPath); err != nil {
			return err
		}
	}

	if logger != nil {
		logger.Info("extracting vectors file",
			zap.String("archive", zipPath),
			zap.String("member", cfg.ArchiveMember),
		)
	}
	return extractMember(zipPath, cfg.ArchiveMember, cfg.Path)
}

// download fetches url to dest, writing through a partial file so an
// interrupted download is never mistaken for a complete archive.
func download(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build download request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("download vectors archive: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download vectors archive: unexpected status %s", resp.Status)
	}

	partial := dest + ".partial"
	f, err := os.Create(partial)
	if err != nil {
		return fmt.Errorf("create download file: %w", err)
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(partial)
		return fmt.Errorf("write download file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(partial)
		return fmt.Errorf("close download file: %w", err)
	}
	return os.Rename(partial, dest)
}

// extractMember extracts the archive member whose base name matches member
// into dest.
func extractMember(zipPath, member, dest string) error {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return fmt.Errorf("open vectors archive: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if filepath.Base(f.Name) != member {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("open archive member %s: %w", member, err)
		}
		defer rc.Close()

		out, err := os.Create(dest)
		if err != nil {
			return fmt.Errorf("create vectors file: %w", err)
		}
		if _, err := io.Copy(out, rc); err != nil {
			out.Close()
			os.Remove(dest)
			return fmt.Errorf("extract vectors file: %w", err)
		}
		return out.Close()
	}
	return fmt.Errorf("member %s not found in %s", member, zipPath)
}
