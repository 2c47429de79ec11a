package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"file-converter/internal/domain"
)

// StorageService owns the uploads and results areas on disk. Inputs are
// staged under sanitized names; outputs are written by the converters
// and retained until the sweep removes them.
type StorageService struct {
	uploadDir string
	resultDir string
	logger    domain.Logger
}

// NewStorageService creates both staging areas if absent.
func NewStorageService(uploadDir, resultDir string, logger domain.Logger) (*StorageService, error) {
	for _, dir := range []string{uploadDir, resultDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return &StorageService{
		uploadDir: uploadDir,
		resultDir: resultDir,
		logger:    logger,
	}, nil
}

// StageUpload writes an uploaded payload into the uploads area under a
// sanitized name and returns the staged path.
func (s *StorageService) StageUpload(upload domain.Upload) (string, error) {
	name := SanitizeFilename(upload.Filename)
	if name == "" {
		return "", domain.ErrNoFileProvided
	}
	path := filepath.Join(s.uploadDir, name)
	if err := os.WriteFile(path, upload.Data, 0o644); err != nil {
		return "", fmt.Errorf("failed to stage upload %s: %w", name, err)
	}
	return path, nil
}

// ResultPath returns the path in the results area for an output name.
func (s *StorageService) ResultPath(name string) string {
	return filepath.Join(s.resultDir, SanitizeFilename(name))
}

// Sweep removes staged files older than ttl from both areas. A zero or
// negative ttl disables sweeping.
func (s *StorageService) Sweep(ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	cutoff := time.Now().Add(-ttl)
	for _, dir := range []string{s.uploadDir, s.resultDir} {
		entries, err := os.ReadDir(dir)
		if err != nil {
			s.logger.Error("Sweep failed to read directory", err, "dir", dir)
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				continue
			}
			if info.ModTime().Before(cutoff) {
				path := filepath.Join(dir, entry.Name())
				if err := os.Remove(path); err != nil {
					s.logger.Error("Sweep failed to remove file", err, "path", path)
					continue
				}
				s.logger.Debug("Swept stale artifact", "path", path)
			}
		}
	}
}

// RunSweeper sweeps on every interval tick until stop is closed.
func (s *StorageService) RunSweeper(ttl, interval time.Duration, stop <-chan struct{}) {
	if ttl <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.Sweep(ttl)
		case <-stop:
			return
		}
	}
}

// SanitizeFilename reduces a client-supplied file name to a safe base
// name: directory components are dropped and path-hostile characters
// are replaced with underscores.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	if name == "." || name == "/" {
		return ""
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	cleaned := strings.Trim(b.String(), "._")
	if cleaned == "" {
		return ""
	}
	return cleaned
}
