package filestore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"oilevels/logger"

	"github.com/google/uuid"
	"github.com/klauspost/pgzip"
)

// Store persists processed workbooks and derived reports under a dated
// export directory. It is an optional side channel: failures here never
// affect the bytes returned to the caller.
type Store struct {
	baseDir string
	log     *logger.Logger
}

func NewStore(baseDir string) *Store {
	return &Store{
		baseDir: baseDir,
		log:     logger.GetLogger(),
	}
}

// exportDir returns (creating if needed) today's export directory.
func (s *Store) exportDir() (string, error) {
	dir := filepath.Join(s.baseDir, time.Now().Format("20060102"))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	return dir, nil
}

// ArchiveWorkbook writes a gzip-compressed copy of a processed workbook
// and returns the archive path.
func (s *Store) ArchiveWorkbook(name string, data []byte) (string, error) {
	dir, err := s.exportDir()
	if err != nil {
		return "", err
	}

	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if base == "" {
		base = "workbook"
	}
	archivePath := filepath.Join(dir, fmt.Sprintf("%s_%s_%s.xlsx.gz",
		base,
		time.Now().Format("150405"),
		uuid.NewString()[:8],
	))

	file, err := os.Create(archivePath)
	if err != nil {
		return "", fmt.Errorf("failed to create archive file: %w", err)
	}
	defer file.Close()

	gzWriter := pgzip.NewWriter(file)
	if _, err := gzWriter.Write(data); err != nil {
		gzWriter.Close()
		return "", fmt.Errorf("failed to write archive: %w", err)
	}
	if err := gzWriter.Close(); err != nil {
		return "", fmt.Errorf("failed to finish archive: %w", err)
	}

	s.log.Info("Archived processed workbook", map[string]interface{}{
		"path":  archivePath,
		"bytes": len(data),
	})
	return archivePath, nil
}
