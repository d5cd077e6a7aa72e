package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"meeting-followup/internal/app/util/files"
)

// LocalStore writes recordings into a flat directory with
// timestamp-prefixed names, the layout the tool has always used.
type LocalStore struct {
	baseDir string
	now     func() time.Time
}

// NewLocalStore creates the directory if needed.
func NewLocalStore(baseDir string) (*LocalStore, error) {
	if err := files.CheckAndCreateDirectory(baseDir); err != nil {
		return nil, err
	}
	return &LocalStore{baseDir: baseDir, now: time.Now}, nil
}

func (s *LocalStore) Save(ctx context.Context, r io.Reader, originalName string) (*StoredAudio, error) {
	if !files.IsSupportedAudio(originalName) {
		return nil, fmt.Errorf("unsupported audio format: %s", originalName)
	}

	name := fmt.Sprintf("%s_%s", s.now().Format("20060102_150405"), filepath.Base(originalName))
	path := filepath.Join(s.baseDir, name)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, r)
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to write audio file: %w", err)
	}

	return &StoredAudio{
		Key:        name,
		Name:       originalName,
		LocalPath:  path,
		Size:       size,
		UploadedAt: s.now(),
	}, nil
}

func (s *LocalStore) Delete(ctx context.Context, key string) error {
	path := filepath.Join(s.baseDir, filepath.Base(key))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove audio file: %w", err)
	}
	return nil
}
