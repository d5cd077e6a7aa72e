package storage

import (
	"context"
	"io"
	"os"
	"time"
)

// StoredAudio identifies one persisted recording. LocalPath always
// points at a readable file because transcription reads from disk; Key
// is the handle used to delete the recording after a successful send.
type StoredAudio struct {
	Key        string
	Name       string
	LocalPath  string
	Size       int64
	UploadedAt time.Time
}

// AudioStore persists uploaded meeting recordings until the follow-up
// email is sent.
type AudioStore interface {
	Save(ctx context.Context, r io.Reader, originalName string) (*StoredAudio, error)
	Delete(ctx context.Context, key string) error
}

// NewFromEnv selects the backend from STORAGE_BACKEND: "minio" for the
// shared object store, anything else for the local audio_files directory.
func NewFromEnv(baseDir string) (AudioStore, error) {
	if os.Getenv("STORAGE_BACKEND") == "minio" {
		return NewMinioStore()
	}
	return NewLocalStore(baseDir)
}
