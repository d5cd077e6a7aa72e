package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"meeting-followup/internal/app/util/files"
)

// MinioStore keeps recordings in an object bucket for shared
// deployments. The Whisper client reads from disk, so each Save also
// spools the recording to a temp file; Delete removes both copies.
type MinioStore struct {
	client  *minio.Client
	bucket  string
	tempDir string
}

// NewMinioStore reads connection settings from the environment.
func NewMinioStore() (*MinioStore, error) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		endpoint = "localhost:9000"
	}

	accessKey := os.Getenv("MINIO_ACCESS_KEY")
	if accessKey == "" {
		accessKey = "minioadmin"
	}

	secretKey := os.Getenv("MINIO_SECRET_KEY")
	if secretKey == "" {
		secretKey = "minioadmin"
	}

	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "followup-recordings"
	}

	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	tempDir := filepath.Join(os.TempDir(), "followup-audio")
	if err := files.CheckAndCreateDirectory(tempDir); err != nil {
		return nil, err
	}

	return &MinioStore{
		client:  client,
		bucket:  bucket,
		tempDir: tempDir,
	}, nil
}

func (s *MinioStore) Save(ctx context.Context, r io.Reader, originalName string) (*StoredAudio, error) {
	if !files.IsSupportedAudio(originalName) {
		return nil, fmt.Errorf("unsupported audio format: %s", originalName)
	}

	key := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(originalName))
	localPath := filepath.Join(s.tempDir, key)

	dst, err := os.Create(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp audio file: %w", err)
	}
	size, err := io.Copy(dst, r)
	dst.Close()
	if err != nil {
		os.Remove(localPath)
		return nil, fmt.Errorf("failed to spool audio file: %w", err)
	}

	src, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to reopen temp audio file: %w", err)
	}
	defer src.Close()

	_, err = s.client.PutObject(ctx, s.bucket, key, src, size, minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		os.Remove(localPath)
		return nil, fmt.Errorf("failed to upload audio to bucket: %w", err)
	}

	return &StoredAudio{
		Key:        key,
		Name:       originalName,
		LocalPath:  localPath,
		Size:       size,
		UploadedAt: time.Now(),
	}, nil
}

func (s *MinioStore) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove audio from bucket: %w", err)
	}
	localPath := filepath.Join(s.tempDir, filepath.Base(key))
	if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove temp audio file: %w", err)
	}
	return nil
}
