package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
)

// Archiver stores immutable snapshots of accepted submissions. Archiving is
// best-effort: the intake transaction has already committed by the time a
// snapshot is written.
type Archiver interface {
	// Store writes a snapshot under the given key
	Store(ctx context.Context, key string, data io.Reader) error

	// Load retrieves a snapshot by key
	Load(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a snapshot by key
	Delete(ctx context.Context, key string) error
}

// ArchiveType represents the archive backend type
type ArchiveType string

const (
	ArchiveTypeLocal ArchiveType = "local"
	ArchiveTypeS3    ArchiveType = "s3"
	ArchiveTypeNone  ArchiveType = "none"
)

// ArchiveConfig holds configuration for the archive backend
type ArchiveConfig struct {
	Type         ArchiveType
	LocalPath    string // For local archives
	S3Bucket     string // For S3 archives
	S3Region     string // For S3 archives
	AWSAccessKey string
	AWSSecretKey string
}

// NewArchiver creates an archive backend from configuration. A nil Archiver
// with a nil error means archiving is disabled.
func NewArchiver(cfg ArchiveConfig) (Archiver, error) {
	switch cfg.Type {
	case ArchiveTypeLocal:
		return NewLocalArchive(cfg.LocalPath)
	case ArchiveTypeS3:
		return NewS3Archive(cfg)
	case ArchiveTypeNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown archive type: %s", cfg.Type)
	}
}

// NewArchiverFromEnv creates an archive backend from environment variables
func NewArchiverFromEnv() (Archiver, error) {
	archiveType := os.Getenv("ARCHIVE_TYPE")
	if archiveType == "" {
		archiveType = "local" // Default to local for development
	}

	cfg := ArchiveConfig{
		Type: ArchiveType(archiveType),
	}

	switch cfg.Type {
	case ArchiveTypeLocal:
		localPath := os.Getenv("ARCHIVE_LOCAL_PATH")
		if localPath == "" {
			localPath = "./archive/submissions"
		}
		cfg.LocalPath = localPath
		return NewLocalArchive(cfg.LocalPath)

	case ArchiveTypeS3:
		cfg.S3Bucket = os.Getenv("AWS_S3_BUCKET")
		cfg.S3Region = os.Getenv("AWS_REGION")
		if cfg.S3Region == "" {
			cfg.S3Region = "us-east-1"
		}
		cfg.AWSAccessKey = os.Getenv("AWS_ACCESS_KEY_ID")
		cfg.AWSSecretKey = os.Getenv("AWS_SECRET_ACCESS_KEY")

		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET environment variable is required for S3 archiving")
		}

		return NewS3Archive(cfg)

	case ArchiveTypeNone:
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown archive type: %s", archiveType)
	}
}

// SubmissionKey builds the archive key for a submission snapshot. Keys are
// partitioned by month so buckets stay listable.
func SubmissionKey(submittedAt time.Time, userToolID int64) string {
	return fmt.Sprintf("submissions/%s/ut_%d_%s.json",
		submittedAt.UTC().Format("2006/01"), userToolID, uuid.New().String())
}
