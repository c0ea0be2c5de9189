// Package storage publishes exported resume PDFs to S3-compatible object
// storage and hands out time-limited download links.
package storage

import (
	"context"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PutOptions describe an upload. Size is -1 when unknown.
type PutOptions struct {
	Size        int64
	ContentType string
	// Filename sets the Content-Disposition suggested to browsers.
	Filename string
	Metadata map[string]string
}

type ObjectInfo struct {
	Key         string
	Size        int64
	ETag        string
	ContentType string
	UploadedAt  time.Time
}

// Storage is safe for concurrent use.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (ObjectInfo, error)
	Delete(ctx context.Context, key string) error
	// PresignGet returns a URL valid for expiry that needs no credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// ExportKey builds a collision-free object key:
// exports/<owner>/<yyyy>/<mm>/<uuid>/<filename>.
func ExportKey(owner, filename string, now time.Time) string {
	if owner == "" {
		owner = "anonymous"
	}
	filename = strings.ReplaceAll(path.Base("/"+filename), " ", "_")
	if filename == "/" || filename == "." {
		filename = "resume.pdf"
	}
	return path.Join("exports", owner, now.UTC().Format("2006/01"), uuid.NewString(), filename)
}
