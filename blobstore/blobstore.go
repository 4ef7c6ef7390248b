// Package blobstore holds uploaded media files.
package blobstore

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store writes and removes media objects by key. Put returns the public URL
// of the stored object.
type Store interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// NewKey builds a collision-free object key like "2024/05/<uuid>.png",
// keeping the lowercased extension of the original file name.
func NewKey(originalName string, now time.Time) string {
	ext := strings.ToLower(path.Ext(originalName))
	if len(ext) > 10 || strings.ContainsAny(ext, `/\ `) {
		ext = ""
	}
	return fmt.Sprintf("%s/%s%s", now.UTC().Format("2006/01"), uuid.NewString(), ext)
}

func publicURL(base, key string) string {
	return strings.TrimSuffix(base, "/") + "/" + key
}
