package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// DiskStore keeps objects under a local directory and serves them itself.
type DiskStore struct {
	root    string
	baseURL string
	files   http.Handler
}

// NewDiskStore stores objects under root. baseURL is the path prefix the
// store is mounted at, e.g. "/media".
func NewDiskStore(root, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &DiskStore{
		root:    root,
		baseURL: baseURL,
		files:   http.StripPrefix(baseURL, http.FileServer(http.Dir(root))),
	}, nil
}

func (d *DiskStore) path(key string) (string, error) {
	if !filepath.IsLocal(key) {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return filepath.Join(d.root, filepath.FromSlash(key)), nil
}

func (d *DiskStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	p, err := d.path(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(p)
	if err != nil {
		return "", err
	}
	written, err := io.Copy(f, body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil && size >= 0 && written != size {
		err = fmt.Errorf("short write: %d of %d bytes", written, size)
	}
	if err != nil {
		_ = os.Remove(p)
		return "", err
	}

	return publicURL(d.baseURL, key), nil
}

// Delete removes the object; a missing object is not an error.
func (d *DiskStore) Delete(ctx context.Context, key string) error {
	p, err := d.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// MountPath is where ServeHTTP expects to be mounted.
func (d *DiskStore) MountPath() string {
	return d.baseURL
}

func (d *DiskStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.files.ServeHTTP(w, r)
}
