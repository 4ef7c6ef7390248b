package blobstore

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKey(t *testing.T) {
	now := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)
	key := NewKey("Schematic.PNG", now)
	assert.Regexp(t, regexp.MustCompile(`^2024/05/[0-9a-f-]{36}\.png$`), key)

	assert.NotContains(t, NewKey("noext", now), ".")
	assert.NotEqual(t, NewKey("a.png", now), NewKey("a.png", now))
}

func TestDiskStoreRoundTrip(t *testing.T) {
	root := t.TempDir()
	store, err := NewDiskStore(root, "/media")
	require.NoError(t, err)

	ctx := context.Background()
	url, err := store.Put(ctx, "2024/05/board.txt", strings.NewReader("pcb"), 3, "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "/media/2024/05/board.txt", url)

	data, err := os.ReadFile(filepath.Join(root, "2024", "05", "board.txt"))
	require.NoError(t, err)
	assert.Equal(t, "pcb", string(data))

	rec := httptest.NewRecorder()
	store.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/media/2024/05/board.txt", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pcb", rec.Body.String())

	require.NoError(t, store.Delete(ctx, "2024/05/board.txt"))
	_, err = os.Stat(filepath.Join(root, "2024", "05", "board.txt"))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, store.Delete(ctx, "2024/05/board.txt"))
}

func TestDiskStoreRejectsEscapingKeys(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "/media")
	require.NoError(t, err)

	_, err = store.Put(context.Background(), "../outside.txt", strings.NewReader("x"), 1, "text/plain")
	assert.Error(t, err)
	assert.Error(t, store.Delete(context.Background(), "/etc/passwd"))
}

func TestDiskStoreShortWrite(t *testing.T) {
	root := t.TempDir()
	store, err := NewDiskStore(root, "/media")
	require.NoError(t, err)

	_, err = store.Put(context.Background(), "a.bin", strings.NewReader("ab"), 5, "application/octet-stream")
	assert.Error(t, err)
	_, statErr := os.Stat(filepath.Join(root, "a.bin"))
	assert.True(t, os.IsNotExist(statErr))
}

type fakeS3 struct {
	puts    []*s3.PutObjectInput
	deletes []*s3.DeleteObjectInput
	err     error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if _, err := io.ReadAll(in.Body); err != nil {
		return nil, err
	}
	f.puts = append(f.puts, in)
	return &s3.PutObjectOutput{}, f.err
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deletes = append(f.deletes, in)
	return &s3.DeleteObjectOutput{}, f.err
}

func TestS3Store(t *testing.T) {
	fake := &fakeS3{}
	store := NewS3Store(aws.Config{Region: "us-east-1"}, "media-bucket", "")
	store.client = fake

	url, err := store.Put(context.Background(), "2024/05/x.png", strings.NewReader("img"), 3, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://media-bucket.s3.us-east-1.amazonaws.com/2024/05/x.png", url)
	require.Len(t, fake.puts, 1)
	assert.Equal(t, "media-bucket", aws.ToString(fake.puts[0].Bucket))
	assert.Equal(t, "image/png", aws.ToString(fake.puts[0].ContentType))
	assert.Equal(t, int64(3), aws.ToInt64(fake.puts[0].ContentLength))

	require.NoError(t, store.Delete(context.Background(), "2024/05/x.png"))
	require.Len(t, fake.deletes, 1)
	assert.Equal(t, "2024/05/x.png", aws.ToString(fake.deletes[0].Key))

	fake.err = errors.New("access denied")
	_, err = store.Put(context.Background(), "k", strings.NewReader(""), 0, "text/plain")
	assert.ErrorContains(t, err, "access denied")
}
