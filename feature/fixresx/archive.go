package fixresx

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"path/filepath"

	"fixresx/core/storage"

	"github.com/minio/minio-go/v7"
)

// RunLogObject is the object name of the archived run log.
const RunLogObject = "FixResx.log"

// Archive uploads the results of a run to object storage.
type Archive struct {
	client storage.Client
	bucket string
	region string
	prefix string
}

// NewArchive creates an Archive writing to the bucket in cfg.
func NewArchive(client storage.Client, cfg storage.Config) *Archive {
	return &Archive{
		client: client,
		bucket: cfg.Bucket,
		region: cfg.Region,
		prefix: cfg.Prefix,
	}
}

// keyPrefix returns "<prefix>/<base>/" with forward slashes.
func (a *Archive) keyPrefix(base string) string {
	return path.Join(a.prefix, filepath.ToSlash(base)) + "/"
}

// ObjectKey returns the key of file within a run.
func (a *Archive) ObjectKey(base, runID, file string) string {
	return a.keyPrefix(base) + runID + "/" + file
}

// Store uploads the rewritten resx and the run log, returning the object keys.
func (a *Archive) Store(ctx context.Context, base, runID string, resx []byte, runLog string) ([]string, error) {
	if err := storage.EnsureBucket(ctx, a.client, a.bucket, a.region); err != nil {
		return nil, err
	}

	uploads := []struct {
		name        string
		data        []byte
		contentType string
	}{
		{path.Base(filepath.ToSlash(base)) + ".resx", resx, "application/xml"},
		{RunLogObject, []byte(runLog), "text/plain; charset=utf-8"},
	}

	keys := make([]string, 0, len(uploads))
	for _, u := range uploads {
		key := a.ObjectKey(base, runID, u.name)
		_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(u.data), int64(len(u.data)),
			minio.PutObjectOptions{ContentType: u.contentType})
		if err != nil {
			return keys, fmt.Errorf("failed to upload %s: %w", key, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// List returns the keys archived for base across all runs.
func (a *Archive) List(ctx context.Context, base string) ([]string, error) {
	opts := minio.ListObjectsOptions{
		Prefix:    a.keyPrefix(base),
		Recursive: true,
	}

	keys := []string{}
	for obj := range a.client.ListObjects(ctx, a.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list archive: %w", obj.Err)
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}
