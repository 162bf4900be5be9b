// Package storage provides an abstraction layer for the run archive bucket.
//
// It wraps the MinIO Go client, which talks to both AWS S3 and self-hosted
// MinIO. Archiving is optional; when storage.enabled is false no client is
// created at all.
//
// # Client Interface
//
// The Client interface only carries the calls the archive makes, which keeps
// the testify mock in core/storage/mocks small.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	err = storage.EnsureBucket(ctx, client, config.Bucket, config.Region)
package storage
