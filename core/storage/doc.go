// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide the small surface the media feature
// and the integrity checks need. This abstraction supports both AWS S3 and
// self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "hotel-images")
//	url := storage.ObjectURL(config, "images/room.png")
package storage
