package storage_test

import (
	"testing"

	"hotel-indexer/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Bucket:    "test-bucket",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestObjectURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  storage.Config
		want string
	}{
		{"Endpoint", storage.Config{Endpoint: "http://localhost:9000", Bucket: "img"}, "http://localhost:9000/img/images/a.png"},
		{"SSL", storage.Config{Endpoint: "s3.example.com", Bucket: "img", UseSSL: true}, "https://s3.example.com/img/images/a.png"},
		{"PublicURL", storage.Config{PublicURL: "https://cdn.example.com/", Bucket: "img"}, "https://cdn.example.com/images/a.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, storage.ObjectURL(tt.cfg, "/images/a.png"))
		})
	}
}
