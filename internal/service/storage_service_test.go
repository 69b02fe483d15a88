package service

import (
	"devquiz_backend/internal/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorageService_Local(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage = config.StorageConfig{Type: "local", LocalPath: t.TempDir()}

	svc := NewStorageService(cfg)
	_, ok := svc.Provider.(*LocalStorageProvider)
	assert.True(t, ok)
}

func TestNewStorageService_MinioFallsBackToLocal(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage = config.StorageConfig{
		Type:          "minio",
		LocalPath:     t.TempDir(),
		MinioEndpoint: "not a valid endpoint",
	}

	svc := NewStorageService(cfg)
	require.NotNil(t, svc.Provider)
	_, ok := svc.Provider.(*LocalStorageProvider)
	assert.True(t, ok, "broken MinIO config must fall back to local storage")
}

func TestLocalStorageProvider_GetURL(t *testing.T) {
	p := &LocalStorageProvider{Config: &config.StorageConfig{LocalPath: "uploads"}}
	assert.Equal(t, "/uploads/avatar.png", p.GetURL("avatar.png"))
}
