package configwatcher

import (
	"devquiz_backend/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, path, mode string) {
	t.Helper()
	content := "server:\n  port: \"8080\"\n  mode: " + mode + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestWatchConfig_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, "release")

	reloaded := make(chan *config.Config, 1)
	go WatchConfig(path, func(cfg *config.Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	})

	// give the watcher time to register before touching the file
	time.Sleep(200 * time.Millisecond)
	writeConfig(t, path, "debug")

	select {
	case cfg := <-reloaded:
		assert.Equal(t, "debug", cfg.Server.Mode)
	case <-time.After(5 * time.Second):
		t.Fatal("config reload never fired")
	}
}

func TestWatchConfig_MissingFileReturns(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "config.yaml")
	done := make(chan struct{})
	go func() {
		WatchConfig(missing, func(*config.Config) {
			t.Error("reload must not fire for a missing file")
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not return on a missing config file")
	}
}
