package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/org-atlas/internal/config"
	"github.com/MKhiriev/org-atlas/internal/logger"
)

func TestNewStorages_FileBackendByDefault(t *testing.T) {
	cfg := config.Storage{
		State: config.State{FilePath: filepath.Join(t.TempDir(), "state.json")},
	}

	storages, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	chain, ok := storages.OverlayStore.(*chainStateStorage)
	require.True(t, ok)
	require.Len(t, chain.backends, 1)
	assert.IsType(t, &fileStateStorage{}, chain.backends[0])
}

func TestNewStorages_RemoteLeadsChain(t *testing.T) {
	cfg := config.Storage{
		State: config.State{FilePath: filepath.Join(t.TempDir(), "state.json")},
		Remote: config.Remote{
			URL:   "https://abc.supabase.co",
			Key:   "key",
			Table: "organization_overlays",
		},
	}

	storages, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	chain, ok := storages.OverlayStore.(*chainStateStorage)
	require.True(t, ok)
	require.Len(t, chain.backends, 2)
	assert.IsType(t, &remoteStateStorage{}, chain.backends[0])
	assert.IsType(t, &fileStateStorage{}, chain.backends[1])
}

func TestNewStorages_RemoteSkippedWhenHalfConfigured(t *testing.T) {
	tests := []struct {
		name   string
		remote config.Remote
	}{
		{"url only", config.Remote{URL: "https://abc.supabase.co"}},
		{"key only", config.Remote{Key: "key"}},
		{"neither", config.Remote{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Storage{
				State:  config.State{FilePath: filepath.Join(t.TempDir(), "state.json")},
				Remote: tt.remote,
			}

			storages, err := NewStorages(context.Background(), cfg, logger.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { _ = storages.Close() })

			chain, ok := storages.OverlayStore.(*chainStateStorage)
			require.True(t, ok)
			require.Len(t, chain.backends, 1)
			assert.IsType(t, &fileStateStorage{}, chain.backends[0])
		})
	}
}

func TestNewStorages_SQLiteBackendWhenDSNSet(t *testing.T) {
	cfg := config.Storage{
		State: config.State{SQLiteDSN: filepath.Join(t.TempDir(), "state.db")},
	}

	storages, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	chain, ok := storages.OverlayStore.(*chainStateStorage)
	require.True(t, ok)
	require.Len(t, chain.backends, 1)
	assert.IsType(t, &sqliteStateStorage{}, chain.backends[0])
}
