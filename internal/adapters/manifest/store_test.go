package manifest_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.trai.ch/nodepack/internal/adapters/manifest"
	"go.trai.ch/nodepack/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	tmpDir := t.TempDir()
	storePath := filepath.Join(tmpDir, "nodepack_state.json")

	store, err := manifest.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	record := domain.BuildRecord{
		OutFile:      "out",
		EntryPoint:   "/src/index.js",
		BundleDigest: "00000000deadbeef",
		Targets:      []string{"node16-linux-x64"},
		AssetCount:   2,
		Timestamp:    time.Now(),
	}

	if err := store.Put(record); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get("out")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil")
	}
	if got.BundleDigest != record.BundleDigest {
		t.Errorf("expected digest %q, got %q", record.BundleDigest, got.BundleDigest)
	}
	if len(got.Targets) != 1 || got.Targets[0] != "node16-linux-x64" {
		t.Errorf("unexpected targets: %v", got.Targets)
	}
}

func TestStore_GetUnknownReturnsNil(t *testing.T) {
	store, err := manifest.NewStore(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	got, err := store.Get("missing")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil record, got %+v", got)
	}
}

func TestStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()
	storePath := filepath.Join(tmpDir, "state.json")

	store, err := manifest.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	record := domain.BuildRecord{OutFile: "app", BundleDigest: "abc", Timestamp: time.Now()}
	if err := store.Put(record); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	// Reopen from disk.
	reopened, err := manifest.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore (reopen) failed: %v", err)
	}
	got, err := reopened.Get("app")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || got.BundleDigest != "abc" {
		t.Errorf("expected persisted record, got %+v", got)
	}
}

func TestStore_CorruptFile(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(storePath, []byte("not json"), 0o600); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	if _, err := manifest.NewStore(storePath); err == nil {
		t.Error("expected error for corrupt manifest")
	}
}
