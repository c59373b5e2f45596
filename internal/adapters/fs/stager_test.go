package fs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nodepack/internal/adapters/fs"
	"go.trai.ch/nodepack/internal/core/domain"
	"go.trai.ch/nodepack/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newStager(t *testing.T) (*fs.Stager, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	return fs.NewStager(logger), logger
}

func TestAcquire_UniquePerRun(t *testing.T) {
	stager, _ := newStager(t)
	root := t.TempDir()

	a, err := stager.Acquire(root)
	require.NoError(t, err)
	b, err := stager.Acquire(root)
	require.NoError(t, err)

	assert.NotEqual(t, a.Dir, b.Dir)
	assert.True(t, strings.HasPrefix(filepath.Base(a.Dir), domain.StagingPrefix))
	assert.DirExists(t, a.Dir)
	assert.DirExists(t, b.Dir)
}

func TestStage_FlattensDirectoryContents(t *testing.T) {
	stager, _ := newStager(t)
	root := t.TempDir()

	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "config.json"), []byte("{}"), 0o600))
	images := filepath.Join(src, "images")
	require.NoError(t, os.Mkdir(images, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(images, "a.png"), []byte("png"), 0o600))

	staging, err := stager.Acquire(root)
	require.NoError(t, err)

	copied, err := stager.Stage(staging, []string{
		filepath.Join(src, "config.json"),
		images,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, copied)

	// Directory contents land directly in assets/, without a nested images/ folder.
	assert.FileExists(t, filepath.Join(staging.AssetsDir(), "config.json"))
	assert.FileExists(t, filepath.Join(staging.AssetsDir(), "a.png"))
	assert.NoDirExists(t, filepath.Join(staging.AssetsDir(), "images"))
}

func TestStage_PreservesStructureBelowDirectorySource(t *testing.T) {
	stager, _ := newStager(t)
	root := t.TempDir()

	src := t.TempDir()
	nested := filepath.Join(src, "static", "fonts")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "mono.woff"), []byte("woff"), 0o600))

	staging, err := stager.Acquire(root)
	require.NoError(t, err)

	copied, err := stager.Stage(staging, []string{src})
	require.NoError(t, err)
	assert.Equal(t, 1, copied)
	assert.FileExists(t, filepath.Join(staging.AssetsDir(), "static", "fonts", "mono.woff"))
}

func TestStage_MissingSourceWarnsAndContinues(t *testing.T) {
	stager, logger := newStager(t)
	root := t.TempDir()

	staging, err := stager.Acquire(root)
	require.NoError(t, err)

	logger.EXPECT().Warn(gomock.Any()).Times(1)

	copied, err := stager.Stage(staging, []string{"./missing-dir"})
	require.NoError(t, err)
	assert.Zero(t, copied)
	assert.NoDirExists(t, staging.AssetsDir())
}

func TestStage_LastWriterWinsOnCollision(t *testing.T) {
	stager, _ := newStager(t)
	root := t.TempDir()

	srcA := t.TempDir()
	srcB := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcA, "data.txt"), []byte("first"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(srcB, "data.txt"), []byte("second"), 0o600))

	staging, err := stager.Acquire(root)
	require.NoError(t, err)

	copied, err := stager.Stage(staging, []string{srcA, srcB})
	require.NoError(t, err)
	assert.Equal(t, 2, copied)

	data, err := os.ReadFile(filepath.Join(staging.AssetsDir(), "data.txt"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestInjectLookup_PrependsPrelude(t *testing.T) {
	stager, _ := newStager(t)
	root := t.TempDir()

	staging, err := stager.Acquire(root)
	require.NoError(t, err)

	original := "console.log(resolveAsset('config.json'));"
	require.NoError(t, os.WriteFile(staging.BundlePath(), []byte(original), 0o600))

	require.NoError(t, stager.InjectLookup(staging.BundlePath()))

	data, err := os.ReadFile(staging.BundlePath())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), fs.LookupPrelude))
	assert.True(t, strings.HasSuffix(string(data), original))
}

func TestExport_CopiesAssetsBesideOutput(t *testing.T) {
	stager, _ := newStager(t)
	root := t.TempDir()

	staging, err := stager.Acquire(root)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(staging.AssetsDir(), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(staging.AssetsDir(), "a.txt"), []byte("a"), 0o600))

	outDir := t.TempDir()
	require.NoError(t, stager.Export(staging, outDir))
	assert.FileExists(t, filepath.Join(outDir, domain.AssetsDirName, "a.txt"))
}

func TestRelease_RemovesStagingDir(t *testing.T) {
	stager, _ := newStager(t)
	root := t.TempDir()

	staging, err := stager.Acquire(root)
	require.NoError(t, err)
	require.NoError(t, stager.Release(staging))
	assert.NoDirExists(t, staging.Dir)

	// Releasing twice is fine.
	assert.NoError(t, stager.Release(staging))
	// A zero staging is ignored.
	assert.NoError(t, stager.Release(domain.Staging{}))
}
