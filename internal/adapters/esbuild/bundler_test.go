package esbuild_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nodepack/internal/adapters/esbuild"
	"go.trai.ch/nodepack/internal/core/domain"
	"go.trai.ch/nodepack/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newBundler(t *testing.T) *esbuild.Bundler {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return esbuild.NewBundler(logger)
}

func TestBundle_InlinesDependencies(t *testing.T) {
	bundler := newBundler(t)
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "lib.js"),
		[]byte("module.exports = function greeting() { return 'hello from lib'; };\n"), 0o600))
	entry := filepath.Join(dir, "index.js")
	require.NoError(t, os.WriteFile(entry,
		[]byte("const greeting = require('./lib');\nconsole.log(greeting());\n"), 0o600))

	out := filepath.Join(dir, "bundle.js")
	err := bundler.Bundle(context.Background(), entry, "16", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	// Dependency inlined into a single file.
	assert.Contains(t, string(data), "hello from lib")
	// No source map emitted.
	assert.NoFileExists(t, out+".map")
	assert.NotContains(t, string(data), "sourceMappingURL")
}

func TestBundle_MinifiesOutput(t *testing.T) {
	bundler := newBundler(t)
	dir := t.TempDir()

	entry := filepath.Join(dir, "index.js")
	require.NoError(t, os.WriteFile(entry, []byte(`
const answer = 40 + 2;
console.log(answer);
`), 0o600))

	out := filepath.Join(dir, "bundle.js")
	require.NoError(t, bundler.Bundle(context.Background(), entry, "16", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	// Constant folding plus whitespace minification.
	assert.Contains(t, string(data), "42")
	assert.LessOrEqual(t, strings.Count(string(data), "\n"), 1)
}

func TestBundle_SyntaxErrorFailsPipeline(t *testing.T) {
	bundler := newBundler(t)
	dir := t.TempDir()

	entry := filepath.Join(dir, "broken.js")
	require.NoError(t, os.WriteFile(entry, []byte("const = ;"), 0o600))

	err := bundler.Bundle(context.Background(), entry, "16", filepath.Join(dir, "bundle.js"))
	assert.ErrorIs(t, err, domain.ErrBundleFailed)
}

func TestBundle_UnresolvedImportFailsPipeline(t *testing.T) {
	bundler := newBundler(t)
	dir := t.TempDir()

	entry := filepath.Join(dir, "index.js")
	require.NoError(t, os.WriteFile(entry, []byte("require('./does-not-exist');\n"), 0o600))

	err := bundler.Bundle(context.Background(), entry, "16", filepath.Join(dir, "bundle.js"))
	assert.ErrorIs(t, err, domain.ErrBundleFailed)
}

func TestBundle_CanceledContext(t *testing.T) {
	bundler := newBundler(t)
	dir := t.TempDir()
	entry := filepath.Join(dir, "index.js")
	require.NoError(t, os.WriteFile(entry, []byte("console.log(1);\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := bundler.Bundle(ctx, entry, "16", filepath.Join(dir, "bundle.js"))
	assert.Error(t, err)
}
