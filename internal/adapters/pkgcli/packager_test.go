package pkgcli_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nodepack/internal/adapters/pkgcli"
	"go.trai.ch/nodepack/internal/core/domain"
	"go.trai.ch/nodepack/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// writeStub writes an executable shell script standing in for the pkg CLI.
func writeStub(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub packager scripts require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "pkg-stub")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o700)) //nolint:gosec // test stub must be executable
	return path
}

func TestPackage_PassesArgumentsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	argsFile := filepath.Join(t.TempDir(), "args.txt")
	stub := writeStub(t, `printf '%s\n' "$@" > `+argsFile+"\n")

	packager := pkgcli.NewPackager(logger).WithCommand(stub)
	err := packager.Package(context.Background(), domain.PackageRequest{
		Bundle:  "bundle.js",
		Targets: []string{"node16-linux-x64"},
		Output:  "out",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Equal(t, "bundle.js\n--targets\nnode16-linux-x64\n--output\nout\n", string(data))
}

func TestPackage_NonZeroExitIsAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	stub := writeStub(t, "echo 'error: snapshot failed' >&2\nexit 2\n")

	packager := pkgcli.NewPackager(logger).WithCommand(stub)
	err := packager.Package(context.Background(), domain.PackageRequest{
		Bundle:  "bundle.js",
		Targets: []string{"node16-linux-x64"},
		Output:  "out",
	})
	assert.Error(t, err)
}

func TestPackage_StreamsOutputToLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info("building first target").MinTimes(1)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	stub := writeStub(t, "echo 'building first target'\n")

	packager := pkgcli.NewPackager(logger).WithCommand(stub)
	err := packager.Package(context.Background(), domain.PackageRequest{
		Bundle:  "bundle.js",
		Targets: []string{"node16-linux-x64"},
		Output:  "out",
	})
	require.NoError(t, err)
}
