package app

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/nodepack/internal/core/domain"
	"go.trai.ch/zerr"
)

// CleanOptions selects what Clean removes.
type CleanOptions struct {
	// State also removes the build manifest.
	State bool
}

// Clean removes staging directories orphaned by killed runs, and optionally
// the build manifest. A staging directory is normally removed by the run
// that created it; orphans only appear after external process termination.
func (a *App) Clean(ctx context.Context, opts CleanOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to determine working directory")
	}

	entries, err := os.ReadDir(cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to list working directory")
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), domain.StagingPrefix) {
			continue
		}
		staging := domain.Staging{Dir: filepath.Join(cwd, entry.Name())}
		if err := a.stager.Release(staging); err != nil {
			return err
		}
		a.logger.Info("removed " + entry.Name())
	}

	if opts.State {
		if err := os.Remove(filepath.Join(cwd, domain.ManifestName)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return zerr.Wrap(err, "failed to remove build manifest")
		}
	}

	return nil
}
