// Package fs provides file system adapters for staging and hashing artifacts.
package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/nodepack/internal/core/domain"
	"go.trai.ch/nodepack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Stager = (*Stager)(nil)

// Stager implements ports.Stager on the local file system.
type Stager struct {
	logger ports.Logger
}

// NewStager creates a new Stager.
func NewStager(logger ports.Logger) *Stager {
	return &Stager{logger: logger}
}

// Acquire creates a process-unique staging directory under root.
func (s *Stager) Acquire(root string) (domain.Staging, error) {
	dir, err := os.MkdirTemp(root, domain.StagingPrefix+"*")
	if err != nil {
		return domain.Staging{}, zerr.Wrap(err, "failed to create staging directory")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return domain.Staging{}, zerr.Wrap(err, "failed to resolve staging directory")
	}
	return domain.Staging{Dir: abs}, nil
}

// Stage copies each asset path into the staging directory's flat assets/
// subdirectory, sequentially and in list order. Missing sources are skipped
// with a warning. It returns the number of source entries copied.
func (s *Stager) Stage(staging domain.Staging, assets []string) (int, error) {
	copied := 0
	for _, asset := range assets {
		info, err := os.Stat(asset)
		if err != nil {
			s.logger.Warn("asset not found, skipping: " + asset)
			continue
		}

		if copied == 0 {
			if err := os.MkdirAll(staging.AssetsDir(), 0o750); err != nil {
				return copied, zerr.Wrap(err, "failed to create assets directory")
			}
		}

		if info.IsDir() {
			// Directory contents are merged into the flat assets directory,
			// not the directory itself. Last writer wins on collisions.
			if err := copyTree(asset, staging.AssetsDir()); err != nil {
				return copied, err
			}
		} else {
			dst := filepath.Join(staging.AssetsDir(), filepath.Base(asset))
			if err := copyFile(asset, dst); err != nil {
				return copied, err
			}
		}
		copied++
	}
	return copied, nil
}

// InjectLookup prepends the runtime asset-lookup prelude to the bundle.
func (s *Stager) InjectLookup(bundlePath string) error {
	bundle, err := os.ReadFile(bundlePath) //nolint:gosec // path is inside the staging directory
	if err != nil {
		return zerr.Wrap(err, "failed to read bundle for prelude injection")
	}
	out := append([]byte(LookupPrelude), bundle...)
	if err := os.WriteFile(bundlePath, out, 0o644); err != nil { //nolint:gosec // bundle is a build artifact
		return zerr.Wrap(err, "failed to write bundle with prelude")
	}
	return nil
}

// Export copies the staged assets into an assets/ directory beside the
// output binary.
func (s *Stager) Export(staging domain.Staging, outDir string) error {
	dst := filepath.Join(outDir, domain.AssetsDirName)
	if err := os.MkdirAll(dst, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create output assets directory")
	}
	return copyTree(staging.AssetsDir(), dst)
}

// Release removes the staging directory and everything in it.
func (s *Stager) Release(staging domain.Staging) error {
	if staging.Dir == "" {
		return nil
	}
	if err := os.RemoveAll(staging.Dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove staging directory"), "dir", staging.Dir)
	}
	return nil
}

// copyTree copies the contents of src into dst, flattening nothing within the
// tree itself: relative structure below src is preserved.
func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to walk asset directory"), "path", path)
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return zerr.Wrap(err, "failed to relativize asset path")
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			if rel == "." {
				return nil
			}
			return os.MkdirAll(target, 0o750)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // asset path is provided by the user
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open asset"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	out, err := os.Create(dst) //nolint:gosec // destination is inside the staging directory
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create staged asset"), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		return errors.Join(
			zerr.With(zerr.Wrap(err, "failed to copy asset"), "path", src),
			out.Close(),
		)
	}
	return out.Close()
}
