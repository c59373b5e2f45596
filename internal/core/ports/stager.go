package ports

import "go.trai.ch/nodepack/internal/core/domain"

// Stager manages the run-scoped staging directory and asset copies.
//
//go:generate mockgen -source=stager.go -destination=mocks/mock_stager.go -package=mocks
type Stager interface {
	// Acquire creates a process-unique staging directory under root and
	// returns its description. The caller owns the directory and must call
	// Release on every exit path.
	Acquire(root string) (domain.Staging, error)

	// Stage copies the given asset paths into the staging directory's flat
	// assets/ subdirectory, in order. Directory sources are flattened by
	// copying their contents; name collisions are last-writer-wins. Missing
	// sources are skipped with a warning. It returns the number of source
	// entries actually copied.
	Stage(staging domain.Staging, assets []string) (int, error)

	// InjectLookup prepends the runtime asset-lookup prelude to the bundled
	// script at bundlePath. Safe to call once per bundle.
	InjectLookup(bundlePath string) error

	// Export copies the staged assets into an assets/ directory beside the
	// final output binary as a runtime fallback.
	Export(staging domain.Staging, outDir string) error

	// Release removes the staging directory. Removing an already released
	// staging is not an error.
	Release(staging domain.Staging) error
}
