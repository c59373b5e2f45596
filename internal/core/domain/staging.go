package domain

import "path/filepath"

// BundleName is the file name of the bundled script inside the staging directory.
const BundleName = "bundle.js"

// StagingPrefix is the name prefix of staging directories in the working
// directory. A random suffix is appended per run so concurrent invocations
// cannot collide.
const StagingPrefix = ".nodepack-temp-"

// ManifestName is the build manifest file written in the working directory.
const ManifestName = "nodepack_state.json"

// AssetsDirName is the name of the flat asset directory, both inside the
// staging directory and beside the final binary.
const AssetsDirName = "assets"

// Staging describes the run-scoped staging directory. It is created by the
// stager at pipeline start and removed on every exit path.
type Staging struct {
	// Dir is the absolute path of the staging directory.
	Dir string
}

// BundlePath returns the path of the bundled script inside the staging directory.
func (s Staging) BundlePath() string {
	return filepath.Join(s.Dir, BundleName)
}

// AssetsDir returns the path of the flat asset directory inside the staging directory.
func (s Staging) AssetsDir() string {
	return filepath.Join(s.Dir, AssetsDirName)
}

// AssetGlob returns the glob handed to the packager so staged assets end up
// inside the snapshot.
func (s Staging) AssetGlob() string {
	return filepath.Join(s.AssetsDir(), "**", "*")
}

// PackageRequest is the input of one packager invocation.
type PackageRequest struct {
	// Bundle is the path of the bundled script to wrap.
	Bundle string
	// Targets are the platform target identifiers, at least one.
	Targets []string
	// AssetGlob selects staged assets to embed; empty when no assets were staged.
	AssetGlob string
	// Output is the output path or basename for the produced binaries.
	Output string
}
