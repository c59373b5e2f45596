package domain

import "go.trai.ch/zerr"

var (
	// ErrNoEntryPoint is returned when a run is requested without an entry file.
	ErrNoEntryPoint = zerr.New("no entry point specified")

	// ErrEntryNotFound is returned when the resolved entry file does not exist.
	ErrEntryNotFound = zerr.New("entry file not found")

	// ErrUnknownPlatform is returned when a platform token is outside the supported set.
	ErrUnknownPlatform = zerr.New("unknown platform")

	// ErrBundleFailed is returned when the bundler rejects the entry point.
	ErrBundleFailed = zerr.New("bundling failed")

	// ErrPackageFailed is returned when the packager subprocess exits non-zero.
	ErrPackageFailed = zerr.New("packaging failed")
)
