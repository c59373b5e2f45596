// Package ports defines the core interfaces for the application.
package ports

import "context"

// Bundler turns an entry file and its dependency tree into one
// self-contained script.
//
//go:generate mockgen -source=bundler.go -destination=mocks/mock_bundler.go -package=mocks
type Bundler interface {
	// Bundle writes a single minified script for the given entry point to
	// outFile, targeting the given Node.js major version. Module resolution,
	// inlining and minification are entirely the bundler's concern.
	Bundle(ctx context.Context, entry, nodeVersion, outFile string) error
}
