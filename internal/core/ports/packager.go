package ports

import (
	"context"

	"go.trai.ch/nodepack/internal/core/domain"
)

// Packager wraps a bundled script and a runtime snapshot into standalone
// platform binaries.
//
//go:generate mockgen -source=packager.go -destination=mocks/mock_packager.go -package=mocks
type Packager interface {
	// Package produces one binary per target identifier in the request.
	// It returns an error when the underlying packager exits non-zero.
	Package(ctx context.Context, req domain.PackageRequest) error
}
