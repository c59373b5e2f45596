package ports

import "go.trai.ch/nodepack/internal/core/domain"

// ConfigLoader loads project-level defaults for compile options.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the project configuration file from the given working
	// directory and returns the defaults it declares. A missing file yields
	// zero-valued options and no error.
	Load(cwd string) (domain.Options, error)
}
