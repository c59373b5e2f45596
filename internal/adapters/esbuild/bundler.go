// Package esbuild provides the bundler adapter backed by the esbuild library.
package esbuild

import (
	"context"
	"os"
	"path/filepath"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/nodepack/internal/core/domain"
	"go.trai.ch/nodepack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Bundler = (*Bundler)(nil)

// Bundler implements ports.Bundler using github.com/evanw/esbuild.
type Bundler struct {
	logger ports.Logger
}

// NewBundler creates a new Bundler.
func NewBundler(logger ports.Logger) *Bundler {
	return &Bundler{logger: logger}
}

// Bundle inlines the entry point and its dependencies into one minified
// script at outFile. Source maps are disabled and output is always minified.
func (b *Bundler) Bundle(ctx context.Context, entry, nodeVersion, outFile string) error {
	if err := ctx.Err(); err != nil {
		return zerr.Wrap(err, "bundling canceled")
	}

	if err := os.MkdirAll(filepath.Dir(outFile), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create bundle directory")
	}

	result := api.Build(api.BuildOptions{
		EntryPoints:       []string{entry},
		Outfile:           outFile,
		Bundle:            true,
		Write:             true,
		Platform:          api.PlatformNode,
		Engines:           []api.Engine{{Name: api.EngineNode, Version: nodeVersion}},
		MinifyWhitespace:  true,
		MinifyIdentifiers: true,
		MinifySyntax:      true,
		TreeShaking:       api.TreeShakingTrue,
		Sourcemap:         api.SourceMapNone,
		LogLevel:          api.LogLevelSilent,
	})

	for _, warning := range result.Warnings {
		b.logger.Warn(warning.Text)
	}

	if len(result.Errors) > 0 {
		err := domain.ErrBundleFailed
		for _, msg := range result.Errors {
			err = zerr.With(err, "message", formatMessage(msg))
		}
		return zerr.With(err, "entry", entry)
	}

	return nil
}

func formatMessage(msg api.Message) string {
	if msg.Location == nil {
		return msg.Text
	}
	return msg.Location.File + ": " + msg.Text
}
