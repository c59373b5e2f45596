// Package app implements the compile pipeline for nodepack.
package app

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.trai.ch/nodepack/internal/core/domain"
	"go.trai.ch/nodepack/internal/core/ports"
	"go.trai.ch/zerr"
)

// App orchestrates the four pipeline stages: resolve, bundle, stage assets,
// package. Stages run strictly in sequence; a failure at any stage aborts
// the run. The staging directory is released on every exit path.
type App struct {
	bundler  ports.Bundler
	packager ports.Packager
	stager   ports.Stager
	hasher   ports.Hasher
	store    ports.RecordStore
	logger   ports.Logger
	tracer   ports.Tracer
}

// New creates a new App instance.
func New(
	bundler ports.Bundler,
	packager ports.Packager,
	stager ports.Stager,
	hasher ports.Hasher,
	store ports.RecordStore,
	logger ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		bundler:  bundler,
		packager: packager,
		stager:   stager,
		hasher:   hasher,
		store:    store,
		logger:   logger,
		tracer:   tracer,
	}
}

// Compile runs the whole pipeline for the given options. It is the
// programmatic equivalent of the CLI: same defaults, same failure modes.
func (a *App) Compile(ctx context.Context, opts domain.Options) error {
	cfg, err := a.resolve(ctx, opts)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to determine working directory")
	}

	staging, err := a.stager.Acquire(cwd)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := a.stager.Release(staging); rerr != nil {
			a.logger.Error(rerr)
		}
	}()

	if err := a.bundle(ctx, cfg, staging); err != nil {
		return err
	}

	staged, err := a.stageAssets(ctx, cfg, staging)
	if err != nil {
		return err
	}

	if err := a.pack(ctx, cfg, staging, staged); err != nil {
		return err
	}

	a.record(cfg, staging, staged)
	return nil
}

func (a *App) resolve(ctx context.Context, opts domain.Options) (*domain.Config, error) {
	_, span := a.tracer.Start(ctx, "resolve")
	defer span.End()

	cfg, err := domain.Resolve(opts)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return cfg, nil
}

func (a *App) bundle(ctx context.Context, cfg *domain.Config, staging domain.Staging) error {
	ctx, span := a.tracer.Start(ctx, "bundle")
	defer span.End()

	a.logger.Info("bundling " + cfg.EntryPoint)
	if err := a.bundler.Bundle(ctx, cfg.EntryPoint, cfg.NodeVersion, staging.BundlePath()); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// stageAssets copies the configured assets into the staging directory and
// injects the runtime lookup prelude when at least one asset was copied.
// It returns the number of staged entries.
func (a *App) stageAssets(ctx context.Context, cfg *domain.Config, staging domain.Staging) (int, error) {
	if len(cfg.Assets) == 0 {
		return 0, nil
	}

	_, span := a.tracer.Start(ctx, "stage-assets")
	defer span.End()

	staged, err := a.stager.Stage(staging, cfg.Assets)
	if err != nil {
		span.RecordError(err)
		return staged, err
	}
	if staged == 0 {
		return 0, nil
	}

	if err := a.stager.InjectLookup(staging.BundlePath()); err != nil {
		span.RecordError(err)
		return staged, err
	}
	return staged, nil
}

func (a *App) pack(ctx context.Context, cfg *domain.Config, staging domain.Staging, staged int) error {
	ctx, span := a.tracer.Start(ctx, "package")
	defer span.End()

	req := domain.PackageRequest{
		Bundle:  staging.BundlePath(),
		Targets: cfg.Targets(),
		Output:  cfg.OutFile,
	}
	if staged > 0 {
		req.AssetGlob = staging.AssetGlob()
	}

	a.logger.Info("packaging for " + req.Targets[0] + suffixForExtra(req.Targets))
	if err := a.packager.Package(ctx, req); err != nil {
		span.RecordError(err)
		return err
	}

	if staged > 0 {
		// Fallback for hosts where snapshot assets are not resolvable:
		// place a plain assets directory beside the binary.
		if err := a.stager.Export(staging, filepath.Dir(cfg.OutFile)); err != nil {
			span.RecordError(err)
			return err
		}
	}
	return nil
}

// record persists the build manifest entry. Failures here do not fail the
// run: the deliverable already exists on disk.
func (a *App) record(cfg *domain.Config, staging domain.Staging, staged int) {
	digest, err := a.hasher.ComputeFileHash(staging.BundlePath())
	if err != nil {
		a.logger.Warn("skipping manifest update: " + err.Error())
		return
	}

	err = a.store.Put(domain.BuildRecord{
		OutFile:      cfg.OutFile,
		EntryPoint:   cfg.EntryPoint,
		BundleDigest: digest,
		Targets:      cfg.Targets(),
		AssetCount:   staged,
		Timestamp:    time.Now(),
	})
	if err != nil {
		a.logger.Warn("failed to update manifest: " + err.Error())
	}
}

func suffixForExtra(targets []string) string {
	if len(targets) > 1 {
		return " (+" + strconv.Itoa(len(targets)-1) + " more)"
	}
	return ""
}
