package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nodepack/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/nodepack/internal/adapters/esbuild"   //nolint:depguard // Wired in app layer
	"go.trai.ch/nodepack/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/nodepack/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/nodepack/internal/adapters/manifest"  //nolint:depguard // Wired in app layer
	"go.trai.ch/nodepack/internal/adapters/pkgcli"    //nolint:depguard // Wired in app layer
	"go.trai.ch/nodepack/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/nodepack/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the App with the collaborators the CLI layer needs.
type Components struct {
	App          *App
	Logger       ports.Logger
	ConfigLoader ports.ConfigLoader
	Tracer       ports.Tracer
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			esbuild.NodeID,
			pkgcli.NodeID,
			fs.StagerNodeID,
			fs.HasherNodeID,
			manifest.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	bundler, err := graft.Dep[ports.Bundler](ctx)
	if err != nil {
		return nil, err
	}

	packager, err := graft.Dep[ports.Packager](ctx)
	if err != nil {
		return nil, err
	}

	stager, err := graft.Dep[ports.Stager](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.RecordStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(bundler, packager, stager, hasher, store, log, tracer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:          application,
		Logger:       log,
		ConfigLoader: loader,
		Tracer:       tracer,
	}, nil
}
