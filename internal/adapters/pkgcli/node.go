package pkgcli

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nodepack/internal/adapters/logger"
	"go.trai.ch/nodepack/internal/core/ports"
)

const NodeID graft.ID = "adapter.packager"

func init() {
	graft.Register(graft.Node[ports.Packager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Packager, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewPackager(log), nil
		},
	})
}
