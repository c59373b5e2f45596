package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nodepack/internal/core/domain"
	"go.trai.ch/nodepack/internal/core/ports"
)

const NodeID graft.ID = "adapter.record_store"

func init() {
	graft.Register(graft.Node[ports.RecordStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.RecordStore, error) {
			store, err := NewStore(domain.ManifestName)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
