package ports

import "go.trai.ch/nodepack/internal/core/domain"

// RecordStore persists build records across runs.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RecordStore interface {
	// Get retrieves the record for a given output name.
	// It returns (nil, nil) when no record exists.
	Get(outFile string) (*domain.BuildRecord, error)

	// Put stores the record, replacing any previous record for the same output name.
	Put(record domain.BuildRecord) error
}
