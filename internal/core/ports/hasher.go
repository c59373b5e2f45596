package ports

// Hasher computes content digests of produced artifacts.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFileHash returns a stable hex digest of the file's content.
	ComputeFileHash(path string) (string, error)
}
