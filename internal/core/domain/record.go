package domain

import "time"

// BuildRecord is the persisted summary of one successful compile run,
// keyed by output name in the manifest store.
type BuildRecord struct {
	OutFile      string    `json:"outFile"`
	EntryPoint   string    `json:"entryPoint"`
	BundleDigest string    `json:"bundleDigest"`
	Targets      []string  `json:"targets"`
	AssetCount   int       `json:"assetCount"`
	Timestamp    time.Time `json:"timestamp"`
}
