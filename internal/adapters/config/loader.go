// Package config provides the project defaults loader for nodepack.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/nodepack/internal/core/domain"
	"go.trai.ch/nodepack/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the project configuration file looked up in the
// working directory.
const DefaultFilename = "nodepack.yaml"

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// NewLoader creates a loader for the default project file.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{Filename: DefaultFilename}
}

// Load reads the project configuration from the given working directory.
// A missing file yields zero-valued options and no error; CLI flags always
// override whatever the file declares.
func (l *FileConfigLoader) Load(cwd string) (domain.Options, error) {
	path := filepath.Join(cwd, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is rooted in the working directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Options{}, nil
		}
		return domain.Options{}, zerr.Wrap(err, "failed to read project config")
	}

	var file Packfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Options{}, zerr.Wrap(err, "failed to parse project config")
	}

	return domain.Options{
		EntryPoint:  file.Entry,
		OutFile:     file.Out,
		NodeVersion: file.Target,
		Platform:    file.Platform,
		Assets:      file.Assets,
	}, nil
}
