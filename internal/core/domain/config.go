// Package domain holds the core types of the nodepack pipeline.
package domain

import (
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/zerr"
)

// Platform identifies an operating system target for the packager.
type Platform string

// Supported platform values.
const (
	PlatformWin    Platform = "win"
	PlatformMacOS  Platform = "macos"
	PlatformLinux  Platform = "linux"
	PlatformAlpine Platform = "alpine"
	PlatformAll    Platform = "all"
)

// ParsePlatform validates a raw platform token against the closed set of
// supported values. An empty token maps to the current operating system.
func ParsePlatform(raw string) (Platform, error) {
	if raw == "" {
		return HostPlatform(), nil
	}
	switch p := Platform(raw); p {
	case PlatformWin, PlatformMacOS, PlatformLinux, PlatformAlpine, PlatformAll:
		return p, nil
	default:
		return "", zerr.With(ErrUnknownPlatform, "platform", raw)
	}
}

// HostPlatform maps the current operating system to a platform value.
func HostPlatform() Platform {
	switch runtime.GOOS {
	case "windows":
		return PlatformWin
	case "darwin":
		return PlatformMacOS
	default:
		return PlatformLinux
	}
}

// Options carries the raw, possibly incomplete inputs of one compile run,
// as collected from CLI flags or a programmatic call.
type Options struct {
	EntryPoint  string
	OutFile     string
	NodeVersion string
	Platform    string
	Assets      []string
}

// Config is the fully resolved, immutable configuration of one run.
type Config struct {
	EntryPoint  string
	OutFile     string
	NodeVersion string
	Platform    Platform
	Assets      []string
}

// Defaults applied by Resolve for omitted Options fields.
const (
	DefaultOutFile     = "output"
	DefaultNodeVersion = "16"
)

// Resolve turns raw Options into a Config. The entry point is made absolute
// and must exist on disk; the platform token must parse. Resolution is the
// only validation boundary: later stages never see a partial configuration.
func Resolve(opts Options) (*Config, error) {
	if opts.EntryPoint == "" {
		return nil, ErrNoEntryPoint
	}

	entry, err := filepath.Abs(opts.EntryPoint)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve entry point"), "entry", opts.EntryPoint)
	}
	if _, err := os.Stat(entry); err != nil {
		return nil, zerr.With(ErrEntryNotFound, "entry", entry)
	}

	platform, err := ParsePlatform(opts.Platform)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		EntryPoint:  entry,
		OutFile:     opts.OutFile,
		NodeVersion: opts.NodeVersion,
		Platform:    platform,
		Assets:      opts.Assets,
	}
	if cfg.OutFile == "" {
		cfg.OutFile = DefaultOutFile
	}
	if cfg.NodeVersion == "" {
		cfg.NodeVersion = DefaultNodeVersion
	}
	return cfg, nil
}

// Targets returns the packager target identifiers for this configuration,
// encoded as "node<version>-<os>-x64". PlatformAll expands to exactly the
// three desktop operating systems; every other platform yields one target.
func (c *Config) Targets() []string {
	if c.Platform == PlatformAll {
		return []string{
			c.target(PlatformWin),
			c.target(PlatformMacOS),
			c.target(PlatformLinux),
		}
	}
	return []string{c.target(c.Platform)}
}

func (c *Config) target(p Platform) string {
	return "node" + c.NodeVersion + "-" + string(p) + "-x64"
}
