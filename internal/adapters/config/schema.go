package config

// Packfile represents the structure of the nodepack.yaml project file.
// Every field is optional; it only supplies defaults for the CLI flags.
type Packfile struct {
	Entry    string   `yaml:"entry"`
	Out      string   `yaml:"out"`
	Target   string   `yaml:"target"`
	Platform string   `yaml:"platform"`
	Assets   []string `yaml:"assets"`
}
