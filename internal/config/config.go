// Package config loads optional project-level detection settings from
// hostprobe.yml and applies them to the built-in catalog.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pipefold/hostprobe/internal/hostapp"
)

// Config holds project-level settings loaded from hostprobe.yml.
type Config struct {
	// Override forces detection to the given application id. Lowest
	// precedence: the --app flag and HOSTPROBE_APP both win over it.
	Override string `yaml:"override,omitempty"`

	// Aliases maps application ids to extra executable aliases merged
	// into the catalog before registry construction.
	Aliases map[string][]string `yaml:"aliases,omitempty"`

	// Disable lists application ids removed from the catalog.
	Disable []string `yaml:"disable,omitempty"`
}

// Load attempts to read hostprobe.yml or hostprobe.yaml from the given
// directory. Returns a zero-value config (not an error) if no config file
// exists.
func Load(dir string) (*Config, error) {
	for _, name := range []string{"hostprobe.yml", "hostprobe.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return &Config{}, nil
}

// LoadFile reads a config from an explicit path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Apply returns the descriptor list adjusted by this config: disabled ids
// are removed and extra executable aliases appended. Ids that name no
// catalog entry are logged at warn level and otherwise ignored.
func (c *Config) Apply(descs []hostapp.Descriptor) []hostapp.Descriptor {
	known := make(map[string]bool, len(descs))
	for _, d := range descs {
		known[d.ID] = true
	}

	disabled := make(map[string]bool, len(c.Disable))
	for _, id := range c.Disable {
		if !known[id] {
			slog.Warn("config disables an unknown application", "id", id)
			continue
		}
		disabled[id] = true
	}

	for id := range c.Aliases {
		if !known[id] {
			slog.Warn("config adds aliases for an unknown application", "id", id)
		}
	}

	out := make([]hostapp.Descriptor, 0, len(descs))
	for _, d := range descs {
		if disabled[d.ID] {
			continue
		}
		if extra := c.Aliases[d.ID]; len(extra) > 0 {
			aliases := make([]string, 0, len(d.ExecutableAliases)+len(extra))
			aliases = append(aliases, d.ExecutableAliases...)
			for _, a := range extra {
				aliases = append(aliases, strings.ToLower(a))
			}
			d.ExecutableAliases = aliases
		}
		out = append(out, d)
	}
	return out
}
