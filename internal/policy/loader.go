package policy

import (
	"embed"
	"fmt"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed configs/*.yaml
var configFS embed.FS

// builtinPolicies maps policy names to their configurations
var builtinPolicies = map[string]*Policy{}

func init() {
	entries, err := configFS.ReadDir("configs")
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		data, err := configFS.ReadFile(filepath.Join("configs", entry.Name()))
		if err != nil {
			continue
		}

		var p Policy
		if err := yaml.Unmarshal(data, &p); err != nil {
			continue
		}
		if p.Name == "" {
			continue
		}

		builtinPolicies[p.Name] = &p
	}
}

// Load loads a built-in policy by name.
func Load(name string) (*Policy, error) {
	if p, ok := builtinPolicies[name]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("unknown policy: %s (available: %v)", name, Available())
}

// Available returns the names of all built-in policies, sorted.
func Available() []string {
	names := make([]string, 0, len(builtinPolicies))
	for name := range builtinPolicies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
