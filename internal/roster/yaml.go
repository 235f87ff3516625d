package roster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mailopolis/mailopolis/pkg/models"
)

// rosterFile is the on-disk shape of a custom roster.
type rosterFile struct {
	Agents []models.AgentProfile `yaml:"agents"`
}

// LoadFile reads agent profiles from a YAML file and merges them over the
// built-in roster: a file entry replaces the built-in profile for the same
// department, and departments not mentioned keep their defaults.
func LoadFile(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}

	var file rosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse roster file: %w", err)
	}
	if len(file.Agents) == 0 {
		return nil, fmt.Errorf("roster file %s defines no agents", path)
	}

	overrides := make(map[models.Department]models.AgentProfile, len(file.Agents))
	for _, p := range file.Agents {
		if !p.Department.Valid() {
			return nil, fmt.Errorf("agent %q: unknown department %q", p.Name, p.Department)
		}
		overrides[p.Department] = p
	}

	merged := DefaultProfiles()
	for i, p := range merged {
		if override, ok := overrides[p.Department]; ok {
			merged[i] = override
		}
	}
	return New(merged)
}
