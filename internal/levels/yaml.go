package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlLevel represents the YAML structure for a level file.
//
//	id: level6
//	name: Tunnel
//	rows:
//	  - "HHHHH"
//	  - "S P S"
type yamlLevel struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(yl.Rows) == 0 {
		return Level{}, fmt.Errorf("level %q has no rows", yl.ID)
	}

	return Level{
		ID:   yl.ID,
		Name: yl.Name,
		Rows: yl.Rows,
	}, nil
}

// MarshalYAML encodes a level in the same layout ParseYAML reads.
func MarshalYAML(l Level) ([]byte, error) {
	data, err := yaml.Marshal(yamlLevel{ID: l.ID, Name: l.Name, Rows: l.Rows})
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}
