package mockserver

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/five82/missionboard/internal/missions"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Fixture is one served mission plus the payload ids the payload_id find
// matches against.
type Fixture struct {
	missions.Mission `yaml:",inline"`
	PayloadIDs       []string `yaml:"payload_ids"`
}

type fixtureFile struct {
	Missions []Fixture `yaml:"missions"`
}

// DefaultFixtures returns the embedded fixture set.
func DefaultFixtures() ([]Fixture, error) {
	return ParseFixtures(defaultFixtures)
}

// LoadFixtures reads fixtures from path, or the embedded set when path is
// empty.
func LoadFixtures(path string) ([]Fixture, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultFixtures()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	return ParseFixtures(data)
}

// ParseFixtures decodes a YAML document with a top-level missions list.
// Every fixture needs a non-empty, unique id.
func ParseFixtures(data []byte) ([]Fixture, error) {
	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	seen := make(map[string]struct{}, len(file.Missions))
	for i, f := range file.Missions {
		id := strings.TrimSpace(f.ID)
		if id == "" {
			return nil, fmt.Errorf("parse fixtures: mission %d: %w", i, errMissingID)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("parse fixtures: duplicate mission id %q", id)
		}
		seen[id] = struct{}{}
	}
	return file.Missions, nil
}

var errMissingID = errors.New("missing id")
