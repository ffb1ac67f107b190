package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stacklab/realign/internal/world"
)

// StateFileName is the observed-state file shared by all scenarios in a dir
const StateFileName = "symbolic_state.json"

// StateFile is the on-disk form of the observed world: entity positions as
// [x, y, z] triples plus wire-form symbolic relationships. InitialObjects,
// when present, records the original configuration the world was set up in;
// alignment drift is judged against its relative offsets. Without it the
// observed positions are taken as the original configuration.
type StateFile struct {
	Objects        map[string][]float64 `json:"objects"`
	InitialObjects map[string][]float64 `json:"initial_objects,omitempty"`
	Relationships  []string             `json:"relationships"`
}

// Validate ensures the state file is well-formed
func (sf *StateFile) Validate() error {
	if len(sf.Objects) == 0 {
		return fmt.Errorf("state.objects: at least one entity is required")
	}
	for id, pos := range sf.Objects {
		if len(pos) != 3 {
			return fmt.Errorf("state.objects[%s]: position must have exactly 3 coordinates, got %d", id, len(pos))
		}
	}
	for id, pos := range sf.InitialObjects {
		if len(pos) != 3 {
			return fmt.Errorf("state.initial_objects[%s]: position must have exactly 3 coordinates, got %d", id, len(pos))
		}
	}
	if sf.InitialObjects != nil {
		for id := range sf.Objects {
			if _, ok := sf.InitialObjects[id]; !ok {
				return fmt.Errorf("state.initial_objects: missing entity %s", id)
			}
		}
	}
	return nil
}

// LoadStateFile loads and validates symbolic_state.json from the dir
func LoadStateFile(scenariosDir string) (*StateFile, error) {
	path := filepath.Join(scenariosDir, StateFileName)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", StateFileName, err)
	}
	defer file.Close()

	var sf StateFile
	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&sf); err != nil {
		return nil, fmt.Errorf("cannot decode %s: %w", StateFileName, err)
	}
	if err := sf.Validate(); err != nil {
		return nil, fmt.Errorf("%s validation failed: %w", StateFileName, err)
	}
	return &sf, nil
}

// ToWorld builds a world.State from the file, capturing initial offsets
// against the given reference entity
func (sf *StateFile) ToWorld(reference string) (*world.State, error) {
	positions := toPositions(sf.Objects)
	relations, err := world.ParseRelations(sf.Relationships)
	if err != nil {
		return nil, err
	}
	if sf.InitialObjects == nil {
		return world.NewState(positions, relations, reference)
	}
	return world.NewObservedState(positions, toPositions(sf.InitialObjects), relations, reference)
}

func toPositions(objects map[string][]float64) map[string]world.Position {
	positions := make(map[string]world.Position, len(objects))
	for id, pos := range objects {
		positions[id] = world.Position{X: pos[0], Y: pos[1], Z: pos[2]}
	}
	return positions
}
