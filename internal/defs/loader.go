// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

//go:embed data/tiers.json
var defaultTiers []byte

var (
	// ErrUnknownTier is returned when a tier ID is not present in the library.
	ErrUnknownTier = errors.New("unknown tier")
	// ErrInvalidTier is returned when a tier or spawn entry fails validation.
	ErrInvalidTier = errors.New("invalid tier definition")
)

// Library is the tier table keyed by stable tier ID, plus the weighted spawn table.
type Library struct {
	Tiers      map[string]TierDefinition
	Order      []string // tier IDs in file order
	SpawnTable []SpawnEntry
}

type libraryFile struct {
	Tiers      []TierDefinition `json:"tiers"`
	SpawnTable []SpawnEntry     `json:"spawn_table"`
}

// Default loads the embedded tier table.
func Default() (*Library, error) {
	return Load(defaultTiers)
}

// LoadFile reads a tier configuration file from disk.
func LoadFile(path string) (*Library, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tier definitions file: %w", err)
	}
	return Load(file)
}

// Load parses and validates a tier table.
func Load(data []byte) (*Library, error) {
	var raw libraryFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tier definitions: %w", err)
	}

	lib := &Library{Tiers: make(map[string]TierDefinition, len(raw.Tiers))}
	for _, def := range raw.Tiers {
		if err := validateTier(def); err != nil {
			return nil, err
		}
		if _, dup := lib.Tiers[def.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidTier, def.ID)
		}
		lib.Tiers[def.ID] = def
		lib.Order = append(lib.Order, def.ID)
	}

	if len(raw.SpawnTable) == 0 {
		return nil, fmt.Errorf("%w: empty spawn table", ErrInvalidTier)
	}
	for _, entry := range raw.SpawnTable {
		if _, ok := lib.Tiers[entry.TierID]; !ok {
			return nil, fmt.Errorf("spawn table: %w: %q", ErrUnknownTier, entry.TierID)
		}
		if entry.Weight <= 0 {
			return nil, fmt.Errorf("%w: spawn weight %d for %q", ErrInvalidTier, entry.Weight, entry.TierID)
		}
	}
	lib.SpawnTable = raw.SpawnTable
	return lib, nil
}

// Tier looks up a definition by ID.
func (l *Library) Tier(id string) (TierDefinition, error) {
	def, ok := l.Tiers[id]
	if !ok {
		return TierDefinition{}, fmt.Errorf("%w: %q", ErrUnknownTier, id)
	}
	return def, nil
}

// Validate re-checks a library assembled by hand (tests, tools).
func (l *Library) Validate() error {
	if l == nil || len(l.Tiers) == 0 {
		return fmt.Errorf("%w: empty library", ErrInvalidTier)
	}
	for id, def := range l.Tiers {
		if id != def.ID {
			return fmt.Errorf("%w: key %q holds %q", ErrInvalidTier, id, def.ID)
		}
		if err := validateTier(def); err != nil {
			return err
		}
	}
	if len(l.SpawnTable) == 0 {
		return fmt.Errorf("%w: empty spawn table", ErrInvalidTier)
	}
	for _, entry := range l.SpawnTable {
		if _, err := l.Tier(entry.TierID); err != nil {
			return fmt.Errorf("spawn table: %w", err)
		}
		if entry.Weight <= 0 {
			return fmt.Errorf("%w: spawn weight %d for %q", ErrInvalidTier, entry.Weight, entry.TierID)
		}
	}
	return nil
}

func validateTier(def TierDefinition) error {
	switch {
	case def.ID == "":
		return fmt.Errorf("%w: empty id", ErrInvalidTier)
	case def.Health <= 0:
		return fmt.Errorf("%w: %q health %d", ErrInvalidTier, def.ID, def.Health)
	case def.Speed < 0:
		return fmt.Errorf("%w: %q speed %v", ErrInvalidTier, def.ID, def.Speed)
	case def.Width <= 0 || def.Height <= 0:
		return fmt.Errorf("%w: %q size %vx%v", ErrInvalidTier, def.ID, def.Width, def.Height)
	case def.ExplosionFrames <= 0:
		return fmt.Errorf("%w: %q explosion frames %d", ErrInvalidTier, def.ID, def.ExplosionFrames)
	case def.FireOdds.Range < 0 || def.FireOdds.Low > def.FireOdds.High:
		return fmt.Errorf("%w: %q fire odds %+v", ErrInvalidTier, def.ID, def.FireOdds)
	}
	return nil
}
