package gamedata

import (
	"errors"
	"fmt"
	"math/rand"
)

// EnemyRegistry is the set of enemy kinds a maze can be populated with.
type EnemyRegistry struct {
	enemies     []EnemyDef
	totalWeight int
}

// NewEnemyRegistry creates a registry from loaded enemy definitions.
func NewEnemyRegistry(enemies []EnemyDef) *EnemyRegistry {
	totalWeight := 0
	for _, e := range enemies {
		totalWeight += e.SpawnWeight
	}
	return &EnemyRegistry{
		enemies:     enemies,
		totalWeight: totalWeight,
	}
}

// LoadEnemyRegistry loads and creates a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	return NewEnemyRegistry(enemies), nil
}

// MustLoadEnemyRegistry loads a registry, panicking on error.
func MustLoadEnemyRegistry() *EnemyRegistry {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom picks a kind with probability proportional to its spawn
// weight, or nil when the registry has no weight.
func (r *EnemyRegistry) SpawnRandom(rng *rand.Rand) *EnemyDef {
	if r.totalWeight <= 0 || len(r.enemies) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)
	for i := range r.enemies {
		roll -= r.enemies[i].SpawnWeight
		if roll < 0 {
			return &r.enemies[i]
		}
	}
	return &r.enemies[len(r.enemies)-1]
}

// Lookup returns the kind with the given ID.
func (r *EnemyRegistry) Lookup(id string) (*EnemyDef, bool) {
	for i := range r.enemies {
		if r.enemies[i].ID == id {
			return &r.enemies[i], true
		}
	}
	return nil, false
}

// Only returns a registry that spawns nothing but the named kind.
func (r *EnemyRegistry) Only(id string) (*EnemyRegistry, error) {
	def, ok := r.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("unknown enemy kind %q", id)
	}
	return NewEnemyRegistry([]EnemyDef{*def}), nil
}
