// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadTowerDefinitions reads the tower configuration file and populates TowerDefs.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := json.Unmarshal(file, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	TowerDefs = make(map[string]TowerDefinition)
	for _, def := range towerDefs {
		if err := validateTower(def); err != nil {
			return fmt.Errorf("tower %q: %w", def.ID, err)
		}
		TowerDefs[def.ID] = def
	}
	return nil
}

// LoadEnemyDefinitions reads the enemy configuration file and populates EnemyDefs.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	EnemyDefs = make(map[string]EnemyDefinition)
	for _, def := range enemyDefs {
		EnemyDefs[def.ID] = def
	}
	return nil
}

// LoadProjectileDefinitions reads the projectile archetype file and populates
// ProjectileDefs. Must run before LoadTowerDefinitions so tower references
// can be validated.
func LoadProjectileDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read projectile definitions file: %w", err)
	}

	var projDefs []ProjectileDefinition
	if err := json.Unmarshal(file, &projDefs); err != nil {
		return fmt.Errorf("failed to unmarshal projectile definitions: %w", err)
	}

	ProjectileDefs = make(map[string]ProjectileDefinition)
	for _, def := range projDefs {
		ProjectileDefs[def.ID] = def
	}
	return nil
}

func validateTower(def TowerDefinition) error {
	if def.Combat == nil {
		return nil
	}
	if !def.Combat.Priority.Valid() {
		return fmt.Errorf("unknown target priority %q", def.Combat.Priority)
	}
	if id := def.Combat.ProjectileID; id != "" {
		if _, ok := ProjectileDefs[id]; !ok {
			return fmt.Errorf("unknown projectile archetype %q", id)
		}
	}
	return nil
}
