// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	// Combat core tuning.
	SpatialQueryCapacity = 32  // slots in the proximity query arena
	TargetRescanInterval = 0.1 // seconds between full target rescans
	AimToleranceDeg      = 5.0 // angular error under which a turret counts as aimed
	AimLeadIterations    = 3   // fixed refinement passes for lead prediction
	AimMaxLeadTime       = 3.0 // seconds; clamp on predicted time-to-hit

	// Demo tuning.
	BaseHealth              = 100
	DamagePerLeak           = 10
	EnemiesPerWave          = 6
	EnemiesIncrementPerWave = 2
	InitialSpawnInterval    = 1.2 // seconds
	MinSpawnInterval        = 0.3
	SpawnIntervalDecrement  = 0.1
	WavePause               = 4.0 // seconds between waves
	EnemyRadius             = 10.0
	TowerRadius             = 14.0
	ProjectileRadius        = 4.0
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	PathColor        = color.RGBA{70, 100, 120, 220}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	RangeRingColor   = color.RGBA{70, 130, 180, 90}
)
