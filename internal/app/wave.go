// internal/app/wave.go
package app

import (
	"log"

	"go-combat-core/internal/combat"
	"go-combat-core/internal/config"
	"go-combat-core/internal/defs"
	"go-combat-core/internal/event"
	"go-combat-core/pkg/vec"
)

// WaveSpawner feeds enemies onto the path in numbered waves, each wave
// larger and faster-spawning than the last.
type WaveSpawner struct {
	world     *combat.World
	waypoints []vec.Vec3
	enemyID   string

	wave          int
	toSpawn       int
	spawnInterval float64
	spawnTimer    float64
	pauseTimer    float64
	waveRunning   bool
}

func NewWaveSpawner(world *combat.World, waypoints []vec.Vec3, enemyID string) *WaveSpawner {
	return &WaveSpawner{
		world:         world,
		waypoints:     waypoints,
		enemyID:       enemyID,
		spawnInterval: config.InitialSpawnInterval,
		pauseTimer:    1.0, // short grace before the first wave
	}
}

// Wave is the current wave number, 1-based once spawning starts.
func (s *WaveSpawner) Wave() int { return s.wave }

// Update advances spawn timers. liveEnemies is how many spawned enemies are
// still in play; the wave ends when spawning is done and the field is clear.
// Newly spawned enemies are returned for the caller to track.
func (s *WaveSpawner) Update(dt float64, liveEnemies int) []*Enemy {
	if !s.waveRunning {
		s.pauseTimer -= dt
		if s.pauseTimer <= 0 {
			s.startNextWave()
		}
		return nil
	}

	var spawned []*Enemy
	if s.toSpawn > 0 {
		s.spawnTimer += dt
		for s.spawnTimer >= s.spawnInterval && s.toSpawn > 0 {
			s.spawnTimer -= s.spawnInterval
			if e := s.spawnEnemy(); e != nil {
				spawned = append(spawned, e)
			}
			s.toSpawn--
		}
	} else if liveEnemies+len(spawned) == 0 {
		s.waveRunning = false
		s.pauseTimer = config.WavePause
		s.world.Events().Dispatch(event.Event{Type: event.WaveEnded, Data: s.wave})
	}
	return spawned
}

func (s *WaveSpawner) startNextWave() {
	s.wave++
	s.toSpawn = config.EnemiesPerWave + (s.wave-1)*config.EnemiesIncrementPerWave
	if s.wave > 1 {
		s.spawnInterval -= config.SpawnIntervalDecrement
		if s.spawnInterval < config.MinSpawnInterval {
			s.spawnInterval = config.MinSpawnInterval
		}
	}
	s.spawnTimer = s.spawnInterval // first enemy appears immediately
	s.waveRunning = true
}

func (s *WaveSpawner) spawnEnemy() *Enemy {
	id := s.enemyID
	// Every third wave is an armored one.
	if s.wave%3 == 0 {
		id = "ENEMY_BRUTE"
	}
	def, ok := defs.EnemyDefs[id]
	if !ok {
		log.Printf("WaveSpawner: enemy definition not found for ID: %s", id)
		return nil
	}
	return NewEnemy(s.world, def, s.waypoints)
}
