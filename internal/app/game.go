// internal/app/game.go
package app

import (
	"fmt"

	"go-combat-core/internal/combat"
	"go-combat-core/internal/config"
	"go-combat-core/internal/defs"
	"go-combat-core/internal/event"
	"go-combat-core/internal/system"
	"go-combat-core/internal/types"
	"go-combat-core/internal/ui"
	"go-combat-core/pkg/vec"

	"github.com/hajimehoshi/ebiten/v2"
)

// towerSpot places one tower definition at a fixed position. The demo has
// no build UI; placement is static.
type towerSpot struct {
	defID string
	pos   vec.Vec3
}

var demoTowers = []towerSpot{
	{"TOWER_CANNON", vec.Vec3{X: 320, Z: 320}},
	{"TOWER_CANNON", vec.Vec3{X: 760, Z: 560}},
	{"TOWER_FROST", vec.Vec3{X: 540, Z: 280}},
	{"TOWER_MORTAR", vec.Vec3{X: 480, Z: 620}},
	{"TOWER_VENOM", vec.Vec3{X: 880, Z: 320}},
	{"TOWER_SNIPER", vec.Vec3{X: 650, Z: 450}},
}

// demoPath is the fixed waypoint path, on the ground plane (X/Z).
var demoPath = []vec.Vec3{
	{X: -20, Z: 450},
	{X: 300, Z: 450},
	{X: 300, Z: 200},
	{X: 700, Z: 200},
	{X: 700, Z: 650},
	{X: 950, Z: 650},
	{X: 950, Z: 400},
	{X: 1220, Z: 400},
}

// Game holds the demo's state: the combat world plus everything the core
// treats as an external collaborator (spawning, movement, base health,
// rendering).
type Game struct {
	World   *combat.World
	Spawner *WaveSpawner
	Render  *system.RenderSystem
	HUD     *ui.HUD

	enemies    []*Enemy
	byID       map[types.EntityID]*Enemy
	BaseHealth int
	gameTime   float64
	over       bool
}

// NewGame loads the definition libraries and assembles the world.
func NewGame(assetsDir string) (*Game, error) {
	if err := defs.LoadProjectileDefinitions(assetsDir + "/projectiles.json"); err != nil {
		return nil, err
	}
	if err := defs.LoadTowerDefinitions(assetsDir + "/towers.json"); err != nil {
		return nil, err
	}
	if err := defs.LoadEnemyDefinitions(assetsDir + "/enemies.json"); err != nil {
		return nil, err
	}

	world := combat.NewWorld()
	g := &Game{
		World:      world,
		Spawner:    NewWaveSpawner(world, demoPath, "ENEMY_RUNNER"),
		Render:     system.NewRenderSystem(world, demoPath),
		HUD:        ui.NewHUD(),
		byID:       make(map[types.EntityID]*Enemy),
		BaseHealth: config.BaseHealth,
	}

	for _, spot := range demoTowers {
		def, ok := defs.TowerDefs[spot.defID]
		if !ok {
			return nil, fmt.Errorf("demo references unknown tower %q", spot.defID)
		}
		if _, err := world.AddUnit(def, spot.pos, types.CategoryEnemy); err != nil {
			return nil, fmt.Errorf("placing %s: %w", spot.defID, err)
		}
	}

	world.Events().Subscribe(event.EnemyLeaked, event.ListenerFunc(func(event.Event) {
		g.BaseHealth -= config.DamagePerLeak
		if g.BaseHealth <= 0 {
			g.BaseHealth = 0
			g.over = true
		}
	}))
	return g, nil
}

// Over reports whether the base fell.
func (g *Game) Over() bool { return g.over }

// GameTime is total simulated time in seconds.
func (g *Game) GameTime() float64 { return g.gameTime }

// Update advances one frame: spawn, enemy movement, then the combat tick
// (units, projectiles, effect trackers), then cleanup of dead enemies.
func (g *Game) Update(dt float64) {
	if g.over {
		return
	}
	g.gameTime += dt

	for _, e := range g.Spawner.Update(dt, len(g.enemies)) {
		g.enemies = append(g.enemies, e)
		g.byID[e.ID] = e
	}

	for _, e := range g.enemies {
		e.Move(dt)
	}

	g.World.Update(dt)

	g.cleanupDeadEnemies()
}

func (g *Game) cleanupDeadEnemies() {
	kept := g.enemies[:0]
	for _, e := range g.enemies {
		if e.Alive() {
			kept = append(kept, e)
			continue
		}
		g.World.RemoveTarget(e.ID)
		delete(g.byID, e.ID)
	}
	for i := len(kept); i < len(g.enemies); i++ {
		g.enemies[i] = nil
	}
	g.enemies = kept
}

// Draw renders the scene and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.Render.Draw(screen, g.enemyViews())
	g.HUD.Draw(screen, g.Spawner.Wave(), g.BaseHealth, len(g.enemies), g.over)
}

func (g *Game) enemyViews() []system.EnemyView {
	views := make([]system.EnemyView, 0, len(g.enemies))
	for _, e := range g.enemies {
		views = append(views, system.EnemyView{
			Pos:            e.AimPoint(),
			HealthFraction: float64(e.Health()) / float64(e.Def.Health),
			Color:          e.Def.Visuals.Color,
			Slowed:         e.Tracker.Find(combat.EffectSlow) != nil,
		})
	}
	return views
}
