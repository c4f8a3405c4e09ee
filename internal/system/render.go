// internal/system/render.go
package system

import (
	"image/color"

	"go-combat-core/internal/combat"
	"go-combat-core/internal/config"
	"go-combat-core/pkg/vec"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EnemyView is the render-side snapshot of one enemy.
type EnemyView struct {
	Pos            vec.Vec3
	HealthFraction float64
	Color          color.RGBA
	Slowed         bool
}

var slowedTint = color.RGBA{90, 160, 255, 255}

// RenderSystem draws the ground-plane scene with ebiten vector primitives.
// World X maps to screen x, world Z to screen y.
type RenderSystem struct {
	world *combat.World
	path  []vec.Vec3
}

func NewRenderSystem(world *combat.World, path []vec.Vec3) *RenderSystem {
	return &RenderSystem{world: world, path: path}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, enemies []EnemyView) {
	screen.Fill(config.BackgroundColor)

	for i := 1; i < len(s.path); i++ {
		a, b := s.path[i-1], s.path[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Z), float32(b.X), float32(b.Z), 24, config.PathColor, true)
	}

	for _, unit := range s.world.Units() {
		x, y := float32(unit.Pos.X), float32(unit.Pos.Z)
		if unit.Def.Combat != nil {
			vector.DrawFilledCircle(screen, x, y, float32(unit.Def.Combat.Range), config.RangeRingColor, true)
		}
		vector.DrawFilledCircle(screen, x, y, config.TowerRadius+2, config.TowerStrokeColor, true)
		vector.DrawFilledCircle(screen, x, y, config.TowerRadius, unit.Def.Visuals.Color, true)
		if unit.Aiming != nil {
			tip := unit.Pos.Add(unit.Aiming.Facing().Scale(config.TowerRadius * 1.6))
			vector.StrokeLine(screen, x, y, float32(tip.X), float32(tip.Z), 3, config.TowerStrokeColor, true)
		}
	}

	for _, e := range enemies {
		// Shrink with lost health, the same cue the health bar would give.
		radius := float32((0.6 + 0.4*e.HealthFraction) * config.EnemyRadius)
		c := e.Color
		if e.Slowed {
			c = slowedTint
		}
		vector.DrawFilledCircle(screen, float32(e.Pos.X), float32(e.Pos.Z), radius, c, true)
	}

	s.world.ForEachProjectile(func(p *combat.Projectile) {
		pos := p.Pos()
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Z), config.ProjectileRadius, config.TextLightColor, true)
	})
}
