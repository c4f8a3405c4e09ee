// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-combat-core/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the wave counter and base health overlay.
type HUD struct {
	face font.Face
}

func NewHUD() *HUD {
	return &HUD{face: basicfont.Face7x13}
}

func (h *HUD) Draw(screen *ebiten.Image, wave, baseHealth, liveEnemies int, over bool) {
	line := fmt.Sprintf("Wave %d   Base %d   Enemies %d", wave, baseHealth, liveEnemies)
	text.Draw(screen, line, h.face, 16, 24, config.TextLightColor)
	if over {
		text.Draw(screen, "BASE DESTROYED", h.face, config.ScreenWidth/2-56, config.ScreenHeight/2, config.TextLightColor)
	}
}
