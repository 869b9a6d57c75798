package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/pong/pkg/modules"
)

// MenuScene 主菜单：显示标题与操作说明，Enter / Space 或点击开始比赛
type MenuScene struct {
	court *modules.CourtModule
	input Input
}

// NewMenuScene 创建主菜单场景
func NewMenuScene(court *modules.CourtModule, input Input) *MenuScene {
	return &MenuScene{court: court, input: input}
}

// Update 实现 Scene
func (s *MenuScene) Update(deltaTime float64) {
	if s.input.anyJustPressed(ebiten.KeyEnter, ebiten.KeySpace) || s.input.tapped() {
		s.court.Match.StartGame()
	}
}

// Draw 实现 Scene
func (s *MenuScene) Draw(screen *ebiten.Image) {
	s.court.RenderSystem.Draw(screen)

	display := s.court.Config.Display
	mid := display.Height / 2
	drawCentered(screen, display.Title, display.Width, mid-60)
	drawCentered(screen, "Press ENTER / SPACE or tap to start", display.Width, mid-20)
	drawCentered(screen, "Left: W / S    Right: Up / Down", display.Width, mid+10)
	drawCentered(screen, fmt.Sprintf("Scoring: %s", s.court.Match.Policy().Name()), display.Width, mid+40)
}
