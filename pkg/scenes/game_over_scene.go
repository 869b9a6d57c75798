package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/pong/pkg/modules"
)

// GameOverScene 比赛结束：显示胜者，R / Enter / 点击重新开始，M / Esc 返回主菜单
type GameOverScene struct {
	court *modules.CourtModule
	input Input
}

// NewGameOverScene 创建比赛结束场景
func NewGameOverScene(court *modules.CourtModule, input Input) *GameOverScene {
	return &GameOverScene{court: court, input: input}
}

// Update 实现 Scene
func (s *GameOverScene) Update(deltaTime float64) {
	switch {
	case s.input.anyJustPressed(ebiten.KeyR, ebiten.KeyEnter), s.input.tapped():
		s.court.Match.RestartGame()
	case s.input.anyJustPressed(ebiten.KeyM, ebiten.KeyEscape):
		s.court.Match.GoToMenu()
	}
}

// Draw 实现 Scene
func (s *GameOverScene) Draw(screen *ebiten.Image) {
	s.court.RenderSystem.Draw(screen)

	display := s.court.Config.Display
	mid := display.Height / 2
	drawCentered(screen, Scoreboard(s.court.Match.Scores(), s.court.Config.Scoring.Policy), display.Width, 8)
	drawCentered(screen, fmt.Sprintf("%s Wins!", s.court.Match.Winner()), display.Width, mid-20)
	drawCentered(screen, "R / tap: restart    M: menu", display.Width, mid+10)
}
