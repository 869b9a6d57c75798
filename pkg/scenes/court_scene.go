package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/match"
	"github.com/decker502/pong/pkg/modules"
)

// CourtScene 比赛场景：推进模拟并显示比分，Esc 返回主菜单
type CourtScene struct {
	court *modules.CourtModule
	input Input
}

// NewCourtScene 创建比赛场景
func NewCourtScene(court *modules.CourtModule, input Input) *CourtScene {
	return &CourtScene{court: court, input: input}
}

// Update 实现 Scene
func (s *CourtScene) Update(deltaTime float64) {
	if s.input.anyJustPressed(ebiten.KeyEscape) {
		s.court.Match.GoToMenu()
		return
	}
	s.court.Update(deltaTime)
}

// Draw 实现 Scene
func (s *CourtScene) Draw(screen *ebiten.Image) {
	s.court.RenderSystem.Draw(screen)

	display := s.court.Config.Display
	drawCentered(screen, Scoreboard(s.court.Match.Scores(), s.court.Config.Scoring.Policy), display.Width, 8)
	drawText(screen, "ESC: menu", 8, display.Height-20)
}

// Scoreboard 比分栏文字
func Scoreboard(scores match.Scores, policy string) string {
	if policy == config.ScoringRaceToRounds {
		return fmt.Sprintf("P1 %d   [%d]  Round %d  [%d]   %d P2",
			scores.Player1, scores.Player1RoundWins, scores.CurrentRound, scores.Player2RoundWins, scores.Player2)
	}
	return fmt.Sprintf("P1 %d  -  %d P2", scores.Player1, scores.Player2)
}
