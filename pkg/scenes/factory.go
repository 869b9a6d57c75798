package scenes

import (
	"github.com/decker502/pong/pkg/game"
	"github.com/decker502/pong/pkg/match"
	"github.com/decker502/pong/pkg/modules"
)

// NewSceneFactory 返回按对局状态创建场景的工厂
func NewSceneFactory(court *modules.CourtModule, input Input) game.SceneFactory {
	return func(state match.State) game.Scene {
		switch state {
		case match.StateMenu:
			return NewMenuScene(court, input)
		case match.StatePlaying:
			return NewCourtScene(court, input)
		case match.StateGameOver:
			return NewGameOverScene(court, input)
		default:
			return nil
		}
	}
}
