// verify_match 无窗口运行 AI 对战，检查球速守恒、得分锁存和对局状态
//
// 用法:
//
//	go run ./cmd/verify_match -ticks 36000 -seed 7 -scoring winByMargin -paddle-speed 6
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/decker502/pong/pkg/app"
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/match"
	"github.com/decker502/pong/pkg/modules"
	"github.com/decker502/pong/pkg/types"
)

var (
	ticks       = flag.Int("ticks", 60*600, "模拟步数")
	seed        = flag.Int64("seed", 1, "随机种子（0 表示时间种子）")
	configPath  = flag.String("config", "", "配置文件路径（默认使用内置默认值）")
	scoring     = flag.String("scoring", "", "计分策略覆盖: raceToRounds | winByMargin | endless")
	bounce      = flag.String("bounce", "", "球拍反弹策略覆盖: linear | deadZone")
	paddleSpeed = flag.Float64("paddle-speed", 0, "AI 球拍速度覆盖（较小的值会让 AI 失误）")
	verbose     = flag.Bool("verbose", false, "显示详细调试信息")
)

// report 运行统计
type report struct {
	points      int
	matches     int
	maxDrift    float64
	violations  int
	lastWinner  types.Player
	finalScores match.Scores
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	cfg, err := app.LoadConfig(app.Config{ConfigPath: *configPath, Scoring: *scoring, Bounce: *bounce})
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ 配置加载失败: %v\n", err)
		os.Exit(1)
	}
	cfg.Players.Left = config.ControllerAI
	cfg.Players.Right = config.ControllerAI
	if *paddleSpeed > 0 {
		cfg.Paddle.MoveSpeed = *paddleSpeed
	}

	court, err := modules.NewCourtModule(cfg, app.NewRand(*seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ 球场初始化失败: %v\n", err)
		os.Exit(1)
	}

	r := run(court, cfg, *ticks)

	fmt.Printf("=== verify_match: %d ticks (%.1fs), scoring=%s, bounce=%s ===\n",
		*ticks, float64(*ticks)*cfg.TickDelta(), cfg.Scoring.Policy, cfg.Bounce.Policy)
	fmt.Printf("points scored:   %d\n", r.points)
	fmt.Printf("matches played:  %d (last winner: %s)\n", r.matches, r.lastWinner)
	fmt.Printf("final scores:    %+v\n", r.finalScores)
	fmt.Printf("max speed drift: %.3e\n", r.maxDrift)

	if r.violations > 0 {
		fmt.Printf("❌ %d invariant violations\n", r.violations)
		os.Exit(1)
	}
	fmt.Println("✅ all invariants held")
}

// run 推进模拟；比赛结束后立即重新开始
func run(court *modules.CourtModule, cfg *config.PongConfig, n int) report {
	var r report
	dt := cfg.TickDelta()

	court.Match.SetOnMatchWon(func(winner types.Player) {
		r.matches++
		r.lastWinner = winner
	})
	court.Match.StartGame()

	for i := 0; i < n; i++ {
		latched := court.Ball.PointAwarded()
		before := court.Match.Scores()
		court.Update(dt)
		after := court.Match.Scores()

		// 锁存从未置位变为置位即一次得分
		if !latched && court.Ball.PointAwarded() {
			r.points++
		}
		if after.Player1-before.Player1 > 1 || after.Player2-before.Player2 > 1 {
			fmt.Fprintf(os.Stderr, "tick %d: more than one point in a single step: %+v -> %+v\n", i, before, after)
			r.violations++
		}

		if court.Ball.IsActive() {
			drift := math.Abs(court.Ball.Speed() - cfg.Ball.StartingSpeed)
			r.maxDrift = math.Max(r.maxDrift, drift)
			if drift > 1e-6 {
				fmt.Fprintf(os.Stderr, "tick %d: speed drifted to %.9f\n", i, court.Ball.Speed())
				r.violations++
			}
		}

		if court.Match.State() == match.StateGameOver {
			court.Match.RestartGame()
		}
	}

	r.finalScores = court.Match.Scores()
	return r
}
