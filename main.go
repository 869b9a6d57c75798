package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/pong/pkg/app"
	"github.com/decker502/pong/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "配置文件路径（默认使用内置 data/pong.yaml）")
	scoring    = flag.String("scoring", "", "计分策略覆盖: raceToRounds | winByMargin | endless")
	bounce     = flag.String("bounce", "", "球拍反弹策略覆盖: linear | deadZone")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Scoring:    *scoring,
		Bounce:     *bounce,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	width, height := gameApp.WindowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(gameApp.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(gameApp.TickRate())

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
