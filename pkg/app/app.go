// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/embedded"
	"github.com/decker502/pong/pkg/game"
	"github.com/decker502/pong/pkg/match"
	"github.com/decker502/pong/pkg/modules"
	"github.com/decker502/pong/pkg/scenes"
	"github.com/decker502/pong/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部配置文件路径，为空则使用嵌入的默认配置
	ConfigPath string
	// Scoring 覆盖计分策略（raceToRounds / winByMargin / endless），为空不覆盖
	Scoring string
	// Bounce 覆盖球拍反弹策略（linear / deadZone），为空不覆盖
	Bounce string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	court                    *modules.CourtModule
	cfg                      *config.PongConfig
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// LoadConfig 加载配置
// 优先读取 path 指定的文件，否则读取嵌入的 data/pong.yaml，再应用命令行覆盖
func LoadConfig(cfg Config) (*config.PongConfig, error) {
	var (
		pongCfg *config.PongConfig
		err     error
	)
	switch {
	case cfg.ConfigPath != "":
		pongCfg, err = config.LoadPongConfig(cfg.ConfigPath)
	case embedded.IsInitialized():
		var data []byte
		data, err = embedded.ReadFile(config.DefaultConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded config: %w", err)
		}
		pongCfg, err = config.ParsePongConfig(data)
	default:
		pongCfg = config.DefaultPongConfig()
	}
	if err != nil {
		return nil, err
	}

	if cfg.Scoring != "" {
		pongCfg.Scoring.Policy = cfg.Scoring
	}
	if cfg.Bounce != "" {
		pongCfg.Bounce.Policy = cfg.Bounce
	}
	// 移动端没有键盘，键盘玩家改为触摸控制
	if utils.IsMobile() {
		if pongCfg.Players.Left == config.ControllerKeyboard {
			pongCfg.Players.Left = config.ControllerPointer
		}
		if pongCfg.Players.Right == config.ControllerKeyboard {
			pongCfg.Players.Right = config.ControllerPointer
		}
	}
	if err := pongCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pong config: %w", err)
	}
	return pongCfg, nil
}

// NewRand 根据配置创建随机数来源；seed 为 0 时使用当前时间
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)
	return rand.New(rand.NewSource(seed))
}

// NewApp 创建并初始化游戏应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	pongCfg, err := LoadConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	log.Printf("[Config] scoring=%s, bounce=%s, players=%s/%s",
		pongCfg.Scoring.Policy, pongCfg.Bounce.Policy, pongCfg.Players.Left, pongCfg.Players.Right)

	court, err := modules.NewCourtModule(pongCfg, NewRand(pongCfg.Simulation.Seed))
	if err != nil {
		return nil, fmt.Errorf("球场初始化失败: %w", err)
	}

	// 创建场景管理器，场景随对局状态切换
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(scenes.NewSceneFactory(court, scenes.Input{
		KeyJustPressed: inpututil.IsKeyJustPressed,
		Tapped:         utils.IsJustTapped,
	}))
	court.SetOnStateChanged(func(from, to match.State) {
		sceneManager.ShowState(to)
	})
	sceneManager.ShowState(court.Match.State())

	return &App{
		sceneManager: sceneManager,
		court:        court,
		cfg:          pongCfg,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（tickRate 由配置决定，默认每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Display.Width, a.cfg.Display.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.cfg.Display.Width, a.cfg.Display.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(a.cfg.TickDelta())
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Display.Width, a.cfg.Display.Height
}

// WindowSize 返回配置的窗口尺寸
func (a *App) WindowSize() (int, int) {
	return a.cfg.Display.Width, a.cfg.Display.Height
}

// Title 返回窗口标题
func (a *App) Title() string {
	return a.cfg.Display.Title
}

// TickRate 返回每秒模拟步数
func (a *App) TickRate() int {
	return a.cfg.Simulation.TickRate
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// GetCourt 返回球场模块
func (a *App) GetCourt() *modules.CourtModule {
	return a.court
}
