package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/pong/pkg/geometry"
)

// 反弹角度策略名称
const (
	BouncePolicyLinear   = "linear"
	BouncePolicyDeadZone = "deadZone"
)

// 计分策略名称
const (
	ScoringRaceToRounds = "raceToRounds"
	ScoringWinByMargin  = "winByMargin"
	ScoringEndless      = "endless"
)

// 球拍控制器类型
const (
	ControllerKeyboard = "keyboard"
	ControllerAI       = "ai"
	// ControllerPointer 球拍跟随鼠标 / 触摸点（移动端默认）
	ControllerPointer = "pointer"
)

// DefaultConfigPath 默认配置文件路径（已嵌入二进制）
const DefaultConfigPath = "data/pong.yaml"

// PongConfig 对局总配置
//
// 所有坐标都是世界坐标（球场中心为原点，Y 轴向上）。
// 配置文件位置: data/pong.yaml
type PongConfig struct {
	Court      CourtConfig      `yaml:"court"`
	Ball       BallConfig       `yaml:"ball"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Bounce     BounceConfig     `yaml:"bounce"`
	Wall       WallConfig       `yaml:"wall"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Match      MatchConfig      `yaml:"match"`
	Players    PlayersConfig    `yaml:"players"`
	Display    DisplayConfig    `yaml:"display"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// CourtConfig 球场边界
type CourtConfig struct {
	// LeftBoundary 球心 X 小于此值时玩家1得分
	LeftBoundary float64 `yaml:"leftBoundary"`
	// RightBoundary 球心 X 大于此值时玩家2得分
	RightBoundary float64 `yaml:"rightBoundary"`
	// WallY 上下墙内表面到中线的距离
	WallY float64 `yaml:"wallY"`
	// WallThickness 墙厚度
	WallThickness float64 `yaml:"wallThickness"`
}

// BallConfig 球的初始参数
type BallConfig struct {
	StartingPosition geometry.Vec2 `yaml:"startingPosition"`
	StartingSpeed    float64       `yaml:"startingSpeed"` // 单位/秒
	Radius           float64       `yaml:"radius"`
}

// PaddleConfig 球拍参数
type PaddleConfig struct {
	HalfHeight float64 `yaml:"halfHeight"`
	HalfWidth  float64 `yaml:"halfWidth"`
	LeftX      float64 `yaml:"leftX"`
	RightX     float64 `yaml:"rightX"`
	MinY       float64 `yaml:"minY"`
	MaxY       float64 `yaml:"maxY"`
	MoveSpeed  float64 `yaml:"moveSpeed"` // 单位/秒
}

// BounceConfig 球拍反弹角度策略
type BounceConfig struct {
	// Policy "linear" 或 "deadZone"
	Policy string `yaml:"policy"`
	// MaxBounceAngle 最大反弹角（度），必须在 (0, 90) 之间
	MaxBounceAngle float64 `yaml:"maxBounceAngle"`
	// CenterDeadZone 中心死区（归一化击球位置），仅 deadZone 策略使用
	CenterDeadZone float64 `yaml:"centerDeadZone"`
}

// WallConfig 墙反弹参数
type WallConfig struct {
	RearmCooldown float64 `yaml:"rearmCooldown"` // 秒（模拟时间）
	Nudge         float64 `yaml:"nudge"`
}

// ScoringConfig 计分策略
type ScoringConfig struct {
	Policy           string `yaml:"policy"`
	PointsToWinRound int    `yaml:"pointsToWinRound"`
	RoundsToWinMatch int    `yaml:"roundsToWinMatch"`
	WinningScore     int    `yaml:"winningScore"`
	MinMargin        int    `yaml:"minMargin"`
}

// MatchConfig 对局流程参数
type MatchConfig struct {
	// ResetDelay 得分后重新发球的延迟（秒）
	ResetDelay float64 `yaml:"resetDelay"`
}

// PlayersConfig 左右球拍的控制方式
type PlayersConfig struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
	// AIDeadZone AI 跟随球的死区（单位）
	AIDeadZone float64 `yaml:"aiDeadZone"`
	// PointerDeadZone 鼠标 / 触摸跟随的死区（单位）
	PointerDeadZone float64 `yaml:"pointerDeadZone"`
}

// DisplayConfig 窗口与像素映射
type DisplayConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	PixelsPerUnit float64 `yaml:"pixelsPerUnit"`
	Title         string  `yaml:"title"`
}

// SimulationConfig 模拟参数
type SimulationConfig struct {
	TickRate int   `yaml:"tickRate"`
	Seed     int64 `yaml:"seed"` // 0 表示使用时间种子
}

// DefaultPongConfig 返回默认配置
func DefaultPongConfig() *PongConfig {
	return &PongConfig{
		Court: CourtConfig{
			LeftBoundary:  -12,
			RightBoundary: 12,
			WallY:         5,
			WallThickness: 0.5,
		},
		Ball: BallConfig{
			StartingPosition: geometry.Vec2{},
			StartingSpeed:    8,
			Radius:           0.25,
		},
		Paddle: PaddleConfig{
			HalfHeight: 1,
			HalfWidth:  0.25,
			LeftX:      -10,
			RightX:     10,
			MinY:       -4,
			MaxY:       4,
			MoveSpeed:  10,
		},
		Bounce: BounceConfig{
			Policy:         BouncePolicyLinear,
			MaxBounceAngle: 75,
			CenterDeadZone: 0.2,
		},
		Wall: WallConfig{
			RearmCooldown: 0.05,
			Nudge:         0.01,
		},
		Scoring: ScoringConfig{
			Policy:           ScoringRaceToRounds,
			PointsToWinRound: 5,
			RoundsToWinMatch: 3,
			WinningScore:     11,
			MinMargin:        2,
		},
		Match: MatchConfig{
			ResetDelay: 1.5,
		},
		Players: PlayersConfig{
			Left:            ControllerKeyboard,
			Right:           ControllerKeyboard,
			AIDeadZone:      0.1,
			PointerDeadZone: 0.1,
		},
		Display: DisplayConfig{
			Width:         800,
			Height:        450,
			PixelsPerUnit: 32,
			Title:         "Pong",
		},
		Simulation: SimulationConfig{
			TickRate: 60,
			Seed:     0,
		},
	}
}

// LoadPongConfig 加载对局配置
//
// 从指定路径加载 YAML 格式的配置文件，未填写的字段使用默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/pong.yaml"）
//
// 返回:
//   - *PongConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadPongConfig(path string) (*PongConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pong config: %w", err)
	}
	return ParsePongConfig(data)
}

// ParsePongConfig 解析 YAML 数据（用于嵌入资源）
func ParsePongConfig(data []byte) (*PongConfig, error) {
	cfg := DefaultPongConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse pong config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pong config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 返回:
//   - error: 验证失败时返回错误，成功返回 nil
func (c *PongConfig) Validate() error {
	if c.Court.LeftBoundary >= c.Court.RightBoundary {
		return fmt.Errorf("court boundaries invalid: left(%.2f) >= right(%.2f)",
			c.Court.LeftBoundary, c.Court.RightBoundary)
	}
	if c.Court.WallY <= 0 {
		return fmt.Errorf("court wallY must be > 0, got %.2f", c.Court.WallY)
	}

	if c.Ball.StartingSpeed <= 0 {
		return fmt.Errorf("ball startingSpeed must be > 0, got %.2f", c.Ball.StartingSpeed)
	}
	if c.Ball.Radius < 0 {
		return fmt.Errorf("ball radius must be >= 0, got %.2f", c.Ball.Radius)
	}

	if c.Paddle.MinY > c.Paddle.MaxY {
		return fmt.Errorf("paddle range invalid: minY(%.2f) > maxY(%.2f)", c.Paddle.MinY, c.Paddle.MaxY)
	}
	if c.Paddle.HalfHeight < 0 || c.Paddle.HalfWidth < 0 {
		return fmt.Errorf("paddle extents must be >= 0")
	}
	if c.Paddle.LeftX >= c.Paddle.RightX {
		return fmt.Errorf("paddle x invalid: leftX(%.2f) >= rightX(%.2f)", c.Paddle.LeftX, c.Paddle.RightX)
	}

	switch c.Bounce.Policy {
	case BouncePolicyLinear, BouncePolicyDeadZone:
	default:
		return fmt.Errorf("unknown bounce policy '%s'", c.Bounce.Policy)
	}
	if c.Bounce.MaxBounceAngle <= 0 || c.Bounce.MaxBounceAngle >= 90 {
		return fmt.Errorf("maxBounceAngle must be in (0, 90), got %.2f", c.Bounce.MaxBounceAngle)
	}
	if c.Bounce.CenterDeadZone < 0 || c.Bounce.CenterDeadZone >= 1 {
		return fmt.Errorf("centerDeadZone must be in [0, 1), got %.2f", c.Bounce.CenterDeadZone)
	}

	if c.Wall.RearmCooldown < 0 || c.Wall.Nudge < 0 {
		return fmt.Errorf("wall rearmCooldown and nudge must be >= 0")
	}

	switch c.Scoring.Policy {
	case ScoringRaceToRounds:
		if c.Scoring.PointsToWinRound <= 0 || c.Scoring.RoundsToWinMatch <= 0 {
			return fmt.Errorf("raceToRounds needs pointsToWinRound > 0 and roundsToWinMatch > 0")
		}
	case ScoringWinByMargin:
		if c.Scoring.WinningScore <= 0 || c.Scoring.MinMargin <= 0 {
			return fmt.Errorf("winByMargin needs winningScore > 0 and minMargin > 0")
		}
	case ScoringEndless:
	default:
		return fmt.Errorf("unknown scoring policy '%s'", c.Scoring.Policy)
	}

	if c.Match.ResetDelay < 0 {
		return fmt.Errorf("match resetDelay must be >= 0, got %.2f", c.Match.ResetDelay)
	}

	for side, ctrl := range map[string]string{"left": c.Players.Left, "right": c.Players.Right} {
		switch ctrl {
		case ControllerKeyboard, ControllerAI, ControllerPointer:
		default:
			return fmt.Errorf("unknown %s controller '%s'", side, ctrl)
		}
	}

	if c.Display.Width <= 0 || c.Display.Height <= 0 || c.Display.PixelsPerUnit <= 0 {
		return fmt.Errorf("display width, height and pixelsPerUnit must be > 0")
	}
	if c.Simulation.TickRate <= 0 {
		return fmt.Errorf("simulation tickRate must be > 0, got %d", c.Simulation.TickRate)
	}

	return nil
}

// TickDelta 返回固定步长（秒）
func (c *PongConfig) TickDelta() float64 {
	return 1.0 / float64(c.Simulation.TickRate)
}
