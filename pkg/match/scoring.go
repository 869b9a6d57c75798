package match

import (
	"fmt"

	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/types"
)

// Outcome 计分判定结果
type Outcome int

const (
	// OutcomeContinue 比赛继续
	OutcomeContinue Outcome = iota
	// OutcomeRoundWon 一方赢下本局
	OutcomeRoundWon
	// OutcomeMatchWon 一方赢下整场比赛
	OutcomeMatchWon
	// OutcomeIgnored 得分被忽略（不在 Playing 状态或玩家无效）
	OutcomeIgnored
)

// String 返回判定结果的字符串表示
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "Continue"
	case OutcomeRoundWon:
		return "RoundWon"
	case OutcomeMatchWon:
		return "MatchWon"
	case OutcomeIgnored:
		return "Ignored"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Verdict 计分判定
type Verdict struct {
	Outcome Outcome
	Player  types.Player
}

// Continue 比赛继续
func Continue() Verdict { return Verdict{Outcome: OutcomeContinue} }

// RoundWon 某玩家赢下本局
func RoundWon(p types.Player) Verdict { return Verdict{Outcome: OutcomeRoundWon, Player: p} }

// MatchWon 某玩家赢下比赛
func MatchWon(p types.Player) Verdict { return Verdict{Outcome: OutcomeMatchWon, Player: p} }

// Scores 比分快照
type Scores struct {
	Player1          int
	Player2          int
	Player1RoundWins int
	Player2RoundWins int
	CurrentRound     int
}

// Points 返回指定玩家的当前得分
func (s Scores) Points(p types.Player) int {
	switch p {
	case types.Player1:
		return s.Player1
	case types.Player2:
		return s.Player2
	default:
		return 0
	}
}

// RoundWins 返回指定玩家的胜局数
func (s Scores) RoundWins(p types.Player) int {
	switch p {
	case types.Player1:
		return s.Player1RoundWins
	case types.Player2:
		return s.Player2RoundWins
	default:
		return 0
	}
}

// ScoringPolicy 胜负判定策略
type ScoringPolicy interface {
	// Evaluate 在每次得分后调用，判定比赛是否继续
	Evaluate(s Scores) Verdict
	// MatchWinner 在记录胜局后调用，返回比赛胜者；无胜者返回 PlayerNone
	MatchWinner(s Scores) types.Player
	// Name 策略名称
	Name() string
}

// RaceToRounds 局制：先得 PointsToWinRound 分赢一局，先赢 RoundsToWinMatch 局赢比赛
type RaceToRounds struct {
	PointsToWinRound int
	RoundsToWinMatch int
}

// Evaluate 实现 ScoringPolicy
func (r RaceToRounds) Evaluate(s Scores) Verdict {
	if s.Player1 >= r.PointsToWinRound {
		return RoundWon(types.Player1)
	}
	if s.Player2 >= r.PointsToWinRound {
		return RoundWon(types.Player2)
	}
	return Continue()
}

// MatchWinner 实现 ScoringPolicy
func (r RaceToRounds) MatchWinner(s Scores) types.Player {
	if s.Player1RoundWins >= r.RoundsToWinMatch {
		return types.Player1
	}
	if s.Player2RoundWins >= r.RoundsToWinMatch {
		return types.Player2
	}
	return types.PlayerNone
}

// Name 实现 ScoringPolicy
func (r RaceToRounds) Name() string { return config.ScoringRaceToRounds }

// WinByMargin 分差制（deuce 规则）：达到 WinningScore 且领先至少 MinMargin 分获胜
type WinByMargin struct {
	WinningScore int
	MinMargin    int
}

// Evaluate 实现 ScoringPolicy
func (w WinByMargin) Evaluate(s Scores) Verdict {
	if s.Player1 >= w.WinningScore && s.Player1-s.Player2 >= w.MinMargin {
		return MatchWon(types.Player1)
	}
	if s.Player2 >= w.WinningScore && s.Player2-s.Player1 >= w.MinMargin {
		return MatchWon(types.Player2)
	}
	return Continue()
}

// MatchWinner 实现 ScoringPolicy（没有局制，不会通过胜局决出胜者）
func (w WinByMargin) MatchWinner(Scores) types.Player { return types.PlayerNone }

// Name 实现 ScoringPolicy
func (w WinByMargin) Name() string { return config.ScoringWinByMargin }

// Endless 无尽模式：只计分，比赛不会自行结束
type Endless struct{}

// Evaluate 实现 ScoringPolicy
func (Endless) Evaluate(Scores) Verdict { return Continue() }

// MatchWinner 实现 ScoringPolicy
func (Endless) MatchWinner(Scores) types.Player { return types.PlayerNone }

// Name 实现 ScoringPolicy
func (Endless) Name() string { return config.ScoringEndless }

// NewScoringPolicy 根据配置创建计分策略
func NewScoringPolicy(cfg config.ScoringConfig) (ScoringPolicy, error) {
	switch cfg.Policy {
	case config.ScoringRaceToRounds:
		if cfg.PointsToWinRound <= 0 || cfg.RoundsToWinMatch <= 0 {
			return nil, fmt.Errorf("raceToRounds needs positive thresholds, got %d/%d",
				cfg.PointsToWinRound, cfg.RoundsToWinMatch)
		}
		return RaceToRounds{PointsToWinRound: cfg.PointsToWinRound, RoundsToWinMatch: cfg.RoundsToWinMatch}, nil
	case config.ScoringWinByMargin:
		if cfg.WinningScore <= 0 || cfg.MinMargin <= 0 {
			return nil, fmt.Errorf("winByMargin needs positive thresholds, got %d/%d",
				cfg.WinningScore, cfg.MinMargin)
		}
		return WinByMargin{WinningScore: cfg.WinningScore, MinMargin: cfg.MinMargin}, nil
	case config.ScoringEndless:
		return Endless{}, nil
	default:
		return nil, fmt.Errorf("unknown scoring policy '%s'", cfg.Policy)
	}
}
