// Package match 管理比分与对局状态机
//
// Match 是比分和状态的唯一写入者，也是"球是否允许运动"的唯一判定者。
// 球、球拍和墙在构造时注入，不在运行时查找。
package match

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/pong/pkg/types"
)

// State 对局状态
type State int

const (
	// StateMenu 主菜单
	StateMenu State = iota
	// StatePlaying 比赛进行中
	StatePlaying
	// StateGameOver 比赛结束
	StateGameOver
)

// String 返回状态的字符串表示
func (s State) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// 启动时的致命配置错误
var (
	ErrNoBall          = errors.New("match: no ball configured")
	ErrNoScoringPolicy = errors.New("match: no scoring policy configured")
)

// ballResetTaskName 延迟发球任务名
const ballResetTaskName = "ball-reset"

// Activatable 可以被激活 / 停用的对局物体
type Activatable interface {
	SetActive(active bool)
}

// Ball 对局需要的球接口
type Ball interface {
	Activatable
	ResetBall()
}

// Options 对局可选参数
type Options struct {
	// ResetDelay 得分后重新发球的延迟（秒）
	ResetDelay float64
	// Scheduler 延迟任务调度器，为 nil 时自动创建
	Scheduler *Scheduler
}

// Match 对局状态机
type Match struct {
	state  State
	scores Scores
	winner types.Player

	ball    Ball
	paddles []Activatable
	walls   []Activatable
	policy  ScoringPolicy

	scheduler    *Scheduler
	resetDelay   float64
	pendingReset *Task
	// session 每次开始 / 重开 / 回菜单时递增，过期的延迟发球据此失效
	session uint64

	onStateChanged func(from, to State)
	onScoreChanged func(Scores)
	onMatchWon     func(winner types.Player)
}

// New 创建对局，初始状态为 Menu，所有对局物体处于停用状态
//
// 参数:
//   - ball: 球，不能为 nil（否则返回 ErrNoBall）
//   - paddles: 球拍
//   - walls: 墙
//   - policy: 计分策略，不能为 nil
//   - opts: 可选参数
func New(ball Ball, paddles, walls []Activatable, policy ScoringPolicy, opts Options) (*Match, error) {
	if ball == nil {
		return nil, ErrNoBall
	}
	if policy == nil {
		return nil, ErrNoScoringPolicy
	}

	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = NewScheduler()
	}

	m := &Match{
		state:      StateMenu,
		scores:     Scores{CurrentRound: 1},
		ball:       ball,
		paddles:    paddles,
		walls:      walls,
		policy:     policy,
		scheduler:  scheduler,
		resetDelay: opts.ResetDelay,
	}
	m.setObjectsActive(false)

	log.Printf("[Match] Initialized: policy=%s, paddles=%d, walls=%d, resetDelay=%.2fs",
		policy.Name(), len(paddles), len(walls), opts.ResetDelay)
	return m, nil
}

// SetOnStateChanged 设置状态切换回调
func (m *Match) SetOnStateChanged(fn func(from, to State)) {
	m.onStateChanged = fn
}

// SetOnScoreChanged 设置比分变化回调
func (m *Match) SetOnScoreChanged(fn func(Scores)) {
	m.onScoreChanged = fn
}

// SetOnMatchWon 设置比赛结束回调（用于显示胜者）
func (m *Match) SetOnMatchWon(fn func(winner types.Player)) {
	m.onMatchWon = fn
}

// StartGame 从菜单开始比赛
func (m *Match) StartGame() {
	log.Printf("[Match] StartGame (from %s)", m.state)
	m.resetMatch()
}

// RestartGame 比赛结束后重新开始
func (m *Match) RestartGame() {
	log.Printf("[Match] RestartGame (from %s)", m.state)
	m.resetMatch()
}

// GoToMenu 回到主菜单（任意状态均可）
func (m *Match) GoToMenu() {
	log.Printf("[Match] GoToMenu (from %s)", m.state)
	m.clearScores()
	m.setState(StateMenu)
}

// AwardPoint 给指定玩家加一分
//
// 仅在 Playing 状态下有效，其他状态为空操作（防止状态切换期间的残留事件）。
//
// 返回:
//   - Verdict: 本次得分的判定结果；被忽略时 Outcome 为 OutcomeIgnored
func (m *Match) AwardPoint(player types.Player) Verdict {
	if m.state != StatePlaying {
		log.Printf("[Match] AwardPoint(%s) ignored in state %s", player, m.state)
		return Verdict{Outcome: OutcomeIgnored, Player: player}
	}
	if !player.Valid() {
		log.Printf("[Match] AwardPoint ignored: invalid player %d", int(player))
		return Verdict{Outcome: OutcomeIgnored, Player: player}
	}

	if player == types.Player1 {
		m.scores.Player1++
	} else {
		m.scores.Player2++
	}
	log.Printf("[Match] %s scored, points %d - %d (round %d)",
		player, m.scores.Player1, m.scores.Player2, m.scores.CurrentRound)
	m.notifyScore()

	verdict := m.policy.Evaluate(m.scores)
	switch verdict.Outcome {
	case OutcomeRoundWon:
		m.winRound(verdict.Player)
		if winner := m.policy.MatchWinner(m.scores); winner.Valid() {
			m.endGame(winner)
			return MatchWon(winner)
		}
		m.scheduleBallReset()
	case OutcomeMatchWon:
		m.endGame(verdict.Player)
	default:
		m.scheduleBallReset()
	}
	return verdict
}

// Update 推进延迟任务（与物理更新在同一线程）
func (m *Match) Update(dt float64) {
	m.scheduler.Update(dt)
}

// State 当前状态
func (m *Match) State() State {
	return m.state
}

// IsPlaying 比赛是否进行中；球只在此时允许运动
func (m *Match) IsPlaying() bool {
	return m.state == StatePlaying
}

// Scores 比分快照
func (m *Match) Scores() Scores {
	return m.scores
}

// Winner 比赛胜者；比赛未结束时返回 PlayerNone
func (m *Match) Winner() types.Player {
	return m.winner
}

// Policy 当前计分策略
func (m *Match) Policy() ScoringPolicy {
	return m.policy
}

// ResetPending 是否有等待中的延迟发球
func (m *Match) ResetPending() bool {
	return m.pendingReset.Pending()
}

// resetMatch 清空比分并进入 Playing
func (m *Match) resetMatch() {
	m.clearScores()
	m.setState(StatePlaying)
}

// clearScores 清零比分与局数，隐藏胜者，使旧的延迟任务失效
func (m *Match) clearScores() {
	m.scores = Scores{CurrentRound: 1}
	m.winner = types.PlayerNone
	m.session++
	m.cancelPendingReset()
	m.notifyScore()
}

// winRound 记录胜局，清零本局比分，进入下一局
func (m *Match) winRound(player types.Player) {
	if player == types.Player1 {
		m.scores.Player1RoundWins++
	} else if player == types.Player2 {
		m.scores.Player2RoundWins++
	}
	m.scores.Player1 = 0
	m.scores.Player2 = 0
	m.scores.CurrentRound++

	log.Printf("[Match] %s wins the round, round wins %d - %d, next round %d",
		player, m.scores.Player1RoundWins, m.scores.Player2RoundWins, m.scores.CurrentRound)
	m.notifyScore()
}

// endGame 比赛结束：冻结比分，停用对局物体，公布胜者
func (m *Match) endGame(winner types.Player) {
	m.winner = winner
	m.cancelPendingReset()
	m.setState(StateGameOver)

	log.Printf("[Match] %s Wins! Final round wins: P1 %d - P2 %d, points %d - %d",
		winner, m.scores.Player1RoundWins, m.scores.Player2RoundWins, m.scores.Player1, m.scores.Player2)
	if m.onMatchWon != nil {
		m.onMatchWon(winner)
	}
}

// scheduleBallReset 延迟重新发球；新的发球任务会取代尚未触发的旧任务
func (m *Match) scheduleBallReset() {
	m.cancelPendingReset()

	session := m.session
	m.pendingReset = m.scheduler.After(ballResetTaskName, m.resetDelay, func() {
		// 触发时再次检查：比赛可能已经结束或回到菜单
		if m.state != StatePlaying || m.session != session {
			log.Printf("[Match] Stale ball reset skipped (state=%s)", m.state)
			return
		}
		m.ball.ResetBall()
	})
}

func (m *Match) cancelPendingReset() {
	if m.pendingReset != nil {
		m.pendingReset.Cancel()
		m.pendingReset = nil
	}
}

// setState 切换状态，并根据新状态激活 / 停用对局物体
func (m *Match) setState(to State) {
	from := m.state
	m.state = to

	active := to == StatePlaying
	m.setObjectsActive(active)
	if active {
		m.ball.ResetBall()
	}

	log.Printf("[Match] State %s -> %s (objects active: %v)", from, to, active)
	if m.onStateChanged != nil {
		m.onStateChanged(from, to)
	}
}

func (m *Match) setObjectsActive(active bool) {
	m.ball.SetActive(active)
	for _, p := range m.paddles {
		p.SetActive(active)
	}
	for _, w := range m.walls {
		w.SetActive(active)
	}
}

func (m *Match) notifyScore() {
	if m.onScoreChanged != nil {
		m.onScoreChanged(m.scores)
	}
}
