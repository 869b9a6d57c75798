package match

import (
	"errors"
	"testing"

	"github.com/decker502/pong/pkg/types"
)

// fakeBall 记录发球次数与激活状态
type fakeBall struct {
	resets int
	active bool
}

func (b *fakeBall) ResetBall()            { b.resets++ }
func (b *fakeBall) SetActive(active bool) { b.active = active }

type fakeObject struct{ active bool }

func (o *fakeObject) SetActive(active bool) { o.active = active }

const testResetDelay = 1.5

func newTestMatch(t *testing.T, policy ScoringPolicy) (*Match, *fakeBall, []*fakeObject) {
	t.Helper()
	ball := &fakeBall{}
	objs := []*fakeObject{{}, {}, {}, {}}
	paddles := []Activatable{objs[0], objs[1]}
	walls := []Activatable{objs[2], objs[3]}

	m, err := New(ball, paddles, walls, policy, Options{ResetDelay: testResetDelay})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m, ball, objs
}

func award(m *Match, p types.Player, n int) Verdict {
	var v Verdict
	for i := 0; i < n; i++ {
		v = m.AwardPoint(p)
	}
	return v
}

func TestNewRequiresBall(t *testing.T) {
	_, err := New(nil, nil, nil, Endless{}, Options{})
	if !errors.Is(err, ErrNoBall) {
		t.Errorf("expected ErrNoBall, got %v", err)
	}

	_, err = New(&fakeBall{}, nil, nil, nil, Options{})
	if !errors.Is(err, ErrNoScoringPolicy) {
		t.Errorf("expected ErrNoScoringPolicy, got %v", err)
	}
}

func TestNewStartsInMenu(t *testing.T) {
	m, ball, objs := newTestMatch(t, Endless{})

	if m.State() != StateMenu || m.IsPlaying() {
		t.Errorf("expected Menu, got %s", m.State())
	}
	if ball.active {
		t.Error("菜单状态下球应停用")
	}
	for i, o := range objs {
		if o.active {
			t.Errorf("object %d should be inactive in menu", i)
		}
	}
	if s := m.Scores(); s.CurrentRound != 1 || s.Player1 != 0 || s.Player2 != 0 {
		t.Errorf("unexpected initial scores %+v", s)
	}
}

func TestStartGame(t *testing.T) {
	m, ball, objs := newTestMatch(t, Endless{})

	var transitions []State
	m.SetOnStateChanged(func(from, to State) { transitions = append(transitions, to) })

	m.StartGame()
	if !m.IsPlaying() {
		t.Fatalf("expected Playing, got %s", m.State())
	}
	if !ball.active || ball.resets != 1 {
		t.Errorf("开始比赛应激活并发球: active=%v resets=%d", ball.active, ball.resets)
	}
	for i, o := range objs {
		if !o.active {
			t.Errorf("object %d should be active while playing", i)
		}
	}
	if len(transitions) != 1 || transitions[0] != StatePlaying {
		t.Errorf("expected one transition to Playing, got %v", transitions)
	}
}

func TestAwardPointIgnoredOutsidePlaying(t *testing.T) {
	m, _, _ := newTestMatch(t, Endless{})

	if v := m.AwardPoint(types.Player1); v.Outcome != OutcomeIgnored {
		t.Errorf("菜单状态下得分应被忽略, got %v", v)
	}
	if s := m.Scores(); s.Player1 != 0 {
		t.Errorf("score changed in menu: %+v", s)
	}

	m.StartGame()
	if v := m.AwardPoint(types.PlayerNone); v.Outcome != OutcomeIgnored {
		t.Errorf("无效玩家得分应被忽略, got %v", v)
	}
	if v := m.AwardPoint(types.Player(7)); v.Outcome != OutcomeIgnored {
		t.Errorf("无效玩家得分应被忽略, got %v", v)
	}
	if s := m.Scores(); s.Player1 != 0 || s.Player2 != 0 {
		t.Errorf("invalid player changed scores: %+v", s)
	}
}

func TestWinByMarginMatch(t *testing.T) {
	m, ball, _ := newTestMatch(t, WinByMargin{WinningScore: 11, MinMargin: 2})
	m.StartGame()

	award(m, types.Player1, 10)
	award(m, types.Player2, 10)
	if v := m.AwardPoint(types.Player1); v.Outcome != OutcomeContinue {
		t.Fatalf("11:10 应继续, got %v", v)
	}
	if v := m.AwardPoint(types.Player2); v.Outcome != OutcomeContinue {
		t.Fatalf("11:11 应继续, got %v", v)
	}
	award(m, types.Player2, 1)
	v := m.AwardPoint(types.Player2)
	if v != MatchWon(types.Player2) {
		t.Fatalf("11:13 玩家2应获胜, got %v", v)
	}
	if m.State() != StateGameOver || m.Winner() != types.Player2 {
		t.Errorf("expected GameOver with Player2, got %s/%s", m.State(), m.Winner())
	}
	if ball.active {
		t.Error("比赛结束后球应停用")
	}

	final := m.Scores()
	if v := m.AwardPoint(types.Player1); v.Outcome != OutcomeIgnored {
		t.Errorf("比赛结束后得分应被忽略, got %v", v)
	}
	if m.Scores() != final {
		t.Errorf("scores changed after game over: %+v -> %+v", final, m.Scores())
	}
}

func TestRaceToRoundsMatch(t *testing.T) {
	m, _, _ := newTestMatch(t, RaceToRounds{PointsToWinRound: 5, RoundsToWinMatch: 3})
	m.StartGame()

	award(m, types.Player2, 3)
	v := award(m, types.Player1, 5)
	if v != RoundWon(types.Player1) {
		t.Fatalf("expected round for Player1, got %v", v)
	}
	s := m.Scores()
	if s.Player1 != 0 || s.Player2 != 0 {
		t.Errorf("赢下一局后比分应清零, got %+v", s)
	}
	if s.Player1RoundWins != 1 || s.CurrentRound != 2 {
		t.Errorf("expected 1 round win and round 2, got %+v", s)
	}
	if !m.IsPlaying() {
		t.Fatal("match should continue after a round")
	}

	award(m, types.Player2, 5)
	v = award(m, types.Player1, 5)
	if v != RoundWon(types.Player1) || m.Scores().CurrentRound != 4 {
		t.Fatalf("expected second round for Player1, got %v %+v", v, m.Scores())
	}

	var wonBy types.Player
	m.SetOnMatchWon(func(p types.Player) { wonBy = p })
	v = award(m, types.Player1, 5)
	if v != MatchWon(types.Player1) {
		t.Fatalf("第三局胜利应赢下比赛, got %v", v)
	}
	if m.State() != StateGameOver || wonBy != types.Player1 {
		t.Errorf("expected GameOver won by Player1, got %s/%s", m.State(), wonBy)
	}
	if s := m.Scores(); s.Player1RoundWins != 3 || s.Player2RoundWins != 1 {
		t.Errorf("unexpected final round wins %+v", s)
	}
}

func TestDelayedBallReset(t *testing.T) {
	m, ball, _ := newTestMatch(t, Endless{})
	m.StartGame()
	startResets := ball.resets

	m.AwardPoint(types.Player1)
	if !m.ResetPending() {
		t.Fatal("得分后应有等待中的发球")
	}

	m.Update(1.0)
	if ball.resets != startResets {
		t.Fatal("ball reset fired before the delay")
	}
	m.Update(0.6)
	if ball.resets != startResets+1 {
		t.Errorf("expected one delayed reset, got %d", ball.resets-startResets)
	}
	if m.ResetPending() {
		t.Error("reset should no longer be pending")
	}
}

func TestNewerResetSupersedesPending(t *testing.T) {
	m, ball, _ := newTestMatch(t, Endless{})
	m.StartGame()
	startResets := ball.resets

	m.AwardPoint(types.Player1)
	m.Update(1.0)
	m.AwardPoint(types.Player2)

	// 第一次得分的发球时间已到，但已被第二次取代
	m.Update(0.6)
	if ball.resets != startResets {
		t.Fatalf("superseded reset fired: %d", ball.resets-startResets)
	}
	m.Update(1.0)
	if ball.resets != startResets+1 {
		t.Errorf("expected exactly one reset, got %d", ball.resets-startResets)
	}
}

func TestStaleResetAfterMenu(t *testing.T) {
	m, ball, _ := newTestMatch(t, Endless{})
	m.StartGame()
	m.AwardPoint(types.Player1)

	m.GoToMenu()
	resets := ball.resets
	m.Update(2)
	if ball.resets != resets {
		t.Error("回到菜单后过期的发球不应执行")
	}
	if m.State() != StateMenu || ball.active {
		t.Errorf("expected inactive ball in Menu, got %s active=%v", m.State(), ball.active)
	}
	if s := m.Scores(); s.Player1 != 0 {
		t.Errorf("menu should clear scores, got %+v", s)
	}
}

func TestStaleResetAfterRestart(t *testing.T) {
	m, ball, _ := newTestMatch(t, Endless{})
	m.StartGame()
	m.AwardPoint(types.Player1)

	m.RestartGame()
	resets := ball.resets
	m.Update(2)
	if ball.resets != resets {
		t.Error("重新开始后上一场的延迟发球不应执行")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	m, ball, objs := newTestMatch(t, WinByMargin{WinningScore: 2, MinMargin: 2})
	m.StartGame()
	award(m, types.Player1, 2)
	if m.State() != StateGameOver {
		t.Fatalf("expected GameOver, got %s", m.State())
	}

	var scoreUpdates []Scores
	m.SetOnScoreChanged(func(s Scores) { scoreUpdates = append(scoreUpdates, s) })

	m.RestartGame()
	if !m.IsPlaying() || m.Winner() != types.PlayerNone {
		t.Errorf("expected Playing with no winner, got %s/%s", m.State(), m.Winner())
	}
	if s := m.Scores(); s != (Scores{CurrentRound: 1}) {
		t.Errorf("expected cleared scores, got %+v", s)
	}
	if len(scoreUpdates) == 0 {
		t.Error("restart should notify the cleared scores")
	}
	if !ball.active || !objs[0].active {
		t.Error("restart should reactivate gameplay objects")
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		StateMenu:     "Menu",
		StatePlaying:  "Playing",
		StateGameOver: "GameOver",
		State(9):      "State(9)",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	}
}
