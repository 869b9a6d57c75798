// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// Player 表示对局中的玩家编号
type Player int

const (
	// PlayerNone 无玩家（未得分 / 无胜者）
	PlayerNone Player = iota
	// Player1 玩家1
	Player1
	// Player2 玩家2
	Player2
)

// String 返回玩家的字符串表示
func (p Player) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "None"
	}
}

// Valid 判断是否为有效玩家（1 或 2）
func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

// Opponent 返回对手；无效玩家返回 PlayerNone
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return PlayerNone
	}
}

// Side 表示球拍所在的一侧
type Side int

const (
	// SideLeft 左侧球拍（击球后球向右飞）
	SideLeft Side = iota
	// SideRight 右侧球拍（击球后球向左飞）
	SideRight
)

// String 返回球拍侧的字符串表示
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Direction 返回被该侧球拍击中后球的水平方向符号
// 左侧 +1，右侧 -1
func (s Side) Direction() float64 {
	if s == SideLeft {
		return 1
	}
	return -1
}
