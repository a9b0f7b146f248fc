package game

import (
	"github.com/palemoky/tien-len/internal/game/card"
	"github.com/palemoky/tien-len/internal/game/rule"
)

// Phase 牌局阶段
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseInProgress
	PhaseFinished
)

var phaseNames = map[Phase]string{
	PhaseNotStarted: "未开始",
	PhaseInProgress: "进行中",
	PhaseFinished:   "已结束",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "未知"
}

// Player 玩家，Index 在整局中保持不变
type Player struct {
	Index int
	Hand  []card.Card
}

// Play 一次被接受的出牌，加入出牌堆后不再修改
type Play struct {
	rule.Combination
	Player int
	Turn   int
}

// PlayerChoice 交互层返回的选择：出哪些牌（手牌下标）或者过
type PlayerChoice struct {
	CardIndices []int
	Pass        bool
}

// TurnPrompt 发给交互层的出牌请求
type TurnPrompt struct {
	Player    int
	Turn      int
	Hand      []card.Card
	Active    *Play // nil 表示本轮自由出牌
	MustLead  bool
	CanBeat   bool  // 手牌里是否存在能压过 Active 的组合
	LastError error // 上一次被拒绝的原因，由调用方填写
}

// ActiveDescription 当前需要压过的牌的描述
func (p TurnPrompt) ActiveDescription() string {
	if p.Active == nil {
		return "自由出牌"
	}
	return p.Active.Describe()
}

// Event 一次成功操作的结果
type Event struct {
	Player      int
	Turn        int
	Play        *Play // 过牌时为 nil
	TrickClosed bool  // 其余玩家都过，本轮结束
	WentOut     bool  // 玩家出完了手牌
	Finished    bool  // 牌局结束
	NextPlayer  int   // 牌局结束时为 -1
}

// Passed 是否为过牌
func (e Event) Passed() bool {
	return e.Play == nil
}

// Snapshot 牌局状态快照，用于展示和日志
type Snapshot struct {
	ID        string
	Phase     Phase
	Turn      int
	Order     []int
	Active    *Play
	Pile      []Play
	HandSizes []int
	Ranking   []int
	Leftover  int
}
