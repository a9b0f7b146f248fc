package sound

import (
	"github.com/palemoky/tien-len/internal/game"
)

// 音效名称，对应音效目录下的同名 mp3/wav 文件
const (
	CuePlay = "play"
	CuePass = "pass"
	CueBomb = "bomb"
	CueWin  = "win"
)

// CueFor 根据牌局事件选择音效
func CueFor(ev game.Event) string {
	switch {
	case ev.Finished, ev.WentOut:
		return CueWin
	case ev.Passed():
		return CuePass
	case ev.Play.Type.IsBomb():
		return CueBomb
	default:
		return CuePlay
	}
}
