package apperrors

import "errors"

// 错误码
const (
	CodeInvalidSymbol = 1001 + iota
	CodeInvalidConfiguration
	CodeDealingMismatch
	CodeOutOfTurn
	CodeIllegalPlay
	CodeGameNotStarted
	CodeGameFinished
	CodeGameStarted
)

// GameError 游戏错误
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrInvalidSymbol        = &GameError{Code: CodeInvalidSymbol, Message: "无效的点数或花色"}
	ErrInvalidConfiguration = &GameError{Code: CodeInvalidConfiguration, Message: "无效的牌局配置"}
	ErrDealingMismatch      = &GameError{Code: CodeDealingMismatch, Message: "牌数无法平均分配"}
	ErrOutOfTurn            = &GameError{Code: CodeOutOfTurn, Message: "还没轮到您"}
	ErrIllegalPlay          = &GameError{Code: CodeIllegalPlay, Message: "不合法的出牌"}
	ErrGameNotStarted       = &GameError{Code: CodeGameNotStarted, Message: "游戏尚未开始"}
	ErrGameFinished         = &GameError{Code: CodeGameFinished, Message: "游戏已结束"}
	ErrGameStarted          = &GameError{Code: CodeGameStarted, Message: "游戏已开始"}
)

// IsRecoverable 回合内错误：拒绝本次操作并重新提示同一玩家，不影响牌局状态
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrOutOfTurn) || errors.Is(err, ErrIllegalPlay)
}

// CodeOf 返回错误链中第一个 GameError 的错误码，没有时返回 0
func CodeOf(err error) int {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge.Code
	}
	return 0
}
