package matchbase

import "github.com/kevin-chtw/tw_riichi/riichi"

// matchOptions 创建比赛的选项
type matchOptions struct {
	startRound *riichi.NewRound
	history    []*riichi.ConcludedRound
}

// MatchOption 比赛选项函数类型
type MatchOption func(*matchOptions)

// WithStartRound 从指定场况开始, 默认东一局
func WithStartRound(nr *riichi.NewRound) MatchOption {
	return func(o *matchOptions) {
		o.startRound = nr
	}
}

// WithHistory 续接已结束的局
func WithHistory(history []*riichi.ConcludedRound) MatchOption {
	return func(o *matchOptions) {
		o.history = history
	}
}
