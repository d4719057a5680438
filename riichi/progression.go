package riichi

import "slices"

func getNewHonbaCount(txs []*Transaction, dealer int32, honba int) int {
	if len(txs) == 0 {
		return honba + 1
	}
	for _, t := range txs {
		if t.Kind.IsDraw() || t.ScoreDeltas[dealer] > 0 {
			return honba + 1
		}
	}
	return 0
}

// dealershipRetains 庄家和牌, 流局或庄家听牌则连庄
func dealershipRetains(txs []*Transaction, tenpais []int32, dealer int32) bool {
	for _, t := range txs {
		if t.Kind != KindNagashiMangan && t.ScoreDeltas[dealer] > 0 {
			return true
		}
		if t.Kind == KindInroundRyuukyoku {
			return true
		}
	}
	return slices.Contains(tenpais, dealer)
}

// GenerateNextRound 根据上一局结果推出下一局的场况
func GenerateNextRound(c *ConcludedRound) *NewRound {
	dealer := c.DealerIndex()
	nr := &NewRound{
		RoundWind:             c.RoundWind,
		RoundNumber:           c.RoundNumber,
		Honba:                 getNewHonbaCount(c.Transactions, dealer, c.Honba),
		StartRiichiStickCount: c.EndRiichiStickCount,
	}
	if dealershipRetains(c.Transactions, c.Tenpais, dealer) {
		return nr
	}
	next := GetNextSeat(dealer, 1, NP4)
	nr.RoundNumber = int(next) + 1
	if next == 0 {
		nr.RoundWind = c.RoundWind.Next()
	}
	return nr
}

type endOptions struct {
	startingScore  [NP4]int64
	returningPoint int64
}

// EndOption 终局判定选项
type EndOption func(*endOptions)

// WithStartingScore 指定各家起始点数
func WithStartingScore(score [NP4]int64) EndOption {
	return func(o *endOptions) {
		o.startingScore = score
	}
}

// WithReturningPoint 指定返点
func WithReturningPoint(point int64) EndOption {
	return func(o *endOptions) {
		o.returningPoint = point
	}
}

func DefaultStartingScore() [NP4]int64 {
	var res [NP4]int64
	for i := range res {
		res[i] = StartingPoint
	}
	return res
}

// Standings 从起始点数重放历史, 返回各家当前点数
func Standings(history []*ConcludedRound, start [NP4]int64) ([NP4]int64, error) {
	total := start
	for _, c := range history {
		deltas, err := GenerateOverallScoreDeltas(c)
		if err != nil {
			return total, err
		}
		for i := range total {
			total[i] += deltas[i]
		}
	}
	return total, nil
}

// IsGameEnd 判断比赛是否结束
func IsGameEnd(nr *NewRound, history []*ConcludedRound, opts ...EndOption) (bool, error) {
	options := &endOptions{
		startingScore:  DefaultStartingScore(),
		returningPoint: ReturningPoint,
	}
	for _, opt := range opts {
		opt(options)
	}

	// 北场无论如何都结束
	if nr.RoundWind == WindNorth {
		return true, nil
	}

	total, err := Standings(history, options.startingScore)
	if err != nil {
		return false, err
	}

	exceeds := false
	for _, score := range total {
		if score < 0 {
			return true, nil
		}
		if score >= options.returningPoint {
			exceeds = true
		}
	}
	if !exceeds {
		return false, nil
	}

	// 有人过返点且进入西场
	if nr.RoundWind == WindWest {
		return true, nil
	}

	if len(history) == 0 {
		return false, nil
	}
	last := history[len(history)-1]
	if last.RoundWind != WindSouth || last.RoundNumber != NP4 {
		return false, nil
	}

	// 南四局: 亲家必须独占第一才结束
	for _, score := range total[:NP4-1] {
		if score >= total[NP4-1] {
			return false, nil
		}
	}
	return true, nil
}
