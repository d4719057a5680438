package riichi

import "github.com/topfreegames/pitaya/v3/pkg/logger"

// Hand 番符, 由调用方计算
type Hand struct {
	Fu  int `json:"fu"`
	Han int `json:"han"`
}

func (h Hand) Validate() error {
	if h.Fu <= 0 || h.Han < 0 {
		return ErrInvalidHand
	}
	return nil
}

// manganStep 满贯以上的番数区间, scale 以半个满贯计
type manganStep struct {
	minHan int
	maxHan int
	halves int64
}

// 13番之后只有13的倍数
var manganSteps = []manganStep{
	{5, 5, 2},    // 满贯
	{6, 7, 3},    // 跳满
	{8, 10, 4},   // 倍满
	{11, 12, 6},  // 三倍满
	{13, 13, 8},  // 役满
	{26, 26, 16}, // 两倍役满
	{39, 39, 24},
	{52, 52, 32},
	{65, 65, 40},
}

func manganHalves(han int) int64 {
	for _, step := range manganSteps {
		if han >= step.minHan && han <= step.maxHan {
			return step.halves
		}
	}
	return 0
}

// ManganScale returns the mangan multiple for han, or 0 when han is not in the table.
func ManganScale(han int) float64 {
	return float64(manganHalves(han)) / 2
}

func ManganValue(han int) int64 {
	return ManganBasePoint * manganHalves(han) / 2
}

// HandValue 计算某一付款关系下的点数, multiplier 为基础点的份数
func HandValue(multiplier int64, hand Hand) int64 {
	if hand.Han >= 5 {
		value := ManganValue(hand.Han)
		if value == 0 {
			logger.Log.Warnf("han %d is not in the mangan table, scoring as 0", hand.Han)
		}
		return value * multiplier
	}
	manganPayout := ManganBasePoint * multiplier
	raw := int64(hand.Fu) * (int64(1) << (2 + hand.Han)) * multiplier
	value := (raw + 99) / 100 * 100
	return min(value, manganPayout)
}
