package riichi

import "slices"

// GenerateTenpaiScoreDeltas 流局听牌罚符, 3000点按听牌人数整除, 余数舍去
func GenerateTenpaiScoreDeltas(tenpais []int32) [NP4]int64 {
	var res [NP4]int64
	if len(tenpais) == 0 || len(tenpais) == NP4 {
		return res
	}
	unit := TenpaiPool / int64(len(tenpais))
	for i := range int32(NP4) {
		if slices.Contains(tenpais, i) {
			res[i] = unit
		} else {
			res[i] = -unit
		}
	}
	return res
}

// GenerateOverallScoreDeltas 一局的最终点数变化: 点数移动, 立直棒, 听牌罚符与供托
func GenerateOverallScoreDeltas(c *ConcludedRound) ([NP4]int64, error) {
	res := reduceScoreDeltas(c.Transactions)
	for _, seat := range c.Riichis {
		res[seat] -= RiichiStickValue
	}
	if containingAny(c.Transactions, KindNagashiMangan) != nil {
		return res, nil
	}

	tenpai := GenerateTenpaiScoreDeltas(c.Tenpais)
	for i := range res {
		res[i] += tenpai[i]
	}

	// 没有供托时不必找头跳
	pot := int64(c.StartRiichiStickCount+len(c.Riichis)) * RiichiStickValue
	if c.EndRiichiStickCount == 0 && pot > 0 {
		winner, err := FindHeadBumpWinner(c.Transactions)
		if err != nil {
			return res, err
		}
		res[winner] += pot
	}
	return res, nil
}
