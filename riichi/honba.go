package riichi

import "fmt"

// transformTransactions 把本场点数计入其中一笔点数移动, 其余不变
func transformTransactions(txs []*Transaction, honba int) ([]*Transaction, error) {
	if len(txs) == 0 {
		return nil, ErrNoTransaction
	}
	res := make([]*Transaction, len(txs))
	for i, t := range txs {
		res[i] = t.clone()
	}
	idx, err := determineHonbaTransaction(res)
	if err != nil {
		return nil, err
	}
	if err := addHonba(res[idx], honba); err != nil {
		return nil, err
	}
	return res, nil
}

func determineHonbaTransaction(txs []*Transaction) (int, error) {
	if len(txs) == 1 {
		return 0, nil
	}
	for i, t := range txs {
		if t.Kind == KindSelfDraw {
			return i, nil
		}
	}
	winner, err := FindHeadBumpWinner(txs)
	if err != nil {
		return 0, err
	}
	for i, t := range txs {
		if t.ScoreDeltas[winner] > 0 && t.Kind == KindDealInPao {
			return i, nil
		}
	}
	for i, t := range txs {
		if t.ScoreDeltas[winner] > 0 {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: head bump seat %d not credited", ErrNoWinner, winner)
}

// addHonba 正分加 300*本场; 负分直接改写为本场点数
func addHonba(t *Transaction, honba int) error {
	// 0本场不改动点数, 否则覆盖规则会抹掉自摸的支付
	if honba == 0 {
		return nil
	}
	bonus := int64(honba)
	switch t.Kind {
	case KindNagashiMangan, KindInroundRyuukyoku:
	case KindSelfDraw:
		for i, d := range t.ScoreDeltas {
			if d > 0 {
				t.ScoreDeltas[i] += 300 * bonus
			} else {
				t.ScoreDeltas[i] = -100 * bonus
			}
		}
	case KindDealIn, KindDealInPao:
		for i, d := range t.ScoreDeltas {
			if int32(i) == t.PaoTarget {
				continue
			}
			if d > 0 {
				t.ScoreDeltas[i] += 300 * bonus
			} else if d < 0 {
				t.ScoreDeltas[i] = -300 * bonus
			}
		}
	case KindSelfDrawPao:
		for i, d := range t.ScoreDeltas {
			if d > 0 {
				t.ScoreDeltas[i] += 300 * bonus
			} else if d < 0 {
				t.ScoreDeltas[i] = -300 * bonus
			}
		}
	default:
		return fmt.Errorf("unhandled transaction kind %s", t.Kind)
	}
	return nil
}
