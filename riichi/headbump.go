package riichi

// FindHeadBumpWinner 头跳: 多家和牌时离放铳者最近的下家, 供托归其所有
func FindHeadBumpWinner(txs []*Transaction) (int32, error) {
	var winners, losers [NP4]bool
	for _, t := range txs {
		for i, d := range t.ScoreDeltas {
			if int32(i) == t.PaoTarget {
				continue
			}
			if d > 0 {
				winners[i] = true
			} else if d < 0 {
				losers[i] = true
			}
		}
	}

	// 自摸只有一个赢家, 一炮多响只有一个输家
	winner, count := SeatNull, 0
	for i, ok := range winners {
		if ok {
			count++
			if winner == SeatNull {
				winner = int32(i)
			}
		}
	}
	if count == 0 {
		return SeatNull, ErrNoWinner
	}
	if count == 1 {
		return winner, nil
	}

	loser := SeatNull
	for i, ok := range losers {
		if ok {
			loser = int32(i)
			break
		}
	}
	if loser == SeatNull {
		return SeatNull, ErrNoLoser
	}
	return closestWinner(loser, winners), nil
}

func closestWinner(loser int32, winners [NP4]bool) int32 {
	closest := SeatNull
	for i, ok := range winners {
		if !ok {
			continue
		}
		seat := int32(i)
		if closest == SeatNull || seatDistance(loser, seat) < seatDistance(loser, closest) {
			closest = seat
		}
	}
	return closest
}
