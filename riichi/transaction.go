package riichi

import "fmt"

// Transaction 一次点数移动, ScoreDeltas 按座位记录
type Transaction struct {
	Kind        TransactionKind `json:"transaction_type"`
	ScoreDeltas [NP4]int64      `json:"score_deltas"`
	Hand        *Hand           `json:"hand,omitempty"`
	PaoTarget   int32           `json:"pao_target"`
}

func (t *Transaction) clone() *Transaction {
	c := *t
	if t.Hand != nil {
		h := *t.Hand
		c.Hand = &h
	}
	return &c
}

// Sum returns the net points moved by the transaction.
func (t *Transaction) Sum() int64 {
	var sum int64
	for _, d := range t.ScoreDeltas {
		sum += d
	}
	return sum
}

func DealInMultiplier(winner, dealer int32) int64 {
	if winner == dealer {
		return 6
	}
	return 4
}

func SelfDrawMultiplier(payer, dealer int32, winnerIsDealer bool) int64 {
	if winnerIsDealer || payer == dealer {
		return 2
	}
	return 1
}

func checkSeats(seats ...int32) error {
	for i, s := range seats {
		if !IsValidSeat(s) {
			return fmt.Errorf("%w: %d", ErrInvalidSeat, s)
		}
		for _, o := range seats[:i] {
			if o == s {
				return fmt.Errorf("%w: %d", ErrSameSeat, s)
			}
		}
	}
	return nil
}

func checkArgs(hand Hand, dealer int32, seats ...int32) error {
	if err := checkSeats(seats...); err != nil {
		return err
	}
	if !IsValidSeat(dealer) {
		return fmt.Errorf("%w: dealer %d", ErrInvalidSeat, dealer)
	}
	return hand.Validate()
}

func newTransaction(kind TransactionKind, hand *Hand, pao int32) *Transaction {
	return &Transaction{
		Kind:      kind,
		Hand:      hand,
		PaoTarget: pao,
	}
}

// NewDealIn 放铳: loser 支付全部点数
func NewDealIn(winner, loser, dealer int32, hand Hand) (*Transaction, error) {
	if err := checkArgs(hand, dealer, winner, loser); err != nil {
		return nil, err
	}
	t := newTransaction(KindDealIn, &hand, SeatNull)
	value := HandValue(DealInMultiplier(winner, dealer), hand)
	t.ScoreDeltas[winner] += value
	t.ScoreDeltas[loser] -= value
	return t, nil
}

// NewSelfDraw 自摸: 其余三家各自按倍数支付
func NewSelfDraw(winner, dealer int32, hand Hand) (*Transaction, error) {
	if err := checkArgs(hand, dealer, winner); err != nil {
		return nil, err
	}
	t := newTransaction(KindSelfDraw, &hand, SeatNull)
	isDealer := winner == dealer
	for i := range int32(NP4) {
		if i == winner {
			continue
		}
		value := HandValue(SelfDrawMultiplier(i, dealer, isDealer), hand)
		t.ScoreDeltas[i] = -value
		t.ScoreDeltas[winner] += value
	}
	return t, nil
}

// NewDealInPao 放铳包牌: 放铳者与包牌者各付一半倍数, 两半各自取整
func NewDealInPao(winner, loser, pao, dealer int32, hand Hand) (*Transaction, error) {
	if err := checkArgs(hand, dealer, winner, loser, pao); err != nil {
		return nil, err
	}
	t := newTransaction(KindDealInPao, &hand, pao)
	multiplier := DealInMultiplier(winner, dealer)
	t.ScoreDeltas[loser] = -HandValue(multiplier/2, hand)
	t.ScoreDeltas[pao] = -HandValue(multiplier/2, hand)
	t.ScoreDeltas[winner] = HandValue(multiplier, hand)
	return t, nil
}

// NewSelfDrawPao 自摸包牌: 包牌者独付
func NewSelfDrawPao(winner, pao, dealer int32, hand Hand) (*Transaction, error) {
	if err := checkArgs(hand, dealer, winner, pao); err != nil {
		return nil, err
	}
	t := newTransaction(KindSelfDrawPao, &hand, pao)
	value := HandValue(DealInMultiplier(winner, dealer), hand)
	t.ScoreDeltas[pao] = -value
	t.ScoreDeltas[winner] = value
	return t, nil
}

func NewNagashiMangan(winner, dealer int32) (*Transaction, error) {
	if err := checkSeats(winner); err != nil {
		return nil, err
	}
	if !IsValidSeat(dealer) {
		return nil, fmt.Errorf("%w: dealer %d", ErrInvalidSeat, dealer)
	}
	t := newTransaction(KindNagashiMangan, nil, SeatNull)
	isDealer := winner == dealer
	for i := range int32(NP4) {
		if i == winner {
			continue
		}
		value := ManganBasePoint * SelfDrawMultiplier(i, dealer, isDealer)
		t.ScoreDeltas[i] = -value
		t.ScoreDeltas[winner] += value
	}
	return t, nil
}

func NewInroundRyuukyoku() *Transaction {
	return newTransaction(KindInroundRyuukyoku, nil, SeatNull)
}

func containingAny(txs []*Transaction, kind TransactionKind) *Transaction {
	for _, t := range txs {
		if t.Kind == kind {
			return t
		}
	}
	return nil
}

func reduceScoreDeltas(txs []*Transaction) [NP4]int64 {
	var res [NP4]int64
	for _, t := range txs {
		for i, d := range t.ScoreDeltas {
			res[i] += d
		}
	}
	return res
}
