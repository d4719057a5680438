package riichi

import (
	"fmt"
	"slices"
)

// NewRound 开始下一局所需的场况
type NewRound struct {
	RoundWind             Wind `json:"round_wind"`
	RoundNumber           int  `json:"round_number"`
	Honba                 int  `json:"honba"`
	StartRiichiStickCount int  `json:"start_riichi_stick_count"`
}

// FirstRound 东一局零本场
func FirstRound() *NewRound {
	return &NewRound{RoundWind: WindEast, RoundNumber: 1}
}

func (nr *NewRound) String() string {
	return fmt.Sprintf("%s-%d honba %d sticks %d", nr.RoundWind, nr.RoundNumber, nr.Honba, nr.StartRiichiStickCount)
}

// ConcludedRound 已结束的一局, 点数移动已计入本场
type ConcludedRound struct {
	RoundWind             Wind           `json:"round_wind"`
	RoundNumber           int            `json:"round_number"`
	Honba                 int            `json:"honba"`
	StartRiichiStickCount int            `json:"start_riichi_stick_count"`
	EndRiichiStickCount   int            `json:"end_riichi_stick_count"`
	Riichis               []int32        `json:"riichis"`
	Tenpais               []int32        `json:"tenpais"`
	Transactions          []*Transaction `json:"transactions"`
}

func (c *ConcludedRound) DealerIndex() int32 {
	return int32(c.RoundNumber - 1)
}

// Round 一局进行中的累加器, 庄家在创建后不再变化
type Round struct {
	roundWind             Wind
	roundNumber           int
	honba                 int
	startRiichiStickCount int
	dealer                int32
	riichis               []int32
	tenpais               []int32
	transactions          []*Transaction
	concluded             bool
}

func NewRiichiRound(nr *NewRound) (*Round, error) {
	if nr.RoundNumber < 1 || nr.RoundNumber > NP4 {
		return nil, fmt.Errorf("%w: round number %d", ErrInvalidRound, nr.RoundNumber)
	}
	if nr.Honba < 0 || nr.StartRiichiStickCount < 0 {
		return nil, fmt.Errorf("%w: honba %d sticks %d", ErrInvalidRound, nr.Honba, nr.StartRiichiStickCount)
	}
	return &Round{
		roundWind:             nr.RoundWind,
		roundNumber:           nr.RoundNumber,
		honba:                 nr.Honba,
		startRiichiStickCount: nr.StartRiichiStickCount,
		dealer:                int32(nr.RoundNumber - 1),
		riichis:               make([]int32, 0),
		tenpais:               make([]int32, 0),
		transactions:          make([]*Transaction, 0),
	}, nil
}

func (r *Round) DealerIndex() int32 {
	return r.dealer
}

func (r *Round) RoundWind() Wind {
	return r.roundWind
}

func (r *Round) RoundNumber() int {
	return r.roundNumber
}

func (r *Round) Honba() int {
	return r.honba
}

func (r *Round) Transactions() []*Transaction {
	return slices.Clone(r.transactions)
}

func (r *Round) add(t *Transaction, err error) error {
	if r.concluded {
		return ErrRoundConcluded
	}
	if err != nil {
		return err
	}
	r.transactions = append(r.transactions, t)
	return nil
}

func (r *Round) AddDealIn(winner, loser int32, hand Hand) error {
	return r.add(NewDealIn(winner, loser, r.dealer, hand))
}

func (r *Round) AddSelfDraw(winner int32, hand Hand) error {
	return r.add(NewSelfDraw(winner, r.dealer, hand))
}

func (r *Round) AddNagashiMangan(winner int32) error {
	return r.add(NewNagashiMangan(winner, r.dealer))
}

func (r *Round) AddDealInPao(winner, loser, pao int32, hand Hand) error {
	return r.add(NewDealInPao(winner, loser, pao, r.dealer, hand))
}

func (r *Round) AddSelfDrawPao(winner, pao int32, hand Hand) error {
	return r.add(NewSelfDrawPao(winner, pao, r.dealer, hand))
}

func (r *Round) AddInroundRyuukyoku() error {
	return r.add(NewInroundRyuukyoku(), nil)
}

func checkSeatList(seats []int32) error {
	var seen [NP4]bool
	for _, s := range seats {
		if !IsValidSeat(s) {
			return fmt.Errorf("%w: %d", ErrInvalidSeat, s)
		}
		if seen[s] {
			return fmt.Errorf("%w: %d", ErrDuplicateSeat, s)
		}
		seen[s] = true
	}
	return nil
}

// SetRiichis 本局立直的座位
func (r *Round) SetRiichis(riichis []int32) error {
	if r.concluded {
		return ErrRoundConcluded
	}
	if err := checkSeatList(riichis); err != nil {
		return err
	}
	r.riichis = slices.Clone(riichis)
	return nil
}

// SetTenpais 荒牌流局时听牌的座位
func (r *Round) SetTenpais(tenpais []int32) error {
	if r.concluded {
		return ErrRoundConcluded
	}
	if err := checkSeatList(tenpais); err != nil {
		return err
	}
	r.tenpais = slices.Clone(tenpais)
	return nil
}

// FinalRiichiStickCount 有人和牌则供托清零, 否则累积到下一局
func (r *Round) FinalRiichiStickCount() int {
	for _, t := range r.transactions {
		if t.Kind.IsWin() {
			return 0
		}
	}
	return r.startRiichiStickCount + len(r.riichis)
}

// Conclude 结束本局, 只能调用一次
func (r *Round) Conclude() (*ConcludedRound, error) {
	c, err := r.Preview()
	if err != nil {
		return nil, err
	}
	r.concluded = true
	return c, nil
}

// Preview 按当前状态生成结算记录, 不封存本局
func (r *Round) Preview() (*ConcludedRound, error) {
	if r.concluded {
		return nil, ErrRoundConcluded
	}
	txs, err := transformTransactions(r.transactions, r.honba)
	if err != nil {
		return nil, err
	}
	return &ConcludedRound{
		RoundWind:             r.roundWind,
		RoundNumber:           r.roundNumber,
		Honba:                 r.honba,
		StartRiichiStickCount: r.startRiichiStickCount,
		EndRiichiStickCount:   r.FinalRiichiStickCount(),
		Riichis:               slices.Clone(r.riichis),
		Tenpais:               slices.Clone(r.tenpais),
		Transactions:          txs,
	}, nil
}
