package riichi

import "fmt"

const (
	SeatNull int32 = -1
)

const (
	NP4 = 4
)

const (
	StartingPoint    int64 = 25000 // 起始点数
	ReturningPoint   int64 = 30000 // 返点
	RiichiStickValue int64 = 1000  // 立直棒
	ManganBasePoint  int64 = 2000  // 满贯基础点
	TenpaiPool       int64 = 3000  // 流局听牌罚符
)

// Wind 场风
type Wind int

const (
	WindEast Wind = iota
	WindSouth
	WindWest
	WindNorth
	WindEnd
)

var windNames = [WindEnd]string{"EAST", "SOUTH", "WEST", "NORTH"}

func (w Wind) Next() Wind {
	return (w + 1) % WindEnd
}

func (w Wind) String() string {
	if w < WindEast || w >= WindEnd {
		return fmt.Sprintf("Wind(%d)", int(w))
	}
	return windNames[w]
}

func (w Wind) MarshalText() ([]byte, error) {
	if w < WindEast || w >= WindEnd {
		return nil, fmt.Errorf("invalid wind %d", int(w))
	}
	return []byte(windNames[w]), nil
}

func (w *Wind) UnmarshalText(text []byte) error {
	for i, name := range windNames {
		if name == string(text) {
			*w = Wind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown wind %q", text)
}

// TransactionKind 点数移动类型
type TransactionKind int

const (
	KindDealIn           TransactionKind = iota // 放铳 0
	KindSelfDraw                                // 自摸 1
	KindDealInPao                               // 放铳包牌 2
	KindSelfDrawPao                             // 自摸包牌 3
	KindNagashiMangan                           // 流局满贯 4
	KindInroundRyuukyoku                        // 流局 5
	KindEnd
)

var kindNames = [KindEnd]string{
	"DEAL_IN",
	"SELF_DRAW",
	"DEAL_IN_PAO",
	"SELF_DRAW_PAO",
	"NAGASHI_MANGAN",
	"INROUND_RYUUKYOKU",
}

// IsWin reports whether the kind pays out a completed hand.
func (k TransactionKind) IsWin() bool {
	switch k {
	case KindDealIn, KindSelfDraw, KindDealInPao, KindSelfDrawPao:
		return true
	case KindNagashiMangan, KindInroundRyuukyoku:
		return false
	}
	return false
}

func (k TransactionKind) IsDraw() bool {
	return k == KindNagashiMangan || k == KindInroundRyuukyoku
}

func (k TransactionKind) IsPao() bool {
	return k == KindDealInPao || k == KindSelfDrawPao
}

func (k TransactionKind) String() string {
	if k < KindDealIn || k >= KindEnd {
		return fmt.Sprintf("TransactionKind(%d)", int(k))
	}
	return kindNames[k]
}

func (k TransactionKind) MarshalText() ([]byte, error) {
	if k < KindDealIn || k >= KindEnd {
		return nil, fmt.Errorf("invalid transaction kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *TransactionKind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = TransactionKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown transaction kind %q", text)
}

func GetNextSeat(seat, step, seatCount int32) int32 {
	return (seat + step) % seatCount
}

// seatDistance 从 from 逆时针数到 to 的步数
func seatDistance(from, to int32) int32 {
	return ((to-from)%NP4 + NP4) % NP4
}

func IsValidSeat(seat int32) bool {
	return seat >= 0 && seat < NP4
}
