package riichi_test

import (
	"testing"

	"github.com/kevin-chtw/tw_riichi/riichi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDealIn(t *testing.T, winner, loser, dealer int32, hand riichi.Hand) *riichi.Transaction {
	t.Helper()
	tx, err := riichi.NewDealIn(winner, loser, dealer, hand)
	require.NoError(t, err)
	return tx
}

func TestFindHeadBumpWinner(t *testing.T) {
	hand := riichi.Hand{Fu: 30, Han: 2}
	tests := []struct {
		name string
		txs  func(t *testing.T) []*riichi.Transaction
		want int32
	}{
		{
			name: "double ron nearest after loser",
			txs: func(t *testing.T) []*riichi.Transaction {
				return []*riichi.Transaction{mustDealIn(t, 3, 0, 0, hand), mustDealIn(t, 1, 0, 0, hand)}
			},
			want: 1,
		},
		{
			name: "wraps around the table",
			txs: func(t *testing.T) []*riichi.Transaction {
				return []*riichi.Transaction{mustDealIn(t, 1, 2, 0, hand), mustDealIn(t, 3, 2, 0, hand)}
			},
			want: 3,
		},
		{
			name: "triple ron",
			txs: func(t *testing.T) []*riichi.Transaction {
				return []*riichi.Transaction{
					mustDealIn(t, 2, 3, 0, hand),
					mustDealIn(t, 1, 3, 0, hand),
					mustDealIn(t, 0, 3, 0, hand),
				}
			},
			want: 0,
		},
		{
			name: "self draw",
			txs: func(t *testing.T) []*riichi.Transaction {
				tx, err := riichi.NewSelfDraw(2, 0, hand)
				require.NoError(t, err)
				return []*riichi.Transaction{tx}
			},
			want: 2,
		},
		{
			name: "self draw pao ignores responsible seat",
			txs: func(t *testing.T) []*riichi.Transaction {
				tx, err := riichi.NewSelfDrawPao(2, 1, 0, riichi.Hand{Fu: 30, Han: 13})
				require.NoError(t, err)
				return []*riichi.Transaction{tx}
			},
			want: 2,
		},
		{
			name: "pao seat is not the loser",
			txs: func(t *testing.T) []*riichi.Transaction {
				pao, err := riichi.NewDealInPao(3, 2, 0, 0, riichi.Hand{Fu: 30, Han: 13})
				require.NoError(t, err)
				return []*riichi.Transaction{pao, mustDealIn(t, 1, 2, 0, hand)}
			},
			want: 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := riichi.FindHeadBumpWinner(tt.txs(t))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindHeadBumpWinnerNoWinner(t *testing.T) {
	_, err := riichi.FindHeadBumpWinner(nil)
	assert.ErrorIs(t, err, riichi.ErrNoWinner)

	_, err = riichi.FindHeadBumpWinner([]*riichi.Transaction{riichi.NewInroundRyuukyoku()})
	assert.ErrorIs(t, err, riichi.ErrNoWinner)
}
