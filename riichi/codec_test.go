package riichi_test

import (
	"testing"

	"github.com/kevin-chtw/tw_riichi/riichi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleConcluded(t *testing.T) *riichi.ConcludedRound {
	t.Helper()
	r := newRound(t, riichi.WindSouth, 3, 1, 2)
	require.NoError(t, r.SetRiichis([]int32{0, 1}))
	require.NoError(t, r.SetTenpais([]int32{1}))
	require.NoError(t, r.AddDealInPao(1, 0, 3, riichi.Hand{Fu: 30, Han: 13}))
	require.NoError(t, r.AddDealIn(3, 0, riichi.Hand{Fu: 40, Han: 2}))
	return conclude(t, r)
}

func TestConcludedRoundJSON(t *testing.T) {
	c := sampleConcluded(t)
	data, err := c.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"round_wind":"SOUTH"`)
	assert.Contains(t, string(data), `"transaction_type":"DEAL_IN_PAO"`)
	assert.Contains(t, string(data), `"pao_target":3`)

	got, err := riichi.UnmarshalConcludedRound(data)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestConcludedRoundStruct(t *testing.T) {
	c := sampleConcluded(t)
	s, err := c.ToStruct()
	require.NoError(t, err)
	assert.Equal(t, "SOUTH", s.GetFields()["round_wind"].GetStringValue())

	got, err := riichi.ConcludedRoundFromStruct(s)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	a, err := c.ToAny()
	require.NoError(t, err)
	got, err = riichi.ConcludedRoundFromAny(a)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestNewRoundCodec(t *testing.T) {
	nr := &riichi.NewRound{RoundWind: riichi.WindWest, RoundNumber: 2, Honba: 3, StartRiichiStickCount: 1}
	data, err := nr.Marshal()
	require.NoError(t, err)
	assert.JSONEq(t, `{"round_wind":"WEST","round_number":2,"honba":3,"start_riichi_stick_count":1}`, string(data))

	got, err := riichi.UnmarshalNewRound(data)
	require.NoError(t, err)
	assert.Equal(t, nr, got)

	s, err := nr.ToStruct()
	require.NoError(t, err)
	got, err = riichi.NewRoundFromStruct(s)
	require.NoError(t, err)
	assert.Equal(t, nr, got)
}

func TestUnmarshalRejectsBadRecords(t *testing.T) {
	_, err := riichi.UnmarshalNewRound([]byte(`{"round_wind":"CENTER","round_number":1}`))
	assert.Error(t, err)

	_, err = riichi.UnmarshalNewRound([]byte(`{"round_wind":"EAST","round_number":9}`))
	assert.ErrorIs(t, err, riichi.ErrInvalidRound)

	_, err = riichi.UnmarshalConcludedRound([]byte(`{"round_wind":"EAST","round_number":1,"transactions":[{"transaction_type":"CHOMBO"}]}`))
	assert.Error(t, err)

	_, err = riichi.UnmarshalConcludedRound([]byte(`{"round_wind":"EAST","round_number":1,"riichis":[2,2]}`))
	assert.ErrorIs(t, err, riichi.ErrDuplicateSeat)
}

func TestWindNext(t *testing.T) {
	assert.Equal(t, riichi.WindSouth, riichi.WindEast.Next())
	assert.Equal(t, riichi.WindEast, riichi.WindNorth.Next())
	assert.Equal(t, "NORTH", riichi.WindNorth.String())
	assert.Equal(t, "SELF_DRAW_PAO", riichi.KindSelfDrawPao.String())
}

func TestUnmarshalRejectsMisshapedTransaction(t *testing.T) {
	_, err := riichi.UnmarshalConcludedRound([]byte(`{"round_wind":"EAST","round_number":1,"transactions":[{"transaction_type":"DEAL_IN_PAO","score_deltas":[0,0,0,0],"hand":{"fu":30,"han":1},"pao_target":-1}]}`))
	assert.ErrorIs(t, err, riichi.ErrInvalidRound)

	_, err = riichi.UnmarshalConcludedRound([]byte(`{"round_wind":"EAST","round_number":1,"transactions":[{"transaction_type":"SELF_DRAW","score_deltas":[0,0,0,0],"pao_target":-1}]}`))
	assert.ErrorIs(t, err, riichi.ErrInvalidRound)
}
