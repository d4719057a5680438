package matchbase

import (
	"context"
	"fmt"
	"slices"

	"github.com/kevin-chtw/tw_riichi/riichi"
	"github.com/looplab/fsm"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

const (
	StatePlaying  = "playing"  // 对局中
	StateSettling = "settling" // 结算中
	StateFinished = "finished" // 已结束
)

const (
	EventSeal   = "seal"
	EventNext   = "next"
	EventFinish = "finish"
)

// Result 一局结算结果
type Result struct {
	Concluded *riichi.ConcludedRound
	Deltas    [riichi.NP4]int64
	Next      *riichi.NewRound
	Over      bool
}

// Match 一场比赛, 同一时间只持有一局; 非并发安全, 由调用方独占
type Match struct {
	ID      int32
	conf    *Config
	fsm     *fsm.FSM
	round   *riichi.Round
	history []*riichi.ConcludedRound
	scores  [riichi.NP4]int64
}

func NewMatch(id int32, conf *Config, opts ...MatchOption) (*Match, error) {
	options := &matchOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if conf == nil {
		conf = DefaultConfig()
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	m := &Match{
		ID:      id,
		conf:    conf,
		history: slices.Clone(options.history),
	}
	scores, err := riichi.Standings(m.history, conf.startingScore())
	if err != nil {
		return nil, err
	}
	m.scores = scores

	start := options.startRound
	if start == nil {
		start = riichi.FirstRound()
		if n := len(m.history); n > 0 {
			start = riichi.GenerateNextRound(m.history[n-1])
		}
	}
	if m.round, err = riichi.NewRiichiRound(start); err != nil {
		return nil, err
	}

	m.fsm = fsm.NewFSM(
		StatePlaying,
		fsm.Events{
			{Name: EventSeal, Src: []string{StatePlaying}, Dst: StateSettling},
			{Name: EventNext, Src: []string{StateSettling}, Dst: StatePlaying},
			{Name: EventFinish, Src: []string{StateSettling}, Dst: StateFinished},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				logger.Log.Debugf("match %d: %s -> %s", m.ID, e.Src, e.Dst)
			},
			"enter_" + StateFinished: func(_ context.Context, e *fsm.Event) {
				logger.Log.Infof("match %d over after %d rounds, scores %v", m.ID, len(m.history), m.scores)
			},
		},
	)
	logger.Log.Infof("match %d start at %s", id, start)
	return m, nil
}

// Current 当前进行中的一局, 比赛结束后返回 nil
func (m *Match) Current() *riichi.Round {
	if m.IsOver() {
		return nil
	}
	return m.round
}

func (m *Match) History() []*riichi.ConcludedRound {
	return slices.Clone(m.history)
}

func (m *Match) Scores() [riichi.NP4]int64 {
	return m.scores
}

func (m *Match) State() string {
	return m.fsm.Current()
}

func (m *Match) IsOver() bool {
	return m.fsm.Is(StateFinished)
}

// Conclude 结束当前一局并推进到下一局或终局; 出错时比赛与当前局保持原状
func (m *Match) Conclude(ctx context.Context) (*Result, error) {
	if !m.fsm.Can(EventSeal) {
		return nil, fmt.Errorf("match %d: cannot conclude in state %s", m.ID, m.fsm.Current())
	}
	concluded, err := m.round.Preview()
	if err != nil {
		return nil, fmt.Errorf("match %d: %w", m.ID, err)
	}
	deltas, err := riichi.GenerateOverallScoreDeltas(concluded)
	if err != nil {
		return nil, fmt.Errorf("match %d: %w", m.ID, err)
	}
	history := append(slices.Clone(m.history), concluded)
	res := &Result{
		Concluded: concluded,
		Deltas:    deltas,
		Next:      riichi.GenerateNextRound(concluded),
	}
	if res.Over, err = riichi.IsGameEnd(res.Next, history, m.conf.endOptions()...); err != nil {
		return nil, fmt.Errorf("match %d: %w", m.ID, err)
	}
	var next *riichi.Round
	if !res.Over {
		if next, err = riichi.NewRiichiRound(res.Next); err != nil {
			return nil, fmt.Errorf("match %d: %w", m.ID, err)
		}
	}

	if _, err := m.round.Conclude(); err != nil {
		return nil, fmt.Errorf("match %d: %w", m.ID, err)
	}
	if err := m.fsm.Event(ctx, EventSeal); err != nil {
		return nil, err
	}
	m.history = history
	for i := range m.scores {
		m.scores[i] += deltas[i]
	}
	logger.Log.Infof("match %d %s-%d concluded, deltas %v, next %s", m.ID, concluded.RoundWind, concluded.RoundNumber, deltas, res.Next)

	if res.Over {
		return res, m.fsm.Event(ctx, EventFinish)
	}
	m.round = next
	return res, m.fsm.Event(ctx, EventNext)
}
