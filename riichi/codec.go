package riichi

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/kevin-chtw/tw_riichi/utils"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func (c *ConcludedRound) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

func UnmarshalConcludedRound(data []byte) (*ConcludedRound, error) {
	c := &ConcludedRound{}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (nr *NewRound) Marshal() ([]byte, error) {
	return json.Marshal(nr)
}

func UnmarshalNewRound(data []byte) (*NewRound, error) {
	nr := &NewRound{}
	if err := json.Unmarshal(data, nr); err != nil {
		return nil, err
	}
	if nr.RoundNumber < 1 || nr.RoundNumber > NP4 {
		return nil, fmt.Errorf("%w: round number %d", ErrInvalidRound, nr.RoundNumber)
	}
	return nr, nil
}

func (c *ConcludedRound) validate() error {
	if c.RoundNumber < 1 || c.RoundNumber > NP4 {
		return fmt.Errorf("%w: round number %d", ErrInvalidRound, c.RoundNumber)
	}
	if err := checkSeatList(c.Riichis); err != nil {
		return err
	}
	if err := checkSeatList(c.Tenpais); err != nil {
		return err
	}
	for _, t := range c.Transactions {
		if t == nil {
			return fmt.Errorf("%w: nil transaction", ErrInvalidRound)
		}
		if t.Kind.IsPao() != IsValidSeat(t.PaoTarget) {
			return fmt.Errorf("%w: %s with pao target %d", ErrInvalidRound, t.Kind, t.PaoTarget)
		}
		if t.Kind.IsWin() != (t.Hand != nil) {
			return fmt.Errorf("%w: %s hand mismatch", ErrInvalidRound, t.Kind)
		}
	}
	return nil
}

func toFields(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	fields := make(map[string]any)
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func fromFields(fields map[string]any, v any) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// ToStruct 转成 protobuf Struct
func (c *ConcludedRound) ToStruct() (*structpb.Struct, error) {
	fields, err := toFields(c)
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(fields)
}

func ConcludedRoundFromStruct(s *structpb.Struct) (*ConcludedRound, error) {
	c := &ConcludedRound{}
	if err := fromFields(s.AsMap(), c); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (nr *NewRound) ToStruct() (*structpb.Struct, error) {
	fields, err := toFields(nr)
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(fields)
}

func NewRoundFromStruct(s *structpb.Struct) (*NewRound, error) {
	data, err := json.Marshal(s.AsMap())
	if err != nil {
		return nil, err
	}
	return UnmarshalNewRound(data)
}

func (c *ConcludedRound) ToAny() (*anypb.Any, error) {
	fields, err := toFields(c)
	if err != nil {
		return nil, err
	}
	return utils.PackStruct(fields)
}

func ConcludedRoundFromAny(data *anypb.Any) (*ConcludedRound, error) {
	fields, err := utils.UnpackStruct(data)
	if err != nil {
		return nil, err
	}
	c := &ConcludedRound{}
	if err := fromFields(fields, c); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}
