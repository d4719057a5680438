package riichi

import "errors"

var (
	ErrInvalidSeat    = errors.New("seat out of range")
	ErrSameSeat       = errors.New("seats must differ")
	ErrDuplicateSeat  = errors.New("duplicate seat")
	ErrInvalidHand    = errors.New("fu must be > 0 and han >= 0")
	ErrNoTransaction  = errors.New("round has no transaction")
	ErrNoWinner       = errors.New("no winning seat")
	ErrNoLoser        = errors.New("no paying seat")
	ErrRoundConcluded = errors.New("round already concluded")
	ErrInvalidRound   = errors.New("invalid round state")
)
