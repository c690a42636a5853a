package activity

import "errors"

var ErrInvalidFlag = errors.New("active flag must be 0 or 1")

// Flag distinguishes usable entities from soft-retired ones. It is stored as
// a smallint and has exactly two values.
type Flag int16

const (
	Inactive Flag = 0
	Active   Flag = 1
)

func NewFlag(v int) (Flag, error) {
	f := Flag(v)
	if !f.IsValid() {
		return Inactive, ErrInvalidFlag
	}
	return f, nil
}

func FromBool(active bool) Flag {
	if active {
		return Active
	}
	return Inactive
}

func (f Flag) IsValid() bool {
	return f == Inactive || f == Active
}

func (f Flag) IsActive() bool {
	return f == Active
}

func (f Flag) Int16() int16 {
	return int16(f)
}
