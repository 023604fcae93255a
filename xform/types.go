package xform

import (
	"errors"
	"time"
)

var (
	ErrInvalidChoice   = errors.New("invalid choice")
	ErrNonPositive     = errors.New("value must be positive")
	ErrNotAFile        = errors.New("not a file")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

type Intish interface {
	int | int8 | int16 | int32 | int64 | time.Duration
}

type Uintish interface {
	uint | uint8 | uint16 | uint32 | uint64
}

type Numeric interface {
	Intish | Uintish | float32 | float64
}
