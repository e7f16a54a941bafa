package math

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when a row, column, plane or corner
	// selector is outside its valid set.
	ErrIndexOutOfRange = errors.New("math: index out of range")
	// ErrBufferTooSmall is returned by the bulk transfer helpers when the
	// destination or source does not hold 16 elements past the offset.
	ErrBufferTooSmall = errors.New("math: buffer too small")

	ErrInvalidStackSize = errors.New("math: stack size must be >= 1")
	ErrStackOverflow    = errors.New("math: matrix stack overflow")
	ErrStackUnderflow   = errors.New("math: matrix stack underflow")
)

func indexError(what string, index int) error {
	return fmt.Errorf("%w: %s %d", ErrIndexOutOfRange, what, index)
}

func bufferError(what string, have, offset, need int) error {
	return fmt.Errorf("%w: %s has %d elements, need %d from offset %d", ErrBufferTooSmall, what, have, need, offset)
}
