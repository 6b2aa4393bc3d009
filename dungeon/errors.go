package dungeon

import (
	"errors"
	"fmt"
)

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("dungeon: probability out of range")

// ErrInvalidMapSize indicates a zero or negative map width or height.
var ErrInvalidMapSize = errors.New("dungeon: map size must be positive")

// ErrInvalidCount indicates a negative count (boxes, iterations, rooms, sizes).
var ErrInvalidCount = errors.New("dungeon: count must not be negative")

// ErrInvalidValue indicates a NaN, infinite or out-of-range float parameter.
var ErrInvalidValue = errors.New("dungeon: parameter must be finite and in range")

// ErrDecodeConfig indicates a configuration document could not be parsed.
var ErrDecodeConfig = errors.New("dungeon: cannot decode config")

// fieldErrorf wraps a sentinel with the offending field name and value.
func fieldErrorf(sentinel error, field string, value interface{}) error {
	return fmt.Errorf("%w: %s=%v", sentinel, field, value)
}
