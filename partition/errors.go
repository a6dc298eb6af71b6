package partition

import "errors"

// ErrInvalidNode indicates a pebbled node id outside the graph's range.
var ErrInvalidNode = errors.New("partition: pebbled node id out of range")

// ErrDuplicatePebble indicates the same node id was listed twice in the pebbled set.
var ErrDuplicatePebble = errors.New("partition: duplicate pebbled node")
