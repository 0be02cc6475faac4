package session

import (
	"math/rand"
	"time"
)

// Picker selects an index in [0, n) used for random video selection.
type Picker interface {
	Intn(n int) int
}

func newDefaultPicker() Picker {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
