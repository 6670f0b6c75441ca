package collections

import (
	"errors"
	"sync"
)

// SafeSlice is a slice that can be appended to from many goroutines.
type SafeSlice[T any] struct {
	sync.Mutex
	slice []T
}

func (ss *SafeSlice[T]) GetCopy() []T {
	ss.Lock()
	defer ss.Unlock()
	cpy := make([]T, len(ss.slice))
	copy(cpy, ss.slice)
	return cpy
}

func (ss *SafeSlice[T]) Append(val ...T) {
	ss.Lock()
	defer ss.Unlock()
	ss.slice = append(ss.slice, val...)
}

func (ss *SafeSlice[T]) Len() int {
	ss.Lock()
	defer ss.Unlock()
	return len(ss.slice)
}

type SafeErrorSlice struct {
	SafeSlice[error]
}

// Join combines every collected error, returning nil when there are none.
func (ss *SafeErrorSlice) Join() error {
	return errors.Join(ss.GetCopy()...)
}
