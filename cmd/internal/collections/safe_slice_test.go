package collections

import (
	"errors"
	"reflect"
	"sync"
	"testing"
)

func TestSafeErrorSlice_Append(t *testing.T) {
	ss := &SafeErrorSlice{}
	err := errors.New("test error")
	ss.Append(err)

	if ss.Len() != 1 {
		t.Errorf("expected slice length 1, got %d", ss.Len())
	}

	if ss.slice[0] != err {
		t.Errorf("expected error %v, got %v", err, ss.slice[0])
	}
}

func TestSafeErrorSlice_Join(t *testing.T) {
	ss := &SafeErrorSlice{}

	if ss.Join() != nil {
		t.Errorf("expected no error from an empty slice")
	}

	err1 := errors.New("test error 1")
	err2 := errors.New("test error 2")
	ss.Append(err1, err2)

	joined := ss.Join()
	if !errors.Is(joined, err1) || !errors.Is(joined, err2) {
		t.Errorf("expected the joined error to wrap both errors, got %v", joined)
	}
}

func TestSafeSlice_GetCopy(t *testing.T) {
	ss := &SafeSlice[string]{}
	ss.Append("a", "b")

	cpy := ss.GetCopy()

	if !reflect.DeepEqual(cpy, ss.slice) {
		t.Errorf("expected copy %v, got %v", ss.slice, cpy)
	}

	cpy[0] = "changed"
	if ss.slice[0] != "a" {
		t.Errorf("expected the copy to be independent of the slice")
	}
}

func TestSafeSlice_ConcurrentAppend(t *testing.T) {
	ss := &SafeSlice[int]{}
	numGoroutines := 100
	numItems := 1000

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(i int) {
			defer wg.Done()
			for j := 0; j < numItems; j++ {
				ss.Append(j)
			}
		}(i)
	}

	wg.Wait()

	expectedLength := numGoroutines * numItems
	if ss.Len() != expectedLength {
		t.Errorf("expected slice length %d, got %d", expectedLength, ss.Len())
	}
}
