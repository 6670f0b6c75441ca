package validation

import (
	"errors"
	"fmt"
	"golang.org/x/exp/constraints"
	"reflect"
)

var (
	// ErrArgumentNull is matched by every ArgumentNullError through errors.Is.
	ErrArgumentNull = errors.New("value cannot be null")
	// ErrArgumentOutOfRange is matched by every ArgumentOutOfRangeError through errors.Is.
	ErrArgumentOutOfRange = errors.New("value is out of range")
)

// ArgumentNullError reports a required value that was not supplied.
type ArgumentNullError struct {
	Param string
}

func (e *ArgumentNullError) Error() string {
	return fmt.Sprintf("%s: %s", e.Param, ErrArgumentNull.Error())
}

func (e *ArgumentNullError) Is(target error) bool {
	return target == ErrArgumentNull
}

// ArgumentOutOfRangeError reports a numeric value outside of its permitted range.
// Max is nil when only a lower bound applies.
type ArgumentOutOfRangeError struct {
	Param string
	Value any
	Min   any
	Max   any
}

func (e *ArgumentOutOfRangeError) Error() string {
	if e.Max == nil {
		return fmt.Sprintf("%s: %s, %v is less than %v", e.Param, ErrArgumentOutOfRange.Error(), e.Value, e.Min)
	}

	return fmt.Sprintf("%s: %s, %v is not in the range [%v, %v]", e.Param, ErrArgumentOutOfRange.Error(), e.Value, e.Min, e.Max)
}

func (e *ArgumentOutOfRangeError) Is(target error) bool {
	return target == ErrArgumentOutOfRange
}

// Required fails when value is nil. Typed nil pointers, maps, slices and funcs stored in the
// interface count as nil too.
func Required(param string, value any) error {
	if isNil(value) {
		return &ArgumentNullError{Param: param}
	}

	return nil
}

// RequiredString fails when value is empty. Go strings have no null state, so the empty string
// stands in for an absent value.
func RequiredString(param string, value string) error {
	if value == "" {
		return &ArgumentNullError{Param: param}
	}

	return nil
}

// RequiredSlice fails when value is nil. An empty, non-nil slice is a supplied value.
func RequiredSlice[T any](param string, value []T) error {
	if value == nil {
		return &ArgumentNullError{Param: param}
	}

	return nil
}

// AtLeast fails when value < min.
func AtLeast[T constraints.Integer | constraints.Float](param string, value T, min T) error {
	if value < min {
		return &ArgumentOutOfRangeError{Param: param, Value: value, Min: min}
	}

	return nil
}

// AtLeastIfSet applies AtLeast to an optional value.
func AtLeastIfSet[T constraints.Integer | constraints.Float](param string, value *T, min T) error {
	if value == nil {
		return nil
	}

	return AtLeast(param, *value, min)
}

// InRange fails when value is outside of [min, max].
func InRange[T constraints.Integer | constraints.Float](param string, value T, min T, max T) error {
	if value < min || value > max {
		return &ArgumentOutOfRangeError{Param: param, Value: value, Min: min, Max: max}
	}

	return nil
}

// First returns the first non-nil error. Constructors list their guards in parameter order so the
// reported parameter is the first invalid one.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}

	return false
}
