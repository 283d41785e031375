package num

import (
	"fmt"
)

// Ordered is satisfied by the integer and float kinds, including named types built on them.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Interval is a range of ordered values. Each side is either bounded (inclusive or
// exclusive) or unbounded, in which case the bound value and inclusivity are ignored.
type Interval[T Ordered] struct {
	Min          T
	MinInclude   bool
	Max          T
	MaxInclude   bool
	MinUnbounded bool // -inf
	MaxUnbounded bool // +inf
}

func NewUnboundedInterval[T Ordered]() Interval[T] {
	return Interval[T]{
		MinUnbounded: true,
		MaxUnbounded: true,
	}
}

func NewSingleValueInterval[T Ordered](n T) Interval[T] {
	return NewClosedInterval(n, n)
}

func NewClosedInterval[T Ordered](min T, max T) Interval[T] {
	return Interval[T]{
		Min:        min,
		MinInclude: true,
		Max:        max,
		MaxInclude: true,
	}
}

func NewGreaterOrEqualInterval[T Ordered](n T) Interval[T] {
	return Interval[T]{
		Min:          n,
		MinInclude:   true,
		MaxUnbounded: true,
	}
}

func NewLessOrEqualInterval[T Ordered](n T) Interval[T] {
	return Interval[T]{
		MinUnbounded: true,
		Max:          n,
		MaxInclude:   true,
	}
}

// IsValid reports whether the interval is non-empty and well formed.
//
// Rules:
//   - An unbounded side must be open (infinity is never included).
//   - If both sides are bounded, Min must not exceed Max.
//   - If Min == Max, both ends must be inclusive.
func (r Interval[T]) IsValid() bool {
	if r.MinUnbounded && r.MinInclude {
		return false
	}
	if r.MaxUnbounded && r.MaxInclude {
		return false
	}
	if !r.MinUnbounded && !r.MaxUnbounded {
		if r.Min > r.Max {
			return false
		}
		if r.Min == r.Max {
			return r.MinInclude && r.MaxInclude
		}
	}
	return true
}

// Contains reports whether v lies inside the interval. It is always false for an invalid interval.
// A NaN v compares false against every bound and is rejected by any bounded side.
func (r Interval[T]) Contains(v T) bool {
	if !r.IsValid() {
		return false
	}
	if !r.MinUnbounded {
		if r.MinInclude {
			if !(v >= r.Min) {
				return false
			}
		} else if !(v > r.Min) {
			return false
		}
	}
	if !r.MaxUnbounded {
		if r.MaxInclude {
			if !(v <= r.Max) {
				return false
			}
		} else if !(v < r.Max) {
			return false
		}
	}
	return true
}

// Lowest returns the lower bound and whether the interval has one.
func (r Interval[T]) Lowest() (T, bool) {
	if r.MinUnbounded {
		var zero T
		return zero, false
	}
	return r.Min, true
}

// Highest returns the upper bound and whether the interval has one.
func (r Interval[T]) Highest() (T, bool) {
	if r.MaxUnbounded {
		var zero T
		return zero, false
	}
	return r.Max, true
}

func (r Interval[T]) IsSingleValue() bool {
	return !r.MinUnbounded && !r.MaxUnbounded && r.Min == r.Max && r.MinInclude && r.MaxInclude
}

// String renders the interval as "N", ">=N", "<N" or "[min,max)", using ∞ for unbounded sides
// of the bracket form.
func (r Interval[T]) String() string {
	if r.IsSingleValue() {
		return fmt.Sprint(r.Min)
	}

	if r.MinUnbounded && !r.MaxUnbounded {
		if r.MaxInclude {
			return fmt.Sprintf("<=%v", r.Max)
		}
		return fmt.Sprintf("<%v", r.Max)
	}
	if r.MaxUnbounded && !r.MinUnbounded {
		if r.MinInclude {
			return fmt.Sprintf(">=%v", r.Min)
		}
		return fmt.Sprintf(">%v", r.Min)
	}

	leftB := "("
	if r.MinInclude {
		leftB = "["
	}
	rightB := ")"
	if r.MaxInclude {
		rightB = "]"
	}
	leftStr := "-∞"
	if !r.MinUnbounded {
		leftStr = fmt.Sprint(r.Min)
	}
	rightStr := "∞"
	if !r.MaxUnbounded {
		rightStr = fmt.Sprint(r.Max)
	}
	return fmt.Sprintf("%s%s,%s%s", leftB, leftStr, rightStr, rightB)
}
