package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vipcxj/num/internal/num"
)

// IndexFilter selects instance numbers. A number is accepted if any of Ranges contains it.
// The zero IndexFilter accepts nothing; use AllIndexes for everything.
type IndexFilter struct {
	Ranges []num.Interval[int]
}

func AllIndexes() IndexFilter {
	return IndexFilter{
		Ranges: []num.Interval[int]{num.NewGreaterOrEqualInterval(0)},
	}
}

// ParseIndexFilter parses a filter made of '_'-separated tokens:
//
//	"all"  -> every index
//	"N"    -> a single index
//	"N-M"  -> closed interval [N, M]
//	"N-"   -> >= N
//	"-M"   -> <= M
//
// The numbers must be non-decreasing from left to right, so "1_3-5_7" is valid
// and "3_1-4" is not. An empty string is the same as "all".
func ParseIndexFilter(v string) (IndexFilter, error) {
	v = strings.TrimSpace(v)
	if v == "" || v == "all" {
		return AllIndexes(), nil
	}

	var f IndexFilter
	prev := 0
	ascending := func(n int) error {
		if n < prev {
			return fmt.Errorf("numbers must be non-decreasing: %d < %d", n, prev)
		}
		prev = n
		return nil
	}

	for i, tok := range strings.Split(v, "_") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return IndexFilter{}, fmt.Errorf("empty token at position %d", i)
		}
		if strings.Count(tok, "-") > 1 {
			return IndexFilter{}, fmt.Errorf("invalid token %q", tok)
		}

		left, right, isRange := strings.Cut(tok, "-")
		if !isRange {
			n, err := parseNaturalNumber(tok)
			if err != nil {
				return IndexFilter{}, fmt.Errorf("invalid token %q: %w", tok, err)
			}
			if err := ascending(n); err != nil {
				return IndexFilter{}, err
			}
			f.Ranges = append(f.Ranges, num.NewSingleValueInterval(n))
			continue
		}

		switch {
		case left != "" && right != "":
			n1, err := parseNaturalNumber(left)
			if err != nil {
				return IndexFilter{}, fmt.Errorf("invalid left bound in %q: %w", tok, err)
			}
			n2, err := parseNaturalNumber(right)
			if err != nil {
				return IndexFilter{}, fmt.Errorf("invalid right bound in %q: %w", tok, err)
			}
			if n1 > n2 {
				return IndexFilter{}, fmt.Errorf("invalid range %q: min > max", tok)
			}
			if err := ascending(n1); err != nil {
				return IndexFilter{}, err
			}
			prev = n2
			f.Ranges = append(f.Ranges, num.NewClosedInterval(n1, n2))
		case left != "":
			n, err := parseNaturalNumber(left)
			if err != nil {
				return IndexFilter{}, fmt.Errorf("invalid bound in %q: %w", tok, err)
			}
			if err := ascending(n); err != nil {
				return IndexFilter{}, err
			}
			f.Ranges = append(f.Ranges, num.NewGreaterOrEqualInterval(n))
		case right != "":
			n, err := parseNaturalNumber(right)
			if err != nil {
				return IndexFilter{}, fmt.Errorf("invalid bound in %q: %w", tok, err)
			}
			if err := ascending(n); err != nil {
				return IndexFilter{}, err
			}
			f.Ranges = append(f.Ranges, num.NewLessOrEqualInterval(n))
		default:
			return IndexFilter{}, fmt.Errorf("invalid token %q", tok)
		}
	}
	return f, nil
}

func parseNaturalNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("not natural number: %q", s)
	}
	return n, nil
}

// Test reports whether n is accepted by the filter. Negative numbers never are.
func (f IndexFilter) Test(n int) bool {
	if n < 0 {
		return false
	}
	for _, r := range f.Ranges {
		if r.Contains(n) {
			return true
		}
	}
	return false
}

func (f IndexFilter) String() string {
	parts := make([]string, 0, len(f.Ranges))
	for _, r := range f.Ranges {
		lo, hasLo := r.Lowest()
		hi, hasHi := r.Highest()
		switch {
		case hasLo && !hasHi:
			if lo == 0 {
				parts = append(parts, "all")
			} else {
				parts = append(parts, fmt.Sprintf("%d-", lo))
			}
		case !hasLo && hasHi:
			parts = append(parts, fmt.Sprintf("-%d", hi))
		case r.IsSingleValue():
			parts = append(parts, strconv.Itoa(lo))
		default:
			parts = append(parts, fmt.Sprintf("%d-%d", lo, hi))
		}
	}
	return strings.Join(parts, "_")
}
