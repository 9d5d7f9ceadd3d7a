package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Denomination is the face value of a single banknote.
type Denomination int

// String renders the face value in decimal, which is also the key form used
// in the persisted state file.
func (d Denomination) String() string {
	return strconv.Itoa(int(d))
}

// DenominationSet is the fixed collection of note face values the machine
// accepts, ordered descending. The set is decided at construction time and
// never changes for the lifetime of the process.
type DenominationSet []Denomination

// NewDenominationSet validates the raw face values and returns them ordered
// descending. Duplicates and non-positive values are rejected.
func NewDenominationSet(values []int) (DenominationSet, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: at least one denomination is required", ErrInvalidAmount)
	}

	seen := make(map[int]struct{}, len(values))
	set := make(DenominationSet, 0, len(values))
	for _, v := range values {
		if v <= 0 {
			return nil, fmt.Errorf("%w: denomination %d must be positive", ErrInvalidAmount, v)
		}
		if _, dup := seen[v]; dup {
			return nil, fmt.Errorf("%w: duplicate denomination %d", ErrInvalidAmount, v)
		}
		seen[v] = struct{}{}
		set = append(set, Denomination(v))
	}

	sort.Slice(set, func(i, j int) bool { return set[i] > set[j] })
	return set, nil
}

// ParseDenominationSet builds a set from a comma-separated list such as "500,200,100".
func ParseDenominationSet(raw string) (DenominationSet, error) {
	parts := strings.Split(raw, ",")
	values := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: denomination %q is not numeric", ErrInvalidAmount, p)
		}
		values = append(values, v)
	}
	return NewDenominationSet(values)
}

// Contains reports whether d is an accepted face value.
func (s DenominationSet) Contains(d Denomination) bool {
	for _, v := range s {
		if v == d {
			return true
		}
	}
	return false
}

// Smallest returns the minimum face value in the set. Every dispensable
// amount must be a multiple of it.
func (s DenominationSet) Smallest() Denomination {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}
