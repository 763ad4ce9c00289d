// Package road models occupancy of the discrete positions along a single lane.
package road

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLayout is returned by Parse for a layout containing an unknown rune.
var ErrInvalidLayout = errors.New("invalid lane layout")

// Occupancy is the result of a three-state position lookup.
type Occupancy int

const (
	Free Occupancy = iota
	Occupied
	OutOfRange
)

func (o Occupancy) String() string {
	switch o {
	case Free:
		return "free"
	case Occupied:
		return "occupied"
	case OutOfRange:
		return "out_of_range"
	default:
		return fmt.Sprintf("occupancy(%d)", int(o))
	}
}

// Road holds one occupancy flag per lane position. Its length is fixed at
// construction and it is never modified afterwards, so a Road may be shared
// between goroutines.
type Road struct {
	occupied []bool
}

// New returns a Road over a copy of occupied.
func New(occupied []bool) *Road {
	flags := make([]bool, len(occupied))
	copy(flags, occupied)
	return &Road{occupied: flags}
}

// Parse builds a Road from a layout string with one rune per position:
// '.' or '_' for free and 'X', 'x' or '#' for occupied.
func Parse(layout string) (*Road, error) {
	flags := make([]bool, 0, len(layout))
	for i, c := range layout {
		switch c {
		case '.', '_':
			flags = append(flags, false)
		case 'X', 'x', '#':
			flags = append(flags, true)
		default:
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidLayout, c, i)
		}
	}
	return &Road{occupied: flags}, nil
}

// Occupied returns a copy of the occupancy flags.
func (r *Road) Occupied() []bool {
	out := make([]bool, len(r.occupied))
	copy(out, r.occupied)
	return out
}

// Len returns the number of positions on the lane.
func (r *Road) Len() int {
	return len(r.occupied)
}

// IsValid reports whether position lies in [0, Len()).
func (r *Road) IsValid(position int) bool {
	return position >= 0 && position < len(r.occupied)
}

// IsOccupied reports whether position is occupied. Positions outside the
// lane are reported as unoccupied.
func (r *Road) IsOccupied(position int) bool {
	if !r.IsValid(position) {
		return false
	}
	return r.occupied[position]
}

// Lookup is IsOccupied with out-of-range positions kept distinct from free ones.
func (r *Road) Lookup(position int) Occupancy {
	switch {
	case !r.IsValid(position):
		return OutOfRange
	case r.occupied[position]:
		return Occupied
	default:
		return Free
	}
}

// String renders the lane in Parse notation using '.' and 'X'.
func (r *Road) String() string {
	var b strings.Builder
	b.Grow(len(r.occupied))
	for _, o := range r.occupied {
		if o {
			b.WriteByte('X')
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}
