package windy

import "fmt"

// ActionSet selects which moves are available to the agent. Actions
// are always enumerated 0, 1, ... N-1 in the order returned by Moves.
type ActionSet int

const (
	// Standard is the four cardinal moves: left, right, up, down
	Standard ActionSet = iota

	// Kings adds the four diagonal moves
	Kings

	// KingsStay adds the four diagonal moves and a no-op
	KingsStay
)

// Moves returns the (dx, dy) displacement of each action in the set,
// indexed by action number. Up increases y.
func (a ActionSet) Moves() [][2]int {
	moves := [][2]int{
		{-1, 0}, // Left
		{1, 0},  // Right
		{0, 1},  // Up
		{0, -1}, // Down
	}

	switch a {
	case Standard:
		return moves
	case Kings:
		return append(moves, diagonals()...)
	case KingsStay:
		return append(append(moves, diagonals()...), [2]int{0, 0})
	}
	panic(fmt.Sprintf("moves: no such action set %d", a))
}

// Glyphs returns a printable symbol for each action, indexed by
// action number. Diagonals use numpad digits.
func (a ActionSet) Glyphs() []string {
	glyphs := []string{"L", "R", "U", "D"}

	switch a {
	case Standard:
		return glyphs
	case Kings:
		return append(glyphs, "7", "9", "1", "3")
	case KingsStay:
		return append(glyphs, "7", "9", "1", "3", ".")
	}
	panic(fmt.Sprintf("glyphs: no such action set %d", a))
}

// NumActions returns the number of actions in the set
func (a ActionSet) NumActions() int {
	return len(a.Moves())
}

func (a ActionSet) String() string {
	switch a {
	case Standard:
		return "Standard"
	case Kings:
		return "Kings"
	case KingsStay:
		return "KingsStay"
	}
	return "Unknown"
}

func diagonals() [][2]int {
	return [][2]int{
		{-1, 1},  // Up-left
		{1, 1},   // Up-right
		{-1, -1}, // Down-left
		{1, -1},  // Down-right
	}
}
