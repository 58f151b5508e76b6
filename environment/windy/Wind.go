package windy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Wind determines the displacement the wind contributes to a single
// transition. Blow is a function of the position the agent occupied
// before its action was applied.
type Wind interface {
	// Blow returns the (dx, dy) displacement the wind applies to an
	// agent at position (x, y)
	Blow(x, y int) (int, int)

	// Check validates the wind against the grid dimensions
	Check(width, height int) error
}

// ColumnWind pushes the agent vertically with a strength that depends
// only on the column the agent occupies. Positive strengths push
// upward. Columns with no entry in the strength table are calm.
type ColumnWind struct {
	strength []int
}

// NewColumnWind returns a new ColumnWind with one strength per column
func NewColumnWind(strength []int) *ColumnWind {
	return &ColumnWind{strength}
}

// Displacement returns the number of rows an agent in the given
// column is pushed. The column must be within the grid; anything else
// is a programming error.
func (c *ColumnWind) Displacement(column int) int {
	return c.strength[column]
}

// Blow returns the displacement of the wind at position (x, y)
func (c *ColumnWind) Blow(x, _ int) (int, int) {
	return 0, c.strength[x]
}

// Check validates that the wind has exactly one strength per column
func (c *ColumnWind) Check(width, _ int) error {
	if len(c.strength) != width {
		return fmt.Errorf("wind table has %d columns but grid has %d",
			len(c.strength), width)
	}
	return nil
}

// RowWind pushes the agent horizontally with a strength that depends
// only on the row the agent occupies. Positive strengths push to the
// right. An "express-way" is a single row with a strong RowWind.
type RowWind struct {
	strength []int
}

// NewRowWind returns a new RowWind with one strength per row
func NewRowWind(strength []int) *RowWind {
	return &RowWind{strength}
}

// Displacement returns the number of columns an agent in the given
// row is pushed
func (r *RowWind) Displacement(row int) int {
	return r.strength[row]
}

// Blow returns the displacement of the wind at position (x, y)
func (r *RowWind) Blow(_, y int) (int, int) {
	return r.strength[y], 0
}

// Check validates that the wind has exactly one strength per row
func (r *RowWind) Check(_, height int) error {
	if len(r.strength) != height {
		return fmt.Errorf("wind table has %d rows but grid has %d",
			len(r.strength), height)
	}
	return nil
}

// StochasticWind decorates another Wind with an independent random
// row perturbation, drawn from a fixed offset distribution after the
// deterministic displacement is computed.
type StochasticWind struct {
	Wind
	offsets []int
	dist    distuv.Categorical
}

// NewStochasticWind returns a new StochasticWind over a base wind.
// Each offset is applied with the corresponding probability. The
// probabilities need not be normalized but must be non-negative with
// a positive sum.
func NewStochasticWind(base Wind, offsets []int, probs []float64,
	seed uint64) (*StochasticWind, error) {
	if len(offsets) == 0 {
		return nil, fmt.Errorf("stochastic wind needs at least one offset")
	}
	if len(offsets) != len(probs) {
		return nil, fmt.Errorf("got %d offsets but %d probabilities",
			len(offsets), len(probs))
	}

	source := rand.NewSource(seed)
	dist := distuv.NewCategorical(probs, source)

	return &StochasticWind{base, offsets, dist}, nil
}

// Blow returns the base wind's displacement perturbed by a sampled
// row offset
func (s *StochasticWind) Blow(x, y int) (int, int) {
	dx, dy := s.Wind.Blow(x, y)
	dy += s.offsets[int(s.dist.Rand())]
	return dx, dy
}
