package windy

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/windygrid/environment"
)

// SingleStart starts every episode from the same fixed position
type SingleStart struct {
	state mat.Vector
}

// NewSingleStart returns a Starter that always starts episodes at
// (x, y) on a grid with the given dimensions
func NewSingleStart(x, y, width, height int) (environment.Starter, error) {
	if x < 0 || x >= width {
		return nil, fmt.Errorf("start x = %d not in [0, %d)", x, width)
	}
	if y < 0 || y >= height {
		return nil, fmt.Errorf("start y = %d not in [0, %d)", y, height)
	}

	state := mat.NewVecDense(width*height, nil)
	state.SetVec(y*width+x, 1.0)

	return &SingleStart{state}, nil
}

// Start returns the starting state
func (s *SingleStart) Start() mat.Vector {
	return s.state
}
