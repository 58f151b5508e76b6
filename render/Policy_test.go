package render

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/windygrid/environment/windy"
)

func TestPolicyGrid(t *testing.T) {
	// 2x2 grid, standard actions, goal at (1, 1)
	weights := mat.NewDense(4, 4, nil)

	// (0, 0) -> cell 0: Right dominates; (1, 0) -> cell 1: Up
	// dominates; (0, 1) -> cell 2: never updated
	weights.Set(1, 0, 1.0)
	weights.Set(2, 1, 3.0)

	got := PolicyGrid(weights, 2, 2, windy.Standard, 1, 1)
	want := "* @\nR U\n"

	if got != want {
		t.Errorf("policy grid = %q, want %q", got, want)
	}
}

func TestPolicyGridTiesPickLowestAction(t *testing.T) {
	weights := mat.NewDense(4, 4, nil)

	// Left and Right tie at cell 0
	weights.Set(0, 0, 2.0)
	weights.Set(1, 0, 2.0)

	got := PolicyGrid(weights, 2, 2, windy.Standard, 1, 1)
	want := "* @\nL *\n"

	if got != want {
		t.Errorf("policy grid = %q, want %q", got, want)
	}
}
