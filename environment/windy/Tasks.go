package windy

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Goal represents the task of reaching a single absorbing goal state
// in a windy gridworld. Every transition emits the step reward except
// the transition into the goal, which emits the goal reward. The
// canonical shortest-path formulation uses -1 for both.
type Goal struct {
	x, y          int
	width, height int
	stepReward    float64
	goalReward    float64
}

// NewGoal creates and returns a new Goal at position (x, y) on a grid
// with the given dimensions
func NewGoal(x, y, width, height int, stepReward,
	goalReward float64) (*Goal, error) {
	if x < 0 || x >= width {
		return nil, fmt.Errorf("goal x = %d not in [0, %d)", x, width)
	}
	if y < 0 || y >= height {
		return nil, fmt.Errorf("goal y = %d not in [0, %d)", y, height)
	}

	return &Goal{x, y, width, height, stepReward, goalReward}, nil
}

// GetReward returns the reward for transitioning between two states
func (g *Goal) GetReward(_, next mat.Vector) float64 {
	if g.AtGoal(next) {
		return g.goalReward
	}
	return g.stepReward
}

// AtGoal returns whether a one-hot encoded state is the goal state
func (g *Goal) AtGoal(state mat.Vector) bool {
	return state.AtVec(g.y*g.width+g.x) != 0.0
}

// Coordinates returns the (x, y) position of the goal
func (g *Goal) Coordinates() (int, int) {
	return g.x, g.y
}

// Min returns the minimum reward attainable in the Task
func (g *Goal) Min() float64 {
	return floats.Min([]float64{g.stepReward, g.goalReward})
}

// Max returns the maximum reward attainable in the Task
func (g *Goal) Max() float64 {
	return floats.Max([]float64{g.stepReward, g.goalReward})
}

func (g *Goal) String() string {
	return fmt.Sprintf("Goal: (%d, %d)", g.x, g.y)
}
