// Package windy implements the windy gridworld environment
package windy

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/windygrid/environment"
	"github.com/samuelfneumann/windygrid/timestep"
)

// World represents a windy gridworld environment
//
// Positions are (x, y) coordinates with x in [0, width) and y in
// [0, height), y increasing upward. Observations are one-hot vectors
// of length width*height over the flattened grid. On each step the
// chosen action's displacement is applied first, then the wind's
// displacement for the position the agent occupied before the action,
// clamping to the grid bounds after each of the two moves. The agent
// is never wrapped around an edge.
type World struct {
	environment.Task
	environment.Starter
	width, height int
	actions       ActionSet
	wind          Wind
	position      int
	discount      float64
	currentStep   timestep.TimeStep
}

// New creates a new windy gridworld with the given dimensions, action
// set, wind, task, and discount factor. All preconditions are
// validated here: the returned error is fatal since no environment
// can exist without a well-formed grid.
func New(width, height int, actions ActionSet, wind Wind,
	t environment.Task, discount float64,
	s environment.Starter) (*World, timestep.TimeStep, error) {
	if width <= 0 || height <= 0 {
		return nil, timestep.TimeStep{}, fmt.Errorf("windy: non-positive "+
			"dimensions (%d, %d)", width, height)
	}
	if err := wind.Check(width, height); err != nil {
		return nil, timestep.TimeStep{}, fmt.Errorf("windy: %v", err)
	}
	if discount < 0 || discount > 1 {
		return nil, timestep.TimeStep{}, fmt.Errorf("windy: discount %v "+
			"not in [0, 1]", discount)
	}
	if s.Start().Len() != width*height {
		return nil, timestep.TimeStep{}, fmt.Errorf("windy: starter is for "+
			"a %d-cell grid, not %d cells", s.Start().Len(), width*height)
	}

	w := &World{
		Task:     t,
		Starter:  s,
		width:    width,
		height:   height,
		actions:  actions,
		wind:     wind,
		discount: discount,
	}

	return w, w.Reset(), nil
}

// Dims returns the width and height of the grid
func (w *World) Dims() (int, int) {
	return w.width, w.height
}

// Coordinates returns the (x, y) position the agent currently occupies
func (w *World) Coordinates() (int, int) {
	return w.coords(w.position)
}

// ActionSet returns the set of actions available in the World
func (w *World) ActionSet() ActionSet {
	return w.actions
}

// Wind returns the wind blowing over the World
func (w *World) Wind() Wind {
	return w.wind
}

// Reset resets the agent to the start state between episodes
func (w *World) Reset() timestep.TimeStep {
	start := w.Start()
	w.position = index(start)

	step := timestep.New(timestep.First, 0, w.discount, start, 0)
	w.currentStep = step
	return step
}

// Step takes one transition in the World. The action is a 1-element
// vector holding the action number. Step returns the resulting
// timestep and whether the goal was reached.
func (w *World) Step(action mat.Vector) (timestep.TimeStep, bool) {
	moves := w.actions.Moves()
	a := int(action.AtVec(0))
	if a < 0 || a >= len(moves) {
		panic(fmt.Sprintf("step: action %d out of range [0, %d)", a,
			len(moves)))
	}

	x, y := w.coords(w.position)

	// Agent's move, clamped to the grid
	nextX := clamp(x+moves[a][0], w.width)
	nextY := clamp(y+moves[a][1], w.height)

	// Wind blows from the pre-action position
	windX, windY := w.wind.Blow(x, y)
	nextX = clamp(nextX+windX, w.width)
	nextY = clamp(nextY+windY, w.height)

	next := w.oneHot(nextX, nextY)
	reward := w.GetReward(w.currentStep.Observation, next)
	w.position = nextY*w.width + nextX

	stepType := timestep.Mid
	if w.AtGoal(next) {
		stepType = timestep.Last
	}

	step := timestep.New(stepType, reward, w.discount, next,
		w.currentStep.Number+1)
	w.currentStep = step

	return step, stepType == timestep.Last
}

// DiscountSpec returns the discounting specification of the World
func (w *World) DiscountSpec() environment.Spec {
	bound := mat.NewVecDense(1, []float64{w.discount})

	return environment.NewSpec(mat.NewVecDense(1, nil),
		environment.Discount, bound, bound, environment.Continuous)
}

// ObservationSpec returns the observation specification of the World
func (w *World) ObservationSpec() environment.Spec {
	cells := w.width * w.height
	shape := mat.NewVecDense(cells, nil)
	lower := mat.NewVecDense(cells, nil)

	ones := make([]float64, cells)
	for i := range ones {
		ones[i] = 1.0
	}
	upper := mat.NewVecDense(cells, ones)

	return environment.NewSpec(shape, environment.Observation, lower,
		upper, environment.Discrete)
}

// ActionSpec returns the action specification of the World
func (w *World) ActionSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lower := mat.NewVecDense(1, []float64{0})
	upper := mat.NewVecDense(1,
		[]float64{float64(w.actions.NumActions() - 1)})

	return environment.NewSpec(shape, environment.Action, lower, upper,
		environment.Discrete)
}

func (w *World) String() string {
	str := "WindyGrid | At: (%d, %d)  |  Actions: %v  |  Bounds: (%d, %d)"
	x, y := w.Coordinates()

	return fmt.Sprintf(str, x, y, w.actions, w.width, w.height)
}

// oneHot encodes coordinates (x, y) as a one-hot vector over the
// flattened grid
func (w *World) oneHot(x, y int) *mat.VecDense {
	vec := mat.NewVecDense(w.width*w.height, nil)
	vec.SetVec(y*w.width+x, 1.0)
	return vec
}

// coords converts a flattened grid index to (x, y) coordinates
func (w *World) coords(i int) (int, int) {
	y := i / w.width
	x := i - y*w.width
	return x, y
}

// index returns the flattened grid index of the single non-zero entry
// in a one-hot vector
func index(v mat.Vector) int {
	for i := 0; i < v.Len(); i++ {
		if v.AtVec(i) != 0.0 {
			return i
		}
	}
	return -1
}

// clamp pulls a coordinate back to the nearest edge of [0, bound)
func clamp(coord, bound int) int {
	if coord < 0 {
		return 0
	}
	if coord >= bound {
		return bound - 1
	}
	return coord
}
