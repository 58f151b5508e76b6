package sarsa

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/windygrid/agent/tabular/policy"
	"github.com/samuelfneumann/windygrid/timestep"
)

// SarsaLearner implements the update functionality for the Sarsa
// algorithm: a one-step on-policy temporal-difference update toward
// the value of the (state, action) pair the policy actually takes
// next.
type SarsaLearner struct {
	weights      *mat.Dense
	step         timestep.TimeStep
	action       int
	nextStep     timestep.TimeStep
	nextAction   int
	learningRate float64
}

// NewSarsaLearner creates a new SarsaLearner on a given action-value
// weight matrix, which should be shared with the behaviour policy
func NewSarsaLearner(weights *mat.Dense,
	learningRate float64) (*SarsaLearner, error) {
	if learningRate <= 0.0 {
		return nil, fmt.Errorf("sarsa: learning rate %v is not positive",
			learningRate)
	}

	return &SarsaLearner{
		weights:      weights,
		action:       -1,
		nextAction:   -1,
		learningRate: learningRate,
	}, nil
}

// ObserveFirst observes and records the first episodic timestep
func (s *SarsaLearner) ObserveFirst(t timestep.TimeStep) {
	if !t.First() {
		fmt.Fprintf(os.Stderr, "Warning: ObserveFirst() should only be "+
			"called on the first timestep (current timestep = %d)", t.Number)
	}
	s.step = timestep.TimeStep{}
	s.nextStep = t
	s.action, s.nextAction = -1, -1
}

// ObserveNext records the transition produced by taking action in the
// last observed state, together with the action the policy has
// committed to take next. A negative nextAction marks the terminal
// case, where the value of every action is exactly 0.
func (s *SarsaLearner) ObserveNext(action mat.Vector,
	nextStep timestep.TimeStep, nextAction int) {
	if action.Len() != 1 {
		fmt.Fprintf(os.Stderr, "Warning: value-based methods should not "+
			"have multi-dimensional actions (action dim = %d)", action.Len())
	}
	s.step = s.nextStep
	s.action = int(action.AtVec(0))
	s.nextStep = nextStep
	s.nextAction = nextAction
}

// Step updates the action-value estimate of the last taken
// (state, action) pair
func (s *SarsaLearner) Step() {
	// Value of the next (state, action) pair; exactly 0 past the goal
	var nextValue float64
	if !s.nextStep.Last() && s.nextAction >= 0 {
		next := s.weights.RowView(s.nextAction)
		nextValue = mat.Dot(next, s.nextStep.Observation)
	}

	// Create the update target
	discount := s.nextStep.Discount
	target := s.nextStep.Reward + discount*nextValue

	// Find the current estimate of the taken action
	row := s.weights.RowView(s.action)
	state := s.step.Observation
	currentEstimate := mat.Dot(row, state)

	// Construct the scaling factor of the gradient
	scale := s.learningRate * (target - currentEstimate)

	// Move the estimate toward the target: ∇weights = scale * state
	newWeights := mat.NewVecDense(row.Len(), nil)
	newWeights.AddScaledVec(row, scale, state)
	s.weights.SetRow(s.action, mat.Col(nil, 0, newWeights))
}

// EndEpisode performs cleanup at the end of an episode
func (s *SarsaLearner) EndEpisode() {}

// Weights gets and returns the weights of the learner
func (s *SarsaLearner) Weights() map[string]*mat.Dense {
	weights := make(map[string]*mat.Dense)
	weights[policy.WeightsKey] = s.weights

	return weights
}
