// Package sarsa implements the tabular Sarsa algorithm
package sarsa

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/windygrid/agent/tabular/policy"
	"github.com/samuelfneumann/windygrid/environment"
	"github.com/samuelfneumann/windygrid/timestep"
)

// Sarsa implements the online Sarsa algorithm. Actions selected by
// this algorithm will always be enumerated as (0, 1, 2, ..., N-1)
// where N is the number of actions.
//
// Sarsa is on-policy: each update bootstraps from the value of the
// action the behaviour policy will actually execute next. To keep
// the updated and executed actions identical, the agent commits to
// its next action when it observes a transition and replays that
// committed action on the following SelectAction call.
type Sarsa struct {
	*SarsaLearner
	behaviour *policy.EGreedy
	greedy    *policy.Greedy
	committed int
	seed      uint64
}

// New creates a new Sarsa agent for an environment. The action-value
// table is created here, zero-initialized, and shared by pointer
// between the learner and both policies.
func New(env environment.Environment, config Config,
	seed uint64) (*Sarsa, error) {
	// Ensure environment has discrete, 1-dimensional actions
	// enumerated from 0
	if env.ActionSpec().Cardinality != environment.Discrete {
		return nil, fmt.Errorf("sarsa: cannot use non-discrete actions")
	}
	if env.ActionSpec().LowerBound.Len() > 1 {
		return nil, fmt.Errorf("sarsa: actions must be 1-dimensional")
	}
	if env.ActionSpec().LowerBound.AtVec(0) != 0.0 {
		return nil, fmt.Errorf("sarsa: actions must be enumerated " +
			"starting from 0")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	features := env.ObservationSpec().Shape.Len()
	actions := int(env.ActionSpec().UpperBound.AtVec(0)) + 1

	behaviour, err := policy.NewEGreedy(config.Epsilon, seed, features,
		actions)
	if err != nil {
		return nil, fmt.Errorf("sarsa: invalid behaviour policy: %v", err)
	}

	// The greedy policy and learner reference the behaviour policy's
	// weights
	weights := behaviour.Weights()
	greedy := policy.NewGreedy(features, actions)
	if err := greedy.SetWeights(weights); err != nil {
		return nil, fmt.Errorf("sarsa: invalid greedy policy: %v", err)
	}

	learner, err := NewSarsaLearner(weights[policy.WeightsKey],
		config.LearningRate)
	if err != nil {
		return nil, fmt.Errorf("sarsa: cannot create learner: %v", err)
	}

	return &Sarsa{
		SarsaLearner: learner,
		behaviour:    behaviour,
		greedy:       greedy,
		committed:    -1,
		seed:         seed,
	}, nil
}

// SelectAction returns the action committed to when the previous
// transition was observed, or samples a fresh action from the
// behaviour policy at the start of an episode
func (s *Sarsa) SelectAction(t timestep.TimeStep) mat.Vector {
	if s.committed >= 0 {
		action := s.committed
		s.committed = -1
		return mat.NewVecDense(1, []float64{float64(action)})
	}
	return s.behaviour.SelectAction(t)
}

// ObserveFirst observes and records the first episodic timestep
func (s *Sarsa) ObserveFirst(t timestep.TimeStep) {
	s.committed = -1
	s.SarsaLearner.ObserveFirst(t)
}

// Observe records that an action led to some timestep and commits to
// the action that will be taken from the resulting state
func (s *Sarsa) Observe(action mat.Vector, nextStep timestep.TimeStep) {
	next := -1
	if !nextStep.Last() {
		next = int(s.behaviour.SelectAction(nextStep).AtVec(0))
	}
	s.committed = next
	s.SarsaLearner.ObserveNext(action, nextStep, next)
}

// GreedyPolicy returns the deterministic greedy policy over the
// agent's current action-value estimates. The returned policy shares
// the agent's weights, so it reflects any further training.
func (s *Sarsa) GreedyPolicy() *policy.Greedy {
	return s.greedy
}
