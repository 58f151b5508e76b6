// Package policy implements policies over tabular action values.
//
// The action-value table is stored as a weight matrix of shape
// (actions x grid cells) acting on one-hot state observations, so
// the value of action a in state s is row a dotted with the one-hot
// encoding of s.
package policy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/windygrid/timestep"
	"github.com/samuelfneumann/windygrid/utils/floatutils"
)

const (
	// WeightsKey is the key for the weights map: map[string]*mat.Dense
	WeightsKey string = "weights"
)

// EGreedy implements an ε-greedy policy over a tabular action-value
// table. With probability ε an action is drawn uniformly at random
// from the full action set; otherwise one of the actions with maximal
// estimated value is drawn, uniformly at random among ties. Uniform
// tie-breaking matters at the start of training, when every estimate
// is zero: always taking the first enumerated action would bias the
// learner toward it.
type EGreedy struct {
	weights *mat.Dense
	epsilon float64
	source  rand.Source
}

// NewEGreedy constructs a new EGreedy policy, where e = epsilon is
// the probability with which a random action is selected; features is
// the number of grid cells, and actions is the number of actions
func NewEGreedy(e float64, seed uint64, features,
	actions int) (*EGreedy, error) {
	if e < 0.0 || e > 1.0 {
		return nil, fmt.Errorf("egreedy: epsilon %v not in [0, 1]", e)
	}
	if features < 1 || actions < 1 {
		return nil, fmt.Errorf("egreedy: need at least one feature and "+
			"action, got (%d, %d)", features, actions)
	}

	source := rand.NewSource(seed)
	weights := mat.NewDense(actions, features, nil)

	return &EGreedy{weights, e, source}, nil
}

// Weights gets and returns the weights of the EGreedy policy as a
// map of string descriptions -> weights
func (p *EGreedy) Weights() map[string]*mat.Dense {
	weights := make(map[string]*mat.Dense)
	weights[WeightsKey] = p.weights

	return weights
}

// SetWeights sets the weight pointer to point to a new set of
// weights. SetWeights can take the output of a call to Weights() on
// another policy directly.
func (p *EGreedy) SetWeights(weights map[string]*mat.Dense) error {
	newWeights, ok := weights[WeightsKey]
	if !ok {
		return fmt.Errorf("egreedy: no weights named %q", WeightsKey)
	}

	p.weights = newWeights
	return nil
}

// Epsilon returns the policy's exploration rate
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}

// SelectAction selects an action from the ε-greedy policy
func (p *EGreedy) SelectAction(t timestep.TimeStep) mat.Vector {
	obs := t.Observation

	// Calculate all action values
	numActions, _ := p.weights.Dims()
	actionValues := mat.NewVecDense(numActions, nil)
	actionValues.MulVec(p.weights, obs)

	// Calculate the ε probability of choosing any action at random
	prob := p.epsilon / float64(numActions)
	actionProbabilities := make([]float64, numActions)
	for i := range actionProbabilities {
		actionProbabilities[i] = prob
	}

	// Split the remaining probability mass across the actions tied
	// for the maximal value
	_, greedy := floatutils.MaxSlice(actionValues.RawVector().Data)
	for _, a := range greedy {
		actionProbabilities[a] += (1.0 - p.epsilon) / float64(len(greedy))
	}

	// Construct a categorical distribution over actions using the
	// action probabilities and sample from it
	dist := distuv.NewCategorical(actionProbabilities, p.source)

	return mat.NewVecDense(1, []float64{dist.Rand()})
}
