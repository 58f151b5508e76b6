package policy

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/windygrid/timestep"
	"github.com/samuelfneumann/windygrid/utils/matutils"
)

// Greedy implements a deterministic greedy policy over a tabular
// action-value table. Ties are broken by lowest action index, which
// keeps evaluation and rendering reproducible.
type Greedy struct {
	weights *mat.Dense
}

// NewGreedy creates a new Greedy policy
func NewGreedy(features, actions int) *Greedy {
	weights := mat.NewDense(actions, features, nil)
	return &Greedy{weights}
}

// Weights gets and returns the weights of the Greedy policy as a
// map of string descriptions -> weights
func (p *Greedy) Weights() map[string]*mat.Dense {
	weights := make(map[string]*mat.Dense)
	weights[WeightsKey] = p.weights

	return weights
}

// SetWeights sets the weight pointer to point to a new set of weights
func (p *Greedy) SetWeights(weights map[string]*mat.Dense) error {
	newWeights, ok := weights[WeightsKey]
	if !ok {
		return fmt.Errorf("greedy: no weights named %q", WeightsKey)
	}

	p.weights = newWeights
	return nil
}

// SelectAction selects an action from the greedy policy
func (p *Greedy) SelectAction(t timestep.TimeStep) mat.Vector {
	obs := t.Observation

	// Calculate all action values
	numActions, _ := p.weights.Dims()
	actionValues := mat.NewVecDense(numActions, nil)
	actionValues.MulVec(p.weights, obs)

	// Find and return the greedy action
	action := float64(matutils.MaxVec(actionValues))
	return mat.NewVecDense(1, []float64{action})
}
