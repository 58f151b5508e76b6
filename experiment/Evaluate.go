package experiment

import (
	"github.com/samuelfneumann/windygrid/agent"
	env "github.com/samuelfneumann/windygrid/environment"
)

// Evaluate runs a policy in an environment without learning,
// returning the number of steps the policy took to reach a terminal
// state. If no terminal state is reached within maxSteps steps,
// Evaluate returns maxSteps and false.
func Evaluate(e env.Environment, p agent.Policy, maxSteps int) (int, bool) {
	step := e.Reset()

	var done bool
	for i := 1; i <= maxSteps; i++ {
		step, done = e.Step(p.SelectAction(step))
		if done {
			return i, true
		}
	}
	return maxSteps, false
}
