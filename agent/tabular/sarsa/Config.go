package sarsa

import "fmt"

// Config represents a configuration for the Sarsa agent.
//
// The discount factor is not part of the configuration: it is owned
// by the environment and travels on each TimeStep.
type Config struct {
	Epsilon      float64 // Exploration rate of the behaviour policy
	LearningRate float64 // Step size α of the Sarsa update
}

// Validate returns an error describing why the configuration cannot
// be used, or nil if it can
func (c Config) Validate() error {
	if c.Epsilon < 0.0 || c.Epsilon > 1.0 {
		return fmt.Errorf("sarsa: epsilon %v not in [0, 1]", c.Epsilon)
	}
	if c.LearningRate <= 0.0 {
		return fmt.Errorf("sarsa: learning rate %v is not positive",
			c.LearningRate)
	}
	return nil
}

// Spec returns the configuration as a map of hyperparameter names to
// values
func (c Config) Spec() map[string]float64 {
	return map[string]float64{
		"epsilon":      c.Epsilon,
		"learningRate": c.LearningRate,
	}
}
