// Package experiment implements functionality for running an
// experiment.
//
// Experiments drive the agent-environment interaction loop and send
// every TimeStep to registered Trackers, which cache the data they
// care about in RAM. The Save() method then writes all cached data to
// disk, usually after the experiment has been run. Run() runs episodes
// until the environment-step budget is exhausted; RunEpisode() runs a
// single episode.
package experiment

import (
	"github.com/samuelfneumann/windygrid/experiment/trackers"
)

// Experiment outlines structs that can run experiments
type Experiment interface {
	Run()
	RunEpisode() bool // Returns whether the step budget was exhausted

	// Save all tracked data to disk
	Save()

	// Register adds a new Tracker to the (possibly already running)
	// experiment
	Register(t trackers.Tracker)
}
