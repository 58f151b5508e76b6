package experiment

import (
	"github.com/samuelfneumann/windygrid/agent"
	env "github.com/samuelfneumann/windygrid/environment"
	"github.com/samuelfneumann/windygrid/experiment/trackers"
	ts "github.com/samuelfneumann/windygrid/timestep"
	"github.com/samuelfneumann/windygrid/utils/progressbar"
)

// Online is an Experiment that runs an agent online against a total
// environment-step budget. Episodes vary in length as the policy
// improves, so the budget counts individual steps rather than
// episodes; an episode in progress when the budget runs out is cut
// short.
type Online struct {
	env.Environment
	agent.Agent
	maxSteps     uint
	currentSteps uint
	trackers     []trackers.Tracker
	progress     *progressbar.ProgressBar
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The steps parameter determines the
// total number of environment steps the experiment is run for, and t
// determines what data is saved.
func NewOnline(e env.Environment, a agent.Agent, steps uint,
	t ...trackers.Tracker) *Online {
	return &Online{
		Environment: e,
		Agent:       a,
		maxSteps:    steps,
		trackers:    t,
	}
}

// Register registers a Tracker with the Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t trackers.Tracker) {
	o.trackers = append(o.trackers, t)
}

// DisplayProgress turns on a terminal progress bar over the step
// budget. It should be called before Run().
func (o *Online) DisplayProgress() {
	o.progress = progressbar.New(40, int(o.maxSteps))
}

// RunEpisode runs a single episode of the experiment, returning
// whether the step budget was exhausted
func (o *Online) RunEpisode() bool {
	step := o.Environment.Reset()
	o.Agent.ObserveFirst(step)
	o.track(step)

	for !step.Last() && o.currentSteps < o.maxSteps {
		o.currentSteps++

		// Select action, step in environment
		action := o.Agent.SelectAction(step)
		step, _ = o.Environment.Step(action)

		// Cache the environment step in each Tracker
		o.track(step)

		// Observe the timestep and step the agent
		o.Agent.Observe(action, step)
		o.Agent.Step()

		if o.progress != nil {
			o.progress.Increment()
			if o.currentSteps%100 == 0 {
				o.progress.Display()
			}
		}
	}
	o.Agent.EndEpisode()

	return o.currentSteps >= o.maxSteps
}

// Run runs the entire experiment for all timesteps
func (o *Online) Run() {
	ended := false

	for !ended {
		ended = o.RunEpisode()
	}

	if o.progress != nil {
		o.progress.Close()
	}
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() {
	for _, tracker := range o.trackers {
		tracker.Save()
	}
}

// track tracks the current timestep by caching its data in each
// Tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}
