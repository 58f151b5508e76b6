package trackers

import (
	"encoding/gob"
	"log"
	"os"

	"github.com/samuelfneumann/windygrid/timestep"
)

// Return tracks and saves the undiscounted return of each episode in
// an experiment. Like EpisodeLength, an episode must finish for its
// return to be recorded.
type Return struct {
	returns       []float64
	currentReturn float64
	filename      string
}

// NewReturn returns a new Return tracker which will save its data at
// the specified location filename
func NewReturn(filename string) *Return {
	return &Return{filename: filename}
}

// Track accumulates the rewards of an episode, caching the episodic
// return when the last timestep of the episode is seen
func (r *Return) Track(t timestep.TimeStep) {
	if t.First() {
		r.currentReturn = 0
		return
	}

	r.currentReturn += t.Reward
	if t.Last() {
		r.returns = append(r.returns, r.currentReturn)
	}
}

// Returns returns the episodic returns recorded so far
func (r *Return) Returns() []float64 {
	return r.returns
}

// Save saves the data tracked by the Return Tracker to disk
func (r *Return) Save() {
	// Open the file to save to
	file, err := os.Create(r.filename)
	if err != nil {
		log.Fatalf("could not open save file: %v", err)
	}
	defer file.Close()

	// Encode and save the file
	en := gob.NewEncoder(file)
	if err = en.Encode(r.returns); err != nil {
		log.Fatalf("could not encode return data: %v", err)
	}
}
