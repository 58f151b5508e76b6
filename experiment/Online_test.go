package experiment_test

import (
	"fmt"
	"testing"

	"github.com/samuelfneumann/windygrid/agent/tabular/sarsa"
	"github.com/samuelfneumann/windygrid/environment/windy"
	"github.com/samuelfneumann/windygrid/experiment"
	"github.com/samuelfneumann/windygrid/experiment/trackers"
)

// newCanonicalWorld builds the classic 10x7 windy gridworld: start
// (0, 3), goal (7, 3), optimal path 15 steps
func newCanonicalWorld(t *testing.T) *windy.World {
	t.Helper()

	starter, err := windy.NewSingleStart(0, 3, 10, 7)
	if err != nil {
		t.Fatalf("could not create starter: %v", err)
	}
	goal, err := windy.NewGoal(7, 3, 10, 7, -1, -1)
	if err != nil {
		t.Fatalf("could not create goal: %v", err)
	}
	wind := windy.NewColumnWind([]int{0, 0, 0, 1, 1, 1, 2, 2, 1, 0})

	world, _, err := windy.New(10, 7, windy.Standard, wind, goal, 1.0,
		starter)
	if err != nil {
		t.Fatalf("could not create world: %v", err)
	}
	return world
}

func TestSarsaLearnsCanonicalWindyGrid(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping training in short mode")
	}

	for _, seed := range []uint64{1923, 42, 1111} {
		seed := seed
		t.Run(fmt.Sprintf("seed%d", seed), func(t *testing.T) {
			world := newCanonicalWorld(t)

			agent, err := sarsa.New(world, sarsa.Config{
				Epsilon:      0.1,
				LearningRate: 0.5,
			}, seed)
			if err != nil {
				t.Fatalf("could not create agent: %v", err)
			}

			lengths := trackers.NewEpisodeLength("")
			exp := experiment.NewOnline(world, agent, 25_000, lengths)
			exp.Run()

			episodes := lengths.Lengths()
			if len(episodes) < 20 {
				t.Fatalf("finished only %d episodes in 25,000 steps",
					len(episodes))
			}

			// Episodes should shorten as training progresses. Compare
			// the first and last few finished episodes with a generous
			// margin: early episodes wander for hundreds of steps.
			first := mean(episodes[:10])
			last := mean(episodes[len(episodes)-10:])
			if last >= first {
				t.Errorf("mean episode length grew from %.1f to %.1f",
					first, last)
			}

			// The greedy path should be close to the optimal 15 steps
			steps, reached := experiment.Evaluate(world,
				agent.GreedyPolicy(), 70)
			if !reached {
				t.Fatal("greedy policy did not reach the goal")
			}
			if steps > 17 {
				t.Errorf("greedy path took %d steps, want at most 17",
					steps)
			}
		})
	}
}

func TestOnlineStopsAtStepBudget(t *testing.T) {
	world := newCanonicalWorld(t)

	agent, err := sarsa.New(world, sarsa.Config{
		Epsilon:      0.1,
		LearningRate: 0.5,
	}, 7)
	if err != nil {
		t.Fatalf("could not create agent: %v", err)
	}

	// A budget too small to finish the first episode reliably
	exp := experiment.NewOnline(world, agent, 5)
	if ended := exp.RunEpisode(); !ended {
		t.Error("experiment kept running past its step budget")
	}
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
