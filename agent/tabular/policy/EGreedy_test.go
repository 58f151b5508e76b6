package policy

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/windygrid/timestep"
)

const (
	testFeatures = 70
	testActions  = 4
)

// stateStep returns a timestep observing the one-hot encoding of a
// grid cell
func stateStep(cell int) timestep.TimeStep {
	obs := mat.NewVecDense(testFeatures, nil)
	obs.SetVec(cell, 1.0)
	return timestep.New(timestep.Mid, -1, 1.0, obs, 1)
}

func TestGreedySelectsDominatingAction(t *testing.T) {
	p, err := NewEGreedy(0.0, 14, testFeatures, testActions)
	if err != nil {
		t.Fatalf("could not create policy: %v", err)
	}

	// Action 2 strictly dominates at cell 12
	weights := p.Weights()[WeightsKey]
	weights.Set(2, 12, 5.0)
	weights.Set(0, 12, 1.0)

	step := stateStep(12)
	for i := 0; i < 100; i++ {
		if a := p.SelectAction(step).AtVec(0); a != 2 {
			t.Fatalf("trial %d: selected action %v, want 2", i, a)
		}
	}
}

func TestGreedyBreaksTiesUniformly(t *testing.T) {
	p, err := NewEGreedy(0.0, 14, testFeatures, testActions)
	if err != nil {
		t.Fatalf("could not create policy: %v", err)
	}

	// All action values are zero, so every action is tied
	const trials = 8000
	counts := make([]int, testActions)
	step := stateStep(3)

	for i := 0; i < trials; i++ {
		counts[int(p.SelectAction(step).AtVec(0))]++
	}

	expected := trials / testActions
	for a, count := range counts {
		if count < expected-300 || count > expected+300 {
			t.Errorf("action %d selected %d times, want about %d", a,
				count, expected)
		}
	}
}

func TestEpsilonExploresUniformly(t *testing.T) {
	p, err := NewEGreedy(1.0, 14, testFeatures, testActions)
	if err != nil {
		t.Fatalf("could not create policy: %v", err)
	}

	// Action 1 dominates, but epsilon = 1 ignores it
	p.Weights()[WeightsKey].Set(1, 0, 10.0)

	const trials = 8000
	counts := make([]int, testActions)
	step := stateStep(0)

	for i := 0; i < trials; i++ {
		counts[int(p.SelectAction(step).AtVec(0))]++
	}

	expected := trials / testActions
	for a, count := range counts {
		if count < expected-300 || count > expected+300 {
			t.Errorf("action %d selected %d times, want about %d", a,
				count, expected)
		}
	}
}

func TestEGreedyValidation(t *testing.T) {
	if _, err := NewEGreedy(-0.1, 1, testFeatures, testActions); err == nil {
		t.Error("created a policy with negative epsilon")
	}
	if _, err := NewEGreedy(1.1, 1, testFeatures, testActions); err == nil {
		t.Error("created a policy with epsilon > 1")
	}
	if _, err := NewEGreedy(0.1, 1, 0, testActions); err == nil {
		t.Error("created a policy with no features")
	}
}

func TestGreedyPolicyDeterministicTies(t *testing.T) {
	p, err := NewEGreedy(0.0, 14, testFeatures, testActions)
	if err != nil {
		t.Fatalf("could not create policy: %v", err)
	}

	greedy := NewGreedy(testFeatures, testActions)
	if err := greedy.SetWeights(p.Weights()); err != nil {
		t.Fatalf("could not share weights: %v", err)
	}

	// All values tied: the deterministic policy picks the lowest index
	step := stateStep(5)
	for i := 0; i < 10; i++ {
		if a := greedy.SelectAction(step).AtVec(0); a != 0 {
			t.Fatalf("tied greedy action = %v, want 0", a)
		}
	}

	// Weight changes through the shared matrix are visible
	p.Weights()[WeightsKey].Set(3, 5, 1.0)
	if a := greedy.SelectAction(step).AtVec(0); a != 3 {
		t.Errorf("greedy action = %v, want 3", a)
	}
}
