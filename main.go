package main

import (
	"fmt"
	"log"

	"github.com/samuelfneumann/windygrid/agent/tabular/policy"
	"github.com/samuelfneumann/windygrid/agent/tabular/sarsa"
	"github.com/samuelfneumann/windygrid/environment/windy"
	"github.com/samuelfneumann/windygrid/experiment"
	"github.com/samuelfneumann/windygrid/experiment/trackers"
	"github.com/samuelfneumann/windygrid/render"
)

func main() {
	var seed uint64 = 192382

	// The classic windy gridworld: 10x7 grid, start (0, 3), goal
	// (7, 3), upward wind of strength 0-2 per column
	width, height := 10, 7
	startX, startY := 0, 3
	goalX, goalY := 7, 3
	windStrengths := []int{0, 0, 0, 1, 1, 1, 2, 2, 1, 0}

	starter, err := windy.NewSingleStart(startX, startY, width, height)
	if err != nil {
		log.Fatalf("could not create starter: %v", err)
	}

	goal, err := windy.NewGoal(goalX, goalY, width, height, -1, -1)
	if err != nil {
		log.Fatalf("could not create goal: %v", err)
	}

	wind := windy.NewColumnWind(windStrengths)

	world, _, err := windy.New(width, height, windy.Standard, wind, goal,
		1.0, starter)
	if err != nil {
		log.Fatalf("could not create world: %v", err)
	}

	// Create the learning algorithm
	agent, err := sarsa.New(world, sarsa.Config{
		Epsilon:      0.1,
		LearningRate: 0.5,
	}, seed)
	if err != nil {
		log.Fatalf("could not create agent: %v", err)
	}

	// Experiment: 25,000 environment steps
	lengths := trackers.NewEpisodeLength("./episodes.bin")
	returns := trackers.NewReturn("./returns.bin")
	exp := experiment.NewOnline(world, agent, 25_000, lengths, returns)
	exp.DisplayProgress()
	exp.Run()
	exp.Save()

	weights := agent.Weights()[policy.WeightsKey]

	// Show the learned greedy policy
	fmt.Println(render.ColorPolicyGrid(weights, width, height,
		world.ActionSet(), goalX, goalY))

	pathLen, reached := experiment.Evaluate(world, agent.GreedyPolicy(),
		width*height)
	if reached {
		fmt.Printf("Greedy path: %d steps (optimal is 15)\n", pathLen)
	} else {
		fmt.Println("Greedy policy did not reach the goal")
	}

	// Save the learning curve and the greedy trajectory
	err = render.LearningCurve("Windy gridworld Sarsa", lengths.Lengths(),
		"./learning_curve.html")
	if err != nil {
		log.Fatalf("could not write learning curve: %v", err)
	}

	err = render.Trajectory(world, agent.GreedyPolicy(), width*height,
		"./trajectory.png")
	if err != nil {
		log.Fatalf("could not write trajectory: %v", err)
	}
}
