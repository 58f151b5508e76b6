package render

import (
	"fmt"

	"github.com/fogleman/gg"

	"github.com/samuelfneumann/windygrid/agent"
	"github.com/samuelfneumann/windygrid/environment/windy"
)

const cellSize = 48

// Trajectory draws the gridworld and the path a policy takes from the
// start state, saving the drawing as a PNG at filename. Columns are
// shaded by wind strength, the goal cell is filled green, and the
// path is drawn as a red line from a circle at the start. If the
// policy does not reach the goal within maxSteps steps, the partial
// path is drawn.
func Trajectory(w *windy.World, p agent.Policy, maxSteps int,
	filename string) error {
	width, height := w.Dims()
	dc := gg.NewContext(width*cellSize, height*cellSize)

	dc.SetRGB(1, 1, 1)
	dc.Clear()

	shadeWind(dc, w, width, height)
	fillGoal(dc, w, height)
	drawGridLines(dc, width, height)
	drawPath(dc, w, p, maxSteps, height)

	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("render: could not save image: %v", err)
	}
	return nil
}

// shadeWind shades each column in proportion to its wind strength.
// Only ColumnWind is drawable this way; other winds leave the grid
// unshaded.
func shadeWind(dc *gg.Context, w *windy.World, width, height int) {
	wind, ok := w.Wind().(*windy.ColumnWind)
	if !ok {
		return
	}

	max := 0
	for x := 0; x < width; x++ {
		if s := abs(wind.Displacement(x)); s > max {
			max = s
		}
	}
	if max == 0 {
		return
	}

	for x := 0; x < width; x++ {
		strength := float64(abs(wind.Displacement(x))) / float64(max)
		if strength == 0 {
			continue
		}
		dc.SetRGBA(0.35, 0.55, 0.9, 0.25*strength)
		dc.DrawRectangle(float64(x*cellSize), 0, cellSize,
			float64(height*cellSize))
		dc.Fill()
	}
}

// fillGoal fills the goal cell, when the World's task is a Goal
func fillGoal(dc *gg.Context, w *windy.World, height int) {
	goal, ok := w.Task.(*windy.Goal)
	if !ok {
		return
	}
	x, y := goal.Coordinates()

	dc.SetRGBA(0.2, 0.7, 0.3, 0.9)
	dc.DrawRectangle(float64(x*cellSize), float64((height-1-y)*cellSize),
		cellSize, cellSize)
	dc.Fill()
}

func drawGridLines(dc *gg.Context, width, height int) {
	dc.SetRGB(0.75, 0.75, 0.75)
	dc.SetLineWidth(1)
	for x := 0; x <= width; x++ {
		dc.DrawLine(float64(x*cellSize), 0, float64(x*cellSize),
			float64(height*cellSize))
	}
	for y := 0; y <= height; y++ {
		dc.DrawLine(0, float64(y*cellSize), float64(width*cellSize),
			float64(y*cellSize))
	}
	dc.Stroke()
}

// drawPath rolls the policy out from the start state and draws the
// visited cells as a line through their centres
func drawPath(dc *gg.Context, w *windy.World, p agent.Policy,
	maxSteps, height int) {
	step := w.Reset()
	xs, ys := []int{}, []int{}

	x, y := w.Coordinates()
	xs, ys = append(xs, x), append(ys, y)

	var done bool
	for i := 0; i < maxSteps && !done; i++ {
		step, done = w.Step(p.SelectAction(step))
		x, y = w.Coordinates()
		xs, ys = append(xs, x), append(ys, y)
	}

	center := func(i int) (float64, float64) {
		px := float64(xs[i]*cellSize) + cellSize/2
		py := float64((height-1-ys[i])*cellSize) + cellSize/2
		return px, py
	}

	dc.SetRGB(0.85, 0.2, 0.2)
	dc.SetLineWidth(3)
	for i := 0; i < len(xs)-1; i++ {
		x0, y0 := center(i)
		x1, y1 := center(i + 1)
		dc.DrawLine(x0, y0, x1, y1)
	}
	dc.Stroke()

	// Start marker
	x0, y0 := center(0)
	dc.DrawCircle(x0, y0, cellSize/6)
	dc.Fill()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
