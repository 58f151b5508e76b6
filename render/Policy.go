// Package render turns trained action-value tables into
// human-readable artifacts: terminal policy grids, learning-curve
// charts, and PNG drawings of the grid.
package render

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/windygrid/environment/windy"
	"github.com/samuelfneumann/windygrid/utils/matutils"
)

const (
	goalGlyph    = "@"
	unknownGlyph = "*"
)

// PolicyGrid returns an ASCII rendering of the greedy policy stored
// in an action-value weight matrix. Each position shows the glyph of
// its greedy action, with ties broken by lowest action index. The
// goal is marked with '@'. Positions whose action values were never
// updated show '*': nothing was learned there, so no action can be
// recommended. Rows are printed top to bottom, highest y first.
func PolicyGrid(weights *mat.Dense, width, height int,
	actions windy.ActionSet, goalX, goalY int) string {
	glyphs := actions.Glyphs()
	cells := width * height

	var grid strings.Builder
	for y := height - 1; y >= 0; y-- {
		for x := 0; x < width; x++ {
			if x > 0 {
				grid.WriteString(" ")
			}
			grid.WriteString(glyphAt(weights, cells, width, x, y, goalX,
				goalY, glyphs))
		}
		grid.WriteString("\n")
	}
	return grid.String()
}

// ColorPolicyGrid renders the same grid as PolicyGrid with ANSI
// colors: the goal green, undetermined positions red, and actions
// cyan
func ColorPolicyGrid(weights *mat.Dense, width, height int,
	actions windy.ActionSet, goalX, goalY int) string {
	plain := PolicyGrid(weights, width, height, actions, goalX, goalY)

	var grid strings.Builder
	for _, r := range plain {
		switch glyph := string(r); glyph {
		case goalGlyph:
			grid.WriteString(fmt.Sprintf("%v", aurora.Green(glyph)))
		case unknownGlyph:
			grid.WriteString(fmt.Sprintf("%v", aurora.Red(glyph)))
		case " ", "\n":
			grid.WriteString(glyph)
		default:
			grid.WriteString(fmt.Sprintf("%v", aurora.Cyan(glyph)))
		}
	}
	return grid.String()
}

// glyphAt returns the glyph for a single grid position
func glyphAt(weights *mat.Dense, cells, width, x, y, goalX, goalY int,
	glyphs []string) string {
	if x == goalX && y == goalY {
		return goalGlyph
	}

	obs := mat.NewVecDense(cells, nil)
	obs.SetVec(y*width+x, 1.0)

	numActions, _ := weights.Dims()
	actionValues := mat.NewVecDense(numActions, nil)
	actionValues.MulVec(weights, obs)

	// A position with all-zero estimates was never updated
	touched := false
	for i := 0; i < numActions; i++ {
		if actionValues.AtVec(i) != 0.0 {
			touched = true
			break
		}
	}
	if !touched {
		return unknownGlyph
	}

	return glyphs[matutils.MaxVec(actionValues)]
}
