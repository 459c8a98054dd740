package cli

import (
	"fmt"

	"github.com/amterp/ra"

	"github.com/cchiddy480/PokePort/internal/grading"
)

func registerGrade(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("grade")
	cmd.SetDescription("Estimate a condition grade from four sub-scores")

	ctx.GradeCentering, _ = ra.NewInt("centering").
		SetUsage("Centering score (1-10)").
		Register(cmd)

	ctx.GradeCorners, _ = ra.NewInt("corners").
		SetUsage("Corners score (1-10)").
		Register(cmd)

	ctx.GradeEdges, _ = ra.NewInt("edges").
		SetUsage("Edges score (1-10)").
		Register(cmd)

	ctx.GradeSurface, _ = ra.NewInt("surface").
		SetUsage("Surface score (1-10)").
		Register(cmd)

	ctx.GradeUsed, _ = parent.RegisterCmd(cmd)
}

func runGrade(centering, corners, edges, surface int) {
	grade, explanation, err := grading.Estimate(centering, corners, edges, surface)
	if err != nil {
		Fatal(err)
	}

	fmt.Printf("Estimated grade: %s\n", RenderBold(fmt.Sprintf("%.2f", grade)))
	fmt.Println(RenderMuted(explanation))
}
