package cli

import (
	"os"

	"github.com/amterp/ra"
)

// CommandContext holds parsed values and used flags for all commands.
type CommandContext struct {
	// Global flags
	NonInteractive *bool
	JsonOutput     *bool

	// add command
	AddUsed     *bool
	AddName     *string
	AddSet      *string
	AddRarity   *string
	AddPurchase *string
	AddMarket   *string
	AddGrade    *string
	AddImage    *string
	AddLookup   *bool

	// search command
	SearchUsed   *bool
	SearchName   *string
	SearchSet    *string
	SearchNumber *string
	SearchRarity *string
	SearchPromos *bool

	// list command
	ListUsed *bool

	// show command
	ShowUsed *bool
	ShowID   *int

	// edit command
	EditUsed *bool
	EditID   *int

	// delete command
	DeleteUsed  *bool
	DeleteID    *int
	DeleteForce *bool

	// grade command
	GradeUsed      *bool
	GradeCentering *int
	GradeCorners   *int
	GradeEdges     *int
	GradeSurface   *int
}

// Run is the main entry point for the CLI.
func Run() {
	ctx := &CommandContext{}

	cmd := ra.NewCmd("pokeport")
	cmd.SetDescription("Catalogue your trading card collection")

	// Global flags
	ctx.NonInteractive, _ = ra.NewBool("non-interactive").
		SetShort("I").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Fail instead of prompting for missing input").
		Register(cmd, ra.WithGlobal(true))

	ctx.JsonOutput, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Output machine-readable JSON where supported").
		Register(cmd, ra.WithGlobal(true))

	// Register all subcommands
	registerAdd(cmd, ctx)
	registerSearch(cmd, ctx)
	registerList(cmd, ctx)
	registerShow(cmd, ctx)
	registerEdit(cmd, ctx)
	registerDelete(cmd, ctx)
	registerGrade(cmd, ctx)

	// Parse command line
	cmd.ParseOrExit(os.Args[1:])

	// Execute the appropriate command
	executeCommand(ctx)
}

func executeCommand(ctx *CommandContext) {
	switch {
	case *ctx.AddUsed:
		runAdd(ctx)

	case *ctx.SearchUsed:
		runSearch(*ctx.SearchName, *ctx.SearchSet, *ctx.SearchNumber, *ctx.SearchRarity,
			*ctx.SearchPromos, *ctx.JsonOutput)

	case *ctx.ListUsed:
		runList(*ctx.JsonOutput)

	case *ctx.ShowUsed:
		runShow(int64(*ctx.ShowID), *ctx.JsonOutput)

	case *ctx.EditUsed:
		runEdit(int64(*ctx.EditID), *ctx.NonInteractive)

	case *ctx.DeleteUsed:
		runDelete(int64(*ctx.DeleteID), *ctx.DeleteForce, *ctx.NonInteractive)

	case *ctx.GradeUsed:
		runGrade(*ctx.GradeCentering, *ctx.GradeCorners, *ctx.GradeEdges, *ctx.GradeSurface)

	default:
		// Bare invocation drops into the interactive menu.
		runMenu(*ctx.NonInteractive)
	}
}
