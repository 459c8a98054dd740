package cli

import (
	"context"

	"github.com/amterp/ra"

	pperr "github.com/cchiddy480/PokePort/internal/errors"
)

func registerDelete(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("delete")
	cmd.SetDescription("Remove a card from your collection")

	ctx.DeleteID, _ = ra.NewInt("id").
		SetUsage("Card ID").
		Register(cmd)

	ctx.DeleteForce, _ = ra.NewBool("force").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Skip confirmation").
		Register(cmd)

	ctx.DeleteUsed, _ = parent.RegisterCmd(cmd)
}

func runDelete(id int64, force, nonInteractive bool) {
	app, err := NewApp(!nonInteractive)
	if err != nil {
		Fatal(err)
	}
	defer app.Close()

	ctx := context.Background()
	card, err := app.Collection.Get(ctx, id)
	if err != nil {
		if pperr.IsNotFound(err) {
			// Deleting an absent card is a no-op, not a failure.
			PrintInfo("Card %s not found, nothing to delete", RenderID(id))
			return
		}
		Fatal(err)
	}

	if !force {
		confirmed, err := app.Prompter.Confirm("Delete "+card.Name+"?", false)
		if err != nil {
			Fatal(err)
		}
		if !confirmed {
			PrintInfo("Aborted")
			return
		}
	}

	if err := app.Collection.Remove(ctx, id); err != nil {
		Fatal(err)
	}
	PrintSuccess("Deleted card %s: %s", RenderID(id), card.Name)
}
