package cli

import (
	"context"

	"github.com/amterp/ra"

	"github.com/cchiddy480/PokePort/internal/grading"
	"github.com/cchiddy480/PokePort/internal/service"
)

func registerAdd(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("add")
	cmd.SetDescription("Add a card to your collection")

	ctx.AddName, _ = ra.NewString("name").
		SetOptional(true).
		SetUsage("Card name").
		Register(cmd)

	ctx.AddSet, _ = ra.NewString("set").
		SetShort("s").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Set name").
		Register(cmd)

	ctx.AddRarity, _ = ra.NewString("rarity").
		SetShort("r").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Rarity label").
		Register(cmd)

	ctx.AddPurchase, _ = ra.NewString("purchase-price").
		SetShort("p").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Price you paid").
		Register(cmd)

	ctx.AddMarket, _ = ra.NewString("market-value").
		SetShort("m").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Current market value").
		Register(cmd)

	ctx.AddGrade, _ = ra.NewString("grade").
		SetShort("g").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Grading score (1-10), skip to estimate interactively").
		Register(cmd)

	ctx.AddImage, _ = ra.NewString("image").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Image URL").
		Register(cmd)

	ctx.AddLookup, _ = ra.NewBool("lookup").
		SetShort("l").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Resolve the card against the online card database").
		Register(cmd)

	ctx.AddUsed, _ = parent.RegisterCmd(cmd)
}

func runAdd(ctx *CommandContext) {
	app, err := NewApp(!*ctx.NonInteractive)
	if err != nil {
		Fatal(err)
	}
	defer app.Close()

	if *ctx.AddLookup {
		addViaLookup(app, *ctx.AddName)
		return
	}

	addManually(app, addValues{
		name:     *ctx.AddName,
		set:      *ctx.AddSet,
		rarity:   *ctx.AddRarity,
		purchase: *ctx.AddPurchase,
		market:   *ctx.AddMarket,
		grade:    *ctx.AddGrade,
		image:    *ctx.AddImage,
	})
}

// addValues carries raw (unparsed) field text from flags or prompts.
type addValues struct {
	name     string
	set      string
	rarity   string
	purchase string
	market   string
	grade    string
	image    string
}

// addManually collects any missing fields from the user and persists the
// card. Numeric text is validated before anything touches the store.
func addManually(app *App, values addValues) {
	var err error
	if values.name == "" {
		values.name, err = promptRequired(app.Prompter, "Card name", "name")
		if err != nil {
			Fatal(err)
		}
	}
	if values.set == "" {
		values.set, err = app.Prompter.Input("Set name (optional)", "")
		if err != nil {
			Fatal(err)
		}
	}
	if values.rarity == "" {
		values.rarity, err = app.Prompter.Input("Rarity (optional)", "")
		if err != nil {
			Fatal(err)
		}
	}
	if values.purchase == "" {
		values.purchase, err = app.Prompter.Input("Purchase price (optional)", "")
		if err != nil {
			Fatal(err)
		}
	}
	if values.market == "" {
		values.market, err = app.Prompter.Input("Market value (optional)", "")
		if err != nil {
			Fatal(err)
		}
	}

	purchase, err := parseFloatField("purchase_price", values.purchase)
	if err != nil {
		Fatal(err)
	}
	market, err := parseFloatField("market_value", values.market)
	if err != nil {
		Fatal(err)
	}

	grade, err := resolveGrade(app, values.grade)
	if err != nil {
		Fatal(err)
	}

	card, err := app.Collection.Add(context.Background(), service.AddCardInput{
		Name:          values.name,
		SetName:       values.set,
		Rarity:        values.rarity,
		PurchasePrice: purchase,
		MarketValue:   market,
		GradingScore:  grade,
		ImageURL:      values.image,
	})
	if err != nil {
		Fatal(err)
	}

	PrintSuccess("Added card %s: %s", RenderID(card.ID), card.Name)
}

// resolveGrade parses an explicit grade, or offers to estimate one from
// sub-scores when running interactively.
func resolveGrade(app *App, raw string) (float64, error) {
	if raw != "" {
		return parseFloatField("grading_score", raw)
	}

	estimate, err := app.Prompter.Confirm("Estimate a grade from condition sub-scores?", false)
	if err != nil || !estimate {
		return 0, nil // ungraded
	}
	return promptSubScores(app)
}

// promptSubScores collects the four condition sub-scores and averages them.
func promptSubScores(app *App) (float64, error) {
	centering, err := promptInt(app.Prompter, "Centering (1-10)", "centering")
	if err != nil {
		return 0, err
	}
	corners, err := promptInt(app.Prompter, "Corners (1-10)", "corners")
	if err != nil {
		return 0, err
	}
	edges, err := promptInt(app.Prompter, "Edges (1-10)", "edges")
	if err != nil {
		return 0, err
	}
	surface, err := promptInt(app.Prompter, "Surface (1-10)", "surface")
	if err != nil {
		return 0, err
	}

	grade, explanation, err := grading.Estimate(centering, corners, edges, surface)
	if err != nil {
		return 0, err
	}
	PrintInfo("%s", explanation)
	return grade, nil
}
