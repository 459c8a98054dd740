package cli

import (
	"fmt"
)

const (
	menuAddLookup  = "Add a card (online lookup)"
	menuAddManual  = "Add a card (manual entry)"
	menuList       = "List collection"
	menuGrade      = "Estimate a grade"
	menuClearCache = "Clear lookup cache"
	menuExit       = "Exit"
)

// runMenu drives the interactive menu shown on a bare invocation.
func runMenu(nonInteractive bool) {
	if nonInteractive {
		Fatal(fmt.Errorf("no command given; run 'pokeport --help' for available commands"))
	}

	app, err := NewApp(true)
	if err != nil {
		Fatal(err)
	}
	defer app.Close()

	options := []string{
		menuAddLookup,
		menuAddManual,
		menuList,
		menuGrade,
		menuClearCache,
		menuExit,
	}

	for {
		choice, err := app.Prompter.Select("What would you like to do?", options)
		if err != nil {
			Fatal(err)
		}

		switch choice {
		case menuAddLookup:
			addViaLookup(app, "")
		case menuAddManual:
			addManually(app, addValues{})
		case menuList:
			printCollection(app, false)
		case menuGrade:
			grade, err := promptSubScores(app)
			if err != nil {
				PrintError("%s", err)
				continue
			}
			fmt.Printf("Estimated grade: %s\n", RenderBold(fmt.Sprintf("%.2f", grade)))
		case menuClearCache:
			app.Lookup.ClearCache()
			PrintInfo("Lookup cache cleared")
		case menuExit:
			return
		}
	}
}
