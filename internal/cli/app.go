package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cchiddy480/PokePort/internal/config"
	"github.com/cchiddy480/PokePort/internal/lookup"
	"github.com/cchiddy480/PokePort/internal/prompt"
	"github.com/cchiddy480/PokePort/internal/service"
	"github.com/cchiddy480/PokePort/internal/store"
)

// App holds all the dependencies for the CLI.
type App struct {
	Config     *config.Config
	CardStore  store.CardStore
	Collection *service.CollectionService
	Lookup     *lookup.Client
	Prompter   prompt.Prompter
}

// NewApp creates a new App with all dependencies wired up.
// If interactive is false, uses NoopPrompter that fails on prompts.
func NewApp(interactive bool) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	cardStore, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	if err := cardStore.Init(context.Background()); err != nil {
		_ = cardStore.Close()
		return nil, err
	}

	lookupClient := lookup.NewClient(lookup.Options{
		BaseURL:          cfg.Lookup.BaseURL,
		APIKey:           cfg.Lookup.APIKey,
		Timeout:          time.Duration(cfg.Lookup.TimeoutSeconds) * time.Second,
		CacheTTL:         time.Duration(cfg.Lookup.CacheTTLSeconds) * time.Second,
		PageSize:         cfg.Lookup.PageSize,
		AdvancedPageSize: cfg.Lookup.AdvancedPageSize,
	})

	var prompter prompt.Prompter
	if interactive {
		prompter = prompt.NewHuhPrompter()
	} else {
		prompter = &prompt.NoopPrompter{}
	}

	return &App{
		Config:     cfg,
		CardStore:  cardStore,
		Collection: service.NewCollectionService(cardStore),
		Lookup:     lookupClient,
		Prompter:   prompter,
	}, nil
}

// Close releases the database handle.
func (a *App) Close() {
	_ = a.CardStore.Close()
}

// WarnIfNoAPIKey nudges the user before a lookup that is going to fail
// against the real service.
func (a *App) WarnIfNoAPIKey() {
	if a.Config.Lookup.APIKey == "" {
		PrintWarning("no API key configured; set %s or add api_key to %s", config.APIKeyEnv, config.Path())
	}
}

// Fatal prints an error and exits.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
