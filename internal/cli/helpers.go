package cli

import (
	"fmt"
	"strconv"
	"strings"

	pperr "github.com/cchiddy480/PokePort/internal/errors"
	"github.com/cchiddy480/PokePort/internal/prompt"
)

// parseFloatField parses a numeric text field, treating "" as 0.
// Non-numeric text is rejected at the boundary with no partial effect.
func parseFloatField(field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, pperr.InvalidField(field, fmt.Sprintf("%q is not a number", raw))
	}
	return value, nil
}

// parseIntField parses an integer text field; "" is not allowed.
func parseIntField(field, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pperr.InvalidField(field, fmt.Sprintf("%q is not a whole number", raw))
	}
	return value, nil
}

// promptRequired prompts once; empty input is rejected as invalid.
func promptRequired(p prompt.Prompter, title, field string) (string, error) {
	raw, err := p.Input(title, "")
	if err != nil {
		return "", err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", pperr.InvalidField(field, "must not be empty")
	}
	return raw, nil
}

// promptFloat prompts for an optional numeric value.
func promptFloat(p prompt.Prompter, title, field string) (float64, error) {
	raw, err := p.Input(title, "")
	if err != nil {
		return 0, err
	}
	return parseFloatField(field, raw)
}

// promptInt prompts for a required integer value.
func promptInt(p prompt.Prompter, title, field string) (int, error) {
	raw, err := p.Input(title, "")
	if err != nil {
		return 0, err
	}
	return parseIntField(field, raw)
}
