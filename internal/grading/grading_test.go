package grading

import (
	"strings"
	"testing"

	pperr "github.com/cchiddy480/PokePort/internal/errors"
)

func TestEstimate_NearMint(t *testing.T) {
	grade, explanation, err := Estimate(9, 9, 8, 9)
	if err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}
	if grade != 8.75 {
		t.Errorf("Estimate(9,9,8,9) = %g, want 8.75", grade)
	}
	if !strings.Contains(explanation, "8.75") {
		t.Errorf("explanation should mention the grade, got %q", explanation)
	}
}

func TestEstimate_IsMeanAndInRange(t *testing.T) {
	// Exhaustive over all in-range sub-score combinations.
	for c := 1; c <= 10; c++ {
		for k := 1; k <= 10; k++ {
			for e := 1; e <= 10; e++ {
				for s := 1; s <= 10; s++ {
					grade, _, err := Estimate(c, k, e, s)
					if err != nil {
						t.Fatalf("Estimate(%d,%d,%d,%d) failed: %v", c, k, e, s, err)
					}
					if want := float64(c+k+e+s) / 4.0; grade != want {
						t.Fatalf("Estimate(%d,%d,%d,%d) = %g, want %g", c, k, e, s, grade, want)
					}
					if grade < 1.0 || grade > 10.0 {
						t.Fatalf("grade %g outside [1.0, 10.0]", grade)
					}
				}
			}
		}
	}
}

func TestEstimate_OutOfRange(t *testing.T) {
	tests := []struct {
		name       string
		c, k, e, s int
	}{
		{"centering too low", 0, 5, 5, 5},
		{"corners too high", 5, 11, 5, 5},
		{"edges negative", 5, 5, -3, 5},
		{"surface too high", 5, 5, 5, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Estimate(tt.c, tt.k, tt.e, tt.s); !pperr.IsValidationError(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}
