// Package grading estimates a condition grade from the four standard
// sub-scores used by professional graders: centering, corners, edges,
// and surface.
package grading

import (
	"fmt"

	pperr "github.com/cchiddy480/PokePort/internal/errors"
)

const (
	// MinScore and MaxScore bound each sub-score (1 = poor, 10 = gem mint).
	MinScore = 1
	MaxScore = 10
)

// Estimate averages the four sub-scores into an overall grade and returns
// a human-readable breakdown. Each sub-score must be an integer in
// [MinScore, MaxScore]; out-of-range values are rejected.
//
// The estimate is an unweighted mean. Professional grading weights
// categories differently, but that nuance is out of scope here.
func Estimate(centering, corners, edges, surface int) (float64, string, error) {
	for _, sub := range []struct {
		name  string
		score int
	}{
		{"centering", centering},
		{"corners", corners},
		{"edges", edges},
		{"surface", surface},
	} {
		if sub.score < MinScore || sub.score > MaxScore {
			return 0, "", pperr.InvalidField(sub.name, fmt.Sprintf("must be within [%d, %d], got %d", MinScore, MaxScore, sub.score))
		}
	}

	grade := float64(centering+corners+edges+surface) / 4.0
	explanation := fmt.Sprintf(
		"Grading breakdown: Centering=%d, Corners=%d, Edges=%d, Surface=%d.\n"+
			"Estimated grade is the average of these scores: %.2f (out of 10).",
		centering, corners, edges, surface, grade)

	return grade, explanation, nil
}
