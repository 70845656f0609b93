package matching

import (
	"math"
	"strings"

	"campus-lostfound/internal/model"
)

// Scoring weights. They sum to 100; the cap only guards rounding artifacts.
const (
	categoryWeight         = 40
	locationExactWeight    = 20
	locationContainsWeight = 10
	nameWeight             = 25
	descriptionWeight      = 15

	maxScore = 100

	// QualificationThreshold is the minimum score required to persist a match.
	QualificationThreshold = 30
)

// Score computes the 0-100 match score between a lost item and a found item.
//
//   - category: +40 on case-sensitive exact match
//   - location: +20 on case-insensitive exact match, else +10 when either
//     location contains the other (case-insensitive); the two bonuses are
//     mutually exclusive
//   - name similarity: Jaccard × 25, rounded half away from zero
//   - description similarity: Jaccard × 15, rounded half away from zero
func Score(lost, found model.Item) int {
	score := 0

	if lost.Category == found.Category {
		score += categoryWeight
	}

	lostLoc := strings.ToLower(lost.Location)
	foundLoc := strings.ToLower(found.Location)
	switch {
	case lostLoc == foundLoc:
		score += locationExactWeight
	case strings.Contains(lostLoc, foundLoc) || strings.Contains(foundLoc, lostLoc):
		score += locationContainsWeight
	}

	score += int(math.Round(Similarity(lost.Name, found.Name) * nameWeight))
	score += int(math.Round(Similarity(lost.Description, found.Description) * descriptionWeight))

	if score > maxScore {
		score = maxScore
	}
	return score
}
