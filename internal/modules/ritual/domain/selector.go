package domain

import (
	"fmt"

	"genie/internal/platform/random"
)

// LowShiftThreshold is the score below which the next day leans toward
// regulating content instead of following the rotation.
const LowShiftThreshold = 7

var regulatingCategories = []Category{CategoryPsychology, CategoryNeuropsychology}

// LastOutcome is the single most recent completion, the only input the
// selector has about yesterday.
type LastOutcome struct {
	Category   Category `json:"category"`
	ShiftScore int      `json:"shiftScore"`
}

// NextCategory advances the rotation past last. A missing or unknown last
// category counts as index -1, so the first ever day is Ontology.
func NextCategory(last *LastOutcome) Category {
	idx := -1
	if last != nil {
		idx = rotationIndex(last.Category)
	}
	return Rotation[(idx+1)%len(Rotation)]
}

// SelectCategory applies the low score override, then the rotation.
func SelectCategory(last *LastOutcome, rnd random.Source) Category {
	if last != nil && last.ShiftScore < LowShiftThreshold {
		return regulatingCategories[rnd.IntN(len(regulatingCategories))]
	}
	return NextCategory(last)
}

// SelectToday picks today's exercise: category first, then uniformly within
// it.
func SelectToday(catalog Catalog, last *LastOutcome, rnd random.Source) (Exercise, error) {
	cat := SelectCategory(last, rnd)
	candidates := catalog.InCategory(cat)
	if len(candidates) == 0 {
		return Exercise{}, fmt.Errorf("category %s has no exercises", cat)
	}
	return candidates[rnd.IntN(len(candidates))], nil
}

// PickSigil chooses the shock sigil for a new day.
func PickSigil(rnd random.Source) Sigil {
	return sigils[rnd.IntN(len(sigils))]
}
