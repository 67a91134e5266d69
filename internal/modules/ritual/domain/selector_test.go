package domain_test

import (
	"testing"

	"genie/internal/modules/ritual/domain"
)

// scriptedRandom returns queued picks, clamped to the candidate count.
type scriptedRandom struct {
	picks []int
	calls int
}

func (s *scriptedRandom) IntN(n int) int {
	if len(s.picks) == 0 {
		return 0
	}
	v := s.picks[s.calls%len(s.picks)]
	s.calls++
	if v >= n {
		return n - 1
	}
	return v
}

func defaultCatalog(t *testing.T) domain.Catalog {
	t.Helper()
	catalog, err := domain.NewCatalog(domain.DefaultExercises())
	if err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}
	return catalog
}

func TestLowShiftScoreBiasesTowardRegulatingCategories(t *testing.T) {
	t.Parallel()
	catalog := defaultCatalog(t)
	for _, last := range domain.Rotation {
		for score := domain.MinShiftScore; score < domain.LowShiftThreshold; score++ {
			for pick := 0; pick < 4; pick++ {
				rnd := &scriptedRandom{picks: []int{pick, pick}}
				ex, err := domain.SelectToday(catalog, &domain.LastOutcome{Category: last, ShiftScore: score}, rnd)
				if err != nil {
					t.Fatalf("select: %v", err)
				}
				if ex.Category != domain.CategoryPsychology && ex.Category != domain.CategoryNeuropsychology {
					t.Fatalf("last=%s score=%d: expected regulating category, got %s", last, score, ex.Category)
				}
			}
		}
	}
}

func TestHighOrMissingScoreFollowsRotation(t *testing.T) {
	t.Parallel()
	catalog := defaultCatalog(t)
	want := map[domain.Category]domain.Category{
		domain.CategoryOntology:        domain.CategoryPsychology,
		domain.CategoryPsychology:      domain.CategoryNeuropsychology,
		domain.CategoryNeuropsychology: domain.CategoryPhenomenology,
		domain.CategoryPhenomenology:   domain.CategoryCosmology,
		domain.CategoryCosmology:       domain.CategoryOntology,
	}
	for last, next := range want {
		for score := domain.LowShiftThreshold; score <= domain.MaxShiftScore; score++ {
			ex, err := domain.SelectToday(catalog, &domain.LastOutcome{Category: last, ShiftScore: score}, &scriptedRandom{picks: []int{1}})
			if err != nil {
				t.Fatalf("select: %v", err)
			}
			if ex.Category != next {
				t.Fatalf("last=%s score=%d: expected %s, got %s", last, score, next, ex.Category)
			}
		}
	}
}

func TestFirstEverDayStartsAtOntology(t *testing.T) {
	t.Parallel()
	if got := domain.NextCategory(nil); got != domain.CategoryOntology {
		t.Fatalf("expected ontology for missing history, got %s", got)
	}
	if got := domain.NextCategory(&domain.LastOutcome{Category: "astrology", ShiftScore: 9}); got != domain.CategoryOntology {
		t.Fatalf("expected ontology for unknown category, got %s", got)
	}
	ex, err := domain.SelectToday(defaultCatalog(t), nil, &scriptedRandom{})
	if err != nil || ex.Category != domain.CategoryOntology {
		t.Fatalf("expected ontology exercise, got %+v err=%v", ex, err)
	}
}

func TestSelectTodayPicksWithinCategoryUsingSource(t *testing.T) {
	t.Parallel()
	catalog := defaultCatalog(t)
	inCat := catalog.InCategory(domain.CategoryCosmology)
	for i := range inCat {
		ex, err := domain.SelectToday(catalog, &domain.LastOutcome{Category: domain.CategoryPhenomenology, ShiftScore: 9}, &scriptedRandom{picks: []int{i}})
		if err != nil {
			t.Fatalf("select: %v", err)
		}
		if ex.ID != inCat[i].ID {
			t.Fatalf("pick %d: expected %s, got %s", i, inCat[i].ID, ex.ID)
		}
	}
}

func TestPickSigilCoversSet(t *testing.T) {
	t.Parallel()
	seen := map[string]bool{}
	for i := range domain.Sigils() {
		seen[domain.PickSigil(&scriptedRandom{picks: []int{i}}).ID] = true
	}
	if len(seen) != len(domain.Sigils()) {
		t.Fatalf("expected every sigil reachable, got %v", seen)
	}
}
