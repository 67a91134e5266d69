package service

import (
	"context"
	"fmt"
	"time"

	"genie/internal/modules/ritual/domain"
	"genie/internal/platform/clock"
	"genie/internal/platform/random"
)

// Snapshot is the committed state of the current ritual day.
type Snapshot struct {
	Record     domain.DailyRecord
	Exercise   domain.Exercise
	Sigil      domain.Sigil
	ProofCount int
	// CounterErr is set when the proof counter could not be read or seeded.
	// ProofCount is then zero; the record is unaffected.
	CounterErr error
	Now        time.Time
	NextUnlock time.Time
}

// Completion describes the follow-up writes of a sealing submit. The day
// is sealed even when Warnings is non-empty.
type Completion struct {
	Sealed   bool
	Warnings []error
}

// RitualService drives the stage machine. Every transition is persisted
// before it is returned, so a snapshot never shows uncommitted progress.
type RitualService struct {
	clock      clock.Clock
	rnd        random.Source
	catalog    domain.Catalog
	records    *RecordStore
	counter    *ProofCounter
	unlockHour int
}

func NewRitualService(clk clock.Clock, rnd random.Source, catalog domain.Catalog, records *RecordStore, counter *ProofCounter, unlockHour int) *RitualService {
	return &RitualService{
		clock:      clk,
		rnd:        rnd,
		catalog:    catalog,
		records:    records,
		counter:    counter,
		unlockHour: unlockHour,
	}
}

func (s *RitualService) Catalog() domain.Catalog {
	return s.catalog
}

// Observe loads today's record, creating and persisting a fresh shock-stage
// record when none exists or the stored one is unusable.
func (s *RitualService) Observe(ctx context.Context) (Snapshot, error) {
	now := s.clock.Now()
	dayKey := clock.GateDayKey(now, s.unlockHour)

	rec, found, err := s.records.LoadRecord(ctx, dayKey)
	if err != nil {
		return Snapshot{}, err
	}
	exercise, known := s.catalog.ByID(rec.ExerciseID)
	switch {
	case found && !known && rec.Done:
		// A sealed day stays sealed even if its exercise left the catalog.
		exercise = domain.Exercise{ID: rec.ExerciseID, Title: rec.ExerciseID}
	case !found || !known || !rec.FitsExercise(exercise):
		rec, exercise, err = s.startDay(ctx, dayKey)
		if err != nil {
			return Snapshot{}, err
		}
	}
	count, counterErr := s.counter.Initialize(ctx)
	sigil, ok := domain.SigilByID(rec.SigilID)
	if !ok {
		sigil = domain.Sigils()[0]
	}
	return Snapshot{
		Record:     rec,
		Exercise:   exercise,
		Sigil:      sigil,
		ProofCount: count,
		CounterErr: counterErr,
		Now:        now,
		NextUnlock: clock.NextUnlock(now, s.unlockHour),
	}, nil
}

// Apply runs one intent against today's record. On any error the returned
// snapshot is the last committed one.
func (s *RitualService) Apply(ctx context.Context, intent domain.Intent) (Snapshot, Completion, error) {
	snap, err := s.Observe(ctx)
	if err != nil {
		return Snapshot{}, Completion{}, err
	}
	next, err := domain.Transition(snap.Record, snap.Exercise, intent, snap.Now)
	if err != nil {
		return snap, Completion{}, err
	}
	if err := s.records.SaveRecord(ctx, next); err != nil {
		return snap, Completion{}, err
	}
	snap.Record = next
	if !next.Done {
		return snap, Completion{}, nil
	}

	completion := Completion{Sealed: true}
	last := domain.LastOutcome{Category: snap.Exercise.Category, ShiftScore: next.ShiftScore}
	if err := s.records.SaveLastOutcome(ctx, last); err != nil {
		completion.Warnings = append(completion.Warnings, err)
	}
	// The bump retries the counter read, so its error supersedes CounterErr.
	snap.CounterErr = nil
	count, err := s.counter.Bump(ctx, 1)
	if err != nil {
		completion.Warnings = append(completion.Warnings, err)
	} else {
		snap.ProofCount = count
	}
	return snap, completion, nil
}

func (s *RitualService) startDay(ctx context.Context, dayKey string) (domain.DailyRecord, domain.Exercise, error) {
	last, err := s.records.LoadLastOutcome(ctx)
	if err != nil {
		return domain.DailyRecord{}, domain.Exercise{}, err
	}
	exercise, err := domain.SelectToday(s.catalog, last, s.rnd)
	if err != nil {
		return domain.DailyRecord{}, domain.Exercise{}, fmt.Errorf("select exercise: %w", err)
	}
	rec := domain.NewDailyRecord(dayKey, exercise, domain.PickSigil(s.rnd))
	if err := s.records.SaveRecord(ctx, rec); err != nil {
		return domain.DailyRecord{}, domain.Exercise{}, err
	}
	return rec, exercise, nil
}
