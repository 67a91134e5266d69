package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"genie/internal/modules/ritual/domain"
	apperrors "genie/internal/platform/errors"
)

var finished = time.Date(2026, 3, 14, 21, 30, 0, 0, time.UTC)

func threeSteps() domain.Exercise {
	return domain.Exercise{
		ID:            "ex",
		Category:      domain.CategoryPhenomenology,
		Title:         "Three",
		Steps:         []string{"one", "two", "three"},
		CheckInPrompt: "how?",
	}
}

func apply(t *testing.T, rec domain.DailyRecord, ex domain.Exercise, intents ...domain.Intent) domain.DailyRecord {
	t.Helper()
	for _, in := range intents {
		var err error
		rec, err = domain.Transition(rec, ex, in, finished)
		if err != nil {
			t.Fatalf("apply %s at %s: %v", in.Kind, rec.Stage, err)
		}
	}
	return rec
}

func TestTransitionWalksEveryStage(t *testing.T) {
	t.Parallel()
	ex := threeSteps()
	rec := domain.NewDailyRecord("2026-03-14", ex, domain.Sigils()[0])
	cont := domain.Intent{Kind: domain.IntentContinue}
	next := domain.Intent{Kind: domain.IntentNext}

	rec = apply(t, rec, ex, cont)
	if rec.Stage != domain.StageRitual {
		t.Fatalf("expected ritual, got %s", rec.Stage)
	}
	rec = apply(t, rec, ex, cont)
	if rec.Stage != domain.StageExercise || rec.StepIndex != 0 {
		t.Fatalf("expected exercise step 0, got %s/%d", rec.Stage, rec.StepIndex)
	}
	rec = apply(t, rec, ex, next, next, next)
	if !rec.InCheckIn(ex) {
		t.Fatalf("expected check-in after %d steps, got index %d", len(ex.Steps), rec.StepIndex)
	}
	rec = apply(t, rec, ex, domain.Intent{Kind: domain.IntentSubmit, CheckIn: " felt lighter ", ShiftScore: 9})

	want := domain.DailyRecord{
		DayKey:     "2026-03-14",
		ExerciseID: "ex",
		SigilID:    domain.Sigils()[0].ID,
		Stage:      domain.StageLocked,
		StepIndex:  3,
		Done:       true,
		CheckIn:    "felt lighter",
		ShiftScore: 9,
		FinishedAt: finished,
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Fatalf("locked record mismatch (-want +got):\n%s", diff)
	}
	if err := rec.Validate(); err != nil {
		t.Fatalf("locked record must validate: %v", err)
	}
}

func TestStepCursorIsBounded(t *testing.T) {
	t.Parallel()
	ex := threeSteps()
	rec := domain.DailyRecord{DayKey: "d", ExerciseID: "ex", Stage: domain.StageExercise}
	back := domain.Intent{Kind: domain.IntentBack}
	next := domain.Intent{Kind: domain.IntentNext}

	rec = apply(t, rec, ex, back, back)
	if rec.StepIndex != 0 {
		t.Fatalf("back must stop at 0, got %d", rec.StepIndex)
	}
	rec = apply(t, rec, ex, next, next, next, next, next)
	if rec.StepIndex != len(ex.Steps) {
		t.Fatalf("next must stop at %d, got %d", len(ex.Steps), rec.StepIndex)
	}
	rec = apply(t, rec, ex, back)
	if rec.StepIndex != len(ex.Steps)-1 || rec.InCheckIn(ex) {
		t.Fatalf("back from check-in should return to last step, got %d", rec.StepIndex)
	}
}

func TestLockedRejectsEveryIntent(t *testing.T) {
	t.Parallel()
	ex := threeSteps()
	locked := domain.DailyRecord{
		DayKey: "d", ExerciseID: "ex", Stage: domain.StageLocked, StepIndex: 3,
		Done: true, CheckIn: "kept", ShiftScore: 7, FinishedAt: finished,
	}
	intents := []domain.Intent{
		{Kind: domain.IntentContinue},
		{Kind: domain.IntentNext},
		{Kind: domain.IntentBack},
		{Kind: domain.IntentSubmit, CheckIn: "overwrite", ShiftScore: 2},
		{Kind: "dance"},
	}
	for _, in := range intents {
		got, err := domain.Transition(locked, ex, in, finished.Add(time.Hour))
		if !errors.Is(err, domain.ErrLocked) {
			t.Fatalf("%s: expected ErrLocked, got %v", in.Kind, err)
		}
		if diff := cmp.Diff(locked, got); diff != "" {
			t.Fatalf("%s: locked record changed (-want +got):\n%s", in.Kind, diff)
		}
	}
}

func TestSubmitValidation(t *testing.T) {
	t.Parallel()
	ex := threeSteps()
	atForm := domain.DailyRecord{DayKey: "d", ExerciseID: "ex", Stage: domain.StageExercise, StepIndex: 3}
	midway := domain.DailyRecord{DayKey: "d", ExerciseID: "ex", Stage: domain.StageExercise, StepIndex: 1}

	cases := []struct {
		name string
		rec  domain.DailyRecord
		in   domain.Intent
		want error
	}{
		{"empty text", atForm, domain.Intent{Kind: domain.IntentSubmit, CheckIn: "", ShiftScore: 9}, domain.ErrInvalidCheckIn},
		{"blank text", atForm, domain.Intent{Kind: domain.IntentSubmit, CheckIn: "   ", ShiftScore: 9}, domain.ErrInvalidCheckIn},
		{"score low", atForm, domain.Intent{Kind: domain.IntentSubmit, CheckIn: "ok", ShiftScore: 0}, domain.ErrInvalidCheckIn},
		{"score high", atForm, domain.Intent{Kind: domain.IntentSubmit, CheckIn: "ok", ShiftScore: 11}, domain.ErrInvalidCheckIn},
		{"before form", midway, domain.Intent{Kind: domain.IntentSubmit, CheckIn: "ok", ShiftScore: 9}, domain.ErrCheckInNotReady},
	}
	for _, tc := range cases {
		got, err := domain.Transition(tc.rec, ex, tc.in, finished)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
		if !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("%s: expected invalid input classification, got %v", tc.name, err)
		}
		if diff := cmp.Diff(tc.rec, got); diff != "" {
			t.Fatalf("%s: record changed (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestIntentsOutOfStage(t *testing.T) {
	t.Parallel()
	ex := threeSteps()
	shock := domain.DailyRecord{DayKey: "d", ExerciseID: "ex", Stage: domain.StageShock}
	for _, kind := range []domain.IntentKind{domain.IntentNext, domain.IntentBack, domain.IntentSubmit} {
		if _, err := domain.Transition(shock, ex, domain.Intent{Kind: kind, CheckIn: "x", ShiftScore: 5}, finished); !errors.Is(err, domain.ErrIntentNotAllowed) {
			t.Fatalf("%s from shock: expected ErrIntentNotAllowed, got %v", kind, err)
		}
	}
	exercising := domain.DailyRecord{DayKey: "d", ExerciseID: "ex", Stage: domain.StageExercise}
	if _, err := domain.Transition(exercising, ex, domain.Intent{Kind: domain.IntentContinue}, finished); !errors.Is(err, domain.ErrIntentNotAllowed) {
		t.Fatalf("continue from exercise: expected ErrIntentNotAllowed, got %v", err)
	}
	if _, err := domain.Transition(shock, ex, domain.Intent{Kind: "dance"}, finished); !errors.Is(err, domain.ErrUnknownIntent) {
		t.Fatalf("expected ErrUnknownIntent, got %v", err)
	}
}

func TestRecordValidateRejectsInconsistentState(t *testing.T) {
	t.Parallel()
	bad := []domain.DailyRecord{
		{ExerciseID: "ex", Stage: domain.StageShock},
		{DayKey: "d", Stage: domain.StageShock},
		{DayKey: "d", ExerciseID: "ex", Stage: "limbo"},
		{DayKey: "d", ExerciseID: "ex", Stage: domain.StageExercise, StepIndex: -1},
		{DayKey: "d", ExerciseID: "ex", Stage: domain.StageShock, Done: true},
		{DayKey: "d", ExerciseID: "ex", Stage: domain.StageLocked},
		{DayKey: "d", ExerciseID: "ex", Stage: domain.StageLocked, Done: true, CheckIn: "x", ShiftScore: 12, FinishedAt: finished},
		{DayKey: "d", ExerciseID: "ex", Stage: domain.StageLocked, Done: true, CheckIn: "x", ShiftScore: 5},
	}
	for i, rec := range bad {
		if err := rec.Validate(); !errors.Is(err, domain.ErrCorruptRecord) {
			t.Fatalf("case %d: expected ErrCorruptRecord, got %v", i, err)
		}
	}
}
