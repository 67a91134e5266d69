package domain

import (
	"strings"
	"time"
)

type IntentKind string

const (
	IntentContinue IntentKind = "continue"
	IntentNext     IntentKind = "next"
	IntentBack     IntentKind = "back"
	IntentSubmit   IntentKind = "submit"
)

// Intent is one user action. CheckIn and ShiftScore are read only for
// IntentSubmit.
type Intent struct {
	Kind       IntentKind
	CheckIn    string
	ShiftScore int
}

// Transition computes the record that results from applying intent. It has
// no side effects; on error the returned record equals the input.
//
//	shock    --continue--> ritual
//	ritual   --continue--> exercise(0)
//	exercise --next/back--> exercise(i±1), bounded to [0, len(steps)]
//	exercise(len) --submit--> locked
func Transition(rec DailyRecord, exercise Exercise, intent Intent, now time.Time) (DailyRecord, error) {
	if rec.Done || rec.Stage == StageLocked {
		return rec, ErrLocked
	}
	next := rec
	switch intent.Kind {
	case IntentContinue:
		switch rec.Stage {
		case StageShock:
			next.Stage = StageRitual
		case StageRitual:
			next.Stage = StageExercise
			next.StepIndex = 0
		default:
			return rec, ErrIntentNotAllowed
		}
	case IntentNext:
		if rec.Stage != StageExercise {
			return rec, ErrIntentNotAllowed
		}
		if next.StepIndex < len(exercise.Steps) {
			next.StepIndex++
		}
	case IntentBack:
		if rec.Stage != StageExercise {
			return rec, ErrIntentNotAllowed
		}
		if next.StepIndex > 0 {
			next.StepIndex--
		}
	case IntentSubmit:
		if rec.Stage != StageExercise {
			return rec, ErrIntentNotAllowed
		}
		if !rec.InCheckIn(exercise) {
			return rec, ErrCheckInNotReady
		}
		if err := ValidateCheckIn(intent.CheckIn, intent.ShiftScore); err != nil {
			return rec, err
		}
		next.Stage = StageLocked
		next.Done = true
		next.CheckIn = strings.TrimSpace(intent.CheckIn)
		next.ShiftScore = intent.ShiftScore
		next.FinishedAt = now
	default:
		return rec, ErrUnknownIntent
	}
	return next, nil
}
