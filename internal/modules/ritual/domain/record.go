package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "genie/internal/platform/errors"
)

const (
	MinShiftScore     = 1
	MaxShiftScore     = 10
	DefaultShiftScore = 8
)

var (
	ErrLocked           = fmt.Errorf("%w: today's ritual is already sealed", apperrors.ErrInvalidInput)
	ErrInvalidCheckIn   = fmt.Errorf("%w: check-in needs text and a shift score between %d and %d", apperrors.ErrInvalidInput, MinShiftScore, MaxShiftScore)
	ErrCheckInNotReady  = fmt.Errorf("%w: finish every step before checking in", apperrors.ErrInvalidInput)
	ErrIntentNotAllowed = fmt.Errorf("%w: intent not allowed at this stage", apperrors.ErrInvalidInput)
	ErrUnknownIntent    = fmt.Errorf("%w: unknown intent", apperrors.ErrInvalidInput)
	ErrCorruptRecord    = errors.New("corrupt daily record")
)

type Stage string

const (
	StageShock    Stage = "shock"
	StageRitual   Stage = "ritual"
	StageExercise Stage = "exercise"
	StageLocked   Stage = "locked"
)

func (s Stage) Validate() error {
	switch s {
	case StageShock, StageRitual, StageExercise, StageLocked:
		return nil
	default:
		return fmt.Errorf("unknown stage %q", string(s))
	}
}

// DailyRecord is the persisted progress for one ritual day. ExerciseID and
// SigilID are decided once when the record is created and never re-rolled.
// StepIndex is only meaningful in StageExercise; len(steps) means the
// check-in form is showing.
type DailyRecord struct {
	DayKey     string    `json:"dayKey"`
	ExerciseID string    `json:"exerciseId"`
	SigilID    string    `json:"sigilId"`
	Stage      Stage     `json:"stage"`
	StepIndex  int       `json:"stepIndex"`
	Done       bool      `json:"done"`
	CheckIn    string    `json:"checkIn,omitempty"`
	ShiftScore int       `json:"shiftScore,omitempty"`
	FinishedAt time.Time `json:"finishedAt,omitzero"`
}

// NewDailyRecord starts a day at the shock stage.
func NewDailyRecord(dayKey string, exercise Exercise, sigil Sigil) DailyRecord {
	return DailyRecord{
		DayKey:     dayKey,
		ExerciseID: exercise.ID,
		SigilID:    sigil.ID,
		Stage:      StageShock,
	}
}

// Validate checks a record loaded from storage. Any failure means the
// record is treated as absent.
func (r DailyRecord) Validate() error {
	if strings.TrimSpace(r.DayKey) == "" {
		return fmt.Errorf("%w: day key is empty", ErrCorruptRecord)
	}
	if strings.TrimSpace(r.ExerciseID) == "" {
		return fmt.Errorf("%w: exercise id is empty", ErrCorruptRecord)
	}
	if err := r.Stage.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	if r.StepIndex < 0 {
		return fmt.Errorf("%w: negative step index", ErrCorruptRecord)
	}
	if r.Done != (r.Stage == StageLocked) {
		return fmt.Errorf("%w: done flag disagrees with stage %s", ErrCorruptRecord, r.Stage)
	}
	if r.Done {
		if err := ValidateCheckIn(r.CheckIn, r.ShiftScore); err != nil {
			return fmt.Errorf("%w: %v", ErrCorruptRecord, err)
		}
		if r.FinishedAt.IsZero() {
			return fmt.Errorf("%w: finished at is missing", ErrCorruptRecord)
		}
	}
	return nil
}

// FitsExercise reports whether an open record's step position is possible
// for exercise. Sealed records always fit.
func (r DailyRecord) FitsExercise(exercise Exercise) bool {
	return r.Done || r.StepIndex <= len(exercise.Steps)
}

// InCheckIn reports whether every step has been walked.
func (r DailyRecord) InCheckIn(exercise Exercise) bool {
	return r.Stage == StageExercise && r.StepIndex >= len(exercise.Steps)
}

func ValidateCheckIn(checkIn string, shiftScore int) error {
	if strings.TrimSpace(checkIn) == "" {
		return ErrInvalidCheckIn
	}
	if shiftScore < MinShiftScore || shiftScore > MaxShiftScore {
		return ErrInvalidCheckIn
	}
	return nil
}
