package domain

import "time"

// JournalEntry is the human-readable trace of one completed day.
type JournalEntry struct {
	DayKey        string
	ExerciseID    string
	ExerciseTitle string
	Category      Category
	CheckInPrompt string
	CheckIn       string
	ShiftScore    int
	FinishedAt    time.Time
	ProofCount    int
}

func NewJournalEntry(rec DailyRecord, exercise Exercise, proofCount int) JournalEntry {
	return JournalEntry{
		DayKey:        rec.DayKey,
		ExerciseID:    exercise.ID,
		ExerciseTitle: exercise.Title,
		Category:      exercise.Category,
		CheckInPrompt: exercise.CheckInPrompt,
		CheckIn:       rec.CheckIn,
		ShiftScore:    rec.ShiftScore,
		FinishedAt:    rec.FinishedAt,
		ProofCount:    proofCount,
	}
}
