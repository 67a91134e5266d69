package dto

import "time"

type SubmitInput struct {
	CheckIn string
	// ShiftScore nil means not given and falls back to the default score.
	ShiftScore *int
}

type SigilOutput struct {
	ID    string `json:"id"`
	Glyph string `json:"glyph"`
	Line  string `json:"line"`
}

type ExerciseOutput struct {
	ID            string   `json:"id"`
	Category      string   `json:"category"`
	Title         string   `json:"title"`
	Steps         []string `json:"steps"`
	CheckInPrompt string   `json:"checkInPrompt"`
}

// RitualView is everything needed to render the current stage.
type RitualView struct {
	DayKey     string         `json:"dayKey"`
	Stage      string         `json:"stage"`
	Sigil      SigilOutput    `json:"sigil"`
	Exercise   ExerciseOutput `json:"exercise"`
	StepIndex  int            `json:"stepIndex"`
	StepCount  int            `json:"stepCount"`
	StepText   string         `json:"stepText,omitempty"`
	InCheckIn  bool           `json:"inCheckIn"`
	Done       bool           `json:"done"`
	CheckIn    string         `json:"checkIn,omitempty"`
	ShiftScore int            `json:"shiftScore,omitempty"`
	FinishedAt time.Time      `json:"finishedAt,omitzero"`
	ProofCount int            `json:"proofCount"`
	NextUnlock time.Time      `json:"nextUnlock"`
	Remaining  Remaining      `json:"remaining"`
	// Warnings lists follow-up writes that failed after the day was sealed.
	Warnings []string `json:"warnings,omitempty"`
}

type Remaining struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

type ProofOutput struct {
	Count int `json:"count"`
}

type JournalEntryOutput struct {
	DayKey        string    `json:"dayKey"`
	ExerciseTitle string    `json:"exerciseTitle"`
	Category      string    `json:"category"`
	CheckIn       string    `json:"checkIn"`
	ShiftScore    int       `json:"shiftScore"`
	FinishedAt    time.Time `json:"finishedAt"`
}
