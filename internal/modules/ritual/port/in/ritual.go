package in

import (
	"context"

	"genie/internal/modules/ritual/dto"
)

type Usecase interface {
	Observe(ctx context.Context) (dto.RitualView, error)
	Continue(ctx context.Context) (dto.RitualView, error)
	Next(ctx context.Context) (dto.RitualView, error)
	Back(ctx context.Context) (dto.RitualView, error)
	Submit(ctx context.Context, input dto.SubmitInput) (dto.RitualView, error)
	Proof(ctx context.Context) (dto.ProofOutput, error)
	Catalog(ctx context.Context) ([]dto.ExerciseOutput, error)
	Journal(ctx context.Context, limit int) ([]dto.JournalEntryOutput, error)
}
