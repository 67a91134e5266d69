package in

import (
	"context"

	ritualdto "genie/internal/modules/ritual/dto"
	ritualin "genie/internal/modules/ritual/port/in"
)

type CLIHandler struct {
	usecase ritualin.Usecase
}

func NewCLIHandler(usecase ritualin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Observe(ctx context.Context) (ritualdto.RitualView, error) {
	return h.usecase.Observe(ctx)
}

func (h CLIHandler) Continue(ctx context.Context) (ritualdto.RitualView, error) {
	return h.usecase.Continue(ctx)
}

func (h CLIHandler) Next(ctx context.Context) (ritualdto.RitualView, error) {
	return h.usecase.Next(ctx)
}

func (h CLIHandler) Back(ctx context.Context) (ritualdto.RitualView, error) {
	return h.usecase.Back(ctx)
}

func (h CLIHandler) Submit(ctx context.Context, checkIn string, shiftScore int) (ritualdto.RitualView, error) {
	return h.usecase.Submit(ctx, ritualdto.SubmitInput{CheckIn: checkIn, ShiftScore: &shiftScore})
}

func (h CLIHandler) Proof(ctx context.Context) (ritualdto.ProofOutput, error) {
	return h.usecase.Proof(ctx)
}

func (h CLIHandler) Catalog(ctx context.Context) ([]ritualdto.ExerciseOutput, error) {
	return h.usecase.Catalog(ctx)
}

func (h CLIHandler) Journal(ctx context.Context, limit int) ([]ritualdto.JournalEntryOutput, error) {
	return h.usecase.Journal(ctx, limit)
}
