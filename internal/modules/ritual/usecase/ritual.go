package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"genie/internal/modules/ritual/domain"
	ritualdto "genie/internal/modules/ritual/dto"
	ritualin "genie/internal/modules/ritual/port/in"
	ritualout "genie/internal/modules/ritual/port/out"
	"genie/internal/modules/ritual/service"
	"genie/internal/platform/clock"
)

type Interactor struct {
	svc     *service.RitualService
	journal ritualout.JournalStore
	logger  *zap.Logger
}

func NewInteractor(svc *service.RitualService, journal ritualout.JournalStore, logger *zap.Logger) ritualin.Usecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interactor{svc: svc, journal: journal, logger: logger}
}

func (i *Interactor) Observe(ctx context.Context) (ritualdto.RitualView, error) {
	snap, err := i.svc.Observe(ctx)
	if err != nil {
		i.logger.Error("observe ritual day", zap.Error(err))
		return ritualdto.RitualView{}, err
	}
	if snap.CounterErr != nil {
		i.logger.Warn("proof counter unavailable", zap.String("day", snap.Record.DayKey), zap.Error(snap.CounterErr))
	}
	return toView(snap), nil
}

func (i *Interactor) Continue(ctx context.Context) (ritualdto.RitualView, error) {
	return i.apply(ctx, domain.Intent{Kind: domain.IntentContinue})
}

func (i *Interactor) Next(ctx context.Context) (ritualdto.RitualView, error) {
	return i.apply(ctx, domain.Intent{Kind: domain.IntentNext})
}

func (i *Interactor) Back(ctx context.Context) (ritualdto.RitualView, error) {
	return i.apply(ctx, domain.Intent{Kind: domain.IntentBack})
}

// Submit validates the check-in before anything is read or written, so a
// rejected submission never touches storage.
func (i *Interactor) Submit(ctx context.Context, input ritualdto.SubmitInput) (ritualdto.RitualView, error) {
	score := domain.DefaultShiftScore
	if input.ShiftScore != nil {
		score = *input.ShiftScore
	}
	if err := domain.ValidateCheckIn(input.CheckIn, score); err != nil {
		return ritualdto.RitualView{}, err
	}
	return i.apply(ctx, domain.Intent{Kind: domain.IntentSubmit, CheckIn: input.CheckIn, ShiftScore: score})
}

func (i *Interactor) Proof(ctx context.Context) (ritualdto.ProofOutput, error) {
	snap, err := i.svc.Observe(ctx)
	if err != nil {
		return ritualdto.ProofOutput{}, err
	}
	if snap.CounterErr != nil {
		return ritualdto.ProofOutput{}, snap.CounterErr
	}
	return ritualdto.ProofOutput{Count: snap.ProofCount}, nil
}

func (i *Interactor) Catalog(_ context.Context) ([]ritualdto.ExerciseOutput, error) {
	all := i.svc.Catalog().All()
	out := make([]ritualdto.ExerciseOutput, 0, len(all))
	for _, ex := range all {
		out = append(out, toExerciseOutput(ex))
	}
	return out, nil
}

func (i *Interactor) Journal(ctx context.Context, limit int) ([]ritualdto.JournalEntryOutput, error) {
	if i.journal == nil {
		return []ritualdto.JournalEntryOutput{}, nil
	}
	entries, err := i.journal.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]ritualdto.JournalEntryOutput, 0, len(entries))
	for _, e := range entries {
		out = append(out, ritualdto.JournalEntryOutput{
			DayKey:        e.DayKey,
			ExerciseTitle: e.ExerciseTitle,
			Category:      string(e.Category),
			CheckIn:       e.CheckIn,
			ShiftScore:    e.ShiftScore,
			FinishedAt:    e.FinishedAt,
		})
	}
	return out, nil
}

func (i *Interactor) apply(ctx context.Context, intent domain.Intent) (ritualdto.RitualView, error) {
	snap, completion, err := i.svc.Apply(ctx, intent)
	if err != nil {
		fields := []zap.Field{zap.String("intent", string(intent.Kind)), zap.Error(err)}
		if snap.Record.DayKey != "" {
			fields = append(fields, zap.String("day", snap.Record.DayKey), zap.String("stage", string(snap.Record.Stage)))
		}
		if errors.Is(err, domain.ErrLocked) || errors.Is(err, domain.ErrIntentNotAllowed) || errors.Is(err, domain.ErrCheckInNotReady) {
			i.logger.Debug("intent rejected", fields...)
		} else {
			i.logger.Warn("intent failed", fields...)
		}
		return toView(snap), err
	}
	i.logger.Info("ritual advanced",
		zap.String("day", snap.Record.DayKey),
		zap.String("intent", string(intent.Kind)),
		zap.String("stage", string(snap.Record.Stage)),
		zap.Int("step", snap.Record.StepIndex),
	)

	view := toView(snap)
	if !completion.Sealed {
		return view, nil
	}
	i.logger.Info("ritual sealed",
		zap.String("day", snap.Record.DayKey),
		zap.String("exercise", snap.Exercise.ID),
		zap.String("category", string(snap.Exercise.Category)),
		zap.Int("shift_score", snap.Record.ShiftScore),
		zap.Int("proof_count", snap.ProofCount),
	)
	for _, w := range completion.Warnings {
		i.logger.Warn("post-seal write failed", zap.String("day", snap.Record.DayKey), zap.Error(w))
		view.Warnings = append(view.Warnings, w.Error())
	}
	if i.journal != nil {
		path, err := i.journal.Save(ctx, domain.NewJournalEntry(snap.Record, snap.Exercise, snap.ProofCount))
		if err != nil {
			i.logger.Warn("journal note not written", zap.String("day", snap.Record.DayKey), zap.Error(err))
			view.Warnings = append(view.Warnings, err.Error())
		} else {
			i.logger.Debug("journal note written", zap.String("path", path))
		}
	}
	return view, nil
}

func toView(snap service.Snapshot) ritualdto.RitualView {
	rec := snap.Record
	view := ritualdto.RitualView{
		DayKey: rec.DayKey,
		Stage:  string(rec.Stage),
		Sigil: ritualdto.SigilOutput{
			ID:    snap.Sigil.ID,
			Glyph: snap.Sigil.Glyph,
			Line:  snap.Sigil.Line,
		},
		Exercise:   toExerciseOutput(snap.Exercise),
		StepIndex:  rec.StepIndex,
		StepCount:  len(snap.Exercise.Steps),
		InCheckIn:  rec.InCheckIn(snap.Exercise),
		Done:       rec.Done,
		CheckIn:    rec.CheckIn,
		ShiftScore: rec.ShiftScore,
		FinishedAt: rec.FinishedAt,
		ProofCount: snap.ProofCount,
		NextUnlock: snap.NextUnlock,
	}
	if rec.Stage == domain.StageExercise && rec.StepIndex < len(snap.Exercise.Steps) {
		view.StepText = snap.Exercise.Steps[rec.StepIndex]
	}
	if snap.CounterErr != nil {
		view.Warnings = append(view.Warnings, snap.CounterErr.Error())
	}
	if !snap.NextUnlock.IsZero() {
		left := clock.Until(snap.Now, snap.NextUnlock)
		view.Remaining = ritualdto.Remaining{Hours: left.Hours, Minutes: left.Minutes}
	}
	return view
}

func toExerciseOutput(ex domain.Exercise) ritualdto.ExerciseOutput {
	return ritualdto.ExerciseOutput{
		ID:            ex.ID,
		Category:      string(ex.Category),
		Title:         ex.Title,
		Steps:         append([]string(nil), ex.Steps...),
		CheckInPrompt: ex.CheckInPrompt,
	}
}
