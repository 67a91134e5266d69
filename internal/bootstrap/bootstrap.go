package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	ritualinadapter "genie/internal/modules/ritual/adapter/in"
	ritualoutadapter "genie/internal/modules/ritual/adapter/out"
	"genie/internal/modules/ritual/domain"
	ritualout "genie/internal/modules/ritual/port/out"
	ritualservice "genie/internal/modules/ritual/service"
	ritualusecase "genie/internal/modules/ritual/usecase"
	"genie/internal/platform/clock"
	"genie/internal/platform/config"
	"genie/internal/platform/random"
	uiapp "genie/internal/ui/app"
	ritualview "genie/internal/ui/views/ritual"
)

type App struct {
	RitualCLI ritualinadapter.CLIHandler

	cfg    config.Config
	store  ritualout.KeyValueStore
	logger *zap.Logger
}

func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	store, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	catalog, err := domain.NewCatalog(domain.DefaultExercises())
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("load exercise catalog: %w", err)
	}

	rnd := random.NewMath(0)
	svc := ritualservice.NewRitualService(
		clock.SystemClock{},
		rnd,
		catalog,
		ritualservice.NewRecordStore(store),
		ritualservice.NewProofCounter(store, rnd, cfg.ProofSeedBase),
		cfg.UnlockHour,
	)
	ritualUC := ritualusecase.NewInteractor(
		svc,
		ritualoutadapter.NewVaultJournalStore(cfg.JournalDir),
		logger.Named("ritual"),
	)

	logger.Debug("app wired",
		zap.String("store", cfg.Store),
		zap.Int("unlock_hour", cfg.UnlockHour),
		zap.String("data_dir", cfg.DataDir),
	)
	return &App{
		RitualCLI: ritualinadapter.NewCLIHandler(ritualUC),
		cfg:       cfg,
		store:     store,
		logger:    logger,
	}, nil
}

func openStore(cfg config.Config) (ritualout.KeyValueStore, error) {
	switch cfg.Store {
	case config.StoreFile:
		return ritualoutadapter.NewFileKeyValueStore(cfg.FilePath), nil
	case config.StoreSQLite:
		store, err := ritualoutadapter.NewSQLiteKeyValueStore(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported store %q", cfg.Store)
	}
}

// Close releases the store and flushes the logger.
func (a *App) Close() error {
	err := a.store.Close()
	_ = a.logger.Sync()
	return err
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.RitualCLI, ritualview.Options{
		SealDuration: app.cfg.SealDuration,
		DisplayName:  app.cfg.DisplayName,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
