package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"genie/internal/bootstrap"
	ritualdto "genie/internal/modules/ritual/dto"
	"genie/internal/platform/config"
	"genie/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type globalFlags struct {
	dataDir string
	verbose bool
	json    bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "genie",
		Short:         "Daily ritual gate",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(flags)
		},
	}
	root.PersistentFlags().StringVar(&flags.dataDir, "data", ".", "data directory")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVar(&flags.json, "json", false, "print JSON instead of text")

	root.AddCommand(newTUICmd(flags))
	root.AddCommand(newStatusCmd(flags))
	root.AddCommand(newIntentCmd(flags, "continue", "Advance past the shock or seal the ritual", func(ctx context.Context, app *bootstrap.App) (ritualdto.RitualView, error) {
		return app.RitualCLI.Continue(ctx)
	}))
	root.AddCommand(newIntentCmd(flags, "next", "Move to the next exercise step", func(ctx context.Context, app *bootstrap.App) (ritualdto.RitualView, error) {
		return app.RitualCLI.Next(ctx)
	}))
	root.AddCommand(newIntentCmd(flags, "back", "Move to the previous exercise step", func(ctx context.Context, app *bootstrap.App) (ritualdto.RitualView, error) {
		return app.RitualCLI.Back(ctx)
	}))
	root.AddCommand(newSubmitCmd(flags))
	root.AddCommand(newProofCmd(flags))
	root.AddCommand(newCatalogCmd(flags))
	root.AddCommand(newJournalCmd(flags))
	return root
}

// withApp wires the app for one command and always closes the store.
func withApp(flags *globalFlags, run func(app *bootstrap.App) error) error {
	cfg, err := config.New(flags.dataDir)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogPath, cfg.LogLevel, flags.verbose)
	if err != nil {
		return err
	}
	app, err := bootstrap.New(cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return err
	}
	runErr := run(app)
	if err := app.Close(); err != nil && runErr == nil {
		return fmt.Errorf("close store: %w", err)
	}
	return runErr
}

func runTUI(flags *globalFlags) error {
	return withApp(flags, bootstrap.RunTUI)
}

func newTUICmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the ritual in the terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(flags)
		},
	}
}

func newStatusCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show today's ritual state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				view, err := app.RitualCLI.Observe(context.Background())
				if err != nil {
					return err
				}
				return printView(cmd.OutOrStdout(), flags.json, view)
			})
		},
	}
}

func newIntentCmd(flags *globalFlags, use, short string, call func(context.Context, *bootstrap.App) (ritualdto.RitualView, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				view, err := call(context.Background(), app)
				if err != nil {
					return err
				}
				return printView(cmd.OutOrStdout(), flags.json, view)
			})
		},
	}
}

func newSubmitCmd(flags *globalFlags) *cobra.Command {
	var checkIn string
	var shift int
	submit := &cobra.Command{
		Use:   "submit --check-in <text> [--shift N]",
		Short: "Seal today with a check-in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(checkIn) == "" {
				return fmt.Errorf("--check-in is required")
			}
			return withApp(flags, func(app *bootstrap.App) error {
				view, err := app.RitualCLI.Submit(context.Background(), checkIn, shift)
				if err != nil {
					return err
				}
				return printView(cmd.OutOrStdout(), flags.json, view)
			})
		},
	}
	submit.Flags().StringVar(&checkIn, "check-in", "", "what shifted")
	submit.Flags().IntVar(&shift, "shift", 8, "shift score (1..10)")
	return submit
}

func newProofCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "proof",
		Short: "Show the proof counter",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				out, err := app.RitualCLI.Proof(context.Background())
				if err != nil {
					return err
				}
				if flags.json {
					return writeJSON(cmd.OutOrStdout(), out)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s proofs\n", humanize.Comma(int64(out.Count)))
				return nil
			})
		},
	}
}

func newCatalogCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List every exercise",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				exercises, err := app.RitualCLI.Catalog(context.Background())
				if err != nil {
					return err
				}
				if flags.json {
					return writeJSON(cmd.OutOrStdout(), exercises)
				}
				for _, ex := range exercises {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d steps\n", ex.ID, ex.Category, ex.Title, len(ex.Steps))
				}
				return nil
			})
		},
	}
}

func newJournalCmd(flags *globalFlags) *cobra.Command {
	var limit int
	journal := &cobra.Command{
		Use:   "journal",
		Short: "List sealed days, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(flags, func(app *bootstrap.App) error {
				entries, err := app.RitualCLI.Journal(context.Background(), limit)
				if err != nil {
					return err
				}
				if flags.json {
					return writeJSON(cmd.OutOrStdout(), entries)
				}
				if len(entries) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sealed days")
					return nil
				}
				for _, e := range entries {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\tshift=%d\t%s\n", e.DayKey, e.Category, e.ExerciseTitle, e.ShiftScore, e.CheckIn)
				}
				return nil
			})
		},
	}
	journal.Flags().IntVar(&limit, "limit", 7, "entries to show (0 for all)")
	return journal
}

func printView(w io.Writer, asJSON bool, view ritualdto.RitualView) error {
	if asJSON {
		return writeJSON(w, view)
	}
	_, _ = fmt.Fprintf(w, "day: %s\nstage: %s\n", view.DayKey, view.Stage)
	switch view.Stage {
	case "shock":
		_, _ = fmt.Fprintf(w, "sigil: %s %s\n", view.Sigil.Glyph, view.Sigil.Line)
	case "ritual":
		_, _ = fmt.Fprintf(w, "exercise: %s (%s)\n", view.Exercise.Title, view.Exercise.Category)
	case "exercise":
		_, _ = fmt.Fprintf(w, "exercise: %s (%s)\n", view.Exercise.Title, view.Exercise.Category)
		if view.InCheckIn {
			_, _ = fmt.Fprintf(w, "check-in: %s\n", view.Exercise.CheckInPrompt)
		} else {
			_, _ = fmt.Fprintf(w, "step %d/%d: %s\n", view.StepIndex+1, view.StepCount, view.StepText)
		}
	case "locked":
		_, _ = fmt.Fprintf(w, "exercise: %s (%s)\ncheck-in: %s\nshift: %d/10\n", view.Exercise.Title, view.Exercise.Category, view.CheckIn, view.ShiftScore)
		_, _ = fmt.Fprintf(w, "next gate in %dh %02dm\n", view.Remaining.Hours, view.Remaining.Minutes)
	}
	_, _ = fmt.Fprintf(w, "proofs: %s\n", humanize.Comma(int64(view.ProofCount)))
	for _, warning := range view.Warnings {
		_, _ = fmt.Fprintf(w, "warning: %s\n", warning)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
