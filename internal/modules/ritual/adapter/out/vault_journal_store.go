package out

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"genie/internal/modules/ritual/domain"
	ritualout "genie/internal/modules/ritual/port/out"
	"genie/internal/platform/markdown"
	"genie/internal/platform/slug"
)

const journalSchemaVersion = 1

type journalMeta struct {
	SchemaVersion int    `yaml:"schema_version"`
	Day           string `yaml:"day"`
	ExerciseID    string `yaml:"exercise_id"`
	Exercise      string `yaml:"exercise"`
	Category      string `yaml:"category"`
	ShiftScore    int    `yaml:"shift_score"`
	FinishedAt    string `yaml:"finished_at"`
	ProofCount    int    `yaml:"proof_count"`
}

// VaultJournalStore writes one markdown note per sealed day under
// journal/YYYY/MM/.
type VaultJournalStore struct {
	dir string
}

func NewVaultJournalStore(dir string) ritualout.JournalStore {
	return &VaultJournalStore{dir: dir}
}

func (s *VaultJournalStore) Save(_ context.Context, entry domain.JournalEntry) (string, error) {
	day, err := time.Parse("2006-01-02", entry.DayKey)
	if err != nil {
		return "", fmt.Errorf("parse journal day %q: %w", entry.DayKey, err)
	}
	dir := filepath.Join(s.dir, day.Format("2006"), day.Format("01"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create journal dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-%s.md", day.Format("02"), slug.Make(entry.ExerciseTitle)))

	meta := journalMeta{
		SchemaVersion: journalSchemaVersion,
		Day:           entry.DayKey,
		ExerciseID:    entry.ExerciseID,
		Exercise:      entry.ExerciseTitle,
		Category:      string(entry.Category),
		ShiftScore:    entry.ShiftScore,
		FinishedAt:    entry.FinishedAt.Format(time.RFC3339),
		ProofCount:    entry.ProofCount,
	}
	body := fmt.Sprintf("# %s: %s\n\n- Category: %s\n- Shift: %d/10\n\n## Prompt\n\n%s\n\n## Check-in\n\n%s\n",
		entry.DayKey, entry.ExerciseTitle, entry.Category.Label(), entry.ShiftScore, entry.CheckInPrompt, entry.CheckIn)
	rendered, err := markdown.Render(meta, body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write journal note: %w", err)
	}
	return path, nil
}

// List returns the newest entries first. Notes that fail to parse are
// skipped. A non-positive limit returns everything.
func (s *VaultJournalStore) List(_ context.Context, limit int) ([]domain.JournalEntry, error) {
	out := []domain.JournalEntry{}
	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == s.dir {
				return fs.SkipDir
			}
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read journal note: %w", err)
		}
		meta := journalMeta{}
		body, err := markdown.Parse(string(raw), &meta)
		if err != nil || meta.Day == "" {
			return nil
		}
		finished, _ := time.Parse(time.RFC3339, meta.FinishedAt)
		out = append(out, domain.JournalEntry{
			DayKey:        meta.Day,
			ExerciseID:    meta.ExerciseID,
			ExerciseTitle: meta.Exercise,
			Category:      domain.Category(meta.Category),
			CheckIn:       checkInSection(body),
			ShiftScore:    meta.ShiftScore,
			FinishedAt:    finished,
			ProofCount:    meta.ProofCount,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk journal: %w", err)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DayKey > out[j].DayKey })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func checkInSection(body string) string {
	const heading = "## Check-in\n"
	idx := strings.Index(body, heading)
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(body[idx+len(heading):])
}
