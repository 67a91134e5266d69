package out

import (
	"context"

	"genie/internal/modules/ritual/domain"
)

// KeyValueStore is the durable string store every piece of ritual state
// lives in. Get reports found=false for a missing key.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

type JournalStore interface {
	Save(ctx context.Context, entry domain.JournalEntry) (string, error)
	List(ctx context.Context, limit int) ([]domain.JournalEntry, error)
}
