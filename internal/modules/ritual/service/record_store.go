package service

import (
	"context"
	"encoding/json"
	"fmt"

	"genie/internal/modules/ritual/domain"
	ritualout "genie/internal/modules/ritual/port/out"
	apperrors "genie/internal/platform/errors"
)

const (
	recordKeyPrefix = "ritual:"
	lastMetaKey     = "ritual:lastMeta"
	proofCountKey   = "ritual:proofCount"
)

func RecordKey(dayKey string) string {
	return recordKeyPrefix + dayKey
}

// RecordStore maps daily records and the last outcome onto the key-value
// port. Undecodable values read as absent; storage errors are returned
// wrapped in apperrors.ErrStorage.
type RecordStore struct {
	kv ritualout.KeyValueStore
}

func NewRecordStore(kv ritualout.KeyValueStore) *RecordStore {
	return &RecordStore{kv: kv}
}

func (s *RecordStore) LoadRecord(ctx context.Context, dayKey string) (domain.DailyRecord, bool, error) {
	raw, found, err := s.kv.Get(ctx, RecordKey(dayKey))
	if err != nil {
		return domain.DailyRecord{}, false, storageErr("load daily record", err)
	}
	if !found {
		return domain.DailyRecord{}, false, nil
	}
	rec := domain.DailyRecord{}
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return domain.DailyRecord{}, false, nil
	}
	if rec.DayKey != dayKey || rec.Validate() != nil {
		return domain.DailyRecord{}, false, nil
	}
	return rec, true, nil
}

func (s *RecordStore) SaveRecord(ctx context.Context, rec domain.DailyRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode daily record: %w", err)
	}
	if err := s.kv.Set(ctx, RecordKey(rec.DayKey), string(payload)); err != nil {
		return storageErr("save daily record", err)
	}
	return nil
}

// LoadLastOutcome returns nil when no usable outcome is stored.
func (s *RecordStore) LoadLastOutcome(ctx context.Context) (*domain.LastOutcome, error) {
	raw, found, err := s.kv.Get(ctx, lastMetaKey)
	if err != nil {
		return nil, storageErr("load last outcome", err)
	}
	if !found {
		return nil, nil
	}
	last := domain.LastOutcome{}
	if err := json.Unmarshal([]byte(raw), &last); err != nil {
		return nil, nil
	}
	if last.Category.Validate() != nil || last.ShiftScore < domain.MinShiftScore || last.ShiftScore > domain.MaxShiftScore {
		return nil, nil
	}
	return &last, nil
}

func (s *RecordStore) SaveLastOutcome(ctx context.Context, last domain.LastOutcome) error {
	payload, err := json.Marshal(last)
	if err != nil {
		return fmt.Errorf("encode last outcome: %w", err)
	}
	if err := s.kv.Set(ctx, lastMetaKey, string(payload)); err != nil {
		return storageErr("save last outcome", err)
	}
	return nil
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, apperrors.ErrStorage, err)
}
