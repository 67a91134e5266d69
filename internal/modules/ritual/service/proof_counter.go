package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	ritualout "genie/internal/modules/ritual/port/out"
	"genie/internal/platform/random"
)

// SeedJitter bounds the random offset added to the seed base: [0, SeedJitter).
const SeedJitter = 200

// ProofCounter is the persisted count of completions across all days. It
// is seeded once and only ever grows.
type ProofCounter struct {
	kv       ritualout.KeyValueStore
	rnd      random.Source
	seedBase int
}

func NewProofCounter(kv ritualout.KeyValueStore, rnd random.Source, seedBase int) *ProofCounter {
	return &ProofCounter{kv: kv, rnd: rnd, seedBase: seedBase}
}

// Initialize loads the stored count, seeding it with base plus jitter when
// nothing usable is stored yet.
func (p *ProofCounter) Initialize(ctx context.Context) (int, error) {
	raw, found, err := p.kv.Get(ctx, proofCountKey)
	if err != nil {
		return 0, storageErr("load proof count", err)
	}
	if found {
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && n >= 0 {
			return n, nil
		}
	}
	seeded := p.seedBase + p.rnd.IntN(SeedJitter)
	if err := p.store(ctx, seeded); err != nil {
		return 0, err
	}
	return seeded, nil
}

// Bump adds amount to the stored count and returns the new value.
func (p *ProofCounter) Bump(ctx context.Context, amount int) (int, error) {
	if amount < 0 {
		return 0, fmt.Errorf("proof bump must be non-negative, got %d", amount)
	}
	current, err := p.Initialize(ctx)
	if err != nil {
		return 0, err
	}
	next := current + amount
	if err := p.store(ctx, next); err != nil {
		return 0, err
	}
	return next, nil
}

func (p *ProofCounter) store(ctx context.Context, n int) error {
	if err := p.kv.Set(ctx, proofCountKey, strconv.Itoa(n)); err != nil {
		return storageErr("save proof count", err)
	}
	return nil
}
