package service_test

import (
	"context"
	"errors"
	"strings"
	"time"
)

var errDiskFull = errors.New("disk full")

// memKV is an in-memory key-value store that can fail writes for keys with
// a given prefix.
type memKV struct {
	values  map[string]string
	sets    []string
	failSet string
	failGet bool
	closed  bool
}

func newMemKV() *memKV {
	return &memKV{values: map[string]string{}}
}

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	if m.failGet {
		return "", false, errDiskFull
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memKV) Set(_ context.Context, key, value string) error {
	if m.failSet != "" && strings.HasPrefix(key, m.failSet) {
		return errDiskFull
	}
	m.sets = append(m.sets, key)
	m.values[key] = value
	return nil
}

func (m *memKV) Close() error {
	m.closed = true
	return nil
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

// scriptedRandom replays picks in order, clamped to the candidate count.
type scriptedRandom struct {
	picks []int
	calls int
}

func (s *scriptedRandom) IntN(n int) int {
	if len(s.picks) == 0 {
		return 0
	}
	v := s.picks[s.calls%len(s.picks)]
	s.calls++
	if v >= n {
		return n - 1
	}
	return v
}
