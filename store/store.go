// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/round-match/db"
	"github.com/danielhkuo/round-match/models"
	"github.com/danielhkuo/round-match/notify"
	"github.com/danielhkuo/round-match/seed"
)

// Persisted keys
const (
	DataKey   = "golf-round-requests"
	SeededKey = "golf-initialized"
)

const seededValue = "true"

var ErrStorageUnavailable = errors.New("no durable storage configured")

// Store owns the persisted collection of round requests.
type Store struct {
	mu       sync.Mutex
	backend  db.Backend
	notifier notify.Notifier
	seed     []models.RoundRequest
	seedIDs  map[string]struct{}

	now   func() time.Time
	newID func() (string, error)

	inflight sync.WaitGroup
}

type Option func(*Store)

// WithClock overrides the clock used for createdAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides request id generation.
func WithIDGenerator(fn func() (string, error)) Option {
	return func(s *Store) { s.newID = fn }
}

// WithSeed replaces the default seed collection.
func WithSeed(reqs []models.RoundRequest) Option {
	return func(s *Store) { s.seed = reqs }
}

// New builds a Store. A nil backend means no durable storage: reads return
// the seed collection and Create fails with ErrStorageUnavailable.
// A nil notifier drops notifications.
func New(backend db.Backend, notifier notify.Notifier, opts ...Option) *Store {
	if notifier == nil {
		notifier = notify.Nop{}
	}

	s := &Store{
		backend:  backend,
		notifier: notifier,
		seed:     seed.Requests(),
		now:      time.Now,
		newID:    newRequestID,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.seedIDs = seed.IDSet(s.seed)
	return s
}

// newRequestID returns a UUIDv7: unique, and ordered by creation time.
func newRequestID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate request ID: %w", err)
	}
	return id.String(), nil
}

// Initialize writes the seed collection unless the seeded flag is set in the
// backend. Safe to call repeatedly. The flag is read on every call, so stores
// sharing a backend reseed after any of them clears it.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialize(ctx)
}

func (s *Store) initialize(ctx context.Context) error {
	if s.backend == nil {
		return nil
	}

	_, ok, err := s.backend.Get(ctx, SeededKey)
	if err != nil {
		return fmt.Errorf("failed to read seeded flag: %w", err)
	}
	if ok {
		return nil
	}

	if err := s.write(ctx, s.seed); err != nil {
		return err
	}
	if err := s.backend.Set(ctx, SeededKey, seededValue); err != nil {
		return fmt.Errorf("failed to set seeded flag: %w", err)
	}

	slog.Info("store seeded", "count", len(s.seed))
	return nil
}

// Create assigns id and createdAt to input, appends it to the persisted
// rows, and returns it. The notifier runs afterwards in the background; its
// outcome never affects the result.
func (s *Store) Create(ctx context.Context, input models.RoundRequestInput) (models.RoundRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.backend == nil {
		return models.RoundRequest{}, ErrStorageUnavailable
	}
	if err := s.initialize(ctx); err != nil {
		return models.RoundRequest{}, err
	}

	existing, err := s.persistedOnly(ctx)
	if err != nil {
		return models.RoundRequest{}, err
	}

	id, err := s.newID()
	if err != nil {
		return models.RoundRequest{}, err
	}

	req := models.RoundRequest{
		ID:                id,
		Nickname:          input.Nickname,
		PlayDateSpecified: input.PlayDateSpecified,
		PlayDateFlexible:  input.PlayDateFlexible,
		PreferredArea:     input.PreferredArea,
		CourseType:        input.CourseType,
		HasCompanion:      input.HasCompanion,
		CompanionNickname: input.CompanionNickname,
		PlayStyle:         input.PlayStyle,
		ShuttleService:    input.ShuttleService,
		Requirements:      input.Requirements,
		Contact:           input.Contact,
		CreatedAt:         s.now().Format(models.DateLayout),
	}

	if err := s.write(ctx, append(existing, req)); err != nil {
		return models.RoundRequest{}, err
	}

	slog.Info("round request created", "id", req.ID, "nickname", req.Nickname)

	// Written before dispatch, so readers see the row regardless of delivery.
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		s.notifier.Notify(context.WithoutCancel(ctx), req)
	}()

	return req, nil
}

// GetAll returns every stored request, seed rows included. Unreadable data
// yields an empty slice.
func (s *Store) GetAll(ctx context.Context) ([]models.RoundRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.backend == nil {
		return s.GetSeedOnly(), nil
	}
	if err := s.initialize(ctx); err != nil {
		return nil, err
	}

	return s.read(ctx)
}

// Clear removes the data and the seeded flag. The next read reseeds.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.backend == nil {
		return nil
	}

	if err := s.backend.Delete(ctx, DataKey); err != nil {
		return fmt.Errorf("failed to delete requests: %w", err)
	}
	if err := s.backend.Delete(ctx, SeededKey); err != nil {
		return fmt.Errorf("failed to delete seeded flag: %w", err)
	}
	slog.Info("store cleared")
	return nil
}

// GetSeedOnly returns the fixed seed collection, ignoring stored state.
func (s *Store) GetSeedOnly() []models.RoundRequest {
	out := make([]models.RoundRequest, len(s.seed))
	for i, r := range s.seed {
		r.PreferredArea = slices.Clone(r.PreferredArea)
		r.PlayStyle = slices.Clone(r.PlayStyle)
		out[i] = r
	}
	return out
}

// GetPersistedOnly returns stored requests that are not seed rows.
func (s *Store) GetPersistedOnly(ctx context.Context) ([]models.RoundRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.backend == nil {
		return []models.RoundRequest{}, nil
	}
	return s.persistedOnly(ctx)
}

// Close waits for in-flight notifications.
func (s *Store) Close() {
	s.inflight.Wait()
}

func (s *Store) persistedOnly(ctx context.Context) ([]models.RoundRequest, error) {
	// Without the flag the data key is not trusted.
	_, ok, err := s.backend.Get(ctx, SeededKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read seeded flag: %w", err)
	}
	if !ok {
		return []models.RoundRequest{}, nil
	}

	all, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.RoundRequest, 0, len(all))
	for _, r := range all {
		if _, isSeed := s.seedIDs[r.ID]; !isSeed {
			out = append(out, r)
		}
	}
	return out, nil
}

// read decodes the data key. Missing or unparseable data is an empty
// collection, not an error.
func (s *Store) read(ctx context.Context) ([]models.RoundRequest, error) {
	raw, ok, err := s.backend.Get(ctx, DataKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read requests: %w", err)
	}
	if !ok || raw == "" {
		return []models.RoundRequest{}, nil
	}

	var reqs []models.RoundRequest
	if err := json.Unmarshal([]byte(raw), &reqs); err != nil {
		slog.Error("stored requests unreadable, treating as empty", "error", err)
		return []models.RoundRequest{}, nil
	}
	if reqs == nil {
		reqs = []models.RoundRequest{}
	}
	return reqs, nil
}

func (s *Store) write(ctx context.Context, reqs []models.RoundRequest) error {
	data, err := json.Marshal(reqs)
	if err != nil {
		return fmt.Errorf("failed to encode requests: %w", err)
	}
	if err := s.backend.Set(ctx, DataKey, string(data)); err != nil {
		return fmt.Errorf("failed to write requests: %w", err)
	}
	return nil
}
