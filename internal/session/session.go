// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/fresh-alert/internal/expiration"
	"github.com/MKhiriev/fresh-alert/internal/logger"
	"github.com/MKhiriev/fresh-alert/internal/service"
	"github.com/MKhiriev/fresh-alert/internal/store"
	"github.com/MKhiriev/fresh-alert/models"
)

// Session is the explicit client state: who is logged in and which food
// records are displayed. It is safe for concurrent use; the TUI runs backend
// calls on command goroutines.
type Session struct {
	auth  service.ClientAuthService
	foods service.ClientFoodService
	// repo may be nil, in which case nothing is remembered between runs.
	repo store.SessionRepository
	now  service.Clock

	logger *logger.Logger

	mu    sync.RWMutex
	state State
	user  models.User
	list  []models.Food
}

// New returns a logged-out session.
func New(services *service.ClientServices, repo store.SessionRepository, log *logger.Logger) *Session {
	return &Session{
		auth:   services.AuthService,
		foods:  services.FoodService,
		repo:   repo,
		now:    time.Now,
		logger: log,
	}
}

// Status returns the current state.
func (s *Session) Status() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User returns the logged-in user, or the zero value when logged out.
func (s *Session) User() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Foods returns a copy of the displayed list.
func (s *Session) Foods() []models.Food {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.list)
}

// Login authenticates and, on success, fetches the food list. A non-nil
// error with Status() == LoggedIn means only the list fetch failed.
func (s *Session) Login(ctx context.Context, username, password string) error {
	user, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return err
	}
	return s.enter(ctx, user, true)
}

// Register creates an account and logs into it, with the same contract as
// [Session.Login].
func (s *Session) Register(ctx context.Context, username, password string) error {
	user, err := s.auth.Register(ctx, username, password)
	if err != nil {
		return err
	}
	return s.enter(ctx, user, true)
}

// Restore logs in the user remembered by the local store, if any, and
// fetches the list. ok reports whether a remembered user was found.
func (s *Session) Restore(ctx context.Context) (ok bool, err error) {
	if s.repo == nil {
		return false, nil
	}

	local, err := s.repo.Get(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, s.enter(ctx, local.User(), false)
}

func (s *Session) enter(ctx context.Context, user models.User, remember bool) error {
	s.mu.Lock()
	s.state = LoggedIn
	s.user = user
	s.list = nil
	s.mu.Unlock()

	if remember && s.repo != nil {
		local := models.LocalSession{UserID: user.ID, Username: user.Username, LoggedInAt: s.now()}
		if err := s.repo.Save(ctx, local); err != nil {
			s.logger.Warn().Err(err).Int64("user_id", user.ID).Msg("could not remember session")
		}
	}

	return s.Refresh(ctx)
}

// Logout clears the user and the list and forgets the remembered session.
// The state change happens even when the local store fails.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.state = LoggedOut
	s.user = models.User{}
	s.list = nil
	s.mu.Unlock()

	if s.repo == nil {
		return nil
	}
	return s.repo.Delete(ctx)
}

// Refresh replaces the list with the backend's. On failure the current list
// is kept.
func (s *Session) Refresh(ctx context.Context) error {
	user, err := s.current()
	if err != nil {
		return err
	}

	foods, err := s.foods.ListFoods(ctx, user.ID)
	if err != nil {
		return err
	}

	s.apply(user, func() { s.list = foods })
	return nil
}

// AddFood stores food for the logged-in user and inserts the returned record
// into the list, keeping it sorted by days left.
func (s *Session) AddFood(ctx context.Context, food models.NewFood) (models.Food, error) {
	user, err := s.current()
	if err != nil {
		return models.Food{}, err
	}

	food.UserID = user.ID
	created, err := s.foods.AddFood(ctx, food)
	if err != nil {
		return models.Food{}, err
	}

	s.apply(user, func() {
		s.list = append(s.list, created)
		service.SortByDaysLeft(s.list)
	})
	return created, nil
}

// DeleteFood deletes the record id. It is removed from the list only after
// the backend confirmed, and only that one record is removed.
func (s *Session) DeleteFood(ctx context.Context, id int64) error {
	user, err := s.current()
	if err != nil {
		return err
	}

	if err = s.foods.DeleteFood(ctx, id, user.ID); err != nil {
		return err
	}

	s.apply(user, func() {
		if i := slices.IndexFunc(s.list, func(f models.Food) bool { return f.ID == id }); i >= 0 {
			s.list = slices.Delete(s.list, i, i+1)
		}
	})
	return nil
}

// Recognize asks the backend to infer food attributes from image.
func (s *Session) Recognize(ctx context.Context, image models.Image) (models.RecognitionResult, error) {
	user, err := s.current()
	if err != nil {
		return models.RecognitionResult{}, err
	}
	return s.foods.RecognizeFood(ctx, image, user.ID)
}

// ChangePassword changes the logged-in user's password.
func (s *Session) ChangePassword(ctx context.Context, newPassword, confirmation string) error {
	user, err := s.current()
	if err != nil {
		return err
	}
	return s.auth.ChangePassword(ctx, user.ID, newPassword, confirmation)
}

// AddSecretKey registers a recognition provider credential for the
// logged-in user.
func (s *Session) AddSecretKey(ctx context.Context, provider, secretKey string) error {
	user, err := s.current()
	if err != nil {
		return err
	}
	return s.auth.AddSecretKey(ctx, user.ID, provider, secretKey)
}

// Filter returns the records whose name contains term, ignoring case. An
// empty term returns the whole list.
func (s *Session) Filter(term string) []models.Food {
	term = strings.ToLower(strings.TrimSpace(term))

	s.mu.RLock()
	defer s.mu.RUnlock()

	if term == "" {
		return slices.Clone(s.list)
	}

	out := make([]models.Food, 0, len(s.list))
	for _, f := range s.list {
		if strings.Contains(strings.ToLower(f.Name), term) {
			out = append(out, f)
		}
	}
	return out
}

// Summary counts the displayed records per bucket. Every bucket is present.
func (s *Session) Summary() map[expiration.Bucket]int {
	counts := make(map[expiration.Bucket]int, len(expiration.Buckets))
	for _, b := range expiration.Buckets {
		counts[b] = 0
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.list {
		counts[expiration.Classify(f.DaysLeft)]++
	}
	return counts
}

func (s *Session) current() (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state != LoggedIn {
		return models.User{}, ErrNotLoggedIn
	}
	return s.user, nil
}

// apply runs mutate under the write lock unless the session moved to another
// user while the backend call was in flight.
func (s *Session) apply(user models.User, mutate func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != LoggedIn || s.user.ID != user.ID {
		s.logger.Debug().Int64("user_id", user.ID).Msg("discarding result for a stale session")
		return
	}
	mutate()
}
