// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/fresh-alert/internal/adapter"
	"github.com/MKhiriev/fresh-alert/internal/expiration"
	"github.com/MKhiriev/fresh-alert/internal/logger"
	"github.com/MKhiriev/fresh-alert/internal/validators"
	"github.com/MKhiriev/fresh-alert/models"
)

type clientFoodService struct {
	adapter   adapter.BackendAdapter
	validator validators.Validator
	now       Clock

	logger *logger.Logger
}

// NewClientFoodService builds a [ClientFoodService]. A nil clock falls back
// to [time.Now].
func NewClientFoodService(backend adapter.BackendAdapter, validator validators.Validator, clock Clock, log *logger.Logger) ClientFoodService {
	if clock == nil {
		clock = time.Now
	}
	return &clientFoodService{adapter: backend, validator: validator, now: clock, logger: log}
}

func (f *clientFoodService) ListFoods(ctx context.Context, userID int64) ([]models.Food, error) {
	foods, err := f.adapter.ListFoods(ctx, userID)
	if err != nil {
		return nil, mapAdapterError(ErrFood, MsgFetchFoodsFailed, err)
	}

	now := f.now()
	for i := range foods {
		f.refresh(&foods[i], now)
	}
	SortByDaysLeft(foods)

	return foods, nil
}

func (f *clientFoodService) AddFood(ctx context.Context, food models.NewFood) (models.Food, error) {
	food.Name = strings.TrimSpace(food.Name)
	food.ProductionDate = strings.TrimSpace(food.ProductionDate)
	if err := f.validator.Validate(ctx, food); err != nil {
		return models.Food{}, &ValidationError{Err: err}
	}

	created, err := f.adapter.AddFood(ctx, food)
	if err != nil {
		return models.Food{}, mapAdapterError(ErrFood, MsgAddFoodFailed, err)
	}

	f.refresh(&created, f.now())
	return created, nil
}

func (f *clientFoodService) DeleteFood(ctx context.Context, id, userID int64) error {
	if err := f.adapter.DeleteFood(ctx, id, userID); err != nil {
		return mapAdapterError(ErrFood, MsgDeleteFoodFailed, err)
	}
	return nil
}

func (f *clientFoodService) RecognizeFood(ctx context.Context, image models.Image, userID int64) (models.RecognitionResult, error) {
	if len(image.Content) == 0 {
		return models.RecognitionResult{}, &ValidationError{Err: ErrEmptyImage}
	}
	if userID == 0 {
		return models.RecognitionResult{}, &ValidationError{Err: validators.ErrInvalidUserID}
	}

	result, err := f.adapter.RecognizeFood(ctx, image, userID)
	if err != nil {
		return models.RecognitionResult{}, mapRecognitionError(err)
	}

	if result.HasProductionDate() {
		date, err := expiration.ParseLooseDate(*result.ProductionDate)
		if err != nil {
			f.logger.Warn().Err(err).Str("production_date", *result.ProductionDate).Msg("dropping unparsable recognised date")
			result.ProductionDate = nil
		} else {
			normalised := expiration.FormatDate(date)
			result.ProductionDate = &normalised
		}
	}

	if result.Empty() {
		return models.RecognitionResult{}, ErrRecognitionIncomplete
	}

	return result, nil
}

// refresh recomputes ExpirationDate and DaysLeft against now. Records whose
// stored values cannot be recomputed keep what the backend sent.
func (f *clientFoodService) refresh(food *models.Food, now time.Time) {
	status, err := expiration.Evaluate(food.ProductionDate, food.ShelfLife, now)
	if err != nil {
		f.logger.Warn().Err(err).Int64("food_id", food.ID).Msg("keeping backend expiration values")
		return
	}

	food.ExpirationDate = expiration.FormatDate(status.ExpirationDate)
	food.DaysLeft = status.DaysLeft
}

// SortByDaysLeft orders foods by days left ascending. Ties keep their
// relative order.
func SortByDaysLeft(foods []models.Food) {
	slices.SortStableFunc(foods, func(a, b models.Food) int {
		return a.DaysLeft - b.DaysLeft
	})
}
