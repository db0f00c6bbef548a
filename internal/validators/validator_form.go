// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/fresh-alert/models"
	"github.com/go-playground/validator/v10"
)

const tagEnabledProvider = "enabled_provider"

// fieldErrors maps "<Struct>.<Field>" to the sentinel reported when that field
// fails any of its tags.
var fieldErrors = map[string]error{
	"Credentials.Username": ErrEmptyUsername,
	"Credentials.Password": ErrEmptyPassword,

	"ChangePasswordRequest.UserID":      ErrInvalidUserID,
	"ChangePasswordRequest.NewPassword": ErrEmptyPassword,

	"NewFood.Name":           ErrEmptyName,
	"NewFood.ProductionDate": ErrInvalidProductionDate,
	"NewFood.ShelfLife":      ErrNegativeShelfLife,
	"NewFood.UserID":         ErrInvalidUserID,

	"SecretKey.UserID":    ErrInvalidUserID,
	"SecretKey.SecretKey": ErrEmptySecretKey,
}

// FormValidator validates the client's request models with struct tags.
type FormValidator struct {
	validate *validator.Validate
}

// NewFormValidator builds a [Validator] with the custom tags the request
// models use registered.
func NewFormValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// the tag is registered once on a fresh instance, so the error can only
	// come from a programming mistake in the tag name
	if err := v.RegisterValidation(tagEnabledProvider, isEnabledProvider); err != nil {
		panic(err)
	}
	return &FormValidator{validate: v}
}

func isEnabledProvider(fl validator.FieldLevel) bool {
	return slices.Contains(models.EnabledProviders, fl.Field().String())
}

// Validate implements [Validator]. When fields are given only those struct
// fields are checked.
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials, *models.Credentials,
		models.ChangePasswordRequest, *models.ChangePasswordRequest,
		models.NewFood, *models.NewFood,
		models.SecretKey, *models.SecretKey:
		return v.validateStruct(ctx, value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *FormValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	return mapFieldError(validationErrs[0])
}

func mapFieldError(fe validator.FieldError) error {
	key := fe.StructNamespace()

	if key == "SecretKey.Provider" {
		if fe.Tag() == tagEnabledProvider {
			return ErrUnsupportedProvider
		}
		return ErrEmptyProvider
	}

	if sentinel, ok := fieldErrors[key]; ok {
		return sentinel
	}

	return fmt.Errorf("invalid %s: failed %q", fe.Field(), fe.Tag())
}
