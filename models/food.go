// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Food is a tracked food record as listed by GET /api/foods.
//
// ExpirationDate and DaysLeft are derived: ExpirationDate is always
// ProductionDate + ShelfLife days, and DaysLeft is a snapshot relative to the
// day the list was fetched. Dates use the YYYY-MM-DD layout.
type Food struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	ProductionDate string `json:"productionDate"`
	ShelfLife      int    `json:"shelfLife"`
	ExpirationDate string `json:"expirationDate"`
	DaysLeft       int    `json:"daysLeft"`
	UserID         int64  `json:"userId"`
}

// Image is an uploaded photo of a food item. Content is sent as-is; the
// client does no image processing.
type Image struct {
	Filename string
	Content  []byte
}

// NewFood is the add-food form submitted as multipart/form-data to
// POST /api/foods.
type NewFood struct {
	Name           string `validate:"required"`
	ProductionDate string `validate:"required,datetime=2006-01-02"`
	ShelfLife      int    `validate:"gte=0"`
	UserID         int64  `validate:"required"`

	// Image is optional.
	Image *Image `validate:"-"`
}

// RecognitionResult holds the attributes the backend inferred from a photo.
// Any subset may be absent.
type RecognitionResult struct {
	Name           *string `json:"name"`
	ProductionDate *string `json:"productionDate"`
	ShelfLife      *int    `json:"shelfLife"`
}

// HasName reports whether a non-empty name was recognised.
func (r RecognitionResult) HasName() bool {
	return r.Name != nil && *r.Name != ""
}

// HasProductionDate reports whether a non-empty production date was recognised.
func (r RecognitionResult) HasProductionDate() bool {
	return r.ProductionDate != nil && *r.ProductionDate != ""
}

// HasShelfLife reports whether a shelf life was recognised. Zero is a valid
// shelf life and counts as present.
func (r RecognitionResult) HasShelfLife() bool {
	return r.ShelfLife != nil
}

// Empty reports whether none of the attributes were recognised.
func (r RecognitionResult) Empty() bool {
	return !r.HasName() && !r.HasProductionDate() && !r.HasShelfLife()
}
