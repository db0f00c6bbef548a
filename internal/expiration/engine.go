// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package expiration

import (
	"fmt"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// ExpirationDate returns production + shelfLife days.
func ExpirationDate(production time.Time, shelfLife int) (time.Time, error) {
	if shelfLife < 0 {
		return time.Time{}, fmt.Errorf("%w: %d", ErrNegativeShelfLife, shelfLife)
	}
	return Civil(production).AddDate(0, 0, shelfLife), nil
}

// DaysLeft returns the whole number of days from the calendar date of now to
// expiration, rounded down. The result is negative once expiration has passed.
func DaysLeft(expiration, now time.Time) int {
	// Both sides are UTC midnights, so the difference is a whole number of
	// days. time.Duration would overflow past ~292 years.
	return int((Civil(expiration).Unix() - Civil(now).Unix()) / secondsPerDay)
}

// Status is the derived remaining-life state of one food record.
type Status struct {
	ExpirationDate time.Time
	DaysLeft       int
	Bucket         Bucket
}

// Evaluate parses productionDate, derives the expiration date from shelfLife
// and classifies the result against now.
func Evaluate(productionDate string, shelfLife int, now time.Time) (Status, error) {
	production, err := ParseDate(productionDate)
	if err != nil {
		return Status{}, err
	}

	expires, err := ExpirationDate(production, shelfLife)
	if err != nil {
		return Status{}, err
	}

	left := DaysLeft(expires, now)
	return Status{
		ExpirationDate: expires,
		DaysLeft:       left,
		Bucket:         Classify(left),
	}, nil
}
