// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package expiration

// Bucket is the display tier a food record falls into.
type Bucket int

const (
	Expired Bucket = iota
	Critical
	Warning
	OK
)

// Tier thresholds in days left.
const (
	CriticalFrom = 0
	WarningFrom  = 7
	OKFrom       = 30
)

// Buckets lists every bucket from most to least urgent.
var Buckets = []Bucket{Expired, Critical, Warning, OK}

// Classify maps days left to its bucket.
func Classify(daysLeft int) Bucket {
	switch {
	case daysLeft < CriticalFrom:
		return Expired
	case daysLeft < WarningFrom:
		return Critical
	case daysLeft < OKFrom:
		return Warning
	default:
		return OK
	}
}

// String returns the bucket name.
func (b Bucket) String() string {
	switch b {
	case Expired:
		return "expired"
	case Critical:
		return "critical"
	case Warning:
		return "warning"
	case OK:
		return "ok"
	default:
		return "unknown"
	}
}

// Palette is the background/foreground color pair of a bucket, as hex RGB.
type Palette struct {
	Background string
	Foreground string
}

var palettes = map[Bucket]Palette{
	Expired:  {Background: "#FEE2E2", Foreground: "#DC2626"},
	Critical: {Background: "#FEE2E2", Foreground: "#EF4444"},
	Warning:  {Background: "#FEF3C7", Foreground: "#F59E0B"},
	OK:       {Background: "#D1FAE5", Foreground: "#10B981"},
}

// Colors returns the bucket's fixed color pair. Unknown buckets get the
// expired palette.
func (b Bucket) Colors() Palette {
	if p, ok := palettes[b]; ok {
		return p
	}
	return palettes[Expired]
}
