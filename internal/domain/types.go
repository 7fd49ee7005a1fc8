package domain

import (
	"fmt"
	"regexp"
	"time"
)

// ContentKind distinguishes the two publishable content types
type ContentKind string

const (
	ContentKindPost ContentKind = "post"
	ContentKindWork ContentKind = "work"
)

// WorkCategory classifies a work for point weighting
type WorkCategory string

const (
	CategoryPoem       WorkCategory = "poem"
	CategoryShortStory WorkCategory = "short_story"
	CategoryNovel      WorkCategory = "novel"
)

// PointWeights maps a work category to the number of distribution points a
// single counted read is worth
type PointWeights map[WorkCategory]int64

// DefaultPointWeights returns the platform default weight table
func DefaultPointWeights() PointWeights {
	return PointWeights{
		CategoryPoem:       1,
		CategoryShortStory: 3,
		CategoryNovel:      5,
	}
}

// Weight returns the point weight for a category. Unknown categories fall back
// to the minimum weight of 1 so a miscategorized work still earns something.
func (w PointWeights) Weight(category WorkCategory) int64 {
	if v, ok := w[category]; ok && v > 0 {
		return v
	}
	return 1
}

// Identity is the resolved viewer identity used as the dedup key on the live
// attribution path. UserID is present only for authenticated viewers; IPAddress
// is always required as the fallback dedup signal of last resort.
type Identity struct {
	UserID    *string
	IPAddress string
}

// Resolvable reports whether the identity carries at least one usable signal
func (i Identity) Resolvable() bool {
	return (i.UserID != nil && *i.UserID != "") || i.IPAddress != ""
}

// Key returns the stable dedup key for this identity: the user id when
// authenticated, the client IP otherwise. This is the window uniqueness key
// that arbitrates concurrent first inserts.
func (i Identity) Key() string {
	if i.UserID != nil && *i.UserID != "" {
		return "user:" + *i.UserID
	}
	return "ip:" + i.IPAddress
}

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Month is a calendar month in "YYYY-MM" form. All month arithmetic is UTC.
type Month string

// ParseMonth validates and returns a Month
func ParseMonth(s string) (Month, error) {
	if !monthPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return Month(s), nil
}

// Valid reports whether the month is well-formed
func (m Month) Valid() bool {
	return monthPattern.MatchString(string(m))
}

// Bounds returns the UTC half-open interval [start, end) covering the month
func (m Month) Bounds() (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", string(m))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidMonth, m)
	}
	start = start.UTC()
	return start, start.AddDate(0, 1, 0), nil
}

// MonthOf returns the Month containing t (in UTC)
func MonthOf(t time.Time) Month {
	return Month(t.UTC().Format("2006-01"))
}

func (m Month) String() string {
	return string(m)
}
