package faker

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Source is the random data a generator may draw from
type Source interface {
	FirstName() string
	LastName() string
	Postcode() string
	City() string
	IntBetween(min, max int) int
	FloatBetween(min, max float64) float64
	Pick(options []string) string
	Chance(p float64) bool
	DateBetween(start, end time.Time) time.Time
	TimeBetween(start, end time.Time) time.Time
}

// locale supplies the locale-specific pieces of a Faker
type locale interface {
	firstName(f *gofakeit.Faker) string
	lastName(f *gofakeit.Faker) string
	postcode(f *gofakeit.Faker) string
	city(f *gofakeit.Faker) string
}

var locales = map[string]locale{
	"en_GB": britishLocale{},
	"en_US": americanLocale{},
}

// Faker is a seeded, locale-aware Source
type Faker struct {
	rand   *gofakeit.Faker
	locale locale
}

// New creates a Faker for the given locale. The same seed and locale always
// yield the same sequence of values.
func New(seed uint64, localeName string) (*Faker, error) {
	l, ok := locales[localeName]
	if !ok {
		return nil, fmt.Errorf("unsupported locale %q", localeName)
	}

	return &Faker{
		rand:   gofakeit.New(seed),
		locale: l,
	}, nil
}

// FirstName returns a locale given name
func (f *Faker) FirstName() string {
	return f.locale.firstName(f.rand)
}

// LastName returns a locale family name
func (f *Faker) LastName() string {
	return f.locale.lastName(f.rand)
}

// Postcode returns a locale postal code
func (f *Faker) Postcode() string {
	return f.locale.postcode(f.rand)
}

// City returns a locale city name
func (f *Faker) City() string {
	return f.locale.city(f.rand)
}

// IntBetween returns a uniform integer in [min, max]
func (f *Faker) IntBetween(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return f.rand.IntRange(min, max)
}

// FloatBetween returns a uniform float in [min, max)
func (f *Faker) FloatBetween(min, max float64) float64 {
	if max < min {
		min, max = max, min
	}
	if min == max {
		return min
	}
	return f.rand.Float64Range(min, max)
}

// Pick returns a uniformly chosen element of options
func (f *Faker) Pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[f.IntBetween(0, len(options)-1)]
}

// Chance returns true with probability p
func (f *Faker) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return f.rand.Float64() < p
}

// DateBetween returns a uniform calendar day (midnight UTC) in [start, end], both days inclusive
func (f *Faker) DateBetween(start, end time.Time) time.Time {
	first, last := day(start), day(end)
	if last.Before(first) {
		first, last = last, first
	}

	days := int(last.Sub(first).Hours() / 24)
	return first.AddDate(0, 0, f.IntBetween(0, days))
}

// TimeBetween returns a uniform instant in [start, end] at microsecond precision
func (f *Faker) TimeBetween(start, end time.Time) time.Time {
	if end.Before(start) {
		start, end = end, start
	}

	span := end.Sub(start)
	if span <= 0 {
		return start.Truncate(time.Microsecond)
	}

	offset := time.Duration(f.FloatBetween(0, float64(span)))
	t := start.Add(offset).Truncate(time.Microsecond)
	if t.Before(start) {
		return start
	}
	return t
}

func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
