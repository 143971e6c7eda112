package results

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UUIDFactory builds a host UUID object from its canonical lowercase
// hyphenated string form.
type UUIDFactory func(canonical string) (any, error)

// DateFactory builds a host date object from an ISO YYYY-MM-DD string.
type DateFactory func(iso string) (any, error)

type Option func(*config)

type config struct {
	uuids UUIDFactory
	dates DateFactory
}

func defaultConfig() *config {
	return &config{
		uuids: parseUUID,
		dates: parseDate,
	}
}

// WithUUIDFactory overrides how uuid and timeuuid columns become host
// objects.
func WithUUIDFactory(f UUIDFactory) Option {
	return func(cfg *config) {
		cfg.uuids = f
	}
}

// WithDateFactory overrides how date columns become host objects.
func WithDateFactory(f DateFactory) Option {
	return func(cfg *config) {
		cfg.dates = f
	}
}

func parseUUID(canonical string) (any, error) {
	u, err := uuid.Parse(canonical)
	if err != nil {
		return nil, fmt.Errorf("results: parse uuid %q: %w", canonical, err)
	}
	return u, nil
}

func parseDate(iso string) (any, error) {
	day, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return nil, fmt.Errorf("results: parse date %q: %w", iso, err)
	}
	return day, nil
}
