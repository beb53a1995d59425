package store

import (
	"context"
	"errors"

	"ProposalEngine/internal/model"
)

// ErrSeriesNotFound is returned when a named series has never been saved.
var ErrSeriesNotFound = errors.New("series not found")

// Store persists raw monthly return series by name.
type Store interface {
	SaveSeries(ctx context.Context, name string, series model.ReturnSeries) error
	LoadSeries(ctx context.Context, name string) (model.ReturnSeries, error)
	ListSeries(ctx context.Context) ([]string, error)
	Close() error
}
