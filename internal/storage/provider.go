// Package storage provides access to the user's persisted day data.
package storage

import (
	"time"

	"github.com/beldram/daygrid/internal/model"
)

// DataProvider is the abstracted provider of day data, which can be
// implemented over various storage systems.
type DataProvider interface {
	GetDay(date model.Date) (*model.EventList, error)
	AddEvent(e *model.Event) error
	CommitDay(date model.Date) error

	SumUpTimespanByCategory(from, til model.Date) (map[model.CategoryName]time.Duration, error)
}

// SunTimesProvider gives the sun times for a date.
type SunTimesProvider interface {
	Get(date model.Date) model.SunTimes
}
