// Package providers implements storage.DataProvider over concrete backends.
package providers

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/beldram/daygrid/internal/model"
)

// A FilesDataProvider provides day data from a directory of daywise plaintext
// files, one file per date, named by the date.
type FilesDataProvider struct {
	BasePath string

	fhMutex      sync.RWMutex
	fileHandlers map[model.Date]*fileHandler

	categories []model.Category
}

// NewFilesDataProvider creates a provider over the given base directory,
// creating the directory if necessary. Events read from disk have their
// categories resolved against the given known categories.
func NewFilesDataProvider(basePath string, categories []model.Category) (*FilesDataProvider, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("could not create directory '%s' (%w)", basePath, err)
	}

	return &FilesDataProvider{
		BasePath:     basePath,
		fileHandlers: make(map[model.Date]*fileHandler),
		categories:   categories,
	}, nil
}

// GetDay returns the events of the given day.
func (p *FilesDataProvider) GetDay(date model.Date) (*model.EventList, error) {
	fh, err := p.getFileHandler(date)
	if err != nil {
		return nil, fmt.Errorf("error loading data for %s (%w)", date.String(), err)
	}
	l := fh.Events()
	return &l, nil
}

// AddEvent adds the event to its day, in memory; CommitDay persists it.
func (p *FilesDataProvider) AddEvent(e *model.Event) error {
	fh, err := p.getFileHandler(e.Date)
	if err != nil {
		return fmt.Errorf("error loading data for %s (%w)", e.Date.String(), err)
	}
	return fh.AddEvent(e)
}

// CommitDay writes the given day's data back to its file.
func (p *FilesDataProvider) CommitDay(date model.Date) error {
	fh, err := p.getFileHandler(date)
	if err != nil {
		return fmt.Errorf("error loading data for %s (%w)", date.String(), err)
	}
	return fh.Write()
}

// SumUpTimespanByCategory sums up the events' durations by category name over
// all days from from til til (both inclusive).
func (p *FilesDataProvider) SumUpTimespanByCategory(from, til model.Date) (map[model.CategoryName]time.Duration, error) {
	result := make(map[model.CategoryName]time.Duration)
	if til.IsBefore(from) {
		return result, nil
	}

	for current := from; ; current = current.Next() {
		day, err := p.GetDay(current)
		if err != nil {
			return nil, err
		}
		for name, duration := range day.SumUpByCategory() {
			result[name] += duration
		}
		if current == til {
			break
		}
	}

	return result, nil
}

func (p *FilesDataProvider) getFileHandler(date model.Date) (*fileHandler, error) {
	p.fhMutex.RLock()
	fh, ok := p.fileHandlers[date]
	p.fhMutex.RUnlock()
	if ok {
		return fh, nil
	}

	p.fhMutex.Lock()
	defer p.fhMutex.Unlock()
	if fh, ok := p.fileHandlers[date]; ok {
		return fh, nil
	}
	fh, err := newFileHandlerWithDataReadFromDisk(p.BasePath, date, p.categories)
	if err != nil {
		return nil, err
	}
	p.fileHandlers[date] = fh
	return fh, nil
}
