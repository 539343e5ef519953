package providers

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/beldram/daygrid/internal/model"
)

// A fileHandler holds one day's data together with the file it is persisted
// in.
type fileHandler struct {
	mutex sync.Mutex

	basePath string
	date     model.Date

	data model.EventList
}

// newFileHandlerWithDataReadFromDisk reads the day file for the given date,
// which may legally not exist yet, in which case the day starts out empty.
func newFileHandlerWithDataReadFromDisk(basePath string, date model.Date, knownCategories []model.Category) (*fileHandler, error) {
	f := fileHandler{basePath: basePath, date: date}
	if err := f.readFromDisk(knownCategories); err != nil {
		return nil, fmt.Errorf("could not read day file from disk (%w)", err)
	}
	return &f, nil
}

// Filename returns the path of the file the handler reads from and writes to.
func (h *fileHandler) Filename() string {
	return path.Join(h.basePath, h.date.String())
}

// Write writes the day's data to disk.
func (h *fileHandler) Write() error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	filename := h.Filename()
	f, err := os.OpenFile(filename, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("could not open file '%s' (%w)", filename, err)
	}
	defer f.Close()

	writer := bufio.NewWriter(f)
	for _, e := range h.data.Events {
		if _, err := writer.WriteString(e.String() + "\n"); err != nil {
			return fmt.Errorf("could not write to file '%s' (%w)", filename, err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("could not flush file '%s' (%w)", filename, err)
	}
	return nil
}

// AddEvent adds the event to the day's data, keeping the events ordered.
func (h *fileHandler) AddEvent(e *model.Event) error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if err := h.data.AddEvent(e); err != nil {
		return fmt.Errorf("could not add event to day %s (%w)", h.date.String(), err)
	}
	return nil
}

// Events returns a copy of the day's events.
func (h *fileHandler) Events() model.EventList {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return h.data.Clone()
}

func (h *fileHandler) readFromDisk(knownCategories []model.Category) error {
	h.data = model.EventList{Events: make([]*model.Event, 0)}

	f, err := os.Open(h.Filename())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("could not open file '%s' (%w)", h.Filename(), err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		event, err := model.NewEventFromDaywiseFileLine(h.date, line)
		if err != nil {
			log.Warn().Err(err).Str("file", h.Filename()).Str("line", line).
				Msg("skipping malformed day-file line")
			continue
		}
		event.Cat = resolveCategory(knownCategories, event.Cat.Name)
		if err := h.data.AddEvent(event); err != nil {
			log.Warn().Err(err).Str("file", h.Filename()).Str("line", line).
				Msg("skipping event from day file")
		}
	}
	return scanner.Err()
}

// resolveCategory returns the fully parameterized known category of the given
// name, or a category of just that name if none is configured.
func resolveCategory(known []model.Category, name model.CategoryName) model.Category {
	for i := range known {
		if known[i].Name == name {
			return known[i]
		}
	}
	return model.Category{Name: name}
}
