package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/beldram/daygrid/internal/ics"
	"github.com/beldram/daygrid/internal/model"
)

// ImportCommand contains flags for the `import` command line command, for
// `go-flags` to parse command line args into.
type ImportCommand struct {
	File string `long:"file" description:"the ICS file to import" value-name:"<path>"`
	URL  string `long:"url" description:"the ICS URL to import" value-name:"<url>"`

	FromDay string `short:"f" long:"from" description:"the first day to import events for" value-name:"<yyyy-mm-dd>" required:"true"`
	TilDay  string `short:"t" long:"til" description:"the last day to import events for (inclusive)" value-name:"<yyyy-mm-dd>" required:"true"`

	Category string `short:"c" long:"category" description:"force all imported events into this category" value-name:"<category>"`
	DryRun   bool   `short:"n" long:"dry-run" description:"print what would be imported without writing"`
}

// Execute executes the import command.
// (This gets called by `go-flags` when `import` is provided on the command
// line)
func (command *ImportCommand) Execute(args []string) error {
	if (command.File == "") == (command.URL == "") {
		return fmt.Errorf("exactly one of '--file' and '--url' must be given")
	}
	source := command.File
	if command.URL != "" {
		source = command.URL
	}

	from, err := model.FromString(command.FromDay)
	if err != nil {
		return fmt.Errorf("could not parse from date (%w)", err)
	}
	til, err := model.FromString(command.TilDay)
	if err != nil {
		return fmt.Errorf("could not parse til date (%w)", err)
	}

	env := envData()

	configData, err := loadConfig(env.BaseDirPath)
	if err != nil {
		return err
	}
	categories, err := categoriesFromConfig(configData)
	if err != nil {
		return err
	}

	options := ics.Options{Known: categories}
	if command.Category != "" {
		override := model.Category{Name: model.CategoryName(command.Category)}
		found := false
		for i := range categories {
			if categories[i].Name == override.Name {
				override = categories[i]
				found = true
				break
			}
		}
		if !found {
			fmt.Fprintf(os.Stderr, "WARNING: category '%s' not found in config data\n", command.Category)
		}
		options.Override = &override
	}

	body, err := ics.ReadSource(source)
	if err != nil {
		return err
	}
	events, err := ics.Import(body, from, til, options)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Println("nothing to import")
		return nil
	}

	if command.DryRun {
		fmt.Println("would import:")
		for _, event := range events {
			fmt.Printf(" + %s %s\n", event.Date.String(), event.String())
		}
		return nil
	}

	provider, err := daysProvider(env, categories)
	if err != nil {
		return err
	}
	perDay := make(map[model.Date]int)
	for _, event := range events {
		if err := provider.AddEvent(event); err != nil {
			return err
		}
		perDay[event.Date]++
	}

	dates := make([]model.Date, 0, len(perDay))
	for date := range perDay {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].IsBefore(dates[j]) })

	// commit at the end, so we don't write partial data if adding errored
	fmt.Println("writing to:")
	for _, date := range dates {
		fmt.Printf(" + %s (%s), %d event(s)\n", date.String(), date.ToWeekday().String(), perDay[date])
		if err := provider.CommitDay(date); err != nil {
			return err
		}
	}

	return nil
}
