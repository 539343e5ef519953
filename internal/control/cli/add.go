package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/teambition/rrule-go"

	"github.com/beldram/daygrid/internal/model"
)

// AddCommand contains flags for the `add` command line command, for
// `go-flags` to parse command line args into.
type AddCommand struct {
	Category string `short:"c" long:"category" description:"the category of the added event(s)" value-name:"<category>" required:"true"`
	Name     string `short:"n" long:"name" description:"the name of the added event(s)" value-name:"<name>" required:"true"`

	Date  string `short:"d" long:"date" description:"the date of the (first) event" value-name:"<yyyy-mm-dd>" required:"true"`
	Start string `short:"s" long:"start" description:"the time at which the event begins" value-name:"<HH:MM>" required:"true"`
	End   string `short:"e" long:"end" description:"the time at which the event ends" value-name:"<HH:MM>" required:"true"`

	Repeat    string `short:"r" long:"repeat" description:"the repeat interval; if omitted, no repetition is assumed; requires the til date to be specified" choice:"daily" choice:"weekly" choice:"monthly"`
	RepeatTil string `short:"t" long:"repeat-til" description:"the date until which to repeat the event; requires the repeat interval to be specified" value-name:"<yyyy-mm-dd>"`
}

// Execute executes the add command.
// (This gets called by `go-flags` when `add` is provided on the command line)
func (command *AddCommand) Execute(args []string) error {
	env := envData()

	configData, err := loadConfig(env.BaseDirPath)
	if err != nil {
		return err
	}
	categories, err := categoriesFromConfig(configData)
	if err != nil {
		return err
	}

	// the category separates day-file fields, so it cannot contain '|'
	if strings.ContainsRune(command.Category, '|') {
		return fmt.Errorf("category name cannot contain '|'")
	}
	category := model.Category{Name: model.CategoryName(command.Category)}
	found := false
	for i := range categories {
		if categories[i].Name == category.Name {
			category = categories[i]
			found = true
			break
		}
	}
	if !found {
		fmt.Fprintf(os.Stderr, "WARNING: category '%s' not found in config data\n", command.Category)
	}

	date, err := model.FromString(command.Date)
	if err != nil {
		return fmt.Errorf("could not parse date (%w)", err)
	}
	start, err := model.NewTimestamp(command.Start)
	if err != nil {
		return fmt.Errorf("could not parse start time (%w)", err)
	}
	end, err := model.NewTimestamp(command.End)
	if err != nil {
		return fmt.Errorf("could not parse end time (%w)", err)
	}
	if !end.IsAfter(start) {
		return fmt.Errorf("end time %s is not after start time %s", end.String(), start.String())
	}

	if (command.Repeat != "") != (command.RepeatTil != "") {
		return fmt.Errorf("either both repeat interval and 'til' date need to be specified, or neither")
	}

	dates := []model.Date{date}
	if command.Repeat != "" {
		repeatTil, err := model.FromString(command.RepeatTil)
		if err != nil {
			return fmt.Errorf("could not parse repeat-til date (%w)", err)
		}
		if !repeatTil.IsAfter(date) {
			return fmt.Errorf("repetition end ('til') date needs to be after the start date")
		}

		frequencies := map[string]rrule.Frequency{
			"daily":   rrule.DAILY,
			"weekly":  rrule.WEEKLY,
			"monthly": rrule.MONTHLY,
		}
		rule, err := rrule.NewRRule(rrule.ROption{
			Freq:    frequencies[command.Repeat],
			Dtstart: date.ToGotime(),
			Until:   repeatTil.ToGotime(),
		})
		if err != nil {
			return fmt.Errorf("could not build the repetition rule (%w)", err)
		}

		dates = dates[:0]
		for _, occurrence := range rule.All() {
			dates = append(dates, model.DateFromGotime(occurrence))
		}
	}

	provider, err := daysProvider(env, categories)
	if err != nil {
		return err
	}
	for _, d := range dates {
		start, end := start, end
		err := provider.AddEvent(&model.Event{
			Name:  command.Name,
			Cat:   category,
			Date:  d,
			Start: &start,
			End:   &end,
		})
		if err != nil {
			return err
		}
	}

	// commit at the end, so we don't write partial data if adding errored
	fmt.Println("writing to:")
	for _, d := range dates {
		fmt.Printf(" + %s (%s)\n", d.String(), d.ToWeekday().String())
		if err := provider.CommitDay(d); err != nil {
			return err
		}
	}

	return nil
}
