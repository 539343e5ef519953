package cli

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/beldram/daygrid/internal/model"
	"github.com/beldram/daygrid/internal/util"
)

// TimesheetCommand is the command `timesheet`, which produces a timesheet for
// a given category.
//
// A timesheet has entries per day, each of the form
//
//	<start-time>,<break-duration>,<end-time>
//
// e.g.
//
//	08:50,45m,16:20
type TimesheetCommand struct {
	FromDay string `short:"f" long:"from" description:"the day from which to start" value-name:"<yyyy-mm-dd>" required:"true"`
	TilDay  string `short:"t" long:"til" description:"the day til which to generate the timesheet (inclusive)" value-name:"<yyyy-mm-dd>" required:"true"`

	Category string `short:"c" long:"category" description:"the category include regex for which to generate the timesheet" value-name:"<regex>" required:"true"`
	Exclude  string `short:"e" long:"exclude" description:"the category exclude regex (empty value is ignored)" value-name:"<regex>"`

	IncludeEmpty   bool   `long:"include-empty" description:"keep rows for days without matching events"`
	DateFormat     string `long:"date-format" value-name:"<format>" description:"specify the date format (see <https://pkg.go.dev/time#pkg-constants>)" default:"2006-01-02"`
	Enquote        bool   `long:"enquote" description:"add quotes around field values"`
	FieldSeparator string `long:"field-separator" value-name:"<separator>" default:","`
	DurationFormat string `long:"duration-format" choice:"golang" choice:"colon-delimited" default:"golang"`
}

// Execute executes the timesheet command.
// (This gets called by `go-flags` when `timesheet` is provided on the command
// line)
func (command *TimesheetCommand) Execute(args []string) error {
	startDate, err := model.FromString(command.FromDay)
	if err != nil {
		return fmt.Errorf("could not parse from date (%w)", err)
	}
	finalDate, err := model.FromString(command.TilDay)
	if err != nil {
		return fmt.Errorf("could not parse til date (%w)", err)
	}
	if finalDate.IsBefore(startDate) {
		return fmt.Errorf("til day must not be before from day")
	}

	includeRegex, err := regexp.Compile(command.Category)
	if err != nil {
		return fmt.Errorf("category include regex is invalid (%w)", err)
	}
	var excludeRegex *regexp.Regexp
	if command.Exclude != "" {
		excludeRegex, err = regexp.Compile(command.Exclude)
		if err != nil {
			return fmt.Errorf("category exclude regex is invalid (%w)", err)
		}
	}
	matcher := func(categoryName model.CategoryName) bool {
		if !includeRegex.MatchString(string(categoryName)) {
			return false
		}
		if excludeRegex != nil && excludeRegex.MatchString(string(categoryName)) {
			return false
		}
		return true
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

	fmt.Fprintln(os.Stderr, "PROSPECTIVE MATCHES:")
	for _, category := range categories {
		if matcher(category.Name) {
			fmt.Fprintf(os.Stderr, "  '%s'\n", category.Name)
		}
	}

	provider, err := daysProvider(env, categories)
	if err != nil {
		return err
	}

	maybeEnquote := func(s string) string {
		if command.Enquote {
			return util.Enquote(s)
		}
		return s
	}

	stringifyDuration := func(dur time.Duration) string {
		switch command.DurationFormat {
		case "golang":
			str := dur.String()
			if strings.HasSuffix(str, "m0s") {
				str = strings.TrimSuffix(str, "0s")
			}
			return str
		case "colon-delimited":
			durHours := dur.Truncate(time.Hour)
			durMins := dur - durHours
			return fmt.Sprintf("%d:%02d", int(durHours.Hours()), int(durMins.Minutes()))
		default:
			panic("unhandled duration format '" + command.DurationFormat + "'")
		}
	}

	for currentDate := startDate; currentDate != finalDate.Next(); currentDate = currentDate.Next() {
		day, err := provider.GetDay(currentDate)
		if err != nil {
			return err
		}
		timesheetEntry, err := day.GetTimesheetEntry(matcher)
		if err != nil {
			return fmt.Errorf("error while getting timesheet entry (%w)", err)
		}

		if !command.IncludeEmpty && timesheetEntry.IsEmpty() {
			continue
		}

		fmt.Println(
			strings.Join(
				[]string{
					maybeEnquote(currentDate.ToGotime().Format(command.DateFormat)),
					asCSVString(*timesheetEntry, maybeEnquote, stringifyDuration, command.FieldSeparator),
				},
				command.FieldSeparator,
			),
		)
	}

	return nil
}

// asCSVString returns this TimesheetEntry in CSV format.
func asCSVString(e model.TimesheetEntry, processFieldString func(string) string, stringifyDuration func(time.Duration) string, separator string) string {
	return strings.Join(
		[]string{
			processFieldString(e.Start.String()),
			processFieldString(stringifyDuration(e.BreakDuration)),
			processFieldString(e.End.String()),
		},
		separator,
	)
}
