package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/beldram/daygrid/internal/arrange"
	"github.com/beldram/daygrid/internal/config"
	"github.com/beldram/daygrid/internal/model"
	"github.com/beldram/daygrid/internal/storage"
	"github.com/beldram/daygrid/internal/styling"
	"github.com/beldram/daygrid/internal/util"
)

// ArrangeCommand contains flags for the `arrange` command line command, for
// `go-flags` to parse command line args into.
type ArrangeCommand struct {
	Day      string `short:"d" long:"day" description:"the day to arrange; defaults to today" value-name:"<yyyy-mm-dd>"`
	Arranger string `short:"a" long:"arranger" choice:"side" choice:"merge" default:"side" description:"how overlapping events are boxed: side by side, or merged"`

	Height       float64 `long:"height" description:"the total pixel height of the day (overrides config)"`
	PerMinute    float64 `long:"per-minute" description:"the pixel height of one minute (overrides config)"`
	DayStartHour int     `long:"day-start-hour" description:"the hour shown at the top of the day (overrides config)"`

	Format string `long:"format" choice:"table" choice:"json" default:"table" description:"the output format"`
}

// Execute executes the arrange command.
// (This gets called by `go-flags` when `arrange` is provided on the command
// line)
func (command *ArrangeCommand) Execute(args []string) error {
	env := envData()

	configData, err := loadConfig(env.BaseDirPath)
	if err != nil {
		return err
	}
	styledCategories, err := styledCategoriesFromConfig(configData)
	if err != nil {
		return err
	}
	categories := make([]model.Category, 0)
	for _, styled := range styledCategories.GetAll() {
		categories = append(categories, styled.Cat)
	}

	var day model.Date
	if command.Day == "" {
		now := time.Now()
		day = model.Date{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
	} else {
		day, err = model.FromString(command.Day)
		if err != nil {
			return fmt.Errorf("could not parse given day (%w)", err)
		}
	}

	// flags override the config the same way the config augments the
	// defaults, zero meaning unset
	layout := configData.Layout
	if command.PerMinute != 0.0 {
		layout.PixelsPerMinute = command.PerMinute
		layout.Height = 24 * 60 * command.PerMinute
	}
	if command.Height != 0.0 {
		layout.Height = command.Height
	}
	if command.DayStartHour != 0 {
		layout.DayStartHour = command.DayStartHour
	}

	provider, err := daysProvider(env, categories)
	if err != nil {
		return err
	}
	dayEvents, err := provider.GetDay(day)
	if err != nil {
		return err
	}

	var arranger arrange.Arranger[*model.Event]
	switch command.Arranger {
	case "merge":
		arranger = arrange.MergeArranger[*model.Event]{}
	default:
		arranger = arrange.SideArranger[*model.Event]{}
	}
	entries := arranger.Arrange(dayEvents.Events, layout.Height, layout.PixelsPerMinute, layout.DayStartHour)

	sunTimes := sunTimesFor(day, sunTimesProviderFromLocation(configData, env.Latitude, env.Longitude))

	switch command.Format {
	case "json":
		return printArrangedJSON(day, layout, entries, styledCategories, sunTimes)
	default:
		printArrangedTable(day, layout, entries, styledCategories, sunTimes)
		return nil
	}
}

// sunTimesProviderFromLocation resolves the location (environment overriding
// config), or returns nil if no usable location is known.
func sunTimesProviderFromLocation(configData config.Config, envLatitude, envLongitude string) storage.SunTimesProvider {
	latitudeStr, longitudeStr := configData.Location.Latitude, configData.Location.Longitude
	if envLatitude != "" && envLongitude != "" {
		latitudeStr, longitudeStr = envLatitude, envLongitude
	}
	if latitudeStr == "" || longitudeStr == "" {
		return nil
	}

	latitude, latErr := strconv.ParseFloat(latitudeStr, 64)
	longitude, lonErr := strconv.ParseFloat(longitudeStr, 64)
	if latErr != nil || lonErr != nil {
		log.Warn().Str("latitude", latitudeStr).Str("longitude", longitudeStr).
			Msg("could not parse location, skipping sun times")
		return nil
	}

	return &model.SuntimesProvider{Latitude: latitude, Longitude: longitude}
}

func sunTimesFor(day model.Date, provider storage.SunTimesProvider) *model.SunTimes {
	if provider == nil {
		return nil
	}
	sunTimes := provider.Get(day)
	return &sunTimes
}

func printArrangedTable(
	day model.Date,
	layout config.Layout,
	entries []arrange.Entry[*model.Event],
	styledCategories *styling.CategoryStyling,
	sunTimes *model.SunTimes,
) {
	fmt.Printf("%s (%s)\n", day.String(), day.ToWeekday().String())
	if sunTimes != nil {
		fmt.Printf("sunrise %s, sunset %s\n", sunTimes.Rise.String(), sunTimes.Set.String())
	}

	toWallClock := func(minutes int) model.Timestamp {
		m := (minutes + layout.DayStartHour*60) % (24 * 60)
		return model.Timestamp{Hour: m / 60, Minute: m % 60}
	}

	for _, entry := range entries {
		colors := "-"
		if style, err := styledCategories.GetStyle(entry.Events[0].Cat.Name); err == nil {
			colors = style.Bg.Hex() + "/" + style.Fg.Hex()
		}

		names := make([]string, 0, len(entry.Events))
		for _, event := range entry.Events {
			names = append(names, event.Name)
		}

		fmt.Printf("  %s--%s  %d/%d  [% 8.1f,% 8.1f]  %-15s  %s\n",
			toWallClock(entry.Start).String(), toWallClock(entry.End).String(),
			entry.Right, entry.Columns,
			entry.Top, entry.Bottom,
			colors,
			util.TruncateAt(strings.Join(names, " + "), 40),
		)
	}
}

// The JSON shapes the `arrange` command emits for renderer collaborators.
type arrangedDayJSON struct {
	Day          string              `json:"day"`
	Height       float64             `json:"height"`
	PerMinute    float64             `json:"per_minute"`
	DayStartHour int                 `json:"day_start_hour"`
	Sunrise      string              `json:"sunrise,omitempty"`
	Sunset       string              `json:"sunset,omitempty"`
	Entries      []arrangedEntryJSON `json:"entries"`
}

type arrangedEntryJSON struct {
	Start      int                 `json:"start"`
	End        int                 `json:"end"`
	Top        float64             `json:"top"`
	Bottom     float64             `json:"bottom"`
	Left       int                 `json:"left"`
	Right      int                 `json:"right"`
	Columns    int                 `json:"columns"`
	Background string              `json:"background,omitempty"`
	Foreground string              `json:"foreground,omitempty"`
	Border     string              `json:"border,omitempty"`
	Events     []arrangedEventJSON `json:"events"`
}

type arrangedEventJSON struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

func printArrangedJSON(
	day model.Date,
	layout config.Layout,
	entries []arrange.Entry[*model.Event],
	styledCategories *styling.CategoryStyling,
	sunTimes *model.SunTimes,
) error {
	output := arrangedDayJSON{
		Day:          day.String(),
		Height:       layout.Height,
		PerMinute:    layout.PixelsPerMinute,
		DayStartHour: layout.DayStartHour,
		Entries:      make([]arrangedEntryJSON, 0, len(entries)),
	}
	if sunTimes != nil {
		output.Sunrise = sunTimes.Rise.String()
		output.Sunset = sunTimes.Set.String()
	}

	for _, entry := range entries {
		outEntry := arrangedEntryJSON{
			Start:   entry.Start,
			End:     entry.End,
			Top:     entry.Top,
			Bottom:  entry.Bottom,
			Left:    entry.Left,
			Right:   entry.Right,
			Columns: entry.Columns,
			Events:  make([]arrangedEventJSON, 0, len(entry.Events)),
		}

		// an entry is colored by its first event's category
		if style, err := styledCategories.GetStyle(entry.Events[0].Cat.Name); err == nil {
			outEntry.Background = style.Bg.Hex()
			outEntry.Foreground = style.Fg.Hex()
			outEntry.Border = style.DarkenedBG(30).Bg.Hex()
		}

		for _, event := range entry.Events {
			outEntry.Events = append(outEntry.Events, arrangedEventJSON{
				Name:     event.Name,
				Category: string(event.Cat.Name),
				Start:    event.Start.String(),
				End:      event.End.String(),
			})
		}

		output.Entries = append(output.Entries, outEntry)
	}

	marshalled, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal arranged day (%w)", err)
	}
	fmt.Println(string(marshalled))
	return nil
}
