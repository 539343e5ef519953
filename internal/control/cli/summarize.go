package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/beldram/daygrid/internal/model"
)

// Flags for the `summarize` command line command, for `go-flags` to parse
// command line args into.
type SummarizeCommand struct {
	FromDay string `short:"f" long:"from" description:"the day from which to start summarizing" value-name:"<yyyy-mm-dd>" required:"true"`
	TilDay  string `short:"t" long:"til" description:"the day til which to summarize (inclusive)" value-name:"<yyyy-mm-dd>" required:"true"`

	HumanReadable        bool   `long:"human-readable" description:"format durations as hours and minutes"`
	CategoryFilterString string `long:"category-filter" description:"a filter for categories; any named categories included; all included if omitted" value-name:"<cat1>,<cat2>,..."`

	Verbose bool `short:"v" long:"verbose" description:"provide verbose output"`
}

// Executes the summarize command.
// (This gets called by `go-flags` when `summarize` is provided on the command
// line)
func (command *SummarizeCommand) Execute(args []string) error {
	from, err := model.FromString(command.FromDay)
	if err != nil {
		return fmt.Errorf("could not parse from date (%w)", err)
	}
	til, err := model.FromString(command.TilDay)
	if err != nil {
		return fmt.Errorf("could not parse til date (%w)", err)
	}
	if til.IsBefore(from) {
		return fmt.Errorf("til day must not be before from day")
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

	filterCategories := len(command.CategoryFilterString) > 0
	includeCategoriesByName := make(map[model.CategoryName]struct{})
	if filterCategories {
		for _, name := range strings.Split(command.CategoryFilterString, ",") {
			includeCategoriesByName[model.CategoryName(name)] = struct{}{}
		}
	}
	categoryIncluded := func(categoryName model.CategoryName) bool {
		if !filterCategories {
			return true
		}
		_, ok := includeCategoriesByName[categoryName]
		return ok
	}

	provider, err := daysProvider(env, categories)
	if err != nil {
		return err
	}
	totalSummary, err := provider.SumUpTimespanByCategory(from, til)
	if err != nil {
		return err
	}

	if command.Verbose {
		fmt.Println("daygrid time summary:")
		fmt.Println("from:            ", from.String())
		fmt.Println("til:             ", til.String())
		fmt.Println("category filter: ", command.CategoryFilterString)
		fmt.Println("total summary:")
	}

	printRow := func(category model.Category, duration time.Duration) {
		var durationStr string
		if command.HumanReadable {
			durationStr = duration.String()
		} else {
			durationStr = fmt.Sprintf("%d min", int(duration.Minutes()))
		}

		goalStr := ""
		if category.Goal != nil {
			goal := model.GoalForRange(category.Goal, from, til)
			if goal > 0 {
				deficit := goal - duration
				deficitStr := fmt.Sprint(deficit - (deficit % time.Minute))
				goalStr = fmt.Sprintf("(%.2f%% of goal, %s deficit)", (float64(duration)/float64(goal))*100.0, deficitStr)
			}
		}

		fmt.Printf("  % 20s (prio:% 3d): % 10s %s\n", category.Name, category.Priority, durationStr, goalStr)
	}

	// configured categories first, in config order, then the rest by name
	printed := make(map[model.CategoryName]struct{})
	for _, category := range categories {
		duration, summed := totalSummary[category.Name]
		if !summed || !categoryIncluded(category.Name) {
			continue
		}
		printRow(category, duration)
		printed[category.Name] = struct{}{}
	}

	leftover := make([]model.Category, 0)
	for categoryName := range totalSummary {
		if _, done := printed[categoryName]; done || !categoryIncluded(categoryName) {
			continue
		}
		fmt.Fprintf(os.Stderr, "warning: category '%s' not found in config\n", categoryName)
		leftover = append(leftover, model.Category{Name: categoryName})
	}
	sort.Sort(model.ByName(leftover))
	for _, category := range leftover {
		printRow(category, totalSummary[category.Name])
	}

	return nil
}
