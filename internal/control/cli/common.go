package cli

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/beldram/daygrid/internal/config"
	"github.com/beldram/daygrid/internal/control"
	"github.com/beldram/daygrid/internal/model"
	"github.com/beldram/daygrid/internal/storage"
	"github.com/beldram/daygrid/internal/storage/providers"
	"github.com/beldram/daygrid/internal/styling"
)

// envData collects the environment the commands run in: the base directory
// ($DAYGRID_HOME, or ~/.config/daygrid) and the location for sun times.
func envData() control.EnvData {
	var result control.EnvData

	daygridHome := os.Getenv("DAYGRID_HOME")
	if daygridHome == "" {
		result.BaseDirPath = path.Join(os.Getenv("HOME"), ".config", "daygrid")
	} else {
		result.BaseDirPath = strings.TrimRight(daygridHome, "/")
	}

	result.Latitude = os.Getenv("LATITUDE")
	result.Longitude = os.Getenv("LONGITUDE")

	return result
}

// loadConfig reads and parses the config file under the base directory.
// A missing config file is not an error; the defaults apply.
func loadConfig(baseDirPath string) (config.Config, error) {
	configPath := path.Join(baseDirPath, "config.yaml")
	yamlData, err := os.ReadFile(configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return config.Config{}, fmt.Errorf("could not read config file '%s' (%w)", configPath, err)
		}
		log.Warn().Str("path", configPath).Msg("no config file found, using defaults")
		yamlData = nil
	}
	return config.ParseConfigAugmentDefaults(yamlData)
}

// styledCategoriesFromConfig builds the styled category registry from config
// data, including the categories' goals.
func styledCategoriesFromConfig(configData config.Config) (*styling.CategoryStyling, error) {
	styledCategories := styling.EmptyCategoryStyling()

	for _, category := range configData.Categories {
		var goal model.Goal
		var err error
		switch {
		case category.Goal.Ranged != nil:
			goal, err = model.NewRangedGoalFromConfig(*category.Goal.Ranged)
		case category.Goal.Workweek != nil:
			goal, err = model.NewWorkweekGoalFromConfig(*category.Goal.Workweek)
		}
		if err != nil {
			return nil, fmt.Errorf("could not parse goal of category '%s' (%w)", category.Name, err)
		}

		cat := model.Category{
			Name:       model.CategoryName(category.Name),
			Priority:   category.Priority,
			Goal:       goal,
			Deprecated: category.Deprecated,
		}
		style, err := styling.StyleFromHexSingle(category.Color, category.Deprecated)
		if err != nil {
			return nil, fmt.Errorf("could not parse color of category '%s' (%w)", category.Name, err)
		}
		styledCategories.Add(cat, style)
	}

	return styledCategories, nil
}

// categoriesFromConfig builds the category set from config data.
func categoriesFromConfig(configData config.Config) ([]model.Category, error) {
	styledCategories, err := styledCategoriesFromConfig(configData)
	if err != nil {
		return nil, err
	}

	categories := make([]model.Category, 0)
	for _, styled := range styledCategories.GetAll() {
		categories = append(categories, styled.Cat)
	}
	return categories, nil
}

// daysProvider builds the day-file data provider under the base directory.
func daysProvider(env control.EnvData, categories []model.Category) (storage.DataProvider, error) {
	provider, err := providers.NewFilesDataProvider(path.Join(env.BaseDirPath, "days"), categories)
	if err != nil {
		return nil, fmt.Errorf("could not create file data provider (%w)", err)
	}
	return provider, nil
}
