package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the configuration data as present in a config file at
// '${DAYGRID_HOME}/config.yaml'.
type Config struct {
	Layout     Layout     `yaml:"layout"`
	Location   Location   `yaml:"location"`
	Categories []Category `yaml:"categories"`
}

// Layout is the day-grid geometry defined in a config file.
type Layout struct {
	// DayStartHour is the hour of day shown at the top of the day area.
	DayStartHour int `yaml:"day-start-hour"`
	// PixelsPerMinute is the vertical size of one minute.
	PixelsPerMinute float64 `yaml:"pixels-per-minute"`
	// Height is the total pixel height of the day area.
	// When omitted it is derived as a full day at PixelsPerMinute.
	Height float64 `yaml:"height"`
}

// A Location is a geographic position, used for sunrise and sunset times.
type Location struct {
	Latitude  string `yaml:"latitude"`
	Longitude string `yaml:"longitude"`
}

// A Category as defined in a config file.
// It combines the style definition with the name and priority definition.
type Category struct {
	Name       string `yaml:"name,omitempty"`
	Color      string `yaml:"color,omitempty"`
	Priority   int    `yaml:"priority,omitempty"`
	Goal       Goal   `yaml:"goal,omitempty"`
	Deprecated bool   `yaml:"deprecated"`
}

// Goal is a time goal.
type Goal struct {
	Workweek *WorkweekGoal `yaml:"workweek,omitempty"`
	Ranged   *[]RangedGoal `yaml:"ranged,omitempty"`
}

// WorkweekGoal allows defining an expected duration per weekday.
//
// For format see time.ParseDuration. It probably wouldn't make sense to define
// negative values.
type WorkweekGoal struct {
	Monday    string `yaml:"monday"`
	Tuesday   string `yaml:"tuesday"`
	Wednesday string `yaml:"wednesday"`
	Thursday  string `yaml:"thursday"`
	Friday    string `yaml:"friday"`
	Saturday  string `yaml:"saturday"`
	Sunday    string `yaml:"sunday"`
}

// RangedGoal allows defining an expected duration over a period of time.
//
// For format see time.ParseDuration. It probably wouldn't make sense to define
// negative values.
type RangedGoal struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
	Time  string `yaml:"time"`
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment the default configuration.
func ParseConfigAugmentDefaults(yamlData []byte) (Config, error) {
	defaultConfig := Default()

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%s)", err)
	}

	result := defaultConfig.augmentWith(parsedConfig)

	return result, nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	result.Layout = base.Layout.augmentWith(augment.Layout)

	if augment.Location.Latitude != "" {
		result.Location.Latitude = augment.Location.Latitude
	}
	if augment.Location.Longitude != "" {
		result.Location.Longitude = augment.Location.Longitude
	}

	if len(augment.Categories) > 0 {
		result.Categories = augment.Categories
	}

	return result
}

func (base Layout) augmentWith(augment Layout) Layout {
	result := base

	if augment.DayStartHour != 0 {
		result.DayStartHour = augment.DayStartHour
	}
	if augment.PixelsPerMinute != 0.0 {
		result.PixelsPerMinute = augment.PixelsPerMinute
		result.Height = 24 * 60 * augment.PixelsPerMinute
	}
	if augment.Height != 0.0 {
		result.Height = augment.Height
	}

	return result
}
