package config

// Default returns the default configuration: a full day at one pixel per
// minute, starting at midnight, with a small set of categories.
func Default() Config {
	return Config{
		Layout: Layout{
			DayStartHour:    0,
			PixelsPerMinute: 1.0,
			Height:          24 * 60 * 1.0,
		},
		Categories: []Category{
			{Color: "#cccccc", Name: "default"},
			{Color: "#ffdccc", Name: "mountainbiking"},
			{Color: "#c2edab", Name: "a-wandering beneath the clear blue sky"},
			{Color: "#ccebff", Name: "visiting a china-town section in a major city"},
			{Color: "#ccffe6", Name: "writing initials in wet cement"},
		},
	}
}
