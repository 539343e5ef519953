package model

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// A SuntimesProvider computes sun times for dates at its configured location.
type SuntimesProvider struct {
	Latitude  float64
	Longitude float64
}

// SunTimes represents the sunrise and sunset times of a date.
type SunTimes struct {
	Rise, Set Timestamp
}

// Get returns the sunrise and sunset times for the given date at the
// provider's location, in the local timezone.
func (p *SuntimesProvider) Get(d Date) SunTimes {
	sunriseTime, sunsetTime := sunrise.SunriseSunset(p.Latitude, p.Longitude, d.Year, time.Month(d.Month), d.Day)

	sunriseTime = sunriseTime.In(time.Now().Location())
	sunsetTime = sunsetTime.In(time.Now().Location())

	return SunTimes{
		*NewTimestampFromGotime(sunriseTime),
		*NewTimestampFromGotime(sunsetTime),
	}
}
