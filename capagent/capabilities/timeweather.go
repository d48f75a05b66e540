package capabilities

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/capagent/capagent"
	ports "github.com/ZanzyTHEbar/capagent/capagent/agent/ports"
)

var (
	timePattern    = regexp.MustCompile(`time`)
	datePattern    = regexp.MustCompile(`date`)
	weatherPattern = regexp.MustCompile(`weather`)

	weatherConditions = []string{"Sunny", "Cloudy", "Rainy", "Partly Cloudy"}
)

const (
	minTemperature = 10
	maxTemperature = 40
	minHumidity    = 40
	maxHumidity    = 80
)

// Weather is a simulated weather report.
type Weather struct {
	Location    string
	Temperature int // °C
	Condition   string
	Humidity    int // percent
}

// TimeWeather reports the current time and date, and simulated weather.
type TimeWeather struct {
	clock    ports.Clock
	random   ports.RandomSource
	location string
	zone     *time.Location
	zoneName string
}

// NewTimeWeather creates the capability. zone may be nil for the system zone.
func NewTimeWeather(clock ports.Clock, random ports.RandomSource, location string, zone *time.Location, zoneName string) *TimeWeather {
	if location == "" {
		location = capagent.DefaultWeatherLocation
	}
	if zone == nil {
		zone, zoneName = time.Local, SystemZoneName()
	}
	return &TimeWeather{
		clock:    clock,
		random:   random,
		location: location,
		zone:     zone,
		zoneName: zoneName,
	}
}

func (t *TimeWeather) Name() ports.Label { return ports.LabelTimeWeather }

func (t *TimeWeather) Description() string {
	return "Provide time, date, and weather information"
}

func (t *TimeWeather) Execute(ctx context.Context, message string, history ports.HistoryView) (string, error) {
	lower := strings.ToLower(message)

	switch {
	case timePattern.MatchString(lower):
		now := t.clock.Now().In(t.zone)
		return fmt.Sprintf("Current time: **%s**\n\nTimezone: %s", now.Format("3:04:05 PM"), t.zoneName), nil
	case datePattern.MatchString(lower):
		now := t.clock.Now().In(t.zone)
		return fmt.Sprintf("Today's date: **%s**", now.Format("Monday, January 2, 2006")), nil
	case weatherPattern.MatchString(lower):
		w := t.simulateWeather()
		return fmt.Sprintf("Weather Information for %s:\n\n🌡️ **Temperature**: %d°C\n☁️ **Condition**: %s\n💧 **Humidity**: %d%%\n\n*Note: This is simulated weather data. Real implementation would use a weather API.*",
			w.Location, w.Temperature, w.Condition, w.Humidity), nil
	default:
		return "I can provide current time, date, and weather information. What would you like to know?", nil
	}
}

func (t *TimeWeather) simulateWeather() Weather {
	return Weather{
		Location:    t.location,
		Temperature: minTemperature + t.random.IntN(maxTemperature-minTemperature+1),
		Condition:   weatherConditions[t.random.IntN(len(weatherConditions))],
		Humidity:    minHumidity + t.random.IntN(maxHumidity-minHumidity+1),
	}
}

// LoadZone resolves an IANA zone name. An empty name selects the system zone.
func LoadZone(name string) (*time.Location, string, error) {
	if name == "" {
		return time.Local, SystemZoneName(), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load timezone %q: %w", name, err)
	}
	return loc, loc.String(), nil
}

// SystemZoneName returns the IANA name of the local zone when it can be
// determined from TZ or /etc/localtime, else the Go zone name.
func SystemZoneName() string {
	if tz := strings.TrimPrefix(os.Getenv("TZ"), ":"); tz != "" {
		return tz
	}
	if target, err := filepath.EvalSymlinks("/etc/localtime"); err == nil {
		if _, name, ok := strings.Cut(target, "zoneinfo/"); ok && name != "" {
			return name
		}
	}
	return time.Local.String()
}

var _ ports.Capability = (*TimeWeather)(nil)
