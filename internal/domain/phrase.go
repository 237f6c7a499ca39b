package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// conditionMessages maps lower-cased provider conditions to widget sentences.
var conditionMessages = map[string]string{
	"sunny":         "It's a beautiful sunny day!",
	"partly cloudy": "Expect some clouds and sunshine.",
	"cloudy":        "It's cloudy today.",
	"overcast":      "The sky is overcast.",
	"rain":          "Don't forget your umbrella! It's raining.",
	"thunderstorm":  "Thunderstorms are expected today.",
	"snow":          "Bundle up! It's snowing.",
	"mist":          "It's misty outside.",
	"fog":           "Be careful, there's fog outside.",
}

// PhraseTemperature describes a temperature. Celsius values are placed in one
// of five bands; any other unit is echoed as "{value}°{unit}".
func PhraseTemperature(value float64, unit string) string {
	v := formatNumber(value)
	if unit != UnitCelsius {
		return fmt.Sprintf("%s°%s", v, unit)
	}

	switch {
	case value < 0:
		return fmt.Sprintf("It's freezing at %s°C! Bundle up!", v)
	case value < 10:
		return fmt.Sprintf("It's quite cold at %s°C. Wear warm clothes.", v)
	case value < 20:
		return fmt.Sprintf("The temperature is %s°C. Comfortable for a light jacket.", v)
	case value < 30:
		return fmt.Sprintf("It's a pleasant %s°C. Enjoy the nice weather!", v)
	default:
		return fmt.Sprintf("It's hot at %s°C. Stay hydrated!", v)
	}
}

// PhraseCondition maps a known condition to a sentence. Unknown conditions
// come back exactly as given.
func PhraseCondition(description string) string {
	if msg, ok := conditionMessages[strings.ToLower(description)]; ok {
		return msg
	}
	return description
}

// IsNight reports whether hour (0-23) falls between 18:00 and 05:59.
func IsNight(hour int) bool {
	return hour >= 18 || hour < 6
}

// PhraseLocation pairs a place name with the time of day. The leading space
// is part of the rendered panel text.
func PhraseLocation(location string, hour int) string {
	if IsNight(hour) {
		return fmt.Sprintf(" %s at Night", location)
	}
	return fmt.Sprintf(" %s During the Day", location)
}

// formatNumber prints the shortest decimal that round-trips, so 22 renders
// as "22" and 22.5 as "22.5".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
