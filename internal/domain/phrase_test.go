package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhraseTemperature_Bands(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"deep freeze", -12.5, "It's freezing at -12.5°C! Bundle up!"},
		{"just below zero", -0.1, "It's freezing at -0.1°C! Bundle up!"},
		{"zero is cold band", 0, "It's quite cold at 0°C. Wear warm clothes."},
		{"cold", 9.9, "It's quite cold at 9.9°C. Wear warm clothes."},
		{"ten is jacket band", 10, "The temperature is 10°C. Comfortable for a light jacket."},
		{"jacket", 19.99, "The temperature is 19.99°C. Comfortable for a light jacket."},
		{"twenty is pleasant band", 20, "It's a pleasant 20°C. Enjoy the nice weather!"},
		{"pleasant", 22, "It's a pleasant 22°C. Enjoy the nice weather!"},
		{"thirty is hot band", 30, "It's hot at 30°C. Stay hydrated!"},
		{"scorching", 45.3, "It's hot at 45.3°C. Stay hydrated!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PhraseTemperature(tt.value, UnitCelsius))
		})
	}
}

func TestPhraseTemperature_OtherUnitIsVerbatim(t *testing.T) {
	assert.Equal(t, "71.6°F", PhraseTemperature(71.6, "F"))
	assert.Equal(t, "-5°K", PhraseTemperature(-5, "K"))
	assert.Equal(t, "12°c", PhraseTemperature(12, "c"), "unit match is case-sensitive")
}

func TestPhraseCondition(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Sunny", "It's a beautiful sunny day!"},
		{"Partly Cloudy", "Expect some clouds and sunshine."},
		{"partly cloudy", "Expect some clouds and sunshine."},
		{"CLOUDY", "It's cloudy today."},
		{"Overcast", "The sky is overcast."},
		{"Rain", "Don't forget your umbrella! It's raining."},
		{"Thunderstorm", "Thunderstorms are expected today."},
		{"Snow", "Bundle up! It's snowing."},
		{"Mist", "It's misty outside."},
		{"Fog", "Be careful, there's fog outside."},
		{"Clear", "Clear"},
		{"Patchy Rain Possible", "Patchy Rain Possible"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PhraseCondition(tt.in), "input %q", tt.in)
	}
}

func TestIsNight(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		want := hour >= 18 || hour < 6
		assert.Equal(t, want, IsNight(hour), "hour %d", hour)
	}
}

func TestPhraseLocation(t *testing.T) {
	assert.Equal(t, " Paris at Night", PhraseLocation("Paris", 3))
	assert.Equal(t, " Paris During the Day", PhraseLocation("Paris", 14))
	assert.Equal(t, " Paris at Night", PhraseLocation("Paris", 18))
	assert.Equal(t, " Paris During the Day", PhraseLocation("Paris", 6))
	assert.Equal(t, " Paris During the Day", PhraseLocation("Paris", 17))
	assert.Equal(t, " Paris at Night", PhraseLocation("Paris", 5))
}
