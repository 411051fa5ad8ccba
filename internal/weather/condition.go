package weather

import "strings"

// conditionAliases maps case-insensitive CLI spellings to conditions.
var conditionAliases = map[string]Condition{
	"clear":             ConditionClear,
	"sunny":             ConditionClear,
	"partly-cloudy":     ConditionPartlyCloudy,
	"partly_cloudy":     ConditionPartlyCloudy,
	"partlycloudy":      ConditionPartlyCloudy,
	"cloudy":            ConditionCloudy,
	"overcast":          ConditionOvercast,
	"fog":               ConditionFog,
	"foggy":             ConditionFog,
	"drizzle":           ConditionDrizzle,
	"rain":              ConditionRain,
	"rainy":             ConditionRain,
	"freezing-rain":     ConditionFreezingRain,
	"freezing_rain":     ConditionFreezingRain,
	"freezingrain":      ConditionFreezingRain,
	"snow":              ConditionSnow,
	"snowy":             ConditionSnow,
	"snow-grains":       ConditionSnowGrains,
	"snow_grains":       ConditionSnowGrains,
	"snowgrains":        ConditionSnowGrains,
	"rain-showers":      ConditionRainShowers,
	"rain_showers":      ConditionRainShowers,
	"rainshowers":       ConditionRainShowers,
	"showers":           ConditionRainShowers,
	"snow-showers":      ConditionSnowShowers,
	"snow_showers":      ConditionSnowShowers,
	"snowshowers":       ConditionSnowShowers,
	"thunderstorm":      ConditionThunderstorm,
	"thunder":           ConditionThunderstorm,
	"thunderstorm-hail": ConditionThunderstormHail,
	"thunderstorm_hail": ConditionThunderstormHail,
	"hail":              ConditionThunderstormHail,
}

// ParseCondition resolves a user-supplied condition name. Unknown input
// yields (ConditionClear, false) so callers can warn and fall back.
func ParseCondition(input string) (Condition, bool) {
	if c, ok := conditionAliases[strings.ToLower(strings.TrimSpace(input))]; ok {
		return c, true
	}
	return ConditionClear, false
}

// SceneFlags selects which animation layers are active for a condition.
// Raining, Thunderstorm and Cloudy are mutually exclusive; the snow and
// fog families leave all three unset and render the default background.
type SceneFlags struct {
	Raining      bool
	Thunderstorm bool
	Cloudy       bool
	ShowSun      bool
}

// FlagsFor derives scene flags from a condition. Pure; first match wins.
func FlagsFor(c Condition) SceneFlags {
	var f SceneFlags
	switch c {
	case ConditionThunderstorm, ConditionThunderstormHail:
		f.Thunderstorm = true
	case ConditionDrizzle, ConditionRain, ConditionRainShowers, ConditionFreezingRain:
		f.Raining = true
	case ConditionPartlyCloudy, ConditionCloudy, ConditionOvercast:
		f.Cloudy = true
	}
	f.ShowSun = c == ConditionClear || c == ConditionPartlyCloudy
	return f
}

// Simulated synthesizes a fixed snapshot for a forced condition, so a
// simulated session never has to reach the network.
func Simulated(c Condition) Snapshot {
	precip := 0.0
	switch c {
	case ConditionRain, ConditionDrizzle, ConditionRainShowers:
		precip = 2.5
	}
	visibility := 10000.0
	return Snapshot{
		Condition:           c,
		Temperature:         20.0,
		ApparentTemperature: 19.0,
		Humidity:            65.0,
		Precipitation:       precip,
		WindSpeed:           10.0,
		WindDirection:       180.0,
		CloudCover:          50.0,
		Pressure:            1013.0,
		Visibility:          &visibility,
		IsDay:               true,
		Timestamp:           "simulated",
	}
}
