package weather

// Condition represents a normalized high-level weather condition.
type Condition string

const (
	ConditionClear            Condition = "clear"
	ConditionPartlyCloudy     Condition = "partly-cloudy"
	ConditionCloudy           Condition = "cloudy"
	ConditionOvercast         Condition = "overcast"
	ConditionFog              Condition = "fog"
	ConditionDrizzle          Condition = "drizzle"
	ConditionRain             Condition = "rain"
	ConditionFreezingRain     Condition = "freezing-rain"
	ConditionSnow             Condition = "snow"
	ConditionSnowGrains       Condition = "snow-grains"
	ConditionRainShowers      Condition = "rain-showers"
	ConditionSnowShowers      Condition = "snow-showers"
	ConditionThunderstorm     Condition = "thunderstorm"
	ConditionThunderstormHail Condition = "thunderstorm-hail"
)

var displayNames = map[Condition]string{
	ConditionClear:            "Clear",
	ConditionPartlyCloudy:     "Partly Cloudy",
	ConditionCloudy:           "Cloudy",
	ConditionOvercast:         "Overcast",
	ConditionFog:              "Fog",
	ConditionDrizzle:          "Drizzle",
	ConditionRain:             "Rain",
	ConditionFreezingRain:     "Freezing Rain",
	ConditionSnow:             "Snow",
	ConditionSnowGrains:       "Snow Grains",
	ConditionRainShowers:      "Rain Showers",
	ConditionSnowShowers:      "Snow Showers",
	ConditionThunderstorm:     "Thunderstorm",
	ConditionThunderstormHail: "Thunderstorm with Hail",
}

// DisplayName returns the human-readable form used in the header line.
func (c Condition) DisplayName() string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return string(c)
}

// Location is the coordinate pair for which weather is fetched.
type Location struct {
	Latitude  float64
	Longitude float64
}

// Units selects the measurement units requested from a provider.
type Units struct {
	Temperature   string
	WindSpeed     string
	Precipitation string
}

// DefaultUnits returns metric units (celsius, km/h, millimetres).
func DefaultUnits() Units {
	return Units{
		Temperature:   "celsius",
		WindSpeed:     "kmh",
		Precipitation: "mm",
	}
}

// Snapshot is one immutable weather reading. It is replaced wholesale on
// each successful refresh and never partially mutated.
type Snapshot struct {
	Condition           Condition
	Temperature         float64
	ApparentTemperature float64
	Humidity            float64
	Precipitation       float64
	WindSpeed           float64
	WindDirection       float64
	CloudCover          float64
	Pressure            float64
	Visibility          *float64
	IsDay               bool
	Timestamp           string
}
