package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weathr/internal/weather"
)

// currentFields is the field list requested from the Open-Meteo current
// weather endpoint, in the order they map onto a Snapshot.
const currentFields = "temperature_2m,apparent_temperature,relative_humidity_2m," +
	"precipitation,weather_code,cloud_cover,pressure_msl," +
	"wind_speed_10m,wind_direction_10m,is_day"

// OpenMeteo implements weather.Provider against the keyless Open-Meteo
// forecast API.
type OpenMeteo struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteo(client *http.Client) *OpenMeteo {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenMeteo{
		name:    "openmeteo",
		baseURL: "https://api.open-meteo.com/v1/forecast",
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: cb,
	}
}

func (p *OpenMeteo) Name() string {
	return p.name
}

// SetBaseURL overrides the API endpoint; used by tests.
func (p *OpenMeteo) SetBaseURL(u string) {
	p.baseURL = u
}

func (p *OpenMeteo) Current(ctx context.Context, loc weather.Location, units weather.Units) (weather.Snapshot, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", loc.Latitude))
		values.Set("longitude", fmt.Sprintf("%f", loc.Longitude))
		values.Set("current", currentFields)
		values.Set("temperature_unit", units.Temperature)
		values.Set("wind_speed_unit", units.WindSpeed)
		values.Set("precipitation_unit", units.Precipitation)
		values.Set("timezone", "auto")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.Snapshot{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Current struct {
			Time                string  `json:"time"`
			Temperature         float64 `json:"temperature_2m"`
			ApparentTemperature float64 `json:"apparent_temperature"`
			Humidity            float64 `json:"relative_humidity_2m"`
			Precipitation       float64 `json:"precipitation"`
			WeatherCode         int     `json:"weather_code"`
			CloudCover          float64 `json:"cloud_cover"`
			Pressure            float64 `json:"pressure_msl"`
			WindSpeed           float64 `json:"wind_speed_10m"`
			WindDirection       float64 `json:"wind_direction_10m"`
			IsDay               int     `json:"is_day"`
		} `json:"current"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Snapshot{}, fmt.Errorf("decode open-meteo response: %w", err)
	}

	cur := payload.Current
	return weather.Snapshot{
		Condition:           mapWeatherCode(cur.WeatherCode),
		Temperature:         cur.Temperature,
		ApparentTemperature: cur.ApparentTemperature,
		Humidity:            cur.Humidity,
		Precipitation:       cur.Precipitation,
		WindSpeed:           cur.WindSpeed,
		WindDirection:       cur.WindDirection,
		CloudCover:          cur.CloudCover,
		Pressure:            cur.Pressure,
		IsDay:               cur.IsDay == 1,
		Timestamp:           cur.Time,
	}, nil
}

// mapWeatherCode translates WMO weather interpretation codes into the
// condition enum. Unlisted codes fall back to Clear.
func mapWeatherCode(code int) weather.Condition {
	switch {
	case code == 0:
		return weather.ConditionClear
	case code == 1:
		return weather.ConditionPartlyCloudy
	case code == 2:
		return weather.ConditionCloudy
	case code == 3:
		return weather.ConditionOvercast
	case code == 45 || code == 48:
		return weather.ConditionFog
	case code == 56 || code == 57 || code == 66 || code == 67:
		return weather.ConditionFreezingRain
	case code >= 51 && code <= 55:
		return weather.ConditionDrizzle
	case code >= 61 && code <= 65:
		return weather.ConditionRain
	case code == 77:
		return weather.ConditionSnowGrains
	case code >= 71 && code <= 75:
		return weather.ConditionSnow
	case code >= 80 && code <= 82:
		return weather.ConditionRainShowers
	case code == 85 || code == 86:
		return weather.ConditionSnowShowers
	case code == 96 || code == 99:
		return weather.ConditionThunderstormHail
	case code == 95:
		return weather.ConditionThunderstorm
	default:
		return weather.ConditionClear
	}
}
