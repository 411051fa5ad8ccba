package weather

import "context"

// Provider abstracts a current-weather data source (e.g. Open-Meteo).
type Provider interface {
	Name() string
	Current(ctx context.Context, loc Location, units Units) (Snapshot, error)
}
