package ports

import "context"

// WeatherProvider describes the current weather in a city as a single human-readable line.
// Any failure is reported as an error; callers decide how to degrade.
type WeatherProvider interface {
	Describe(ctx context.Context, city string) (string, error)
}
