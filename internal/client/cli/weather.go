package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runWeather(ctx context.Context, args []string) error {
	// Проверяем наличие места
	if len(args) == 0 {
		return fmt.Errorf("missing place name. Usage: tripkeeper weather <place>")
	}
	place := strings.Join(args, " ")

	if !c.weather.Available() {
		return fmt.Errorf("weather lookups are not configured. Run 'tripkeeper configure' to set the API key")
	}

	forecast := c.weather.Fetch(ctx, place)
	if forecast == nil {
		c.io.Println("Weather is unavailable right now. Try again later.")
		return nil
	}

	if err := renderTemplate(c.io, "forecast", forecastTemplate, forecast); err != nil {
		return fmt.Errorf("failed to render forecast: %w", err)
	}
	return nil
}
