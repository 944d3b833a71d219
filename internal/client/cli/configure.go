package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/tripkeeper/internal/client/config"
)

func (c *Cli) runConfigure(ctx context.Context) error {
	c.io.Println("=== Configure TripKeeper ===")
	c.io.Println()
	c.io.Println("Press Enter to keep the current value.")
	c.io.Println()

	cfg := c.cfg

	endpoint, err := c.io.ReadInput(fmt.Sprintf("Sync endpoint URL [%s]: ", cfg.Endpoint))
	if err != nil {
		return fmt.Errorf("failed to read endpoint: %w", err)
	}
	if endpoint != "" {
		cfg.Endpoint = endpoint
	}

	transport, err := c.io.ReadInput(fmt.Sprintf("Transport (http or redis) [%s]: ", cfg.Transport))
	if err != nil {
		return fmt.Errorf("failed to read transport: %w", err)
	}
	if transport != "" {
		if transport != config.TransportHTTP && transport != config.TransportRedis {
			return fmt.Errorf("unknown transport: %s", transport)
		}
		cfg.Transport = transport
	}

	if cfg.Transport == config.TransportRedis {
		addr, err := c.io.ReadInput(fmt.Sprintf("Redis address [%s]: ", cfg.Redis.Addr))
		if err != nil {
			return fmt.Errorf("failed to read redis address: %w", err)
		}
		if addr != "" {
			cfg.Redis.Addr = addr
		}
	}

	// Ключ не выводится на экран при вводе
	apiKey, err := c.io.ReadPassword("Weather API key (hidden, Enter to keep): ")
	if err != nil {
		return fmt.Errorf("failed to read API key: %w", err)
	}
	if apiKey != "" {
		cfg.Weather.APIKey = apiKey
	}

	if err := config.Save(c.cfgPath, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	c.cfg = cfg

	c.io.Println()
	c.io.Println("✓ Configuration saved!")
	c.io.Printf("Path: %s\n", c.cfgPath)

	return nil
}
