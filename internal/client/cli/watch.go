package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/tripkeeper/internal/client/config"
)

func (c *Cli) runWatch(ctx context.Context) error {
	c.reconciler.LoadInitial(ctx)

	// Стартовая реконсиляция + подписка, если транспорт ее поддерживает
	if err := c.reconciler.Start(ctx); err != nil {
		return fmt.Errorf("failed to start watching: %w", err)
	}

	if c.cfg.Transport != config.TransportRedis {
		c.io.Println("Live subscriptions are not supported over the http transport.")
		c.io.Println("Initial reconciliation done. Use 'tripkeeper sync' to sync on demand.")
		return nil
	}

	c.io.Println("=== Watching for remote changes ===")
	c.io.Println()
	c.io.Printf("Status: %s\n", c.reconciler.Status())
	c.io.Println("Press Ctrl+C to stop.")
	c.io.Println()

	for {
		select {
		case <-ctx.Done():
			c.io.Println()
			c.io.Println("Stopped watching.")
			return nil
		case trip, ok := <-c.reconciler.Updates():
			if !ok {
				return nil
			}
			c.io.Printf("Remote update adopted: %s (synced %s)\n", trip.Name, trip.LastSynced)
		}
	}
}
