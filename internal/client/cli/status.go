package cli

import (
	"context"

	"github.com/iudanet/tripkeeper/internal/client/config"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Sync Status ===")
	c.io.Println()

	// LoadInitial восстанавливает состояние синхронизации из хранилища
	trip := c.reconciler.LoadInitial(ctx)
	state := c.reconciler.State()

	c.io.Printf("Trip:      %s\n", trip.Name)
	c.io.Printf("Transport: %s\n", c.cfg.Transport)
	if c.cfg.Transport == config.TransportRedis {
		c.io.Printf("Remote:    %s\n", c.cfg.Redis.Addr)
	} else {
		c.io.Printf("Remote:    %s\n", c.cfg.Endpoint)
	}
	c.io.Printf("Status:    %s\n", c.reconciler.Status())
	c.io.Println()

	switch {
	case state.PendingSync:
		c.io.Println("⚠️  Local changes are waiting to be pushed.")
		c.io.Println("Run 'tripkeeper sync' to push them now.")
	case state.LastSyncedAt != "":
		c.io.Printf("✓ Last synchronized: %s\n", state.LastSyncedAt)
	default:
		c.io.Println("No synchronization has happened yet.")
	}

	return nil
}
