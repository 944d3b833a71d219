package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()
	c.io.Println("Reconciling with the remote copy...")

	// Гидратируем реконсилятор из хранилища: каждая команда — отдельный процесс
	c.reconciler.LoadInitial(ctx)

	result, err := c.reconciler.SyncOnce(ctx)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.io.Println()
	switch {
	case result.Adopted:
		c.io.Println("✓ Newer remote copy adopted.")
	case result.Pushed:
		c.io.Println("✓ Local copy pushed to the remote.")
	default:
		c.io.Println("✓ Already in sync.")
	}
	c.io.Println()
	c.io.Printf("Status: %s\n", c.reconciler.Status())

	return nil
}
