package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runRemove(ctx context.Context, args []string) error {
	// Проверяем наличие ID
	if len(args) == 0 {
		return fmt.Errorf("missing item ID. Usage: tripkeeper remove <id>")
	}

	itemID := args[0]

	trip := c.reconciler.LoadInitial(ctx)

	idx := -1
	for i, item := range trip.Items {
		if item.ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("item not found with ID: %s", itemID)
	}
	item := trip.Items[idx]

	c.io.Println("=== Remove Itinerary Item ===")
	c.io.Println()

	// Показываем пункт, который будет удален
	c.io.Println("About to remove:")
	c.io.Printf("  Title: %s\n", item.Title)
	c.io.Printf("  Kind:  %s\n", item.Kind)
	if item.Date != "" {
		c.io.Printf("  Date:  %s\n", item.Date)
	}
	c.io.Println()

	// Запрашиваем подтверждение
	confirm, err := c.io.ReadInput("Are you sure you want to remove this item? (yes/no): ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if confirm != "yes" && confirm != "y" {
		c.io.Println()
		c.io.Println("Removal cancelled.")
		return nil
	}

	trip.Items = append(trip.Items[:idx], trip.Items[idx+1:]...)

	if err := c.reconciler.OnLocalEdit(ctx, trip); err != nil {
		return fmt.Errorf("failed to save trip: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Item removed!")
	c.io.Println()

	c.flushQuietly(ctx)
	return nil
}
