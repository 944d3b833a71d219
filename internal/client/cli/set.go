package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var setUsage = "Usage: tripkeeper set <name|destination|start|end|budget|notes> <value>"

func (c *Cli) runSet(ctx context.Context, args []string) error {
	// Проверяем аргументы
	if len(args) < 2 {
		return fmt.Errorf("missing field or value. %s", setUsage)
	}

	field := args[0]
	value := strings.Join(args[1:], " ")

	trip := c.reconciler.LoadInitial(ctx)

	switch field {
	case "name":
		if value == "" {
			return fmt.Errorf("name cannot be empty")
		}
		trip.Name = value
	case "destination":
		trip.Destination = value
	case "start":
		if _, err := time.Parse(dateLayout, value); err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
		}
		trip.StartDate = value
	case "end":
		if _, err := time.Parse(dateLayout, value); err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
		}
		trip.EndDate = value
	case "budget":
		budget, err := strconv.ParseFloat(value, 64)
		if err != nil || budget < 0 {
			return fmt.Errorf("invalid budget: %s", value)
		}
		trip.Budget = budget
	case "notes":
		trip.Notes = value
	default:
		return fmt.Errorf("unknown field: %s. %s", field, setUsage)
	}

	// Синхронная запись в локальное хранилище: правка переживает
	// немедленное завершение процесса
	if err := c.reconciler.OnLocalEdit(ctx, trip); err != nil {
		return fmt.Errorf("failed to save trip: %w", err)
	}

	c.io.Println()
	c.io.Printf("✓ %s updated\n", field)
	c.io.Println()

	c.flushQuietly(ctx)
	return nil
}
