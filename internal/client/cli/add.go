package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/iudanet/tripkeeper/internal/models"
)

func (c *Cli) runAdd(ctx context.Context) error {
	c.io.Println("=== Add Itinerary Item ===")
	c.io.Println()
	c.io.Println("Enter item details:")
	c.io.Println()

	kindStr, err := c.io.ReadInput("Kind (event, flight, lodging, expense, transport): ")
	if err != nil {
		return fmt.Errorf("failed to read kind: %w", err)
	}
	kind, err := parseItemKind(kindStr)
	if err != nil {
		return err
	}

	title, err := c.io.ReadInput("Title (e.g., 'Blue Lagoon', 'KEF-OSL'): ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}
	if title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	date, err := c.io.ReadInput("Date YYYY-MM-DD (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read date: %w", err)
	}
	if date != "" {
		if _, err := time.Parse(dateLayout, date); err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
		}
	}

	timeOfDay, err := c.io.ReadInput("Time HH:MM (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read time: %w", err)
	}
	if timeOfDay != "" {
		if _, err := time.Parse(timeLayout, timeOfDay); err != nil {
			return fmt.Errorf("invalid time %q, expected HH:MM", timeOfDay)
		}
	}

	location, err := c.io.ReadInput("Location (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read location: %w", err)
	}

	costStr, err := c.io.ReadInput("Cost (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read cost: %w", err)
	}
	var cost float64
	if costStr != "" {
		cost, err = strconv.ParseFloat(costStr, 64)
		if err != nil || cost < 0 {
			return fmt.Errorf("invalid cost: %s", costStr)
		}
	}

	notes, err := c.io.ReadInput("Notes (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read notes: %w", err)
	}

	item := models.ItineraryItem{
		ID:       uuid.New().String(),
		Kind:     kind,
		Title:    title,
		Date:     date,
		Time:     timeOfDay,
		Location: location,
		Cost:     cost,
		Notes:    notes,
	}

	trip := c.reconciler.LoadInitial(ctx)
	trip.Items = append(trip.Items, item)

	if err := c.reconciler.OnLocalEdit(ctx, trip); err != nil {
		return fmt.Errorf("failed to save trip: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Item added to itinerary!")
	c.io.Printf("Title: %s\n", item.Title)
	c.io.Printf("ID:    %s\n", item.ID)
	c.io.Println()

	c.flushQuietly(ctx)
	return nil
}
