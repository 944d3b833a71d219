package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCli_runShow_EmptyStore(t *testing.T) {
	cli, tio := newTestCli(t, newMemoryStore(), newQuietChannel())

	err := cli.Run(context.Background(), "show", nil)
	require.NoError(t, err)

	// Пустое хранилище показывает документ по умолчанию
	output := tio.String()
	assert.Contains(t, output, "=== New Trip ===")
	assert.Contains(t, output, "No itinerary items yet.")
	assert.Contains(t, output, "tripkeeper add")
}

func TestCli_runShow_FullTrip(t *testing.T) {
	store := newMemoryStore()
	trip := testTrip()
	trip.Notes = "bring a raincoat"
	seedTrip(t, store, trip)

	cli, tio := newTestCli(t, store, newQuietChannel())

	err := cli.Run(context.Background(), "show", nil)
	require.NoError(t, err)

	output := tio.String()
	assert.Contains(t, output, "=== Iceland 2026 ===")
	assert.Contains(t, output, "Destination: Reykjavik")
	assert.Contains(t, output, "Dates:       2026-06-12 to 2026-06-19")
	assert.Contains(t, output, "Budget:      4200.00")
	assert.Contains(t, output, "Planned:     120.50")
	assert.Contains(t, output, "Itinerary (1 item(s)):")
	assert.Contains(t, output, "[flight] KEF-OSL")
	assert.Contains(t, output, "ID:       item-1")
	assert.Contains(t, output, "When:     2026-06-19")
	assert.Contains(t, output, "Cost:     120.50")
	assert.Contains(t, output, "bring a raincoat")
}

// Просмотр не трогает ни хранилище на запись, ни сеть
func TestCli_runShow_ReadOnly(t *testing.T) {
	store := newMemoryStore()
	seedTrip(t, store, testTrip())
	channel := newQuietChannel()

	cli, _ := newTestCli(t, store, channel)

	require.NoError(t, cli.Run(context.Background(), "show", nil))

	// Единственный SaveTrip — это наш seed
	assert.Len(t, store.SaveTripCalls(), 1)
	assert.Empty(t, channel.SendCalls())
	assert.Empty(t, channel.PullCalls())
}
