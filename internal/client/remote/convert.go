package remote

import (
	"github.com/iudanet/tripkeeper/internal/models"
	"github.com/iudanet/tripkeeper/pkg/api"
)

// toWire конвертирует документ в wire-формат
func toWire(trip *models.TripDocument) api.Trip {
	items := make([]api.TripItem, 0, len(trip.Items))
	for _, item := range trip.Items {
		items = append(items, api.TripItem{
			ID:       item.ID,
			Kind:     string(item.Kind),
			Title:    item.Title,
			Date:     item.Date,
			Time:     item.Time,
			Location: item.Location,
			Cost:     item.Cost,
			Notes:    item.Notes,
		})
	}

	return api.Trip{
		ID:          trip.ID,
		Name:        trip.Name,
		Destination: trip.Destination,
		StartDate:   trip.StartDate,
		EndDate:     trip.EndDate,
		Items:       items,
		Notes:       trip.Notes,
		Budget:      trip.Budget,
		HeaderImage: trip.HeaderImage,
		LastSynced:  trip.LastSynced,
	}
}

// fromWire конвертирует wire-формат в документ
func fromWire(wire *api.Trip) *models.TripDocument {
	items := make([]models.ItineraryItem, 0, len(wire.Items))
	for _, item := range wire.Items {
		items = append(items, models.ItineraryItem{
			ID:       item.ID,
			Kind:     models.ItemKind(item.Kind),
			Title:    item.Title,
			Date:     item.Date,
			Time:     item.Time,
			Location: item.Location,
			Cost:     item.Cost,
			Notes:    item.Notes,
		})
	}

	return &models.TripDocument{
		ID:          wire.ID,
		Name:        wire.Name,
		Destination: wire.Destination,
		StartDate:   wire.StartDate,
		EndDate:     wire.EndDate,
		Items:       items,
		Notes:       wire.Notes,
		Budget:      wire.Budget,
		HeaderImage: wire.HeaderImage,
		LastSynced:  wire.LastSynced,
	}
}
