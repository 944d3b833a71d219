package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/tripkeeper/internal/models"
)

// tripView дополняет документ производными полями для шаблона
type tripView struct {
	*models.TripDocument
	Planned float64 // сумма стоимостей всех пунктов маршрута
}

func (c *Cli) runShow(ctx context.Context) error {
	trip := c.reconciler.LoadInitial(ctx)

	view := tripView{
		TripDocument: trip,
		Planned:      plannedSpend(trip),
	}

	if err := renderTemplate(c.io, "trip", tripTemplate, view); err != nil {
		return fmt.Errorf("failed to render trip: %w", err)
	}
	return nil
}
