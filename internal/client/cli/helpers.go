package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/iudanet/tripkeeper/internal/models"
)

// dateLayout формат дат поездки (ISO, без времени)
const dateLayout = "2006-01-02"

// timeLayout формат времени пунктов маршрута
const timeLayout = "15:04"

// flushQuietly отправляет отложенные изменения, не прерывая команду.
// Сетевой сбой здесь не ошибка: правка уже сохранена локально, флаг
// pending выставлен, следующий запуск возобновит отправку.
func (c *Cli) flushQuietly(ctx context.Context) {
	if err := c.reconciler.Flush(ctx); err != nil {
		c.io.Println("Changes saved locally. Run 'tripkeeper sync' when the network is back.")
	}
}

// parseItemKind разбирает тип пункта маршрута из пользовательского ввода
func parseItemKind(s string) (models.ItemKind, error) {
	kind := models.ItemKind(strings.ToLower(strings.TrimSpace(s)))
	switch kind {
	case models.ItemKindEvent, models.ItemKindFlight, models.ItemKindLodging,
		models.ItemKindExpense, models.ItemKindTransport:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown item kind: %s. Use: event, flight, lodging, expense, or transport", s)
	}
}

// plannedSpend суммирует стоимость всех пунктов маршрута
func plannedSpend(trip *models.TripDocument) float64 {
	var total float64
	for _, item := range trip.Items {
		total += item.Cost
	}
	return total
}

// renderTemplate парсит и выводит шаблон в указанный writer
func renderTemplate(w io.Writer, name, text string, data any) error {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, data)
}
