package models

import (
	"time"

	"github.com/google/uuid"
)

// TripDocument представляет полное состояние одной поездки.
// Это единственная единица синхронизации: документ целиком сравнивается,
// целиком отправляется и целиком замещается при разрешении конфликтов.
// Никакая вложенная сущность не синхронизируется отдельно.
type TripDocument struct {
	ID          string          `json:"id"`                     // ID уникальный идентификатор поездки (UUID)
	Name        string          `json:"name"`                   // Name название поездки (например, "Отпуск 2026")
	Destination string          `json:"destination"`            // Destination основное направление (город/страна)
	StartDate   string          `json:"start_date"`             // StartDate дата начала в формате YYYY-MM-DD
	EndDate     string          `json:"end_date"`               // EndDate дата окончания в формате YYYY-MM-DD
	Items       []ItineraryItem `json:"items"`                  // Items упорядоченный список пунктов маршрута (порядок задает вызывающая сторона)
	Notes       string          `json:"notes"`                  // Notes свободные заметки к поездке
	Budget      float64         `json:"budget"`                 // Budget бюджет поездки
	HeaderImage string          `json:"header_image,omitempty"` // HeaderImage непрозрачная ссылка на обложку (blob reference)
	LastSynced  string          `json:"last_synced"`            // LastSynced метка времени RFC3339 (UTC); выставляется ТОЛЬКО реконсилятором
}

// ItemKind тип пункта маршрута
type ItemKind string

// Допустимые типы пунктов маршрута
const (
	ItemKindEvent     ItemKind = "event"     // мероприятие/активность
	ItemKindFlight    ItemKind = "flight"    // перелет
	ItemKindLodging   ItemKind = "lodging"   // проживание
	ItemKindExpense   ItemKind = "expense"   // расход
	ItemKindTransport ItemKind = "transport" // наземный транспорт
)

// ItineraryItem представляет один пункт маршрута поездки.
// Для реконсилятора список пунктов — непрозрачная часть документа:
// сравнивается и замещается только документ целиком.
type ItineraryItem struct {
	ID       string   `json:"id"`                 // ID уникальный идентификатор пункта (UUID)
	Kind     ItemKind `json:"kind"`               // Kind тип пункта (event, flight, lodging, expense, transport)
	Title    string   `json:"title"`              // Title название пункта
	Date     string   `json:"date,omitempty"`     // Date дата в формате YYYY-MM-DD
	Time     string   `json:"time,omitempty"`     // Time время в формате HH:MM
	Location string   `json:"location,omitempty"` // Location место проведения/адрес
	Cost     float64  `json:"cost,omitempty"`     // Cost стоимость пункта
	Notes    string   `json:"notes,omitempty"`    // Notes заметки к пункту
}

// NewDefaultTrip создает новый пустой документ поездки.
// Используется при первом запуске, когда локальное хранилище пусто:
// редактор всегда получает отображаемый документ до завершения любой
// сетевой активности. LastSynced остается пустым — документ еще
// ни разу не проходил через реконсилятор.
func NewDefaultTrip() *TripDocument {
	return &TripDocument{
		ID:    uuid.New().String(),
		Name:  "New Trip",
		Items: []ItineraryItem{},
	}
}

// Clone создает глубокую копию документа поездки.
// Копия используется как полезная нагрузка отложенной отправки:
// последующие правки не должны менять уже запланированный payload.
func (d *TripDocument) Clone() *TripDocument {
	items := make([]ItineraryItem, len(d.Items))
	copy(items, d.Items)

	return &TripDocument{
		ID:          d.ID,
		Name:        d.Name,
		Destination: d.Destination,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		Items:       items,
		Notes:       d.Notes,
		Budget:      d.Budget,
		HeaderImage: d.HeaderImage,
		LastSynced:  d.LastSynced,
	}
}

// IsNewerThan сравнивает два документа по метке LastSynced и определяет,
// является ли текущий документ строго более новым, чем other.
// Несравнимые метки (пустые или не парсящиеся) никогда не дают true.
func (d *TripDocument) IsNewerThan(other *TripDocument) bool {
	return CompareLastSynced(d.LastSynced, other.LastSynced) > 0
}

// CompareLastSynced сравнивает две метки LastSynced (RFC3339).
// Возвращает:
//
//	+1 если a новее b
//	-1 если a старше b
//	 0 если метки равны или хотя бы одна не поддается сравнению
//
// Нулевой результат трактуется вызывающей стороной как "оставить локальную
// копию" — следующая отложенная отправка выровняет удаленную.
func CompareLastSynced(a, b string) int {
	ta, errA := time.Parse(time.RFC3339, a)
	tb, errB := time.Parse(time.RFC3339, b)
	if errA != nil || errB != nil {
		return 0
	}

	switch {
	case ta.After(tb):
		return 1
	case ta.Before(tb):
		return -1
	default:
		return 0
	}
}
