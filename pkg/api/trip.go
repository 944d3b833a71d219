package api

import "time"

// Trip представляет документ поездки в wire-формате.
// Сервер не интерпретирует содержимое — хранит и отдает документ целиком.
type Trip struct {
	ID          string     `json:"id"`                     // UUID документа
	Name        string     `json:"name"`                   // название поездки
	Destination string     `json:"destination"`            // место назначения
	StartDate   string     `json:"start_date"`             // дата начала (YYYY-MM-DD)
	EndDate     string     `json:"end_date"`               // дата окончания (YYYY-MM-DD)
	Items       []TripItem `json:"items"`                  // элементы плана
	Notes       string     `json:"notes"`                  // заметки
	Budget      float64    `json:"budget"`                 // бюджет поездки
	HeaderImage string     `json:"header_image,omitempty"` // ссылка на обложку
	LastSynced  string     `json:"last_synced"`            // отметка последней записи (RFC3339)
}

// TripItem представляет один элемент плана поездки
type TripItem struct {
	ID       string  `json:"id"`                 // UUID элемента
	Kind     string  `json:"kind"`               // тип: event, flight, lodging, expense, transport
	Title    string  `json:"title"`              // название
	Date     string  `json:"date,omitempty"`     // дата (YYYY-MM-DD)
	Time     string  `json:"time,omitempty"`     // время (HH:MM)
	Location string  `json:"location,omitempty"` // место проведения
	Cost     float64 `json:"cost,omitempty"`     // стоимость
	Notes    string  `json:"notes,omitempty"`    // заметки
}

// PushRequest представляет запрос на публикацию документа от клиента
type PushRequest struct {
	PushedAt      time.Time `json:"pushed_at"`      // момент отправки по часам клиента
	ClientVersion string    `json:"client_version"` // версия клиента
	Trip          Trip      `json:"trip"`           // документ целиком
}

// PushResponse представляет ответ сервера на публикацию.
// Клиент ответ не анализирует — поле нужно для отладки через curl.
type PushResponse struct {
	ReceivedAt time.Time `json:"received_at"` // момент приема по часам сервера
	Status     string    `json:"status"`      // "accepted"
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
