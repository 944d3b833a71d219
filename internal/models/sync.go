package models

import (
	"encoding/json"
	"time"
)

// SyncState представляет состояние синхронизации установки.
// Инициализируется из локального хранилища при старте, изменяется
// только реконсилятором и сохраняется при каждом изменении.
// Это явное значение, а не набор глобальных флагов: несколько
// независимых документов (или тестов) получают независимые состояния.
type SyncState struct {
	PendingSync  bool   `json:"pending_sync"`   // PendingSync true, если последняя попытка отправки не подтвердила успех
	LastSyncedAt string `json:"last_synced_at"` // LastSyncedAt зеркало LastSynced документа (для отображения)
}

// CacheEntry представляет одну запись вспомогательного кэша
// (например, погодного). Запись старше окна свежести не используется
// как свежий ответ, но остается допустимым stale-fallback, когда
// удаленный вызов не удался или открыт circuit breaker.
type CacheEntry struct {
	Data      json.RawMessage `json:"data"`      // Data сериализованная полезная нагрузка
	Timestamp time.Time       `json:"timestamp"` // Timestamp момент успешного получения данных
}

// FreshWithin сообщает, укладывается ли запись в окно свежести window
// относительно момента now.
func (e *CacheEntry) FreshWithin(window time.Duration, now time.Time) bool {
	return now.Sub(e.Timestamp) <= window
}
