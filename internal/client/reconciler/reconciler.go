package reconciler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/tripkeeper/internal/client/remote"
	"github.com/iudanet/tripkeeper/internal/client/storage"
	"github.com/iudanet/tripkeeper/internal/models"
)

const (
	// DefaultDebounceInterval — пауза между последней правкой и отправкой.
	// Серия правок в пределах паузы сворачивается в одну отправку.
	DefaultDebounceInterval = 2 * time.Second

	// pushTimeout ограничивает фоновую отправку, запущенную таймером
	pushTimeout = 30 * time.Second
)

// ErrClosed возвращается операциями над уже остановленным реконсилятором
var ErrClosed = errors.New("reconciler is closed")

// Reconciler сводит локальное хранилище, документ в памяти и удаленный
// канал к одному значению. Побеждает та копия, что доказуемо новее;
// локальная правка никогда не теряется молча и никогда не блокируется
// сетью.
//
// Все операции безопасны для конкурентного вызова: документ в памяти
// имеет единственную пишущую роль, запись всегда идет через реконсилятор.
type Reconciler struct {
	store   storage.TripStorage
	channel remote.Channel
	logger  *slog.Logger

	// now и debounceInterval выделены для подмены в тестах
	now              func() time.Time
	debounceInterval time.Duration

	mu          sync.Mutex
	current     *models.TripDocument // nil, пока документ ни разу не сохранялся
	state       models.SyncState
	timer       *time.Timer
	pendingDoc  *models.TripDocument // payload отложенной отправки, снятый в момент правки
	pushing     bool
	unsubscribe func()
	closed      bool

	updates chan *models.TripDocument
}

// New creates a new reconciler over the given local store and remote channel.
// debounceInterval == 0 means DefaultDebounceInterval.
func New(store storage.TripStorage, channel remote.Channel, debounceInterval time.Duration, logger *slog.Logger) *Reconciler {
	if debounceInterval == 0 {
		debounceInterval = DefaultDebounceInterval
	}

	return &Reconciler{
		store:            store,
		channel:          channel,
		logger:           logger,
		now:              time.Now,
		debounceInterval: debounceInterval,
		updates:          make(chan *models.TripDocument, 8),
	}
}

// SyncResult contains the outcome of an explicit sync cycle
type SyncResult struct {
	Adopted bool // удаленный документ оказался новее и был принят
	Pushed  bool // локальный документ отправлен на удаленную сторону
}

// Reconcile is the pure decision function of whole-document last-writer-wins.
// Policy, in order:
//  1. Local absent — adopt remote unconditionally (first run on a new device).
//  2. Remote absent — keep local.
//  3. Both present — adopt whichever LastSynced is strictly newer.
//  4. Equal or incomparable timestamps — keep local; the next debounced
//     push will converge the remote copy.
//
// Функция детерминирована и идемпотентна: возвращает один из аргументов,
// ничего не изменяя. Поэлементного слияния нет — документ принимается
// целиком.
func Reconcile(local, remote *models.TripDocument) *models.TripDocument {
	if local == nil {
		return remote
	}
	if remote == nil {
		return local
	}
	if remote.IsNewerThan(local) {
		return remote
	}
	return local
}

// LoadInitial reads the document from the local store.
// Always returns a renderable document synchronously: if the store is
// empty or fails, a default document is constructed. Network activity
// never delays this call.
func (r *Reconciler) LoadInitial(ctx context.Context) *models.TripDocument {
	pending, err := r.store.GetPendingSync(ctx)
	if err != nil {
		r.logger.Warn("failed to read pending sync flag, assuming none", "error", err)
		pending = false
	}

	doc, err := r.store.GetTrip(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.state.PendingSync = pending

	switch {
	case err == nil:
		r.current = doc
		r.state.LastSyncedAt = doc.LastSynced
		return doc.Clone()
	case errors.Is(err, storage.ErrTripNotFound):
		// Первый запуск: хранилище пусто. current остается nil —
		// для реконсиляции локальной копии еще не существует.
		return models.NewDefaultTrip()
	default:
		r.logger.Error("failed to read local store, starting with defaults", "error", err)
		return models.NewDefaultTrip()
	}
}

// OnLocalEdit persists a local edit and schedules a debounced push.
// 1. Stamps LastSynced with the current time
// 2. Writes the document synchronously to the local store
// 3. Supersedes any pending scheduled push with a fresh timer
//
// Правка, пережившая возврат из этого метода, переживет и перезапуск
// процесса — независимо от состояния сети.
func (r *Reconciler) OnLocalEdit(ctx context.Context, doc *models.TripDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}

	doc.LastSynced = r.now().UTC().Format(time.RFC3339)

	if err := r.store.SaveTrip(ctx, doc); err != nil {
		// Отказ локального хранилища ломает гарантию offline-first,
		// поэтому ошибка уходит вызывающей стороне
		return fmt.Errorf("failed to persist local edit: %w", err)
	}

	r.current = doc.Clone()
	r.state.LastSyncedAt = doc.LastSynced
	r.schedulePushLocked(r.current)

	return nil
}

// Push sends the full document to the remote channel.
// On failure the pending-sync flag is set and persisted, so a later
// session resumes retrying; the error is returned for logging but the
// document state is already safe.
func (r *Reconciler) Push(ctx context.Context, doc *models.TripDocument) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrClosed
	}
	r.pushing = true
	r.mu.Unlock()

	err := r.channel.Send(ctx, doc)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.pushing = false

	if err != nil {
		r.logger.Warn("push failed, changes remain pending", "error", err)
		r.setPendingLocked(ctx, true)
		return fmt.Errorf("push failed: %w", err)
	}

	r.setPendingLocked(ctx, false)
	r.state.LastSyncedAt = doc.LastSynced
	return nil
}

// Pull fetches the remote copy out-of-band.
// Returns nil on any transport error, never propagates it: отсутствие
// удаленной копии и сетевой сбой для вызывающей стороны неразличимы.
func (r *Reconciler) Pull(ctx context.Context) *models.TripDocument {
	doc, err := r.channel.Pull(ctx)
	if err != nil {
		r.logger.Warn("pull failed, keeping local copy", "error", err)
		return nil
	}
	return doc
}

// Start begins receiving remote changes.
// Для каналов с подпиской регистрируется обработчик обновлений; каналы
// без подписки получают единственный стартовый pull. Затем возобновляется
// незавершенная отправка прошлой сессии, если флаг pending пережил
// перезапуск.
func (r *Reconciler) Start(ctx context.Context) error {
	unsubscribe, err := r.channel.Subscribe(ctx, func(doc *models.TripDocument) {
		r.applyRemote(context.Background(), doc)
	})

	switch {
	case err == nil:
		r.mu.Lock()
		r.unsubscribe = unsubscribe
		r.mu.Unlock()
	case errors.Is(err, remote.ErrSubscriptionUnsupported):
		if doc := r.Pull(ctx); doc != nil {
			r.applyRemote(ctx, doc)
		}
	default:
		return fmt.Errorf("failed to subscribe to remote changes: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state.PendingSync && r.current != nil {
		r.logger.Info("resuming pending push from previous session")
		r.schedulePushLocked(r.current)
	}

	return nil
}

// SyncOnce выполняет один явный цикл синхронизации: pull → reconcile →
// выравнивающий push, если локальная копия не уступила.
func (r *Reconciler) SyncOnce(ctx context.Context) (*SyncResult, error) {
	result := &SyncResult{}

	if doc := r.Pull(ctx); doc != nil {
		result.Adopted = r.applyRemote(ctx, doc)
	}
	if result.Adopted {
		return result, nil
	}

	r.mu.Lock()
	doc := r.current
	r.mu.Unlock()
	if doc == nil {
		// Ни локальной, ни удаленной копии — выравнивать нечего
		return result, nil
	}

	if err := r.Push(ctx, doc); err != nil {
		return result, err
	}
	result.Pushed = true

	return result, nil
}

// Flush немедленно выполняет отложенную отправку, не дожидаясь таймера.
// Нужен процессам, завершающимся раньше паузы debounce.
func (r *Reconciler) Flush(ctx context.Context) error {
	r.mu.Lock()
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	payload := r.pendingDoc
	r.pendingDoc = nil
	r.mu.Unlock()

	if payload == nil {
		return nil
	}
	return r.Push(ctx, payload)
}

// Close останавливает таймеры и подписку. Незавершенная отправка не
// выполняется — ее возобновит следующая сессия по флагу pending.
func (r *Reconciler) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.pendingDoc = nil
	unsubscribe := r.unsubscribe
	r.unsubscribe = nil
	r.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}

	// Подписка остановлена, издателей больше нет
	r.mu.Lock()
	close(r.updates)
	r.mu.Unlock()
}

// Status returns a passive one-line sync indicator.
// Сетевые сбои до пользователя доходят только этой строкой — никакая
// ошибка синхронизации не прерывает редактирование.
func (r *Reconciler) Status() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case r.pushing:
		return "Synchronizing…"
	case r.state.PendingSync:
		return "Changes Pending Sync"
	case r.state.LastSyncedAt != "":
		return "Synced " + r.state.LastSyncedAt
	default:
		return "Offline"
	}
}

// State returns a copy of the current sync state
func (r *Reconciler) State() models.SyncState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Updates returns the stream of documents adopted from the remote side.
// Канал закрывается в Close.
func (r *Reconciler) Updates() <-chan *models.TripDocument {
	return r.updates
}

// applyRemote прогоняет удаленный документ через Reconcile и, если тот
// победил, принимает его: сохраняет локально, отменяет устаревшую
// отложенную отправку и оповещает подписчиков. Возвращает true, если
// документ был принят.
//
// Эхо собственной отправки и повторные доставки безопасны: Reconcile
// идемпотентен, ничья решается в пользу локальной копии.
func (r *Reconciler) applyRemote(ctx context.Context, doc *models.TripDocument) bool {
	if doc == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return false
	}

	merged := Reconcile(r.current, doc)
	if merged == r.current {
		// Локальная копия не уступила (или это эхо) — ничего не делаем
		return false
	}

	if err := r.store.SaveTrip(ctx, merged); err != nil {
		r.logger.Error("failed to persist adopted remote document", "error", err)
		return false
	}

	r.current = merged
	r.state.LastSyncedAt = merged.LastSynced

	// Отложенная отправка несла уже проигравшую версию — отменяем
	r.cancelScheduledPushLocked()
	r.setPendingLocked(ctx, false)

	r.logger.Info("adopted remote document", "last_synced", merged.LastSynced)

	// Оповещаем наблюдателей, не блокируясь на медленном потребителе
	select {
	case r.updates <- merged.Clone():
	default:
	}

	return true
}

// schedulePushLocked перевзводит таймер отложенной отправки.
// Payload снимается в момент планирования: правки после планирования
// попадут уже в следующую отправку. Вызывается под mu.
func (r *Reconciler) schedulePushLocked(doc *models.TripDocument) {
	if r.timer != nil {
		r.timer.Stop()
	}

	payload := doc.Clone()
	r.pendingDoc = payload

	r.timer = time.AfterFunc(r.debounceInterval, func() {
		r.mu.Lock()
		if r.closed || r.pendingDoc != payload {
			// Отправка отменена или вытеснена более поздней правкой
			r.mu.Unlock()
			return
		}
		r.pendingDoc = nil
		r.timer = nil
		r.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		defer cancel()

		// Ошибка уже учтена внутри Push флагом pending
		_ = r.Push(ctx, payload)
	})
}

// cancelScheduledPushLocked отменяет отложенную отправку. Вызывается под mu.
func (r *Reconciler) cancelScheduledPushLocked() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.pendingDoc = nil
}

// setPendingLocked выставляет и сохраняет флаг pending, если значение
// изменилось. Вызывается под mu.
func (r *Reconciler) setPendingLocked(ctx context.Context, pending bool) {
	if r.state.PendingSync == pending {
		return
	}
	r.state.PendingSync = pending

	if err := r.store.SavePendingSync(ctx, pending); err != nil {
		r.logger.Error("failed to persist pending sync flag", "error", err)
	}
}
